package model

// Strength is a named skill with a proficiency weight in percent.
type Strength struct {
	ID              string  `json:"id"`
	Code            int     `json:"code,omitempty"`
	Name            string  `json:"name"`
	Weight          float64 `json:"weight"`
	Recommendations int     `json:"recommendations"`
	Experience      string  `json:"experience,omitempty"`
}

// Percent returns Weight clamped to [0, 100]. The upstream does not
// guarantee the range.
func (s Strength) Percent() float64 {
	switch {
	case s.Weight < 0:
		return 0
	case s.Weight > 100:
		return 100
	default:
		return s.Weight
	}
}
