package model

// Person is one professional as returned to the UI, either from a search
// result or as the subject of a profile.
type Person struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	Picture              string  `json:"picture,omitempty"`
	ProfessionalHeadline string  `json:"professionalHeadline,omitempty"`
	Username             string  `json:"username"`
	Verified             bool    `json:"verified"`
	Weight               float64 `json:"weight"`
}
