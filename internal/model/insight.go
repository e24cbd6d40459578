package model

type ChartPoint struct {
	Name     string  `json:"name"`
	Value    float64 `json:"value"`
	FullMark float64 `json:"fullMark"`
}

type Analysis struct {
	TotalSkills   int          `json:"totalSkills"`
	AverageWeight int          `json:"averageWeight"`
	ExpertSkills  int          `json:"expertSkills"`
	HasRealData   bool         `json:"hasRealData"`
	TopSkills     []Strength   `json:"topSkills"`
	Chart         []ChartPoint `json:"chart"`
	Focus         []string     `json:"focus"`
}

type RecommendationItem struct {
	Name      string `json:"name"`
	Role      string `json:"role,omitempty"`
	Company   string `json:"company,omitempty"`
	Platform  string `json:"platform,omitempty"`
	Match     string `json:"match,omitempty"`
	Relevance string `json:"relevance,omitempty"`
}

type RecommendationCategory struct {
	Type  string               `json:"type"`
	Title string               `json:"title"`
	Items []RecommendationItem `json:"items"`
}
