package model

// ProfileData is the normalized shape every profile source must produce.
type ProfileData struct {
	Person    Person     `json:"person"`
	Strengths []Strength `json:"strengths"`
}

// Attempt records one failed profile source.
type Attempt struct {
	Source string `json:"source"`
	Status int    `json:"status,omitempty"`
	Error  string `json:"error"`
}

// ProfileView is what the profile route hands to the UI.
type ProfileView struct {
	Profile         ProfileData              `json:"profile"`
	Source          string                   `json:"source"`
	Demo            bool                     `json:"demo"`
	Error           string                   `json:"error,omitempty"`
	Attempts        []Attempt                `json:"attempts"`
	Analysis        Analysis                 `json:"analysis"`
	Recommendations []RecommendationCategory `json:"recommendations"`
	Insight         string                   `json:"insight,omitempty"`
}
