package insight

import (
	"fmt"
	"strings"

	"github.com/agenthands/talentscout/internal/model"
)

// Recommend returns the placeholder recommendation cards. They are the same
// for every profile.
func Recommend() []model.RecommendationCategory {
	return []model.RecommendationCategory{
		{
			Type:  "people",
			Title: "Similar Professionals",
			Items: []model.RecommendationItem{
				{Name: "Alex Johnson", Role: "Full Stack Developer", Match: "87%"},
				{Name: "Maria Garcia", Role: "Product Engineer", Match: "92%"},
				{Name: "David Chen", Role: "UX Developer", Match: "79%"},
			},
		},
		{
			Type:  "jobs",
			Title: "Recommended Jobs",
			Items: []model.RecommendationItem{
				{Name: "Senior React Developer", Company: "TechCorp", Match: "95%"},
				{Name: "Product Engineer Intern", Company: "StartupXYZ", Match: "88%"},
				{Name: "Full Stack Developer", Company: "InnovateCo", Match: "91%"},
			},
		},
		{
			Type:  "learning",
			Title: "Skill Development",
			Items: []model.RecommendationItem{
				{Name: "Advanced React Patterns", Platform: "Frontend Masters", Relevance: "High"},
				{Name: "API Design Best Practices", Platform: "Coursera", Relevance: "Medium"},
				{Name: "Data Visualization", Platform: "Udemy", Relevance: "High"},
			},
		},
	}
}

// FocusLine is the one-sentence skill insight, empty when there are no
// strengths.
func FocusLine(a model.Analysis) string {
	if a.TotalSkills == 0 {
		return ""
	}
	return fmt.Sprintf("Based on %d skills, we recommend focusing on: %s", a.TotalSkills, strings.Join(a.Focus, ", "))
}

// View assembles what the profile route returns.
func View(profile model.ProfileData, source string, live bool, errMsg string, attempts []model.Attempt) model.ProfileView {
	analysis := Analyze(profile.Strengths)
	return model.ProfileView{
		Profile:         profile,
		Source:          source,
		Demo:            !live,
		Error:           errMsg,
		Attempts:        attempts,
		Analysis:        analysis,
		Recommendations: Recommend(),
		Insight:         FocusLine(analysis),
	}
}
