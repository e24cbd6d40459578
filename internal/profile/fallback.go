package profile

import (
	"context"
	"strings"

	"github.com/agenthands/talentscout/internal/model"
)

const FallbackSource = "fallback"

// FallbackProvider synthesizes demo data. It does no I/O and never fails,
// so a chain ending in it always yields a profile.
type FallbackProvider struct{}

func (FallbackProvider) Name() string {
	return FallbackSource
}

func (f FallbackProvider) Attempt(_ context.Context, username string) (*model.ProfileData, error) {
	data := f.Profile(username)
	return &data, nil
}

func (FallbackProvider) Profile(username string) model.ProfileData {
	return model.ProfileData{
		Person: model.Person{
			ID:       "fallback",
			Name:     strings.ReplaceAll(username, "-", " "),
			Username: username,
			Verified: false,
			Weight:   0,
		},
		Strengths: DemoStrengths(),
	}
}

// DemoStrengths returns a fresh copy of the illustrative strengths shown
// with fallback profiles.
func DemoStrengths() []model.Strength {
	return []model.Strength{
		{ID: "1", Name: "Problem Solving", Weight: 85, Recommendations: 12, Experience: "4 years"},
		{ID: "2", Name: "React Development", Weight: 78, Recommendations: 8, Experience: "3 years"},
		{ID: "3", Name: "API Design", Weight: 92, Recommendations: 15, Experience: "5 years"},
	}
}
