// Package insight derives the display figures shown next to a profile:
// skill statistics, chart series and the static recommendation cards.
package insight

import (
	"math"
	"sort"

	"github.com/agenthands/talentscout/internal/model"
)

const (
	TopSkillCount   = 5
	ChartSkillCount = 8
	FocusSkillCount = 3
	// ExpertThreshold is the weight a skill must exceed to count as expert.
	ExpertThreshold = 80
	FullMark        = 100
)

// Analyze summarizes strengths. The input slice is not reordered.
func Analyze(strengths []model.Strength) model.Analysis {
	ranked := rank(strengths)

	a := model.Analysis{
		TotalSkills: len(strengths),
		TopSkills:   head(ranked, TopSkillCount),
		Chart:       make([]model.ChartPoint, 0, min(len(ranked), ChartSkillCount)),
		Focus:       make([]string, 0, min(len(ranked), FocusSkillCount)),
	}

	var total float64
	for _, s := range strengths {
		total += s.Weight
		if s.Weight > 0 {
			a.HasRealData = true
		}
		if s.Weight > ExpertThreshold {
			a.ExpertSkills++
		}
	}
	if len(strengths) > 0 {
		a.AverageWeight = int(math.Round(total / float64(len(strengths))))
	}

	for _, s := range head(ranked, ChartSkillCount) {
		a.Chart = append(a.Chart, model.ChartPoint{Name: s.Name, Value: s.Percent(), FullMark: FullMark})
	}
	for _, s := range head(ranked, FocusSkillCount) {
		a.Focus = append(a.Focus, s.Name)
	}
	return a
}

// rank returns a copy of strengths ordered by weight, heaviest first. Ties
// keep their original order.
func rank(strengths []model.Strength) []model.Strength {
	ranked := make([]model.Strength, len(strengths))
	copy(ranked, strengths)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Weight > ranked[j].Weight
	})
	return ranked
}

func head(s []model.Strength, n int) []model.Strength {
	if len(s) > n {
		return s[:n]
	}
	return s
}
