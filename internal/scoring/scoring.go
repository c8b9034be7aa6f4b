// Package scoring derives section scores, an overall score, and the
// critical-area/strength labels from a player assessment. It is pure
// computation: no I/O, no state, safe for concurrent use.
package scoring

import (
	"math"
	"strings"

	"github.com/hapchess/chess-mentor-hub/internal/model"
)

// Section identifies one of the six fixed assessment categories.
type Section string

const (
	SectionOpening     Section = "opening"
	SectionMiddlegame  Section = "middlegame"
	SectionEndgame     Section = "endgame"
	SectionPsychology  Section = "psychology"
	SectionStudyHabits Section = "study_habits"
	SectionGeneral     Section = "general"
)

// sectionOrder fixes the iteration order for analysis and for the
// critical_areas/strengths lists.
var sectionOrder = []Section{
	SectionOpening,
	SectionMiddlegame,
	SectionEndgame,
	SectionPsychology,
	SectionStudyHabits,
	SectionGeneral,
}

const (
	// DefaultScore is returned for an unrecognized section or when no
	// values contribute to a score, and is the overall score of an
	// assessment with no sections. It is an explicit floor, not an error.
	DefaultScore = 1.0

	// criticalThreshold and strengthThreshold bound the label bands.
	// Scores in between yield neither label; the bands cannot overlap.
	criticalThreshold = 3.0
	strengthThreshold = 8.0

	maxNormalizedScore = 10.0
)

// sectionValues maps each section to the values that contribute to its
// score, already normalized onto the common 1-10 scale. A nil result means
// the section is absent from the assessment. Raw 1-10 ratings are taken
// as-is; only the differently-scaled fields (preparation depth, focus
// minutes, study minutes, sleep hours) are rescaled.
var sectionValues = map[Section]func(a *model.PlayerAssessment) []float64{
	SectionOpening: func(a *model.PlayerAssessment) []float64 {
		o := a.Opening
		if o == nil {
			return nil
		}
		// depth is rated 1-20
		return []float64{float64(o.PreparationDepth) / 20 * 10}
	},
	SectionMiddlegame: func(a *model.PlayerAssessment) []float64 {
		m := a.Middlegame
		if m == nil {
			return nil
		}
		return []float64{
			float64(m.CalculationAbility),
			float64(m.TacticalVision),
		}
	},
	SectionEndgame: func(a *model.PlayerAssessment) []float64 {
		e := a.Endgame
		if e == nil {
			return nil
		}
		return []float64{
			float64(e.EndgameCalculation),
			float64(e.TheoreticalKnowledge),
			float64(e.PawnEndgames),
			float64(e.RookEndgames),
			float64(e.BishopEndgames),
			float64(e.KnightEndgames),
			float64(e.QueenEndgames),
		}
	},
	SectionPsychology: func(a *model.PlayerAssessment) []float64 {
		p := a.Psychology
		if p == nil {
			return nil
		}
		return []float64{
			float64(p.ConfidenceLevel),
			float64(p.MotivationLevel),
			saturate(float64(p.FocusDuration) / 60 * 10),
		}
	},
	SectionStudyHabits: func(a *model.PlayerAssessment) []float64 {
		s := a.StudyHabits
		if s == nil {
			return nil
		}
		return []float64{
			float64(s.StudyConsistency),
			saturate(float64(s.DailyStudyTime) / 120 * 10),
		}
	},
	SectionGeneral: func(a *model.PlayerAssessment) []float64 {
		g := a.General
		if g == nil {
			return nil
		}
		return []float64{
			float64(g.PhysicalStamina),
			saturate(g.SleepBeforeGames / 8 * 10),
		}
	},
}

// saturate caps a normalized value at the top of the 1-10 scale. Raw rating
// fields are never clamped, matching the historical behavior.
func saturate(v float64) float64 {
	return math.Min(v, maxNormalizedScore)
}

// DisplayName renders the section tag for coach-facing lists:
// word-capitalized, underscores replaced with spaces ("study_habits"
// becomes "Study Habits").
func (s Section) DisplayName() string {
	words := strings.Split(string(s), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// Analysis is the derived summary of one assessment. It is recomputed on
// demand and never persisted.
type Analysis struct {
	OverallScore  float64            `json:"overall_score"`
	SectionScores map[string]float64 `json:"section_scores"`
	CriticalAreas []string           `json:"critical_areas"`
	Strengths     []string           `json:"strengths"`
}

// ScoreSection computes the scalar score for one category: the unweighted
// mean of that category's normalized values. An unrecognized section, or a
// section contributing no values, scores DefaultScore.
func ScoreSection(a *model.PlayerAssessment, section Section) float64 {
	values, ok := sectionValues[section]
	if !ok {
		return DefaultScore
	}
	return mean(values(a))
}

// Analyze scores every section present on the assessment, in the fixed
// category order, and labels each as a critical area (score <= 3) or a
// strength (score >= 8). Absent sections are skipped; an assessment with no
// sections yields an overall score of DefaultScore.
func Analyze(a *model.PlayerAssessment) Analysis {
	sectionScores := make(map[string]float64, len(sectionOrder))
	criticalAreas := []string{}
	strengths := []string{}

	var sum float64
	for _, section := range sectionOrder {
		vals := sectionValues[section](a)
		if vals == nil {
			continue
		}
		score := mean(vals)
		sectionScores[string(section)] = score
		sum += score

		switch {
		case score <= criticalThreshold:
			criticalAreas = append(criticalAreas, section.DisplayName())
		case score >= strengthThreshold:
			strengths = append(strengths, section.DisplayName())
		}
	}

	overall := DefaultScore
	if len(sectionScores) > 0 {
		overall = sum / float64(len(sectionScores))
	}

	return Analysis{
		OverallScore:  overall,
		SectionScores: sectionScores,
		CriticalAreas: criticalAreas,
		Strengths:     strengths,
	}
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return DefaultScore
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
