package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/hapchess/chess-mentor-hub/internal/model"
)

// AssessmentCreateRequest is the submission payload. Decode it over
// NewAssessmentCreateRequest so that fields missing from a sub-record keep
// their declared defaults.
type AssessmentCreateRequest struct {
	PlayerName  string                       `json:"player_name" validate:"required"`
	Opening     *model.OpeningAssessment     `json:"opening"`
	Middlegame  *model.MiddlegameAssessment  `json:"middlegame"`
	Endgame     *model.EndgameAssessment     `json:"endgame"`
	Psychology  *model.PsychologyAssessment  `json:"psychology"`
	StudyHabits *model.StudyHabitsAssessment `json:"study_habits"`
	General     *model.GeneralAssessment     `json:"general"`
}

// NewAssessmentCreateRequest returns a request pre-populated with every
// sub-record at its defaults.
func NewAssessmentCreateRequest() *AssessmentCreateRequest {
	return &AssessmentCreateRequest{
		Opening:     model.DefaultOpening(),
		Middlegame:  model.DefaultMiddlegame(),
		Endgame:     model.DefaultEndgame(),
		Psychology:  model.DefaultPsychology(),
		StudyHabits: model.DefaultStudyHabits(),
		General:     model.DefaultGeneral(),
	}
}

// AssessmentSummaryDTO is one derived summary row: record identity plus the
// scoring engine's output.
type AssessmentSummaryDTO struct {
	AssessmentID   uuid.UUID          `json:"assessment_id"`
	PlayerName     string             `json:"player_name"`
	SubmissionDate time.Time          `json:"submission_date"`
	OverallScore   float64            `json:"overall_score"`
	SectionScores  map[string]float64 `json:"section_scores"`
	CriticalAreas  []string           `json:"critical_areas"`
	Strengths      []string           `json:"strengths"`
}

type CoachLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CoachLoginResponse struct {
	Message  string `json:"message"`
	CoachID  string `json:"coach_id"`
	Username string `json:"username"`
}
