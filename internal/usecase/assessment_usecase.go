package usecase

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/hapchess/chess-mentor-hub/internal/dto"
	"github.com/hapchess/chess-mentor-hub/internal/model"
	"github.com/hapchess/chess-mentor-hub/internal/repository"
	"github.com/hapchess/chess-mentor-hub/internal/response"
	"github.com/hapchess/chess-mentor-hub/internal/scoring"
)

// summaryBatchLimit caps how many records the all-summaries view loads in
// one pass, mirroring the historical 1000-row cap.
const summaryBatchLimit = 1000

type AssessmentUsecase struct {
	assessmentRepo repository.AssessmentRepositoryInterface
	validate       *validator.Validate
}

func NewAssessmentUsecase(assessmentRepo repository.AssessmentRepositoryInterface) *AssessmentUsecase {
	return &AssessmentUsecase{
		assessmentRepo: assessmentRepo,
		validate:       validator.New(),
	}
}

// Submit validates a creation request, stamps identity and submission time,
// and persists the record. Records are immutable after this point.
func (uc *AssessmentUsecase) Submit(req *dto.AssessmentCreateRequest) (*model.PlayerAssessment, error) {
	if err := uc.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid assessment: %w", err)
	}

	assessment := &model.PlayerAssessment{
		ID:             uuid.New(),
		PlayerName:     req.PlayerName,
		SubmissionDate: time.Now().UTC(),
		Opening:        req.Opening,
		Middlegame:     req.Middlegame,
		Endgame:        req.Endgame,
		Psychology:     req.Psychology,
		StudyHabits:    req.StudyHabits,
		General:        req.General,
	}
	if err := uc.assessmentRepo.Create(assessment); err != nil {
		return nil, err
	}
	return assessment, nil
}

// List returns one page of assessments, newest first.
func (uc *AssessmentUsecase) List(page, pageSize int) ([]model.PlayerAssessment, *response.Pagination, error) {
	offset := (page - 1) * pageSize
	assessments, total, err := uc.assessmentRepo.FindAll(pageSize, offset)
	if err != nil {
		return nil, nil, err
	}
	return assessments, response.NewPagination(page, pageSize, total, len(assessments)), nil
}

func (uc *AssessmentUsecase) Get(id string) (*model.PlayerAssessment, error) {
	return uc.assessmentRepo.FindByID(id)
}

// Summarize reads one stored record back and runs the scoring engine over
// it. Summaries are always recomputed, never persisted.
func (uc *AssessmentUsecase) Summarize(id string) (*dto.AssessmentSummaryDTO, error) {
	assessment, err := uc.assessmentRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	summary := uc.summarize(assessment)
	return &summary, nil
}

// SummarizeAll produces a summary row per stored assessment.
func (uc *AssessmentUsecase) SummarizeAll() ([]dto.AssessmentSummaryDTO, error) {
	assessments, _, err := uc.assessmentRepo.FindAll(summaryBatchLimit, 0)
	if err != nil {
		return nil, err
	}
	summaries := make([]dto.AssessmentSummaryDTO, 0, len(assessments))
	for i := range assessments {
		summaries = append(summaries, uc.summarize(&assessments[i]))
	}
	return summaries, nil
}

func (uc *AssessmentUsecase) summarize(assessment *model.PlayerAssessment) dto.AssessmentSummaryDTO {
	analysis := scoring.Analyze(assessment)
	return dto.AssessmentSummaryDTO{
		AssessmentID:   assessment.ID,
		PlayerName:     assessment.PlayerName,
		SubmissionDate: assessment.SubmissionDate,
		OverallScore:   analysis.OverallScore,
		SectionScores:  analysis.SectionScores,
		CriticalAreas:  analysis.CriticalAreas,
		Strengths:      analysis.Strengths,
	}
}
