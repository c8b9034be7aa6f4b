package repository

import (
	"github.com/hapchess/chess-mentor-hub/internal/model"
	"gorm.io/gorm"
)

// AssessmentRepositoryInterface abstracts the assessment store so the
// usecase layer can be exercised without a live database.
type AssessmentRepositoryInterface interface {
	Create(assessment *model.PlayerAssessment) error
	FindByID(id string) (*model.PlayerAssessment, error)
	// FindAll returns assessments newest-first plus the total row count.
	FindAll(limit, offset int) ([]model.PlayerAssessment, int64, error)
}

type AssessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{db}
}

func (r *AssessmentRepository) Create(assessment *model.PlayerAssessment) error {
	return r.db.Create(assessment).Error
}

func (r *AssessmentRepository) FindByID(id string) (*model.PlayerAssessment, error) {
	var assessment model.PlayerAssessment
	err := r.db.First(&assessment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *AssessmentRepository) FindAll(limit, offset int) ([]model.PlayerAssessment, int64, error) {
	var total int64
	if err := r.db.Model(&model.PlayerAssessment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var assessments []model.PlayerAssessment
	err := r.db.
		Order("submission_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&assessments).Error
	if err != nil {
		return nil, 0, err
	}
	return assessments, total, nil
}
