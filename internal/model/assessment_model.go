package model

import (
	"time"

	"github.com/google/uuid"
)

// OpeningAssessment covers a player's opening repertoire and preparation.
// PreparationDepth is rated on a 1-20 scale; the text fields are free-form
// notes used by coaches and ignored by scoring.
type OpeningAssessment struct {
	WhiteOpenings         string `json:"white_openings"`
	BlackOpenings         string `json:"black_openings"`
	PreparationDepth      int    `json:"preparation_depth"`
	OpeningStudyTime      int    `json:"opening_study_time"`
	FavoriteOpening       string `json:"favorite_opening"`
	OpeningWeaknesses     string `json:"opening_weaknesses"`
	OpeningStudyResources string `json:"opening_study_resources"`
}

type MiddlegameAssessment struct {
	CalculationAbility     int    `json:"calculation_ability"`
	TacticalVision         int    `json:"tactical_vision"`
	MiddlegameStudyTime    int    `json:"middlegame_study_time"`
	MainProblems           string `json:"main_problems"`
	PatternRecognition     string `json:"pattern_recognition"`
	StrategicUnderstanding string `json:"strategic_understanding"`
	PieceCoordination      string `json:"piece_coordination"`
	AttackDefenseBalance   string `json:"attack_defense_balance"`
}

type EndgameAssessment struct {
	EndgameCalculation   int    `json:"endgame_calculation"`
	TheoreticalKnowledge int    `json:"theoretical_knowledge"`
	EndgameStudyTime     int    `json:"endgame_study_time"`
	EndgameIntuition     string `json:"endgame_intuition"`
	PracticalApplication string `json:"practical_application"`
	PawnEndgames         int    `json:"pawn_endgames"`
	RookEndgames         int    `json:"rook_endgames"`
	BishopEndgames       int    `json:"bishop_endgames"`
	KnightEndgames       int    `json:"knight_endgames"`
	QueenEndgames        int    `json:"queen_endgames"`
}

// PsychologyAssessment covers the mental game. FocusDuration is minutes of
// sustained concentration, not a 1-10 rating.
type PsychologyAssessment struct {
	ConfidenceLevel      int    `json:"confidence_level"`
	MotivationLevel      int    `json:"motivation_level"`
	FocusDuration        int    `json:"focus_duration"`
	AnxietyManagement    string `json:"anxiety_management"`
	PressureHandling     string `json:"pressure_handling"`
	TiltRecovery         string `json:"tilt_recovery"`
	CompetitiveMindset   string `json:"competitive_mindset"`
	MentalPreparation    string `json:"mental_preparation"`
	SelfEvaluationSkills string `json:"self_evaluation_skills"`
}

// StudyHabitsAssessment covers training routine. DailyStudyTime is minutes
// per day.
type StudyHabitsAssessment struct {
	DailyStudyTime      int    `json:"daily_study_time"`
	StudyConsistency    int    `json:"study_consistency"`
	PreferredMethods    string `json:"preferred_methods"`
	AnalysisHabits      string `json:"analysis_habits"`
	GameReviewFrequency string `json:"game_review_frequency"`
	CoachInteraction    string `json:"coach_interaction"`
	GoalSetting         string `json:"goal_setting"`
	StudyResources      string `json:"study_resources"`
}

// GeneralAssessment covers everything off the board. SleepBeforeGames is
// hours of sleep.
type GeneralAssessment struct {
	PhysicalStamina   int     `json:"physical_stamina"`
	SleepBeforeGames  float64 `json:"sleep_before_games"`
	NutritionHabits   string  `json:"nutrition_habits"`
	ExerciseRoutine   string  `json:"exercise_routine"`
	TechnologyUsage   string  `json:"technology_usage"`
	TournamentPurpose string  `json:"tournament_purpose"`
	AdditionalNotes   string  `json:"additional_notes"`
}

// PlayerAssessment is one submitted self-assessment. Records are created
// once and never updated; summaries are derived on read. The six category
// sub-records are stored as whole jsonb documents; a nil sub-record means
// the category was absent from the stored document and is skipped by
// scoring.
type PlayerAssessment struct {
	ID             uuid.UUID              `gorm:"type:uuid;primaryKey" json:"id"`
	PlayerName     string                 `gorm:"type:varchar(255);not null" json:"player_name"`
	SubmissionDate time.Time              `gorm:"not null;index" json:"submission_date"`
	Opening        *OpeningAssessment     `gorm:"type:jsonb;serializer:json" json:"opening,omitempty"`
	Middlegame     *MiddlegameAssessment  `gorm:"type:jsonb;serializer:json" json:"middlegame,omitempty"`
	Endgame        *EndgameAssessment     `gorm:"type:jsonb;serializer:json" json:"endgame,omitempty"`
	Psychology     *PsychologyAssessment  `gorm:"type:jsonb;serializer:json" json:"psychology,omitempty"`
	StudyHabits    *StudyHabitsAssessment `gorm:"type:jsonb;serializer:json" json:"study_habits,omitempty"`
	General        *GeneralAssessment     `gorm:"type:jsonb;serializer:json" json:"general,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

func (a *PlayerAssessment) TableName() string {
	return "assessments"
}
