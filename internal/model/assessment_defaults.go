package model

// Default sub-record constructors. Rating fields start at the bottom of
// their 1-10 scale; the differently-scaled fields carry their own historical
// defaults (10 minutes of focus, 10 minutes of daily study, 8 hours of
// sleep). Callers decode a submission over a defaulted sub-record so that
// fields missing from the payload keep these values instead of Go zero
// values.

func DefaultOpening() *OpeningAssessment {
	return &OpeningAssessment{PreparationDepth: 1}
}

func DefaultMiddlegame() *MiddlegameAssessment {
	return &MiddlegameAssessment{
		CalculationAbility: 1,
		TacticalVision:     1,
	}
}

func DefaultEndgame() *EndgameAssessment {
	return &EndgameAssessment{
		EndgameCalculation:   1,
		TheoreticalKnowledge: 1,
		PawnEndgames:         1,
		RookEndgames:         1,
		BishopEndgames:       1,
		KnightEndgames:       1,
		QueenEndgames:        1,
	}
}

func DefaultPsychology() *PsychologyAssessment {
	return &PsychologyAssessment{
		ConfidenceLevel: 1,
		MotivationLevel: 1,
		FocusDuration:   10,
	}
}

func DefaultStudyHabits() *StudyHabitsAssessment {
	return &StudyHabitsAssessment{
		DailyStudyTime:   10,
		StudyConsistency: 1,
	}
}

func DefaultGeneral() *GeneralAssessment {
	return &GeneralAssessment{
		PhysicalStamina:  1,
		SleepBeforeGames: 8,
	}
}
