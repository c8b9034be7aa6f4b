package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapchess/chess-mentor-hub/internal/model"
)

func TestDefaultsCarryScaleFloors(t *testing.T) {
	assert.Equal(t, 1, model.DefaultOpening().PreparationDepth)
	assert.Equal(t, 1, model.DefaultMiddlegame().CalculationAbility)
	assert.Equal(t, 1, model.DefaultEndgame().QueenEndgames)
	assert.Equal(t, 10, model.DefaultPsychology().FocusDuration)
	assert.Equal(t, 10, model.DefaultStudyHabits().DailyStudyTime)
	assert.Equal(t, 8.0, model.DefaultGeneral().SleepBeforeGames)
}

func TestPartialSubRecordDecodeKeepsDefaults(t *testing.T) {
	// Decoding a submission over a defaulted sub-record fills only the
	// fields present in the payload.
	psych := model.DefaultPsychology()
	err := json.Unmarshal([]byte(`{"confidence_level": 7}`), psych)
	require.NoError(t, err)

	assert.Equal(t, 7, psych.ConfidenceLevel)
	assert.Equal(t, 1, psych.MotivationLevel)
	assert.Equal(t, 10, psych.FocusDuration)
}

func TestAssessmentJSONShape(t *testing.T) {
	a := model.PlayerAssessment{
		PlayerName: "Vera",
		Opening:    model.DefaultOpening(),
	}
	raw, err := json.Marshal(a)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Contains(t, decoded, "opening")
	// absent sub-records stay out of the document entirely
	assert.NotContains(t, decoded, "endgame")
}
