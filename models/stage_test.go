package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStages(t *testing.T) {
	t.Run(`fixed set in display order`, func(t *testing.T) {
		stages := Stages()
		require.Len(t, stages, 8)
		require.Equal(t, StageNew, stages[0].Key)
		require.Equal(t, StageArchived, stages[len(stages)-1].Key)
		for idx, info := range stages {
			require.Equal(t, idx+1, info.Order)
			require.NotEmpty(t, info.Label)
		}
	})

	t.Run(`ParseStage accepts known values`, func(t *testing.T) {
		for _, info := range Stages() {
			stage, err := ParseStage(string(info.Key))
			require.NoError(t, err)
			require.Equal(t, info.Key, stage)
		}
	})

	t.Run(`ParseStage rejects unknown values`, func(t *testing.T) {
		for _, value := range []string{"", "screening", "NEW", "new "} {
			_, err := ParseStage(value)
			require.Error(t, err, "value %q must be rejected", value)
		}
	})

	t.Run(`Label falls back to the raw value`, func(t *testing.T) {
		require.Equal(t, "Đã tuyển", StageHired.Label())
		require.Equal(t, "legacy", Stage("legacy").Label())
	})
}
