package value_objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input   string
		want    Priority
		wantErr bool
	}{
		{"low", PriorityLow, false},
		{"Low", PriorityLow, false},
		{"medium", PriorityMedium, false},
		{"HIGH", PriorityHigh, false},
		{"  high  ", PriorityHigh, false},
		{"urgent", PriorityMedium, true},
		{"", PriorityMedium, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePriority(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidPriority)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPriority_String(t *testing.T) {
	assert.Equal(t, "Low", PriorityLow.String())
	assert.Equal(t, "Medium", PriorityMedium.String())
	assert.Equal(t, "High", PriorityHigh.String())
	assert.Equal(t, "unknown", Priority(42).String())
}

func TestPriority_Weight(t *testing.T) {
	assert.Greater(t, PriorityHigh.Weight(), PriorityMedium.Weight())
	assert.Greater(t, PriorityMedium.Weight(), PriorityLow.Weight())
}

func TestPriority_IsValid(t *testing.T) {
	assert.True(t, PriorityLow.IsValid())
	assert.True(t, PriorityHigh.IsValid())
	assert.False(t, Priority(-1).IsValid())
}
