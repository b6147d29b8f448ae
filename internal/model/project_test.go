package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateProgress(t *testing.T) {
	tests := []struct {
		name     string
		raised   float64
		goal     float64
		expected float64
	}{
		{
			name:     "zero goal returns zero",
			raised:   5000,
			goal:     0,
			expected: 0,
		},
		{
			name:     "zero raised",
			raised:   0,
			goal:     100000,
			expected: 0,
		},
		{
			name:     "three quarters",
			raised:   75000,
			goal:     100000,
			expected: 75,
		},
		{
			name:     "overfunded clamps to 100",
			raised:   150000,
			goal:     100000,
			expected: 100,
		},
		{
			name:     "exactly funded",
			raised:   100000,
			goal:     100000,
			expected: 100,
		},
		{
			name:     "rounds to one decimal",
			raised:   333,
			goal:     1000,
			expected: 33.3,
		},
		{
			name:     "repeating decimal",
			raised:   1,
			goal:     3,
			expected: 33.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateProgress(tt.raised, tt.goal))
		})
	}
}

func TestProjectStatusIsValid(t *testing.T) {
	assert.True(t, ProjectStatusActive.IsValid())
	assert.True(t, ProjectStatusCompleted.IsValid())
	assert.True(t, ProjectStatusCancelled.IsValid())
	assert.False(t, ProjectStatus("pending").IsValid())
	assert.False(t, ProjectStatus("").IsValid())
}
