package domain

import "testing"

func TestSeverityForScore(t *testing.T) {
	tests := []struct {
		score    float64
		expected SeverityLevel
	}{
		{0.0, SeverityLow},
		{3.9, SeverityLow},
		{4.0, SeverityMedium},
		{6.9, SeverityMedium},
		{7.0, SeverityHigh},
		{10.0, SeverityHigh},
	}

	for _, tt := range tests {
		if got := SeverityForScore(tt.score); got != tt.expected {
			t.Errorf("SeverityForScore(%v) = %v, want %v", tt.score, got, tt.expected)
		}
	}
}

func TestSeverityLevelsOrdered(t *testing.T) {
	levels := SeverityLevels()
	if len(levels) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(levels))
	}
	if levels[0] != SeverityLow || levels[2] != SeverityHigh {
		t.Errorf("levels not ordered least to most severe: %v", levels)
	}
}
