// ABOUTME: Tests for the gallows drawings and index clamping
// ABOUTME: Every drawing has the same height so panels line up

package display

import (
	"strings"
	"testing"
)

func TestStage_Clamps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int
		want int
	}{
		{in: -3, want: 0},
		{in: 0, want: 0},
		{in: 4, want: 4},
		{in: 6, want: 6},
		{in: 99, want: 6},
	}
	for _, tt := range tests {
		if Stage(tt.in) != stages[tt.want] {
			t.Errorf("Stage(%d) is not drawing %d", tt.in, tt.want)
		}
	}
}

func TestStages_Progression(t *testing.T) {
	t.Parallel()

	if strings.Contains(Stage(0), "O") {
		t.Error("first drawing should be an empty scaffold")
	}
	if !strings.Contains(Stage(6), `/ \`) {
		t.Error("last drawing should have both legs")
	}
	lines := strings.Count(stages[0], "\n")
	for i, s := range stages {
		if n := strings.Count(s, "\n"); n != lines {
			t.Errorf("drawing %d has %d lines, want %d", i, n+1, lines+1)
		}
	}
}
