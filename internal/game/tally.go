// ABOUTME: Win/loss counters carried across rounds by whoever owns the session
// ABOUTME: Only terminal round states are counted

package game

import "fmt"

// Tally counts finished rounds.
type Tally struct {
	Wins   int
	Losses int
}

// Record counts a finished round. InProgress is ignored.
func (t *Tally) Record(s State) {
	switch s {
	case Won:
		t.Wins++
	case Lost:
		t.Losses++
	}
}

func (t Tally) String() string {
	return fmt.Sprintf("Wins: %d | Losses: %d", t.Wins, t.Losses)
}
