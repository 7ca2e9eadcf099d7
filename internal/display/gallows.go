// ABOUTME: The seven gallows drawings, from empty scaffold to the full figure
// ABOUTME: Stage clamps its index so callers can pass any miss count

package display

import "github.com/mauromedda/hangman-go/internal/game"

var stages = [game.StageCount]string{
	`  +---+
  |   |
      |
      |
      |
      |
=========`,
	`  +---+
  |   |
  O   |
      |
      |
      |
=========`,
	`  +---+
  |   |
  O   |
  |   |
      |
      |
=========`,
	`  +---+
  |   |
  O   |
 /|   |
      |
      |
=========`,
	`  +---+
  |   |
  O   |
 /|\  |
      |
      |
=========`,
	`  +---+
  |   |
  O   |
 /|\  |
 /    |
      |
=========`,
	`  +---+
  |   |
  O   |
 /|\  |
 / \  |
      |
=========`,
}

// Stage returns drawing i, clamped to the first and last drawings.
func Stage(i int) string {
	return stages[min(max(i, 0), len(stages)-1)]
}
