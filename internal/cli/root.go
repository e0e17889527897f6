package cli

import (
	"fmt"
	"strings"

	"github.com/mindlink/mindlink/internal/storage"
)

type Context struct {
	Store storage.Provider
	Debug bool
}

// moodBar renders a 0-9 mood score as a fixed-width bar.
func moodBar(score int) string {
	if score < 0 {
		score = 0
	}
	if score > 9 {
		score = 9
	}
	return strings.Repeat("▇", score) + strings.Repeat("·", 9-score)
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
