package reveal

import "time"

// Interval is the per-character reveal pace.
const Interval = 30 * time.Millisecond

// Reveal produces a growing prefix of a message, one rune per tick. It owns
// no timer: the caller paces it (the TUI uses tea.Tick) and simply stops
// ticking to cancel, so teardown mid-reveal is always safe.
type Reveal struct {
	message []rune
	shown   int
}

func New(message string) *Reveal {
	return &Reveal{message: []rune(message)}
}

// Tick reveals one more character. Returns false once the full message is
// visible, signalling the caller to stop pacing.
func (r *Reveal) Tick() bool {
	if r.shown >= len(r.message) {
		return false
	}
	r.shown++
	return r.shown < len(r.message)
}

// Visible returns the currently revealed prefix.
func (r *Reveal) Visible() string {
	return string(r.message[:r.shown])
}

// Done reports whether the full message has been revealed.
func (r *Reveal) Done() bool {
	return r.shown >= len(r.message)
}

// Reset restarts the reveal from an empty prefix.
func (r *Reveal) Reset() {
	r.shown = 0
}
