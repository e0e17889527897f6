package breathing

import "fmt"

// DurationSeconds is the length of one guided session.
const DurationSeconds = 120

// warmupSeconds is the "Get ready..." lead-in before pacing begins.
const warmupSeconds = 2

const (
	PhaseReady    = "Get ready..."
	PhaseIn       = "Breathe In..."
	PhaseOut      = "Breathe Out..."
	PhaseFinished = "Finished! Well done."
)

// Phase returns the instruction for a point in the countdown. The cycle is
// eight seconds: the first four breathe in, the last four breathe out.
func Phase(timeLeft int) string {
	switch {
	case timeLeft <= 0:
		return PhaseFinished
	case timeLeft > DurationSeconds-warmupSeconds:
		return PhaseReady
	}
	if timeLeft%8 >= 4 {
		return PhaseIn
	}
	return PhaseOut
}

// Clock formats remaining seconds as M:SS.
func Clock(timeLeft int) string {
	if timeLeft < 0 {
		timeLeft = 0
	}
	return fmt.Sprintf("%d:%02d", timeLeft/60, timeLeft%60)
}
