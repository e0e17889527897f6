package breathing

import "testing"

func TestPhase(t *testing.T) {
	tests := []struct {
		name     string
		timeLeft int
		want     string
	}{
		{name: "start is warmup", timeLeft: 120, want: PhaseReady},
		{name: "last warmup second", timeLeft: 119, want: PhaseReady},
		{name: "cycle high half breathes in", timeLeft: 117, want: PhaseIn},
		{name: "cycle low half breathes out", timeLeft: 115, want: PhaseOut},
		{name: "boundary four", timeLeft: 12, want: PhaseIn},
		{name: "boundary three", timeLeft: 11, want: PhaseOut},
		{name: "zero is finished", timeLeft: 0, want: PhaseFinished},
		{name: "negative clamps to finished", timeLeft: -1, want: PhaseFinished},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Phase(tt.timeLeft); got != tt.want {
				t.Errorf("Phase(%d) = %q, want %q", tt.timeLeft, got, tt.want)
			}
		})
	}
}

func TestClock(t *testing.T) {
	tests := []struct {
		timeLeft int
		want     string
	}{
		{timeLeft: 120, want: "2:00"},
		{timeLeft: 65, want: "1:05"},
		{timeLeft: 9, want: "0:09"},
		{timeLeft: 0, want: "0:00"},
		{timeLeft: -5, want: "0:00"},
	}

	for _, tt := range tests {
		if got := Clock(tt.timeLeft); got != tt.want {
			t.Errorf("Clock(%d) = %q, want %q", tt.timeLeft, got, tt.want)
		}
	}
}
