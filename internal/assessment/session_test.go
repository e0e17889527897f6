package assessment

import (
	"errors"
	"testing"
)

func TestSessionStart(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantLen int
		wantErr bool
	}{
		{name: "gad7", id: "gad7", wantLen: 7},
		{name: "phq9", id: "phq9", wantLen: 9},
		{name: "unknown instrument", id: "ocd10", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession()
			err := s.Start(tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Start() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if s.Step() != StepSelection {
					t.Error("failed Start() should stay at selection")
				}
				return
			}
			if s.Step() != StepQuestions {
				t.Errorf("Step() = %v, want StepQuestions", s.Step())
			}
			if s.CurrentIndex() != 0 {
				t.Errorf("CurrentIndex() = %d, want 0", s.CurrentIndex())
			}
			answers := s.Answers()
			if len(answers) != tt.wantLen {
				t.Fatalf("len(answers) = %d, want %d", len(answers), tt.wantLen)
			}
			for i, a := range answers {
				if a != Unanswered {
					t.Errorf("answers[%d] = %d, want Unanswered", i, a)
				}
			}
		})
	}
}

func TestSessionCannotSwitchInstrumentMidway(t *testing.T) {
	s := NewSession()
	if err := s.Start("gad7"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := s.Start("phq9"); err == nil {
		t.Fatal("Start() during questions should error")
	}
	if s.Definition().ID != "gad7" {
		t.Errorf("instrument changed to %s", s.Definition().ID)
	}
}

func TestSessionAnswerValidation(t *testing.T) {
	s := NewSession()
	if err := s.Answer(2); err == nil {
		t.Error("Answer() before Start() should error")
	}

	if err := s.Start("gad7"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	for _, score := range []int{-1, 4, 99} {
		if err := s.Answer(score); !errors.Is(err, ErrInvalidScore) {
			t.Errorf("Answer(%d) error = %v, want ErrInvalidScore", score, err)
		}
	}
	if s.CurrentAnswer() != Unanswered {
		t.Error("rejected answer mutated session state")
	}
}

func TestSessionReanswerOverwrites(t *testing.T) {
	s := NewSession()
	if err := s.Start("gad7"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if err := s.Answer(1); err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	if err := s.Answer(3); err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	if s.CurrentAnswer() != 3 {
		t.Errorf("CurrentAnswer() = %d, want 3 (latest wins)", s.CurrentAnswer())
	}
	if s.CurrentIndex() != 0 {
		t.Error("Answer() should not advance on its own")
	}
}

func TestSessionAdvanceRequiresAnswer(t *testing.T) {
	s := NewSession()
	if err := s.Start("gad7"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	s.Advance()
	if s.CurrentIndex() != 0 {
		t.Error("Advance() moved past an unanswered question")
	}
}

func TestSessionFullWalk(t *testing.T) {
	s := NewSession()
	if err := s.Start("phq9"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	scores := []int{1, 2, 1, 2, 1, 2, 1, 2, 3}
	for i, score := range scores {
		if got := len(s.Answers()); got != 9 {
			t.Fatalf("answer sequence length = %d at question %d, want 9", got, i)
		}
		if err := s.Answer(score); err != nil {
			t.Fatalf("Answer(%d) error = %v", score, err)
		}
		s.Advance()
	}

	if s.Step() != StepResult {
		t.Fatalf("Step() = %v after final answer, want StepResult", s.Step())
	}

	total, band, highRisk := s.Result()
	if total != 15 {
		t.Errorf("total = %d, want 15", total)
	}
	if band.Label != "Moderately Severe Depression" {
		t.Errorf("band = %q, want Moderately Severe Depression", band.Label)
	}
	if !highRisk {
		t.Error("highRisk = false for total 15")
	}
}

func TestSessionRestartDiscardsEverything(t *testing.T) {
	s := NewSession()
	if err := s.Start("gad7"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	for i := 0; i < 7; i++ {
		if err := s.Answer(3); err != nil {
			t.Fatalf("Answer() error = %v", err)
		}
		s.Advance()
	}
	if s.Step() != StepResult {
		t.Fatalf("Step() = %v, want StepResult", s.Step())
	}

	s.Restart()
	if s.Step() != StepSelection {
		t.Fatalf("Step() after Restart() = %v, want StepSelection", s.Step())
	}

	// Reopening the same instrument starts with a fully unset sequence: no
	// leakage from the discarded attempt.
	if err := s.Start("gad7"); err != nil {
		t.Fatalf("Start() after Restart() error = %v", err)
	}
	for i, a := range s.Answers() {
		if a != Unanswered {
			t.Errorf("answers[%d] = %d after restart, want Unanswered", i, a)
		}
	}
	if total, _, _ := s.Result(); total != 0 {
		t.Errorf("total = %d on fresh session, want 0", total)
	}
}

func TestSessionAllZeroGAD7(t *testing.T) {
	s := NewSession()
	if err := s.Start("gad7"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	for i := 0; i < 7; i++ {
		if err := s.Answer(0); err != nil {
			t.Fatalf("Answer(0) error = %v", err)
		}
		s.Advance()
	}

	total, band, highRisk := s.Result()
	if total != 0 {
		t.Errorf("total = %d, want 0", total)
	}
	if band.Label != "Minimal Anxiety" {
		t.Errorf("band = %q, want Minimal Anxiety", band.Label)
	}
	if highRisk {
		t.Error("highRisk = true for total 0")
	}
}
