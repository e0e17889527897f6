package assessment

import (
	"errors"
	"fmt"
)

// Step is the session's position in the questionnaire flow.
type Step int

const (
	StepSelection Step = iota
	StepQuestions
	StepResult
)

// Unanswered marks a question with no recorded answer yet.
const Unanswered = -1

// ErrInvalidScore is returned for answers outside 0-3. The session state is
// unchanged.
var ErrInvalidScore = errors.New("answer score must be between 0 and 3")

// Session is the transient state of one questionnaire attempt. It is never
// persisted: closing the modal discards it, and a fresh session starts with
// every answer unset.
type Session struct {
	def     Definition
	answers []int
	current int
	step    Step
}

// NewSession starts at instrument selection.
func NewSession() *Session {
	return &Session{step: StepSelection}
}

// Start begins the chosen instrument with a fully unset answer sequence.
// Once questions begin the instrument cannot be switched without discarding
// the session.
func (s *Session) Start(id string) error {
	if s.step != StepSelection {
		return fmt.Errorf("cannot start %s: assessment already in progress", id)
	}
	def, ok := Get(id)
	if !ok {
		return fmt.Errorf("unknown instrument: %s", id)
	}

	s.def = def
	s.answers = make([]int, len(def.Questions))
	for i := range s.answers {
		s.answers[i] = Unanswered
	}
	s.current = 0
	s.step = StepQuestions
	return nil
}

// Answer records a score for the current question. Re-answering before the
// UI advances overwrites the stored score. Advancing is a separate step so
// the caller's pacing delay stays out of the scoring logic.
func (s *Session) Answer(score int) error {
	if s.step != StepQuestions {
		return errors.New("no question awaiting an answer")
	}
	if score < 0 || score > 3 {
		return ErrInvalidScore
	}
	s.answers[s.current] = score
	return nil
}

// Advance moves to the next question, or to the result after the last one.
// A no-op unless the current question has been answered.
func (s *Session) Advance() {
	if s.step != StepQuestions || s.answers[s.current] == Unanswered {
		return
	}
	if s.current < len(s.answers)-1 {
		s.current++
	} else {
		s.step = StepResult
	}
}

// Restart discards everything and returns to instrument selection.
func (s *Session) Restart() {
	*s = Session{step: StepSelection}
}

// Step returns the session's current step.
func (s *Session) Step() Step {
	return s.step
}

// Definition returns the active instrument. Only meaningful after Start.
func (s *Session) Definition() Definition {
	return s.def
}

// CurrentIndex returns the index of the question being asked.
func (s *Session) CurrentIndex() int {
	return s.current
}

// Question returns the current question's prompt.
func (s *Session) Question() string {
	return s.def.Questions[s.current]
}

// CurrentAnswer returns the recorded score for the current question, or
// Unanswered.
func (s *Session) CurrentAnswer() int {
	return s.answers[s.current]
}

// Answers returns a copy of the answer sequence.
func (s *Session) Answers() []int {
	out := make([]int, len(s.answers))
	copy(out, s.answers)
	return out
}

// Result computes the total score, its band, and the high-risk flag.
func (s *Session) Result() (total int, band Band, highRisk bool) {
	total = Score(s.answers)
	return total, Classify(s.def, total), HighRisk(total)
}
