package reveal

import "testing"

func TestRevealProgression(t *testing.T) {
	r := New("hey")

	if r.Visible() != "" {
		t.Errorf("initial Visible() = %q, want empty", r.Visible())
	}
	if r.Done() {
		t.Error("Done() = true before any tick")
	}

	wants := []string{"h", "he", "hey"}
	for i, want := range wants {
		more := r.Tick()
		if r.Visible() != want {
			t.Errorf("after tick %d Visible() = %q, want %q", i+1, r.Visible(), want)
		}
		if wantMore := i < len(wants)-1; more != wantMore {
			t.Errorf("Tick() %d = %v, want %v", i+1, more, wantMore)
		}
	}
	if !r.Done() {
		t.Error("Done() = false after full reveal")
	}
}

func TestRevealNeverPastEnd(t *testing.T) {
	r := New("ab")
	for i := 0; i < 10; i++ {
		r.Tick()
	}
	if r.Visible() != "ab" {
		t.Errorf("Visible() = %q, want %q", r.Visible(), "ab")
	}
	if r.Tick() {
		t.Error("Tick() past the end reported more to reveal")
	}
}

func TestRevealEmptyMessage(t *testing.T) {
	r := New("")
	if !r.Done() {
		t.Error("empty message should be immediately done")
	}
	if r.Tick() {
		t.Error("Tick() on empty message = true")
	}
}

func TestRevealMultibyte(t *testing.T) {
	r := New("héy")
	r.Tick()
	r.Tick()
	if r.Visible() != "hé" {
		t.Errorf("Visible() = %q, want %q (whole runes only)", r.Visible(), "hé")
	}
}

func TestRevealReset(t *testing.T) {
	r := New("note")
	r.Tick()
	r.Tick()
	r.Reset()
	if r.Visible() != "" || r.Done() {
		t.Errorf("after Reset() Visible() = %q, Done() = %v", r.Visible(), r.Done())
	}
	if !r.Tick() {
		t.Error("Tick() after Reset() = false, want progress")
	}
}
