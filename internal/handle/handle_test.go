package handle

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	for i := 0; i < 50; i++ {
		h := New()
		if !strings.HasPrefix(h, "@") {
			t.Fatalf("New() = %q, want leading @", h)
		}
		if !Valid(h) {
			t.Fatalf("New() = %q, failed Valid()", h)
		}
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		name   string
		handle string
		want   bool
	}{
		{name: "default handle", handle: Default, want: true},
		{name: "single word", handle: "@owl", want: true},
		{name: "missing at sign", handle: "mango-owl", want: false},
		{name: "empty", handle: "", want: false},
		{name: "uppercase", handle: "@Mango-Owl", want: false},
		{name: "spaces", handle: "@mango owl", want: false},
		{name: "trailing dash", handle: "@mango-", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Valid(tt.handle); got != tt.want {
				t.Errorf("Valid(%q) = %v, want %v", tt.handle, got, tt.want)
			}
		})
	}
}
