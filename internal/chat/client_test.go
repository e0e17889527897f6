package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRespond(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		var req struct {
			Prompt string `json:"prompt"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if req.Prompt != "rough day" {
			t.Errorf("prompt = %q, want %q", req.Prompt, "rough day")
		}
		json.NewEncoder(w).Encode(map[string]string{"text": "I'm here for you."})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.URL)
	got, err := c.Respond(context.Background(), "rough day")
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if got != "I'm here for you." {
		t.Errorf("Respond() = %q", got)
	}
}

func TestRespondEmptyReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.URL)
	if _, err := c.Respond(context.Background(), "hi"); err == nil {
		t.Error("Respond() with empty reply should error")
	}
}

func TestRespondServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.URL)
	if _, err := c.Respond(context.Background(), "hi"); err == nil {
		t.Error("Respond() on 500 should error")
	}
}

func TestGenerateImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"imageUrl": "https://img.example/1.png"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.URL)
	got, err := c.GenerateImage(context.Background(), "calm forest")
	if err != nil {
		t.Fatalf("GenerateImage() error = %v", err)
	}
	if got != "https://img.example/1.png" {
		t.Errorf("GenerateImage() = %q", got)
	}
}

func TestRespondContextCancel(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(srv.URL, srv.URL)
	if _, err := c.Respond(ctx, "hi"); err == nil {
		t.Error("Respond() with canceled context should error")
	}
}
