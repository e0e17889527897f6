package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to the companion backend: a prompt in, text or an image URL
// out. It is a fully decoupled collaborator — nothing in the core state
// layer depends on it.
type Client struct {
	httpClient *http.Client
	textURL    string
	imageURL   string
}

func NewClient(textURL, imageURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		textURL:    textURL,
		imageURL:   imageURL,
	}
}

type request struct {
	Prompt string `json:"prompt"`
}

type response struct {
	Text     string `json:"text"`
	ImageURL string `json:"imageUrl"`
}

func (c *Client) post(ctx context.Context, url, prompt string) (response, error) {
	body, err := json.Marshal(request{Prompt: prompt})
	if err != nil {
		return response{}, fmt.Errorf("failed to encode prompt: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return response{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response{}, fmt.Errorf("companion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return response{}, fmt.Errorf("companion returned status %d", resp.StatusCode)
	}

	var out response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return response{}, fmt.Errorf("failed to decode companion response: %w", err)
	}
	return out, nil
}

// Respond sends a conversational prompt and returns the companion's reply.
func (c *Client) Respond(ctx context.Context, prompt string) (string, error) {
	out, err := c.post(ctx, c.textURL, prompt)
	if err != nil {
		return "", err
	}
	if out.Text == "" {
		return "", fmt.Errorf("companion returned an empty reply")
	}
	return out.Text, nil
}

// GenerateImage sends a prompt and returns a URL to a generated image.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	out, err := c.post(ctx, c.imageURL, prompt)
	if err != nil {
		return "", err
	}
	if out.ImageURL == "" {
		return "", fmt.Errorf("companion returned no image URL")
	}
	return out.ImageURL, nil
}
