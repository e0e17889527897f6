package forum

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mindlink/mindlink/internal/models"
	"github.com/mindlink/mindlink/internal/storage"
)

// ErrEmptyPost is returned when a post body is blank after trimming.
var ErrEmptyPost = errors.New("post text cannot be empty")

// Submit prepends a new post attributed to the given handle. Blank posts
// are rejected with the list unchanged.
func Submit(posts []models.Post, handle, text string) ([]models.Post, error) {
	if strings.TrimSpace(text) == "" {
		return posts, ErrEmptyPost
	}

	post := models.Post{
		ID:     uuid.New().String(),
		Handle: handle,
		Text:   text,
		Up:     0,
	}
	out := make([]models.Post, 0, len(posts)+1)
	out = append(out, post)
	out = append(out, posts...)
	return out, nil
}

// Upvote increments the upvote count of the post with the given ID.
func Upvote(posts []models.Post, id string) ([]models.Post, error) {
	for i := range posts {
		if posts[i].ID == id {
			posts[i].Up++
			return posts, nil
		}
	}
	return posts, fmt.Errorf("post not found: %s", id)
}

// Forum wraps a storage provider with the peer forum operations.
type Forum struct {
	store storage.Provider
}

func New(store storage.Provider) *Forum {
	return &Forum{store: store}
}

// Posts returns all posts, newest first.
func (f *Forum) Posts() []models.Post {
	return f.store.Posts()
}

// Post publishes a new post under the profile's anonymous handle.
func (f *Forum) Post(text string) (models.Post, error) {
	handle := f.store.Profile().AnonymousHandle
	posts, err := Submit(f.store.Posts(), handle, text)
	if err != nil {
		return models.Post{}, err
	}
	if err := f.store.SavePosts(posts); err != nil {
		return models.Post{}, err
	}
	return posts[0], nil
}

// Upvote bumps a post and persists the change.
func (f *Forum) Upvote(id string) error {
	posts, err := Upvote(f.store.Posts(), id)
	if err != nil {
		return err
	}
	return f.store.SavePosts(posts)
}
