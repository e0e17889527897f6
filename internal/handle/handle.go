package handle

import (
	"fmt"
	"math/rand"
	"regexp"
)

// Default is the handle used when no profile record exists yet.
const Default = "@mango-owl"

var adjectives = []string{
	"mango", "hopeful", "quiet", "sunny", "brave", "gentle",
	"mellow", "bright", "calm", "curious", "kind", "lucky",
}

var animals = []string{
	"owl", "sparrow", "otter", "fox", "panda", "koala",
	"finch", "heron", "lynx", "seal", "wren", "doe",
}

var handlePattern = regexp.MustCompile(`^@[a-z0-9]+(-[a-z0-9]+)*$`)

// New generates a fresh anonymous handle in the @adjective-animal style.
func New() string {
	return fmt.Sprintf("@%s-%s", adjectives[rand.Intn(len(adjectives))], animals[rand.Intn(len(animals))])
}

// Valid reports whether a handle is usable for forum attribution.
func Valid(h string) bool {
	return handlePattern.MatchString(h)
}
