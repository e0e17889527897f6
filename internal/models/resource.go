package models

// Resource kinds.
const (
	ResourceVideo   = "video"
	ResourceArticle = "article"
)

// Resource is one entry in the resource hub. Videos carry an external URL
// (played outside the app); articles carry their text inline.
type Resource struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Length  string `json:"length"`
	URL     string `json:"src,omitempty"`
	Content string `json:"content,omitempty"`
}

// Resources returns the built-in resource hub content.
func Resources() []Resource {
	return []Resource{
		{ID: "r1", Kind: ResourceVideo, Title: "How to Manage Stress", Length: "7 min", URL: "https://www.youtube.com/embed/bsaOBWUqdCU"},
		{ID: "r2", Kind: ResourceVideo, Title: "How to Overcome Laziness", Length: "6 min", URL: "https://www.youtube.com/embed/9DbvSl_C_kY"},
		{ID: "r3", Kind: ResourceVideo, Title: "How to Stop Procrastinating", Length: "15 min", URL: "https://www.youtube.com/embed/ctyqx6trUmo"},
		{ID: "r4", Kind: ResourceArticle, Title: "Sleep Hygiene for Students", Length: "4 min", Content: "Getting quality sleep is crucial for academic success. Tips: 1. Stick to a regular sleep schedule. 2. Create a relaxing bedtime routine. 3. Avoid screens before bed. 4. Make sure your bedroom is dark, quiet, and cool."},
	}
}

// FindResource looks a resource up by ID.
func FindResource(id string) (Resource, bool) {
	for _, r := range Resources() {
		if r.ID == id {
			return r, true
		}
	}
	return Resource{}, false
}
