package models

// Mission is a small act-of-kindness prompt. The set is fixed; completion
// state lives in the store as a list of completed IDs.
type Mission struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Missions returns the built-in mission list.
func Missions() []Mission {
	return []Mission{
		{ID: "m1", Text: "Leave a positive, encouraging note in a random library book for someone to find."},
		{ID: "m2", Text: "Anonymously pay for the person's coffee behind you in the campus cafe."},
		{ID: "m3", Text: "Offer genuine help to a classmate who seems to be struggling with a concept."},
	}
}
