package models

// Profile holds the user's local identity and preferences. Singleton per
// installation; the handle is the only identity the forum ever sees.
type Profile struct {
	AnonymousHandle string `json:"anonymousHandle"`
	Notifications   bool   `json:"notifications"`
}
