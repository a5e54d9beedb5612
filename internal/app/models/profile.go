package models

// UserProfile is the public identity of a platform user, fetched lazily and
// memoized by user ID within a single screen's lifetime.
type UserProfile struct {
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Bio         string `json:"bio,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Location    string `json:"location,omitempty"`
	UserType    string `json:"user_type"`
	Avatar      string `json:"avatar,omitempty"`
}

// Key implements liststore.Keyed.
func (p UserProfile) Key() string { return p.UserID }
