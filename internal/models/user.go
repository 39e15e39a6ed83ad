package models

// UserRecord is the canonical user document as the remote system returns it.
// Registration responses carry "user_id" while login/get responses carry the
// raw "_id"; Identifier hides the difference.
type UserRecord struct {
	ID     string `json:"_id,omitempty"`
	UserID string `json:"user_id,omitempty"`
	Profile
}

func (u UserRecord) Identifier() string {
	if u.UserID != "" {
		return u.UserID
	}
	return u.ID
}
