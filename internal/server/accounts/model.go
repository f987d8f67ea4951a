package accounts

import "time"

// Account is one registered user's credential record. PasswordHash is the
// bcrypt hash of the signup password; the plaintext is never persisted.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	AvatarURL    string
	IsOnboarded  bool
	CreatedAt    time.Time
}

// View is the only outward-facing representation of an Account. It has no
// hash field at all, so the stored hash cannot leak through serialization.
type View struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FullName    string `json:"fullName"`
	AvatarURL   string `json:"avatarUrl"`
	IsOnboarded bool   `json:"isOnboarded"`
}

// Public returns the account's outward representation.
func (a *Account) Public() View {
	return View{
		ID:          a.ID,
		Email:       a.Email,
		FullName:    a.FullName,
		AvatarURL:   a.AvatarURL,
		IsOnboarded: a.IsOnboarded,
	}
}
