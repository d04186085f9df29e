package model

// User is the signed-in identity. It is created on sign-in or sign-up and
// persists until explicit sign-out; no real credential store backs it.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// NewUser creates a User with a generated ID.
func NewUser(email, name string) User {
	return User{
		ID:    generateUUID(),
		Email: email,
		Name:  name,
	}
}
