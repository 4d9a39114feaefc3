package models

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// NewUser is the registration request body.
type NewUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PasswordChange is the body of PATCH /users/{id}/password/.
type PasswordChange struct {
	ID              UserID `json:"id"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// EmailChange is the body of PATCH /users/{id}/email/.
type EmailChange struct {
	ID       UserID `json:"id"`
	Password string `json:"password"`
	NewEmail string `json:"newEmail"`
}

// Message is a bare {"message": "..."} response.
type Message struct {
	Message string `json:"message"`
}
