package dto

// LoginRequest payload for both login screens.
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// RegisterRequest payload for new customers.
type RegisterRequest struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// ForgotPasswordRequest payload for initiating a reset.
type ForgotPasswordRequest struct {
	Email string `json:"email" form:"email"`
}

// PasswordChangeRequest payload for authenticated password changes.
type PasswordChangeRequest struct {
	OldPassword string `json:"oldPassword" form:"oldPassword"`
	NewPassword string `json:"newPassword" form:"newPassword"`
}

// ProfileUpdateRequest edits the signed-in account.
type ProfileUpdateRequest struct {
	Name    string `json:"name" form:"name"`
	Phone   string `json:"phone" form:"phone"`
	Address string `json:"address" form:"address"`
}

// SessionResponse is the navigation state of the current session.
type SessionResponse struct {
	Role       string `json:"role"`
	IsLoggedIn bool   `json:"isLoggedIn"`
	SubjectID  string `json:"subjectId,omitempty"`
	Redirect   string `json:"redirect,omitempty"`
}
