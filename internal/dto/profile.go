package dto

import "time"

// UpdateProfileRequest contains profile changes. The password triple is
// optional as a unit: when NewPassword is present, CurrentPassword must match
// the stored hash and PasswordConfirmation must equal NewPassword.
type UpdateProfileRequest struct {
	Name                 string `json:"name" validate:"required,min=1,max=255"`
	Email                string `json:"email" validate:"required,email"`
	CurrentPassword      string `json:"current_password" validate:"required_with=NewPassword"`
	NewPassword          string `json:"new_password" validate:"omitempty,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required_with=NewPassword,eqfield=NewPassword"`
}

// ProfileResponse represents the authenticated user's profile with usage
// figures the settings screen displays.
type ProfileResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	TotalTransactions int64     `json:"total_transactions"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
