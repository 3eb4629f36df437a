package dto

type RegisterUserRequest struct {
	ClerkUserID string `json:"clerk_user_id" binding:"required"`
	Email       string `json:"email" binding:"required" validate:"required,email"`
	Name        string `json:"name"`
	ImageURL    string `json:"image_url"`
}

type OnboardUserRequest struct {
	Industry   string   `json:"industry" binding:"required" validate:"required,min=2,max=100"`
	Bio        string   `json:"bio" validate:"max=2000"`
	Experience *int     `json:"experience" validate:"omitempty,min=0,max=60"`
	Skills     []string `json:"skills" validate:"max=50"`
}

type UserResponse struct {
	ID         string   `json:"id"`
	Email      string   `json:"email"`
	Name       string   `json:"name"`
	ImageURL   string   `json:"image_url,omitempty"`
	Industry   *string  `json:"industry,omitempty"`
	Bio        string   `json:"bio,omitempty"`
	Experience *int     `json:"experience,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	Tokens     int      `json:"tokens"`
}
