package types

// RegisterRequest represents the request body for user registration
type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries a freshly issued JWT
type TokenResponse struct {
	Token string `json:"token"`
}

// UpdateProfileRequest represents the request body for updating the health
// profile. Nil fields are left unchanged.
type UpdateProfileRequest struct {
	Age           *int     `json:"age"`
	Gender        *string  `json:"gender" binding:"omitempty,oneof=M F O"`
	Weight        *float64 `json:"weight" binding:"omitempty,gt=0"`
	Height        *float64 `json:"height" binding:"omitempty,gt=0"`
	ActivityLevel *string  `json:"activity_level" binding:"omitempty,oneof=sedentary light moderate very extra"`
	Goal          *string  `json:"goal" binding:"omitempty,oneof=lose maintain gain health"`
	Diseases      *string  `json:"diseases"`
	Allergies     *string  `json:"allergies"`
	DietaryPrefs  *string  `json:"dietary_preferences"`
}

// GenerateMealRequest represents the request body for generating one meal
type GenerateMealRequest struct {
	MealType string `json:"meal_type" binding:"required,oneof=breakfast lunch dinner snack"`
	Date     string `json:"date"` // YYYY-MM-DD, defaults to today
}

// CreatePlanRequest represents the request body for creating a nutrition plan
type CreatePlanRequest struct {
	DurationDays int `json:"duration_days" binding:"omitempty,min=1,max=30"`
}
