package types

// TokenClaims carries the identity embedded in a session token.
type TokenClaims struct {
	UserID   string `json:"user_id"`
	Phone    string `json:"phone"`
	Username string `json:"username"`
}

// ChatRequest is the body of POST /recipe/:id/chat.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// IngredientInput is one entry of a shopping-list request. Amount defaults
// to 1 when omitted.
type IngredientInput struct {
	Name   string  `json:"name" binding:"required"`
	Amount float64 `json:"amount"`
}

// ShoppingListRequest is the body of POST /api/instacart/shopping-list.
type ShoppingListRequest struct {
	Ingredients []IngredientInput `json:"ingredients"`
}

// SendOTPRequest is the body of POST /auth/send-otp.
type SendOTPRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
}

// VerifyOTPRequest is the body of POST /auth/verify-otp. Username is
// optional; when absent an existing or generated name is used.
type VerifyOTPRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	OTPCode     string `json:"otp_code" binding:"required"`
	Username    string `json:"username"`
}

// UpdateUsernameRequest is the body of POST /auth/update-username.
type UpdateUsernameRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Username    string `json:"username" binding:"required"`
}
