package auth

type (
	LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	LogoutRequest struct {
		ID int64 `json:"id"`
	}
	TokenResponse struct {
		Token     string `json:"token"`
		TokenType string `json:"token_type"`
	}
)
