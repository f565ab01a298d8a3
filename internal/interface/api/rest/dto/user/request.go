package user

type (
	Request struct {
		Email       string `json:"email"`
		Password    string `json:"password"`
		Role        string `json:"role"`
		Name        string `json:"name"`
		Surname     string `json:"surname"`
		Patronymic  string `json:"patronymic"`
		DateOfBirth string `json:"dateOfBirth"`
	}
	// AdminBlockRequest re-enters the administrator's credentials;
	// ID is the account to block.
	AdminBlockRequest struct {
		Email      string `json:"email"`
		AdminEmail string `json:"adminemail"`
		Password   string `json:"password"`
		ID         int64  `json:"id"`
	}
	SelfBlockRequest struct {
		Email     string `json:"email"`
		UserEmail string `json:"useremail"`
		Password  string `json:"password"`
		ID        int64  `json:"id"`
	}
)
