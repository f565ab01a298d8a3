package user

import (
	"time"
)

type (
	User struct {
		ID          int64     `json:"id"`
		Email       string    `json:"email"`
		Role        string    `json:"role"`
		Name        string    `json:"name"`
		Surname     string    `json:"surname"`
		Patronymic  string    `json:"patronymic"`
		DateOfBirth string    `json:"dateOfBirth"`
		Status      string    `json:"status"`
		IsBlocked   bool      `json:"isBlocked"`
		CreatedAt   time.Time `json:"createdAt"`
	}
	Users []User
	Page  struct {
		Items       Users `json:"items"`
		TotalPages  int   `json:"totalPages"`
		CurrentPage int   `json:"currentPage"`
	}
	MessageResponse struct {
		Message string `json:"message"`
	}
)
