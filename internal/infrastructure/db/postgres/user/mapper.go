package user

import (
	domain "user-account-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		ID:           model.ID,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		Role:         domain.Role(model.Role),
		Name:         model.Name,
		Surname:      model.Surname,
		Patronymic:   model.Patronymic,
		DateOfBirth:  model.DateOfBirth,
		Status:       domain.Status(model.Status),
		IsBlocked:    model.IsBlocked,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return u
}

func fromDBModels(models *Users) domain.Users {
	us := make(domain.Users, len(*models))
	for idx, u := range *models {
		us[idx] = fromDBModel(u)
	}

	return us
}
