package profile

import "estatelink/internal/domain"

type UpdateRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

type ListUsersParams struct {
	Role   string `form:"role"`
	Status string `form:"status"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

type UserListResponse struct {
	Users []domain.User `json:"users"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active suspended"`
}
