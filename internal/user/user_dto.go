package user

type UpdateProfileRequest struct {
	FirstName string `json:"first_name" binding:"required,max=150"`
	LastName  string `json:"last_name" binding:"required,max=150"`
}

type ChangePasswordRequest struct {
	OldPassword     string `json:"old_password" binding:"required"`
	Password        string `json:"password" binding:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" binding:"required,min=8"`
}

type UserResponse struct {
	ID           string `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Role         int    `json:"role"`
	DepartmentID string `json:"department_id,omitempty"`
	Post         string `json:"post"`
	IsActive     bool   `json:"is_active"`
}

func MapToResponse(u User) UserResponse {
	resp := UserResponse{
		ID:        u.ID.String(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      int(u.Role),
		Post:      u.Post,
		IsActive:  u.IsActive,
	}
	if u.DepartmentID != nil {
		resp.DepartmentID = u.DepartmentID.String()
	}
	return resp
}
