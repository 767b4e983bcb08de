package administrator

type InviteRequest struct {
	Email        string `json:"email" binding:"required,email,max=254"`
	FirstName    string `json:"first_name" binding:"required,max=150"`
	LastName     string `json:"last_name" binding:"required,max=150"`
	Role         int    `json:"role" binding:"required,oneof=2 3"`
	Post         string `json:"post" binding:"max=200"`
	DepartmentID string `json:"department_id" binding:"required,uuid"`
}

type ChangeUserRequest struct {
	DepartmentID string `json:"department_id" binding:"required,uuid"`
	Post         string `json:"post" binding:"max=200"`
	IsActive     *bool  `json:"is_active" binding:"required"`
}

type InvitationResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Code         string `json:"code"`
	Role         int    `json:"role"`
	Post         string `json:"post"`
	DepartmentID string `json:"department_id"`
}

func mapInvitationToResponse(inv Invitation) InvitationResponse {
	return InvitationResponse{
		ID:           inv.ID.String(),
		Email:        inv.Email,
		FirstName:    inv.FirstName,
		LastName:     inv.LastName,
		Code:         inv.Code,
		Role:         int(inv.Role),
		Post:         inv.Post,
		DepartmentID: inv.DepartmentID.String(),
	}
}
