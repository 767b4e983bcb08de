package project

type CreateProjectRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

type UpdateProjectRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

type ProjectResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
}
