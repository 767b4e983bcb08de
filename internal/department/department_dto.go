package department

type CreateDepartmentRequest struct {
	Name       string   `json:"name" binding:"required,max=200"`
	ProjectIDs []string `json:"project_ids"`
}

// UpdateDepartmentRequest attaches projects on top of the existing set;
// the edit flow never detaches.
type UpdateDepartmentRequest struct {
	Name       string   `json:"name" binding:"required,max=200"`
	ProjectIDs []string `json:"project_ids"`
}

type DepartmentResponse struct {
	ID        string   `json:"id"`
	CompanyID string   `json:"company_id"`
	Name      string   `json:"name"`
	Projects  []string `json:"project_ids"`
}
