package company

type CreateCompanyRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

type UpdateCompanyRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

type CompanyResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
