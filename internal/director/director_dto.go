package director

import (
	"timetrack/internal/timeentry"
	"timetrack/internal/user"
)

const (
	FormatTable = 1
	FormatCSV   = 2
	FormatXLSX  = 3
)

type SelectionRequest struct {
	StartDate string   `json:"start_date" binding:"required"`
	EndDate   string   `json:"end_date" binding:"required"`
	UserIDs   []string `json:"user_ids" binding:"required,min=1,dive,uuid"`
	Format    int      `json:"format" binding:"required,oneof=1 2 3"`
}

type EmployeeDetailResponse struct {
	Employee user.UserResponse         `json:"employee"`
	Entries  []timeentry.EntryResponse `json:"entries"`
}

// ReportRow is one exported line, identical across the three formats.
type ReportRow struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Date        string `json:"date"`
	WorkedTime  int    `json:"worked_time"`
	ProjectName string `json:"project_name"`
	Description string `json:"description"`
}
