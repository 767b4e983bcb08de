package timeentry

import "timetrack/internal/calendar"

type CreateEntryRequest struct {
	ProjectID     string `json:"project_id" binding:"required,uuid"`
	MinutesWorked *int   `json:"minutes_worked" binding:"required,min=0"`
	Description   string `json:"description" binding:"required"`
}

type UpdateEntryRequest struct {
	ProjectID     string `json:"project_id" binding:"required,uuid"`
	MinutesWorked *int   `json:"minutes_worked" binding:"required,min=0"`
	Description   string `json:"description" binding:"required"`
}

type SelectionRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

type EntryResponse struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	MinutesWorked int    `json:"minutes_worked"`
	Description   string `json:"description"`
	ProjectID     string `json:"project_id"`
	ProjectName   string `json:"project_name"`
}

type CalendarResponse struct {
	Year      int             `json:"year"`
	Month     int             `json:"month"`
	MonthName string          `json:"month_name"`
	Today     string          `json:"today"`
	Weeks     []calendar.Week `json:"weeks"`
	Years     []int           `json:"years"`
	Months    []string        `json:"months"`
}

func mapToEntryResponse(e TimeEntry) EntryResponse {
	return EntryResponse{
		ID:            e.ID.String(),
		Date:          e.Date.Format("2006-01-02"),
		MinutesWorked: e.MinutesWorked,
		Description:   e.Description,
		ProjectID:     e.ProjectID.String(),
		ProjectName:   e.Project.Name,
	}
}

func mapToEntryResponses(entries []TimeEntry) []EntryResponse {
	res := make([]EntryResponse, len(entries))
	for i, e := range entries {
		res[i] = mapToEntryResponse(e)
	}
	return res
}
