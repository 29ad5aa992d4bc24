package dto

type AssignmentResponse struct {
	EmployeeID string  `json:"employee_id"`
	ProjectID  string  `json:"project_id"`
	DateFrom   string  `json:"date_from"`
	DateTo     *string `json:"date_to"`
}

type ListAssignmentsResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
}
