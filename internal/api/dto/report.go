package dto

type BestPairRequest struct {
	AsOf    string `json:"as_of"`
	Workers int    `json:"workers"`
}

type ProjectOverlapResponse struct {
	ProjectID string `json:"project_id"`
	Days      int    `json:"days"`
}

type BestPairResponse struct {
	EmployeeA string                   `json:"employee_a"`
	EmployeeB string                   `json:"employee_b"`
	TotalDays int                      `json:"total_days"`
	Projects  []ProjectOverlapResponse `json:"projects"`
}
