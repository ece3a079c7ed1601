package manager

type UpsertManagerRequest struct {
	Name             string `json:"name" binding:"notblank,max=150"`
	ReportingManager string `json:"reporting_manager" binding:"max=150"`
}

type ManagerResponse struct {
	EmployeeID       string `json:"employee_id"`
	Name             string `json:"name"`
	ReportingManager string `json:"reporting_manager"`
}
