package rolemember

type AssignMemberRequest struct {
	EmployeeID string `json:"employee_id" binding:"notblank,max=64"`
	Role       string `json:"role" binding:"required"`
}

type MemberResponse struct {
	EmployeeID string `json:"employee_id"`
	Role       string `json:"role"`
}
