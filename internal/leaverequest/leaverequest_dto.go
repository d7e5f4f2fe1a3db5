package leaverequest

type CreateLeaveRequestRequest struct {
	EmployeeID   string `json:"employee_id" binding:"required"`
	EmployeeName string `json:"employee_name"`
	LeaveType    string `json:"leave_type" binding:"required"`
	FromDate     string `json:"from_date" binding:"required"`
	ToDate       string `json:"to_date" binding:"required"`
	Reason       string `json:"reason"`
	HODName      string `json:"hod_name"`
}

type LeaveRequestResponse struct {
	SerialNo     string `json:"serial_no"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	LeaveType    string `json:"leave_type"`
	FromDate     string `json:"from_date"`
	ToDate       string `json:"to_date"`
	TotalDays    int    `json:"total_days"`
	Reason       string `json:"reason,omitempty"`
	HODName      string `json:"hod_name,omitempty"`
	Status       string `json:"status"`
}
