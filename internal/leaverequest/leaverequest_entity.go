package leaverequest

import "go-hrfms/internal/sheets"

const (
	PrefixLeaveRequest = "LR"

	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// LeaveRequest is one row of the leave register. Dates stay raw strings; the
// inclusive day count is derived on read and never stored.
type LeaveRequest struct {
	SerialNo     string
	EmployeeID   string
	EmployeeName string
	LeaveType    string
	FromDate     string
	ToDate       string
	Reason       string
	HODName      string
	Status       string
}

// TotalDays is the inclusive length of the date range. Zero when either
// bound is blank or unrecognizable.
func (l LeaveRequest) TotalDays() int {
	from, ok := sheets.ParseDate(l.FromDate)
	if !ok {
		return 0
	}
	to, ok := sheets.ParseDate(l.ToDate)
	if !ok {
		return 0
	}
	if to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours()/24) + 1
}

func (l LeaveRequest) decided() bool {
	return l.Status == StatusApproved || l.Status == StatusRejected
}
