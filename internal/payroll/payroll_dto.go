package payroll

type CreatePayrollRequest struct {
	EmployeeID     string `json:"employee_id" binding:"required"`
	Period         string `json:"period" binding:"required"`
	Basic          string `json:"basic" binding:"required"`
	OtherAllowance string `json:"other_allowance"`
	PF             string `json:"pf"`
	OtherDeduction string `json:"other_deduction"`
}

type PayrollResponse struct {
	EmployeeID     string `json:"employee_id"`
	Period         string `json:"period"`
	Basic          string `json:"basic"`
	OtherAllowance string `json:"other_allowance"`
	PF             string `json:"pf"`
	OtherDeduction string `json:"other_deduction"`
}

type ComponentRequest struct {
	ID     string `json:"id" binding:"required"`
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

// ComputeRequest either carries base figures inline or names a stored
// payroll line (employee id + period) to load them from.
type ComputeRequest struct {
	EmployeeID string `json:"employee_id"`
	Period     string `json:"period"`

	Frequency  string `json:"frequency" binding:"required"`
	CustomDays int    `json:"custom_days"`

	Basic          string `json:"basic"`
	OtherAllowance string `json:"other_allowance"`
	PF             string `json:"pf"`
	OtherDeduction string `json:"other_deduction"`

	CustomEarnings   []ComponentRequest `json:"custom_earnings"`
	CustomDeductions []ComponentRequest `json:"custom_deductions"`
}

type ComponentResponse struct {
	ID     string `json:"id"`
	Label  string `json:"label,omitempty"`
	Amount string `json:"amount"`
}

type ComputeResponse struct {
	EmployeeID string `json:"employee_id,omitempty"`
	Period     string `json:"period,omitempty"`
	Frequency  string `json:"frequency"`
	CustomDays int    `json:"custom_days,omitempty"`

	Basic            string              `json:"basic"`
	OtherAllowance   string              `json:"other_allowance"`
	CustomEarnings   []ComponentResponse `json:"custom_earnings,omitempty"`
	Gross            string              `json:"gross"`
	PF               string              `json:"pf"`
	OtherDeduction   string              `json:"other_deduction"`
	CustomDeductions []ComponentResponse `json:"custom_deductions,omitempty"`
	TotalDeductions  string              `json:"total_deductions"`
	Net              string              `json:"net"`
}
