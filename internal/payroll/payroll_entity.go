package payroll

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Frequency selects how a monthly base figure is scaled for a pay run.
type Frequency string

const (
	FrequencyMonthly Frequency = "Monthly"
	FrequencyWeekly  Frequency = "Weekly"
	FrequencyDaily   Frequency = "Daily"
	FrequencyHourly  Frequency = "Hourly"
	FrequencyCustom  Frequency = "Custom"
)

// ParseFrequency matches case-insensitively. The second return is false for
// anything outside the known set.
func ParseFrequency(s string) (Frequency, bool) {
	for _, f := range []Frequency{FrequencyMonthly, FrequencyWeekly, FrequencyDaily, FrequencyHourly, FrequencyCustom} {
		if strings.EqualFold(s, string(f)) {
			return f, true
		}
	}
	return "", false
}

// Component is one user-added earning or deduction line. Components are
// never prorated; they contribute their amount as entered.
type Component struct {
	ID     string
	Label  string
	Amount decimal.Decimal
}

// UpsertComponent replaces the component with the same id or appends a new
// one. The input slice is not mutated.
func UpsertComponent(list []Component, c Component) []Component {
	out := make([]Component, 0, len(list)+1)
	replaced := false
	for _, existing := range list {
		if existing.ID == c.ID {
			out = append(out, c)
			replaced = true
			continue
		}
		out = append(out, existing)
	}
	if !replaced {
		out = append(out, c)
	}
	return out
}

// RemoveComponent drops the component with the given id, if present. Its
// amount stops contributing on the next computation; prior results are not
// revisited.
func RemoveComponent(list []Component, id string) []Component {
	out := make([]Component, 0, len(list))
	for _, existing := range list {
		if existing.ID == id {
			continue
		}
		out = append(out, existing)
	}
	return out
}

// Payroll is the stored salary line for an employee and period. Only base
// figures are persisted; gross, total deductions and net are always derived.
type Payroll struct {
	EmployeeID     string
	Period         string
	Basic          decimal.Decimal
	OtherAllowance decimal.Decimal
	PF             decimal.Decimal
	OtherDeduction decimal.Decimal
}
