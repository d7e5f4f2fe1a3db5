package payroll

import (
	"context"
	"strings"

	"go-hrfms/internal/sheets"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	colEmployeeID     = "Employee ID"
	colPeriod         = "Period"
	colBasic          = "Basic"
	colOtherAllowance = "Other Allowance"
	colPF             = "PF"
	colOtherDeduction = "Other Deduction"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Payroll, error)
	FindByEmployeeAndPeriod(ctx context.Context, employeeID, period string) (*Payroll, error)
	Insert(ctx context.Context, p Payroll) error
}

type repository struct {
	client sheets.Client
	logger *zap.Logger
}

func NewRepository(client sheets.Client, logger ...*zap.Logger) Repository {
	l := zap.L().Named("payroll.repo")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.repo")
	}
	return &repository{client: client, logger: l}
}

// amountCell parses a money cell. Blank is zero; anything unparseable is
// also zero, with a warning, so one bad cell does not take the whole sheet
// listing down.
func (r *repository) amountCell(raw, label, employeeID string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		r.logger.Warn("unparseable amount cell",
			zap.String("column", label),
			zap.String("employee_id", employeeID),
			zap.String("value", s),
		)
		return decimal.Zero
	}
	return d
}

func (r *repository) FindAll(ctx context.Context) ([]Payroll, error) {
	snap, err := r.client.Fetch(ctx, sheets.TablePayroll.Name)
	if err != nil {
		return nil, err
	}

	var out []Payroll
	for _, row := range sheets.DataRows(snap, sheets.TablePayroll) {
		employeeID := row.Get(colEmployeeID)
		if employeeID == "" {
			continue
		}
		out = append(out, Payroll{
			EmployeeID:     employeeID,
			Period:         row.Get(colPeriod),
			Basic:          r.amountCell(row.Get(colBasic), colBasic, employeeID),
			OtherAllowance: r.amountCell(row.Get(colOtherAllowance), colOtherAllowance, employeeID),
			PF:             r.amountCell(row.Get(colPF), colPF, employeeID),
			OtherDeduction: r.amountCell(row.Get(colOtherDeduction), colOtherDeduction, employeeID),
		})
	}
	return out, nil
}

func (r *repository) FindByEmployeeAndPeriod(ctx context.Context, employeeID, period string) (*Payroll, error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].EmployeeID == employeeID && all[i].Period == period {
			return &all[i], nil
		}
	}
	return nil, nil
}

func (r *repository) Insert(ctx context.Context, p Payroll) error {
	row := []string{
		p.EmployeeID,
		p.Period,
		p.Basic.StringFixed(2),
		p.OtherAllowance.StringFixed(2),
		p.PF.StringFixed(2),
		p.OtherDeduction.StringFixed(2),
	}
	return r.client.Insert(ctx, sheets.TablePayroll.Name, row)
}
