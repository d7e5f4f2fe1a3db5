package payroll

import (
	"context"
	"strings"

	payrollerrors "go-hrfms/internal/payroll/errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreatePayrollRequest) (PayrollResponse, error)
	GetAll(ctx context.Context) ([]PayrollResponse, error)
	// Compute derives gross, total deductions and net. Base figures come
	// inline, or from the stored line named by employee id and period when
	// the inline amounts are all blank.
	Compute(ctx context.Context, req ComputeRequest) (ComputeResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{repo: repo, logger: l}
}

func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, payrollerrors.ErrInvalidAmount
	}
	return d, nil
}

func parseComponents(reqs []ComponentRequest) ([]Component, error) {
	var out []Component
	for _, cr := range reqs {
		amount, err := parseAmount(cr.Amount)
		if err != nil {
			return nil, err
		}
		out = UpsertComponent(out, Component{ID: cr.ID, Label: cr.Label, Amount: amount})
	}
	return out, nil
}

func (s *service) Create(ctx context.Context, req CreatePayrollRequest) (PayrollResponse, error) {
	basic, err := parseAmount(req.Basic)
	if err != nil {
		return PayrollResponse{}, err
	}
	otherAllowance, err := parseAmount(req.OtherAllowance)
	if err != nil {
		return PayrollResponse{}, err
	}
	pf, err := parseAmount(req.PF)
	if err != nil {
		return PayrollResponse{}, err
	}
	otherDeduction, err := parseAmount(req.OtherDeduction)
	if err != nil {
		return PayrollResponse{}, err
	}

	existing, err := s.repo.FindByEmployeeAndPeriod(ctx, req.EmployeeID, req.Period)
	if err != nil {
		return PayrollResponse{}, err
	}
	if existing != nil {
		return PayrollResponse{}, payrollerrors.ErrPayrollExists
	}

	p := Payroll{
		EmployeeID:     req.EmployeeID,
		Period:         req.Period,
		Basic:          basic,
		OtherAllowance: otherAllowance,
		PF:             pf,
		OtherDeduction: otherDeduction,
	}
	if err := s.repo.Insert(ctx, p); err != nil {
		s.logger.Error("insert payroll failed",
			zap.String("employee_id", req.EmployeeID),
			zap.String("period", req.Period),
			zap.Error(err),
		)
		return PayrollResponse{}, err
	}

	s.logger.Info("payroll line created",
		zap.String("employee_id", req.EmployeeID),
		zap.String("period", req.Period),
	)
	return mapToResponse(p), nil
}

func (s *service) GetAll(ctx context.Context) ([]PayrollResponse, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]PayrollResponse, len(all))
	for i, p := range all {
		resp[i] = mapToResponse(p)
	}
	return resp, nil
}

func (s *service) Compute(ctx context.Context, req ComputeRequest) (ComputeResponse, error) {
	freq, ok := ParseFrequency(req.Frequency)
	if !ok {
		return ComputeResponse{}, payrollerrors.ErrInvalidFrequency
	}
	if freq == FrequencyCustom && req.CustomDays <= 0 {
		return ComputeResponse{}, payrollerrors.ErrInvalidCustomDays
	}

	in := Input{Frequency: freq, CustomDays: req.CustomDays}

	inlineBlank := strings.TrimSpace(req.Basic) == "" &&
		strings.TrimSpace(req.OtherAllowance) == "" &&
		strings.TrimSpace(req.PF) == "" &&
		strings.TrimSpace(req.OtherDeduction) == ""

	if inlineBlank && req.EmployeeID != "" && req.Period != "" {
		stored, err := s.repo.FindByEmployeeAndPeriod(ctx, req.EmployeeID, req.Period)
		if err != nil {
			return ComputeResponse{}, err
		}
		if stored == nil {
			return ComputeResponse{}, payrollerrors.ErrPayrollNotFound
		}
		in.Basic = stored.Basic
		in.OtherAllowance = stored.OtherAllowance
		in.PF = stored.PF
		in.OtherDeduction = stored.OtherDeduction
	} else {
		var err error
		if in.Basic, err = parseAmount(req.Basic); err != nil {
			return ComputeResponse{}, err
		}
		if in.OtherAllowance, err = parseAmount(req.OtherAllowance); err != nil {
			return ComputeResponse{}, err
		}
		if in.PF, err = parseAmount(req.PF); err != nil {
			return ComputeResponse{}, err
		}
		if in.OtherDeduction, err = parseAmount(req.OtherDeduction); err != nil {
			return ComputeResponse{}, err
		}
	}

	var err error
	if in.CustomEarnings, err = parseComponents(req.CustomEarnings); err != nil {
		return ComputeResponse{}, err
	}
	if in.CustomDeductions, err = parseComponents(req.CustomDeductions); err != nil {
		return ComputeResponse{}, err
	}

	b := Compute(in)

	s.logger.Debug("payroll computed",
		zap.String("employee_id", req.EmployeeID),
		zap.String("frequency", string(freq)),
		zap.String("net", b.Net.StringFixed(2)),
	)
	return ComputeResponse{
		EmployeeID:       req.EmployeeID,
		Period:           req.Period,
		Frequency:        string(freq),
		CustomDays:       req.CustomDays,
		Basic:            b.Basic.StringFixed(2),
		OtherAllowance:   b.OtherAllowance.StringFixed(2),
		CustomEarnings:   mapComponents(in.CustomEarnings),
		Gross:            b.Gross.StringFixed(2),
		PF:               b.PF.StringFixed(2),
		OtherDeduction:   b.OtherDeduction.StringFixed(2),
		CustomDeductions: mapComponents(in.CustomDeductions),
		TotalDeductions:  b.TotalDeductions.StringFixed(2),
		Net:              b.Net.StringFixed(2),
	}, nil
}

func mapToResponse(p Payroll) PayrollResponse {
	return PayrollResponse{
		EmployeeID:     p.EmployeeID,
		Period:         p.Period,
		Basic:          p.Basic.StringFixed(2),
		OtherAllowance: p.OtherAllowance.StringFixed(2),
		PF:             p.PF.StringFixed(2),
		OtherDeduction: p.OtherDeduction.StringFixed(2),
	}
}

func mapComponents(list []Component) []ComponentResponse {
	if len(list) == 0 {
		return nil
	}
	out := make([]ComponentResponse, len(list))
	for i, c := range list {
		out[i] = ComponentResponse{ID: c.ID, Label: c.Label, Amount: c.Amount.StringFixed(2)}
	}
	return out
}
