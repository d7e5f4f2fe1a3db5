package leaving

import (
	"context"
	"strings"

	"go-hrfms/internal/sheets"
	"go-hrfms/internal/transition"
)

const (
	colEmployeeID    = "Employee ID"
	colEmployeeName  = "Employee Name"
	colDateOfLeaving = "Date Of Leaving"

	colResignationLetter = "Resignation Letter"
	colAssetHandover     = "Asset Handover"
	colIDCardReturn      = "ID Card Return"
	colEmailCancelled    = "Email Cancelled"
	colBiometricRevoked  = "Biometric Revoked"
	colBenefitsRemoved   = "Benefits Removed"
	colFinalReleaseDate  = "Final Release Date"

	colPlannedDate   = "Planned Date"
	colCompletedDate = "Completed Date"
)

func boolCell(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func cellBool(v string) bool {
	return strings.EqualFold(v, "Yes") || strings.EqualFold(v, "true")
}

//go:generate mockgen -source=leaving_repo.go -destination=mock/leaving_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Leaving, error)
	FindByEmployeeID(ctx context.Context, employeeID string) (*Leaving, error)
	Insert(ctx context.Context, l Leaving) error
	// UpdateFields overwrites label→value cells of the employee's row, row
	// index re-derived from a fresh snapshot.
	UpdateFields(ctx context.Context, employeeID string, fields map[string]string) error
}

type repository struct {
	client sheets.Client
	runner *transition.Runner
}

func NewRepository(client sheets.Client, runner *transition.Runner) Repository {
	return &repository{client: client, runner: runner}
}

func (r *repository) FindAll(ctx context.Context) ([]Leaving, error) {
	snap, err := r.client.Fetch(ctx, sheets.TableLeaving.Name)
	if err != nil {
		return nil, err
	}

	var out []Leaving
	for _, row := range sheets.DataRows(snap, sheets.TableLeaving) {
		if row.Get(colEmployeeID) == "" {
			continue
		}
		out = append(out, Leaving{
			EmployeeID:    row.Get(colEmployeeID),
			EmployeeName:  row.Get(colEmployeeName),
			DateOfLeaving: row.Get(colDateOfLeaving),
			Checklist: Checklist{
				ResignationLetter: cellBool(row.Get(colResignationLetter)),
				AssetHandover:     cellBool(row.Get(colAssetHandover)),
				IDCardReturn:      cellBool(row.Get(colIDCardReturn)),
				EmailCancelled:    cellBool(row.Get(colEmailCancelled)),
				BiometricRevoked:  cellBool(row.Get(colBiometricRevoked)),
				BenefitsRemoved:   cellBool(row.Get(colBenefitsRemoved)),
				FinalReleaseDate:  row.Get(colFinalReleaseDate),
			},
			PlannedDate:   row.Get(colPlannedDate),
			CompletedDate: row.Get(colCompletedDate),
		})
	}
	return out, nil
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID string) (*Leaving, error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].EmployeeID == employeeID {
			return &all[i], nil
		}
	}
	return nil, nil
}

func (r *repository) Insert(ctx context.Context, l Leaving) error {
	row := []string{
		l.EmployeeID,
		l.EmployeeName,
		l.DateOfLeaving,
		boolCell(l.Checklist.ResignationLetter),
		boolCell(l.Checklist.AssetHandover),
		boolCell(l.Checklist.IDCardReturn),
		boolCell(l.Checklist.EmailCancelled),
		boolCell(l.Checklist.BiometricRevoked),
		boolCell(l.Checklist.BenefitsRemoved),
		l.Checklist.FinalReleaseDate,
		l.PlannedDate,
		l.CompletedDate,
	}
	return r.client.Insert(ctx, sheets.TableLeaving.Name, row)
}

func (r *repository) UpdateFields(ctx context.Context, employeeID string, fields map[string]string) error {
	snap, err := r.client.Fetch(ctx, sheets.TableLeaving.Name)
	if err != nil {
		return err
	}
	rowIdx, err := sheets.FindRow(snap, sheets.TableLeaving, colEmployeeID, employeeID)
	if err != nil {
		return err
	}
	cols := sheets.Resolve(snap, sheets.TableLeaving)

	var steps []transition.Step
	for label, value := range fields {
		colIdx, err := cols.Require(label)
		if err != nil {
			return err
		}
		label, value := label, value
		steps = append(steps, transition.Step{
			Name: label,
			Key:  employeeID,
			Run: func(ctx context.Context) error {
				return r.client.UpdateCell(ctx, sheets.TableLeaving.Name, rowIdx, colIdx+1, value)
			},
		})
	}
	return r.runner.RunConcurrent(ctx, employeeID, steps...)
}
