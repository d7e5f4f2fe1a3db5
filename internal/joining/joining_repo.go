package joining

import (
	"context"
	"strings"

	"go-hrfms/internal/sheets"
	"go-hrfms/internal/transition"
)

const (
	colEmployeeID    = "Employee ID"
	colEnquiryNo     = "Enquiry No"
	colCandidateName = "Candidate Name"
	colPost          = "Post"
	colDepartment    = "Department"
	colJoiningDate   = "Joining Date"
	colPhotoURL      = "Photo URL"
	colResumeURL     = "Resume URL"

	colSalarySlip       = "Salary Slip"
	colOfferLetter      = "Offer Letter"
	colBiometricAccess  = "Biometric Access"
	colOfficialEmail    = "Official Email"
	colAssetsAssigned   = "Assets Assigned"
	colPFESIC           = "PF ESIC"
	colDirectoryListing = "Directory Listing"

	colPlannedDate   = "Checklist Planned Date"
	colCompletedDate = "Checklist Completed Date"
	colStatus        = "Status"
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

//go:generate mockgen -source=joining_repo.go -destination=mock/joining_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Joining, error)
	FindByEmployeeID(ctx context.Context, employeeID string) (*Joining, error)
	Identifiers(ctx context.Context) ([]string, error)
	Insert(ctx context.Context, j Joining) error
	// UpdateFields overwrites the named label→value cells of the row holding
	// the employee id. The writes are issued together; the store gives no
	// isolation between them, so a partial landing reports failure and the
	// caller must re-fetch before retrying.
	UpdateFields(ctx context.Context, employeeID string, fields map[string]string) error
	// SetStatus overwrites the status cell alone. Safe to repeat.
	SetStatus(ctx context.Context, employeeID, status string) error
}

type repository struct {
	client sheets.Client
	runner *transition.Runner
}

func NewRepository(client sheets.Client, runner *transition.Runner) Repository {
	return &repository{client: client, runner: runner}
}

func (r *repository) FindAll(ctx context.Context) ([]Joining, error) {
	snap, err := r.client.Fetch(ctx, sheets.TableJoining.Name)
	if err != nil {
		return nil, err
	}

	var out []Joining
	for _, row := range sheets.DataRows(snap, sheets.TableJoining) {
		if row.Get(colEmployeeID) == "" {
			continue
		}
		out = append(out, Joining{
			EmployeeID:    row.Get(colEmployeeID),
			EnquiryNo:     row.Get(colEnquiryNo),
			CandidateName: row.Get(colCandidateName),
			Post:          row.Get(colPost),
			Department:    row.Get(colDepartment),
			JoiningDate:   row.Get(colJoiningDate),
			PhotoURL:      row.Get(colPhotoURL),
			ResumeURL:     row.Get(colResumeURL),
			Checklist: Checklist{
				SalarySlip:       cellBool(row.Get(colSalarySlip)),
				OfferLetter:      cellBool(row.Get(colOfferLetter)),
				BiometricAccess:  cellBool(row.Get(colBiometricAccess)),
				OfficialEmail:    cellBool(row.Get(colOfficialEmail)),
				AssetsAssigned:   cellBool(row.Get(colAssetsAssigned)),
				PFESIC:           cellBool(row.Get(colPFESIC)),
				DirectoryListing: cellBool(row.Get(colDirectoryListing)),
			},
			PlannedDate:   row.Get(colPlannedDate),
			CompletedDate: row.Get(colCompletedDate),
			Status:        row.Get(colStatus),
		})
	}
	return out, nil
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID string) (*Joining, error) {
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

func (r *repository) Identifiers(ctx context.Context) ([]string, error) {
	snap, err := r.client.Fetch(ctx, sheets.TableJoining.Name)
	if err != nil {
		return nil, err
	}

	strat := sheets.LegacyHeaderStrategy{Label: colEmployeeID, FallbackColumn: 0}
	headerRow, col := strat.Column(snap, nil)
	if headerRow < 0 {
		return nil, nil
	}

	var ids []string
	for i := headerRow + 1; i < len(snap.Data); i++ {
		row := snap.Data[i]
		if col < len(row) && strings.TrimSpace(row[col]) != "" {
			ids = append(ids, strings.TrimSpace(row[col]))
		}
	}
	return ids, nil
}

func (r *repository) Insert(ctx context.Context, j Joining) error {
	row := []string{
		j.EmployeeID,
		j.EnquiryNo,
		j.CandidateName,
		j.Post,
		j.Department,
		j.JoiningDate,
		j.PhotoURL,
		j.ResumeURL,
		boolCell(j.Checklist.SalarySlip),
		boolCell(j.Checklist.OfferLetter),
		boolCell(j.Checklist.BiometricAccess),
		boolCell(j.Checklist.OfficialEmail),
		boolCell(j.Checklist.AssetsAssigned),
		boolCell(j.Checklist.PFESIC),
		boolCell(j.Checklist.DirectoryListing),
		j.PlannedDate,
		j.CompletedDate,
		j.Status,
	}
	return r.client.Insert(ctx, sheets.TableJoining.Name, row)
}

func (r *repository) UpdateFields(ctx context.Context, employeeID string, fields map[string]string) error {
	snap, err := r.client.Fetch(ctx, sheets.TableJoining.Name)
	if err != nil {
		return err
	}
	rowIdx, err := sheets.FindRow(snap, sheets.TableJoining, colEmployeeID, employeeID)
	if err != nil {
		return err
	}
	cols := sheets.Resolve(snap, sheets.TableJoining)

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
				return r.client.UpdateCell(ctx, sheets.TableJoining.Name, rowIdx, colIdx+1, value)
			},
		})
	}
	return r.runner.RunConcurrent(ctx, employeeID, steps...)
}

func (r *repository) SetStatus(ctx context.Context, employeeID, status string) error {
	snap, err := r.client.Fetch(ctx, sheets.TableJoining.Name)
	if err != nil {
		return err
	}
	rowIdx, err := sheets.FindRow(snap, sheets.TableJoining, colEmployeeID, employeeID)
	if err != nil {
		return err
	}
	cols := sheets.Resolve(snap, sheets.TableJoining)
	statusCol, err := cols.Require(colStatus)
	if err != nil {
		return err
	}
	return r.client.UpdateCell(ctx, sheets.TableJoining.Name, rowIdx, statusCol+1, status)
}
