package enquiry

import (
	"context"
	"strings"

	"go-hrfms/internal/sheets"
)

const (
	colEnquiryNo     = "Enquiry No"
	colIndentNo      = "Indent No"
	colCandidateName = "Candidate Name"
	colPhone         = "Phone"
	colEmail         = "Email"
	colAddress       = "Address"
	colPhotoURL      = "Photo URL"
	colResumeURL     = "Resume URL"
	colEnquiryDate   = "Enquiry Date"
	colStatus        = "Status"

	colCallDate     = "Call Date"
	colCallStatus   = "Status"
	colRemarks      = "Remarks"
	colNextCallDate = "Next Call Date"
)

//go:generate mockgen -source=enquiry_repo.go -destination=mock/enquiry_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Enquiry, error)
	FindByNo(ctx context.Context, enquiryNo string) (*Enquiry, error)
	Identifiers(ctx context.Context) ([]string, error)
	Insert(ctx context.Context, e Enquiry) error
	// SetStatus overwrites the terminal disposition cell, locating the row
	// fresh by enquiry number.
	SetStatus(ctx context.Context, enquiryNo, status string) error
	// CountTerminalByIndent feeds the requisition saturation rule.
	CountTerminalByIndent(ctx context.Context) (map[string]int, error)

	AppendFollowUp(ctx context.Context, f FollowUp) error
	FollowUps(ctx context.Context, enquiryNo string) ([]FollowUp, error)
}

type repository struct {
	client sheets.Client
}

func NewRepository(client sheets.Client) Repository {
	return &repository{client: client}
}

func (r *repository) FindAll(ctx context.Context) ([]Enquiry, error) {
	snap, err := r.client.Fetch(ctx, sheets.TableEnquiry.Name)
	if err != nil {
		return nil, err
	}

	var out []Enquiry
	for _, row := range sheets.DataRows(snap, sheets.TableEnquiry) {
		if row.Get(colEnquiryNo) == "" {
			continue
		}
		out = append(out, Enquiry{
			EnquiryNo:     row.Get(colEnquiryNo),
			IndentNo:      row.Get(colIndentNo),
			CandidateName: row.Get(colCandidateName),
			Phone:         row.Get(colPhone),
			Email:         row.Get(colEmail),
			Address:       row.Get(colAddress),
			PhotoURL:      row.Get(colPhotoURL),
			ResumeURL:     row.Get(colResumeURL),
			EnquiryDate:   row.Get(colEnquiryDate),
			Status:        row.Get(colStatus),
		})
	}
	return out, nil
}

func (r *repository) FindByNo(ctx context.Context, enquiryNo string) (*Enquiry, error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].EnquiryNo == enquiryNo {
			return &all[i], nil
		}
	}
	return nil, nil
}

func (r *repository) Identifiers(ctx context.Context) ([]string, error) {
	snap, err := r.client.Fetch(ctx, sheets.TableEnquiry.Name)
	if err != nil {
		return nil, err
	}

	strat := sheets.LegacyHeaderStrategy{Label: colEnquiryNo, FallbackColumn: 0}
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

func (r *repository) Insert(ctx context.Context, e Enquiry) error {
	row := []string{
		e.EnquiryNo,
		e.IndentNo,
		e.CandidateName,
		e.Phone,
		e.Email,
		e.Address,
		e.PhotoURL,
		e.ResumeURL,
		e.EnquiryDate,
		e.Status,
	}
	return r.client.Insert(ctx, sheets.TableEnquiry.Name, row)
}

func (r *repository) SetStatus(ctx context.Context, enquiryNo, status string) error {
	snap, err := r.client.Fetch(ctx, sheets.TableEnquiry.Name)
	if err != nil {
		return err
	}
	rowIdx, err := sheets.FindRow(snap, sheets.TableEnquiry, colEnquiryNo, enquiryNo)
	if err != nil {
		return err
	}
	cols := sheets.Resolve(snap, sheets.TableEnquiry)
	statusCol, err := cols.Require(colStatus)
	if err != nil {
		return err
	}
	return r.client.UpdateCell(ctx, sheets.TableEnquiry.Name, rowIdx, statusCol+1, status)
}

func (r *repository) CountTerminalByIndent(ctx context.Context) (map[string]int, error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, e := range all {
		if e.IndentNo != "" && e.Status != "" {
			counts[e.IndentNo]++
		}
	}
	return counts, nil
}

func (r *repository) AppendFollowUp(ctx context.Context, f FollowUp) error {
	row := []string{
		f.EnquiryNo,
		f.CallDate,
		f.Status,
		f.Remarks,
		f.NextCallDate,
	}
	return r.client.Insert(ctx, sheets.TableCallTracker.Name, row)
}

func (r *repository) FollowUps(ctx context.Context, enquiryNo string) ([]FollowUp, error) {
	snap, err := r.client.Fetch(ctx, sheets.TableCallTracker.Name)
	if err != nil {
		return nil, err
	}

	var out []FollowUp
	for _, row := range sheets.DataRows(snap, sheets.TableCallTracker) {
		if row.Get(colEnquiryNo) != enquiryNo {
			continue
		}
		out = append(out, FollowUp{
			EnquiryNo:    row.Get(colEnquiryNo),
			CallDate:     row.Get(colCallDate),
			Status:       row.Get(colCallStatus),
			Remarks:      row.Get(colRemarks),
			NextCallDate: row.Get(colNextCallDate),
		})
	}
	return out, nil
}
