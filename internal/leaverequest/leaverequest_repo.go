package leaverequest

import (
	"context"
	"strings"

	"go-hrfms/internal/sheets"
)

const (
	colSerialNo     = "Serial No"
	colEmployeeID   = "Employee ID"
	colEmployeeName = "Employee Name"
	colLeaveType    = "Leave Type"
	colFromDate     = "From Date"
	colToDate       = "To Date"
	colReason       = "Reason"
	colHODName      = "HOD Name"
	colStatus       = "Status"
)

//go:generate mockgen -source=leaverequest_repo.go -destination=mock/leaverequest_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]LeaveRequest, error)
	FindBySerial(ctx context.Context, serialNo string) (*LeaveRequest, error)
	Identifiers(ctx context.Context) ([]string, error)
	Insert(ctx context.Context, l LeaveRequest) error
	SetStatus(ctx context.Context, serialNo, status string) error
}

type repository struct {
	client sheets.Client
}

func NewRepository(client sheets.Client) Repository {
	return &repository{client: client}
}

func (r *repository) FindAll(ctx context.Context) ([]LeaveRequest, error) {
	snap, err := r.client.Fetch(ctx, sheets.TableLeaveRequests.Name)
	if err != nil {
		return nil, err
	}

	var out []LeaveRequest
	for _, row := range sheets.DataRows(snap, sheets.TableLeaveRequests) {
		if row.Get(colSerialNo) == "" {
			continue
		}
		out = append(out, LeaveRequest{
			SerialNo:     row.Get(colSerialNo),
			EmployeeID:   row.Get(colEmployeeID),
			EmployeeName: row.Get(colEmployeeName),
			LeaveType:    row.Get(colLeaveType),
			FromDate:     row.Get(colFromDate),
			ToDate:       row.Get(colToDate),
			Reason:       row.Get(colReason),
			HODName:      row.Get(colHODName),
			Status:       row.Get(colStatus),
		})
	}
	return out, nil
}

func (r *repository) FindBySerial(ctx context.Context, serialNo string) (*LeaveRequest, error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].SerialNo == serialNo {
			return &all[i], nil
		}
	}
	return nil, nil
}

func (r *repository) Identifiers(ctx context.Context) ([]string, error) {
	snap, err := r.client.Fetch(ctx, sheets.TableLeaveRequests.Name)
	if err != nil {
		return nil, err
	}

	strat := sheets.LegacyHeaderStrategy{Label: colSerialNo, FallbackColumn: 0}
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

func (r *repository) Insert(ctx context.Context, l LeaveRequest) error {
	row := []string{
		l.SerialNo,
		l.EmployeeID,
		l.EmployeeName,
		l.LeaveType,
		l.FromDate,
		l.ToDate,
		l.Reason,
		l.HODName,
		l.Status,
	}
	return r.client.Insert(ctx, sheets.TableLeaveRequests.Name, row)
}

func (r *repository) SetStatus(ctx context.Context, serialNo, status string) error {
	snap, err := r.client.Fetch(ctx, sheets.TableLeaveRequests.Name)
	if err != nil {
		return err
	}
	rowIdx, err := sheets.FindRow(snap, sheets.TableLeaveRequests, colSerialNo, serialNo)
	if err != nil {
		return err
	}
	cols := sheets.Resolve(snap, sheets.TableLeaveRequests)
	statusCol, err := cols.Require(colStatus)
	if err != nil {
		return err
	}
	return r.client.UpdateCell(ctx, sheets.TableLeaveRequests.Name, rowIdx, statusCol+1, status)
}
