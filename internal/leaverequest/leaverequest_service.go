package leaverequest

import (
	"context"

	leaverequesterrors "go-hrfms/internal/leaverequest/errors"
	"go-hrfms/internal/sequence"
	"go-hrfms/internal/sheets"

	"go.uber.org/zap"
)

//go:generate mockgen -source=leaverequest_service.go -destination=mock/leaverequest_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)
	GetAll(ctx context.Context) ([]LeaveRequestResponse, error)
	GetPending(ctx context.Context) ([]LeaveRequestResponse, error)
	GetDecided(ctx context.Context) ([]LeaveRequestResponse, error)
	Approve(ctx context.Context, serialNo string) (LeaveRequestResponse, error)
	Reject(ctx context.Context, serialNo string) (LeaveRequestResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leaverequest.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leaverequest.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error) {
	from, ok := sheets.ParseDate(req.FromDate)
	if !ok {
		return LeaveRequestResponse{}, leaverequesterrors.ErrUnparseableDate
	}
	to, ok := sheets.ParseDate(req.ToDate)
	if !ok {
		return LeaveRequestResponse{}, leaverequesterrors.ErrUnparseableDate
	}
	if to.Before(from) {
		return LeaveRequestResponse{}, leaverequesterrors.ErrInvalidDateRange
	}

	serials, err := s.repo.Identifiers(ctx)
	if err != nil {
		return LeaveRequestResponse{}, err
	}
	serialNo := sequence.Next(PrefixLeaveRequest, serials)

	l := LeaveRequest{
		SerialNo:     serialNo,
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		LeaveType:    req.LeaveType,
		FromDate:     req.FromDate,
		ToDate:       req.ToDate,
		Reason:       req.Reason,
		HODName:      req.HODName,
		Status:       StatusPending,
	}
	if err := s.repo.Insert(ctx, l); err != nil {
		s.logger.Error("insert leave request failed",
			zap.String("serial_no", serialNo),
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return LeaveRequestResponse{}, err
	}

	s.logger.Info("leave request created",
		zap.String("serial_no", serialNo),
		zap.String("employee_id", req.EmployeeID),
		zap.Int("total_days", l.TotalDays()),
	)
	return mapToResponse(l), nil
}

func (s *service) GetAll(ctx context.Context) ([]LeaveRequestResponse, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(all), nil
}

func (s *service) GetPending(ctx context.Context) ([]LeaveRequestResponse, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	var pending []LeaveRequest
	for _, l := range all {
		if !l.decided() {
			pending = append(pending, l)
		}
	}
	return mapToListResponse(pending), nil
}

func (s *service) GetDecided(ctx context.Context) ([]LeaveRequestResponse, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	var decided []LeaveRequest
	for _, l := range all {
		if l.decided() {
			decided = append(decided, l)
		}
	}
	return mapToListResponse(decided), nil
}

func (s *service) Approve(ctx context.Context, serialNo string) (LeaveRequestResponse, error) {
	return s.decide(ctx, serialNo, StatusApproved)
}

func (s *service) Reject(ctx context.Context, serialNo string) (LeaveRequestResponse, error) {
	return s.decide(ctx, serialNo, StatusRejected)
}

func (s *service) decide(ctx context.Context, serialNo, status string) (LeaveRequestResponse, error) {
	existing, err := s.repo.FindBySerial(ctx, serialNo)
	if err != nil {
		return LeaveRequestResponse{}, err
	}
	if existing == nil {
		return LeaveRequestResponse{}, leaverequesterrors.ErrLeaveRequestNotFound
	}
	if existing.decided() {
		return LeaveRequestResponse{}, leaverequesterrors.ErrAlreadyDecided
	}

	if err := s.repo.SetStatus(ctx, serialNo, status); err != nil {
		s.logger.Error("leave request status write failed",
			zap.String("serial_no", serialNo),
			zap.String("status", status),
			zap.Error(err),
		)
		return LeaveRequestResponse{}, err
	}

	s.logger.Info("leave request decided",
		zap.String("serial_no", serialNo),
		zap.String("status", status),
	)
	updated := *existing
	updated.Status = status
	return mapToResponse(updated), nil
}

func mapToResponse(l LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		SerialNo:     l.SerialNo,
		EmployeeID:   l.EmployeeID,
		EmployeeName: l.EmployeeName,
		LeaveType:    l.LeaveType,
		FromDate:     l.FromDate,
		ToDate:       l.ToDate,
		TotalDays:    l.TotalDays(),
		Reason:       l.Reason,
		HODName:      l.HODName,
		Status:       l.Status,
	}
}

func mapToListResponse(all []LeaveRequest) []LeaveRequestResponse {
	resp := make([]LeaveRequestResponse, len(all))
	for i, l := range all {
		resp[i] = mapToResponse(l)
	}
	return resp
}
