package leaving

import (
	"context"
	"time"

	"go-hrfms/internal/joining"
	leavingerrors "go-hrfms/internal/leaving/errors"
	"go-hrfms/internal/stage"
	"go-hrfms/internal/transition"

	"go.uber.org/zap"
)

// JoiningDirectory is the slice of the joining feature that separation needs:
// read the employee's record and flip its status. joining.Repository
// satisfies it.
type JoiningDirectory interface {
	FindByEmployeeID(ctx context.Context, employeeID string) (*joining.Joining, error)
	SetStatus(ctx context.Context, employeeID, status string) error
}

//go:generate mockgen -source=leaving_service.go -destination=mock/leaving_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateLeavingRequest) (LeavingResponse, error)
	GetAll(ctx context.Context) ([]LeavingResponse, error)
	GetPending(ctx context.Context) ([]LeavingResponse, error)
	GetHistory(ctx context.Context) ([]LeavingResponse, error)
	// Complete records the separation checklist and then deactivates the
	// joining record. The two writes hit different tables with no isolation
	// between them; a failure on the second is reported with the employee id
	// so the status flip can be retried on its own.
	Complete(ctx context.Context, employeeID string, req CompleteLeavingRequest) (LeavingResponse, error)
	// RetryDeactivation re-runs only the joining status flip. The leaving row
	// is left untouched.
	RetryDeactivation(ctx context.Context, employeeID string) error
}

type service struct {
	repo     Repository
	joinings JoiningDirectory
	runner   *transition.Runner
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(repo Repository, joinings JoiningDirectory, runner *transition.Runner, logger ...*zap.Logger) Service {
	l := zap.L().Named("leaving.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leaving.service")
	}
	return &service{repo: repo, joinings: joinings, runner: runner, now: time.Now, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateLeavingRequest) (LeavingResponse, error) {
	j, err := s.joinings.FindByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return LeavingResponse{}, err
	}
	if j == nil || j.Status != joining.StatusActive {
		return LeavingResponse{}, leavingerrors.ErrEmployeeNotActive
	}

	existing, err := s.repo.FindByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return LeavingResponse{}, err
	}
	if existing != nil {
		return LeavingResponse{}, leavingerrors.ErrLeavingExists
	}

	l := Leaving{
		EmployeeID:    req.EmployeeID,
		EmployeeName:  j.CandidateName,
		DateOfLeaving: req.DateOfLeaving,
		PlannedDate:   s.now().Format("2006-01-02 15:04:05"),
	}
	if err := s.repo.Insert(ctx, l); err != nil {
		s.logger.Error("insert leaving failed",
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return LeavingResponse{}, err
	}

	s.logger.Info("leaving record created", zap.String("employee_id", req.EmployeeID))
	return mapToResponse(l), nil
}

func (s *service) GetAll(ctx context.Context) ([]LeavingResponse, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(all), nil
}

func (s *service) GetPending(ctx context.Context) ([]LeavingResponse, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(classify(all).Pending), nil
}

func (s *service) GetHistory(ctx context.Context) ([]LeavingResponse, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(classify(all).History), nil
}

func (s *service) Complete(ctx context.Context, employeeID string, req CompleteLeavingRequest) (LeavingResponse, error) {
	existing, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return LeavingResponse{}, err
	}
	if existing == nil {
		return LeavingResponse{}, leavingerrors.ErrLeavingNotFound
	}

	checklist := Checklist{
		ResignationLetter: req.ResignationLetter,
		AssetHandover:     req.AssetHandover,
		IDCardReturn:      req.IDCardReturn,
		EmailCancelled:    req.EmailCancelled,
		BiometricRevoked:  req.BiometricRevoked,
		BenefitsRemoved:   req.BenefitsRemoved,
		FinalReleaseDate:  req.FinalReleaseDate,
	}
	completedDate := s.now().Format("2006-01-02 15:04:05")

	fields := map[string]string{
		colResignationLetter: boolCell(checklist.ResignationLetter),
		colAssetHandover:     boolCell(checklist.AssetHandover),
		colIDCardReturn:      boolCell(checklist.IDCardReturn),
		colEmailCancelled:    boolCell(checklist.EmailCancelled),
		colBiometricRevoked:  boolCell(checklist.BiometricRevoked),
		colBenefitsRemoved:   boolCell(checklist.BenefitsRemoved),
		colFinalReleaseDate:  checklist.FinalReleaseDate,
		colCompletedDate:     completedDate,
	}

	result := s.runner.Run(ctx,
		transition.Step{
			Name: "complete leaving checklist",
			Key:  employeeID,
			Run: func(ctx context.Context) error {
				return s.repo.UpdateFields(ctx, employeeID, fields)
			},
		},
		transition.Step{
			Name: "deactivate joining",
			Key:  employeeID,
			Run: func(ctx context.Context) error {
				return s.joinings.SetStatus(ctx, employeeID, joining.StatusInactive)
			},
		},
	)
	if err := result.Err(); err != nil {
		return LeavingResponse{}, err
	}

	s.logger.Info("leaving completed", zap.String("employee_id", employeeID))
	updated := *existing
	updated.Checklist = checklist
	updated.CompletedDate = completedDate
	return mapToResponse(updated), nil
}

func (s *service) RetryDeactivation(ctx context.Context, employeeID string) error {
	existing, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return err
	}
	if existing == nil {
		return leavingerrors.ErrLeavingNotFound
	}
	if err := s.joinings.SetStatus(ctx, employeeID, joining.StatusInactive); err != nil {
		return err
	}
	s.logger.Info("joining deactivation retried", zap.String("employee_id", employeeID))
	return nil
}

func classify(all []Leaving) stage.Partition[Leaving] {
	return stage.Classify(all,
		func(l Leaving) string { return l.PlannedDate },
		func(l Leaving) string { return l.CompletedDate },
	)
}

func mapToResponse(l Leaving) LeavingResponse {
	resp := LeavingResponse{
		EmployeeID:    l.EmployeeID,
		EmployeeName:  l.EmployeeName,
		DateOfLeaving: l.DateOfLeaving,
		PlannedDate:   l.PlannedDate,
		CompletedDate: l.CompletedDate,
	}
	resp.Checklist.ResignationLetter = l.Checklist.ResignationLetter
	resp.Checklist.AssetHandover = l.Checklist.AssetHandover
	resp.Checklist.IDCardReturn = l.Checklist.IDCardReturn
	resp.Checklist.EmailCancelled = l.Checklist.EmailCancelled
	resp.Checklist.BiometricRevoked = l.Checklist.BiometricRevoked
	resp.Checklist.BenefitsRemoved = l.Checklist.BenefitsRemoved
	resp.Checklist.FinalReleaseDate = l.Checklist.FinalReleaseDate
	return resp
}

func mapToListResponse(all []Leaving) []LeavingResponse {
	resp := make([]LeavingResponse, len(all))
	for i, l := range all {
		resp[i] = mapToResponse(l)
	}
	return resp
}
