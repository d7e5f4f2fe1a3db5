package joining

import (
	"context"
	"time"

	"go-hrfms/internal/enquiry"
	joiningerrors "go-hrfms/internal/joining/errors"
	"go-hrfms/internal/sequence"
	"go-hrfms/internal/stage"

	"go.uber.org/zap"
)

//go:generate mockgen -source=joining_service.go -destination=mock/joining_service_mock.go -package=mock
type Service interface {
	enquiry.JoiningCreator
	GetAll(ctx context.Context) ([]JoiningResponse, error)
	GetPending(ctx context.Context) ([]JoiningResponse, error)
	GetHistory(ctx context.Context) ([]JoiningResponse, error)
	// CompleteChecklist writes every checklist boolean regardless of outcome;
	// the completion stamp is set only when all of them are true.
	CompleteChecklist(ctx context.Context, employeeID string, req ChecklistRequest) (ChecklistResponse, error)
	// Deactivate flips the status cell to Inactive. Repeating it is harmless,
	// which is what makes the leaving retry path safe.
	Deactivate(ctx context.Context, employeeID string) error
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("joining.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("joining.service")
	}
	return &service{repo: repo, now: time.Now, logger: l}
}

func (s *service) CreateFromEnquiry(ctx context.Context, c enquiry.PromotedCandidate) (string, error) {
	employeeID := c.EmployeeID
	if employeeID == "" {
		ids, err := s.repo.Identifiers(ctx)
		if err != nil {
			return "", err
		}
		employeeID = sequence.Next(PrefixEmployee, ids)
	}

	j := Joining{
		EmployeeID:    employeeID,
		EnquiryNo:     c.EnquiryNo,
		CandidateName: c.CandidateName,
		Post:          c.Post,
		Department:    c.Department,
		JoiningDate:   c.JoiningDate,
		PhotoURL:      c.PhotoURL,
		ResumeURL:     c.ResumeURL,
		PlannedDate:   c.PlannedDate,
		Status:        StatusActive,
	}
	if err := s.repo.Insert(ctx, j); err != nil {
		s.logger.Error("insert joining failed",
			zap.String("employee_id", employeeID),
			zap.String("enquiry_no", c.EnquiryNo),
			zap.Error(err),
		)
		return "", err
	}

	s.logger.Info("joining record created",
		zap.String("employee_id", employeeID),
		zap.String("enquiry_no", c.EnquiryNo),
	)
	return employeeID, nil
}

func (s *service) GetAll(ctx context.Context) ([]JoiningResponse, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(all), nil
}

func (s *service) GetPending(ctx context.Context) ([]JoiningResponse, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(classify(all).Pending), nil
}

func (s *service) GetHistory(ctx context.Context) ([]JoiningResponse, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(classify(all).History), nil
}

func (s *service) CompleteChecklist(ctx context.Context, employeeID string, req ChecklistRequest) (ChecklistResponse, error) {
	if employeeID == "" {
		return ChecklistResponse{}, joiningerrors.ErrEmployeeIDRequired
	}

	j, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return ChecklistResponse{}, err
	}
	if j == nil {
		return ChecklistResponse{}, joiningerrors.ErrJoiningNotFound
	}

	checklist := Checklist{
		SalarySlip:       req.SalarySlip,
		OfferLetter:      req.OfferLetter,
		BiometricAccess:  req.BiometricAccess,
		OfficialEmail:    req.OfficialEmail,
		AssetsAssigned:   req.AssetsAssigned,
		PFESIC:           req.PFESIC,
		DirectoryListing: req.DirectoryListing,
	}

	fields := map[string]string{
		colSalarySlip:       boolCell(checklist.SalarySlip),
		colOfferLetter:      boolCell(checklist.OfferLetter),
		colBiometricAccess:  boolCell(checklist.BiometricAccess),
		colOfficialEmail:    boolCell(checklist.OfficialEmail),
		colAssetsAssigned:   boolCell(checklist.AssetsAssigned),
		colPFESIC:           boolCell(checklist.PFESIC),
		colDirectoryListing: boolCell(checklist.DirectoryListing),
	}

	completedDate := ""
	if checklist.AllDone() {
		completedDate = s.now().Format("2006-01-02 15:04:05")
		fields[colCompletedDate] = completedDate
	}

	if err := s.repo.UpdateFields(ctx, employeeID, fields); err != nil {
		s.logger.Error("checklist write failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return ChecklistResponse{}, err
	}

	s.logger.Info("checklist recorded",
		zap.String("employee_id", employeeID),
		zap.Bool("completed", checklist.AllDone()),
	)
	return ChecklistResponse{
		EmployeeID:    employeeID,
		Completed:     checklist.AllDone(),
		CompletedDate: completedDate,
	}, nil
}

func (s *service) Deactivate(ctx context.Context, employeeID string) error {
	if err := s.repo.SetStatus(ctx, employeeID, StatusInactive); err != nil {
		return err
	}
	s.logger.Info("joining deactivated", zap.String("employee_id", employeeID))
	return nil
}

func classify(all []Joining) stage.Partition[Joining] {
	return stage.Classify(all,
		func(j Joining) string { return j.PlannedDate },
		func(j Joining) string { return j.CompletedDate },
	)
}

func mapToResponse(j Joining) JoiningResponse {
	return JoiningResponse{
		EmployeeID:    j.EmployeeID,
		EnquiryNo:     j.EnquiryNo,
		CandidateName: j.CandidateName,
		Post:          j.Post,
		Department:    j.Department,
		JoiningDate:   j.JoiningDate,
		PhotoURL:      j.PhotoURL,
		ResumeURL:     j.ResumeURL,
		Checklist: ChecklistRequest{
			SalarySlip:       j.Checklist.SalarySlip,
			OfferLetter:      j.Checklist.OfferLetter,
			BiometricAccess:  j.Checklist.BiometricAccess,
			OfficialEmail:    j.Checklist.OfficialEmail,
			AssetsAssigned:   j.Checklist.AssetsAssigned,
			PFESIC:           j.Checklist.PFESIC,
			DirectoryListing: j.Checklist.DirectoryListing,
		},
		PlannedDate:   j.PlannedDate,
		CompletedDate: j.CompletedDate,
		Status:        j.Status,
	}
}

func mapToListResponse(all []Joining) []JoiningResponse {
	resp := make([]JoiningResponse, len(all))
	for i, j := range all {
		resp[i] = mapToResponse(j)
	}
	return resp
}
