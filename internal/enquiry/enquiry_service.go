package enquiry

import (
	"context"
	"fmt"
	"time"

	enquiryerrors "go-hrfms/internal/enquiry/errors"
	"go-hrfms/internal/sequence"
	"go-hrfms/internal/sheets"
	"go-hrfms/internal/transition"

	"go.uber.org/zap"
)

// JoiningCreator is the downstream side of the Enquiry→Joining promotion.
// Implemented by the joining service; declared here so this package owns the
// contract it depends on.
type JoiningCreator interface {
	CreateFromEnquiry(ctx context.Context, c PromotedCandidate) (employeeID string, err error)
}

// PromotedCandidate carries everything the joining row needs at insert time.
type PromotedCandidate struct {
	EmployeeID    string // empty means allocate
	EnquiryNo     string
	CandidateName string
	Post          string
	Department    string
	JoiningDate   string
	PhotoURL      string
	ResumeURL     string
	PlannedDate   string
}

//go:generate mockgen -source=enquiry_service.go -destination=mock/enquiry_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEnquiryRequest) (EnquiryResponse, []string, error)
	GetAll(ctx context.Context) ([]EnquiryResponse, error)
	// GetCountsByIndent reports how many enquiries reached a terminal
	// disposition per requisition, the figure the saturation rule runs on.
	GetCountsByIndent(ctx context.Context) (map[string]int, error)
	GetFollowUps(ctx context.Context, enquiryNo string) ([]FollowUpResponse, error)
	AddFollowUp(ctx context.Context, enquiryNo string, req AddFollowUpRequest) (FollowUpResponse, error)
	Promote(ctx context.Context, enquiryNo string, req PromoteRequest) (PromoteResponse, []string, error)
}

type service struct {
	repo     Repository
	uploader sheets.Client
	joinings JoiningCreator
	runner   *transition.Runner
	folderID string
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(
	repo Repository,
	uploader sheets.Client,
	joinings JoiningCreator,
	runner *transition.Runner,
	folderID string,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("enquiry.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("enquiry.service")
	}
	return &service{
		repo:     repo,
		uploader: uploader,
		joinings: joinings,
		runner:   runner,
		folderID: folderID,
		now:      time.Now,
		logger:   l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEnquiryRequest) (EnquiryResponse, []string, error) {
	s.logger.Debug("create enquiry requested",
		zap.String("indent_no", req.IndentNo),
		zap.String("candidate", req.CandidateName),
		zap.Int("documents", len(req.Documents)),
	)

	ids, err := s.repo.Identifiers(ctx)
	if err != nil {
		s.logger.Error("create enquiry identifier fetch failed", zap.Error(err))
		return EnquiryResponse{}, nil, err
	}

	photoURL, resumeURL, warnings := s.uploadDocuments(ctx, req.Documents)

	e := Enquiry{
		EnquiryNo:     sequence.Next(PrefixEnquiry, ids),
		IndentNo:      req.IndentNo,
		CandidateName: req.CandidateName,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		PhotoURL:      photoURL,
		ResumeURL:     resumeURL,
		EnquiryDate:   req.EnquiryDate,
	}

	if err := s.repo.Insert(ctx, e); err != nil {
		s.logger.Error("create enquiry persist failed", zap.Error(err))
		return EnquiryResponse{}, nil, err
	}

	s.logger.Info("create enquiry success",
		zap.String("enquiry_no", e.EnquiryNo),
		zap.String("indent_no", e.IndentNo),
	)
	return mapToResponse(e), warnings, nil
}

// uploadDocuments hands each attachment to the upload collaborator. A single
// failed upload never aborts the surrounding action: the field stays blank
// and a warning is surfaced instead.
func (s *service) uploadDocuments(ctx context.Context, docs []Document) (photoURL, resumeURL string, warnings []string) {
	for _, doc := range docs {
		url, err := s.uploader.UploadFile(ctx, sheets.UploadRequest{
			Base64Data: doc.Base64Data,
			FileName:   doc.FileName,
			MimeType:   doc.MimeType,
			FolderID:   s.folderID,
		})
		if err != nil {
			s.logger.Warn("document upload failed, continuing with blank url",
				zap.String("kind", doc.Kind),
				zap.String("file_name", doc.FileName),
				zap.Error(err),
			)
			warnings = append(warnings, fmt.Sprintf("upload of %s %q failed; field left blank", doc.Kind, doc.FileName))
			continue
		}
		switch doc.Kind {
		case "photo":
			photoURL = url
		case "resume":
			resumeURL = url
		}
	}
	return photoURL, resumeURL, warnings
}

func (s *service) GetAll(ctx context.Context) ([]EnquiryResponse, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]EnquiryResponse, len(all))
	for i, e := range all {
		resp[i] = mapToResponse(e)
	}
	return resp, nil
}

func (s *service) GetCountsByIndent(ctx context.Context) (map[string]int, error) {
	return s.repo.CountTerminalByIndent(ctx)
}

func (s *service) GetFollowUps(ctx context.Context, enquiryNo string) ([]FollowUpResponse, error) {
	followUps, err := s.repo.FollowUps(ctx, enquiryNo)
	if err != nil {
		return nil, err
	}
	resp := make([]FollowUpResponse, len(followUps))
	for i, f := range followUps {
		resp[i] = FollowUpResponse{
			EnquiryNo:    f.EnquiryNo,
			CallDate:     f.CallDate,
			Status:       f.Status,
			Remarks:      f.Remarks,
			NextCallDate: f.NextCallDate,
		}
	}
	return resp, nil
}

func (s *service) AddFollowUp(ctx context.Context, enquiryNo string, req AddFollowUpRequest) (FollowUpResponse, error) {
	if req.Status != DispositionInProgress && req.Status != DispositionReject {
		// "Joining" goes through Promote, which owns the cross-table write.
		return FollowUpResponse{}, enquiryerrors.ErrInvalidFollowUpStatus
	}

	e, err := s.repo.FindByNo(ctx, enquiryNo)
	if err != nil {
		return FollowUpResponse{}, err
	}
	if e == nil {
		return FollowUpResponse{}, enquiryerrors.ErrEnquiryNotFound
	}
	if isTerminal(e.Status) {
		return FollowUpResponse{}, enquiryerrors.ErrEnquiryClosed
	}

	f := FollowUp{
		EnquiryNo:    enquiryNo,
		CallDate:     s.now().Format("2006-01-02 15:04:05"),
		Status:       req.Status,
		Remarks:      req.Remarks,
		NextCallDate: req.NextCallDate,
	}
	if err := s.repo.AppendFollowUp(ctx, f); err != nil {
		s.logger.Error("append follow-up failed",
			zap.String("enquiry_no", enquiryNo),
			zap.Error(err),
		)
		return FollowUpResponse{}, err
	}

	if req.Status == DispositionReject {
		if err := s.repo.SetStatus(ctx, enquiryNo, DispositionReject); err != nil {
			s.logger.Error("set enquiry disposition failed",
				zap.String("enquiry_no", enquiryNo),
				zap.Error(err),
			)
			return FollowUpResponse{}, err
		}
	}

	s.logger.Info("follow-up recorded",
		zap.String("enquiry_no", enquiryNo),
		zap.String("status", req.Status),
	)
	return FollowUpResponse{
		EnquiryNo:    f.EnquiryNo,
		CallDate:     f.CallDate,
		Status:       f.Status,
		Remarks:      f.Remarks,
		NextCallDate: f.NextCallDate,
	}, nil
}

// Promote records the terminal "Joining" follow-up and opens the onboarding
// record. The follow-up append is the gate: if it fails nothing else runs.
// Document uploads tolerate individual failures; the joining insert carries
// whatever URLs landed.
func (s *service) Promote(ctx context.Context, enquiryNo string, req PromoteRequest) (PromoteResponse, []string, error) {
	e, err := s.repo.FindByNo(ctx, enquiryNo)
	if err != nil {
		return PromoteResponse{}, nil, err
	}
	if e == nil {
		return PromoteResponse{}, nil, enquiryerrors.ErrEnquiryNotFound
	}
	if isTerminal(e.Status) {
		return PromoteResponse{}, nil, enquiryerrors.ErrEnquiryClosed
	}

	now := s.now()
	var warnings []string
	var employeeID string

	result := s.runner.Run(ctx,
		transition.Step{
			Name: "append follow-up",
			Key:  enquiryNo,
			Run: func(ctx context.Context) error {
				return s.repo.AppendFollowUp(ctx, FollowUp{
					EnquiryNo: enquiryNo,
					CallDate:  now.Format("2006-01-02 15:04:05"),
					Status:    DispositionJoining,
					Remarks:   req.Remarks,
				})
			},
		},
		transition.Step{
			Name: "insert joining record",
			Key:  enquiryNo,
			Run: func(ctx context.Context) error {
				photoURL, resumeURL, uploadWarnings := s.uploadDocuments(ctx, req.Documents)
				warnings = uploadWarnings
				if photoURL == "" {
					photoURL = e.PhotoURL
				}
				if resumeURL == "" {
					resumeURL = e.ResumeURL
				}

				id, err := s.joinings.CreateFromEnquiry(ctx, PromotedCandidate{
					EmployeeID:    req.EmployeeID,
					EnquiryNo:     enquiryNo,
					CandidateName: e.CandidateName,
					Post:          req.Post,
					Department:    req.Department,
					JoiningDate:   req.JoiningDate,
					PhotoURL:      photoURL,
					ResumeURL:     resumeURL,
					PlannedDate:   now.Format("2006-01-02 15:04:05"),
				})
				employeeID = id
				return err
			},
		},
		transition.Step{
			Name: "set enquiry disposition",
			Key:  enquiryNo,
			Run: func(ctx context.Context) error {
				return s.repo.SetStatus(ctx, enquiryNo, DispositionJoining)
			},
		},
	)

	if err := result.Err(); err != nil {
		return PromoteResponse{}, warnings, err
	}

	s.logger.Info("enquiry promoted to joining",
		zap.String("enquiry_no", enquiryNo),
		zap.String("employee_id", employeeID),
	)
	return PromoteResponse{EnquiryNo: enquiryNo, EmployeeID: employeeID}, warnings, nil
}

func mapToResponse(e Enquiry) EnquiryResponse {
	return EnquiryResponse{
		EnquiryNo:     e.EnquiryNo,
		IndentNo:      e.IndentNo,
		CandidateName: e.CandidateName,
		Phone:         e.Phone,
		Email:         e.Email,
		Address:       e.Address,
		PhotoURL:      e.PhotoURL,
		ResumeURL:     e.ResumeURL,
		EnquiryDate:   e.EnquiryDate,
		Status:        e.Status,
	}
}
