package indent

import (
	"context"

	indenterrors "go-hrfms/internal/indent/errors"
	"go-hrfms/internal/sequence"
	"go-hrfms/internal/stage"

	"go.uber.org/zap"
)

// EnquiryCounter reports, per indent number, how many enquiries already carry
// a non-empty terminal disposition. Implemented by the enquiry repository;
// declared here so the requisition side owns its own dependency surface.
type EnquiryCounter interface {
	CountTerminalByIndent(ctx context.Context) (map[string]int, error)
}

//go:generate mockgen -source=indent_service.go -destination=mock/indent_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateIndentRequest) (IndentResponse, error)
	GetAll(ctx context.Context) ([]IndentResponse, error)
	GetPending(ctx context.Context) ([]IndentResponse, error)
	GetHistory(ctx context.Context) ([]IndentResponse, error)
	UpdateStatus(ctx context.Context, indentNo, status string) error
}

type service struct {
	repo      Repository
	enquiries EnquiryCounter
	logger    *zap.Logger
}

func NewService(repo Repository, enquiries EnquiryCounter, logger ...*zap.Logger) Service {
	l := zap.L().Named("indent.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("indent.service")
	}
	return &service{repo: repo, enquiries: enquiries, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateIndentRequest) (IndentResponse, error) {
	s.logger.Debug("create indent requested",
		zap.String("post", req.Post),
		zap.Int("no_of_post", req.NoOfPost),
		zap.Bool("social_site", req.SocialSite),
	)

	if req.NoOfPost < 1 {
		return IndentResponse{}, indenterrors.ErrInvalidPostCount
	}

	prefix := PrefixRequisition
	if req.SocialSite {
		prefix = PrefixSocial
	}

	// Re-fetch the identifier list right before allocating; the generator
	// itself is pure.
	ids, err := s.repo.Identifiers(ctx)
	if err != nil {
		s.logger.Error("create indent identifier fetch failed", zap.Error(err))
		return IndentResponse{}, err
	}

	ind := Indent{
		IndentNo:        sequence.Next(prefix, ids),
		Post:            req.Post,
		Gender:          req.Gender,
		NoOfPost:        req.NoOfPost,
		ArrangementDate: req.ArrangementDate,
		SocialSite:      req.SocialSite,
		Status:          StatusNeedMore,
	}

	if err := s.repo.Insert(ctx, ind); err != nil {
		s.logger.Error("create indent persist failed", zap.Error(err))
		return IndentResponse{}, err
	}

	s.logger.Info("create indent success", zap.String("indent_no", ind.IndentNo))
	return mapToResponse(ind, 0), nil
}

func (s *service) GetAll(ctx context.Context) ([]IndentResponse, error) {
	indents, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.enquiries.CountTerminalByIndent(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(indents, counts), nil
}

func (s *service) GetPending(ctx context.Context) ([]IndentResponse, error) {
	indents, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.enquiries.CountTerminalByIndent(ctx)
	if err != nil {
		return nil, err
	}

	p := classify(indents)

	// Headcount saturation overrides the local date rule: a requisition whose
	// enquiry count already reached the requested posts never shows as
	// pending, whatever its planned/actual pair says.
	var open []Indent
	for _, ind := range p.Pending {
		if ind.NoOfPost > 0 && counts[ind.IndentNo] >= ind.NoOfPost {
			continue
		}
		open = append(open, ind)
	}
	return mapToListResponse(open, counts), nil
}

func (s *service) GetHistory(ctx context.Context) ([]IndentResponse, error) {
	indents, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.enquiries.CountTerminalByIndent(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(classify(indents).History, counts), nil
}

func (s *service) UpdateStatus(ctx context.Context, indentNo, status string) error {
	if status != StatusNeedMore && status != StatusComplete {
		return indenterrors.ErrInvalidStatus
	}
	if err := s.repo.UpdateStatus(ctx, indentNo, status); err != nil {
		s.logger.Error("update indent status failed",
			zap.String("indent_no", indentNo),
			zap.Error(err),
		)
		return err
	}
	s.logger.Info("update indent status success",
		zap.String("indent_no", indentNo),
		zap.String("status", status),
	)
	return nil
}

func classify(indents []Indent) stage.Partition[Indent] {
	return stage.Classify(indents,
		func(i Indent) string { return i.ArrangementDate },
		func(i Indent) string { return i.CompletedDate },
	)
}

func mapToResponse(ind Indent, enquiryCount int) IndentResponse {
	return IndentResponse{
		IndentNo:        ind.IndentNo,
		Post:            ind.Post,
		Gender:          ind.Gender,
		NoOfPost:        ind.NoOfPost,
		ArrangementDate: ind.ArrangementDate,
		CompletedDate:   ind.CompletedDate,
		SocialSite:      ind.SocialSite,
		Status:          ind.Status,
		EnquiryCount:    enquiryCount,
	}
}

func mapToListResponse(indents []Indent, counts map[string]int) []IndentResponse {
	resp := make([]IndentResponse, len(indents))
	for i, ind := range indents {
		resp[i] = mapToResponse(ind, counts[ind.IndentNo])
	}
	return resp
}
