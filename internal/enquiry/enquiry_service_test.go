package enquiry_test

import (
	"context"
	"errors"
	"testing"

	"go-hrfms/internal/enquiry"
	enquiryerrors "go-hrfms/internal/enquiry/errors"
	"go-hrfms/internal/shared/apperror"
	"go-hrfms/internal/sheets/sheetstest"
	"go-hrfms/internal/transition"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeEnquiryRepository struct {
	findAllFn               func(ctx context.Context) ([]enquiry.Enquiry, error)
	findByNoFn              func(ctx context.Context, enquiryNo string) (*enquiry.Enquiry, error)
	identifiersFn           func(ctx context.Context) ([]string, error)
	insertFn                func(ctx context.Context, e enquiry.Enquiry) error
	setStatusFn             func(ctx context.Context, enquiryNo, status string) error
	countTerminalByIndentFn func(ctx context.Context) (map[string]int, error)
	appendFollowUpFn        func(ctx context.Context, f enquiry.FollowUp) error
	followUpsFn             func(ctx context.Context, enquiryNo string) ([]enquiry.FollowUp, error)

	appendedFollowUps []enquiry.FollowUp
	statusWrites      []string
}

func (f *fakeEnquiryRepository) FindAll(ctx context.Context) ([]enquiry.Enquiry, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeEnquiryRepository) FindByNo(ctx context.Context, enquiryNo string) (*enquiry.Enquiry, error) {
	if f.findByNoFn != nil {
		return f.findByNoFn(ctx, enquiryNo)
	}
	return nil, nil
}

func (f *fakeEnquiryRepository) Identifiers(ctx context.Context) ([]string, error) {
	if f.identifiersFn != nil {
		return f.identifiersFn(ctx)
	}
	return nil, nil
}

func (f *fakeEnquiryRepository) Insert(ctx context.Context, e enquiry.Enquiry) error {
	if f.insertFn != nil {
		return f.insertFn(ctx, e)
	}
	return nil
}

func (f *fakeEnquiryRepository) SetStatus(ctx context.Context, enquiryNo, status string) error {
	f.statusWrites = append(f.statusWrites, status)
	if f.setStatusFn != nil {
		return f.setStatusFn(ctx, enquiryNo, status)
	}
	return nil
}

func (f *fakeEnquiryRepository) CountTerminalByIndent(ctx context.Context) (map[string]int, error) {
	if f.countTerminalByIndentFn != nil {
		return f.countTerminalByIndentFn(ctx)
	}
	return nil, nil
}

func (f *fakeEnquiryRepository) AppendFollowUp(ctx context.Context, fu enquiry.FollowUp) error {
	f.appendedFollowUps = append(f.appendedFollowUps, fu)
	if f.appendFollowUpFn != nil {
		return f.appendFollowUpFn(ctx, fu)
	}
	return nil
}

func (f *fakeEnquiryRepository) FollowUps(ctx context.Context, enquiryNo string) ([]enquiry.FollowUp, error) {
	if f.followUpsFn != nil {
		return f.followUpsFn(ctx, enquiryNo)
	}
	return nil, nil
}

type fakeJoiningCreator struct {
	createFn func(ctx context.Context, c enquiry.PromotedCandidate) (string, error)
	calls    []enquiry.PromotedCandidate
}

func (f *fakeJoiningCreator) CreateFromEnquiry(ctx context.Context, c enquiry.PromotedCandidate) (string, error) {
	f.calls = append(f.calls, c)
	if f.createFn != nil {
		return f.createFn(ctx, c)
	}
	return "EMP-01", nil
}

func openEnquiry(enquiryNo string) *enquiry.Enquiry {
	return &enquiry.Enquiry{
		EnquiryNo:     enquiryNo,
		IndentNo:      "REC-01",
		CandidateName: "Ravi Kumar",
	}
}

func TestEnquiryService_Create(t *testing.T) {
	ctx := context.Background()
	runner := transition.NewRunner(zap.NewNop())

	t.Run("allocates the next enquiry number", func(t *testing.T) {
		var inserted enquiry.Enquiry
		repo := &fakeEnquiryRepository{
			identifiersFn: func(context.Context) ([]string, error) {
				return []string{"ENQ-01", "ENQ-05"}, nil
			},
			insertFn: func(_ context.Context, e enquiry.Enquiry) error {
				inserted = e
				return nil
			},
		}
		store := sheetstest.New()
		svc := enquiry.NewService(repo, store, &fakeJoiningCreator{}, runner, "folder", zap.NewNop())

		_, warnings, err := svc.Create(ctx, enquiry.CreateEnquiryRequest{
			IndentNo:      "REC-01",
			CandidateName: "Ravi Kumar",
		})

		assert.NoError(t, err)
		assert.Empty(t, warnings)
		assert.Equal(t, "ENQ-06", inserted.EnquiryNo)
	})

	t.Run("a failed upload leaves the field blank and warns", func(t *testing.T) {
		var inserted enquiry.Enquiry
		repo := &fakeEnquiryRepository{
			insertFn: func(_ context.Context, e enquiry.Enquiry) error {
				inserted = e
				return nil
			},
		}
		store := sheetstest.New()
		store.UploadURL["photo.jpg"] = "https://files.example/photo.jpg"
		store.FailUpload["resume.pdf"] = errors.New("upload rejected")
		svc := enquiry.NewService(repo, store, &fakeJoiningCreator{}, runner, "folder", zap.NewNop())

		_, warnings, err := svc.Create(ctx, enquiry.CreateEnquiryRequest{
			IndentNo:      "REC-01",
			CandidateName: "Ravi Kumar",
			Documents: []enquiry.Document{
				{Kind: "photo", FileName: "photo.jpg", MimeType: "image/jpeg", Base64Data: "aGk="},
				{Kind: "resume", FileName: "resume.pdf", MimeType: "application/pdf", Base64Data: "aGk="},
			},
		})

		assert.NoError(t, err)
		assert.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "resume.pdf")
		assert.Equal(t, "https://files.example/photo.jpg", inserted.PhotoURL)
		assert.Empty(t, inserted.ResumeURL)
	})
}

func TestEnquiryService_AddFollowUp(t *testing.T) {
	ctx := context.Background()
	runner := transition.NewRunner(zap.NewNop())

	t.Run("the joining status is reserved for promotion", func(t *testing.T) {
		svc := enquiry.NewService(&fakeEnquiryRepository{}, sheetstest.New(), &fakeJoiningCreator{}, runner, "folder", zap.NewNop())

		_, err := svc.AddFollowUp(ctx, "ENQ-01", enquiry.AddFollowUpRequest{Status: enquiry.DispositionJoining})

		assert.ErrorIs(t, err, enquiryerrors.ErrInvalidFollowUpStatus)
	})

	t.Run("a closed enquiry takes no more follow-ups", func(t *testing.T) {
		repo := &fakeEnquiryRepository{
			findByNoFn: func(_ context.Context, enquiryNo string) (*enquiry.Enquiry, error) {
				e := openEnquiry(enquiryNo)
				e.Status = enquiry.DispositionReject
				return e, nil
			},
		}
		svc := enquiry.NewService(repo, sheetstest.New(), &fakeJoiningCreator{}, runner, "folder", zap.NewNop())

		_, err := svc.AddFollowUp(ctx, "ENQ-01", enquiry.AddFollowUpRequest{Status: enquiry.DispositionInProgress})

		assert.ErrorIs(t, err, enquiryerrors.ErrEnquiryClosed)
	})

	t.Run("a reject follow-up also writes the disposition", func(t *testing.T) {
		repo := &fakeEnquiryRepository{
			findByNoFn: func(_ context.Context, enquiryNo string) (*enquiry.Enquiry, error) {
				return openEnquiry(enquiryNo), nil
			},
		}
		svc := enquiry.NewService(repo, sheetstest.New(), &fakeJoiningCreator{}, runner, "folder", zap.NewNop())

		_, err := svc.AddFollowUp(ctx, "ENQ-01", enquiry.AddFollowUpRequest{Status: enquiry.DispositionReject})

		assert.NoError(t, err)
		assert.Len(t, repo.appendedFollowUps, 1)
		assert.Equal(t, []string{enquiry.DispositionReject}, repo.statusWrites)
	})
}

func TestEnquiryService_Promote(t *testing.T) {
	ctx := context.Background()
	runner := transition.NewRunner(zap.NewNop())

	t.Run("a failed follow-up append aborts the whole promotion", func(t *testing.T) {
		forced := errors.New("append failed")
		repo := &fakeEnquiryRepository{
			findByNoFn: func(_ context.Context, enquiryNo string) (*enquiry.Enquiry, error) {
				return openEnquiry(enquiryNo), nil
			},
			appendFollowUpFn: func(context.Context, enquiry.FollowUp) error {
				return forced
			},
		}
		joinings := &fakeJoiningCreator{}
		svc := enquiry.NewService(repo, sheetstest.New(), joinings, runner, "folder", zap.NewNop())

		_, _, err := svc.Promote(ctx, "ENQ-01", enquiry.PromoteRequest{Post: "Fitter"})

		assert.ErrorIs(t, err, forced)
		assert.Empty(t, joinings.calls)
		assert.Empty(t, repo.statusWrites)
	})

	t.Run("a single upload failure does not abort the promotion", func(t *testing.T) {
		repo := &fakeEnquiryRepository{
			findByNoFn: func(_ context.Context, enquiryNo string) (*enquiry.Enquiry, error) {
				return openEnquiry(enquiryNo), nil
			},
		}
		store := sheetstest.New()
		store.FailUpload["photo.jpg"] = errors.New("upload rejected")
		joinings := &fakeJoiningCreator{}
		svc := enquiry.NewService(repo, store, joinings, runner, "folder", zap.NewNop())

		resp, warnings, err := svc.Promote(ctx, "ENQ-01", enquiry.PromoteRequest{
			Post: "Fitter",
			Documents: []enquiry.Document{
				{Kind: "photo", FileName: "photo.jpg", MimeType: "image/jpeg", Base64Data: "aGk="},
			},
		})

		assert.NoError(t, err)
		assert.Len(t, warnings, 1)
		assert.Equal(t, "EMP-01", resp.EmployeeID)
		assert.Len(t, joinings.calls, 1)
		assert.Equal(t, []string{enquiry.DispositionJoining}, repo.statusWrites)
	})

	t.Run("a joining insert failure after the follow-up reports inconsistency", func(t *testing.T) {
		repo := &fakeEnquiryRepository{
			findByNoFn: func(_ context.Context, enquiryNo string) (*enquiry.Enquiry, error) {
				return openEnquiry(enquiryNo), nil
			},
		}
		joinings := &fakeJoiningCreator{
			createFn: func(context.Context, enquiry.PromotedCandidate) (string, error) {
				return "", errors.New("insert failed")
			},
		}
		svc := enquiry.NewService(repo, sheetstest.New(), joinings, runner, "folder", zap.NewNop())

		_, _, err := svc.Promote(ctx, "ENQ-01", enquiry.PromoteRequest{Post: "Fitter"})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeConsistency, appErr.Code)
		assert.Contains(t, appErr.Message, "ENQ-01")
		assert.Len(t, repo.appendedFollowUps, 1)
		assert.Empty(t, repo.statusWrites)
	})

	t.Run("promoting a closed enquiry is rejected", func(t *testing.T) {
		repo := &fakeEnquiryRepository{
			findByNoFn: func(_ context.Context, enquiryNo string) (*enquiry.Enquiry, error) {
				e := openEnquiry(enquiryNo)
				e.Status = enquiry.DispositionJoining
				return e, nil
			},
		}
		svc := enquiry.NewService(repo, sheetstest.New(), &fakeJoiningCreator{}, runner, "folder", zap.NewNop())

		_, _, err := svc.Promote(ctx, "ENQ-01", enquiry.PromoteRequest{})

		assert.ErrorIs(t, err, enquiryerrors.ErrEnquiryClosed)
	})
}
