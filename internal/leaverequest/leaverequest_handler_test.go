package leaverequest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrfms/internal/leaverequest"
	leaverequesterrors "go-hrfms/internal/leaverequest/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeLeaveRequestService struct {
	createFn     func(ctx context.Context, req leaverequest.CreateLeaveRequestRequest) (leaverequest.LeaveRequestResponse, error)
	getAllFn     func(ctx context.Context) ([]leaverequest.LeaveRequestResponse, error)
	getPendingFn func(ctx context.Context) ([]leaverequest.LeaveRequestResponse, error)
	getDecidedFn func(ctx context.Context) ([]leaverequest.LeaveRequestResponse, error)
	approveFn    func(ctx context.Context, serialNo string) (leaverequest.LeaveRequestResponse, error)
	rejectFn     func(ctx context.Context, serialNo string) (leaverequest.LeaveRequestResponse, error)
}

func (f *fakeLeaveRequestService) Create(ctx context.Context, req leaverequest.CreateLeaveRequestRequest) (leaverequest.LeaveRequestResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeLeaveRequestService) GetAll(ctx context.Context) ([]leaverequest.LeaveRequestResponse, error) {
	return f.getAllFn(ctx)
}
func (f *fakeLeaveRequestService) GetPending(ctx context.Context) ([]leaverequest.LeaveRequestResponse, error) {
	return f.getPendingFn(ctx)
}
func (f *fakeLeaveRequestService) GetDecided(ctx context.Context) ([]leaverequest.LeaveRequestResponse, error) {
	return f.getDecidedFn(ctx)
}
func (f *fakeLeaveRequestService) Approve(ctx context.Context, serialNo string) (leaverequest.LeaveRequestResponse, error) {
	return f.approveFn(ctx, serialNo)
}
func (f *fakeLeaveRequestService) Reject(ctx context.Context, serialNo string) (leaverequest.LeaveRequestResponse, error) {
	return f.rejectFn(ctx, serialNo)
}

func newRouter(svc leaverequest.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := leaverequest.NewHandler(svc, zap.NewNop())
	r.POST("/leave-requests", handler.Create)
	r.PUT("/leave-requests/:serialNo/approve", handler.Approve)
	return r
}

func TestLeaveRequestHandler_Create(t *testing.T) {
	t.Run("created with derived day count", func(t *testing.T) {
		svc := &fakeLeaveRequestService{
			createFn: func(_ context.Context, req leaverequest.CreateLeaveRequestRequest) (leaverequest.LeaveRequestResponse, error) {
				assert.Equal(t, "EMP-02", req.EmployeeID)
				return leaverequest.LeaveRequestResponse{
					SerialNo:   "LR-04",
					EmployeeID: req.EmployeeID,
					TotalDays:  3,
					Status:     leaverequest.StatusPending,
				}, nil
			},
		}
		r := newRouter(svc)

		body := `{"employee_id":"EMP-02","leave_type":"Casual","from_date":"2024-03-01","to_date":"2024-03-03"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leave-requests", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		assert.Contains(t, string(env.Data), `"total_days":3`)
	})

	t.Run("missing fields fail binding", func(t *testing.T) {
		r := newRouter(&fakeLeaveRequestService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leave-requests", strings.NewReader(`{"employee_id":"EMP-02"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.NotNil(t, env.Error)
	})
}

func TestLeaveRequestHandler_Approve(t *testing.T) {
	t.Run("service errors map to their status", func(t *testing.T) {
		svc := &fakeLeaveRequestService{
			approveFn: func(_ context.Context, serialNo string) (leaverequest.LeaveRequestResponse, error) {
				return leaverequest.LeaveRequestResponse{}, leaverequesterrors.ErrAlreadyDecided
			},
		}
		r := newRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/leave-requests/LR-02/approve", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "INVALID_STATE", env.Error.Code)
	})
}
