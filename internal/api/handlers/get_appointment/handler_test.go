package get_appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

type fakeService struct {
	resp *models.AppointmentResponse
	err  error

	gotID          int64
	gotRequesterID int64
	called         bool
}

func (f *fakeService) GetByID(_ context.Context, id int64, requesterID int64) (*models.AppointmentResponse, error) {
	f.called = true
	f.gotID = id
	f.gotRequesterID = requesterID
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, svc *fakeService, target string, userID string) *httptest.ResponseRecorder {
	t.Helper()

	router := mux.NewRouter()
	router.Handle("/api/v1/appointments/{appointmentId}",
		middleware.Auth(http.HandlerFunc(NewHandler(svc, noopLogger{}).Handle))).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	t.Run("requester taken from authenticated header", func(t *testing.T) {
		svc := &fakeService{
			resp: &models.AppointmentResponse{ID: 10, DoctorID: 1, PatientID: 42, Status: "scheduled"},
		}

		rec := doRequest(t, svc, "/api/v1/appointments/10", "42")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":10`)

		require.True(t, svc.called)
		assert.Equal(t, int64(10), svc.gotID)
		assert.Equal(t, int64(42), svc.gotRequesterID)
	})

	t.Run("userId query param is ignored", func(t *testing.T) {
		svc := &fakeService{
			resp: &models.AppointmentResponse{ID: 10, DoctorID: 1, PatientID: 42, Status: "scheduled"},
		}

		rec := doRequest(t, svc, "/api/v1/appointments/10?userId=999", "42")

		assert.Equal(t, http.StatusOK, rec.Code)
		require.True(t, svc.called)
		assert.Equal(t, int64(42), svc.gotRequesterID, "identity must come from X-User-ID, not the query string")
	})

	t.Run("missing header maps to 401", func(t *testing.T) {
		svc := &fakeService{}

		rec := doRequest(t, svc, "/api/v1/appointments/10", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, svc.called)
	})

	t.Run("missing context value maps to 401", func(t *testing.T) {
		svc := &fakeService{}
		handler := NewHandler(svc, noopLogger{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/10", nil)
		req = mux.SetURLVars(req, map[string]string{"appointmentId": "10"})
		rec := httptest.NewRecorder()

		handler.Handle(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, svc.called)
	})

	t.Run("invalid appointment id maps to 400", func(t *testing.T) {
		svc := &fakeService{}

		rec := doRequest(t, svc, "/api/v1/appointments/abc", "42")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, svc.called)
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		svc := &fakeService{err: appointments.ErrAppointmentNotFound}

		rec := doRequest(t, svc, "/api/v1/appointments/10", "42")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("access denied maps to 403", func(t *testing.T) {
		svc := &fakeService{err: appointments.ErrAccessDenied}

		rec := doRequest(t, svc, "/api/v1/appointments/10", "42")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
