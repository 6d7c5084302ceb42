package book_appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/book_appointment"
)

type fakeUseCase struct {
	resp *bookAppointment.Response
	err  error

	gotRequest *bookAppointment.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *bookAppointment.Request) (*bookAppointment.Response, error) {
	f.gotRequest = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, noopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	validBody := `{"doctorId":1,"patientId":42,"slotDate":"6_8_2025","slotTime":"10:30 am"}`

	t.Run("created", func(t *testing.T) {
		uc := &fakeUseCase{
			resp: &bookAppointment.Response{
				ID:        7,
				DoctorID:  1,
				PatientID: 42,
				SlotDate:  "6_8_2025",
				SlotTime:  "10:30 am",
				Fee:       1500,
				Status:    "scheduled",
				CreatedAt: time.Date(2025, time.August, 5, 9, 0, 0, 0, time.UTC),
				UpdatedAt: time.Date(2025, time.August, 5, 9, 0, 0, 0, time.UTC),
			},
		}

		rec := doRequest(t, uc, validBody)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":7`)
		assert.Contains(t, rec.Body.String(), `"slotDate":"6_8_2025"`)

		require.NotNil(t, uc.gotRequest)
		assert.Equal(t, int64(1), uc.gotRequest.DoctorID)
	})

	t.Run("slot conflict maps to 409", func(t *testing.T) {
		uc := &fakeUseCase{err: bookAppointment.ErrSlotConflict}

		rec := doRequest(t, uc, validBody)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown doctor maps to 404", func(t *testing.T) {
		uc := &fakeUseCase{err: bookAppointment.ErrDoctorNotFound}

		rec := doRequest(t, uc, validBody)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed json", func(t *testing.T) {
		rec := doRequest(t, &fakeUseCase{}, `{"doctorId":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed slot date", func(t *testing.T) {
		uc := &fakeUseCase{}
		body := `{"doctorId":1,"patientId":42,"slotDate":"2025-08-06","slotTime":"10:30 am"}`

		rec := doRequest(t, uc, body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, uc.gotRequest, "use case must not be called on parse failure")
	})

	t.Run("internal error maps to 500", func(t *testing.T) {
		uc := &fakeUseCase{err: bookAppointment.ErrInternal}

		rec := doRequest(t, uc, validBody)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
