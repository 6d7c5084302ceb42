package book_appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	doctorRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/doctor"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/notifyservice"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type slotKey struct {
	doctorID int64
	date     types.SlotDate
	label    types.TimeLabel
}

// fakeDoctorRepo имитирует условную вставку в реестр слотов:
// занятие слота атомарно под мьютексом
type fakeDoctorRepo struct {
	mu     sync.Mutex
	doctor *domain.Doctor
	taken  map[slotKey]bool
}

func newFakeDoctorRepo(doctor *domain.Doctor) *fakeDoctorRepo {
	return &fakeDoctorRepo{
		doctor: doctor,
		taken:  make(map[slotKey]bool),
	}
}

func (f *fakeDoctorRepo) GetByID(_ context.Context, id int64) (*domain.Doctor, error) {
	if f.doctor == nil || f.doctor.ID != id {
		return nil, doctorRepo.ErrDoctorNotFound
	}
	return f.doctor, nil
}

func (f *fakeDoctorRepo) ReserveSlot(_ context.Context, doctorID int64, date types.SlotDate, label types.TimeLabel) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := slotKey{doctorID: doctorID, date: date, label: label}
	if f.taken[key] {
		return doctorRepo.ErrSlotTaken
	}
	f.taken[key] = true
	return nil
}

type fakeAppointmentRepo struct {
	mu      sync.Mutex
	nextID  int64
	created []*domain.Appointment
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	appt.ID = f.nextID
	appt.CreatedAt = time.Now()
	appt.UpdatedAt = appt.CreatedAt
	f.created = append(f.created, appt)
	return appt, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeNotifyClient struct {
	mu   sync.Mutex
	sent []*notifyservice.Notification
}

func (f *fakeNotifyClient) SendWithGracefulDegradation(_ context.Context, n *notifyservice.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, n)
	return nil
}

type stubTimeProvider struct {
	now time.Time
}

func (p *stubTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestExecute(t *testing.T) {
	now := time.Date(2025, time.August, 5, 9, 0, 0, 0, time.UTC)
	availableDoctor := &domain.Doctor{ID: 1, Name: "Dr. Ivanova", Fee: 1500, Available: true}

	newUseCase := func(dr *fakeDoctorRepo, ar *fakeAppointmentRepo, nc *fakeNotifyClient) *UseCase {
		uc := NewUseCase(dr, ar, nc, fakeTxManager{}, noopLogger{})
		uc.timeProvider = &stubTimeProvider{now: now}
		return uc
	}

	validRequest := func() *Request {
		return &Request{
			DoctorID:  1,
			PatientID: 42,
			SlotDate:  "6_8_2025",
			SlotTime:  "10:30 am",
		}
	}

	t.Run("successful booking", func(t *testing.T) {
		dr := newFakeDoctorRepo(availableDoctor)
		ar := &fakeAppointmentRepo{}
		nc := &fakeNotifyClient{}
		uc := newUseCase(dr, ar, nc)

		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, int64(42), resp.PatientID)
		assert.Equal(t, types.SlotDate("6_8_2025"), resp.SlotDate)
		assert.Equal(t, types.TimeLabel("10:30 am"), resp.SlotTime)
		assert.Equal(t, 1500.0, resp.Fee, "fee is snapshotted from the doctor")
		assert.Equal(t, string(domain.StatusScheduled), resp.Status)
		assert.False(t, resp.Paid)

		require.Len(t, nc.sent, 1)
		assert.Equal(t, "appointment_booked", nc.sent[0].Event)
	})

	t.Run("second booking of the same slot conflicts", func(t *testing.T) {
		dr := newFakeDoctorRepo(availableDoctor)
		ar := &fakeAppointmentRepo{}
		uc := newUseCase(dr, ar, &fakeNotifyClient{})

		_, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		_, err = uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotConflict)
		assert.Len(t, ar.created, 1)
	})

	t.Run("same time different doctor does not conflict", func(t *testing.T) {
		dr := newFakeDoctorRepo(availableDoctor)
		dr2 := newFakeDoctorRepo(&domain.Doctor{ID: 2, Fee: 2000, Available: true})
		ar := &fakeAppointmentRepo{}

		_, err := newUseCase(dr, ar, &fakeNotifyClient{}).Execute(context.Background(), validRequest())
		require.NoError(t, err)

		req := validRequest()
		req.DoctorID = 2
		_, err = newUseCase(dr2, ar, &fakeNotifyClient{}).Execute(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("unknown doctor", func(t *testing.T) {
		uc := newUseCase(newFakeDoctorRepo(nil), &fakeAppointmentRepo{}, &fakeNotifyClient{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrDoctorNotFound)
	})

	t.Run("unavailable doctor", func(t *testing.T) {
		dr := newFakeDoctorRepo(&domain.Doctor{ID: 1, Fee: 1500, Available: false})
		uc := newUseCase(dr, &fakeAppointmentRepo{}, &fakeNotifyClient{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrDoctorUnavailable)
	})

	t.Run("validation failures", func(t *testing.T) {
		uc := newUseCase(newFakeDoctorRepo(availableDoctor), &fakeAppointmentRepo{}, &fakeNotifyClient{})

		cases := []struct {
			name    string
			mutate  func(*Request)
			wantErr error
		}{
			{"zero doctor id", func(r *Request) { r.DoctorID = 0 }, ErrInvalidInput},
			{"zero patient id", func(r *Request) { r.PatientID = 0 }, ErrInvalidInput},
			{"empty slot date", func(r *Request) { r.SlotDate = "" }, ErrInvalidInput},
			{"malformed slot date", func(r *Request) { r.SlotDate = "2025-08-06" }, ErrInvalidInput},
			{"non-existent calendar day", func(r *Request) { r.SlotDate = "30_2_2025" }, ErrInvalidInput},
			{"empty slot time", func(r *Request) { r.SlotTime = "" }, ErrInvalidInput},
			{"malformed slot time", func(r *Request) { r.SlotTime = "14:30" }, ErrInvalidInput},
			{"past date", func(r *Request) { r.SlotDate = "4_8_2025" }, ErrInvalidDate},
			{"outside booking window", func(r *Request) { r.SlotDate = "20_8_2025" }, ErrDateTooFarInFuture},
			{"off-grid minutes", func(r *Request) { r.SlotTime = "10:15 am" }, ErrInvalidTimeSlot},
			{"before opening", func(r *Request) { r.SlotTime = "9:30 am" }, ErrInvalidTimeSlot},
			{"at closing", func(r *Request) { r.SlotTime = "9:00 pm" }, ErrInvalidTimeSlot},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				req := validRequest()
				tc.mutate(req)

				_, err := uc.Execute(context.Background(), req)
				assert.ErrorIs(t, err, tc.wantErr)
			})
		}
	})

	t.Run("today before the nearest boundary is too late", func(t *testing.T) {
		uc := newUseCase(newFakeDoctorRepo(availableDoctor), &fakeAppointmentRepo{}, &fakeNotifyClient{})

		// now = 09:00, ближайшая граница 09:30, клиника открывается в 10:00
		// Слот 10:00 сегодняшнего дня еще доступен
		req := validRequest()
		req.SlotDate = "5_8_2025"
		req.SlotTime = "10:00 am"
		_, err := uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("today past slot is too late", func(t *testing.T) {
		lateNow := time.Date(2025, time.August, 5, 14, 40, 0, 0, time.UTC)
		uc := NewUseCase(newFakeDoctorRepo(availableDoctor), &fakeAppointmentRepo{}, &fakeNotifyClient{}, fakeTxManager{}, noopLogger{})
		uc.timeProvider = &stubTimeProvider{now: lateNow}

		// 14:40 — ближайшая граница 15:00, слот 14:30 уже ушел
		req := validRequest()
		req.SlotDate = "5_8_2025"
		req.SlotTime = "2:30 pm"
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrTooLateToBook)
	})

	t.Run("today after closing is too late", func(t *testing.T) {
		lateNow := time.Date(2025, time.August, 5, 21, 10, 0, 0, time.UTC)
		uc := NewUseCase(newFakeDoctorRepo(availableDoctor), &fakeAppointmentRepo{}, &fakeNotifyClient{}, fakeTxManager{}, noopLogger{})
		uc.timeProvider = &stubTimeProvider{now: lateNow}

		req := validRequest()
		req.SlotDate = "5_8_2025"
		req.SlotTime = "8:30 pm"
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrTooLateToBook)
	})

	t.Run("exactly one winner under concurrent booking", func(t *testing.T) {
		dr := newFakeDoctorRepo(availableDoctor)
		ar := &fakeAppointmentRepo{}
		uc := newUseCase(dr, ar, &fakeNotifyClient{})

		const workers = 32

		var wg sync.WaitGroup
		errs := make([]error, workers)

		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				req := &Request{
					DoctorID:  1,
					PatientID: int64(100 + i),
					SlotDate:  "6_8_2025",
					SlotTime:  "10:30 am",
				}
				_, errs[i] = uc.Execute(context.Background(), req)
			}(i)
		}
		wg.Wait()

		winners := 0
		for _, err := range errs {
			if err == nil {
				winners++
			} else {
				assert.ErrorIs(t, err, ErrSlotConflict)
			}
		}

		assert.Equal(t, 1, winners, "exactly one booking must win the slot")
		assert.Len(t, ar.created, 1)
	})
}
