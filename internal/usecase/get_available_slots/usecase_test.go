package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	doctorRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/doctor"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type fakeDoctorRepo struct {
	doctor *domain.Doctor
	booked domain.SlotsBooked

	gotFrom types.SlotDate
	gotTo   types.SlotDate
}

func (f *fakeDoctorRepo) GetByID(_ context.Context, id int64) (*domain.Doctor, error) {
	if f.doctor == nil || f.doctor.ID != id {
		return nil, doctorRepo.ErrDoctorNotFound
	}
	return f.doctor, nil
}

func (f *fakeDoctorRepo) GetSlotsBooked(_ context.Context, _ int64, from, to types.SlotDate) (domain.SlotsBooked, error) {
	f.gotFrom = from
	f.gotTo = to
	if f.booked == nil {
		return domain.SlotsBooked{}, nil
	}
	return f.booked, nil
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

	newUseCase := func(repo *fakeDoctorRepo) *UseCase {
		uc := NewUseCase(repo, noopLogger{})
		uc.timeProvider = &stubTimeProvider{now: now}
		return uc
	}

	t.Run("returns window with doctor fee", func(t *testing.T) {
		repo := &fakeDoctorRepo{
			doctor: &domain.Doctor{ID: 1, Name: "Dr. Ivanova", Fee: 1500, Available: true},
		}
		uc := newUseCase(repo)

		resp, err := uc.Execute(context.Background(), &Request{DoctorID: 1})
		require.NoError(t, err)

		assert.Equal(t, int64(1), resp.DoctorID)
		assert.Equal(t, 1500.0, resp.Fee)
		assert.Len(t, resp.Days, domain.BookingWindowDays)
	})

	t.Run("queries registry for the whole window", func(t *testing.T) {
		repo := &fakeDoctorRepo{
			doctor: &domain.Doctor{ID: 1, Fee: 1500, Available: true},
		}
		uc := newUseCase(repo)

		_, err := uc.Execute(context.Background(), &Request{DoctorID: 1})
		require.NoError(t, err)

		assert.Equal(t, types.SlotDate("5_8_2025"), repo.gotFrom)
		assert.Equal(t, types.SlotDate("11_8_2025"), repo.gotTo)
	})

	t.Run("unavailable doctor still exposes slots", func(t *testing.T) {
		// Флаг available закрывает только бронирование, не просмотр
		repo := &fakeDoctorRepo{
			doctor: &domain.Doctor{ID: 1, Fee: 1500, Available: false},
		}
		uc := newUseCase(repo)

		resp, err := uc.Execute(context.Background(), &Request{DoctorID: 1})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Days)
	})

	t.Run("unknown doctor", func(t *testing.T) {
		uc := newUseCase(&fakeDoctorRepo{})

		_, err := uc.Execute(context.Background(), &Request{DoctorID: 99})
		assert.ErrorIs(t, err, ErrDoctorNotFound)
	})

	t.Run("non-positive doctor id", func(t *testing.T) {
		uc := newUseCase(&fakeDoctorRepo{})

		_, err := uc.Execute(context.Background(), &Request{DoctorID: 0})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("booked slots excluded from response", func(t *testing.T) {
		repo := &fakeDoctorRepo{
			doctor: &domain.Doctor{ID: 1, Fee: 1500, Available: true},
			booked: domain.SlotsBooked{
				"5_8_2025": {"10:00 am"},
			},
		}
		uc := newUseCase(repo)

		resp, err := uc.Execute(context.Background(), &Request{DoctorID: 1})
		require.NoError(t, err)

		require.NotEmpty(t, resp.Days)
		assert.Equal(t, types.TimeLabel("10:30 am"), resp.Days[0].Slots[0].Label)
	})
}
