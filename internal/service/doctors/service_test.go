package doctors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	doctorRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/doctor"
	"github.com/m04kA/SMC-AppointmentService/internal/service/doctors/models"
)

type fakeDoctorRepo struct {
	doctors map[int64]*domain.Doctor
}

func newFakeDoctorRepo(doctors ...*domain.Doctor) *fakeDoctorRepo {
	repo := &fakeDoctorRepo{doctors: make(map[int64]*domain.Doctor)}
	for _, d := range doctors {
		repo.doctors[d.ID] = d
	}
	return repo
}

func (f *fakeDoctorRepo) GetByID(_ context.Context, id int64) (*domain.Doctor, error) {
	doctor, ok := f.doctors[id]
	if !ok {
		return nil, doctorRepo.ErrDoctorNotFound
	}
	copied := *doctor
	return &copied, nil
}

func (f *fakeDoctorRepo) List(_ context.Context) ([]*domain.Doctor, error) {
	result := make([]*domain.Doctor, 0, len(f.doctors))
	for _, d := range f.doctors {
		copied := *d
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeDoctorRepo) SetAvailability(_ context.Context, id int64, available bool) error {
	doctor, ok := f.doctors[id]
	if !ok {
		return doctorRepo.ErrDoctorNotFound
	}
	doctor.Available = available
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestList(t *testing.T) {
	svc := NewService(newFakeDoctorRepo(
		&domain.Doctor{ID: 1, Name: "Dr. Ivanova", Speciality: "cardiology", Fee: 1500, Available: true},
		&domain.Doctor{ID: 2, Name: "Dr. Petrov", Speciality: "neurology", Fee: 2000, Available: false},
	), noopLogger{})

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.Doctors, 2)
}

func TestGetByID(t *testing.T) {
	svc := NewService(newFakeDoctorRepo(
		&domain.Doctor{ID: 1, Name: "Dr. Ivanova", Fee: 1500, Available: true},
	), noopLogger{})

	t.Run("found", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "Dr. Ivanova", resp.Name)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 99)
		assert.ErrorIs(t, err, ErrDoctorNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 0)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestChangeAvailability(t *testing.T) {
	t.Run("turns booking off", func(t *testing.T) {
		repo := newFakeDoctorRepo(&domain.Doctor{ID: 1, Fee: 1500, Available: true})
		svc := NewService(repo, noopLogger{})

		resp, err := svc.ChangeAvailability(context.Background(), 1, &models.ChangeAvailabilityRequest{Available: false})
		require.NoError(t, err)
		assert.False(t, resp.Available)
	})

	t.Run("idempotent on repeat", func(t *testing.T) {
		repo := newFakeDoctorRepo(&domain.Doctor{ID: 1, Fee: 1500, Available: true})
		svc := NewService(repo, noopLogger{})

		_, err := svc.ChangeAvailability(context.Background(), 1, &models.ChangeAvailabilityRequest{Available: false})
		require.NoError(t, err)

		resp, err := svc.ChangeAvailability(context.Background(), 1, &models.ChangeAvailabilityRequest{Available: false})
		require.NoError(t, err)
		assert.False(t, resp.Available)
	})

	t.Run("unknown doctor", func(t *testing.T) {
		svc := NewService(newFakeDoctorRepo(), noopLogger{})

		_, err := svc.ChangeAvailability(context.Background(), 99, &models.ChangeAvailabilityRequest{Available: true})
		assert.ErrorIs(t, err, ErrDoctorNotFound)
	})
}
