package doctor

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Repository репозиторий для работы с врачами и их реестром занятых слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория врачей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает врача по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Doctor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"speciality",
		"fee",
		"available",
		"created_at",
		"updated_at",
	).
		From("doctors").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var doctor domain.Doctor
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&doctor.ID,
		&doctor.Name,
		&doctor.Speciality,
		&doctor.Fee,
		&doctor.Available,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrDoctorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan doctor: %v", ErrScanRow, err)
	}

	doctor.CreatedAt = createdAt.Time
	doctor.UpdatedAt = updatedAt.Time

	return &doctor, nil
}

// List получает весь справочник врачей
func (r *Repository) List(ctx context.Context) ([]*domain.Doctor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"speciality",
		"fee",
		"available",
		"created_at",
		"updated_at",
	).
		From("doctors").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	doctors := make([]*domain.Doctor, 0)

	for rows.Next() {
		var doctor domain.Doctor
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&doctor.ID,
			&doctor.Name,
			&doctor.Speciality,
			&doctor.Fee,
			&doctor.Available,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		doctor.CreatedAt = createdAt.Time
		doctor.UpdatedAt = updatedAt.Time

		doctors = append(doctors, &doctor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return doctors, nil
}

// SetAvailability включает/выключает прием новых бронирований для врача
func (r *Repository) SetAvailability(ctx context.Context, id int64, available bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("doctors").
		Set("available", available).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetAvailability - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetAvailability - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetAvailability - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDoctorNotFound
	}

	return nil
}

// GetSlotsBooked получает реестр занятых слотов врача за период [from, to]
// Результат — отображение date-key → упорядоченный список занятых слотов
func (r *Repository) GetSlotsBooked(ctx context.Context, doctorID int64, from, to types.SlotDate) (domain.SlotsBooked, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"slot_date",
		"slot_time",
	).
		From("doctor_slots").
		Where(squirrel.Eq{"doctor_id": doctorID}).
		Where(squirrel.GtOrEq{"slot_date": from}).
		Where(squirrel.LtOrEq{"slot_date": to}).
		OrderBy("slot_date ASC, slot_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotsBooked - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotsBooked - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make(domain.SlotsBooked)

	for rows.Next() {
		var date types.SlotDate
		var label types.TimeLabel

		if err := rows.Scan(&date, &label); err != nil {
			return nil, fmt.Errorf("%w: GetSlotsBooked - scan row: %v", ErrScanRow, err)
		}

		slots[date] = append(slots[date], label)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetSlotsBooked - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// ReserveSlot атомарно резервирует слот врача
// Вставка условная: при конфликте по (doctor_id, slot_date, slot_time)
// строка не добавляется и возвращается ErrSlotTaken. Отдельного чтения
// перед записью нет — это единственная точка синхронизации при гонке
// двух бронирований одного слота.
func (r *Repository) ReserveSlot(ctx context.Context, doctorID int64, date types.SlotDate, label types.TimeLabel) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("doctor_slots").
		Columns(
			"doctor_id",
			"slot_date",
			"slot_time",
		).
		Values(
			doctorID,
			date,
			label,
		).
		Suffix("ON CONFLICT (doctor_id, slot_date, slot_time) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReserveSlot - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ReserveSlot - execute insert: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ReserveSlot - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotTaken
	}

	return nil
}

// ReleaseSlot освобождает слот врача (при отмене записи)
func (r *Repository) ReleaseSlot(ctx context.Context, doctorID int64, date types.SlotDate, label types.TimeLabel) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("doctor_slots").
		Where(squirrel.Eq{
			"doctor_id": doctorID,
			"slot_date": date,
			"slot_time": label,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReleaseSlot - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ReleaseSlot - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ReleaseSlot - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}
