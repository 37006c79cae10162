package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun"

	"medislot/internal/domain"
	"medislot/internal/store"
)

const (
	sqlStateExclusionViolation = "23P01"
	noOverlapConstraint        = "appointments_no_overlap"
)

type AppointmentRepo struct {
	db bun.IDB
}

func NewAppointmentRepo(db bun.IDB) *AppointmentRepo {
	return &AppointmentRepo{db: db}
}

var _ store.AppointmentStore = (*AppointmentRepo)(nil)

func (r *AppointmentRepo) Save(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
	if appt.ID == uuid.Nil {
		return r.insert(ctx, appt)
	}
	return r.update(ctx, appt)
}

func (r *AppointmentRepo) insert(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
	m := appt
	if _, err := r.db.NewInsert().Model(&m).Exec(ctx); err != nil {
		return domain.Appointment{}, mapWriteError(err)
	}
	return m, nil
}

func (r *AppointmentRepo) update(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
	m := appt
	res, err := r.db.NewUpdate().
		Model(&m).
		ExcludeColumn("id", "created_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return domain.Appointment{}, mapWriteError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Appointment{}, err
	}
	if affected == 0 {
		return domain.Appointment{}, store.ErrNotFound
	}
	return r.FindByID(ctx, m.ID)
}

func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == sqlStateExclusionViolation && pgErr.ConstraintName == noOverlapConstraint {
		return store.ErrConflict
	}
	return err
}

func (r *AppointmentRepo) FindByID(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
	var out domain.Appointment
	err := r.db.NewSelect().
		Model(&out).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Appointment{}, store.ErrNotFound
		}
		return domain.Appointment{}, err
	}
	return out, nil
}

func (r *AppointmentRepo) FindAll(ctx context.Context) ([]domain.Appointment, error) {
	return r.list(ctx, func(q *bun.SelectQuery) *bun.SelectQuery { return q })
}

func (r *AppointmentRepo) FindByPatient(ctx context.Context, patientID string) ([]domain.Appointment, error) {
	return r.list(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("patient_id = ?", patientID)
	})
}

func (r *AppointmentRepo) FindByDoctor(ctx context.Context, doctorID string) ([]domain.Appointment, error) {
	return r.list(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("doctor_id = ?", doctorID)
	})
}

func (r *AppointmentRepo) FindByStatus(ctx context.Context, status domain.Status) ([]domain.Appointment, error) {
	return r.list(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("status = ?", status)
	})
}

func (r *AppointmentRepo) FindByDoctorAndRange(ctx context.Context, doctorID string, start, end time.Time) ([]domain.Appointment, error) {
	return r.list(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			Where("doctor_id = ?", doctorID).
			Where("start_time < ?", end.UTC()).
			Where("end_time > ?", start.UTC())
	})
}

func (r *AppointmentRepo) FindInRange(ctx context.Context, start, end time.Time) ([]domain.Appointment, error) {
	return r.list(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			Where("start_time >= ?", start.UTC()).
			Where("start_time < ?", end.UTC())
	})
}

func (r *AppointmentRepo) list(ctx context.Context, apply func(*bun.SelectQuery) *bun.SelectQuery) ([]domain.Appointment, error) {
	rows := make([]domain.Appointment, 0)
	err := apply(r.db.NewSelect().Model(&rows)).
		OrderExpr("start_time ASC, id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
