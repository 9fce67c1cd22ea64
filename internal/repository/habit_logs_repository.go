package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/habinook/internal/error_values"
	"github.com/limbo/habinook/pkg/cleanup"
	"github.com/limbo/habinook/pkg/entity"
)

type HabitLogsRepository struct {
	conn PgConnection
}

func NewHabitLogsRepo(cfg DBConfig) *HabitLogsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for habitLogsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for habitLogsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &HabitLogsRepository{
		conn: pool,
	}
}

func NewHabitLogsRepoWithConn(conn PgConnection) *HabitLogsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for habitLogsRepo: " + err.Error())
	}
	return &HabitLogsRepository{
		conn: conn,
	}
}

func (lr *HabitLogsRepository) Create(ctx context.Context, habitLog *entity.HabitLog) (uuid.UUID, error) {
	var id uuid.UUID
	row := lr.conn.QueryRow(ctx, `INSERT INTO habit_logs (habit_id, user_id, target_date, target_time_slot, logged_at, status)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;`,
		habitLog.HabitID,
		habitLog.UserID,
		habitLog.TargetDate,
		habitLog.TargetTimeSlot,
		habitLog.LoggedAt,
		habitLog.Status,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return uuid.Nil, errorvalues.ErrHabitNotFound
			}
		}
		return uuid.Nil, errors.New("creating habit log db error: " + err.Error())
	}
	return id, nil
}

func (lr *HabitLogsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.HabitLog, error) {
	var habitLog entity.HabitLog
	habitLog.ID = id
	row := lr.conn.QueryRow(ctx, `SELECT habit_id, user_id, target_date, target_time_slot, logged_at, status
		FROM habit_logs WHERE id = $1;`, id)
	err := row.Scan(&habitLog.HabitID, &habitLog.UserID, &habitLog.TargetDate,
		&habitLog.TargetTimeSlot, &habitLog.LoggedAt, &habitLog.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrLogNotFound
		}
		return nil, errors.New("getting habit log by id error: " + err.Error())
	}
	return &habitLog, nil
}

func (lr *HabitLogsRepository) GetByHabitID(ctx context.Context, habitID uuid.UUID) ([]entity.HabitLog, error) {
	rows, err := lr.conn.Query(ctx, `SELECT id, habit_id, user_id, target_date, target_time_slot, logged_at, status
		FROM habit_logs WHERE habit_id = $1 ORDER BY target_date;`, habitID)
	if err != nil {
		return nil, errors.New("getting habit logs by habit id error: " + err.Error())
	}
	return collectLogs(rows)
}

func (lr *HabitLogsRepository) GetByHabitAndDate(ctx context.Context, habitID uuid.UUID, date time.Time) ([]entity.HabitLog, error) {
	rows, err := lr.conn.Query(ctx, `SELECT id, habit_id, user_id, target_date, target_time_slot, logged_at, status
		FROM habit_logs WHERE habit_id = $1 AND target_date = $2 ORDER BY logged_at;`, habitID, date)
	if err != nil {
		return nil, errors.New("getting habit logs by date error: " + err.Error())
	}
	return collectLogs(rows)
}

func (lr *HabitLogsRepository) Update(ctx context.Context, habitLog *entity.HabitLog) error {
	ct, err := lr.conn.Exec(ctx, `UPDATE habit_logs SET status = $1, logged_at = $2 WHERE id = $3;`,
		habitLog.Status, habitLog.LoggedAt, habitLog.ID,
	)
	if err != nil {
		return errors.New("error updating habit log: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrLogNotFound
	}
	return nil
}

func (lr *HabitLogsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := lr.conn.Exec(ctx, `DELETE FROM habit_logs WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting habit log: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrLogNotFound
	}
	return nil
}

func collectLogs(rows pgx.Rows) ([]entity.HabitLog, error) {
	defer rows.Close()
	logs := make([]entity.HabitLog, 0)
	for rows.Next() {
		var l entity.HabitLog
		err := rows.Scan(&l.ID, &l.HabitID, &l.UserID, &l.TargetDate, &l.TargetTimeSlot, &l.LoggedAt, &l.Status)
		if err != nil {
			return nil, errors.New("unmarshalling habit log error: " + err.Error())
		}
		logs = append(logs, l)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return logs, nil
}
