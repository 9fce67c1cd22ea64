package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/habinook/pkg/cleanup"
	"github.com/limbo/habinook/pkg/entity"
)

type HabitStreaksRepository struct {
	conn PgConnection
}

func NewHabitStreaksRepo(cfg DBConfig) *HabitStreaksRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for habitStreaksRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for habitStreaksRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &HabitStreaksRepository{
		conn: pool,
	}
}

func NewHabitStreaksRepoWithConn(conn PgConnection) *HabitStreaksRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for habitStreaksRepo: " + err.Error())
	}
	return &HabitStreaksRepository{
		conn: conn,
	}
}

func (sr *HabitStreaksRepository) GetByHabitID(ctx context.Context, habitID uuid.UUID) ([]entity.Streak, error) {
	streaks := make([]entity.Streak, 0)
	rows, err := sr.conn.Query(ctx, `SELECT id, habit_id, user_id, start_date, end_date, length
		FROM habit_streaks WHERE habit_id = $1 ORDER BY start_date;`, habitID)
	if err != nil {
		return nil, errors.New("getting streaks by habit id error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var s entity.Streak
		err = rows.Scan(&s.ID, &s.HabitID, &s.UserID, &s.StartDate, &s.EndDate, &s.Length)
		if err != nil {
			return nil, errors.New("unmarshalling streak error: " + err.Error())
		}
		streaks = append(streaks, s)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return streaks, nil
}

// ReplaceForHabit swaps the stored streak set in a single transaction so
// readers never observe a partially rebuilt history.
func (sr *HabitStreaksRepository) ReplaceForHabit(ctx context.Context, habitID uuid.UUID, streaks []entity.Streak) error {
	tx, err := sr.conn.Begin(ctx)
	if err != nil {
		return errors.New("starting streak replace tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	_, err = tx.Exec(ctx, `DELETE FROM habit_streaks WHERE habit_id = $1;`, habitID)
	if err != nil {
		return errors.New("clearing streaks db error: " + err.Error())
	}
	for _, s := range streaks {
		_, err = tx.Exec(ctx, `INSERT INTO habit_streaks (habit_id, user_id, start_date, end_date, length)
			VALUES ($1, $2, $3, $4, $5);`,
			habitID, s.UserID, s.StartDate, s.EndDate, s.Length,
		)
		if err != nil {
			return errors.New("inserting streak db error: " + err.Error())
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return errors.New("committing streak replace tx error: " + err.Error())
	}
	return nil
}
