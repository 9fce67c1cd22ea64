package repository

import (
	"context"
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/habinook/internal/error_values"
	"github.com/limbo/habinook/pkg/cleanup"
	"github.com/limbo/habinook/pkg/entity"
)

type FrequenciesRepository struct {
	conn PgConnection
}

func NewFrequenciesRepo(cfg DBConfig) *FrequenciesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for frequenciesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for frequenciesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &FrequenciesRepository{
		conn: pool,
	}
}

func NewFrequenciesRepoWithConn(conn PgConnection) *FrequenciesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for frequenciesRepo: " + err.Error())
	}
	return &FrequenciesRepository{
		conn: conn,
	}
}

func (fr *FrequenciesRepository) Create(ctx context.Context, frequency *entity.Frequency) (uuid.UUID, error) {
	cfgJSON, err := sonic.Marshal(frequency.Config)
	if err != nil {
		return uuid.Nil, errors.New("marshalling frequency config error: " + err.Error())
	}
	var id uuid.UUID
	row := fr.conn.QueryRow(ctx, `INSERT INTO frequencies (habit_id, type, config, active_from, active_until)
		VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		frequency.HabitID,
		frequency.Type,
		cfgJSON,
		frequency.ActiveFrom,
		frequency.ActiveUntil,
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
		return uuid.Nil, errors.New("creating frequency db error: " + err.Error())
	}
	return id, nil
}

func (fr *FrequenciesRepository) GetByHabitID(ctx context.Context, habitID uuid.UUID) ([]*entity.Frequency, error) {
	frequencies := make([]*entity.Frequency, 0)
	rows, err := fr.conn.Query(ctx, `SELECT id, habit_id, type, config, active_from, active_until
		FROM frequencies WHERE habit_id = $1 ORDER BY active_from DESC;`, habitID)
	if err != nil {
		return nil, errors.New("getting frequencies by habit id error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		f, err := scanFrequency(rows)
		if err != nil {
			return nil, err
		}
		frequencies = append(frequencies, f)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return frequencies, nil
}

func (fr *FrequenciesRepository) GetLatestByHabitID(ctx context.Context, habitID uuid.UUID) (*entity.Frequency, error) {
	row := fr.conn.QueryRow(ctx, `SELECT id, habit_id, type, config, active_from, active_until
		FROM frequencies WHERE habit_id = $1 ORDER BY active_from DESC LIMIT 1;`, habitID)
	f, err := scanFrequency(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrFrequencyNotFound
		}
		return nil, err
	}
	return f, nil
}

func (fr *FrequenciesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := fr.conn.Exec(ctx, `DELETE FROM frequencies WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting frequency: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrFrequencyNotFound
	}
	return nil
}

func scanFrequency(row pgx.Row) (*entity.Frequency, error) {
	var f entity.Frequency
	var cfgJSON []byte
	err := row.Scan(&f.ID, &f.HabitID, &f.Type, &cfgJSON, &f.ActiveFrom, &f.ActiveUntil)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, errors.New("unmarshalling frequency error: " + err.Error())
	}
	if err := sonic.Unmarshal(cfgJSON, &f.Config); err != nil {
		return nil, errors.New("unmarshalling frequency config error: " + err.Error())
	}
	return &f, nil
}
