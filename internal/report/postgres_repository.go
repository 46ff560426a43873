package report

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository is a PostgreSQL implementation of SummaryRepository.
//
// Zone summaries live in a singleton row that each save overwrites; daily
// reports are keyed by report date. Both payloads are stored as JSONB.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a PostgreSQL summary repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// SaveZoneSummaries replaces the stored summary set.
func (r *PostgresRepository) SaveZoneSummaries(ctx context.Context, summaries map[string]ZoneSummary, generatedAt time.Time) error {
	query := `
		INSERT INTO zone_summaries (id, payload, generated_at)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET
			payload = EXCLUDED.payload,
			generated_at = EXCLUDED.generated_at
	`

	payload, err := json.Marshal(summaries)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, query, payload, generatedAt)
	return err
}

// LatestZoneSummaries returns the stored summary set.
func (r *PostgresRepository) LatestZoneSummaries(ctx context.Context) (map[string]ZoneSummary, time.Time, error) {
	query := `SELECT payload, generated_at FROM zone_summaries WHERE id = 1`

	var (
		payload     []byte
		generatedAt time.Time
	)
	err := r.pool.QueryRow(ctx, query).Scan(&payload, &generatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, time.Time{}, ErrNoSummaries
		}
		return nil, time.Time{}, err
	}

	var summaries map[string]ZoneSummary
	if err := json.Unmarshal(payload, &summaries); err != nil {
		return nil, time.Time{}, err
	}
	return summaries, generatedAt, nil
}

// SaveDailyReport upserts the report for its date.
func (r *PostgresRepository) SaveDailyReport(ctx context.Context, rep Report) error {
	query := `
		INSERT INTO daily_reports (report_date, report_id, payload, generated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (report_date) DO UPDATE SET
			report_id = EXCLUDED.report_id,
			payload = EXCLUDED.payload,
			generated_at = EXCLUDED.generated_at
	`

	payload, err := json.Marshal(rep)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, query, rep.Date, rep.ID, payload, rep.GeneratedAt)
	return err
}

// DailyReportByDate returns the report for the given YYYY-MM-DD date.
func (r *PostgresRepository) DailyReportByDate(ctx context.Context, date string) (*Report, error) {
	query := `SELECT payload FROM daily_reports WHERE report_date = $1`

	var payload []byte
	err := r.pool.QueryRow(ctx, query, date).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}

	var rep Report
	if err := json.Unmarshal(payload, &rep); err != nil {
		return nil, err
	}
	return &rep, nil
}

var _ SummaryRepository = (*PostgresRepository)(nil)
