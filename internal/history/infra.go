package history

import (
	"context"
	"database/sql"
	"time"
)

type infra struct {
	db *sql.DB
}

func NewInfra(db *sql.DB) Infra {
	return &infra{db: db}
}

func (i *infra) Append(
	ctx context.Context,
	userID int64,
	model string,
	temperature float64,
	prompt, response string,
) (int64, error) {
	// метки времени храним строками RFC3339 в UTC: лексикографический
	// порядок совпадает с хронологическим
	createdAt := time.Now().UTC().Format(time.RFC3339)

	var id int64
	err := i.db.QueryRowContext(ctx, `
		INSERT INTO history (user_id, created_at, model, temperature, prompt, response)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`, userID, createdAt, model, temperature, prompt, response).Scan(&id)
	return id, err
}

func (i *infra) Recent(ctx context.Context, userID int64, limit int) ([]Record, error) {
	rows, err := i.db.QueryContext(ctx, `
		SELECT id, user_id, created_at, model, temperature, prompt, response
		FROM history
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var r Record
		var createdAt string
		if err := rows.Scan(
			&r.ID,
			&r.UserID,
			&createdAt,
			&r.Model,
			&r.Temperature,
			&r.Prompt,
			&r.Response,
		); err != nil {
			return nil, err
		}
		if parsed, err := time.Parse(time.RFC3339, createdAt); err == nil {
			r.CreatedAt = parsed
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

func (i *infra) Clear(ctx context.Context, userID int64) (int64, error) {
	res, err := i.db.ExecContext(ctx, `
		DELETE FROM history WHERE user_id = ?
	`, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (i *infra) CountAll(ctx context.Context) (int64, error) {
	var n int64
	err := i.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM history`).Scan(&n)
	return n, err
}
