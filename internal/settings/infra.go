package settings

import (
	"context"
	"database/sql"
)

type infra struct {
	db *sql.DB
}

func NewInfra(db *sql.DB) Infra {
	return &infra{db: db}
}

// GetOrCreate — идемпотентное создание строки с дефолтами.
// Гонка двух первых обращений одного юзера не даёт ни дубля,
// ни ошибки уникальности: проигравший INSERT просто no-op.
func (i *infra) GetOrCreate(ctx context.Context, userID int64, def Settings) (Settings, error) {
	if _, err := i.db.ExecContext(ctx, `
		INSERT INTO user_settings (user_id, model, temperature)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO NOTHING
	`, userID, def.Model, def.Temperature); err != nil {
		return Settings{}, err
	}

	s := Settings{UserID: userID}
	err := i.db.QueryRowContext(ctx, `
		SELECT model, temperature
		FROM user_settings
		WHERE user_id = ?
	`, userID).Scan(&s.Model, &s.Temperature)
	if err != nil {
		return Settings{}, err
	}

	return s, nil
}

func (i *infra) SetModel(ctx context.Context, userID int64, model string) error {
	res, err := i.db.ExecContext(ctx, `
		UPDATE user_settings SET model = ? WHERE user_id = ?
	`, model, userID)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (i *infra) SetTemperature(ctx context.Context, userID int64, t float64) error {
	res, err := i.db.ExecContext(ctx, `
		UPDATE user_settings SET temperature = ? WHERE user_id = ?
	`, t, userID)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (i *infra) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := i.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM user_settings`).Scan(&n)
	return n, err
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
