package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/netpost/stringshop/pkg/models"
)

const racketColumns = `id, player_name, phone_number, racket_brand, racket_model, string_main, string_cross, tension, status, stringer, payment, created_on, updated_on`

func (r *SQLiteRepo) CreateRacket(ctx context.Context, rk *models.Racket) (int64, error) {
	if rk == nil {
		return 0, fmt.Errorf("racket is nil")
	}

	ts := now()
	rk.CreatedOn = ts
	rk.UpdatedOn = ts

	res, err := r.conn.Exec(ctx,
		`INSERT INTO rackets (player_name, phone_number, racket_brand, racket_model, string_main, string_cross, tension, status, stringer, payment, created_on, updated_on) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rk.PlayerName, rk.PhoneNumber, rk.RacketBrand, rk.RacketModel, rk.StringMain, rk.StringCross, rk.Tension, string(rk.Status), nullableString(rk.Stringer), rk.Payment, ts, ts)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetRacket(ctx context.Context, id int64) (*models.Racket, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+racketColumns+` FROM rackets WHERE id = ?`, id)
	rk, err := scanRacket(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return rk, nil
}

func (r *SQLiteRepo) ListRackets(ctx context.Context) ([]models.Racket, error) {
	rows, err := r.conn.Query(ctx, `SELECT `+racketColumns+` FROM rackets ORDER BY status DESC, created_on DESC`)
	if err != nil {
		return nil, fmt.Errorf("list rackets: %w", err)
	}
	defer rows.Close()

	var out []models.Racket
	for rows.Next() {
		rk, err := scanRacket(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan racket: %w", err)
		}
		out = append(out, *rk)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *SQLiteRepo) UpdateWorkflow(ctx context.Context, id int64, status models.Status, stringer string, payment bool) (bool, error) {
	res, err := r.conn.Exec(ctx,
		`UPDATE rackets SET status = ?, stringer = ?, payment = ?, updated_on = ? WHERE id = ?`,
		string(status), nullableString(stringer), payment, now(), id)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func (r *SQLiteRepo) DeleteRacket(ctx context.Context, id int64) (bool, error) {
	res, err := r.conn.Exec(ctx, `DELETE FROM rackets WHERE id = ?`, id)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func (r *SQLiteRepo) CountCreatedSince(ctx context.Context, since int64) (int64, error) {
	var n int64
	row := r.conn.QueryRow(ctx, `SELECT COUNT(1) FROM rackets WHERE created_on >= ?`, since)
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("count created: %w", err)
	}

	return n, nil
}

func (r *SQLiteRepo) CountFinishedSince(ctx context.Context, since int64) (int64, error) {
	var n int64
	row := r.conn.QueryRow(ctx, `SELECT COUNT(1) FROM rackets WHERE status = ? AND updated_on >= ?`, string(models.StatusFinished), since)
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("count finished: %w", err)
	}

	return n, nil
}

func scanRacket(scan func(dest ...any) error) (*models.Racket, error) {
	var rk models.Racket
	var status string
	var stringer sql.NullString
	if err := scan(&rk.ID, &rk.PlayerName, &rk.PhoneNumber, &rk.RacketBrand, &rk.RacketModel, &rk.StringMain, &rk.StringCross, &rk.Tension, &status, &stringer, &rk.Payment, &rk.CreatedOn, &rk.UpdatedOn); err != nil {
		return nil, err
	}

	rk.Status = models.Status(status)
	if stringer.Valid {
		rk.Stringer = stringer.String
	}

	return &rk, nil
}

// nullableString maps the empty string to NULL so an unassigned stringer is
// stored as NULL, not "".
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
