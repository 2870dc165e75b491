package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/Zamiel01/vitaebot/internal/model"
)

// CVRepo stores one CV record per user. The write is a whole-record
// upsert: last write wins, there is no per-field merge or concurrency
// token.
type CVRepo struct {
	pool *pgxpool.Pool
}

func NewCVRepo(pool *pgxpool.Pool) *CVRepo {
	return &CVRepo{pool: pool}
}

// Get looks up the user's record. A missing row is the normal new-user
// state and comes back as the empty record; malformed stored fields
// default silently instead of failing the read.
func (r *CVRepo) Get(ctx context.Context, userID uuid.UUID) (model.Record, error) {
	if r.pool == nil {
		return model.EmptyRecord(), nil
	}

	var (
		raw     []byte
		tpl     string
		updated time.Time
	)
	err := r.pool.QueryRow(ctx,
		`SELECT cv_data, selected_template, last_updated FROM user_cvs WHERE user_id = $1`,
		userID).Scan(&raw, &tpl, &updated)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.EmptyRecord(), nil
	}
	if err != nil {
		return model.Record{}, fmt.Errorf("load cv record: %w", err)
	}

	return model.Record{
		CVData:           model.DecodeDocument(raw),
		SelectedTemplate: model.NormalizeTemplate(tpl),
		LastUpdated:      updated.UTC().Format(time.RFC3339),
	}, nil
}

// Save upserts the whole record and stamps last_updated.
func (r *CVRepo) Save(ctx context.Context, userID uuid.UUID, rec model.Record) error {
	if r.pool == nil {
		return errors.New("cv store unavailable")
	}

	raw, err := json.Marshal(rec.CVData)
	if err != nil {
		return fmt.Errorf("encode cv document: %w", err)
	}

	_, err = r.pool.Exec(ctx, `INSERT INTO user_cvs (user_id, cv_data, selected_template, last_updated)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (user_id) DO UPDATE SET cv_data = EXCLUDED.cv_data, selected_template = EXCLUDED.selected_template, last_updated = EXCLUDED.last_updated`,
		userID, raw, model.NormalizeTemplate(rec.SelectedTemplate), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save cv record: %w", err)
	}
	return nil
}

// Delete removes the user's record; deleting a record that does not exist
// is not an error.
func (r *CVRepo) Delete(ctx context.Context, userID uuid.UUID) error {
	if r.pool == nil {
		return errors.New("cv store unavailable")
	}
	if _, err := r.pool.Exec(ctx, `DELETE FROM user_cvs WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete cv record: %w", err)
	}
	return nil
}
