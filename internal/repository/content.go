package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrRowNotFound = errors.New("no row matched title")

// ContentRepository covers the write side used by the offline content
// repair job: rewriting the plain-text description of a row matched by
// its title.
type ContentRepository interface {
	UpdateResourceDescription(ctx context.Context, title, description string) error
	UpdateConferenceDescription(ctx context.Context, title, description string) error
}

type contentRepository struct {
	db *sqlx.DB
}

func NewContentRepository(db *sqlx.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) UpdateResourceDescription(ctx context.Context, title, description string) error {
	return r.updateByTitle(ctx, `UPDATE resources SET description = $1 WHERE title = $2`, title, description)
}

func (r *contentRepository) UpdateConferenceDescription(ctx context.Context, title, description string) error {
	return r.updateByTitle(ctx, `UPDATE conferences SET description = $1 WHERE title = $2`, title, description)
}

func (r *contentRepository) updateByTitle(ctx context.Context, query, title, description string) error {
	result, err := r.db.ExecContext(ctx, query, description, title)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrRowNotFound
	}

	return nil
}
