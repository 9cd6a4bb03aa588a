package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/livingword/site/internal/model"
)

// SearchRepository runs the per-category fuzzy lookups behind site search.
// Each lookup matches the category's indexed text columns with a
// case-insensitive substring predicate and returns only the declared
// projection, in the store's default order.
type SearchRepository interface {
	Sermons(ctx context.Context, query string) ([]model.Sermon, error)
	Topics(ctx context.Context, query string) ([]model.Topic, error)
	Resources(ctx context.Context, query string) ([]model.Resource, error)
	Questions(ctx context.Context, query string) ([]model.Question, error)
	Conferences(ctx context.Context, query string) ([]model.Conference, error)
}

type searchRepository struct {
	db *sqlx.DB
}

func NewSearchRepository(db *sqlx.DB) SearchRepository {
	return &searchRepository{db: db}
}

// pattern wraps the query for a LIKE substring match. Matching is done
// with lower() on both sides so it behaves the same on SQLite and Postgres.
func pattern(query string) string {
	return "%" + query + "%"
}

func (r *searchRepository) Sermons(ctx context.Context, query string) ([]model.Sermon, error) {
	sermons := []model.Sermon{}
	err := r.db.SelectContext(ctx, &sermons, `
		SELECT id, title, passage, book, slug FROM verse_by_verse
		WHERE lower(title) LIKE lower($1) OR lower(passage) LIKE lower($1)
	`, pattern(query))
	if err != nil {
		return nil, err
	}
	return sermons, nil
}

func (r *searchRepository) Topics(ctx context.Context, query string) ([]model.Topic, error) {
	topics := []model.Topic{}
	err := r.db.SelectContext(ctx, &topics, `
		SELECT id, title, slug FROM topics
		WHERE lower(title) LIKE lower($1)
	`, pattern(query))
	if err != nil {
		return nil, err
	}
	return topics, nil
}

func (r *searchRepository) Resources(ctx context.Context, query string) ([]model.Resource, error) {
	resources := []model.Resource{}
	err := r.db.SelectContext(ctx, &resources, `
		SELECT id, title, description, slug FROM resources
		WHERE lower(title) LIKE lower($1) OR lower(description) LIKE lower($1)
	`, pattern(query))
	if err != nil {
		return nil, err
	}
	return resources, nil
}

func (r *searchRepository) Questions(ctx context.Context, query string) ([]model.Question, error) {
	questions := []model.Question{}
	err := r.db.SelectContext(ctx, &questions, `
		SELECT id, question, slug FROM ask
		WHERE lower(question) LIKE lower($1)
	`, pattern(query))
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *searchRepository) Conferences(ctx context.Context, query string) ([]model.Conference, error) {
	conferences := []model.Conference{}
	err := r.db.SelectContext(ctx, &conferences, `
		SELECT id, title, description, slug FROM conferences
		WHERE lower(title) LIKE lower($1) OR lower(description) LIKE lower($1)
	`, pattern(query))
	if err != nil {
		return nil, err
	}
	return conferences, nil
}
