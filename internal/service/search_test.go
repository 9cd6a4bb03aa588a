package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/livingword/site/internal/model"
)

type fakeSearchRepo struct {
	calls       atomic.Int64
	sermons     []model.Sermon
	topics      []model.Topic
	resources   []model.Resource
	questions   []model.Question
	conferences []model.Conference

	topicsErr error
}

func (f *fakeSearchRepo) Sermons(ctx context.Context, query string) ([]model.Sermon, error) {
	f.calls.Add(1)
	return f.sermons, nil
}

func (f *fakeSearchRepo) Topics(ctx context.Context, query string) ([]model.Topic, error) {
	f.calls.Add(1)
	if f.topicsErr != nil {
		return nil, f.topicsErr
	}
	return f.topics, nil
}

func (f *fakeSearchRepo) Resources(ctx context.Context, query string) ([]model.Resource, error) {
	f.calls.Add(1)
	return f.resources, nil
}

func (f *fakeSearchRepo) Questions(ctx context.Context, query string) ([]model.Question, error) {
	f.calls.Add(1)
	return f.questions, nil
}

func (f *fakeSearchRepo) Conferences(ctx context.Context, query string) ([]model.Conference, error) {
	f.calls.Add(1)
	return f.conferences, nil
}

func TestSearchEmptyQuerySkipsStore(t *testing.T) {
	for _, query := range []string{"", "   ", "\t\n"} {
		repo := &fakeSearchRepo{}
		svc := NewSearchService(repo)

		results, err := svc.Search(context.Background(), query)
		require.NoError(t, err)

		// All five slots present and empty, no store access
		assert.Empty(t, results.VerseByVerse)
		assert.Empty(t, results.Topics)
		assert.Empty(t, results.Resources)
		assert.Empty(t, results.Ask)
		assert.Empty(t, results.Conferences)
		assert.NotNil(t, results.VerseByVerse)
		assert.NotNil(t, results.Topics)
		assert.NotNil(t, results.Resources)
		assert.NotNil(t, results.Ask)
		assert.NotNil(t, results.Conferences)
		assert.Equal(t, int64(0), repo.calls.Load())
	}
}

func TestSearchAssemblesEnvelope(t *testing.T) {
	repo := &fakeSearchRepo{
		sermons: []model.Sermon{{ID: "1", Title: "Romans 8", Passage: "Romans 8:1-11", Book: "Romans", Slug: "romans-8"}},
		topics:  []model.Topic{{ID: "2", Title: "Romans overview", Slug: "romans-overview"}},
	}
	svc := NewSearchService(repo)

	results, err := svc.Search(context.Background(), "romans")
	require.NoError(t, err)

	assert.Equal(t, repo.sermons, results.VerseByVerse)
	assert.Equal(t, repo.topics, results.Topics)
	assert.Empty(t, results.Resources)
	assert.Empty(t, results.Ask)
	assert.Empty(t, results.Conferences)
	assert.Equal(t, int64(5), repo.calls.Load())
}

func TestSearchAllOrNothing(t *testing.T) {
	repo := &fakeSearchRepo{
		sermons:   []model.Sermon{{ID: "1", Title: "Romans 8"}},
		topicsErr: errors.New("connection reset"),
	}
	svc := NewSearchService(repo)

	results, err := svc.Search(context.Background(), "romans")
	require.Error(t, err)
	assert.Nil(t, results)
	assert.ErrorContains(t, err, "topics lookup failed")
}
