package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/livingword/site/internal/cms"
)

type fakeContentRepo struct {
	resources   map[string]string
	conferences map[string]string
	failTitle   string
}

func (f *fakeContentRepo) UpdateResourceDescription(ctx context.Context, title, description string) error {
	if title == f.failTitle {
		return errors.New("deadlock detected")
	}
	f.resources[title] = description
	return nil
}

func (f *fakeContentRepo) UpdateConferenceDescription(ctx context.Context, title, description string) error {
	if title == f.failTitle {
		return errors.New("deadlock detected")
	}
	f.conferences[title] = description
	return nil
}

func newContentRepo() *fakeContentRepo {
	return &fakeContentRepo{
		resources:   map[string]string{},
		conferences: map[string]string{},
	}
}

// repairCMSServer serves one rich-text document per content type.
func repairCMSServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("query")
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.Contains(query, `"resource"`):
			w.Write([]byte(`{"result": [
				{"_id": "r1", "title": "Study Guide", "body": [
					{"_type": "block", "style": "normal", "children": [{"_type": "span", "text": "Part one."}]},
					{"_type": "image"},
					{"_type": "block", "style": "normal", "children": [{"_type": "span", "text": "Part two."}]}
				]},
				{"_id": "r2", "title": "Orphaned", "body": [
					{"_type": "block", "style": "normal", "children": [{"_type": "span", "text": "No matching row."}]}
				]}
			]}`))
		case strings.Contains(query, `"conference"`):
			w.Write([]byte(`{"result": [
				{"_id": "c1", "title": "Spring Conference", "body": [
					{"_type": "block", "style": "normal", "children": [{"_type": "span", "text": "Three days together."}]}
				]}
			]}`))
		default:
			w.Write([]byte(`{"result": []}`))
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestRepairDescriptions(t *testing.T) {
	server := repairCMSServer(t)
	repo := newContentRepo()
	repo.failTitle = "Orphaned"

	svc := NewContentService(cms.New(server.URL, "production", ""), repo)

	err := svc.RepairDescriptions(context.Background())
	require.NoError(t, err)

	// Paragraphs flattened with blank-line separators, image discarded
	assert.Equal(t, "Part one.\n\nPart two.", repo.resources["Study Guide"])
	assert.Equal(t, "Three days together.", repo.conferences["Spring Conference"])

	// Failed row skipped, not fatal
	_, ok := repo.resources["Orphaned"]
	assert.False(t, ok)
}

func TestRepairDescriptionsFetchFailureAborts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	svc := NewContentService(cms.New(server.URL, "production", ""), newContentRepo())

	err := svc.RepairDescriptions(context.Background())
	assert.Error(t, err)
}
