package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/livingword/site/internal/cache"
	"github.com/livingword/site/internal/cms"
	"github.com/livingword/site/internal/model"
)

type fakeProfileRepo struct {
	profiles []model.Profile
}

func (f *fakeProfileRepo) ByID(ctx context.Context, id string) (*model.Profile, error) {
	for i := range f.profiles {
		if f.profiles[i].ID == id {
			return &f.profiles[i], nil
		}
	}
	return nil, fmt.Errorf("profile not found")
}

func (f *fakeProfileRepo) All(ctx context.Context) ([]model.Profile, error) {
	return f.profiles, nil
}

// newCMSServer returns a stub content store that serves one titled
// document per query and counts requests.
func newCMSServer(t *testing.T, title string) (*httptest.Server, *int) {
	t.Helper()
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"result": [{"_id": "1", "title": %q, "slug": "doc"}]}`, title)
	}))
	t.Cleanup(server.Close)
	return server, &requests
}

func newPageService(t *testing.T, title string) (*PageService, *cache.RenderCache, *int) {
	t.Helper()
	server, requests := newCMSServer(t, title)
	renderCache := cache.NewRenderCache()
	svc := NewPageService(cms.New(server.URL, "production", ""), &fakeProfileRepo{
		profiles: []model.Profile{{ID: "p1", Name: "John Piper"}},
	}, renderCache)
	return svc, renderCache, requests
}

func TestRenderCachesUntilInvalidated(t *testing.T) {
	svc, _, requests := newPageService(t, "Prayer")

	payload, err := svc.Render(context.Background(), "/topics")
	require.NoError(t, err)
	assert.Contains(t, string(payload), "Prayer")
	assert.Equal(t, 1, *requests)

	// Second render is served from the cache
	cached, err := svc.Render(context.Background(), "/topics")
	require.NoError(t, err)
	assert.Equal(t, payload, cached)
	assert.Equal(t, 1, *requests)

	// Invalidation forces a fresh fetch
	svc.Invalidate("topics", "")
	_, err = svc.Render(context.Background(), "/topics")
	require.NoError(t, err)
	assert.Equal(t, 2, *requests)
}

func TestRenderHomeCombinesSermonsAndProfiles(t *testing.T) {
	svc, _, _ := newPageService(t, "Romans 8")

	payload, err := svc.Render(context.Background(), "/")
	require.NoError(t, err)
	assert.Contains(t, string(payload), "Romans 8")
	assert.Contains(t, string(payload), "John Piper")
}

func TestRenderUnknownPage(t *testing.T) {
	svc, _, requests := newPageService(t, "x")

	_, err := svc.Render(context.Background(), "/admin")
	assert.ErrorIs(t, err, ErrUnknownPage)
	assert.Equal(t, 0, *requests)
}

func TestRenderFailureNotCached(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	svc := NewPageService(cms.New(server.URL, "production", ""), &fakeProfileRepo{}, cache.NewRenderCache())

	_, err := svc.Render(context.Background(), "/topics")
	assert.Error(t, err)
}

func TestInvalidatePathMapping(t *testing.T) {
	tests := []struct {
		name      string
		pageType  string
		extraPath string
		want      []string
	}{
		{"verse by verse includes home", "verseByVerse", "", []string{"/", "/verse-by-verse"}},
		{"topics", "topics", "", []string{"/topics"}},
		{"resources", "resources", "", []string{"/resources"}},
		{"ask", "ask", "", []string{"/ask"}},
		{"extra path appended", "topics", "/topics/prayer", []string{"/topics", "/topics/prayer"}},
		{"unknown type falls back to all pages", "podcast", "", []string{"/", "/verse-by-verse", "/topics", "/resources", "/ask"}},
		{"missing type falls back to all pages", "", "", []string{"/", "/verse-by-verse", "/topics", "/resources", "/ask"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, renderCache, _ := newPageService(t, "x")
			for _, path := range []string{"/", "/verse-by-verse", "/topics", "/resources", "/ask"} {
				renderCache.Set(path, []byte("cached"))
			}

			got := svc.Invalidate(tt.pageType, tt.extraPath)
			assert.Equal(t, tt.want, got)

			for _, path := range tt.want {
				_, ok := renderCache.Get(path)
				assert.False(t, ok, "path %s should be invalidated", path)
			}
		})
	}
}
