package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/livingword/site/internal/cache"
	"github.com/livingword/site/internal/cms"
	"github.com/livingword/site/internal/model"
	"github.com/livingword/site/internal/repository"
)

var ErrUnknownPage = errors.New("unknown page")

// docTypeByPath maps a content page path to the content-store document
// type it renders.
var docTypeByPath = map[string]string{
	"/verse-by-verse": "verseByVerse",
	"/topics":         "topic",
	"/resources":      "resource",
	"/ask":            "ask",
}

// pathsByType maps a revalidation content-type tag to the page paths
// whose cached renders go stale when that type changes.
var pathsByType = map[string][]string{
	"verseByVerse": {"/", "/verse-by-verse"},
	"topics":       {"/topics"},
	"resources":    {"/resources"},
	"ask":          {"/ask"},
}

var defaultPaths = []string{"/", "/verse-by-verse", "/topics", "/resources", "/ask"}

// PageService renders content pages from content-store data through the
// render cache, and invalidates cached renders when the content store
// reports changes.
type PageService struct {
	cms      *cms.Client
	profiles repository.ProfileRepository
	cache    *cache.RenderCache
}

func NewPageService(cms *cms.Client, profiles repository.ProfileRepository, cache *cache.RenderCache) *PageService {
	return &PageService{
		cms:      cms,
		profiles: profiles,
		cache:    cache,
	}
}

// Render returns the JSON payload for a content page path, serving the
// cached render when one exists and regenerating it otherwise.
func (s *PageService) Render(ctx context.Context, path string) ([]byte, error) {
	payload, ok := s.cache.Get(path)
	if ok {
		return payload, nil
	}

	payload, err := s.render(ctx, path)
	if err != nil {
		return nil, err
	}

	s.cache.Set(path, payload)
	return payload, nil
}

func (s *PageService) render(ctx context.Context, path string) ([]byte, error) {
	if path == "/" {
		return s.renderHome(ctx)
	}

	docType, ok := docTypeByPath[path]
	if !ok {
		return nil, ErrUnknownPage
	}

	docs, err := s.cms.Documents(ctx, docType)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", path, err)
	}
	if docs == nil {
		docs = []model.Document{}
	}

	return json.Marshal(map[string]any{
		"page":      path,
		"documents": docs,
	})
}

// renderHome combines the latest sermons from the content store with the
// staff profiles from the relational store.
func (s *PageService) renderHome(ctx context.Context) ([]byte, error) {
	sermons, err := s.cms.Documents(ctx, "verseByVerse")
	if err != nil {
		return nil, fmt.Errorf("failed to render home: %w", err)
	}
	if sermons == nil {
		sermons = []model.Document{}
	}

	profiles, err := s.profiles.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to render home: %w", err)
	}

	return json.Marshal(map[string]any{
		"page":     "/",
		"sermons":  sermons,
		"profiles": profiles,
	})
}

// Invalidate drops the cached renders mapped to the content-type tag,
// plus the optional extra path, and returns the paths it invalidated.
// Unknown or missing tags fall back to invalidating every content page.
func (s *PageService) Invalidate(pageType, extraPath string) []string {
	paths, ok := pathsByType[pageType]
	if !ok {
		paths = defaultPaths
	}
	if extraPath != "" {
		paths = append(append([]string{}, paths...), extraPath)
	}

	s.cache.Invalidate(paths...)
	return paths
}
