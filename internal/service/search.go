package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/livingword/site/internal/model"
	"github.com/livingword/site/internal/repository"
)

// SearchService fans a free-text query out across the five content
// categories and assembles the unified result envelope.
type SearchService struct {
	repo repository.SearchRepository
}

func NewSearchService(repo repository.SearchRepository) *SearchService {
	return &SearchService{repo: repo}
}

// Search returns the envelope of matches for the query. An empty or
// whitespace-only query short-circuits to an empty envelope without
// touching the store.
//
// The five lookups are independent and run concurrently; the first
// failure cancels the rest and the whole search fails. Partial
// envelopes are never returned.
func (s *SearchService) Search(ctx context.Context, query string) (*model.SearchResults, error) {
	query = strings.TrimSpace(query)

	results := model.EmptySearchResults()
	if query == "" {
		return results, nil
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sermons, err := s.repo.Sermons(ctx, query)
		if err != nil {
			return fmt.Errorf("verse-by-verse lookup failed: %w", err)
		}
		results.VerseByVerse = sermons
		return nil
	})
	g.Go(func() error {
		topics, err := s.repo.Topics(ctx, query)
		if err != nil {
			return fmt.Errorf("topics lookup failed: %w", err)
		}
		results.Topics = topics
		return nil
	})
	g.Go(func() error {
		resources, err := s.repo.Resources(ctx, query)
		if err != nil {
			return fmt.Errorf("resources lookup failed: %w", err)
		}
		results.Resources = resources
		return nil
	})
	g.Go(func() error {
		questions, err := s.repo.Questions(ctx, query)
		if err != nil {
			return fmt.Errorf("ask lookup failed: %w", err)
		}
		results.Ask = questions
		return nil
	})
	g.Go(func() error {
		conferences, err := s.repo.Conferences(ctx, query)
		if err != nil {
			return fmt.Errorf("conferences lookup failed: %w", err)
		}
		results.Conferences = conferences
		return nil
	})

	err := g.Wait()
	if err != nil {
		return nil, err
	}

	return results, nil
}
