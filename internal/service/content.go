package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/livingword/site/internal/cms"
	"github.com/livingword/site/internal/repository"
	"github.com/livingword/site/internal/richtext"
)

// ContentService owns the offline content repair job: rich-text
// descriptions in the content store are flattened to plain text and
// written back into the matching relational rows.
type ContentService struct {
	cms  *cms.Client
	repo repository.ContentRepository
}

func NewContentService(cms *cms.Client, repo repository.ContentRepository) *ContentService {
	return &ContentService{
		cms:  cms,
		repo: repo,
	}
}

// RepairDescriptions rewrites the plain-text description column of
// every resource and conference row from the rich-text body of the
// content-store document with the same title. A failed fetch aborts the
// job; a failed row is logged and skipped.
func (s *ContentService) RepairDescriptions(ctx context.Context) error {
	err := s.repairType(ctx, "resource", s.repo.UpdateResourceDescription)
	if err != nil {
		return err
	}
	return s.repairType(ctx, "conference", s.repo.UpdateConferenceDescription)
}

func (s *ContentService) repairType(ctx context.Context, docType string, update func(ctx context.Context, title, description string) error) error {
	docs, err := s.cms.Documents(ctx, docType)
	if err != nil {
		return fmt.Errorf("failed to fetch %s documents: %w", docType, err)
	}

	var repaired, failed int
	for _, doc := range docs {
		text := richtext.PlainText(doc.Body)

		err = update(ctx, doc.Title, text)
		if err != nil {
			failed++
			slog.Error("repair failed", "type", docType, "title", doc.Title, "error", err)
			continue
		}
		repaired++
		slog.Info("repaired description", "type", docType, "title", doc.Title)
	}

	slog.Info("repair finished", "type", docType, "total", len(docs), "repaired", repaired, "failed", failed)
	return nil
}
