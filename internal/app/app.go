package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/livingword/site/internal/cache"
	"github.com/livingword/site/internal/cms"
	"github.com/livingword/site/internal/config"
	"github.com/livingword/site/internal/db"
	"github.com/livingword/site/internal/repository"
	"github.com/livingword/site/internal/service"
	"github.com/livingword/site/internal/storage"
)

type App struct {
	Cfg            *config.Config
	DB             *sqlx.DB
	SearchService  *service.SearchService
	UploadService  *service.UploadService
	ReportService  *service.ReportService
	PageService    *service.PageService
	ContentService *service.ContentService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	searchRepository := repository.NewSearchRepository(database)
	contentRepository := repository.NewContentRepository(database)
	profileRepository := repository.NewProfileRepository(database)

	// Content store client
	cmsClient := cms.New(cfg.CMSBaseURL, cfg.CMSDataset, cfg.CMSReadToken)

	// Object storage is optional at boot; the upload endpoint reports a
	// configuration error until all five storage values are set.
	var fileStorage storage.Storage
	if cfg.StorageConfigured() {
		s3Storage, err := storage.New(storage.S3Config{
			AccountID:   cfg.StorageAccountID,
			AccessKey:   cfg.StorageAccessKey,
			SecretKey:   cfg.StorageSecretKey,
			Bucket:      cfg.StorageBucket,
			PublicURL:   cfg.StoragePublicURL,
			GrantExpiry: cfg.UploadGrantExpiry,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %v", err)
		}
		fileStorage = s3Storage
	}

	// Services
	searchService := service.NewSearchService(searchRepository)
	uploadService := service.NewUploadService(fileStorage)
	reportService := service.NewReportService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.ReportRecipient,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	pageService := service.NewPageService(cmsClient, profileRepository, cache.NewRenderCache())
	contentService := service.NewContentService(cmsClient, contentRepository)

	return &App{
		Cfg:            cfg,
		DB:             database,
		SearchService:  searchService,
		UploadService:  uploadService,
		ReportService:  reportService,
		PageService:    pageService,
		ContentService: contentService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
