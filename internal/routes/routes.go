package routes

import (
	"net/http"

	"github.com/livingword/site/internal/app"
	"github.com/livingword/site/internal/handler"
	"github.com/livingword/site/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	search := handler.NewSearchHandler(app.SearchService)
	upload := handler.NewUploadHandler(app.UploadService)
	revalidate := handler.NewRevalidateHandler(app.PageService, app.Cfg.RevalidateSecret)
	report := handler.NewReportHandler(app.ReportService)
	page := handler.NewPageHandler(app.PageService)
	health := handler.NewHealthHandler(app.DB)

	mux := http.NewServeMux()

	// Content pages (served through the render cache)
	mux.HandleFunc("GET /{$}", page.Show)
	mux.HandleFunc("GET /verse-by-verse", page.Show)
	mux.HandleFunc("GET /topics", page.Show)
	mux.HandleFunc("GET /resources", page.Show)
	mux.HandleFunc("GET /ask", page.Show)

	// API
	mux.HandleFunc("GET /api/search", search.Search)
	mux.HandleFunc("POST /api/uploads", upload.Create)
	mux.HandleFunc("POST /api/report", report.Submit)

	// Webhooks
	mux.HandleFunc("POST /api/revalidate", revalidate.Revalidate)

	// Operations
	mux.HandleFunc("GET /health", health.Health)

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.RequestLogging,
	)
}
