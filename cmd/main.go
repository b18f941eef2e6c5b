package main

//
//  @title           weatherpulse API
//  @version         1.0
//  @description     Daily weather CSV ingestion and Celsius report service.
//  @termsOfService  https://github.com/guttosm/weatherpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/weatherpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        reports
//  @tag.description Summary and daily temperature reports
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/guttosm/weatherpulse/config"
	_ "github.com/guttosm/weatherpulse/docs" // swagger docs
	"github.com/guttosm/weatherpulse/internal/app"
	"github.com/guttosm/weatherpulse/internal/ingestion"
	"github.com/guttosm/weatherpulse/internal/logger"
	"github.com/guttosm/weatherpulse/internal/observability"
	"github.com/guttosm/weatherpulse/internal/service"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown blocks until SIGINT or SIGTERM, then shuts the server down
// within 10 seconds and runs cleanup.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runReport loads one CSV file and writes the requested report(s) to out.
//
// format is summary, daily or both. The report text is written verbatim, so
// an empty file prints "No data available.".
func runReport(ctx context.Context, path, format string, out io.Writer, metrics *observability.Metrics) error {
	if path == "" {
		return errors.New("--file is required in report mode")
	}
	if !config.IsValidReportFormat(format) {
		return fmt.Errorf("%w: %q", service.ErrUnknownFormat, format)
	}

	rows, err := ingestion.LoadFile(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	svc := service.NewReportService(nil, metrics, nil)
	rep, err := svc.Render(ctx, filepath.Base(path), rows)
	if err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}

	text, err := service.Text(rep, format)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(out, text); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	logger.L().Debug().
		Str("report_id", rep.ID).
		Str("file", path).
		Int("rows", len(rows)).
		Msg("report rendered")
	return nil
}

// main is the entry point of the weatherpulse application.
//
// Modes (selected via --mode flag):
//   - report: Renders the summary and/or daily report of one CSV file to stdout.
//   - ingest: Loads every .csv file of a directory into PostgreSQL.
//   - api:    Starts the REST API over stored observations.
//
// Flags:
//   - --mode:     report, ingest or api. Default: "report".
//   - --file:     CSV file for report mode.
//   - --format:   summary, daily or both. Default from REPORT_FORMAT.
//   - --dir:      Directory for ingest mode. Default from INGEST_DIR.
//   - --parallel: Files ingested concurrently (0 = auto). Default from INGEST_PARALLEL.
//   - --force:    Re-ingest files already present in the ingestion log.
//   - --port:     Port for the API server. Default from SERVER_PORT.
func main() {
	// Load configuration from environment or .env file
	config.LoadConfig()

	logger.Init()

	mode := flag.String("mode", "report", "Mode: report, ingest or api")
	file := flag.String("file", "", "CSV file to report on (report mode)")
	format := flag.String("format", config.AppConfig.Report.Format, "Report format: summary, daily or both")
	dir := flag.String("dir", config.AppConfig.Ingest.Dir, "Directory with .csv files (ingest mode)")
	parallel := flag.Int("parallel", config.AppConfig.Ingest.Parallel, "How many files to process concurrently (0=auto up to CPU, max 8)")
	force := flag.Bool("force", false, "Reprocess files even if already ingested (deletes their stored observations)")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch *mode {
	case "report":
		if err := runReport(ctx, *file, *format, os.Stdout, observability.NewMetrics()); err != nil {
			logger.L().Fatal().Err(err).Msg("report failed")
		}

	case "ingest":
		logger.L().Info().Str("dir", *dir).Msg("running ingestion")

		db, err := app.InitPostgres(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("db connect error")
		}
		defer func() { _ = db.Close() }()

		if err := ingestion.ProcessDirectory(ctx, *dir, db, *parallel, *force, observability.NewMetrics()); err != nil {
			logger.L().Fatal().Err(err).Msg("ingestion failed")
		}
		logger.L().Info().Msg("ingestion completed successfully")

	case "api":
		// the API handles its own signals in gracefulShutdown
		stop()
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(context.Background(), server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
