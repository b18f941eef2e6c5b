package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
//	POSTGRES_USER=admin
//	POSTGRES_PASSWORD=secret
//	POSTGRES_DB=weatherpulse
//	POSTGRES_SSLMODE=disable
//	INGEST_DIR=./data/input
//	INGEST_PARALLEL=0
//	REPORT_FORMAT=both
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Postgres PostgresConfig // PostgreSQL connection settings
	Ingest   IngestConfig   // CSV ingestion settings
	Report   ReportConfig   // CLI report rendering settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string
}

// PostgresConfig defines connection details for PostgreSQL.
//
// Fields:
//   - Host: hostname of the database server.
//   - Port: port number of the database server (default 5432).
//   - User: username for authentication.
//   - Password: password for authentication.
//   - DBName: target database name.
//   - SSLMode: SSL mode (e.g., "disable", "require").
//   - URL: computed DSN used by database/sql to connect.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// IngestConfig controls how CSV files are loaded into storage.
type IngestConfig struct {
	Dir      string // directory scanned for *.csv files
	Parallel int    // files processed concurrently (0 = auto)
}

// ReportConfig controls the default output of the report mode.
type ReportConfig struct {
	Format string // summary | daily | both
}

// ReportFormats lists the accepted values of REPORT_FORMAT.
var ReportFormats = []string{"summary", "daily", "both"}

// AppConfig is the globally accessible configuration instance, populated by LoadConfig().
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing or invalid, validateConfig() terminates the app.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "weatherpulse")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	viper.SetDefault("INGEST_DIR", "./data/input")
	viper.SetDefault("INGEST_PARALLEL", 0)
	viper.SetDefault("REPORT_FORMAT", "both")

	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
		Ingest: IngestConfig{
			Dir:      viper.GetString("INGEST_DIR"),
			Parallel: viper.GetInt("INGEST_PARALLEL"),
		},
		Report: ReportConfig{
			Format: strings.ToLower(viper.GetString("REPORT_FORMAT")),
		},
	}

	AppConfig.Postgres.URL = BuildPostgresDSN(AppConfig.Postgres)

	validateConfig()
}

// BuildPostgresDSN renders the connection URL used by database/sql.
func BuildPostgresDSN(pg PostgresConfig) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		pg.User,
		pg.Password,
		pg.Host,
		pg.Port,
		pg.DBName,
		pg.SSLMode,
	)
}

// IsValidReportFormat reports whether f is one of ReportFormats.
func IsValidReportFormat(f string) bool {
	for _, v := range ReportFormats {
		if f == v {
			return true
		}
	}
	return false
}

// validateConfig terminates the application when required variables are
// missing or hold unsupported values.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Postgres.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if AppConfig.Postgres.Port == 0 {
		missing = append(missing, "POSTGRES_PORT")
	}
	if AppConfig.Postgres.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if AppConfig.Postgres.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if AppConfig.Postgres.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}
	if !IsValidReportFormat(AppConfig.Report.Format) {
		missing = append(missing, "REPORT_FORMAT")
	}
	if AppConfig.Ingest.Parallel < 0 {
		missing = append(missing, "INGEST_PARALLEL")
	}

	if len(missing) > 0 {
		log.Fatalf("missing or invalid environment variables: %v\n", missing)
	}
}
