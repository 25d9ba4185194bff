package config

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	Addr           string
	DBPath         string // assessment store
	CVEDBPath      string // CVE seed dataset
	Debug          bool
	ScoreRateLimit int // scoring requests per minute per client
	ReportLimit    int // assessments considered per report
}

// Load parses command line flags and environment variables to populate Config.
// Flags take precedence over environment variables.
func Load() *Config {
	cfg := &Config{}

	// Defaults and Environment Variables
	cfg.Addr = getEnv("VULNSCALE_ADDR", ":8080")
	cfg.DBPath = getEnv("VULNSCALE_DB", getDefaultDBPath("vulnscale.db"))
	cfg.CVEDBPath = getEnv("VULNSCALE_CVEDB", getDefaultDBPath("cve.db"))
	cfg.Debug = getEnvBool("VULNSCALE_DEBUG", false)
	cfg.ScoreRateLimit = getEnvInt("VULNSCALE_SCORE_RATE", 60)
	cfg.ReportLimit = getEnvInt("VULNSCALE_REPORT_LIMIT", 500)

	// Command Line Flags (Override Env)
	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP server address")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to assessment SQLite database")
	flag.StringVar(&cfg.CVEDBPath, "cve-db", cfg.CVEDBPath, "Path to CVE dataset SQLite database")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable verbose debug logging")
	flag.IntVar(&cfg.ScoreRateLimit, "score-rate", cfg.ScoreRateLimit, "Scoring requests per minute per client")
	flag.IntVar(&cfg.ReportLimit, "report-limit", cfg.ReportLimit, "Assessments considered per report")

	flag.Parse()

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

// getDefaultDBPath returns the default database path in user's home directory.
// Creates the directory if it doesn't exist.
func getDefaultDBPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Printf("Warning: Could not get user home directory, using current dir: %v", err)
		return name
	}

	dir := filepath.Join(home, ".vulnscale")

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("Warning: Could not create .vulnscale directory, using current dir: %v", err)
		return name
	}

	return filepath.Join(dir, name)
}
