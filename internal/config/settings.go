package config

import (
	"runtime"
	"strings"

	"github.com/charmbracelet/log"

	"ipinspect/internal/crawler"
)

const (
	EnvSourcesFile   = "IPINSPECT_SOURCES_FILE"
	EnvGeoIPDatabase = "IPINSPECT_GEOIP_DB"
	EnvWorkers       = "IPINSPECT_WORKERS"
	EnvLogLevel      = "IPINSPECT_LOG_LEVEL"
)

// Config carries every setting the commands need. It is built once at start
// up and handed down explicitly.
type Config struct {
	// SourcesFile is the optional JSON file with additional crawler sources.
	SourcesFile string
	// GeoIPDatabase is the path of a GeoLite2 Country database. Empty
	// disables country lookups.
	GeoIPDatabase string
	// Workers bounds the goroutines used by batch overlap checks.
	Workers  int
	LogLevel log.Level
}

func Default() Config {
	return Config{
		SourcesFile: crawler.DefaultSourcesFile,
		Workers:     runtime.NumCPU(),
		LogLevel:    log.InfoLevel,
	}
}

// Load starts from Default and applies the IPINSPECT_* environment
// variables. Invalid values are logged and ignored.
func Load() Config {
	cfg := Default()

	cfg.SourcesFile = GetEnv(EnvSourcesFile, cfg.SourcesFile)
	cfg.GeoIPDatabase = GetEnv(EnvGeoIPDatabase, cfg.GeoIPDatabase)

	if workers := GetEnvInt(EnvWorkers, cfg.Workers); workers > 0 {
		cfg.Workers = workers
	} else {
		log.Warn("ignoring non-positive worker count", "env", EnvWorkers, "value", workers)
	}

	if raw := GetEnv(EnvLogLevel, ""); raw != "" {
		level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(raw)))
		if err != nil {
			log.Warn("invalid log level override", "env", EnvLogLevel, "value", raw)
		} else {
			cfg.LogLevel = level
		}
	}

	return cfg
}
