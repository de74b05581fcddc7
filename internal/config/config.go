package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/tidwall/jsonc"

	"github.com/mmr-tortoise/stackctl/internal/model"
)

// FileName is the optional per-project configuration file, looked up in
// the working directory. The file is JSONC, so it may carry comments.
const FileName = "stackctl.jsonc"

// Environment variables that override database credentials. These take
// precedence over anything loaded from the .env file or the project
// file, so CI and operators can inject secrets without touching disk.
const (
	EnvDBUser     = "STACKCTL_DB_USER"
	EnvDBPassword = "STACKCTL_DB_PASSWORD"
)

// Config holds everything the dispatcher needs to compose an external
// command line. One Config is resolved per invocation and passed by
// value; nothing mutates it afterwards.
type Config struct {
	// Project is the compose project name passed via -p, keeping
	// container and network names stable across compose file paths.
	Project string `json:"project"`

	// DevComposeFile and ProdComposeFile are the two configuration
	// paths. Mode selection maps onto exactly these two files.
	DevComposeFile  string `json:"devComposeFile"`
	ProdComposeFile string `json:"prodComposeFile"`

	// EnvFile is the environment file handed to docker compose via
	// --env-file. Only included on the command line when it exists.
	EnvFile string `json:"envFile"`

	// DefaultService is the unit targeted by service-scoped operations
	// (logs, shell) when no --service flag is given.
	DefaultService string `json:"defaultService"`

	// BackupDir is the local directory for database backup archives.
	BackupDir string `json:"backupDir"`

	// Database identifies the database unit and its credentials.
	Database Database `json:"database"`

	// Health lists the endpoints probed by the health command.
	Health Health `json:"health"`
}

// Database describes the fixed database service targeted by the db
// operations. Username and Password are filled from the environment
// (EnvDBUser / EnvDBPassword, possibly via .env); the JSON layer can
// set them for development convenience but should not in production.
type Database struct {
	// Service is the compose service name of the database unit. The db
	// operations always target this service, regardless of mode.
	Service string `json:"service"`

	// Name is the logical database that reset/backup/restore act on.
	Name string `json:"name"`

	Username string `json:"username"`
	Password string `json:"password"`
}

// Health holds the fixed local endpoints probed by the health command.
type Health struct {
	// GatewayURL is the gateway's health endpoint.
	GatewayURL string `json:"gatewayUrl"`

	// BackendURL is the backend's health endpoint.
	BackendURL string `json:"backendUrl"`
}

// Default returns the compiled-in configuration. The credential
// defaults match the development compose file and are overridden by the
// environment in any real deployment.
func Default() Config {
	return Config{
		Project:         "stackctl",
		DevComposeFile:  "docker-compose.dev.yml",
		ProdComposeFile: "docker-compose.prod.yml",
		EnvFile:         ".env",
		DefaultService:  "backend",
		BackupDir:       "backups",
		Database: Database{
			Service:  "mongodb",
			Name:     "app",
			Username: "root",
			Password: "example",
		},
		Health: Health{
			GatewayURL: "http://localhost:8080/healthz",
			BackendURL: "http://localhost:8000/health",
		},
	}
}

// Load resolves the configuration for the given project directory.
//
// Layering, lowest to highest precedence:
//  1. Default()
//  2. stackctl.jsonc in dir (if present)
//  3. the .env file named by EnvFile (if present), loaded into the
//     process environment without clobbering already-set variables
//  4. STACKCTL_DB_USER / STACKCTL_DB_PASSWORD from the environment
func Load(dir string) (Config, error) {
	cfg := Default()

	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		// Strip JSONC comments and trailing commas, then parse over the
		// defaults: only the fields present in the file are replaced.
		if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// No project file — defaults apply.
	default:
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	// godotenv.Load never overwrites variables already present in the
	// environment, so explicitly exported values win over .env entries.
	if cfg.EnvFile != "" {
		envPath := cfg.EnvFile
		if !filepath.IsAbs(envPath) {
			envPath = filepath.Join(dir, envPath)
		}
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return Config{}, fmt.Errorf("failed to load %s: %w", envPath, err)
			}
		}
	}

	if v := os.Getenv(EnvDBUser); v != "" {
		cfg.Database.Username = v
	}
	if v := os.Getenv(EnvDBPassword); v != "" {
		cfg.Database.Password = v
	}

	return cfg, nil
}

// ComposeFile returns the configuration path for the given mode.
// The mapping is total over the Mode enum; an invalid mode here is a
// programming error because ParseMode rejects unknown values at the
// flag boundary.
func (c Config) ComposeFile(mode model.Mode) string {
	switch mode {
	case model.ModeProduction:
		return c.ProdComposeFile
	default:
		return c.DevComposeFile
	}
}
