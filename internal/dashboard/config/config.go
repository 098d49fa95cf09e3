package config

import (
	"VCS_Image_Dashboard/internal/dashboard/model"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server    ServerConfig
	Inventory InventoryConfig
	Version   VersionConfig
	// Warnings collects non-fatal problems found while loading, main logs them.
	Warnings []string `ignored:"true"`
}

type ServerConfig struct {
	Port            string        `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFile         string        `envconfig:"LOG_FILE" default:"./log/dashboard.log"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

type InventoryConfig struct {
	BaseURL string        `envconfig:"VITE_API_BASE_URL" default:"http://localhost:3000/api"`
	Timeout time.Duration `envconfig:"INVENTORY_TIMEOUT" default:"10s"`
}

// VersionConfig mirrors the keys written by version-gen.
type VersionConfig struct {
	GitHash      string `envconfig:"VITE_GIT_HASH"`
	CommitDate   string `envconfig:"VITE_COMMIT_DATE"`
	CommitAuthor string `envconfig:"VITE_COMMIT_AUTHOR"`
	Version      string `envconfig:"VITE_VERSION"`
}

// Metadata resolves every missing value to model.NotAvailable.
func (v VersionConfig) Metadata() model.VersionMetadata {
	return model.NewVersionMetadata(v.GitHash, v.CommitDate, v.CommitAuthor, v.Version)
}

// LoadConfig reads the optional .env file and the generated version file, then
// processes the environment. Variables already set in the environment win over
// both files. A missing version file is reported in Warnings, not as an error.
func LoadConfig(envPath string, versionPath string) (AppConfig, error) {
	_ = godotenv.Load(envPath)
	versionErr := godotenv.Load(versionPath)

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	if versionErr != nil {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("version file %s not loaded, build metadata will show %s: %v", versionPath, model.NotAvailable, versionErr))
	}
	return cfg, nil
}
