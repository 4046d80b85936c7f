// internal/common/config/config.go
package config

// Config is the main application configuration struct.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Content   ContentConfig   `mapstructure:"content"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Favorites FavoritesConfig `mapstructure:"favorites"`
	Export    ExportConfig    `mapstructure:"export"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

// --- Core App/Infrastructure Config ---

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// ContentConfig holds the three headless content endpoints. Each collection
// is fetched independently; a bad URL degrades that collection, nothing else.
type ContentConfig struct {
	CruisesURL    string `mapstructure:"cruises_url"`
	ActivitiesURL string `mapstructure:"activities_url"`
	EssentialsURL string `mapstructure:"essentials_url"`
	Timeout       int    `mapstructure:"timeout"` // milliseconds
}

type DatabaseConfig struct {
	Redis RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// FavoritesConfig holds settings for the persisted saved-items list.
type FavoritesConfig struct {
	StorageKey string `mapstructure:"storage_key"`
}

// ExportConfig holds settings for the email-export action.
type ExportConfig struct {
	Subject string `mapstructure:"subject"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MetricsConfig controls the optional Prometheus scrape endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}
