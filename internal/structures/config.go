package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type CatalogConfig struct {
	URL             string        `yaml:"url" validate:"required|fullUrl"`
	FetchTimeout    time.Duration `yaml:"fetchTimeout" validate:"required|min:1"`
	RefreshInterval time.Duration `yaml:"refreshInterval" validate:"required|min:1"`
	SnapshotPath    string        `yaml:"snapshotPath" validate:"required|unixPath"`
}

type AssistantConfig struct {
	Endpoint       string        `yaml:"endpoint" validate:"required|fullUrl"`
	Model          string        `yaml:"model" validate:"required"`
	Timeout        time.Duration `yaml:"timeout" validate:"required|min:1"`
	RetrieveLimit  int           `yaml:"retrieveLimit" validate:"required|min:1"`
	ShortlistLimit int           `yaml:"shortlistLimit" validate:"required|min:1"`
	InlineLimit    int           `yaml:"inlineLimit" validate:"required|min:1"`
	// APIKey is only accepted from the environment, never from the yaml file.
	APIKey string `yaml:"-"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	WebServer Server          `yaml:"webServer"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Assistant AssistantConfig `yaml:"assistant"`
	Logger    LoggerConfig    `yaml:"logger"`
	Cache     CacheConfig     `yaml:"cache"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}
