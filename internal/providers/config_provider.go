package providers

import (
	"fmt"
	"github.com/spf13/viper"
	"globalpass/internal/structures"
	"path/filepath"
	"strings"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "GLOBALPASS_LOG_LEVEL")
	viper.BindEnv("catalog.url", "GLOBALPASS_CATALOG_URL")
	viper.BindEnv("catalog.refreshInterval", "GLOBALPASS_CATALOG_REFRESH_INTERVAL")
	viper.BindEnv("assistant.model", "GLOBALPASS_GEMINI_MODEL")
	viper.BindEnv("assistant.apiKey", "GLOBALPASS_GEMINI_API_KEY")
	viper.BindEnv("cache.enabled", "GLOBALPASS_CACHE_ENABLED")
	viper.BindEnv("cache.size", "GLOBALPASS_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "GlobalPass"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
