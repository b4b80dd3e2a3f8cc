package providers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"globalpass/internal/structures"
)

type TypeEnum uint8

const (
	TypeApp TypeEnum = iota
	TypeGet
	TypePost
	TypeGen
)

// GetLogTypeByRequestType maps an HTTP method onto an access log channel.
func GetLogTypeByRequestType(method string) TypeEnum {
	if method == http.MethodPost {
		return TypePost
	}
	return TypeGet
}

type Logger interface {
	Errorf(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Debugf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

type LogProvider struct {
	app       zerolog.Logger
	access    zerolog.Logger
	assistant zerolog.Logger
	files     []*os.File
}

func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", conf.Logger.Level, err)
	}

	mode := os.FileMode(conf.Logger.Mode)
	lp := &LogProvider{}

	open := func(name string) (*os.File, error) {
		f, err := os.OpenFile(filepath.Join(conf.Logger.Dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, mode)
		if err != nil {
			lp.Close()
			return nil, err
		}
		lp.files = append(lp.files, f)
		return f, nil
	}

	appFile, err := open("app.log")
	if err != nil {
		return nil, err
	}
	accessFile, err := open("access.log")
	if err != nil {
		return nil, err
	}
	assistantFile, err := open("assistant.log")
	if err != nil {
		return nil, err
	}

	lp.app = zerolog.New(appFile).Level(level).With().Timestamp().Logger()
	lp.access = zerolog.New(accessFile).Level(level).With().Timestamp().Logger()
	lp.assistant = zerolog.New(assistantFile).Level(level).With().Timestamp().Logger()

	if conf.Debug {
		console := zerolog.ConsoleWriter{Out: os.Stderr}
		lp.app = lp.app.Output(zerolog.MultiLevelWriter(appFile, console))
	}

	return lp, nil
}

func (lp *LogProvider) byType(t TypeEnum) *zerolog.Logger {
	switch t {
	case TypeGet, TypePost:
		return &lp.access
	case TypeGen:
		return &lp.assistant
	default:
		return &lp.app
	}
}

func (lp *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	lp.byType(t).Error().Msgf(format, args...)
}

func (lp *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	lp.byType(t).Warn().Msgf(format, args...)
}

func (lp *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	lp.byType(t).Debug().Msgf(format, args...)
}

func (lp *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	lp.byType(t).Info().Msgf(format, args...)
}

func (lp *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	lp.byType(t).Fatal().Msgf(format, args...)
}

func (lp *LogProvider) Close() {
	for _, f := range lp.files {
		_ = f.Close()
	}
	lp.files = nil
}
