package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path"
	"time"

	"github.com/adrg/xdg"
	"github.com/sulayman/folio/internal/page"
	"github.com/sulayman/folio/internal/reveal"
	"github.com/sulayman/folio/internal/tracker"
)

var (
	errConfigWrite = errors.New("failed to write config file")
	errConfigRead  = errors.New("failed to read config file")
	errConfigValue = errors.New("invalid config value")
	errLoggerInit  = errors.New("failed to initialize logger")

	errRowHeight = errors.New("row_height must be positive")
	errFPS       = errors.New("fps must be positive")
	errStatTick  = errors.New("stat_tick_ms must be positive")
)

const (
	ConfigDirName     = "folio"
	DefaultConfigName = "folio"
	DefaultLogName    = "folio.log"
	EnvPrefix         = "folio"
)

type Config struct {
	// ProbeOffset is the distance in px below the top of the document viewport that a section must
	// span to be highlighted in the navigation bar.
	ProbeOffset float64 `mapstructure:"probe_offset"`
	// ChromeThreshold is the scroll offset in px after which the navigation bar is drawn as
	// scrolled.
	ChromeThreshold  float64 `mapstructure:"chrome_threshold"`
	RevealThreshold  float64 `mapstructure:"reveal_threshold"`
	RevealRootMargin string  `mapstructure:"reveal_root_margin"`
	// RowHeight is the number of px a single terminal row represents. All of the px based values
	// above are converted to rows with it.
	RowHeight    float64 `mapstructure:"row_height"`
	SmoothScroll bool    `mapstructure:"smooth_scroll"`
	FPS          int     `mapstructure:"fps"`
	// CompactWidth is the terminal width under which the navigation collapses into a menu.
	CompactWidth int  `mapstructure:"compact_width"`
	StatTickMs   int  `mapstructure:"stat_tick_ms"`
	Debug        bool `mapstructure:"debug"`
}

// Tuning converts the config into the page presentation constants.
func (c Config) Tuning() page.Tuning {
	return page.Tuning{
		Tracker: tracker.Options{
			ProbeOffset:     c.ProbeOffset,
			ChromeThreshold: c.ChromeThreshold,
		},
		Reveal: reveal.Options{
			Threshold:  c.RevealThreshold,
			RootMargin: c.RevealRootMargin,
		},
		SmoothScroll: c.SmoothScroll,
		FPS:          c.FPS,
	}
}

func (c Config) StatTick() time.Duration {
	return time.Duration(c.StatTickMs) * time.Millisecond
}

// Validate checks the values that cannot be sensibly clamped.
func (c Config) Validate() error {
	if c.RowHeight <= 0 {
		return errors.Join(errRowHeight, errConfigValue)
	}

	if c.FPS <= 0 {
		return errors.Join(errFPS, errConfigValue)
	}

	if c.StatTickMs <= 0 {
		return errors.Join(errStatTick, errConfigValue)
	}

	if _, err := c.Tuning().Reveal.Validate(); err != nil {
		return errors.Join(err, errConfigValue)
	}

	return nil
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

// LoggerInit sets up the slog global handler to use a log file as we cant print to the console.
func LoggerInit(logPath string, level slog.Level) (io.Closer, error) {
	logFile, errLogFile := os.Create(path.Join(xdg.ConfigHome, ConfigDirName, logPath))
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)

	return logFile, nil
}
