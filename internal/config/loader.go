package config

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"github.com/sulayman/folio/internal/page"
	"github.com/sulayman/folio/internal/reveal"
	"github.com/sulayman/folio/internal/tracker"
)

// Loader handles setting up viper, loading configuration from files, and broadcasting configuration changes.
type Loader struct {
	*viper.Viper
	changes chan<- Config
}

// NewLoader creates a loader searching the default locations. When configFile is not empty it is
// used instead.
func NewLoader(changes chan<- Config, configFile string) *Loader {
	loader := Loader{changes: changes, Viper: viper.New()}
	loader.SetDefault("probe_offset", tracker.DefaultProbeOffset)
	loader.SetDefault("chrome_threshold", tracker.DefaultChromeThreshold)
	loader.SetDefault("reveal_threshold", reveal.DefaultThreshold)
	loader.SetDefault("reveal_root_margin", reveal.DefaultRootMargin)
	loader.SetDefault("row_height", 20)
	loader.SetDefault("smooth_scroll", true)
	loader.SetDefault("fps", page.DefaultFPS)
	loader.SetDefault("compact_width", 100)
	loader.SetDefault("stat_tick_ms", 50)
	loader.SetDefault("debug", false)
	loader.SetConfigType("yaml")
	if configFile != "" {
		loader.SetConfigFile(configFile)
	} else {
		loader.SetConfigName(DefaultConfigName)
		loader.AddConfigPath(Path(""))
		loader.AddConfigPath(".")
	}
	loader.SetEnvPrefix(EnvPrefix)
	loader.AutomaticEnv()

	return &loader
}

// Watch starts watching the config file in use, sending freshly read configs over the changes channel.
func (cl *Loader) Watch() {
	cl.OnConfigChange(cl.onConfigChange)
	cl.WatchConfig()
}

func (cl *Loader) Path() string {
	return cl.ConfigFileUsed()
}

func (cl *Loader) onConfigChange(in fsnotify.Event) {
	if !in.Has(fsnotify.Write) && !in.Has(fsnotify.Rename) && !in.Has(fsnotify.Create) {
		return
	}

	slog.Debug("External config reload triggered", slog.String("path", in.Name))
	config, err := cl.Read()
	if err != nil {
		slog.Error("Error reading config", slog.String("error", err.Error()))

		return
	}

	if cl.changes != nil {
		cl.changes <- config
	}
}

func (cl *Loader) Write(config Config) error {
	cl.Set("probe_offset", config.ProbeOffset)
	cl.Set("chrome_threshold", config.ChromeThreshold)
	cl.Set("reveal_threshold", config.RevealThreshold)
	cl.Set("reveal_root_margin", config.RevealRootMargin)
	cl.Set("row_height", config.RowHeight)
	cl.Set("smooth_scroll", config.SmoothScroll)
	cl.Set("fps", config.FPS)
	cl.Set("compact_width", config.CompactWidth)
	cl.Set("stat_tick_ms", config.StatTickMs)
	cl.Set("debug", config.Debug)

	if err := cl.WriteConfig(); err != nil {
		return errors.Join(err, errConfigWrite)
	}

	return nil
}

// Read loads the config. A missing config file is not an error, the defaults are used instead.
func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	if err := config.Validate(); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	return config, nil
}
