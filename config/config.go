package config

import (
	"errors"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// ErrInvalidPollInterval is returned when the configured poll interval is not
// a number of seconds. The daemon refuses to start on it.
var ErrInvalidPollInterval = errors.New("poll interval must be a number of seconds")

type Config struct {
	Poller  Poller  `json:"poller" yaml:"poller" mapstructure:"poller"`
	Watcher Watcher `json:"watcher" yaml:"watcher" mapstructure:"watcher"`
	Deluge  Deluge  `json:"deluge" yaml:"deluge" mapstructure:"deluge"`
	Feeds   []Feed  `json:"feeds" yaml:"feeds" mapstructure:"feeds"`
	Storage Storage `json:"storage" yaml:"storage" mapstructure:"storage"`
	Server  Server  `json:"server" yaml:"server" mapstructure:"server"`
}

// Poller holds the feed polling settings. Interval stays a string so a bad
// value fails with a clear error instead of being coerced to zero.
type Poller struct {
	Interval string `json:"interval" yaml:"interval" mapstructure:"interval"`
}

// Interval parses the configured poll interval in seconds.
func (p Poller) PollInterval() (time.Duration, error) {
	seconds, err := strconv.Atoi(p.Interval)
	if err != nil || seconds <= 0 {
		return 0, ErrInvalidPollInterval
	}

	return time.Duration(seconds) * time.Second, nil
}

type Watcher struct {
	Interval time.Duration `json:"interval" yaml:"interval" mapstructure:"interval"`
}

type Deluge struct {
	Scheme   string `json:"scheme" yaml:"scheme" mapstructure:"scheme"`
	Host     string `json:"host" yaml:"host" mapstructure:"host"`
	Port     int    `json:"port" yaml:"port" mapstructure:"port"`
	Password string `json:"password" yaml:"password" mapstructure:"password"`
}

// Feed is one release source to poll. Parser picks the source conventions;
// "nyaa" and "generic" are known.
type Feed struct {
	Name   string `json:"name" yaml:"name" mapstructure:"name"`
	URL    string `json:"url" yaml:"url" mapstructure:"url"`
	Parser string `json:"parser" yaml:"parser" mapstructure:"parser"`
}

// Storage configuration is assumed to be for sqlite database only currently
type Storage struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	return c, err
}
