package main

import (
	"errors"
	"flag"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Config is the optional configuration file.
type Config struct {
	LogLevel logrus.Level `yaml:"log_level"`
}

// DefaultConfig keeps logging quiet so stdout only carries query output.
func DefaultConfig() Config {
	return Config{
		LogLevel: logrus.WarnLevel,
	}
}

// LoadConfig decodes the YAML file at path over the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	configFile, err := os.Open(path)
	if err != nil {
		return config, err
	}
	defer configFile.Close()

	if err := yaml.NewDecoder(configFile).Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return config, err
	}

	return config, nil
}

// logFlags are the flags shared by every command.
type logFlags struct {
	configPath string
	logLevel   string
}

func (f *logFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.configPath, "config", "", "config file")
	fs.StringVar(&f.logLevel, "log-level", "", "log level, overrides the config file")
}

// logger builds the command logger from the config file and flags.
func (f *logFlags) logger(w io.Writer) (*logrus.Logger, error) {
	config := DefaultConfig()
	if f.configPath != "" {
		var err error
		if config, err = LoadConfig(f.configPath); err != nil {
			return nil, err
		}
	}

	if f.logLevel != "" {
		level, err := logrus.ParseLevel(f.logLevel)
		if err != nil {
			return nil, err
		}
		config.LogLevel = level
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(config.LogLevel)

	return logger, nil
}
