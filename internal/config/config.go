package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DriverRedis  = "redis"
	DriverSQLite = "sqlite"

	FormatJSON = "json"
	FormatText = "text"
)

type Config struct {
	LogLevel  string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string  `yaml:"log-format" env:"LOG_FORMAT" env-default:"json"`
	HTTPPort  string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Storage   Storage `yaml:"storage"`
	Redis     Redis   `yaml:"redis"`
	SQLite    SQLite  `yaml:"sqlite"`
}

type Storage struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type SQLite struct {
	Path string `yaml:"path" env:"SQLITE_PATH" env-default:"tictactoe.db"`
}

// MustLoad - load all configurations in config.yml file, environment variables on top.
// Without the file only the environment is read.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
