package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	Redis      Redis  `yaml:"redis"`
	Engine     Engine `yaml:"engine"`
}

type Redis struct {
	Host    string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	GameTTL time.Duration `yaml:"game-ttl" env:"REDIS_GAME_TTL" env-default:"24h"`
}

// Engine - search settings of the bot.
type Engine struct {
	Algorithm string `yaml:"algorithm" env:"ENGINE_ALGORITHM" env-default:"alphabeta"`
	Parallel  bool   `yaml:"parallel" env:"ENGINE_PARALLEL" env-default:"false"`
}

// MustLoad - load all configurations in config.yml file, environment variables override it.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	if that.Host == "" || that.Port == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
