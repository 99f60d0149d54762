package config

import (
	"fmt"
	"time"

	"github.com/Amrsono/The-Shop/pkg/mq"
	"github.com/Amrsono/The-Shop/pkg/mysql"
	"github.com/spf13/viper"
)

type Config struct {
	API      API          `mapstructure:"api"`
	Metrics  Metrics      `mapstructure:"metrics"`
	Database mysql.Config `mapstructure:"database"`
	RabbitMQ mq.Config    `mapstructure:"rabbitmq"`
	Auth     Auth         `mapstructure:"auth"`
	Checkout Checkout     `mapstructure:"checkout"`
}

type API struct {
	Port string `mapstructure:"port"`
}

type Metrics struct {
	Port string `mapstructure:"port"`
}

type Auth struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

type Checkout struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	err = viper.ReadInConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
