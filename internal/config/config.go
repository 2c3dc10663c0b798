package config

import (
	pkgconfig "github.com/musicallyvk/TrackingNumberService/pkg/config"
)

type Config struct {
	Server    ServerConfig
	Snowflake SnowflakeConfig
	Suffix    SuffixConfig
	Countries map[string]string `mapstructure:"countries"`
	Log       LogConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type SnowflakeConfig struct {
	DatacenterID int64 `mapstructure:"datacenter_id"`
	WorkerID     int64 `mapstructure:"worker_id"`
	Epoch        int64
}

type SuffixConfig struct {
	Length int `mapstructure:"length"`
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	v, err := pkgconfig.Load("./config", "config")
	if err != nil {
		return nil, err
	}

	// Set defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("snowflake.datacenter_id", 0)
	v.SetDefault("snowflake.worker_id", 0)
	v.SetDefault("snowflake.epoch", 1288834974657)
	v.SetDefault("suffix.length", 5)
	v.SetDefault("log.level", "info")

	// Override from environment
	v.BindEnv("server.port", "PORT")
	v.BindEnv("snowflake.datacenter_id", "SNOWFLAKE_DATACENTER_ID")
	v.BindEnv("snowflake.worker_id", "SNOWFLAKE_WORKER_ID")
	v.BindEnv("snowflake.epoch", "SNOWFLAKE_EPOCH")
	v.BindEnv("suffix.length", "SUFFIX_LENGTH")
	v.BindEnv("log.level", "LOG_LEVEL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
