package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Configuration struct {
	Server struct {
		Host string `envconfig:"SERVER_HOST"`
		Port string `envconfig:"SERVER_PORT" default:"8080"`
	}
	Database struct {
		Address      string `envconfig:"MONGO_ADDRESS"`
		DatabaseName string `envconfig:"MONGO_DATABASE"`
		Collection   string `envconfig:"MONGO_COLLECTION"`
	}
	Stockfish struct {
		// Path empty means engine evaluation is disabled.
		Path string   `envconfig:"STOCKFISH_PATH"`
		Args []string `envconfig:"STOCKFISH_ARGS"`
	}
	Generator struct {
		MaxBatch int `envconfig:"GENERATOR_MAX_BATCH" default:"1000"`
	}
}

func InitConfig() (*Configuration, error) {
	cfg := &Configuration{}
	err := envconfig.Process("", cfg)
	return cfg, err
}
