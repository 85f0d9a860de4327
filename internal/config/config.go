package config

import (
	"time"

	"github.com/creasty/defaults"
)

// DevSigningKey is the fallback token signing key used when none is
// configured. It is fine for local development and UNSAFE for production;
// the run command logs a warning whenever it is in effect.
const DevSigningKey = "devsecret"

type Server struct {
	HTTPPort   int    `default:"8080"`
	ServerMode string `default:"dev"`
}

type Database struct {
	Path string `default:"roster.db"`
}

type Auth struct {
	SigningKey string        `default:"devsecret"`
	TokenTTL   time.Duration `default:"1h"`
}

type Configuration struct {
	Server   Server
	Database Database
	Auth     Auth
}

// NewConfigurationWithOptionsAndDefaults builds a Configuration with all
// defaults applied. Flag and environment binding happens in cmd.
func NewConfigurationWithOptionsAndDefaults() *Configuration {
	cfg := &Configuration{}
	if err := defaults.Set(cfg); err != nil {
		panic(err)
	}
	return cfg
}
