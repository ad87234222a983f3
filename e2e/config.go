package e2e

import (
	"github.com/Netflix/go-env"
)

type Config struct {
	// E2E_SERVER_ADDR points at a running server; empty skips the suite.
	ServerAddr string `env:"E2E_SERVER_ADDR"`
	// E2E_DEBUG_JSON allows dumping full gRPC request/response bodies as JSON
	DebugJSON bool `env:"E2E_DEBUG_JSON,default=false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `env:"E2E_COLOURS,default=true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	_, err := env.UnmarshalFromEnviron(&cfg)
	return cfg, err
}
