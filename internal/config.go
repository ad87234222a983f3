package internal

import (
	"fmt"
	"time"
)

type Config struct {
	Host                 string        `env:"HOST,default=0.0.0.0"`
	Port                 int           `env:"PORT,default=50051"`
	MetricsPort          int           `env:"METRICS_PORT,default=9091"`
	DebugPort            int           `env:"DEBUG_PORT,default=8089"`
	EnableDebugServer    bool          `env:"ENABLE_DEBUG_SERVER,default=false"`
	BadgerFilepath       string        `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath        string        `env:"BLUGE_FILEPATH,required=true"`
	LogLevel             string        `env:"LOG_LEVEL,default=info"`
	BufferSize           int           `env:"BUFFER_SIZE,default=1024"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=256"`
	SinkTimeout          time.Duration `env:"SINK_TIMEOUT,default=2s"`
	AuthTokenDuration    time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
	JWTSigningKey        string        `env:"JWT_SIGNING_KEY"`
	CharReplacement      string        `env:"CHARACTER_REPLACEMENT,default=*"`
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
