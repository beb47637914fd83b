package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the runtime parameters of the telemetry monitor, loaded from
// environment variables.
type Config struct {
	// WindowSize is the per-channel capacity of the sliding window.
	WindowSize int
	// TickInterval is the presentation feed cadence.
	TickInterval time.Duration
	// SourceAddr is the TCP address of the device bridge. Empty disables the
	// TCP source; frames then arrive over the gRPC ingress only.
	SourceAddr string
	// FrameBuffer is the capacity of the transport-to-pipeline handoff channel.
	FrameBuffer int
	HTTPPort    int
	GRPCPort    int
	LogLevel    string
}

// Load reads the configuration from the environment, applying defaults and
// validating construction-time constraints.
func Load() (*Config, error) {
	windowSize, err := getEnvInt(EnvWindowSize, DefaultWindowSize)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvWindowSize, err)
	}
	if windowSize <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %d", EnvWindowSize, windowSize)
	}

	tickInterval, err := getEnvDuration(EnvTickInterval, DefaultTickInterval)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvTickInterval, err)
	}
	if tickInterval <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %s", EnvTickInterval, tickInterval)
	}

	frameBuffer, err := getEnvInt(EnvFrameBuffer, DefaultFrameBuffer)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvFrameBuffer, err)
	}
	if frameBuffer <= 0 {
		frameBuffer = DefaultFrameBuffer
	}

	httpPort, err := getEnvInt(EnvHTTPPort, DefaultHTTPPort)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvHTTPPort, err)
	}

	grpcPort, err := getEnvInt(EnvGRPCPort, DefaultGRPCPort)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvGRPCPort, err)
	}

	return &Config{
		WindowSize:   windowSize,
		TickInterval: tickInterval,
		SourceAddr:   getEnvString(EnvSourceAddr, ""),
		FrameBuffer:  frameBuffer,
		HTTPPort:     httpPort,
		GRPCPort:     grpcPort,
		LogLevel:     getEnvString(EnvLogLevel, DefaultLogLevel),
	}, nil
}

func getEnvString(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(value)
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	return time.ParseDuration(value)
}
