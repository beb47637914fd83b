package config

import "time"

const (
	EnvWindowSize   = "WINDOW_SIZE"
	EnvTickInterval = "TICK_INTERVAL"
	EnvSourceAddr   = "SOURCE_ADDR"
	EnvHTTPPort     = "HTTP_PORT"
	EnvGRPCPort     = "GRPC_PORT"
	EnvFrameBuffer  = "FRAME_BUFFER"
	EnvLogLevel     = "LOG_LEVEL"

	DefaultWindowSize   = 100
	DefaultTickInterval = 100 * time.Millisecond
	DefaultHTTPPort     = 8080
	DefaultGRPCPort     = 50051
	DefaultFrameBuffer  = 256
	DefaultLogLevel     = "info"
)
