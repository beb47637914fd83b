package domain

import "time"

// Channel identifies one of the fixed telemetry series tracked by the monitor.
type Channel string

const (
	ChannelSetpoint     Channel = "setpoint"
	ChannelCommand      Channel = "command"
	ChannelMeasurement1 Channel = "measurement1"
	ChannelMeasurement2 Channel = "measurement2"
)

// Channels returns the fixed channel set in wire-format order.
func Channels() []Channel {
	return []Channel{ChannelSetpoint, ChannelCommand, ChannelMeasurement1, ChannelMeasurement2}
}

// SampleRecord is one decoded telemetry tuple. Immutable once constructed.
type SampleRecord struct {
	Setpoint     float64
	Command      float64
	Measurement1 float64
	Measurement2 float64
}

// Value returns the record field carried by the given channel.
func (r SampleRecord) Value(ch Channel) float64 {
	switch ch {
	case ChannelSetpoint:
		return r.Setpoint
	case ChannelCommand:
		return r.Command
	case ChannelMeasurement1:
		return r.Measurement1
	case ChannelMeasurement2:
		return r.Measurement2
	}
	return 0
}

// Frame is one raw unit of input corresponding to one telemetry record.
type Frame struct {
	Payload    []byte
	ReceivedAt time.Time
}

// Series holds one window snapshot: parallel slices of global sequence
// indices and values, always of equal length.
type Series struct {
	X []int64
	Y []float64
}
