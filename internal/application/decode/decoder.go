// Package decode parses raw telemetry frames into sample records.
//
// A frame is a single ASCII/UTF-8 line of exactly four comma-separated
// finite decimal numbers in fixed positional order:
//
//	setpoint,command,measurement1,measurement2
//
// The positional mapping is part of the wire contract with the device;
// swapping fields silently corrupts the displayed signals.
package decode

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"telemetry-monitor/internal/domain"
)

const fieldCount = 4

// Decode parses one raw frame into a sample record. It is pure and safe to
// call concurrently. Failures are reported as domain.ErrMalformedFrame or
// domain.ErrInvalidNumber, both recoverable by dropping the frame.
func Decode(raw []byte) (domain.SampleRecord, error) {
	text := strings.TrimSpace(string(raw))

	parts := strings.Split(text, ",")
	if len(parts) != fieldCount {
		return domain.SampleRecord{}, fmt.Errorf("%w: expected %d fields, got %d in %q",
			domain.ErrMalformedFrame, fieldCount, len(parts), text)
	}

	var values [fieldCount]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return domain.SampleRecord{}, fmt.Errorf("%w: field %d %q", domain.ErrInvalidNumber, i, part)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return domain.SampleRecord{}, fmt.Errorf("%w: field %d %q is not finite", domain.ErrInvalidNumber, i, part)
		}
		values[i] = v
	}

	return domain.SampleRecord{
		Setpoint:     values[0],
		Command:      values[1],
		Measurement1: values[2],
		Measurement2: values[3],
	}, nil
}
