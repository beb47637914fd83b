package grpcapi

import (
	"errors"
	"io"
	"time"

	"google.golang.org/grpc/status"

	"telemetry-monitor/internal/domain"
	"telemetry-monitor/internal/logging"
	"telemetry-monitor/internal/metrics"
	"telemetry-monitor/pkg/api"
)

// Handler implements the TelemetryIngress service by forwarding published
// frames into the pipeline's inbound channel.
type Handler struct {
	api.UnimplementedTelemetryIngressServer

	frames chan<- domain.Frame
	logger *logging.Logger
}

// NewHandler creates an ingress handler writing into the given frame channel.
func NewHandler(frames chan<- domain.Frame, logger *logging.Logger) *Handler {
	return &Handler{frames: frames, logger: logger.WithComponent("ingress")}
}

// PublishFrames receives a client stream of raw frames and reports how many
// were accepted. Empty payloads are rejected at the boundary; everything else
// is left to the decoder, so a malformed frame is still accepted here.
func (h *Handler) PublishFrames(stream api.TelemetryIngress_PublishFramesServer) error {
	var accepted, rejected int64
	ctx := stream.Context()

	for {
		push, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			h.logger.Info("publish stream completed", "accepted", accepted, "rejected", rejected)
			return stream.SendAndClose(&api.PublishSummary{Accepted: accepted, Rejected: rejected})
		}
		if err != nil {
			return err
		}

		payload := push.GetPayload()
		if len(payload) == 0 {
			rejected++
			continue
		}

		receivedAt := time.Now().UTC()
		if ts := push.GetReceivedAt(); ts != nil && ts.IsValid() {
			receivedAt = ts.AsTime()
		}

		select {
		case <-ctx.Done():
			return status.FromContextError(ctx.Err()).Err()
		case h.frames <- domain.Frame{Payload: payload, ReceivedAt: receivedAt}:
			accepted++
			metrics.FramesReceivedTotal.Inc()
		}
	}
}

var _ api.TelemetryIngressServer = (*Handler)(nil)
