// Package sms contains outbound text message senders. Only a simulated
// sender exists so far; a gateway-backed one can slot in behind the same
// interface.
package sms

import (
	"context"
	"log/slog"

	"raktapulse/internal/domain/service"
)

// simulatedSender writes each message to the log instead of a carrier
// gateway. Used in every environment until an SMS provider is contracted.
type simulatedSender struct {
	logger *slog.Logger
}

// NewSimulatedSender builds the log-backed SMS sender.
func NewSimulatedSender(logger *slog.Logger) service.SMSSender {
	return &simulatedSender{logger: logger}
}

// Send records the message in the log.
func (s *simulatedSender) Send(ctx context.Context, phone, message string) error {
	s.logger.InfoContext(ctx, "Simulated SMS dispatched",
		slog.String("phone", phone),
		slog.String("message", message),
	)

	return nil
}
