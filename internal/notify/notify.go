// Package notify delivers best-effort user notifications. Failures are the
// caller's to log, never to fail on.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/fuelwatch/fuelwatch/internal/domain"
	"github.com/fuelwatch/fuelwatch/pkg/clients"
	"go.uber.org/zap"
)

// Sender is the notification contract consumed by the lifecycle services.
type Sender interface {
	SendBanNotification(ctx context.Context, user domain.User, reason string, until time.Time) error
	SendBanLiftedNotification(ctx context.Context, user domain.User) error
	SendProposalStatusNotification(ctx context.Context, user domain.User, accepted bool, station domain.Station, price float64) error
}

type message struct {
	Kind     string  `json:"kind"`
	Email    string  `json:"email"`
	Reason   string  `json:"reason,omitempty"`
	Until    string  `json:"until,omitempty"`
	Accepted bool    `json:"accepted,omitempty"`
	Station  string  `json:"station,omitempty"`
	Price    float64 `json:"price,omitempty"`
}

// WebhookSender posts notification payloads to a configured endpoint which
// owns template rendering and actual delivery.
type WebhookSender struct {
	url    string
	client clients.HTTPClientI
}

func NewWebhookSender(url string, client clients.HTTPClientI) *WebhookSender {
	return &WebhookSender{url: url, client: client}
}

func (s *WebhookSender) SendBanNotification(_ context.Context, user domain.User, reason string, until time.Time) error {
	return s.post(message{Kind: "user.banned", Email: user.Email, Reason: reason, Until: until.Format(time.RFC3339)})
}

func (s *WebhookSender) SendBanLiftedNotification(_ context.Context, user domain.User) error {
	return s.post(message{Kind: "user.ban_lifted", Email: user.Email})
}

func (s *WebhookSender) SendProposalStatusNotification(_ context.Context, user domain.User, accepted bool, station domain.Station, price float64) error {
	return s.post(message{Kind: "proposal.status", Email: user.Email, Accepted: accepted, Station: station.Name, Price: price})
}

func (s *WebhookSender) post(msg message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	status, _, err := s.client.Post(s.url, "application/json", body)
	if err != nil {
		return err
	}
	if status != http.StatusOK && status != http.StatusAccepted {
		return fmt.Errorf("notification webhook returned status %d", status)
	}
	return nil
}

// LogSender is the fallback when no webhook URL is configured.
type LogSender struct{}

func (LogSender) SendBanNotification(_ context.Context, user domain.User, reason string, until time.Time) error {
	zap.L().Info("ban notification", zap.String("email", user.Email), zap.String("reason", reason), zap.Time("until", until))
	return nil
}

func (LogSender) SendBanLiftedNotification(_ context.Context, user domain.User) error {
	zap.L().Info("ban lifted notification", zap.String("email", user.Email))
	return nil
}

func (LogSender) SendProposalStatusNotification(_ context.Context, user domain.User, accepted bool, station domain.Station, price float64) error {
	zap.L().Info("proposal status notification",
		zap.String("email", user.Email), zap.Bool("accepted", accepted),
		zap.String("station", station.Name), zap.Float64("price", price))
	return nil
}
