package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/fuelwatch/fuelwatch/internal/cache"
	"github.com/fuelwatch/fuelwatch/internal/config"
	"github.com/fuelwatch/fuelwatch/internal/events"
	"github.com/fuelwatch/fuelwatch/internal/metrics"
	"github.com/fuelwatch/fuelwatch/internal/notify"
	"github.com/stretchr/testify/suite"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestNewCacheBackend() {
	backend := newCacheBackend(&config.Config{})
	s.IsType(&cache.MemoryBackend{}, backend)

	backend = newCacheBackend(&config.Config{RedisAddress: "localhost:6379"})
	s.IsType(&cache.RedisBackend{}, backend)
}

func (s *ApplicationSuite) TestNewNotifier() {
	s.IsType(notify.LogSender{}, newNotifier(&config.Config{}))
	s.IsType(&notify.WebhookSender{}, newNotifier(&config.Config{NotifyWebhookURL: "http://hooks.local/notify"}))
}

func (s *ApplicationSuite) TestSubscribeEvents() {
	s.app.metrics = metrics.NewCollector()

	dispatcher := events.NewDispatcher()
	s.app.subscribeEvents(dispatcher)

	// Publishing must not panic with the wired subscribers.
	dispatcher.Publish(context.Background(), events.UserUnlocked{})
}
