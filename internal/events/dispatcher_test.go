package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fuelwatch/fuelwatch/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestPublish_DeliversToAllSubscribers(t *testing.T) {
	d := NewDispatcher()

	var got []string
	d.Subscribe(UserBannedName, func(ctx context.Context, event Event) error {
		banned := event.(UserBanned)
		got = append(got, "first:"+banned.Reason)
		return nil
	})
	d.Subscribe(UserBannedName, func(ctx context.Context, event Event) error {
		got = append(got, "second")
		return nil
	})

	d.Publish(context.Background(), UserBanned{
		User:   domain.User{ID: 1, Email: "user@example.com"},
		Admin:  domain.User{ID: 2, Email: "admin@example.com"},
		Reason: "spam",
		Until:  time.Now().Add(24 * time.Hour),
	})

	assert.Equal(t, []string{"first:spam", "second"}, got)
}

func TestPublish_NoSubscribersIsNoop(t *testing.T) {
	d := NewDispatcher()
	d.Publish(context.Background(), UserUnlocked{})
}

func TestPublish_FailingSubscriberDoesNotBlockOthers(t *testing.T) {
	d := NewDispatcher()

	delivered := 0
	d.Subscribe(PriceProposalEvaluatedName, func(ctx context.Context, event Event) error {
		return errors.New("smtp unreachable")
	})
	d.Subscribe(PriceProposalEvaluatedName, func(ctx context.Context, event Event) error {
		panic("boom")
	})
	d.Subscribe(PriceProposalEvaluatedName, func(ctx context.Context, event Event) error {
		delivered++
		return nil
	})

	d.Publish(context.Background(), PriceProposalEvaluated{Accepted: true})

	assert.Equal(t, 1, delivered)
}

type failureCounter struct {
	byEvent map[string]int
}

func (c *failureCounter) RecordSubscriberFailure(name string) {
	c.byEvent[name]++
}

func TestPublish_CountsSubscriberFailures(t *testing.T) {
	counter := &failureCounter{byEvent: make(map[string]int)}
	d := NewDispatcher().WithMetrics(counter)

	d.Subscribe(UserBannedName, func(ctx context.Context, event Event) error {
		return errors.New("smtp unreachable")
	})
	d.Subscribe(UserBannedName, func(ctx context.Context, event Event) error {
		panic("boom")
	})
	d.Subscribe(UserBannedName, func(ctx context.Context, event Event) error {
		return nil
	})

	d.Publish(context.Background(), UserBanned{})

	assert.Equal(t, 2, counter.byEvent[UserBannedName])
}

func TestPublish_OnlyMatchingEventName(t *testing.T) {
	d := NewDispatcher()

	bans, unlocks := 0, 0
	d.Subscribe(UserBannedName, func(ctx context.Context, event Event) error {
		bans++
		return nil
	})
	d.Subscribe(UserUnlockedName, func(ctx context.Context, event Event) error {
		unlocks++
		return nil
	})

	d.Publish(context.Background(), UserUnlocked{})

	assert.Equal(t, 0, bans)
	assert.Equal(t, 1, unlocks)
}
