package realtime

import (
	"testing"
	"time"

	"github.com/denmor86/recovery-authority/internal/logger"
)

func waitEvent(t *testing.T, subscriber *Subscriber) ChangeEvent {
	t.Helper()
	select {
	case event, ok := <-subscriber.Events:
		if !ok {
			t.Fatal("Expected event, channel closed")
		}
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("Expected event, got none")
	}
	return ChangeEvent{}
}

func TestHubDelivery(t *testing.T) {
	if err := logger.Initialize("info"); err != nil {
		logger.Panic(err)
	}

	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	owner := hub.Subscribe("user-1")
	stranger := hub.Subscribe("user-2")
	admin := hub.SubscribeAll()

	hub.Publish(ChangeEvent{Table: TableWithdrawals, Action: ActionInsert, UserID: "user-1"})

	t.Run("Owner receives own event", func(t *testing.T) {
		event := waitEvent(t, owner)
		if event.Table != TableWithdrawals || event.Action != ActionInsert || event.UserID != "user-1" {
			t.Errorf("Unexpected event: %+v", event)
		}
	})

	t.Run("Admin receives any event", func(t *testing.T) {
		event := waitEvent(t, admin)
		if event.UserID != "user-1" {
			t.Errorf("Unexpected event: %+v", event)
		}
	})

	t.Run("Stranger receives nothing", func(t *testing.T) {
		select {
		case event := <-stranger.Events:
			t.Errorf("Expected no event, got: %+v", event)
		case <-time.After(100 * time.Millisecond):
		}
	})
}

func TestHubUnsubscribe(t *testing.T) {
	if err := logger.Initialize("info"); err != nil {
		logger.Panic(err)
	}

	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	subscriber := hub.Subscribe("user-1")
	hub.Unsubscribe(subscriber)

	select {
	case _, ok := <-subscriber.Events:
		if ok {
			t.Error("Expected closed channel, got event")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Expected channel to close")
	}
}

func TestHubStopClosesSubscribers(t *testing.T) {
	if err := logger.Initialize("info"); err != nil {
		logger.Panic(err)
	}

	hub := NewHub()
	hub.Start()

	subscriber := hub.SubscribeAll()
	hub.Stop()

	select {
	case _, ok := <-subscriber.Events:
		if ok {
			t.Error("Expected closed channel, got event")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Expected channel to close")
	}

	// публикация после остановки не должна блокировать
	hub.Publish(ChangeEvent{Table: TableBalances, Action: ActionUpdate, UserID: "user-1"})
}
