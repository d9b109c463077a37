package mongo

import (
	"context"
	"errors"
	"testing"
	"time"
)

var (
	errTestNotFound  = errors.New("thing not found")
	errTestInvalidID = errors.New("invalid thing ID format")
)

type thing struct {
	ID string `bson:"_id,omitempty"`
}

func TestWithTimeout_NoDeadline(t *testing.T) {
	ctx, cancel := WithTimeout(context.Background(), time.Second)
	defer cancel()

	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatal("expected a deadline")
	}
	if remaining := time.Until(deadline); remaining > time.Second {
		t.Errorf("deadline too far away: %s", remaining)
	}
}

func TestWithTimeout_KeepsShorterParentDeadline(t *testing.T) {
	parent, cancelParent := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancelParent()

	ctx, cancel := WithTimeout(parent, time.Minute)
	defer cancel()

	deadline, _ := ctx.Deadline()
	if time.Until(deadline) > 50*time.Millisecond {
		t.Errorf("expected parent deadline to win, got %s", time.Until(deadline))
	}
}

func TestStore_InvalidIDUsesDomainSentinel(t *testing.T) {
	s := NewStore[thing](nil, Sentinels{NotFound: errTestNotFound, InvalidID: errTestInvalidID}, Timeouts{Read: time.Second, Write: time.Second})

	_, err := s.FindByID(context.Background(), "not-an-object-id")
	if !errors.Is(err, errTestInvalidID) {
		t.Errorf("FindByID: expected invalid id sentinel, got %v", err)
	}
	if err := s.Delete(context.Background(), "zzz"); !errors.Is(err, errTestInvalidID) {
		t.Errorf("Delete: expected invalid id sentinel, got %v", err)
	}
	if err := s.Set(context.Background(), "zzz", nil); !errors.Is(err, errTestInvalidID) {
		t.Errorf("Set: expected invalid id sentinel, got %v", err)
	}
}
