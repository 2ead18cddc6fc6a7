package notify

import (
	"testing"
	"time"
)

func TestNotifierReplacesCurrent(t *testing.T) {
	t.Parallel()

	n := New(time.Minute)

	n.Success("first")
	n.Error("second")

	cur, ok := n.Current()
	if !ok {
		t.Fatal("expected a notification")
	}
	if cur.Message != "second" || cur.Severity != SeverityError {
		t.Fatalf("expected latest notification, got %+v", cur)
	}
}

func TestNotifierAutoDismiss(t *testing.T) {
	t.Parallel()

	n := New(20 * time.Millisecond)

	n.Success("short lived")
	if _, ok := n.Current(); !ok {
		t.Fatal("expected notification right after push")
	}

	deadline := time.Now().Add(time.Second)
	for {
		if _, ok := n.Current(); !ok {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("notification never dismissed")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestNotifierPushReArmsTimer(t *testing.T) {
	t.Parallel()

	n := New(60 * time.Millisecond)

	n.Success("first")
	time.Sleep(40 * time.Millisecond)
	n.Success("second")
	time.Sleep(40 * time.Millisecond)

	// 80ms after the first push, but only 40ms after the second.
	cur, ok := n.Current()
	if !ok {
		t.Fatal("expected the second notification to still be visible")
	}
	if cur.Message != "second" {
		t.Fatalf("expected second notification, got %q", cur.Message)
	}
}

func TestNotifierCurrentReturnsCopy(t *testing.T) {
	t.Parallel()

	n := New(time.Minute)
	n.Success("original")

	cur, _ := n.Current()
	cur.Message = "mutated"

	fresh, _ := n.Current()
	if fresh.Message != "original" {
		t.Fatal("caller mutation leaked into the notifier")
	}
}
