// Package notify holds the single-slot user notification.
// A new notification replaces the visible one and re-arms the
// auto-dismiss timer.
package notify

import (
	"sync"
	"time"
)

const (
	SeveritySuccess = "success"
	SeverityError   = "error"
)

// DefaultTTL matches the dashboard's toast dismiss delay.
const DefaultTTL = 3 * time.Second

type Notification struct {
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
}

type Notifier struct {
	mu      sync.Mutex
	ttl     time.Duration
	current *Notification
	timer   *time.Timer
}

func New(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Notifier{ttl: ttl}
}

func (n *Notifier) Push(message, severity string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}

	cur := &Notification{
		Message:   message,
		Severity:  severity,
		CreatedAt: time.Now(),
	}
	n.current = cur
	n.timer = time.AfterFunc(n.ttl, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if n.current == cur {
			n.current = nil
		}
	})
}

func (n *Notifier) Success(message string) {
	n.Push(message, SeveritySuccess)
}

func (n *Notifier) Error(message string) {
	n.Push(message, SeverityError)
}

// Current returns the visible notification, if any.
func (n *Notifier) Current() (*Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current == nil {
		return nil, false
	}
	c := *n.current
	return &c, true
}
