package doorstep

import "sync"

// NotificationQueue holds confirmation messages until a host dismisses them.
// It implements screens.Notifier, so it can be passed as AppOptions.Notifier.
type NotificationQueue struct {
	mu      sync.Mutex
	pending []string
}

// Notify queues a message behind any already showing.
func (q *NotificationQueue) Notify(message string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, message)
}

// Current returns the message on display, if any.
func (q *NotificationQueue) Current() (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return "", false
	}
	return q.pending[0], true
}

// Dismiss removes the message on display and reports whether there was one.
func (q *NotificationQueue) Dismiss() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return false
	}
	q.pending = q.pending[1:]
	return true
}

func (q *NotificationQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
