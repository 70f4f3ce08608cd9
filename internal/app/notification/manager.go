// Package notification fans player notifications out to stream subscribers.
package notification

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	playerv1 "github.com/osa030/soundwave/internal/api/playerv1"
)

const defaultSendTimeout = 500 * time.Millisecond

// Stream is the sending side of a subscriber's notification stream.
type Stream interface {
	Send(*playerv1.Notification) error
}

type subscription struct {
	id     string
	stream Stream
}

// Manager manages notification subscriptions and broadcasting.
type Manager struct {
	mu            sync.RWMutex
	subscriptions map[string]*subscription
	closed        bool

	sequenceNo   uint64
	sequenceNoMu sync.Mutex

	sendTimeout time.Duration
}

// NewManager creates a new notification manager.
func NewManager() *Manager {
	return &Manager{
		subscriptions: make(map[string]*subscription),
		sendTimeout:   defaultSendTimeout,
	}
}

// Subscribe adds a new subscription and returns the subscription ID.
func (m *Manager) Subscribe(stream Stream) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.New().String()
	if m.closed {
		return id
	}
	m.subscriptions[id] = &subscription{
		id:     id,
		stream: stream,
	}
	zlog.Debug().Msgf("subscriber added: subscription_id=%s total=%d", id, len(m.subscriptions))
	return id
}

// Unsubscribe removes a subscription.
func (m *Manager) Unsubscribe(subscriptionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.subscriptions, subscriptionID)
	zlog.Debug().Msgf("subscriber removed: subscription_id=%s total=%d", subscriptionID, len(m.subscriptions))
}

// NextSequenceNo returns the next sequence number and increments the counter.
func (m *Manager) NextSequenceNo() uint64 {
	m.sequenceNoMu.Lock()
	defer m.sequenceNoMu.Unlock()
	m.sequenceNo++
	return m.sequenceNo
}

// Broadcast stamps the notification with the next sequence number and sends
// it to every subscriber. A subscriber that does not accept the notification
// within the send timeout is skipped; a failing subscriber is dropped.
func (m *Manager) Broadcast(notification *playerv1.Notification) {
	notification.SequenceNo = m.NextSequenceNo()

	m.mu.RLock()
	subs := make([]*subscription, 0, len(m.subscriptions))
	for _, sub := range m.subscriptions {
		subs = append(subs, sub)
	}
	m.mu.RUnlock()

	var wg sync.WaitGroup
	for _, sub := range subs {
		wg.Add(1)
		go func(s *subscription) {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), m.sendTimeout)
			defer cancel()

			done := make(chan error, 1)
			go func() {
				done <- s.stream.Send(notification)
			}()

			select {
			case err := <-done:
				if err != nil {
					zlog.Warn().Msgf("notification send failed, dropping subscriber: subscription_id=%s error=%v", s.id, err)
					m.Unsubscribe(s.id)
				}
			case <-ctx.Done():
				zlog.Warn().Msgf("notification send timed out: subscription_id=%s sequence_no=%d", s.id, notification.SequenceNo)
			}
		}(sub)
	}

	wg.Wait()
}

// Send sends a notification to a single subscriber. Unknown IDs are ignored.
func (m *Manager) Send(subscriptionID string, notification *playerv1.Notification) error {
	m.mu.RLock()
	sub, ok := m.subscriptions[subscriptionID]
	m.mu.RUnlock()
	if !ok {
		return nil
	}
	return sub.stream.Send(notification)
}

// SubscriberCount returns the number of active subscribers.
func (m *Manager) SubscriberCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subscriptions)
}

// Close removes all subscriptions. Later subscriptions are not registered.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.subscriptions = make(map[string]*subscription)
}
