package events

import (
	"context"
	"sync"
)

// MockPublisher records published events for tests.
type MockPublisher struct {
	mu     sync.RWMutex
	events []BookingConfirmedEvent
	Err    error
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

func (m *MockPublisher) PublishBookingConfirmed(_ context.Context, event BookingConfirmedEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}

	m.events = append(m.events, event)
	return nil
}

func (m *MockPublisher) Published() []BookingConfirmedEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()

	events := make([]BookingConfirmedEvent, len(m.events))
	copy(events, m.events)
	return events
}

func (m *MockPublisher) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.events = nil
	m.Err = nil
}
