/*
notifications.go - Ephemeral UI feedback

Notifications are the advisory channel for every store operation. They
live in memory only (never in the snapshot), self-expire after the
configured TTL, and clearing is idempotent - a timer firing after an
explicit clear removes nothing. Pending timers are not coalesced or
cancelled on early clear; the late removal is harmless.
*/
package store

import (
	"time"

	"github.com/blackflag/hr-platform/hr"
	"github.com/blackflag/hr-platform/seed"
)

// Notifications returns a copy of the live notification list.
func (s *Store) Notifications() []hr.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]hr.Notification(nil), s.notifications...)
}

// AddNotification appends a notification and schedules its expiry.
func (s *Store) AddNotification(message string, severity hr.Severity) hr.Notification {
	n := hr.Notification{
		ID:       seed.GenerateID("notif"),
		Message:  message,
		Severity: severity,
	}

	s.mu.Lock()
	s.notifications = append(s.notifications, n)
	s.mu.Unlock()

	if s.ttl > 0 {
		time.AfterFunc(s.ttl, func() { s.ClearNotification(n.ID) })
	}
	return n
}

// ClearNotification removes the notification with the given id.
// Clearing twice is harmless.
func (s *Store) ClearNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.notifications[:0]
	for _, n := range s.notifications {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	s.notifications = kept
}
