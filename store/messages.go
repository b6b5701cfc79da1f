/*
messages.go - Internal messaging

Messages are append-only: sent once, never deleted, the only mutation is
the batch read-flag flip. Conversations and unread counts are derived
views computed by the pure functions in the hr package.
*/
package store

import (
	"github.com/blackflag/hr-platform/hr"
	"github.com/blackflag/hr-platform/seed"
)

// Messages returns a copy of the message collection.
func (s *Store) Messages() []hr.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]hr.Message(nil), s.messages...)
}

// SendMessage appends an unread message from the fixed current user.
func (s *Store) SendMessage(toID, content string) hr.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := hr.Message{
		ID:        seed.GenerateID("msg"),
		FromID:    s.user.ID,
		ToID:      toID,
		Content:   content,
		Read:      false,
		CreatedAt: s.clock(),
	}
	s.messages = append(s.messages, msg)
	s.persistLocked()
	return msg
}

// MarkAsRead flips the read flag on the given message ids. Unknown ids
// are ignored.
func (s *Store) MarkAsRead(messageIDs []string) {
	ids := make(map[string]bool, len(messageIDs))
	for _, id := range messageIDs {
		ids[id] = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.messages {
		if ids[s.messages[i].ID] {
			s.messages[i].Read = true
		}
	}
	s.persistLocked()
}

// GetConversation returns the messages between the fixed current user
// and the participant, ascending by creation time.
func (s *Store) GetConversation(participantID string) []hr.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return hr.ConversationBetween(s.messages, s.user.ID, participantID)
}

// GetUnreadCount returns how many unread messages are addressed to the
// fixed current user.
func (s *Store) GetUnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return hr.UnreadCount(s.messages, s.user.ID)
}
