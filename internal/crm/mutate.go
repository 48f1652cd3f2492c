package crm

import (
	"context"
	"time"

	"github.com/highshiftmedia/crmhub/internal/types"
)

// DeleteExpense removes an expense by id and persists. Expenses are the
// only collection with a delete operation.
func (s *Service) DeleteExpense(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.data.Expenses {
		if e.ID == id {
			s.data.Expenses = append(s.data.Expenses[:i], s.data.Expenses[i+1:]...)
			s.persist(ctx)
			return nil
		}
	}
	return ErrNotFound
}

// MarkMessageRead clears the unread flag on a message and persists.
func (s *Service) MarkMessageRead(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Messages {
		if s.data.Messages[i].ID == id {
			s.data.Messages[i].Unread = false
			s.persist(ctx)
			return nil
		}
	}
	return ErrNotFound
}

// ConnectDemoChannels simulates connecting messaging channels: after the
// configured delay a canned SMS conversation lands in the inbox. The
// delayed write applies even if the caller has moved on; there is no
// cancellation.
func (s *Service) ConnectDemoChannels() {
	time.AfterFunc(s.demoDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		msg := types.Message{
			ID:          s.newID(),
			ContactName: "Sarah from TechFlow",
			LastMessage: "Great! Let me know when you can chat.",
			Time:        "Just now",
			Type:        types.MessageSMS,
			Unread:      true,
		}
		s.data.Messages = append([]types.Message{msg}, s.data.Messages...)
		s.persist(context.Background())
	})
}
