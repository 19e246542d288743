package delivery

import (
	"context"
	"fmt"
)

// Simulate registers users generated users, then broadcasts messages
// generated messages to all of them. Cancellation is checked between
// broadcasts; a broadcast in progress always completes.
func (s *System) Simulate(ctx context.Context, users, messages int) error {
	s.log.Info("Registering users...")
	for range users {
		if _, err := s.RegisterUser(""); err != nil {
			return err
		}
	}
	s.log.Info(fmt.Sprintf("Registered %d users.", users))

	s.log.Info("Creating and sending messages to all registered users...")
	for i := range messages {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("simulation stopped after %d messages: %w", i, err)
		}
		if _, err := s.BroadcastMessage(nil, ""); err != nil {
			return err
		}
	}
	s.log.Info(fmt.Sprintf("Created and sent %d messages.", messages))
	return nil
}
