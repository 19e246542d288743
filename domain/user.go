// Package domain contains core concepts of the notification system.
// This file defines User entities and their inbox.
package domain

import (
	"notification-lab/errors"
	"slices"
	"sync"

	"github.com/samber/lo"
)

// User is a registered recipient. Its inbox holds every message it
// received, most recent first, each at most once.
//
// A User may call into a Message while holding its own lock, never the
// other way round.
type User struct {
	name string
	code int

	mu    sync.Mutex
	inbox []*Message
}

func NewUser(name string, code int) (*User, error) {
	if name == "" {
		return nil, errors.ErrInvalidName
	}
	if code < 0 {
		return nil, errors.ErrInvalidCode
	}
	return &User{name: name, code: code}, nil
}

func (u *User) Name() string { return u.name }
func (u *User) Code() int    { return u.code }
func (u *User) String() string {
	return u.name
}

// Inbox returns a copy of the inbox, most recent first.
func (u *User) Inbox() []*Message {
	u.mu.Lock()
	defer u.mu.Unlock()
	return slices.Clone(u.inbox)
}

// Receive stores the message in the inbox and marks it received by this user.
// It returns false without touching anything when the message is already
// in the inbox. The inbox is left unchanged if the message refuses the receipt.
func (u *User) Receive(message *Message) (bool, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if slices.Contains(u.inbox, message) {
		return false, nil
	}
	if err := message.MarkReceived(u); err != nil {
		return false, err
	}
	u.inbox = slices.Insert(u.inbox, 0, message)
	return true, nil
}

// Read marks a message of the inbox as read by this user.
func (u *User) Read(message *Message) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if !slices.Contains(u.inbox, message) {
		return errors.ErrNotInInbox
	}
	return message.MarkRead(u)
}

func (u *User) ReadMessages() []*Message {
	u.mu.Lock()
	defer u.mu.Unlock()
	return lo.Filter(u.inbox, func(m *Message, _ int) bool {
		return m.IsRead(u)
	})
}

func (u *User) UnreadMessages() []*Message {
	u.mu.Lock()
	defer u.mu.Unlock()
	return lo.Reject(u.inbox, func(m *Message, _ int) bool {
		return m.IsRead(u)
	})
}
