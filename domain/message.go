// Package domain contains core concepts of the notification system.
// This file defines Message entities and their delivery ledger.
// A ledger only moves forward: sent, then received, then read.
package domain

import (
	"cmp"
	"notification-lab/errors"
	"slices"
	"sync"

	"github.com/samber/lo"
)

type set map[*User]struct{}

// Statistics holds the ledger cardinalities of a message, always in
// sent, received, read order.
type Statistics struct {
	Sent     int
	Received int
	Read     int
}

// Message is a notification body plus the per-user record of its delivery.
// Users are tracked by identity, two users sharing a name are distinct.
type Message struct {
	body string
	code int

	mu         sync.Mutex
	sentTo     set
	receivedBy set
	readBy     set
}

func NewMessage(body string, code int) (*Message, error) {
	if code < 0 {
		return nil, errors.ErrInvalidCode
	}
	return &Message{
		body:       body,
		code:       code,
		sentTo:     make(set),
		receivedBy: make(set),
		readBy:     make(set),
	}, nil
}

func (m *Message) Body() string { return m.body }
func (m *Message) Code() int    { return m.code }
func (m *Message) String() string {
	return m.body
}

// Send records the message as sent to the user. Sending twice is a no-op.
func (m *Message) Send(user *User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sentTo[user] = struct{}{}
}

// MarkReceived records the user as a recipient.
// The message must have been sent to that user first.
func (m *Message) MarkReceived(user *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sentTo[user]; !ok {
		return errors.ErrNeverSent
	}
	m.receivedBy[user] = struct{}{}
	return nil
}

// MarkRead records the user as a reader.
// The message must have been received by that user first.
func (m *Message) MarkRead(user *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.receivedBy[user]; !ok {
		return errors.ErrNeverReceived
	}
	m.readBy[user] = struct{}{}
	return nil
}

func (m *Message) IsSent(user *User) bool     { return m.has(m.sentTo, user) }
func (m *Message) IsReceived(user *User) bool { return m.has(m.receivedBy, user) }
func (m *Message) IsRead(user *User) bool     { return m.has(m.readBy, user) }

func (m *Message) Statistics() Statistics {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Statistics{
		Sent:     len(m.sentTo),
		Received: len(m.receivedBy),
		Read:     len(m.readBy),
	}
}

func (m *Message) SentTo() []*User     { return m.snapshot(m.sentTo) }
func (m *Message) ReceivedBy() []*User { return m.snapshot(m.receivedBy) }
func (m *Message) ReadBy() []*User     { return m.snapshot(m.readBy) }

func (m *Message) has(s set, user *User) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := s[user]
	return ok
}

// snapshot copies a ledger set, ordered by user code.
func (m *Message) snapshot(s set) []*User {
	m.mu.Lock()
	users := lo.Keys(s)
	m.mu.Unlock()
	slices.SortFunc(users, func(a, b *User) int {
		return cmp.Compare(a.code, b.code)
	})
	return users
}
