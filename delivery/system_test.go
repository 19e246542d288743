package delivery

import (
	"log/slog"
	"math"
	"notification-lab/domain"
	"notification-lab/errors"
	"notification-lab/mocks"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// constant always returns the same roll.
type constant float64

func (c constant) Float64() float64 { return float64(c) }

// sequence replays its values in a loop.
type sequence struct {
	values []float64
	next   int
}

func (s *sequence) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func newSystem(t *testing.T, loss, read float64, opts ...Option) *System {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	system, err := New(loss, read, append([]Option{WithLogger(log)}, opts...)...)
	require.NoError(t, err)
	return system
}

func registerUsers(t *testing.T, system *System, names ...string) []*domain.User {
	t.Helper()
	users := make([]*domain.User, 0, len(names))
	for _, name := range names {
		u, err := system.RegisterUser(name)
		require.NoError(t, err)
		users = append(users, u)
	}
	return users
}

func requireLedgerChain(t *testing.T, system *System) {
	t.Helper()
	for _, m := range system.Messages() {
		for _, u := range m.ReceivedBy() {
			require.True(t, m.IsSent(u), "message %d received by %s without send", m.Code(), u)
		}
		for _, u := range m.ReadBy() {
			require.True(t, m.IsReceived(u), "message %d read by %s without receipt", m.Code(), u)
		}
	}
}

func TestNew_ChanceValidation(t *testing.T) {
	tests := []struct {
		name     string
		loss     float64
		read     float64
		expected error
	}{
		{name: "loss below range", loss: -0.1, read: 0.5, expected: errors.ErrChanceOutOfRange},
		{name: "loss above range", loss: 1.1, read: 0.5, expected: errors.ErrChanceOutOfRange},
		{name: "read above range", loss: 0.1, read: 2, expected: errors.ErrChanceOutOfRange},
		{name: "loss NaN", loss: math.NaN(), read: 0.5, expected: errors.ErrChanceNotNumber},
		{name: "read infinite", loss: 0.1, read: math.Inf(1), expected: errors.ErrChanceNotNumber},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			system, err := New(tt.loss, tt.read)
			req.ErrorIs(err, tt.expected)
			req.ErrorIs(err, errors.ErrValidation)
			req.Nil(system)
		})
	}
}

func TestNew_BoundsAreValid(t *testing.T) {
	req := require.New(t)
	for _, chance := range []float64{0, 1} {
		system, err := New(chance, chance)
		req.NoError(err)
		req.Equal(chance, system.LossChance())
		req.Equal(chance, system.ReadChance())
		req.Empty(system.Users())
		req.Empty(system.Messages())
	}
}

func TestNew_InvalidWordCount(t *testing.T) {
	_, err := New(DefaultLossChance, DefaultReadChance, WithWordCount(0))
	require.ErrorIs(t, err, errors.ErrInvalidWordCount)
}

func TestSystem_RegisterUser_CodesAreSequential(t *testing.T) {
	req := require.New(t)
	system := newSystem(t, 0, 0)

	users := registerUsers(t, system, "Alice", "Bob", "Clara")

	for i, u := range users {
		req.Equal(i+1, u.Code())
		req.True(system.IsRegisteredUser(u))
	}
	req.Equal(users, system.Users())
}

func TestSystem_RegisterUser_GeneratedName(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	names := mocks.NewMockNameGenerator(ctrl)
	system := newSystem(t, 0, 0, WithNameGenerator(names))

	// Given no name is provided, the generator is asked once
	names.EXPECT().RandomName().Return("Ana Sánchez").Times(1)

	user, err := system.RegisterUser("")

	req.NoError(err)
	req.Equal("Ana Sánchez", user.Name())
	req.Equal(1, user.Code())
}

func TestSystem_RegisterUser_FailureDoesNotConsumeCode(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	names := mocks.NewMockNameGenerator(ctrl)
	system := newSystem(t, 0, 0, WithNameGenerator(names))

	names.EXPECT().RandomName().Return("").Times(1)
	_, err := system.RegisterUser("")
	req.ErrorIs(err, errors.ErrInvalidName)

	user, err := system.RegisterUser("Bob")
	req.NoError(err)
	req.Equal(1, user.Code())
	req.Len(system.Users(), 1)
}

func TestSystem_CreateMessage(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	texts := mocks.NewMockTextGenerator(ctrl)
	system := newSystem(t, 0, 0, WithTextGenerator(texts), WithWordCount(4))

	texts.EXPECT().RandomText(4).Return("Sed quis ligula diam.").Times(1)

	generated, err := system.CreateMessage("")
	req.NoError(err)
	explicit, err := system.CreateMessage("Hello")
	req.NoError(err)

	req.Equal("Sed quis ligula diam.", generated.Body())
	req.Equal(1, generated.Code())
	req.Equal("Hello", explicit.Body())
	req.Equal(2, explicit.Code())
	req.Equal([]*domain.Message{generated, explicit}, system.Messages())
	req.True(system.IsRegisteredMessage(generated))
}

func TestSystem_CodesAreIndependentPerKind(t *testing.T) {
	req := require.New(t)
	system := newSystem(t, 0, 0)

	user := registerUsers(t, system, "Alice")[0]
	first, err := system.CreateMessage("one")
	req.NoError(err)
	second, err := system.CreateMessage("two")
	req.NoError(err)
	other := registerUsers(t, system, "Bob")[0]

	req.Equal(1, user.Code())
	req.Equal(2, other.Code())
	req.Equal(1, first.Code())
	req.Equal(2, second.Code())
}

func TestSystem_IsRegistered_UsesIdentity(t *testing.T) {
	req := require.New(t)
	system := newSystem(t, 0, 0)
	registerUsers(t, system, "Alice")
	_, err := system.CreateMessage("hello")
	req.NoError(err)

	lookalikeUser, err := domain.NewUser("Alice", 1)
	req.NoError(err)
	lookalikeMessage, err := domain.NewMessage("hello", 1)
	req.NoError(err)

	req.False(system.IsRegisteredUser(lookalikeUser))
	req.False(system.IsRegisteredMessage(lookalikeMessage))
	req.False(system.IsRegisteredUser(nil))
	req.False(system.IsRegisteredMessage(nil))
}

func TestSystem_SendMessage_DeliveredAndRead(t *testing.T) {
	req := require.New(t)
	// loss roll 0.5 > 0.1, read roll 0.2 < 0.5
	system := newSystem(t, 0.1, 0.5, WithRandomSource(&sequence{values: []float64{0.5, 0.2}}))
	user := registerUsers(t, system, "Alice")[0]

	message, err := system.SendMessage(user, nil, "Hello Alice")

	req.NoError(err)
	req.Equal("Hello Alice", message.Body())
	req.True(message.IsSent(user))
	req.True(message.IsReceived(user))
	req.True(message.IsRead(user))
	req.Equal([]*domain.Message{message}, user.Inbox())
	req.Equal(domain.Statistics{Sent: 1, Received: 1, Read: 1}, message.Statistics())
}

func TestSystem_SendMessage_DeliveredNotRead(t *testing.T) {
	req := require.New(t)
	system := newSystem(t, 0.1, 0.5, WithRandomSource(&sequence{values: []float64{0.5, 0.7}}))
	user := registerUsers(t, system, "Alice")[0]

	message, err := system.SendMessage(user, nil, "Hello")

	req.NoError(err)
	req.True(message.IsReceived(user))
	req.False(message.IsRead(user))
	req.Equal([]*domain.Message{message}, user.UnreadMessages())
}

func TestSystem_SendMessage_Lost(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	random := mocks.NewMockRandomSource(ctrl)
	system := newSystem(t, 0.3, 1, WithRandomSource(random))
	user := registerUsers(t, system, "Alice")[0]

	// Given the loss roll equals the loss chance, the message is lost
	// and no read roll is drawn
	random.EXPECT().Float64().Return(0.3).Times(1)

	message, err := system.SendMessage(user, nil, "Hello")

	req.NoError(err)
	req.NotNil(message)
	req.True(message.IsSent(user))
	req.False(message.IsReceived(user))
	req.Empty(user.Inbox())
	req.Equal(domain.Statistics{Sent: 1}, message.Statistics())
}

func TestSystem_SendMessage_ExistingMessage(t *testing.T) {
	req := require.New(t)
	system := newSystem(t, 0, 0, WithRandomSource(constant(0.5)))
	users := registerUsers(t, system, "Alice", "Bob")
	message, err := system.CreateMessage("shared")
	req.NoError(err)

	for _, u := range users {
		sent, err := system.SendMessage(u, message, "")
		req.NoError(err)
		req.Same(message, sent)
	}

	req.Len(system.Messages(), 1)
	req.Equal(domain.Statistics{Sent: 2, Received: 2}, message.Statistics())
}

func TestSystem_SendMessage_RepeatedDeliveryIsIdempotent(t *testing.T) {
	req := require.New(t)
	system := newSystem(t, 0, 1, WithRandomSource(constant(0.5)))
	user := registerUsers(t, system, "Alice")[0]

	message, err := system.SendMessage(user, nil, "twice")
	req.NoError(err)
	_, err = system.SendMessage(user, message, "")
	req.NoError(err)

	req.Len(user.Inbox(), 1)
	req.Equal(domain.Statistics{Sent: 1, Received: 1, Read: 1}, message.Statistics())
}

func TestSystem_SendMessage_UnregisteredUser(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	random := mocks.NewMockRandomSource(ctrl)
	texts := mocks.NewMockTextGenerator(ctrl)
	system := newSystem(t, 0, 1, WithRandomSource(random), WithTextGenerator(texts))
	message, err := system.CreateMessage("hello")
	req.NoError(err)
	stranger, err := domain.NewUser("Stranger", 1)
	req.NoError(err)

	// No roll and no message creation may happen
	random.EXPECT().Float64().Times(0)
	texts.EXPECT().RandomText(gomock.Any()).Times(0)

	sent, err := system.SendMessage(stranger, message, "")
	req.ErrorIs(err, errors.ErrUnregisteredUser)
	req.ErrorIs(err, errors.ErrValidation)
	req.Nil(sent)

	_, err = system.SendMessage(stranger, nil, "")
	req.ErrorIs(err, errors.ErrUnregisteredUser)

	req.Equal(domain.Statistics{}, message.Statistics())
	req.Len(system.Messages(), 1)
	req.Empty(stranger.Inbox())
}

func TestSystem_SendMessage_UnregisteredMessage(t *testing.T) {
	req := require.New(t)
	system := newSystem(t, 0, 1, WithRandomSource(constant(0.5)))
	user := registerUsers(t, system, "Alice")[0]
	foreign, err := domain.NewMessage("not mine", 1)
	req.NoError(err)

	sent, err := system.SendMessage(user, foreign, "")

	req.ErrorIs(err, errors.ErrUnregisteredMessage)
	req.ErrorIs(err, errors.ErrValidation)
	req.Nil(sent)
	req.False(foreign.IsSent(user))
	req.Empty(user.Inbox())
}

func TestSystem_BroadcastMessage_NoLossAllRead(t *testing.T) {
	req := require.New(t)
	system := newSystem(t, 0, 1, WithRandomSource(constant(0.5)))
	users := registerUsers(t, system, "Alice", "Bob", "Clara")

	message, err := system.BroadcastMessage(nil, "")

	req.NoError(err)
	req.Equal(1, message.Code())
	req.Len(system.Messages(), 1)
	for _, u := range users {
		req.Equal([]*domain.Message{message}, u.Inbox())
		req.True(message.IsRead(u))
	}
	req.Equal(domain.Statistics{Sent: 3, Received: 3, Read: 3}, message.Statistics())
}

func TestSystem_BroadcastMessage_NoLossNoneRead(t *testing.T) {
	req := require.New(t)
	system := newSystem(t, 0, 0, WithRandomSource(constant(0.5)))
	users := registerUsers(t, system, "Alice", "Bob", "Clara", "David")

	message, err := system.BroadcastMessage(nil, "hello")

	req.NoError(err)
	req.Equal(domain.Statistics{Sent: 4, Received: 4}, message.Statistics())
	for _, u := range users {
		req.Equal([]*domain.Message{message}, u.UnreadMessages())
	}
}

func TestSystem_BroadcastMessage_EverythingLost(t *testing.T) {
	req := require.New(t)
	system := newSystem(t, 1, 1, WithRandomSource(constant(0.999)))
	users := registerUsers(t, system, "Alice", "Bob", "Clara")

	message, err := system.BroadcastMessage(nil, "")

	req.NoError(err)
	req.Equal(domain.Statistics{Sent: 3}, message.Statistics())
	for _, u := range users {
		req.True(message.IsSent(u))
		req.Empty(u.Inbox())
	}
}

func TestSystem_BroadcastMessage_IndependentRollsPerRecipient(t *testing.T) {
	req := require.New(t)
	// Alice: delivered (0.9) then read (0.1). Bob: lost (0.2).
	// Clara: delivered (0.9) then unread (0.8).
	source := &sequence{values: []float64{0.9, 0.1, 0.2, 0.9, 0.8}}
	system := newSystem(t, 0.5, 0.5, WithRandomSource(source))
	users := registerUsers(t, system, "Alice", "Bob", "Clara")

	message, err := system.BroadcastMessage(nil, "hello")

	req.NoError(err)
	req.Equal(5, source.next)
	req.Equal([]*domain.User{users[0], users[1], users[2]}, message.SentTo())
	req.Equal([]*domain.User{users[0], users[2]}, message.ReceivedBy())
	req.Equal([]*domain.User{users[0]}, message.ReadBy())
	requireLedgerChain(t, system)
}

func TestSystem_BroadcastMessage_UnregisteredMessage(t *testing.T) {
	req := require.New(t)
	system := newSystem(t, 0, 1, WithRandomSource(constant(0.5)))
	user := registerUsers(t, system, "Alice")[0]
	foreign, err := domain.NewMessage("not mine", 9)
	req.NoError(err)

	_, err = system.BroadcastMessage(foreign, "")

	req.ErrorIs(err, errors.ErrUnregisteredMessage)
	req.False(foreign.IsSent(user))
}

func TestSystem_BroadcastMessage_NoUsers(t *testing.T) {
	req := require.New(t)
	system := newSystem(t, 0, 1)

	message, err := system.BroadcastMessage(nil, "nobody listens")

	req.NoError(err)
	req.Equal(domain.Statistics{}, message.Statistics())
}

func TestSystem_LedgerChainHoldsUnderRandomRolls(t *testing.T) {
	system := newSystem(t, 0.3, 0.6, WithRandomSource(&sequence{
		values: []float64{0.12, 0.87, 0.45, 0.31, 0.99, 0.05, 0.66, 0.29, 0.73},
	}))
	registerUsers(t, system, "Alice", "Bob", "Clara", "David", "Elena")

	for range 6 {
		_, err := system.BroadcastMessage(nil, "")
		require.NoError(t, err)
	}

	requireLedgerChain(t, system)
	for _, u := range system.Users() {
		seen := make(map[*domain.Message]bool)
		for _, m := range u.Inbox() {
			require.False(t, seen[m], "duplicate inbox entry")
			seen[m] = true
		}
	}
}
