// Package delivery simulates sending notifications to registered users.
//
// A System owns the user and message registries, hands out codes and runs
// the delivery protocol. Each send is recorded unconditionally, then two
// independent rolls decide whether the message reaches the inbox and,
// if so, whether it gets read:
//
//	unsent -> sent -> [received] -> [read]
package delivery

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"notification-lab/contract"
	"notification-lab/domain"
	"notification-lab/errors"
	"notification-lab/generator"
	"sync"
)

const (
	DefaultLossChance = 0.1
	DefaultReadChance = 0.5
	// DefaultWordCount is the length of generated message bodies.
	DefaultWordCount = 10
)

type System struct {
	log        *slog.Logger
	names      contract.NameGenerator
	texts      contract.TextGenerator
	random     contract.RandomSource
	wordCount  int
	lossChance float64
	readChance float64

	// mu guards the counters and makes code allocation and registration atomic.
	mu           sync.Mutex
	userCount    int
	messageCount int
	users        *Registry[*domain.User]
	messages     *Registry[*domain.Message]

	rollMu sync.Mutex
}

type Option func(*System)

func WithLogger(log *slog.Logger) Option {
	return func(s *System) { s.log = log }
}

func WithNameGenerator(names contract.NameGenerator) Option {
	return func(s *System) { s.names = names }
}

func WithTextGenerator(texts contract.TextGenerator) Option {
	return func(s *System) { s.texts = texts }
}

// WithRandomSource replaces the process-wide source, typically by a
// seeded one or a deterministic stub.
func WithRandomSource(random contract.RandomSource) Option {
	return func(s *System) { s.random = random }
}

// WithWordCount sets the length of bodies generated for messages created
// without one.
func WithWordCount(words int) Option {
	return func(s *System) { s.wordCount = words }
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// New returns an empty System. Both chances must be finite numbers in [0,1].
func New(lossChance, readChance float64, opts ...Option) (*System, error) {
	if err := validateChance(lossChance); err != nil {
		return nil, fmt.Errorf("loss chance %v: %w", lossChance, err)
	}
	if err := validateChance(readChance); err != nil {
		return nil, fmt.Errorf("read chance %v: %w", readChance, err)
	}
	s := &System{
		log:        slog.Default(),
		names:      generator.NewNames(nil),
		texts:      generator.NewLorem(nil),
		random:     globalSource{},
		wordCount:  DefaultWordCount,
		lossChance: lossChance,
		readChance: readChance,
		users:      NewRegistry[*domain.User](),
		messages:   NewRegistry[*domain.Message](),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.wordCount < 1 {
		return nil, fmt.Errorf("word count %d: %w", s.wordCount, errors.ErrInvalidWordCount)
	}
	return s, nil
}

func validateChance(chance float64) error {
	if math.IsNaN(chance) || math.IsInf(chance, 0) {
		return errors.ErrChanceNotNumber
	}
	if chance < 0 || chance > 1 {
		return errors.ErrChanceOutOfRange
	}
	return nil
}

func (s *System) LossChance() float64 { return s.lossChance }
func (s *System) ReadChance() float64 { return s.readChance }

// Users returns the registered users by ascending code.
func (s *System) Users() []*domain.User { return s.users.Sorted() }

// Messages returns the created messages by ascending code.
func (s *System) Messages() []*domain.Message { return s.messages.Sorted() }

// RegisterUser creates a user under the next user code. An empty name is
// replaced by a generated one.
func (s *System) RegisterUser(name string) (*domain.User, error) {
	if name == "" {
		name = s.names.RandomName()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	user, err := domain.NewUser(name, s.userCount+1)
	if err != nil {
		return nil, fmt.Errorf("register user: %w", err)
	}
	s.userCount++
	s.users.Add(user)
	s.log.Debug("User registered", "code", user.Code(), "name", user.Name())
	return user, nil
}

// CreateMessage creates a message under the next message code. An empty
// body is replaced by generated text.
func (s *System) CreateMessage(body string) (*domain.Message, error) {
	if body == "" {
		body = s.texts.RandomText(s.wordCount)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	message, err := domain.NewMessage(body, s.messageCount+1)
	if err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	s.messageCount++
	s.messages.Add(message)
	s.log.Debug(fmt.Sprintf("Created new message with code %d and body %q", message.Code(), message.Body()))
	return message, nil
}

func (s *System) IsRegisteredUser(user *domain.User) bool {
	return s.users.Contains(user)
}

func (s *System) IsRegisteredMessage(message *domain.Message) bool {
	return s.messages.Contains(message)
}

// SendMessage sends a message to a registered user, creating it from body
// first when message is nil. The send is always recorded; the message then
// reaches the inbox if it survives the loss roll, and is read if it also
// passes the read roll. A lost message is still returned.
func (s *System) SendMessage(user *domain.User, message *domain.Message, body string) (*domain.Message, error) {
	if !s.IsRegisteredUser(user) {
		return nil, fmt.Errorf("send to %v: %w", user, errors.ErrUnregisteredUser)
	}
	message, err := s.resolve(message, body)
	if err != nil {
		return nil, err
	}
	return message, s.deliver(user, message)
}

// BroadcastMessage sends one message to every registered user by ascending
// code. The message is resolved or created once so every recipient shares
// it, while each send rolls its own loss and read trials.
func (s *System) BroadcastMessage(message *domain.Message, body string) (*domain.Message, error) {
	message, err := s.resolve(message, body)
	if err != nil {
		return nil, err
	}
	for _, user := range s.Users() {
		if err := s.deliver(user, message); err != nil {
			return message, fmt.Errorf("broadcast message %d: %w", message.Code(), err)
		}
	}
	return message, nil
}

func (s *System) resolve(message *domain.Message, body string) (*domain.Message, error) {
	if message == nil {
		return s.CreateMessage(body)
	}
	if !s.IsRegisteredMessage(message) {
		return nil, fmt.Errorf("message %d: %w", message.Code(), errors.ErrUnregisteredMessage)
	}
	return message, nil
}

func (s *System) deliver(user *domain.User, message *domain.Message) error {
	message.Send(user)
	s.log.Debug("Message sent", "message", message.Code(), "user", user.Code())

	if s.roll() <= s.lossChance {
		s.log.Debug("Message lost", "message", message.Code(), "user", user.Code())
		return nil
	}
	added, err := user.Receive(message)
	if err != nil {
		return fmt.Errorf("user %d receive message %d: %w", user.Code(), message.Code(), err)
	}
	if added {
		s.log.Debug("Message received", "message", message.Code(), "user", user.Code())
	} else {
		s.log.Warn(fmt.Sprintf("User %s received a repeated message: %q", user, message))
	}

	if s.roll() >= s.readChance {
		return nil
	}
	if err := user.Read(message); err != nil {
		return fmt.Errorf("user %d read message %d: %w", user.Code(), message.Code(), err)
	}
	s.log.Debug("Message read", "message", message.Code(), "user", user.Code())
	return nil
}

func (s *System) roll() float64 {
	s.rollMu.Lock()
	defer s.rollMu.Unlock()
	return s.random.Float64()
}
