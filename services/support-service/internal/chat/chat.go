// Package chat holds support conversations in memory. Messages are only
// ever appended; the bot answers each user message once after a fixed delay.
package chat

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ReplyDelay is how long the bot "types" before answering.
const ReplyDelay = time.Second

// IdleTTL is how long a conversation nobody is watching survives without activity.
const IdleTTL = 30 * time.Minute

var (
	ErrBlankMessage         = errors.New("message is blank")
	ErrConversationNotFound = errors.New("conversation not found")
)

type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	IsUser    bool      `json:"is_user"`
	Topic     string    `json:"topic,omitempty"` // bot replies only
	Timestamp time.Time `json:"timestamp"`
}

// DisplayTime is the HH:MM shown under a bubble.
func (m Message) DisplayTime() string {
	return m.Timestamp.Format("15:04")
}

// Responder chooses the bot's answer.
type Responder interface {
	Greeting() string
	Reply(text string) (topic, reply string)
}

// Conversation is an append-only message log with live subscribers.
type Conversation struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	messages   []Message
	subs       map[int]chan Message
	nextSub    int
	lastActive time.Time
}

func (c *Conversation) touch(now time.Time) {
	c.mu.Lock()
	c.lastActive = now
	c.mu.Unlock()
}

// idleSince reports whether c has no subscribers and no activity after cutoff.
func (c *Conversation) idleSince(cutoff time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs) == 0 && !c.lastActive.After(cutoff)
}

// Messages returns a snapshot of the log.
func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// append stores m and fans it out. Both happen under the lock so
// subscribers see the log order.
func (c *Conversation) append(m Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, m)
	if m.Timestamp.After(c.lastActive) {
		c.lastActive = m.Timestamp
	}
	for id, ch := range c.subs {
		select {
		case ch <- m:
		default:
			log.Printf("chat: subscriber %d of %s is full, dropping %s", id, c.ID, m.ID)
		}
	}
}

// Subscribe delivers every message appended from now on. cancel closes the channel.
func (c *Conversation) Subscribe(buffer int) (<-chan Message, func()) {
	ch := make(chan Message, buffer)
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	if c.subs == nil {
		c.subs = make(map[int]chan Message)
	}
	c.subs[id] = ch
	c.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			c.mu.Unlock()
			close(ch)
		})
	}
}

// Service owns all live conversations.
type Service struct {
	responder Responder
	delay     time.Duration
	idleTTL   time.Duration
	now       func() time.Time
	afterFunc func(time.Duration, func())

	mu            sync.RWMutex
	conversations map[string]*Conversation
}

func NewService(r Responder, delay time.Duration) *Service {
	if delay <= 0 {
		delay = ReplyDelay
	}
	return &Service{
		responder:     r,
		delay:         delay,
		idleTTL:       IdleTTL,
		now:           time.Now,
		afterFunc:     func(d time.Duration, f func()) { time.AfterFunc(d, f) },
		conversations: make(map[string]*Conversation),
	}
}

// WithScheduler replaces time.AfterFunc; tests fire replies by hand.
func (s *Service) WithScheduler(afterFunc func(time.Duration, func())) *Service {
	s.afterFunc = afterFunc
	return s
}

// WithIdleTTL changes how long an unwatched conversation is kept.
func (s *Service) WithIdleTTL(ttl time.Duration) *Service {
	if ttl > 0 {
		s.idleTTL = ttl
	}
	return s
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Start opens a conversation whose first message is the bot greeting.
func (s *Service) Start(ctx context.Context) (*Conversation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	now := s.now()
	c := &Conversation{ID: uuid.NewString(), CreatedAt: now, lastActive: now}
	c.messages = []Message{{
		ID:        uuid.NewString(),
		Text:      s.responder.Greeting(),
		Timestamp: now,
	}}

	s.mu.Lock()
	s.conversations[c.ID] = c
	s.mu.Unlock()
	return c, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Conversation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	c, ok := s.conversations[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrConversationNotFound
	}
	c.touch(s.now())
	return c, nil
}

// End forgets the conversation. A reply already scheduled still lands in
// the detached log but nobody can read it any more.
func (s *Service) End(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.conversations[id]; !ok {
		return ErrConversationNotFound
	}
	delete(s.conversations, id)
	return nil
}

// Send appends the user's message and schedules the bot reply.
// The reply is not tied to ctx: it fires once after the delay even if
// the caller has gone.
func (s *Service) Send(ctx context.Context, id, text string) (Message, error) {
	if strings.TrimSpace(text) == "" {
		return Message{}, ErrBlankMessage
	}
	c, err := s.Get(ctx, id)
	if err != nil {
		return Message{}, err
	}

	userMsg := Message{ID: uuid.NewString(), Text: text, IsUser: true, Timestamp: s.now()}
	c.append(userMsg)

	s.afterFunc(s.delay, func() {
		topic, reply := s.responder.Reply(text)
		c.append(Message{ID: uuid.NewString(), Text: reply, Topic: topic, Timestamp: s.now()})
	})
	return userMsg, nil
}

// Classify answers text without any conversation state.
func (s *Service) Classify(text string) (topic, reply string, err error) {
	if strings.TrimSpace(text) == "" {
		return "", "", ErrBlankMessage
	}
	topic, reply = s.responder.Reply(text)
	return topic, reply, nil
}

// Count is the number of live conversations.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.conversations)
}

// Sweep drops conversations idle for longer than the TTL and returns how
// many went. Conversations with a live subscriber are kept.
func (s *Service) Sweep() int {
	cutoff := s.now().Add(-s.idleTTL)
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, c := range s.conversations {
		if c.idleSince(cutoff) {
			delete(s.conversations, id)
			n++
		}
	}
	return n
}

// RunJanitor sweeps every interval until ctx is done.
func (s *Service) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				log.Printf("chat: expired %d idle conversations", n)
			}
		}
	}
}
