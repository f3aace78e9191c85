package services

import (
	"strings"
	"sync"
	"time"

	"github.com/crypticpeace/fyp/internal/models"
)

// Counselor is the fixed profile card shown on the counselor tab.
var Counselor = models.CounselorProfile{
	Name:           "Dr. Sarah Wilson",
	Department:     "Psychology",
	Availability:   "Mon-Fri, 9 AM - 5 PM",
	Specialization: "Anxiety & Depression",
	Rating:         4.8,
	Experience:     "8 years",
}

const counselorGreeting = "Hello! I'm here to help. How are you feeling today?"

// replyDelay matches the simulated typing pause before an auto-reply.
const replyDelay = 2 * time.Second

// Responder produces the counselor's next message for a conversation.
// Injecting a fixed-output stub makes the simulated chat deterministic in
// tests.
type Responder interface {
	NextReply(history []models.ChatMessage) (body string, delay time.Duration)
}

// RotatingResponder cycles through a fixed set of supportive replies.
type RotatingResponder struct {
	mu      sync.Mutex
	replies []string
	next    int
}

// NewRotatingResponder returns the default responder with the stock
// counselor replies.
func NewRotatingResponder() *RotatingResponder {
	return &RotatingResponder{replies: []string{
		"Thank you for sharing that with me. Can you tell me more about how you're feeling?",
		"I understand this might be difficult to talk about. You're doing great by reaching out.",
		"That sounds challenging. What coping strategies have you tried before?",
		"Your feelings are valid. Let's work together to find some helpful strategies.",
	}}
}

func (r *RotatingResponder) NextReply(history []models.ChatMessage) (string, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	body := r.replies[r.next%len(r.replies)]
	r.next++
	return body, replyDelay
}

// ChatStore is the append-only chat log owned by the session.
type ChatStore interface {
	AppendChatMessage(m models.ChatMessage)
	ListChatMessages() []models.ChatMessage
}

// CounselorService manages the simulated counselor conversation. Replies
// are advisory presentation behavior: they arrive on a cancelable timer and
// never affect risk scoring.
type CounselorService struct {
	mu            sync.Mutex
	store         ChatStore
	responder     Responder
	now           func() time.Time
	idGen         func() string
	schedule      func(d time.Duration, fn func()) (cancel func())
	cancelPending func()
	subscribers   map[int]func(models.ChatMessage)
	nextSub       int
}

func NewCounselorService(store ChatStore, responder Responder) *CounselorService {
	s := &CounselorService{
		store:     store,
		responder: responder,
		now:       func() time.Time { return time.Now().UTC() },
		idGen:     shortID,
		schedule: func(d time.Duration, fn func()) func() {
			t := time.AfterFunc(d, fn)
			return func() { t.Stop() }
		},
		subscribers: map[int]func(models.ChatMessage){},
	}
	if len(store.ListChatMessages()) == 0 {
		s.append(models.SenderCounselor, counselorGreeting)
	}
	return s
}

func (s *CounselorService) append(sender, body string) models.ChatMessage {
	m := models.ChatMessage{ID: s.idGen(), Sender: sender, Body: body, SentAt: s.now()}
	s.store.AppendChatMessage(m)
	for _, fn := range s.subscribers {
		fn(m)
	}
	return m
}

// Send appends a user message and schedules the counselor's reply.
func (s *CounselorService) Send(body string) (*models.ChatMessage, error) {
	if strings.TrimSpace(body) == "" {
		return nil, NewInvalidError("message must not be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.append(models.SenderUser, body)

	reply, delay := s.responder.NextReply(s.store.ListChatMessages())
	s.cancelPending = s.schedule(delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.cancelPending = nil
		s.append(models.SenderCounselor, reply)
	})
	return &m, nil
}

// CancelPending stops an undelivered auto-reply, if any.
func (s *CounselorService) CancelPending() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancelPending != nil {
		s.cancelPending()
		s.cancelPending = nil
	}
}

// History returns a copy of the chat log in insertion order.
func (s *CounselorService) History() []models.ChatMessage {
	return s.store.ListChatMessages()
}

// Subscribe registers fn to run for every appended message. The returned
// function removes the subscription.
func (s *CounselorService) Subscribe(fn func(models.ChatMessage)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// Profile returns the counselor card.
func (s *CounselorService) Profile() models.CounselorProfile {
	return Counselor
}
