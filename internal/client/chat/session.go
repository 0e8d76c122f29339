// Package chat keeps the chat widget's conversation: a linear transcript,
// the server-assigned session id and the current quick-reply suggestions.
package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/aaywp/portal/internal/client/models"
	"github.com/aaywp/portal/internal/common"
	"github.com/aaywp/portal/internal/logging"
)

type Sender string

const (
	FromUser Sender = "user"
	FromBot  Sender = "bot"
)

type Message struct {
	From Sender
	Text string
}

// Assistant is the slice of the API client the session needs.
type Assistant interface {
	ChatWithAI(ctx context.Context, message, sessionID string) (models.ChatResponse, error)
}

// Session is safe for concurrent use; Send does not hold the lock while the
// request is outstanding.
type Session struct {
	mu          sync.Mutex
	assistant   Assistant
	lang        string
	sessionID   string
	transcript  []Message
	suggestions []string
	input       string
	pending     int
	epoch       int
	log         logging.Logger
}

func New(assistant Assistant, lang string, log logging.Logger) *Session {
	if log == nil {
		log = logging.Nop()
	}
	s := &Session{assistant: assistant, log: log}
	s.resetLocked(lang)
	return s
}

// Send posts text as the next user turn. Blank text is ignored and nil is
// returned. On failure a bot error turn is appended and the error returned;
// the user turn stays in the transcript.
func (s *Session) Send(ctx context.Context, text string) error {
	if common.IsBlank(text) {
		return nil
	}
	text = strings.TrimSpace(text)

	s.mu.Lock()
	s.transcript = append(s.transcript, Message{From: FromUser, Text: text})
	s.input = ""
	s.pending++
	sessionID, epoch := s.sessionID, s.epoch
	s.mu.Unlock()

	resp, err := s.assistant.ChatWithAI(ctx, text, sessionID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending--

	if s.epoch != epoch {
		// The conversation was reset while waiting.
		return err
	}

	if err != nil {
		s.log.Warn(ctx, "chat request failed", "error", err)
		s.transcript = append(s.transcript, Message{From: FromBot, Text: lookup(s.lang).failure})
		return fmt.Errorf("chat: %w", err)
	}

	s.sessionID = resp.SessionID
	s.suggestions = append([]string(nil), resp.SuggestedActions...)
	s.transcript = append(s.transcript, Message{From: FromBot, Text: resp.Response})
	return nil
}

// SetLanguage resets the transcript to the greeting of lang and clears the
// session id, so the next Send starts a new server-side conversation.
func (s *Session) SetLanguage(lang string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked(lang)
}

func (s *Session) resetLocked(lang string) {
	if !Supported(lang) {
		lang = LangEnglish
	}
	s.lang = lang
	s.epoch++
	s.sessionID = ""
	s.suggestions = nil
	s.input = ""
	s.transcript = []Message{{From: FromBot, Text: lookup(lang).greeting}}
}

// PickSuggestion copies the i-th suggestion (0-based) into the input
// without sending it.
func (s *Session) PickSuggestion(i int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.suggestions) {
		return "", fmt.Errorf("no suggestion %d", i+1)
	}
	s.input = s.suggestions[i]
	return s.input, nil
}

// Input is the text waiting to be sent, as filled by PickSuggestion.
func (s *Session) Input() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input
}

func (s *Session) Transcript() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.transcript...)
}

func (s *Session) Suggestions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.suggestions...)
}

// Typing reports whether a reply is outstanding.
func (s *Session) Typing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending > 0
}

func (s *Session) SessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionID
}

func (s *Session) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// Placeholder is the prompt hint for the current language.
func (s *Session) Placeholder() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lookup(s.lang).placeholder
}
