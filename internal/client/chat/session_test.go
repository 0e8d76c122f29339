package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/aaywp/portal/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type assistantMock struct{ mock.Mock }

func (m *assistantMock) ChatWithAI(ctx context.Context, message, sessionID string) (models.ChatResponse, error) {
	args := m.Called(ctx, message, sessionID)
	return args.Get(0).(models.ChatResponse), args.Error(1)
}

func TestNew_Greeting(t *testing.T) {
	s := New(&assistantMock{}, LangEnglish, nil)
	assert.Equal(t, []Message{{From: FromBot, Text: "Hello! How can I help you today?"}}, s.Transcript())
	assert.Empty(t, s.SessionID())

	assert.Equal(t, LangEnglish, New(&assistantMock{}, "fr", nil).Language())
}

func TestSend_BlankIsIgnored(t *testing.T) {
	m := &assistantMock{}
	s := New(m, LangEnglish, nil)

	for _, in := range []string{"", "   ", "\t\n"} {
		require.NoError(t, s.Send(context.Background(), in))
	}
	assert.Len(t, s.Transcript(), 1)
	m.AssertNotCalled(t, "ChatWithAI", mock.Anything, mock.Anything, mock.Anything)
}

func TestSend_Success(t *testing.T) {
	ctx := context.Background()
	m := &assistantMock{}
	s := New(m, LangEnglish, nil)

	m.On("ChatWithAI", mock.Anything, "How do I join?", "").
		Return(models.ChatResponse{Response: "Use the registration form.", SessionID: "s1", SuggestedActions: []string{"Register", "Contact us"}}, nil).Once()
	m.On("ChatWithAI", mock.Anything, "Thanks", "s1").
		Return(models.ChatResponse{Response: "You're welcome!", SessionID: "s2"}, nil).Once()

	require.NoError(t, s.Send(ctx, "  How do I join? "))
	assert.Equal(t, "s1", s.SessionID())
	assert.Equal(t, []string{"Register", "Contact us"}, s.Suggestions())

	require.NoError(t, s.Send(ctx, "Thanks"))
	assert.Equal(t, "s2", s.SessionID())
	assert.Empty(t, s.Suggestions())
	assert.False(t, s.Typing())

	assert.Equal(t, []Message{
		{From: FromBot, Text: "Hello! How can I help you today?"},
		{From: FromUser, Text: "How do I join?"},
		{From: FromBot, Text: "Use the registration form."},
		{From: FromUser, Text: "Thanks"},
		{From: FromBot, Text: "You're welcome!"},
	}, s.Transcript())
	m.AssertExpectations(t)
}

func TestSend_FailureAppendsOneErrorTurn(t *testing.T) {
	m := &assistantMock{}
	s := New(m, LangEnglish, nil)
	m.On("ChatWithAI", mock.Anything, "hello", "").
		Return(models.ChatResponse{}, errors.New("connection refused")).Once()

	err := s.Send(context.Background(), "hello")
	require.Error(t, err)

	tr := s.Transcript()
	require.Len(t, tr, 3)
	assert.Equal(t, Message{From: FromUser, Text: "hello"}, tr[1])
	assert.Equal(t, FromBot, tr[2].From)
	assert.Equal(t, lookup(LangEnglish).failure, tr[2].Text)
	assert.False(t, s.Typing())
	assert.Empty(t, s.SessionID())
}

func TestSend_TypingWhileOutstanding(t *testing.T) {
	m := &assistantMock{}
	s := New(m, LangEnglish, nil)

	entered := make(chan struct{})
	release := make(chan struct{})
	m.On("ChatWithAI", mock.Anything, "hi", "").
		Run(func(mock.Arguments) { close(entered); <-release }).
		Return(models.ChatResponse{Response: "hey", SessionID: "s1"}, nil).Once()

	done := make(chan error, 1)
	go func() { done <- s.Send(context.Background(), "hi") }()

	<-entered
	assert.True(t, s.Typing())
	assert.Equal(t, Message{From: FromUser, Text: "hi"}, s.Transcript()[1])

	close(release)
	require.NoError(t, <-done)
	assert.False(t, s.Typing())
}

func TestSetLanguage_ResetsConversation(t *testing.T) {
	m := &assistantMock{}
	s := New(m, LangEnglish, nil)
	m.On("ChatWithAI", mock.Anything, "hi", "").
		Return(models.ChatResponse{Response: "hey", SessionID: "s1", SuggestedActions: []string{"Donate"}}, nil).Once()
	require.NoError(t, s.Send(context.Background(), "hi"))

	s.SetLanguage(LangUrdu)

	assert.Equal(t, []Message{{From: FromBot, Text: "السلام علیکم! آج میں آپ کی کیسے مدد کر سکتا ہوں؟"}}, s.Transcript())
	assert.Empty(t, s.SessionID())
	assert.Empty(t, s.Suggestions())
	assert.Equal(t, LangUrdu, s.Language())

	m.On("ChatWithAI", mock.Anything, "salaam", "").
		Return(models.ChatResponse{Response: "وعلیکم السلام", SessionID: "s9"}, nil).Once()
	require.NoError(t, s.Send(context.Background(), "salaam"))
	m.AssertExpectations(t)
}

func TestSend_ReplyAfterLanguageChangeIsDropped(t *testing.T) {
	m := &assistantMock{}
	s := New(m, LangEnglish, nil)

	entered := make(chan struct{})
	release := make(chan struct{})
	m.On("ChatWithAI", mock.Anything, "hi", "").
		Run(func(mock.Arguments) { close(entered); <-release }).
		Return(models.ChatResponse{Response: "hey", SessionID: "s1"}, nil).Once()

	done := make(chan error, 1)
	go func() { done <- s.Send(context.Background(), "hi") }()
	<-entered
	s.SetLanguage(LangUrdu)
	close(release)
	require.NoError(t, <-done)

	assert.Len(t, s.Transcript(), 1)
	assert.Empty(t, s.SessionID())
}

func TestPickSuggestion_FillsInputWithoutSending(t *testing.T) {
	m := &assistantMock{}
	s := New(m, LangEnglish, nil)
	m.On("ChatWithAI", mock.Anything, "hi", "").
		Return(models.ChatResponse{Response: "hey", SessionID: "s1", SuggestedActions: []string{"Register", "Donate"}}, nil).Once()
	require.NoError(t, s.Send(context.Background(), "hi"))

	got, err := s.PickSuggestion(1)
	require.NoError(t, err)
	assert.Equal(t, "Donate", got)
	assert.Equal(t, "Donate", s.Input())
	assert.Len(t, s.Transcript(), 3)
	m.AssertNumberOfCalls(t, "ChatWithAI", 1)

	_, err = s.PickSuggestion(5)
	require.Error(t, err)
}
