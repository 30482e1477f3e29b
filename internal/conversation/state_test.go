package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diogo/chatptatlas/internal/models"
)

func TestNew(t *testing.T) {
	s := New()

	assert.True(t, s.Empty())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, "", s.Draft())
	assert.False(t, s.Responding())
	assert.Equal(t, PhaseIdle, s.Phase())
	assert.False(t, s.SubmitEnabled())
}

func TestSubmit_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", "hello"},
		{"leading and trailing spaces", "   hello  ", "hello"},
		{"tabs and newlines", "\thi there\n", "hi there"},
		{"inner whitespace kept", "a   b", "a   b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New().SetDraft(tt.input)

			next, ok := s.Submit(s.Draft())
			require.True(t, ok)

			msgs := next.Messages()
			require.Len(t, msgs, 1)
			assert.Equal(t, models.RoleUser, msgs[0].Role)
			assert.Equal(t, tt.want, msgs[0].Content)
			assert.Equal(t, "", next.Draft())
			assert.True(t, next.Responding())
			assert.Equal(t, PhaseAwaiting, next.Phase())
		})
	}
}

func TestSubmit_NoOp(t *testing.T) {
	tests := []struct {
		name  string
		state State
		input string
	}{
		{"empty input", New(), ""},
		{"whitespace only", New().SetDraft("   "), "   "},
		{"newlines only", New(), "\n\n\t"},
	}

	awaiting, ok := New().Submit("first")
	require.True(t, ok)
	awaiting = awaiting.SetDraft("second")
	tests = append(tests, struct {
		name  string
		state State
		input string
	}{"while awaiting", awaiting, "second"})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := tt.state.Submit(tt.input)

			assert.False(t, ok)
			assert.Equal(t, tt.state.Messages(), next.Messages())
			assert.Equal(t, tt.state.Draft(), next.Draft())
			assert.Equal(t, tt.state.Responding(), next.Responding())
		})
	}
}

func TestReceiveReply(t *testing.T) {
	s, ok := New().Submit("question")
	require.True(t, ok)

	s = s.ReceiveReply("answer")

	msgs := s.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, models.NewUserMessage("question"), msgs[0])
	assert.Equal(t, models.NewAssistantMessage("answer"), msgs[1])
	assert.False(t, s.Responding())
	assert.Equal(t, PhaseIdle, s.Phase())
}

func TestSetDraft(t *testing.T) {
	s := New().SetDraft("abc")
	assert.Equal(t, "abc", s.Draft())
	assert.True(t, s.SubmitEnabled())

	// Draft can still change while awaiting, but submitting stays disabled.
	s, _ = s.Submit(s.Draft())
	s = s.SetDraft("typing ahead")
	assert.Equal(t, "typing ahead", s.Draft())
	assert.False(t, s.SubmitEnabled())
}

func TestApplySuggestion(t *testing.T) {
	for i, text := range Suggestions {
		s, ok := New().ApplySuggestion(i)
		require.True(t, ok)
		assert.Equal(t, text, s.Draft())
		assert.True(t, s.Empty(), "suggestion must not submit")
	}

	_, ok := New().ApplySuggestion(len(Suggestions))
	assert.False(t, ok)

	started, _ := New().Submit("hi")
	after, ok := started.ApplySuggestion(0)
	assert.False(t, ok)
	assert.Equal(t, "", after.Draft())
}

func TestSuggestions(t *testing.T) {
	assert.Equal(t, []string{
		"What can you help me with?",
		"Tell me something interesting",
		"How does this work?",
	}, Suggestions)
}

func TestStateSnapshotsDoNotAlias(t *testing.T) {
	base, _ := New().Submit("one")
	base = base.ReceiveReply("reply")

	a, _ := base.Submit("two")
	b, _ := base.Submit("three")

	assert.Equal(t, "two", a.Messages()[2].Content)
	assert.Equal(t, "three", b.Messages()[2].Content)
	assert.Equal(t, 2, base.Len())
}

func TestMessagesReturnsCopy(t *testing.T) {
	s, _ := New().Submit("keep me")
	msgs := s.Messages()
	msgs[0].Content = "mutated"

	assert.Equal(t, "keep me", s.Messages()[0].Content)
}

func TestLastAssistant(t *testing.T) {
	_, ok := New().LastAssistant()
	assert.False(t, ok)

	s, _ := New().Submit("q1")
	s = s.ReceiveReply("a1")
	s, _ = s.Submit("q2")

	last, ok := s.LastAssistant()
	require.True(t, ok)
	assert.Equal(t, "a1", last.Content)
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "awaiting", PhaseAwaiting.String())
	assert.Equal(t, "unknown", Phase(9).String())
}
