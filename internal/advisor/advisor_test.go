package advisor

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/contentquiz/internal/catalog"
	"github.com/abhisek/contentquiz/internal/llm"
)

var sampleAnalysis = Analysis{
	Summary:   "You already publish with intent, which many small teams never manage.",
	Strengths: []string{"A written plan that the team actually follows"},
	NextSteps: []string{"Interview five customers this month", "Track leads per article"},
}

func defaultCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	return c
}

func TestAdvise_FormatsAnalysis(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockJSON(sampleAnalysis))
	a := New(mock, DefaultConfig())

	text := a.Advise(t.Context(), defaultCatalog(t), catalog.Answers{1: "1d", 2: "2b"})

	assert.True(t, strings.HasPrefix(text, "You already publish with intent"))
	assert.Contains(t, text, "What you do well:\n• A written plan that the team actually follows")
	assert.Contains(t, text, "Next steps:\n• Interview five customers this month\n• Track leads per article")
}

func TestAdvise_PromptListsAnsweredQuestions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockJSON(sampleAnalysis))
	a := New(mock, DefaultConfig())
	cat := defaultCatalog(t)

	a.Advise(t.Context(), cat, catalog.Answers{2: "2b", 1: "1d", 3: "not-an-option"})

	require.Len(t, mock.Calls, 1)
	req := mock.Calls[0]
	assert.Equal(t, AnalysisSchema, req.Schema)
	assert.Equal(t, systemPrompt, req.System)
	require.Len(t, req.Messages, 1)

	msg := req.Messages[0].Content
	q1 := strings.Index(msg, "Question: "+cat.Questions[0].Text)
	q2 := strings.Index(msg, "Question: "+cat.Questions[1].Text)
	require.NotEqual(t, -1, q1)
	require.NotEqual(t, -1, q2)
	assert.Less(t, q1, q2, "answers follow catalog order")
	assert.Contains(t, msg, "Answer: A written plan we follow most months")
	assert.Contains(t, msg, "Answer: We have a rough idea")
	assert.NotContains(t, msg, cat.Questions[2].Text, "unknown options are left out")
	assert.Contains(t, msg, "Answered 2 of")
	assert.Contains(t, msg, "about 100 words")
}

func TestAdvise_Fallbacks(t *testing.T) {
	answers := catalog.Answers{1: "1a"}

	tests := []struct {
		name     string
		provider llm.Provider
		answers  catalog.Answers
		want     string
	}{
		{
			name:     "no provider",
			provider: nil,
			answers:  answers,
			want:     NotConfiguredText,
		},
		{
			name:     "no answers",
			provider: llm.NewMockProvider(llm.MockJSON(sampleAnalysis)),
			answers:  catalog.Answers{},
			want:     NoAnswersText,
		},
		{
			name:     "provider error",
			provider: llm.NewMockProvider(llm.MockFailure(&llm.ErrProviderUnavailable{Err: errors.New("dial tcp: refused")})),
			answers:  answers,
			want:     UnavailableText,
		},
		{
			name:     "invalid response",
			provider: llm.NewMockProvider(llm.MockFailure(&llm.ErrInvalidResponse{Err: errors.New("bad json")})),
			answers:  answers,
			want:     EmptyText,
		},
		{
			name:     "truncated analysis",
			provider: llm.NewMockProvider(llm.MockFailure(&llm.ErrMaxTokensExceeded{})),
			answers:  answers,
			want:     EmptyText,
		},
		{
			name:     "schema mismatch",
			provider: llm.NewMockProvider(llm.MockJSON(map[string]string{"summary": "hi"})),
			answers:  answers,
			want:     EmptyText,
		},
		{
			name:     "blank summary",
			provider: llm.NewMockProvider(llm.MockJSON(Analysis{Summary: "  ", Strengths: []string{"a"}, NextSteps: []string{"b"}})),
			answers:  answers,
			want:     EmptyText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(tt.provider, DefaultConfig())
			assert.Equal(t, tt.want, a.Advise(t.Context(), defaultCatalog(t), tt.answers))
		})
	}
}

func TestAdvise_DemoProvider(t *testing.T) {
	a := New(llm.NewDemoProvider(), DefaultConfig())

	analysis, err := a.Analyze(t.Context(), defaultCatalog(t), catalog.Answers{1: "1b"})

	require.NoError(t, err)
	assert.NotEmpty(t, analysis.Summary)
	assert.NotEmpty(t, analysis.Strengths)
	assert.NotEmpty(t, analysis.NextSteps)
}

func TestAnalyze_CarriesSessionAndDeadline(t *testing.T) {
	var seen requestContext
	a := New(contextProvider{seen: &seen}, Config{Timeout: time.Minute})

	ctx := llm.WithSession(t.Context(), "sess-9")
	_, err := a.Analyze(ctx, defaultCatalog(t), catalog.Answers{1: "1a"})

	require.NoError(t, err)
	assert.Equal(t, "sess-9", seen.session)
	assert.True(t, seen.hasDeadline)
	assert.Equal(t, DefaultConfig().MaxTokens, seen.maxTokens, "zero MaxTokens falls back to the default")
}

func TestAdvise_NoAnswersSkipsProvider(t *testing.T) {
	mock := llm.NewMockProvider()
	a := New(mock, DefaultConfig())

	a.Advise(t.Context(), defaultCatalog(t), nil)

	assert.Empty(t, mock.Calls)
}

func TestAnalyze_SetsPurpose(t *testing.T) {
	var purpose string
	a := New(purposeProvider{seen: &purpose}, DefaultConfig())

	_, err := a.Analyze(t.Context(), defaultCatalog(t), catalog.Answers{1: "1a"})

	require.NoError(t, err)
	assert.Equal(t, llm.PurposeAdvisory, purpose)
}

func TestAnalysis_TextSkipsEmptyLists(t *testing.T) {
	a := Analysis{Summary: "Good start.", Strengths: []string{" ", ""}, NextSteps: []string{"Publish weekly"}}
	assert.Equal(t, "Good start.\n\nNext steps:\n• Publish weekly", a.Text())
}

func TestConfigured(t *testing.T) {
	var nilAdvisor *Advisor
	assert.False(t, nilAdvisor.Configured())
	assert.False(t, New(nil, DefaultConfig()).Configured())
	assert.True(t, New(llm.NewMockProvider(), DefaultConfig()).Configured())
}
