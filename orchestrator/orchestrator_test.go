package orchestrator

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/agentsim/profile"
	"github.com/hupe1980/agentsim/session"
	"github.com/hupe1980/agentsim/tool"
)

func TestHandle_CalculatorEndToEnd(t *testing.T) {
	o := New()
	res := o.Handle(context.Background(), "5+3 계산해줘", "")

	assert.Equal(t, "calculator", res.ToolUsed)
	assert.Contains(t, res.Reply, "8")
	assert.Contains(t, res.Reply, "계산 결과")
	assert.NotEmpty(t, res.SessionID)
	assert.Empty(t, res.Citations)
	assert.Equal(t, "calculator", res.Metadata["toolUsed"])
	assert.Equal(t, false, res.Metadata["knowledgeFound"])

	// The returned session exists and holds exactly the processed turn.
	turns, err := o.Sessions().History(res.SessionID)
	assert.NoError(t, err)
	if assert.Len(t, turns, 1) {
		assert.Equal(t, "5+3 계산해줘", turns[0].User)
		assert.Equal(t, res.Reply, turns[0].Agent)
	}
}

func TestHandle_KnowledgeEndToEnd(t *testing.T) {
	store := session.NewInMemoryStore()
	existing, _ := store.Create()

	o := New(WithSessionStore(store))
	res := o.Handle(context.Background(), "aws란 무엇인가요?", existing)

	assert.Equal(t, existing, res.SessionID)
	assert.Equal(t, "AWS는 Amazon Web Services의 약자로, 클라우드 컴퓨팅 서비스를 제공합니다.", res.Reply)
	assert.Empty(t, res.ToolUsed)
	assert.Nil(t, res.Metadata["toolUsed"])
	assert.Equal(t, true, res.Metadata["knowledgeFound"])
	assert.Equal(t, []string{"Knowledge Base: aws"}, res.Citations)

	turns, _ := store.History(existing)
	assert.Len(t, turns, 1)
}

func TestHandle_TwoKnowledgeMatches(t *testing.T) {
	o := New()
	res := o.Handle(context.Background(), "aws bedrock lambda 설명", "")

	// First fact is the reply body, second fact follows under the additional
	// info label, the third is citation-only.
	assert.True(t, strings.HasPrefix(res.Reply, "AWS는 Amazon Web Services"))
	assert.Contains(t, res.Reply, "추가 정보: Amazon Bedrock은")
	assert.NotContains(t, res.Reply, "서버리스 컴퓨팅")
	assert.Equal(t, []string{
		"Knowledge Base: aws",
		"Knowledge Base: bedrock",
		"Knowledge Base: lambda",
	}, res.Citations)
}

func TestHandle_ToolOutranksKnowledge(t *testing.T) {
	o := New()
	// Mentions a knowledge keyword and carries an expression; the tool wins.
	res := o.Handle(context.Background(), "aws에서 5 + 3 계산해줘", "")
	assert.Equal(t, "calculator", res.ToolUsed)
	assert.Contains(t, res.Reply, "계산 결과")
	// Knowledge still surfaces through citations and metadata.
	assert.Equal(t, []string{"Knowledge Base: aws"}, res.Citations)
	assert.Equal(t, true, res.Metadata["knowledgeFound"])
}

func TestHandle_ToolErrorComposesApology(t *testing.T) {
	o := New()

	res := o.Handle(context.Background(), "10 / 0 계산해줘", "")
	assert.Equal(t, "calculator", res.ToolUsed)
	assert.Equal(t, "죄송합니다. 0으로 나눌 수 없습니다", res.Reply)

	// Error-only result (keyword matched, no expression present) must still
	// take the apology branch, never the success template.
	res = o.Handle(context.Background(), "계산해줘", "")
	assert.Equal(t, "calculator", res.ToolUsed)
	assert.Equal(t, "죄송합니다. 계산식을 찾을 수 없습니다. 예: '5 + 3'", res.Reply)
	assert.NotContains(t, res.Reply, "계산 결과")
}

func TestHandle_WeatherAndTime(t *testing.T) {
	fixed := time.Date(2025, 3, 1, 14, 30, 5, 0, time.UTC)
	o := New(WithExecutor(tool.NewExecutor(tool.WithClock(func() time.Time { return fixed }))))

	res := o.Handle(context.Background(), "오늘 날씨 어때?", "")
	assert.Equal(t, "weather", res.ToolUsed)
	assert.Equal(t, "현재 서울의 날씨는 15°C, 맑음입니다. (습도: 65%)", res.Reply)

	res = o.Handle(context.Background(), "지금 몇 시야?", "")
	assert.Equal(t, "time", res.ToolUsed)
	assert.Equal(t, "현재 시간은 2025-03-01 14:30:05 (Asia/Seoul) 입니다.", res.Reply)
}

func TestHandle_FallbackTemplates(t *testing.T) {
	o := New()

	res := o.Handle(context.Background(), "안녕!", "")
	assert.Equal(t, "안녕하세요! AWS AI Agent입니다. 무엇을 도와드릴까요?", res.Reply)

	res = o.Handle(context.Background(), "도움이 필요해", "")
	assert.Contains(t, res.Reply, "다음과 같은 기능")

	res = o.Handle(context.Background(), "무작위 문장입니다", "")
	assert.Contains(t, res.Reply, "'무작위 문장입니다'")
	assert.Empty(t, res.ToolUsed)
	assert.Empty(t, res.Citations)
}

func TestHandle_TotalOnDegenerateInputs(t *testing.T) {
	o := New()
	for _, message := range []string{"", "   ", "\n\t", "???", strings.Repeat("x", 10_000)} {
		res := o.Handle(context.Background(), message, "")
		assert.NotEmpty(t, res.Reply, "message %q", message)
		assert.NotEmpty(t, res.SessionID, "message %q", message)
		assert.NotNil(t, res.Metadata, "message %q", message)
	}
}

func TestHandle_SessionContinuity(t *testing.T) {
	o := New()
	first := o.Handle(context.Background(), "안녕", "")
	second := o.Handle(context.Background(), "5 + 3", first.SessionID)

	assert.Equal(t, first.SessionID, second.SessionID)
	turns, _ := o.Sessions().History(first.SessionID)
	assert.Len(t, turns, 2)
	assert.Equal(t, "안녕", turns[0].User)
	assert.Equal(t, "5 + 3", turns[1].User)

	// Unknown session id resolves to a fresh session, never adopted verbatim.
	third := o.Handle(context.Background(), "안녕", "does-not-exist")
	assert.NotEqual(t, "does-not-exist", third.SessionID)
	assert.True(t, o.Sessions().Exists(third.SessionID))
}

func TestHandle_ProfileSelectsContent(t *testing.T) {
	o := New(WithProfile(profile.GCP()))

	res := o.Handle(context.Background(), "안녕", "")
	assert.Equal(t, "안녕하세요! GCP AI Agent입니다. 무엇을 도와드릴까요?", res.Reply)
	assert.Equal(t, "GCP (mock)", res.Metadata["platform"])

	// GCP's payload has no humidity; the clause must be omitted.
	res = o.Handle(context.Background(), "날씨 알려줘", "")
	assert.Equal(t, "현재 서울 (샘플)의 날씨는 20°C, 맑음입니다.", res.Reply)

	// GCP knowledge table answers gcp, not aws.
	res = o.Handle(context.Background(), "gcp가 뭐야", "")
	assert.Contains(t, res.Reply, "Google Cloud Platform")
}

func TestHandle_MetadataFields(t *testing.T) {
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	o := New(func(o *Options) { o.Now = func() time.Time { return fixed } })

	res := o.Handle(context.Background(), "안녕", "")
	assert.Equal(t, fixed.Format(time.RFC3339), res.Metadata["timestamp"])
	assert.Equal(t, "AWS (mock)", res.Metadata["platform"])
	assert.Contains(t, res.Metadata, "toolUsed")
	assert.Contains(t, res.Metadata, "knowledgeFound")
}

func TestHandle_ConcurrentRequests(t *testing.T) {
	o := New()
	shared := o.Handle(context.Background(), "안녕", "").SessionID

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := o.Handle(context.Background(), "5 + 3 계산", shared)
			if res.SessionID != shared {
				t.Errorf("expected shared session, got %s", res.SessionID)
			}
			// Independent sessions interleave freely.
			o.Handle(context.Background(), "날씨", "")
		}()
	}
	wg.Wait()

	turns, _ := o.Sessions().History(shared)
	assert.Len(t, turns, 31)
}
