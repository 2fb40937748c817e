// Package profile bundles the per-deployment content of the mock agent: the
// platform tag, greeting/help/fallback templates, the fixed weather payload
// and the knowledge table. The original architecture samples duplicate the
// whole pipeline once per cloud provider; here a single pipeline is
// parameterized by Profile instead, so the three deployments differ only in
// data.
package profile

import (
	"fmt"

	"github.com/hupe1980/agentsim/knowledge"
)

// Profile is the static, per-deployment configuration of the agent. It is
// read-only after construction.
type Profile struct {
	// Name is the short selector used in configuration ("aws", "gcp", "azure").
	Name string
	// Platform is the constant metadata tag exposed to callers.
	Platform string
	// Service is the service name reported by the health endpoint.
	Service string
	// Greeting answers 안녕/hello messages.
	Greeting string
	// Help answers 도움/help messages.
	Help string
	// Fallback is the echo-style default template; it takes the user message
	// as its single %s verb.
	Fallback string
	// Weather is the fixed payload returned by the weather tool.
	Weather map[string]any
	// Timezone labels time tool results.
	Timezone string
	// Knowledge is the ordered keyword table for this deployment.
	Knowledge []knowledge.Entry
}

// FallbackReply renders the echo-style default response for a message.
func (p *Profile) FallbackReply(message string) string {
	return fmt.Sprintf(p.Fallback, message)
}

// AWS returns the Bedrock-flavoured deployment profile. It is the default.
func AWS() *Profile {
	return &Profile{
		Name:     "aws",
		Platform: "AWS (mock)",
		Service:  "AWS Agent Backend",
		Greeting: "안녕하세요! AWS AI Agent입니다. 무엇을 도와드릴까요?",
		Help: "저는 다음과 같은 기능을 제공할 수 있습니다:\n" +
			"- 계산기: 수학 연산 (예: '5 + 3 계산해줘')\n" +
			"- 날씨 조회: 현재 날씨 정보\n" +
			"- 시간 조회: 현재 시간\n" +
			"- 지식 검색: AWS, Bedrock, Lambda 등에 대한 정보",
		Fallback: "이해했습니다. '%s'에 대해 답변드리겠습니다. 더 구체적인 질문을 해주시면 더 정확한 답변을 드릴 수 있습니다.",
		Weather: map[string]any{
			"location":    "서울",
			"temperature": "15°C",
			"condition":   "맑음",
			"humidity":    "65%",
			"note":        "이것은 샘플 데이터입니다",
		},
		Timezone: "Asia/Seoul",
		Knowledge: []knowledge.Entry{
			{Keyword: "aws", Fact: "AWS는 Amazon Web Services의 약자로, 클라우드 컴퓨팅 서비스를 제공합니다."},
			{Keyword: "bedrock", Fact: "Amazon Bedrock은 AWS의 완전 관리형 생성형 AI 서비스입니다."},
			{Keyword: "lambda", Fact: "AWS Lambda는 서버리스 컴퓨팅 서비스로, 코드를 실행할 수 있습니다."},
			{Keyword: "agent", Fact: "AI Agent는 자율적인 의사결정과 행동 실행이 가능한 시스템입니다."},
			{Keyword: "rag", Fact: "RAG는 Retrieval-Augmented Generation의 약자로, 지식 기반을 활용한 생성형 AI 접근법입니다."},
		},
	}
}

// GCP returns the Vertex AI flavoured deployment profile.
func GCP() *Profile {
	return &Profile{
		Name:     "gcp",
		Platform: "GCP (mock)",
		Service:  "GCP Agent Backend",
		Greeting: "안녕하세요! GCP AI Agent입니다. 무엇을 도와드릴까요?",
		Help: "저는 다음과 같은 기능을 제공할 수 있습니다:\n" +
			"- 계산기: 예) \"5 + 3 계산해줘\"\n" +
			"- 날씨 조회(모킹)\n" +
			"- 시간 조회\n" +
			"- GCP / Vertex AI / Agent Engine 관련 기본 설명",
		Fallback: "GCP 기반 에이전트로서 '%s'에 대해 답변을 시도합니다. 더 구체적인 질문을 주시면 좋습니다.",
		Weather: map[string]any{
			"location":    "서울 (샘플)",
			"temperature": "20°C",
			"condition":   "맑음",
			"note":        "실제 GCP API 대신 모킹된 데이터입니다.",
		},
		Timezone: "Asia/Seoul",
		Knowledge: []knowledge.Entry{
			{Keyword: "gcp", Fact: "GCP(Google Cloud Platform)는 Google의 클라우드 플랫폼으로, 다양한 컴퓨팅/스토리지/AI 서비스를 제공합니다."},
			{Keyword: "vertex ai", Fact: "Vertex AI는 통합 ML 플랫폼으로, 모델 학습/배포/관리 및 Agent Engine을 제공합니다."},
			{Keyword: "agent engine", Fact: "Vertex AI Agent Engine은 에이전트 실행과 멀티 에이전트 패턴을 위한 관리형 런타임입니다."},
			{Keyword: "vertex ai search", Fact: "Vertex AI Search는 벡터 검색과 전체 텍스트 검색을 제공하여 RAG를 구현할 수 있습니다."},
			{Keyword: "cloud run", Fact: "Cloud Run은 컨테이너 기반 서버리스 실행 환경으로, HTTP 기반 마이크로서비스에 적합합니다."},
			{Keyword: "cloud functions", Fact: "Cloud Functions는 이벤트 기반 서버리스 함수 실행 환경입니다."},
			{Keyword: "firestore", Fact: "Firestore는 서버리스 NoSQL 데이터베이스로, 세션 및 상태 저장에 적합합니다."},
		},
	}
}

// Azure returns the Azure OpenAI flavoured deployment profile.
func Azure() *Profile {
	return &Profile{
		Name:     "azure",
		Platform: "Azure (mock)",
		Service:  "Azure Agent Backend",
		Greeting: "안녕하세요! Azure AI Agent입니다. 무엇을 도와드릴까요?",
		Help: "저는 다음과 같은 기능을 제공할 수 있습니다:\n" +
			"- 계산기: 예) \"5 + 3 계산해줘\"\n" +
			"- 날씨 조회(모킹)\n" +
			"- 시간 조회\n" +
			"- Azure / Azure OpenAI / Azure AI Search 기본 설명",
		Fallback: "Azure 기반 에이전트로서 '%s'에 대해 답변을 시도합니다. 더 구체적인 질문을 주시면 좋습니다.",
		Weather: map[string]any{
			"location":    "서울",
			"temperature": "17°C",
			"condition":   "흐림",
			"note":        "Azure Functions 대신 모킹된 데이터입니다.",
		},
		Timezone: "Asia/Seoul",
		Knowledge: []knowledge.Entry{
			{Keyword: "azure", Fact: "Azure는 Microsoft의 클라우드 플랫폼으로, 다양한 IaaS/PaaS/SaaS 서비스를 제공합니다."},
			{Keyword: "azure openai", Fact: "Azure OpenAI Service는 GPT 계열 모델을 Azure 상에서 안전하게 사용할 수 있게 해주는 서비스입니다."},
			{Keyword: "azure ai search", Fact: "Azure AI Search는 벡터 검색과 전체 텍스트 검색을 제공하는 검색 서비스입니다."},
			{Keyword: "functions", Fact: "Azure Functions는 서버리스 함수 실행 환경으로, HTTP 트리거 등을 이용해 코드를 실행할 수 있습니다."},
			{Keyword: "logic apps", Fact: "Azure Logic Apps는 워크플로우 오케스트레이션을 위한 서버리스 서비스입니다."},
			{Keyword: "rag", Fact: "RAG는 Retrieval-Augmented Generation으로, 검색된 지식을 프롬프트에 합쳐 더 정확한 응답을 생성하는 패턴입니다."},
		},
	}
}

// ByName resolves a profile selector. Unknown names fall back to AWS so a
// misconfigured deployment still serves requests.
func ByName(name string) *Profile {
	switch name {
	case "gcp":
		return GCP()
	case "azure":
		return Azure()
	default:
		return AWS()
	}
}
