package tool

import (
	"testing"

	"github.com/hupe1980/agentsim/core"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name    string
		message string
		want    core.Category
	}{
		{"calculator keyword", "5 + 3 계산해줘", core.CategoryCalculator},
		{"calculator verb", "3이랑 4 더하기 해봐", core.CategoryCalculator},
		{"bare expression", "10/2", core.CategoryCalculator},
		{"expression without spaces", "123*456은?", core.CategoryCalculator},
		{"weather keyword", "오늘 날씨 어때?", core.CategoryWeather},
		{"temperature keyword", "지금 기온 알려줘", core.CategoryWeather},
		{"time keyword", "지금 시간 알려줘", core.CategoryTime},
		{"time phrase", "지금 몇 시야?", core.CategoryTime},
		{"no match", "안녕하세요", core.CategoryNone},
		{"empty message", "", core.CategoryNone},
		{"whitespace only", "   ", core.CategoryNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.message))
		})
	}
}

func TestClassify_OrderPrecedence(t *testing.T) {
	// Contains both a numeric expression and a time keyword; Calculator wins.
	assert.Equal(t, core.CategoryCalculator, Classify("지금 시간에 5 + 3 계산해줘"))
	assert.Equal(t, core.CategoryCalculator, Classify("시간당 10 * 8 얼마야"))

	// Weather outranks Time.
	assert.Equal(t, core.CategoryWeather, Classify("이 시간 날씨 어때"))
}

func TestClassify_CaseInsensitive(t *testing.T) {
	// Rules operate on the lowercased message; mixed-case ASCII around the
	// keywords must not change the outcome.
	assert.Equal(t, core.CategoryWeather, Classify("SEOUL 날씨 PLEASE"))
}
