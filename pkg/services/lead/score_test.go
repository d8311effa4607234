package lead

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		signals  Signals
		expected int
	}{
		{
			name:     "empty signals",
			signals:  Signals{},
			expected: 0,
		},
		{
			name: "full contact with mid budget and two platforms",
			signals: Signals{
				Email:     "a@b.com",
				Company:   "X",
				Phone:     "555",
				Budget:    "5k-10k",
				Platforms: []string{"google", "meta"},
			},
			// 10 + 20 + 15 + 20 + 10
			expected: 75,
		},
		{
			name:     "email only",
			signals:  Signals{Email: "a@b.com"},
			expected: 10,
		},
		{
			name:     "unknown budget bracket scores nothing",
			signals:  Signals{Budget: "a-lot"},
			expected: 0,
		},
		{
			name: "top budget bracket",
			signals: Signals{
				Company: "X",
				Budget:  "10k+",
			},
			expected: 50,
		},
		{
			name: "many platforms are capped at 100",
			signals: Signals{
				Email:   "a@b.com",
				Company: "X",
				Phone:   "555",
				Budget:  "10k+",
				Platforms: []string{
					"google", "meta", "tiktok", "linkedin", "x",
					"pinterest", "snapchat", "reddit",
				},
			},
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Score(tt.signals))
		})
	}
}

func TestScore_Bounds(t *testing.T) {
	inputs := []Signals{
		{},
		{Email: "a@b.com"},
		{Platforms: make([]string, 50)},
		{Email: "a@b.com", Company: "X", Phone: "1", Budget: "10k+", Platforms: make([]string, 30)},
	}
	for _, s := range inputs {
		score := Score(s)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}
