package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelForScore_Boundaries(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  Label
	}{
		{name: "exactly positive threshold stays neutral", score: 0.3, want: LabelNeutral},
		{name: "just above positive threshold", score: 0.31, want: LabelPositive},
		{name: "exactly negative threshold stays neutral", score: -0.3, want: LabelNeutral},
		{name: "just below negative threshold", score: -0.31, want: LabelNegative},
		{name: "zero", score: 0, want: LabelNeutral},
		{name: "strongly positive", score: 0.95, want: LabelPositive},
		{name: "strongly negative", score: -0.95, want: LabelNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LabelForScore(tt.score))
		})
	}
}

func TestClassify_EmptyText(t *testing.T) {
	c := NewClassifier()

	label, score := c.Classify("")
	assert.Equal(t, LabelNeutral, label)
	assert.InDelta(t, 0, score, 0.001)

	label, score = c.Classify("   \t\n")
	assert.Equal(t, LabelNeutral, label)
	assert.InDelta(t, 0, score, 0.001)
}

func TestClassify_Deterministic(t *testing.T) {
	c := NewClassifier()
	text := "The new dashboard is great, but the export is still slow."

	label1, score1 := c.Classify(text)
	label2, score2 := c.Classify(text)

	assert.Equal(t, label1, label2)
	assert.Equal(t, score1, score2)
}

func TestClassify_Polarity(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name string
		text string
		want Label
	}{
		{name: "negative text", text: "This is terrible and broken", want: LabelNegative},
		{name: "positive text", text: "I love this product, it works great", want: LabelPositive},
		{name: "neutral text", text: "The report opens on the second tab", want: LabelNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, score := c.Classify(tt.text)
			assert.Equal(t, tt.want, label)
			assert.GreaterOrEqual(t, score, -1.0)
			assert.LessOrEqual(t, score, 1.0)
			switch tt.want {
			case LabelNegative:
				assert.Less(t, score, negativeThreshold)
			case LabelPositive:
				assert.Greater(t, score, positiveThreshold)
			}
		})
	}
}
