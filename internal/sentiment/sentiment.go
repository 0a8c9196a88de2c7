// Package sentiment реализует классификацию тональности текста.
//
// Оценка строится на лексиконе VADER (govader): словарные полярности слов
// с эвристиками отрицаний, усилителей и пунктуации сворачиваются в единый
// compound-балл в диапазоне [-1, 1]. Дискретная метка выводится из балла
// по фиксированным порогам.
package sentiment

import (
	"strings"

	"github.com/jonreiter/govader"
)

// Label — дискретная метка тональности.
type Label string

// Возможные метки тональности.
const (
	LabelPositive Label = "positive"
	LabelNeutral  Label = "neutral"
	LabelNegative Label = "negative"
)

// Пороговые значения compound-балла. Значения ровно 0.3 и -0.3
// относятся к нейтральной зоне.
const (
	positiveThreshold = 0.3
	negativeThreshold = -0.3
)

// Classifier вычисляет compound-балл и метку тональности текста.
// Анализатор создаётся один раз и безопасен для конкурентного чтения.
type Classifier struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewClassifier создаёт классификатор с лексиконом VADER по умолчанию.
func NewClassifier() *Classifier {
	return &Classifier{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Classify возвращает метку и compound-балл для текста.
// Результат детерминирован: одинаковый текст даёт одинаковую пару.
// Пустой или пробельный текст классифицируется как нейтральный с баллом 0.
func (c *Classifier) Classify(text string) (Label, float64) {
	if strings.TrimSpace(text) == "" {
		return LabelNeutral, 0
	}
	score := c.analyzer.PolarityScores(text).Compound
	return LabelForScore(score), score
}

// LabelForScore выводит метку из compound-балла по фиксированным порогам.
func LabelForScore(score float64) Label {
	switch {
	case score > positiveThreshold:
		return LabelPositive
	case score < negativeThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}
