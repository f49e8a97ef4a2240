package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictLiterals(t *testing.T) {
	classifier := NewClassifier(trainingSamples)

	tests := []struct {
		review   string
		expected string
	}{
		{"This movie was fantastic!", LabelPositive},
		{"This movie was terrible!", LabelNegative},
	}

	for _, test := range tests {
		prediction := classifier.Predict(test.review)
		assert.Equal(t, test.expected, prediction.Sentiment, "review %q", test.review)
		assert.Greater(t, prediction.Confidence, 0.0)
		assert.LessOrEqual(t, prediction.Confidence, 100.0)
	}
}

func TestPredictNeutralShape(t *testing.T) {
	classifier := NewClassifier(trainingSamples)

	prediction := classifier.Predict("This movie was okay.")
	require.NotEmpty(t, prediction.Sentiment)
	assert.Greater(t, prediction.Confidence, 0.0)
}

func TestPredictIsDeterministic(t *testing.T) {
	classifier := NewClassifier(trainingSamples)

	first := classifier.Predict("A delightful surprise from start to finish")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, classifier.Predict("A delightful surprise from start to finish"))
	}
}

func TestPredictUnknownWords(t *testing.T) {
	classifier := NewClassifier(trainingSamples)

	// Every token out of vocabulary still yields a valid prediction.
	prediction := classifier.Predict("zxqv wvut qqqq")
	assert.NotEmpty(t, prediction.Sentiment)
	assert.Greater(t, prediction.Confidence, 0.0)
	assert.LessOrEqual(t, prediction.Confidence, 100.0)
}
