package sentiment

import (
	"math"
	"strings"
	"unicode"
)

const ClassifierKey = "Classifier"

type Prediction struct {
	Sentiment string

	// Confidence is the top-class probability as a percentage.
	Confidence float64
}

// Classifier is fitted once at construction and immutable afterwards, so it
// is safe for concurrent use by request handlers.
type Classifier interface {
	Predict(review string) Prediction
}

// multinomial naive Bayes over a bag of words with add-one smoothing.
type naiveBayes struct {
	classes     []string
	logPriors   map[string]float64
	wordCounts  map[string]map[string]int
	classTotals map[string]int
	vocabSize   int
}

// NewDefaultClassifier fits the embedded corpus.
func NewDefaultClassifier() Classifier {
	return NewClassifier(trainingSamples)
}

func NewClassifier(samples []Sample) Classifier {
	nb := &naiveBayes{
		logPriors:   map[string]float64{},
		wordCounts:  map[string]map[string]int{},
		classTotals: map[string]int{},
	}

	docCounts := map[string]int{}
	vocab := map[string]struct{}{}

	for _, sample := range samples {
		if _, ok := nb.wordCounts[sample.Label]; !ok {
			nb.classes = append(nb.classes, sample.Label)
			nb.wordCounts[sample.Label] = map[string]int{}
		}
		docCounts[sample.Label]++

		for _, token := range tokenize(sample.Text) {
			nb.wordCounts[sample.Label][token]++
			nb.classTotals[sample.Label]++
			vocab[token] = struct{}{}
		}
	}

	nb.vocabSize = len(vocab)
	for _, class := range nb.classes {
		nb.logPriors[class] = math.Log(float64(docCounts[class]) / float64(len(samples)))
	}

	return nb
}

func (n *naiveBayes) Predict(review string) Prediction {
	tokens := tokenize(review)

	scores := make([]float64, len(n.classes))
	for i, class := range n.classes {
		score := n.logPriors[class]
		denom := float64(n.classTotals[class] + n.vocabSize)
		for _, token := range tokens {
			score += math.Log(float64(n.wordCounts[class][token]+1) / denom)
		}
		scores[i] = score
	}

	best := 0
	for i := range scores {
		if scores[i] > scores[best] {
			best = i
		}
	}

	// log scores to normalized probabilities
	var sum float64
	for i := range scores {
		sum += math.Exp(scores[i] - scores[best])
	}

	return Prediction{
		Sentiment:  n.classes[best],
		Confidence: 100 / sum,
	}
}

func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
