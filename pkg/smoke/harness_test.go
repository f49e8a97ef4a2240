package smoke

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hueshift-cloud/hueshift/pkg/sentiment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newPredictionBackend serves the prediction surface with a freshly fitted
// classifier, optionally failing every failEvery-th predict call.
func newPredictionBackend(t *testing.T, failEvery int) *httptest.Server {
	classifier := sentiment.NewDefaultClassifier()

	calls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/predict", func(w http.ResponseWriter, r *http.Request) {
		calls++
		if failEvery > 0 && calls%failEvery == 0 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		req := map[string]string{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		prediction := classifier.Predict(req["review"])
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"sentiment":  prediction.Sentiment,
			"confidence": prediction.Confidence,
		})
	})

	return httptest.NewServer(mux)
}

func newTestHarness(t *testing.T, baseURL string, requests int) Harness {
	h, err := NewHarness(HarnessSpec{
		BaseURL:  baseURL,
		Requests: requests,
		Timeout:  5 * time.Second,
	})
	require.NoError(t, err)
	return h
}

func TestHarnessRequiresAnAddress(t *testing.T) {
	_, err := NewHarness(HarnessSpec{})
	require.Error(t, err)
}

func TestRunAllChecksPass(t *testing.T) {
	backend := newPredictionBackend(t, 0)
	defer backend.Close()

	report, err := newTestHarness(t, backend.URL, 20).Run()
	require.NoError(t, err)

	assert.Equal(t, 20, report.Passed)
	assert.Equal(t, 0, report.Failed)
	assert.Equal(t, 20, report.Requests())
	assert.True(t, report.Min() <= report.Median())
	assert.True(t, report.Median() <= report.Max())
	assert.True(t, report.Mean() > 0)
}

func TestCheckHealthRejectsWrongStatus(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "degraded"})
	}))
	defer backend.Close()

	err := newTestHarness(t, backend.URL, 1).CheckHealth()
	require.Error(t, err)
}

func TestCheckHealthRejectsNon200(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer backend.Close()

	err := newTestHarness(t, backend.URL, 1).CheckHealth()
	require.Error(t, err)
}

func TestRunLoadCountsFailuresWithoutHalting(t *testing.T) {
	backend := newPredictionBackend(t, 5)
	defer backend.Close()

	report := newTestHarness(t, backend.URL, 0).RunLoad(100)

	assert.Equal(t, 100, report.Requests())
	assert.Equal(t, 20, report.Failed)
	assert.Equal(t, 80, report.Passed)
}

func TestRunHaltsOnScenarioFailure(t *testing.T) {
	// A backend that always reports positive fails the negative check.
	predicts := 0
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/health" {
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
			return
		}
		predicts++
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"sentiment":  "positive",
			"confidence": 99.0,
		})
	}))
	defer backend.Close()

	_, err := newTestHarness(t, backend.URL, 10).Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative")

	// the neutral check and the load loop never fire
	assert.Equal(t, 2, predicts)
}

func TestLoadReportStats(t *testing.T) {
	report := &LoadReport{
		Passed:    4,
		durations: []time.Duration{40, 10, 30, 20},
	}

	assert.Equal(t, time.Duration(10), report.Min())
	assert.Equal(t, time.Duration(40), report.Max())
	assert.Equal(t, time.Duration(25), report.Mean())
	assert.Equal(t, time.Duration(25), report.Median())
}
