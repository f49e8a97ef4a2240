package smoke

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/hueshift-cloud/hueshift/core/except"
)

const HarnessKey = "Harness"

const (
	healthPath  = "/health"
	predictPath = "/predict"
)

const (
	reviewPositive = "This movie was fantastic!"
	reviewNegative = "This movie was terrible!"
	reviewNeutral  = "This movie was okay."
)

// loadReviews is the fixed cycle of inputs for the load check.
var loadReviews = []string{
	"This movie was fantastic!",
	"This movie was terrible!",
	"This movie was okay.",
	"An absolute masterpiece.",
	"A complete waste of time.",
	"Neither good nor bad, just okay.",
	"I loved every minute of it.",
	"I hated every minute of it.",
	"It was fine, nothing special.",
}

// Harness smoke-tests a deployed prediction instance. All checks run
// sequentially with a single in-flight request. The first failing scenario
// check halts the run; failures inside the load check are only counted.
type Harness interface {
	Run() (*LoadReport, error)
	CheckHealth() error
	CheckPositive() error
	CheckNegative() error
	CheckNeutral() error
	RunLoad(n int) *LoadReport
}

type HarnessSpec struct {
	BaseURL  string
	Requests int
	Timeout  time.Duration
}

func NewHarness(spec HarnessSpec) (Harness, error) {
	if spec.BaseURL == "" {
		return nil, except.NewError("A canary instance address is required.", except.ErrInvalid)
	}
	if spec.Requests <= 0 {
		spec.Requests = 100
	}

	return &harness{
		baseURL:  spec.BaseURL,
		requests: spec.Requests,
		client: &http.Client{
			Timeout: spec.Timeout,
		},
	}, nil
}

type harness struct {
	baseURL  string
	requests int
	client   *http.Client
}

func (h *harness) Run() (*LoadReport, error) {
	checks := []func() error{h.CheckHealth, h.CheckPositive, h.CheckNegative, h.CheckNeutral}
	for _, check := range checks {
		if err := check(); err != nil {
			return nil, err
		}
	}

	return h.RunLoad(h.requests), nil
}

func (h *harness) CheckHealth() error {
	res, err := h.client.Get(h.baseURL + healthPath)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return except.NewError("Expected %s to return 200 but got %d", except.ErrInvalid, healthPath, res.StatusCode)
	}

	body := map[string]interface{}{}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return err
	}

	if body["status"] != "ok" {
		return except.NewError("Expected a status of ok but got %v", except.ErrInvalid, body["status"])
	}

	return nil
}

func (h *harness) CheckPositive() error {
	return h.checkSentiment(reviewPositive, "positive")
}

func (h *harness) CheckNegative() error {
	return h.checkSentiment(reviewNegative, "negative")
}

// CheckNeutral asserts the response shape only. The label for a middling
// review is the classifier's call to make.
func (h *harness) CheckNeutral() error {
	body, _, err := h.predict(reviewNeutral)
	if err != nil {
		return err
	}

	return checkKeys(body)
}

func (h *harness) RunLoad(n int) *LoadReport {
	report := &LoadReport{}
	for i := 0; i < n; i++ {
		review := loadReviews[i%len(loadReviews)]

		body, elapsed, err := h.predict(review)
		if err == nil {
			err = checkKeys(body)
		}

		if err != nil {
			report.Failed++
		} else {
			report.Passed++
		}
		if elapsed > 0 {
			report.durations = append(report.durations, elapsed)
		}
	}
	return report
}

func (h *harness) checkSentiment(review, expected string) error {
	body, _, err := h.predict(review)
	if err != nil {
		return err
	}

	if err := checkKeys(body); err != nil {
		return err
	}

	if body["sentiment"] != expected {
		return except.NewError("Expected the review %q to be %s but got %v",
			except.ErrInvalid, review, expected, body["sentiment"])
	}

	return nil
}

func (h *harness) predict(review string) (map[string]interface{}, time.Duration, error) {
	payload, err := json.Marshal(map[string]string{"review": review})
	if err != nil {
		return nil, 0, err
	}

	start := time.Now()
	res, err := h.client.Post(h.baseURL+predictPath, "application/json", bytes.NewReader(payload))
	elapsed := time.Since(start)
	if err != nil {
		return nil, elapsed, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, elapsed, except.NewError("Expected %s to return a 2xx but got %d",
			except.ErrInvalid, predictPath, res.StatusCode)
	}

	body := map[string]interface{}{}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, elapsed, err
	}

	return body, elapsed, nil
}

func checkKeys(body map[string]interface{}) error {
	for _, key := range []string{"sentiment", "confidence"} {
		if _, ok := body[key]; !ok {
			return except.NewError("The response is missing the %s key", except.ErrInvalid, key)
		}
	}
	return nil
}
