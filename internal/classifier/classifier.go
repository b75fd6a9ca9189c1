// Package classifier wraps the pretrained complaint-classification model.
// The model itself runs out of process behind a small HTTP inference server;
// this adapter sends text to it, takes the highest-scoring class index and
// maps it back to a human-readable category via the label decoder artifact
// that was produced together with the model.
package classifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"complaintdesk/backend/internal/config"
)

// Classifier assigns a category to raw complaint text. Implementations must
// never fail the caller: classification is best-effort and a degraded
// classifier returns config.CategoryUnavailable instead of an error.
type Classifier interface {
	Classify(text string) string
}

// Unavailable is the degraded classifier used when the model or the label
// decoder failed to initialize. Intake keeps working against it.
type Unavailable struct{}

func (Unavailable) Classify(string) string { return config.CategoryUnavailable }

// ModelService talks to the inference server. The label set is loaded once at
// construction and is immutable afterwards, so concurrent Classify calls are
// safe without locking.
type ModelService struct {
	endpoint string
	labels   []string
	client   *http.Client
}

// NewModelService loads the label decoder from labelsPath (a JSON array
// ordered by class index) and returns an adapter for the inference server at
// endpoint. It fails if the artifact is missing or empty — the caller should
// fall back to Unavailable in that case.
func NewModelService(endpoint, labelsPath string) (*ModelService, error) {
	data, err := os.ReadFile(labelsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read label decoder %s: %w", labelsPath, err)
	}

	var labels []string
	if err := json.Unmarshal(data, &labels); err != nil {
		return nil, fmt.Errorf("failed to parse label decoder %s: %w", labelsPath, err)
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("label decoder %s contains no labels", labelsPath)
	}

	return &ModelService{
		endpoint: endpoint,
		labels:   labels,
		client:   &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type classifyRequest struct {
	Text string `json:"text"`
}

type classifyResponse struct {
	Scores []float64 `json:"scores"`
}

// Classify runs one inference pass and returns the winning category label.
// Each call is independent: no retries, no batching, no result caching.
// Any transport or decoding failure degrades to config.CategoryUnavailable.
func (m *ModelService) Classify(text string) string {
	body, err := json.Marshal(classifyRequest{Text: text})
	if err != nil {
		log.Printf("ERROR: Failed to encode classify request: %v", err)
		return config.CategoryUnavailable
	}

	resp, err := m.client.Post(m.endpoint+"/classify", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("ERROR: Model server unreachable: %v", err)
		return config.CategoryUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("ERROR: Model server returned status %d", resp.StatusCode)
		return config.CategoryUnavailable
	}

	var result classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Printf("ERROR: Failed to decode model server response: %v", err)
		return config.CategoryUnavailable
	}

	idx := argmax(result.Scores)
	if idx < 0 || idx >= len(m.labels) {
		log.Printf("ERROR: Predicted class index %d has no label (have %d labels)", idx, len(m.labels))
		return config.CategoryUnavailable
	}

	return m.labels[idx]
}

// argmax returns the index of the largest score, or -1 for an empty slice.
func argmax(scores []float64) int {
	best := -1
	for i, score := range scores {
		if best == -1 || score > scores[best] {
			best = i
		}
	}
	return best
}
