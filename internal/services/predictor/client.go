package predictor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"HousePrice/internal/domain/models"
	domsvc "HousePrice/internal/domain/service"
	xhttp "HousePrice/pkg/http"

	"github.com/google/uuid"
)

const (
	HealthPath  = "/api/health"
	PredictPath = "/api/predict"
)

// ErrUnavailable wraps every failure where the service produced no response.
var ErrUnavailable = errors.New("prediction service unavailable")

// RemoteError is a non-2xx answer from the prediction service.
type RemoteError struct {
	StatusCode int
	// Message is the body's "error" field; empty when the body had none.
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("prediction service returned %d", e.StatusCode)
	}
	return fmt.Sprintf("prediction service returned %d: %s", e.StatusCode, e.Message)
}

// HTTPClient talks to the prediction service over HTTP.
type HTTPClient struct {
	client *xhttp.Client
	newID  func() string
}

// NewHTTPClient builds a client for the service rooted at baseURL.
func NewHTTPClient(baseURL string, timeout time.Duration, opts ...xhttp.ClientOption) *HTTPClient {
	opts = append([]xhttp.ClientOption{xhttp.WithTimeout(timeout)}, opts...)
	return &HTTPClient{
		client: xhttp.NewClient(baseURL, opts...),
		newID:  uuid.NewString,
	}
}

// BaseURL returns the service root this client calls.
func (c *HTTPClient) BaseURL() string { return c.client.BaseURL() }

// Health issues one GET /api/health. Any 2xx is healthy.
func (c *HTTPClient) Health(ctx context.Context) error {
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		Path:   HealthPath,
	}, nil)
	return classify(err)
}

// Predict issues one POST /api/predict with in as the JSON body.
func (c *HTTPClient) Predict(ctx context.Context, in models.FormInput) (models.PredictionResult, error) {
	var res models.PredictionResult
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:  xhttp.MethodPost,
		Path:    PredictPath,
		Headers: map[string]string{"X-Request-ID": c.newID()},
		Body:    in,
	}, &res)
	if err != nil {
		return models.PredictionResult{}, classify(err)
	}
	return res, nil
}

func classify(err error) error {
	if err == nil {
		return nil
	}
	var te *xhttp.TransportError
	if errors.As(err, &te) {
		return fmt.Errorf("%w: %v", ErrUnavailable, te)
	}
	var se *xhttp.StatusError
	if errors.As(err, &se) {
		msg, _ := se.ErrorMessage()
		return &RemoteError{StatusCode: se.StatusCode, Message: msg}
	}
	return err
}

var _ domsvc.RemotePredictor = (*HTTPClient)(nil)
