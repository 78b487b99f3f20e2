package predictor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"HousePrice/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	for _, tc := range []struct {
		status int
		ok     bool
	}{
		{http.StatusOK, true},
		{http.StatusNoContent, true},
		{http.StatusServiceUnavailable, false},
		{http.StatusNotFound, false},
	} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, HealthPath, r.URL.Path)
			w.WriteHeader(tc.status)
		}))
		err := NewHTTPClient(srv.URL, time.Second).Health(context.Background())
		if tc.ok {
			assert.NoError(t, err, tc.status)
		} else {
			assert.Error(t, err, tc.status)
		}
		srv.Close()
	}
}

func TestHealth_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	err := NewHTTPClient(srv.URL, time.Second).Health(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestPredict_AdoptsBodyVerbatim(t *testing.T) {
	in := models.FormInput{Bedrooms: "3", Bathrooms: "2", SqftLiving: "2000", Floors: "2", Age: "10"}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, PredictPath, r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var got models.FormInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, in, got)

		_, _ = w.Write([]byte(`{"predicted_price":612345.67,"formatted_price":"$612,345.67",` +
			`"input_features":{"bedrooms":3.0,"bathrooms":2.0,"sqft_living":2000.0,"floors":2.0,"age":10.0}}`))
	}))
	defer srv.Close()

	res, err := NewHTTPClient(srv.URL, time.Second).Predict(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 612345.67, res.PredictedPrice)
	assert.Equal(t, "$612,345.67", res.FormattedPrice)
	assert.Equal(t, "3.0", res.InputFeatures.Bedrooms)
}

func TestPredict_RemoteErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Missing required field: age"}`))
	}))
	defer srv.Close()

	_, err := NewHTTPClient(srv.URL, time.Second).Predict(context.Background(), models.FormInput{})

	var re *RemoteError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, http.StatusBadRequest, re.StatusCode)
	assert.Equal(t, "Missing required field: age", re.Message)
}

func TestPredict_RemoteErrorWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewHTTPClient(srv.URL, time.Second).Predict(context.Background(), models.FormInput{})

	var re *RemoteError
	require.True(t, errors.As(err, &re))
	assert.Empty(t, re.Message)
}

func TestPredict_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	_, err := NewHTTPClient(srv.URL, 20*time.Millisecond).Predict(context.Background(), models.FormInput{})
	assert.ErrorIs(t, err, ErrUnavailable)
}
