package metrics

import (
	"testing"

	"HousePrice/internal/domain/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	r := NewWith(prometheus.NewRegistry())

	r.RecordPrediction(models.SourceFallback, 585000)
	r.RecordPrediction(models.SourceFallback, 100000)
	r.RecordPrediction(models.SourceRemote, 420000)
	r.RecordFailure("validation")
	r.RecordLiveness(true)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.predictions.WithLabelValues("fallback")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.predictions.WithLabelValues("remote")))
	assert.Equal(t, 100000.0, testutil.ToFloat64(r.lastPrice.WithLabelValues("fallback")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.failures.WithLabelValues("validation")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.live))

	r.RecordLiveness(false)
	assert.Equal(t, 0.0, testutil.ToFloat64(r.live))
}
