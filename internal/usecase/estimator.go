package usecase

import (
	"context"
	"errors"
	"html"
	"strings"
	"sync"
	"time"

	"HousePrice/internal/domain/models"
	domsvc "HousePrice/internal/domain/service"
	"HousePrice/internal/form"
	"HousePrice/internal/services/predictor"
	applogger "HousePrice/pkg/logger"

	"github.com/microcosm-cc/bluemonday"
)

const (
	MsgPredictFailed = "Prediction failed. Please try again."
	MsgUnreachable   = "Unable to connect to the prediction service. Please try again later."
)

// ErrStale is returned by Submit when a later submit or a change to the form superseded it.
var ErrStale = errors.New("submission superseded")

// Estimator is the form component: it holds the form state, the liveness
// flag set by the one-time health check, and runs submissions on either the
// remote service or the local fallback formula.
type Estimator struct {
	remote    domsvc.RemotePredictor
	fallback  domsvc.PriceModel
	validator *form.Validator
	metrics   domsvc.Metrics
	log       *applogger.Logger
	policy    *bluemonday.Policy

	mountOnce sync.Once

	mu    sync.Mutex
	state form.State
	live  bool
	gen   uint64
}

func NewEstimator(
	remote domsvc.RemotePredictor,
	fallback domsvc.PriceModel,
	validator *form.Validator,
	metrics domsvc.Metrics,
	log *applogger.Logger,
) *Estimator {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if log == nil {
		log = applogger.Nop()
	}
	return &Estimator{
		remote:    remote,
		fallback:  fallback,
		validator: validator,
		metrics:   metrics,
		log:       log.Component("estimator"),
		policy:    bluemonday.StrictPolicy(),
	}
}

// Mount runs the health check. Only the first call reaches the service; later
// calls return the recorded flag. Check failures are logged, never surfaced.
func (e *Estimator) Mount(ctx context.Context) bool {
	e.mountOnce.Do(func() {
		live := false
		if e.remote != nil {
			start := time.Now()
			err := e.remote.Health(ctx)
			e.metrics.RecordLatency("health", time.Since(start).Seconds())
			if err != nil {
				e.log.Warn("prediction service not reachable, using fallback estimates", applogger.Error(err))
			} else {
				live = true
				e.log.Info("prediction service reachable")
			}
		}
		e.metrics.RecordLiveness(live)

		e.mu.Lock()
		e.live = live
		e.mu.Unlock()
	})
	return e.Live()
}

// Live reports the liveness flag.
func (e *Estimator) Live() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.live
}

// State returns a copy of the current form state.
func (e *Estimator) State() form.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

// Edit updates one field. A submission still in flight no longer matches
// the form and is discarded.
func (e *Estimator) Edit(field models.Field, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.state.Edit(field, value); err != nil {
		return err
	}
	e.supersede()
	return nil
}

// Fill replaces all five fields and discards any submission in flight.
func (e *Estimator) Fill(in models.FormInput) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.Fill(in)
	e.supersede()
}

// Reset clears the form and discards any submission still in flight.
func (e *Estimator) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.Reset()
	e.supersede()
}

// supersede invalidates every submission started so far. Callers hold mu.
func (e *Estimator) supersede() {
	e.gen++
	e.state.Loading = false
}

// Submit validates the current input and requests a prediction. The
// returned state is what the form should show; the error is non-nil when
// the submission failed or was superseded.
func (e *Estimator) Submit(ctx context.Context) (form.State, error) {
	e.mu.Lock()
	in := e.state.Input
	features, err := e.validator.Validate(in)
	if err != nil {
		e.supersede()
		e.state.Fail(err.Error())
		e.metrics.RecordFailure("validation")
		snapshot := e.state.Clone()
		e.mu.Unlock()
		return snapshot, err
	}
	e.gen++
	gen := e.gen
	live := e.live
	e.state.Loading = true
	e.state.Error = ""
	e.state.Success = false
	e.mu.Unlock()

	start := time.Now()
	var (
		res    models.PredictionResult
		source models.Source
		msg    string
	)
	if live {
		source = models.SourceRemote
		res, err = e.remote.Predict(ctx, in)
		if err != nil {
			msg = e.userMessage(err)
		}
	} else {
		source = models.SourceFallback
		res = predictLocally(e.fallback, features, in)
	}
	e.metrics.RecordLatency("predict_"+string(source), time.Since(start).Seconds())

	e.mu.Lock()
	defer e.mu.Unlock()
	if gen != e.gen {
		e.log.Debug("discarding superseded prediction", applogger.Uint64("generation", gen))
		return e.state.Clone(), ErrStale
	}
	if err != nil {
		e.state.Fail(msg)
		e.metrics.RecordFailure(failureKind(err))
		e.log.Warn("prediction failed", applogger.Error(err))
		return e.state.Clone(), err
	}
	e.state.Succeed(res, source)
	e.metrics.RecordPrediction(source, res.PredictedPrice)
	e.log.Debug("prediction served",
		applogger.String("source", string(source)),
		applogger.Float64("price", res.PredictedPrice),
	)
	return e.state.Clone(), nil
}

// userMessage picks the text shown for a failed remote prediction. Remote
// error text is reduced to plain text before display.
func (e *Estimator) userMessage(err error) string {
	var re *predictor.RemoteError
	switch {
	case errors.As(err, &re):
		if msg := strings.TrimSpace(html.UnescapeString(e.policy.Sanitize(re.Message))); msg != "" {
			return msg
		}
		return MsgPredictFailed
	case errors.Is(err, predictor.ErrUnavailable),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return MsgUnreachable
	default:
		return MsgPredictFailed
	}
}

func failureKind(err error) string {
	var re *predictor.RemoteError
	switch {
	case errors.As(err, &re):
		return "remote"
	case errors.Is(err, predictor.ErrUnavailable):
		return "transport"
	default:
		return "decode"
	}
}

type noopMetrics struct{}

func (noopMetrics) RecordPrediction(models.Source, float64) {}
func (noopMetrics) RecordFailure(string)                    {}
func (noopMetrics) RecordLatency(string, float64)           {}
func (noopMetrics) RecordLiveness(bool)                     {}
