package validator

import (
	"fmt"

	"github.com/amp-labs/amp-dependent/errors"
	"github.com/amp-labs/amp-dependent/optional"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeAccepted = "accepted"
	outcomeRejected = "rejected"
)

// Metrics counts validator outcomes. It is opt-in: only validators wrapped with
// Instrument report to it, and counting never changes a validator's result.
type Metrics struct {
	// runs counts every instrumented Run call.
	//
	// Labels:
	//   - validator: the name given to Instrument (e.g. "digits_3").
	//   - outcome: "accepted" or "rejected".
	//
	// Usage example in dashboards:
	//   - sum(rate(validator_runs_total{outcome="rejected"}[5m])) by (validator)
	runs *prometheus.CounterVec
}

// NewMetrics registers the validator collectors with reg. Registering twice with
// the same registerer reuses the collector that is already there.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "validator_runs_total",
		Help: "The total number of instrumented validator runs, by outcome",
	}, []string{"validator", "outcome"})

	if err := reg.Register(runs); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return nil, fmt.Errorf("registering validator metrics: %w", err)
		}

		existing, ok := already.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, fmt.Errorf("registering validator metrics: %w", err)
		}

		runs = existing
	}

	return &Metrics{runs: runs}, nil
}

// Runs returns the underlying counter, mostly for tests and custom exposition.
func (m *Metrics) Runs() *prometheus.CounterVec {
	return m.runs
}

func (m *Metrics) observe(name string, accepted bool) {
	outcome := outcomeRejected
	if accepted {
		outcome = outcomeAccepted
	}

	m.runs.WithLabelValues(name, outcome).Inc()
}

// Instrument returns a validator with the same configuration and results as v
// that also counts its outcomes under name. A nil Metrics returns v unchanged.
//
// A run counts as accepted when v's result is present. For validators built with
// Optional that is every run, since the outer optional is always Some; use
// InstrumentSome for those.
func Instrument[C, In, Out any](name string, v Validator[C, In, Out], m *Metrics) Validator[C, In, Out] {
	return instrument(name, v, m, optional.Value[Out].NonEmpty)
}

// InstrumentSome is Instrument for validators whose output is itself optional,
// the ones dependent.BindSome consumes. A run counts as accepted only when the
// flattened result is present, so Some(None) is a rejection here as it is for
// the factory.
func InstrumentSome[C, In, Out any](
	name string,
	v Validator[C, In, optional.Value[Out]],
	m *Metrics,
) Validator[C, In, optional.Value[Out]] {
	return instrument(name, v, m, func(result optional.Value[optional.Value[Out]]) bool {
		return optional.Flatten(result).NonEmpty()
	})
}

func instrument[C, In, Out any](
	name string,
	v Validator[C, In, Out],
	m *Metrics,
	accepted func(optional.Value[Out]) bool,
) Validator[C, In, Out] {
	if m == nil {
		return v
	}

	// Both series exist from the start so rate() queries see a zero instead of no data.
	m.runs.WithLabelValues(name, outcomeAccepted).Add(0)
	m.runs.WithLabelValues(name, outcomeRejected).Add(0)

	return New(v.config, func(_ C, candidate In) optional.Value[Out] {
		result := v.Run(candidate)
		m.observe(name, accepted(result))

		return result
	})
}
