package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder_StagnationSetsGaugeValue(t *testing.T) {
	r := NewPrometheusRecorder()
	r.Stagnation("Ins", 42)
	got := testutil.ToFloat64(stagnation.WithLabelValues("Ins"))
	assert.Equal(t, 42.0, got)
}

func TestRecorder_IterationIncrementsCounter(t *testing.T) {
	r := NewPrometheusRecorder()
	before := testutil.ToFloat64(iterations.WithLabelValues("IntraSw"))
	r.Iteration("IntraSw")
	after := testutil.ToFloat64(iterations.WithLabelValues("IntraSw"))
	assert.Equal(t, before+1, after)
}

func TestRecorder_AcceptedSavingsDoesNotPanic(t *testing.T) {
	r := NewPrometheusRecorder()
	assert.NotPanics(t, func() { r.AcceptedSavings(3.14) })
}
