package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestObserveBeforeInitIsNoop(t *testing.T) {
	if queryTotal != nil {
		t.Skip("metrics already initialised")
	}
	assert.NotPanics(t, func() {
		ObserveQuery(QueryStatusRegisters, "relational", ResultSuccess, 3, time.Millisecond)
		ObserveCurrentValueFetch("influx", nil, time.Millisecond)
		IncFlagFallback("enable_influx")
		IncExport(ResultSuccess)
	})
}

func TestObserveQuery(t *testing.T) {
	Init(nil)

	c := queryTotal.WithLabelValues(QueryStatusRegisters, "influx", ResultSuccess)
	before := counterValue(t, c)

	ObserveQuery(QueryStatusRegisters, "influx", "", 12, 5*time.Millisecond)

	assert.Equal(t, before+1, counterValue(t, c))
}

func TestObserveQuery_EmptySource(t *testing.T) {
	Init(nil)

	c := queryTotal.WithLabelValues(QueryParamStandard, "none", ResultNotFound)
	before := counterValue(t, c)

	ObserveQuery(QueryParamStandard, "", ResultNotFound, 0, time.Millisecond)

	assert.Equal(t, before+1, counterValue(t, c))
}

func TestObserveCurrentValueFetch(t *testing.T) {
	Init(nil)

	ok := currentValueFetchTotal.WithLabelValues("relational", ResultSuccess)
	failed := currentValueFetchTotal.WithLabelValues("relational", ResultError)
	okBefore, failedBefore := counterValue(t, ok), counterValue(t, failed)

	ObserveCurrentValueFetch("relational", nil, time.Millisecond)
	ObserveCurrentValueFetch("relational", errors.New("boom"), time.Millisecond)

	assert.Equal(t, okBefore+1, counterValue(t, ok))
	assert.Equal(t, failedBefore+1, counterValue(t, failed))
}

func TestInitIsIdempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Init(nil)
		Init(nil)
	})
}
