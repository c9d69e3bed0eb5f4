package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCountersIncrement(t *testing.T) {
	before := testutil.ToFloat64(BoxesCreatedTotal)
	BoxesCreatedTotal.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(BoxesCreatedTotal))

	errorsBefore := testutil.ToFloat64(HTTPErrorsTotal.WithLabelValues("not_found"))
	HTTPErrorsTotal.WithLabelValues("not_found").Inc()
	assert.Equal(t, errorsBefore+1, testutil.ToFloat64(HTTPErrorsTotal.WithLabelValues("not_found")))
}
