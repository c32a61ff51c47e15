package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	// Register should be safe to call multiple times
	Register()
	Register()

	assert.NotPanics(t, func() {
		IncHTTP("test_route")
		ObserveBackend("GET", 200, 15*time.Millisecond)
		IncGuard("allow")
		IncNotice("error")
	})
}

func TestIncExportResultLabel(t *testing.T) {
	before := testutil.ToFloat64(exports.WithLabelValues("order_invoice", "error"))
	IncExport("order_invoice", errors.New("boom"))
	after := testutil.ToFloat64(exports.WithLabelValues("order_invoice", "error"))
	assert.Equal(t, before+1, after)

	okBefore := testutil.ToFloat64(exports.WithLabelValues("order_invoice", "ok"))
	IncExport("order_invoice", nil)
	assert.Equal(t, okBefore+1, testutil.ToFloat64(exports.WithLabelValues("order_invoice", "ok")))
}

func TestObserveBackendStatusLabel(t *testing.T) {
	before := testutil.ToFloat64(backendRequests.WithLabelValues("POST", "0"))
	ObserveBackend("POST", 0, time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(backendRequests.WithLabelValues("POST", "0")))
}
