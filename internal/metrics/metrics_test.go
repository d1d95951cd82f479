package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	tests := []struct {
		name    string
		counter interface{ Inc() }
		read    func() float64
	}{
		{
			name:    "topup requests",
			counter: TopupRequestsTotal.WithLabelValues(OutcomeRecorded),
			read:    func() float64 { return testutil.ToFloat64(TopupRequestsTotal.WithLabelValues(OutcomeRecorded)) },
		},
		{
			name:    "mark paid",
			counter: MarkPaidTotal.WithLabelValues(OutcomeAlreadyApproved),
			read:    func() float64 { return testutil.ToFloat64(MarkPaidTotal.WithLabelValues(OutcomeAlreadyApproved)) },
		},
		{
			name:    "promotions",
			counter: PromotionsTotal.WithLabelValues("vipii"),
			read:    func() float64 { return testutil.ToFloat64(PromotionsTotal.WithLabelValues("vipii")) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.read()
			tt.counter.Inc()
			assert.Equal(t, before+1, tt.read())
		})
	}
}

func TestHTTPDuration(t *testing.T) {
	HTTPDuration.WithLabelValues("/health", "200").Observe(0.01)
	assert.GreaterOrEqual(t, testutil.CollectAndCount(HTTPDuration), 1)
}
