package observability

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(habitMutations.WithLabelValues("toggle"))
	RecordMutation("toggle")
	RecordMutation("toggle")
	assert.Equal(t, before+2, testutil.ToFloat64(habitMutations.WithLabelValues("toggle")))

	before = testutil.ToFloat64(historyEvents.WithLabelValues("false"))
	RecordHistoryEvent(false)
	assert.Equal(t, before+1, testutil.ToFloat64(historyEvents.WithLabelValues("false")))

	before = testutil.ToFloat64(dayRollovers)
	RecordRollover()
	assert.Equal(t, before+1, testutil.ToFloat64(dayRollovers))

	before = testutil.ToFloat64(storageRetries.WithLabelValues("get"))
	RecordStorageRetry("get")
	assert.Equal(t, before+1, testutil.ToFloat64(storageRetries.WithLabelValues("get")))
}

func TestRecordRequest(t *testing.T) {
	RecordRequest(http.MethodGet, "/api/v1/habits", http.StatusOK, 10*time.Millisecond)
	assert.Equal(t, 1, testutil.CollectAndCount(httpRequests, "habitlog_http_request_duration_seconds"))
}
