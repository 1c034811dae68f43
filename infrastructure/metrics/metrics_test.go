package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveQuery(t *testing.T) {
	before := testutil.CollectAndCount(BackendQueryDuration)

	ObserveQuery("test-backend", "observe_ok", time.Now(), nil)
	ObserveQuery("test-backend", "observe_err", time.Now(), errors.New("boom"))

	assert.Equal(t, before+2, testutil.CollectAndCount(BackendQueryDuration))
}

func TestRecordCategoryLookup(t *testing.T) {
	RecordCategoryLookup("hit")
	RecordCategoryLookup("hit")
	RecordCategoryLookup("miss")

	assert.GreaterOrEqual(t, testutil.ToFloat64(CategoryLookupsTotal.WithLabelValues("hit")), float64(2))
	assert.GreaterOrEqual(t, testutil.ToFloat64(CategoryLookupsTotal.WithLabelValues("miss")), float64(1))
}

func TestRecordMalformedToken(t *testing.T) {
	before := testutil.ToFloat64(MalformedTokensTotal.WithLabelValues("test-backend"))
	RecordMalformedToken("test-backend")
	assert.Equal(t, before+1, testutil.ToFloat64(MalformedTokensTotal.WithLabelValues("test-backend")))
}
