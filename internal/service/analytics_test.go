package service_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/titanic-api/internal/errs"
	"github.com/deppfellow/titanic-api/internal/service"
)

func fareSource(fares ...any) *stubSource {
	src := &stubSource{columns: []string{"PassengerId", "Name", "Age", "Fare"}}
	for i, fare := range fares {
		src.records = append(src.records, passengerRecord(int64(i+1), "Passenger", fare))
	}
	return src
}

func TestFareHistogram_EqualWidthBuckets(t *testing.T) {
	// width = (263.0 - 7.25) / 4 = 63.9375
	analytics := service.NewAnalyticsService(newTestServer(
		fareSource(7.25, 7.25, 71.28, 263.0),
	))

	result, err := analytics.FareHistogram(4)
	require.NoError(t, err)

	assert.Equal(t, 4, result.TotalCount)
	assert.Equal(t, 0, result.ExcludedCount)
	require.Len(t, result.Buckets, 4)

	assert.InDelta(t, 7.25, result.Buckets[0].Low, 1e-9)
	assert.InDelta(t, 71.1875, result.Buckets[0].High, 1e-9)
	assert.Equal(t, 2, result.Buckets[0].Count)

	assert.InDelta(t, 71.1875, result.Buckets[1].Low, 1e-9)
	assert.InDelta(t, 135.125, result.Buckets[1].High, 1e-9)
	assert.Equal(t, 1, result.Buckets[1].Count)

	assert.Equal(t, 0, result.Buckets[2].Count)

	// The final bucket is closed and its upper edge is the exact max.
	assert.InDelta(t, 199.0625, result.Buckets[3].Low, 1e-9)
	assert.Equal(t, 263.0, result.Buckets[3].High)
	assert.Equal(t, 1, result.Buckets[3].Count)
}

func TestFareHistogram_BucketsCoverRangeAndSumToTotal(t *testing.T) {
	analytics := service.NewAnalyticsService(newTestServer(
		fareSource(7.25, 7.925, 8.05, nil, 71.2833, 53.1, nil, 512.3292),
	))

	result, err := analytics.FareHistogram(7)
	require.NoError(t, err)

	assert.Equal(t, 8, result.TotalCount)
	assert.Equal(t, 2, result.ExcludedCount)

	sum := 0
	for i, b := range result.Buckets {
		assert.GreaterOrEqual(t, b.Count, 0)
		if i > 0 {
			assert.Equal(t, result.Buckets[i-1].High, b.Low, "buckets must be contiguous")
		}
		sum += b.Count
	}
	assert.Equal(t, result.TotalCount-result.ExcludedCount, sum)

	assert.Equal(t, 7.25, result.Buckets[0].Low)
	assert.Equal(t, 512.3292, result.Buckets[len(result.Buckets)-1].High)
}

func TestFareHistogram_SingleValueRange(t *testing.T) {
	analytics := service.NewAnalyticsService(newTestServer(
		fareSource(8.05, 8.05, 8.05),
	))

	result, err := analytics.FareHistogram(10)
	require.NoError(t, err)

	// min == max collapses to a single point-spanning bucket.
	require.Len(t, result.Buckets, 1)
	assert.Equal(t, 8.05, result.Buckets[0].Low)
	assert.Equal(t, 8.05, result.Buckets[0].High)
	assert.Equal(t, 3, result.Buckets[0].Count)
	assert.Equal(t, 3, result.TotalCount)
	assert.Equal(t, 0, result.ExcludedCount)
}

func TestFareHistogram_DefaultBucketCount(t *testing.T) {
	analytics := service.NewAnalyticsService(newTestServer(
		fareSource(1.0, 2.0, 3.0, 4.0, 5.0),
	))

	// 0 means "not provided": the configured default applies.
	result, err := analytics.FareHistogram(0)
	require.NoError(t, err)
	assert.Len(t, result.Buckets, 10)
}

func TestFareHistogram_NoFareData(t *testing.T) {
	analytics := service.NewAnalyticsService(newTestServer(
		fareSource(nil, nil),
	))

	_, err := analytics.FareHistogram(4)
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Contains(t, httpErr.Message, "No fare data")
}

func TestFareHistogram_SourceUnavailable(t *testing.T) {
	analytics := service.NewAnalyticsService(newTestServer(&failingSource{}))

	_, err := analytics.FareHistogram(4)
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.Status)
}
