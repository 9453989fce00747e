package service

import (
	"github.com/deppfellow/titanic-api/internal/errs"
	"github.com/deppfellow/titanic-api/internal/server"
)

// HistogramBucket is one contiguous fare sub-range and the number of
// passengers whose fare falls inside it. All buckets are half-open
// [low, high) except the final one, which is closed so the maximum fare
// is counted.
type HistogramBucket struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

// HistogramResult is the fare-histogram payload. Bucket counts plus
// ExcludedCount always sum to TotalCount.
type HistogramResult struct {
	Buckets       []HistogramBucket `json:"buckets"`
	TotalCount    int               `json:"total_count"`
	ExcludedCount int               `json:"excluded_count"`
}

// AnalyticsService computes derived views over the passenger dataset.
type AnalyticsService struct {
	server *server.Server
}

// NewAnalyticsService constructs an AnalyticsService.
func NewAnalyticsService(s *server.Server) *AnalyticsService {
	return &AnalyticsService{server: s}
}

// FareHistogram buckets the fare column into `buckets` equal-width
// ranges covering [min, max] of the observed fares.
//
// Records with a missing or non-numeric fare are excluded from the
// buckets and reported via ExcludedCount. A bucket count of 0 selects
// the configured default. The 1..100 bound on explicit values has
// already been enforced by request validation.
func (a *AnalyticsService) FareHistogram(buckets int) (*HistogramResult, error) {
	if buckets == 0 {
		buckets = a.server.Config.Analytics.HistogramBuckets
	}

	records, err := a.server.Source.ListAll()
	if err != nil {
		a.server.Logger.Error().Err(err).Msg("failed to list passengers for histogram")
		return nil, errs.NewSourceUnavailableError()
	}

	fares := make([]float64, 0, len(records))
	for _, rec := range records {
		if fare, ok := rec.Fare(); ok {
			fares = append(fares, fare)
		}
	}

	total := len(records)
	excluded := total - len(fares)

	if len(fares) == 0 {
		return nil, errs.NewBadRequestError("No fare data available for histogram", nil, nil)
	}

	min, max := fares[0], fares[0]
	for _, f := range fares[1:] {
		if f < min {
			min = f
		}
		if f > max {
			max = f
		}
	}

	// Degenerate range: every fare is the same value. One bucket
	// spanning that point holds everything, regardless of the
	// requested bucket count.
	if min == max {
		return &HistogramResult{
			Buckets:       []HistogramBucket{{Low: min, High: max, Count: len(fares)}},
			TotalCount:    total,
			ExcludedCount: excluded,
		}, nil
	}

	width := (max - min) / float64(buckets)

	result := make([]HistogramBucket, buckets)
	for i := range result {
		result[i].Low = min + float64(i)*width
		result[i].High = min + float64(i+1)*width
	}
	// Pin the final edge to the exact maximum so the ranges cover
	// [min, max] without floating-point drift.
	result[buckets-1].High = max

	for _, f := range fares {
		i := int((f - min) / width)
		// The maximum lands one past the end; it belongs to the final,
		// closed bucket.
		if i >= buckets {
			i = buckets - 1
		}
		result[i].Count++
	}

	a.server.Logger.Info().
		Int("buckets", buckets).
		Int("fares", len(fares)).
		Int("excluded", excluded).
		Msg("generated fare histogram")

	return &HistogramResult{
		Buckets:       result,
		TotalCount:    total,
		ExcludedCount: excluded,
	}, nil
}
