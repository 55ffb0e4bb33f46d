package filtermetrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFiltersConstructedIncrements(t *testing.T) {
	before := testutil.ToFloat64(FiltersConstructed.WithLabelValues("BigintRange"))
	FiltersConstructed.WithLabelValues("BigintRange").Inc()
	after := testutil.ToFloat64(FiltersConstructed.WithLabelValues("BigintRange"))
	assert.Equal(t, before+1, after)
}

func TestMergesPerformedIncrements(t *testing.T) {
	before := testutil.ToFloat64(MergesPerformed.WithLabelValues("BigintRange", "AlwaysTrue"))
	MergesPerformed.WithLabelValues("BigintRange", "AlwaysTrue").Inc()
	after := testutil.ToFloat64(MergesPerformed.WithLabelValues("BigintRange", "AlwaysTrue"))
	assert.Equal(t, before+1, after)
}
