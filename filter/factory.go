package filter

import (
	"github.com/JohnCGriffin/overflow"

	"github.com/milvus-io/milvus-filter/go/filterconfig"
)

// CreateBigintValues builds the most compact filter equivalent to
// "value IN values", per spec §4.3: a contiguous set collapses to
// BigintRange, a dense set to BigintValuesUsingBitmask, and a sparse
// set to BigintValuesUsingHashTable. It is also the recompaction step
// every mergeWith on a value-set variant routes its survivors through.
func CreateBigintValues(values []int64, nullAllowed bool) Filter {
	if len(values) == 0 {
		return nullOrFalse(nullAllowed)
	}

	if len(values) == 1 {
		return NewBigintRange(values[0], values[0], nullAllowed)
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		} else if v < min {
			min = v
		}
	}

	rng, ok := overflow.Sub64(max, min)
	if ok {
		if rng+1 == int64(len(values)) {
			return NewBigintRange(min, max, nullAllowed)
		}

		cfg := filterconfig.Get()
		if rng < cfg.BitmaskAbsoluteWordCeiling*64 || rng < int64(len(values))*cfg.BitmaskWordsPerSetBit*64 {
			return NewBigintValuesUsingBitmask(min, max, values, nullAllowed)
		}
	}
	return NewBigintValuesUsingHashTable(min, max, values, nullAllowed)
}
