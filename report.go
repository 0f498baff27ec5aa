package basicstats

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Value is the outcome of a single statistic.
// Defined is false when the statistic has no meaning for the sample, e.g. the median of nothing.
type Value struct {
	Value   float64 `json:"value"   msgpack:"value"   codec:"value"`
	Defined bool    `json:"defined" msgpack:"defined" codec:"defined"`
}

// Report holds the outcome of every statistic computed over one sample.
type Report struct {
	Count  int              `json:"count"  msgpack:"count"  codec:"count"`
	Digest string           `json:"digest" msgpack:"digest" codec:"digest"`
	Values map[string]Value `json:"values" msgpack:"values" codec:"values"`
}

// Get returns the value of the named statistic and whether it is defined.
func (r *Report) Get(name string) (float64, bool) {
	v, ok := r.Values[name]
	if !ok || !v.Defined {
		return 0, false
	}

	return v.Value, true
}

// Digest fingerprints a sample with xxhash64 over the IEEE-754 bits of its elements, in order.
func Digest(sample []float64) string {
	d := xxhash.New()

	var buf [8]byte
	for _, v := range sample {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}

	return strconv.FormatUint(d.Sum64(), 16)
}
