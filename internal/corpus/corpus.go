// Package corpus builds the decimal inputs the decoder benchmarks and
// property tests replay.
//
// Each distribution mirrors one workload the decoder is tuned for, with
// a seeded source so runs can be reproduced.
package corpus

import (
	"math"
	"math/rand"
	"strconv"
)

// Dist names a value distribution.
type Dist uint8

const (
	// MostlySingleDigits is 80% one digit values and 20% two digit values,
	// shuffled so the length branch can't be learned.
	MostlySingleDigits Dist = iota
	// Millions is 1e6 * [1, 50].
	Millions
	// RandomNonNegative is uniform in [0, max).
	RandomNonNegative
	// Random is uniform in [min/2, min/2 + max).
	Random
	// NearBoundary is within 1000 of either min or max.
	NearBoundary
)

// Dists lists every distribution, in declaration order.
var Dists = []Dist{MostlySingleDigits, Millions, RandomNonNegative, Random, NearBoundary}

// String returns the name used for benchmark sub tests.
func (dist Dist) String() string {
	switch dist {
	case MostlySingleDigits:
		return "MostlySingleDigits"
	case Millions:
		return "Millions"
	case RandomNonNegative:
		return "RandomNonNegative"
	case Random:
		return "Random"
	case NearBoundary:
		return "NearBoundary"
	default:
		return "Dist(" + strconv.Itoa(int(dist)) + ")"
	}
}

// Span locates one rendered value inside Corpus.Buf.
type Span struct {
	Off int
	Len int
}

// Corpus is a set of values rendered back to back into a single buffer.
type Corpus struct {
	Buf    []byte
	Spans  []Span
	Values []int64
}

// Len returns the number of values.
func (cor *Corpus) Len() int {
	return len(cor.Spans)
}

// Text returns the rendered bytes of value idx.
func (cor *Corpus) Text(idx int) []byte {
	spn := cor.Spans[idx]
	return cor.Buf[spn.Off : spn.Off+spn.Len]
}

// Int32 builds count values of dist in the int32 range.
func Int32(dist Dist, count int, seed int64) *Corpus {
	return build(dist, count, seed, math.MinInt32, math.MaxInt32)
}

// Int64 builds count values of dist in the int64 range.
func Int64(dist Dist, count int, seed int64) *Corpus {
	return build(dist, count, seed, math.MinInt64, math.MaxInt64)
}

func build(dist Dist, count int, seed int64, lo, hi int64) *Corpus {
	rng := rand.New(rand.NewSource(seed))
	vals := make([]int64, count)
	switch dist {
	case MostlySingleDigits:
		single := count * 80 / 100
		for idx := range vals {
			if idx < single {
				vals[idx] = rng.Int63n(10)
			} else {
				vals[idx] = 10 + rng.Int63n(90)
			}
		}
		rng.Shuffle(len(vals), func(i, j int) {
			vals[i], vals[j] = vals[j], vals[i]
		})
	case Millions:
		for idx := range vals {
			vals[idx] = 1000000 * (1 + rng.Int63n(50))
		}
	case RandomNonNegative:
		for idx := range vals {
			vals[idx] = rng.Int63n(hi)
		}
	case Random:
		for idx := range vals {
			vals[idx] = lo/2 + rng.Int63n(hi)
		}
	case NearBoundary:
		for idx := range vals {
			if rng.Intn(2) == 0 {
				vals[idx] = lo + rng.Int63n(1000)
			} else {
				vals[idx] = hi - rng.Int63n(1000)
			}
		}
	}
	return render(vals)
}

func render(vals []int64) *Corpus {
	cor := Corpus{
		Buf:    make([]byte, 0, len(vals)*8),
		Spans:  make([]Span, len(vals)),
		Values: vals,
	}
	for idx, val := range vals {
		off := len(cor.Buf)
		cor.Buf = strconv.AppendInt(cor.Buf, val, 10)
		cor.Spans[idx] = Span{Off: off, Len: len(cor.Buf) - off}
	}
	return &cor
}
