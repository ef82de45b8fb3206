package asciinum

import (
	"strconv"
	"testing"

	"github.com/sugawarayuuta/asciinum/internal/corpus"
)

// a power of two, so the replay index is a mask rather than a modulo.
const benchCount = 1 << 20

var (
	sink32 int32
	sink64 int64
)

func BenchmarkInt32(b *testing.B) {
	for _, dist := range corpus.Dists {
		cor := corpus.Int32(dist, benchCount, 1)
		b.Run(dist.String(), func(b *testing.B) {
			b.ReportAllocs()
			for idx := 0; idx < b.N; idx++ {
				spn := cor.Spans[idx&(benchCount-1)]
				i32, err := ParseInt32(cor.Buf, spn.Off, spn.Len)
				if err != nil {
					b.Fatal(err)
				}
				sink32 = i32
			}
		})
	}
}

func BenchmarkInt64(b *testing.B) {
	for _, dist := range corpus.Dists {
		cor := corpus.Int64(dist, benchCount, 1)
		b.Run(dist.String(), func(b *testing.B) {
			b.ReportAllocs()
			for idx := 0; idx < b.N; idx++ {
				spn := cor.Spans[idx&(benchCount-1)]
				i64, err := ParseInt64(cor.Buf, spn.Off, spn.Len)
				if err != nil {
					b.Fatal(err)
				}
				sink64 = i64
			}
		})
	}
}

func BenchmarkStrconv(b *testing.B) {
	for _, dist := range corpus.Dists {
		cor := corpus.Int64(dist, benchCount, 1)
		strs := make([]string, cor.Len())
		for idx := range strs {
			strs[idx] = string(cor.Text(idx))
		}
		b.Run(dist.String(), func(b *testing.B) {
			b.ReportAllocs()
			for idx := 0; idx < b.N; idx++ {
				i64, err := strconv.ParseInt(strs[idx&(benchCount-1)], 10, 64)
				if err != nil {
					b.Fatal(err)
				}
				sink64 = i64
			}
		})
	}
}
