package codec

import (
	"testing"
)

type benchMultivector struct {
	Signature    string    `json:"signature"`
	Coefficients []float64 `json:"coefficients"`
}

func benchPayload() benchMultivector {
	c := make([]float64, 32) // CGA3
	for i := range c {
		c[i] = float64(i) * 0.125
	}
	return benchMultivector{Signature: "Cl(4,1,0)", Coefficients: c}
}

func benchmarkCodecMarshal(b *testing.B, c Codec, v any) {
	b.Helper()
	b.ReportAllocs()

	warm, err := c.Marshal(v)
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(warm)))

	var sink []byte
	b.ResetTimer()
	for b.Loop() {
		out, err := c.Marshal(v)
		if err != nil {
			b.Fatal(err)
		}
		sink = out
	}
	_ = sink
}

func benchmarkCodecUnmarshal(b *testing.B, c Codec, data []byte) {
	b.Helper()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	var v benchMultivector
	b.ResetTimer()
	for b.Loop() {
		if err := c.Unmarshal(data, &v); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCodec_Marshal(b *testing.B) {
	p := benchPayload()
	b.Run("stdlib", func(b *testing.B) { benchmarkCodecMarshal(b, JSON{}, p) })
	b.Run("go-json", func(b *testing.B) { benchmarkCodecMarshal(b, GoJSON{}, p) })
}

func BenchmarkCodec_Unmarshal(b *testing.B) {
	data := MustMarshal(JSON{}, benchPayload())
	b.Run("stdlib", func(b *testing.B) { benchmarkCodecUnmarshal(b, JSON{}, data) })
	b.Run("go-json", func(b *testing.B) { benchmarkCodecUnmarshal(b, GoJSON{}, data) })
}
