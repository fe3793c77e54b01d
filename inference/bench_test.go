package inference_test

import (
	"context"
	"testing"
)

func BenchmarkInfer_Exact(b *testing.B) {
	eng := roomEngine(b)
	in := map[string]float64{"temperature": 22, "fan": 60}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := eng.Infer(in); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInfer_Sampled(b *testing.B) {
	eng := fanEngine(b)
	in := map[string]float64{"temperature": 17}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := eng.Infer(in); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInferBatch(b *testing.B) {
	eng := roomEngine(b)
	inputs := make([]map[string]float64, 256)
	for i := range inputs {
		inputs[i] = map[string]float64{"temperature": float64(i % 40), "fan": float64(i % 100)}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		eng.InferBatch(context.Background(), inputs)
	}
}
