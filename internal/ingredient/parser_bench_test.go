package ingredient

import "testing"

func BenchmarkParse(b *testing.B) {
	lines := []string{
		"2 1/2 cups flour",
		"salt",
		"3 eggs",
		"200 g butter",
		"1/2 tsp vanilla extract",
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Parse(lines[i%len(lines)])
	}
}
