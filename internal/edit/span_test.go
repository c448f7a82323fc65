package edit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpan_Clamp(t *testing.T) {
	tests := []struct {
		name string
		span Span
		n    int
		want Span
	}{
		{name: "inside", span: Span{2, 5}, n: 10, want: Span{2, 5}},
		{name: "end past text", span: Span{2, 50}, n: 10, want: Span{2, 10}},
		{name: "entirely past text", span: Span{20, 30}, n: 10, want: Span{10, 10}},
		{name: "negative start", span: Span{-3, 4}, n: 10, want: Span{0, 4}},
		{name: "inverted", span: Span{6, 2}, n: 10, want: Span{6, 6}},
		{name: "empty text", span: Span{1, 2}, n: 0, want: Span{0, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.span.Clamp(tc.n)
			assert.Equal(t, tc.want, got)
			assert.True(t, got.Within(tc.n))
		})
	}
}

func TestSpan_Predicates(t *testing.T) {
	assert.Equal(t, "[4:9)", Span{4, 9}.String())
	assert.Equal(t, 5, Span{4, 9}.Len())
	assert.True(t, Span{3, 3}.IsEmpty())
	assert.False(t, Span{-1, 3}.IsValid())
	assert.False(t, Span{4, 3}.IsValid())
	assert.False(t, Span{0, 11}.Within(10))

	assert.True(t, Span{0, 5}.Overlaps(Span{4, 8}))
	assert.False(t, Span{0, 5}.Overlaps(Span{5, 8}))
	assert.False(t, Span{5, 5}.Overlaps(Span{5, 5}))
	assert.True(t, Span{3, 8}.Overlaps(Span{5, 5}))
}

func TestSpan_Slice(t *testing.T) {
	text := "The quick brown fox"
	assert.Equal(t, "quick", Span{4, 9}.Slice(text))
	assert.Equal(t, "fox", Span{16, 100}.Slice(text))
	assert.Equal(t, "", Span{100, 200}.Slice(text))
}
