package diagram

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFigurePoolSameKey(t *testing.T) {
	pool := NewFigurePool(NullPaintEngine())

	a := pool.GetOrCreate("CircleColor")
	b := pool.GetOrCreate("CircleColor")
	assert.Same(t, a, b)
	assert.Equal(t, 1, pool.Len())
}

func TestFigurePoolDistinctKeys(t *testing.T) {
	pool := NewFigurePool(NullPaintEngine())

	a := pool.GetOrCreate("CircleColor")
	b := pool.GetOrCreate("circleColor")
	c := pool.GetOrCreate("SquareBW")
	assert.NotSame(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, 3, pool.Len())
}

func TestClassifyVariant(t *testing.T) {
	tests := []struct {
		key  string
		want Variant
	}{
		{"CircleColor", VariantColored},
		{"ColorSquare", VariantColored},
		{"BigColorfulTriangle", VariantColored},
		{"Color", VariantColored},
		{"SquareBW", VariantBlackWhite},
		{"circlecolor", VariantBlackWhite},
		{"", VariantBlackWhite},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyVariant(tt.key), tt.key)
		assert.Equal(t, tt.want, NewFigurePool(NullPaintEngine()).GetOrCreate(tt.key).Variant(), tt.key)
	}
}

func TestSharedFigureDraw(t *testing.T) {
	engine, buf := newTestEngine()
	pool := NewFigurePool(engine)
	subs, messages := newRecordingSubscribers(t, "s")

	colored := pool.GetOrCreate("CircleColor")
	colored.AttachSubscriber(subs[0])
	require.NoError(t, colored.Draw())

	bw := pool.GetOrCreate("SquareBW")
	bw.AttachSubscriber(subs[0])
	require.NoError(t, bw.Draw())

	assert.Equal(t, []string{
		"[Colored Flyweight] Drawing colored figure of type: CircleColor",
		"[B/W Flyweight] Drawing black and white figure of type: SquareBW",
	}, lines(buf))
	assert.Equal(t, []string{"s:Colored Figure drawn", "s:B/W Figure drawn"}, *messages)
}

func TestFigurePoolConcurrent(t *testing.T) {
	pool := NewFigurePool(NullPaintEngine())
	const goroutines = 50

	results := make([][]*SharedFigure, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				results[n] = append(results[n], pool.GetOrCreate("Key"+strconv.Itoa(j)))
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, pool.Len())
	for i := 1; i < goroutines; i++ {
		for j := range results[i] {
			assert.Same(t, results[0][j], results[i][j])
		}
	}
}
