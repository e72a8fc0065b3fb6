package diagram

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectorConstruct(t *testing.T) {
	engine, buf := newTestEngine()

	require.NoError(t, Director{}.Construct(NewLineBuilder(engine), "(10,20)"))
	assert.Equal(t, []string{
		"Line calc at (10,20)",
		"[Graph Proxy] Drawing graphical + textual stub",
		"Drag Line at (10,20)",
	}, lines(buf))
}

func TestBuilderCoordOverwritten(t *testing.T) {
	engine, buf := newTestEngine()
	builder := NewBarBuilder(engine)

	builder.SetCoord("(1,1)")
	builder.SetCoord("(2,2)")
	require.NoError(t, builder.Calc())
	assert.Equal(t, []string{"Bar calc at (2,2)"}, lines(buf))
}

func TestDrawProxy(t *testing.T) {
	engine, buf := newTestEngine()
	require.NoError(t, NewDrawProxy(engine).Draw())
	assert.Equal(t, "[Graph Proxy] Drawing graphical + textual stub\n", buf.String())
}

func TestGraphFactoryCreateGraph(t *testing.T) {
	engine, buf := newTestEngine()
	factory := NewGraphFactory(engine)

	require.NoError(t, factory.CreateGraph(GraphBar, "(15,30)"))
	assert.Equal(t, []string{
		"Bar calc at (15,30)",
		"[Graph Proxy] Drawing graphical + textual stub",
		"Drag Bar at (15,30)",
	}, lines(buf))
}

func TestGraphFactoryUnknownKind(t *testing.T) {
	engine, buf := newTestEngine()
	factory := NewGraphFactory(engine)

	for _, kind := range []string{"Pie", "bar", "", "Line "} {
		assert.NoError(t, factory.CreateGraph(kind, "(0,0)"))
	}
	assert.Empty(t, buf.String())
	assert.Nil(t, factory.Builder("Pie"))
}

func TestGraphFactoryOneBuilderPerKind(t *testing.T) {
	factory := NewGraphFactory(NullPaintEngine())
	assert.Same(t, factory.Builder(GraphBar), factory.Builder(GraphBar))
	assert.NotSame(t, factory.Builder(GraphBar), factory.Builder(GraphLine))

	other := NewGraphFactory(NullPaintEngine())
	assert.NotSame(t, factory.Builder(GraphBar), other.Builder(GraphBar))
}

// lockedEngine makes a PaintEngine shareable between goroutines for the
// concurrent construction test.
type lockedEngine struct {
	mutex  sync.Mutex
	engine PaintEngine
}

func (e *lockedEngine) Begin() error {
	e.mutex.Lock()
	return e.engine.Begin()
}

func (e *lockedEngine) DrawText(line string) error {
	return e.engine.DrawText(line)
}

func (e *lockedEngine) End() error {
	defer e.mutex.Unlock()
	return e.engine.End()
}

func TestDirectorSerializesConstructions(t *testing.T) {
	engine, buf := newTestEngine()
	factory := NewGraphFactory(&lockedEngine{engine: engine})

	coords := []string{"(1,1)", "(2,2)", "(3,3)", "(4,4)"}
	var wg sync.WaitGroup
	for _, coord := range coords {
		wg.Add(1)
		go func(coord string) {
			defer wg.Done()
			assert.NoError(t, factory.CreateGraph(GraphLine, coord))
		}(coord)
	}
	wg.Wait()

	got := lines(buf)
	require.Len(t, got, 3*len(coords))
	for i := 0; i < len(got); i += 3 {
		coord := got[i][len("Line calc at "):]
		assert.Equal(t, "Line calc at "+coord, got[i])
		assert.Equal(t, "Drag Line at "+coord, got[i+2])
	}
}
