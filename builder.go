package diagram

import (
	"fmt"
	"sync"
)

// Builder constructs a graph step by step.
// A Director holds the builder lock for a whole construction.
type Builder interface {
	sync.Locker
	SetCoord(coord string)
	Calc() error
	Draw() error
	Drag() error
}

// graphBuilder keeps the coordinate of the graph being constructed.
// One builder exists per graph kind; constructions of the same kind share it.
type graphBuilder struct {
	sync.Mutex

	kind        string
	coord       string
	proxy       *DrawProxy
	paintEngine PaintEngine
}

func newGraphBuilder(kind string, paintEngine PaintEngine) *graphBuilder {
	return &graphBuilder{
		kind:        kind,
		proxy:       NewDrawProxy(paintEngine),
		paintEngine: paintEngine,
	}
}

// NewBarBuilder creates a builder of bar graphs.
func NewBarBuilder(paintEngine PaintEngine) Builder {
	return newGraphBuilder(GraphBar, paintEngine)
}

// NewLineBuilder creates a builder of line graphs.
func NewLineBuilder(paintEngine PaintEngine) Builder {
	return newGraphBuilder(GraphLine, paintEngine)
}

func (b *graphBuilder) SetCoord(coord string) {
	b.coord = coord
}

func (b *graphBuilder) Calc() error {
	return paint(b.paintEngine, NewDrawTextOperation(fmt.Sprintf("%s calc at %s", b.kind, b.coord)))
}

func (b *graphBuilder) Draw() error {
	return b.proxy.Draw()
}

func (b *graphBuilder) Drag() error {
	return paint(b.paintEngine, NewDrawTextOperation(fmt.Sprintf("Drag %s at %s", b.kind, b.coord)))
}

// Director runs the construction steps of a Builder in a fixed order.
type Director struct{}

// Construct sets the coordinate, then calculates, draws and drags.
func (Director) Construct(builder Builder, coord string) error {
	builder.Lock()
	defer builder.Unlock()

	builder.SetCoord(coord)
	if err := builder.Calc(); err != nil {
		return err
	}
	if err := builder.Draw(); err != nil {
		return err
	}
	return builder.Drag()
}
