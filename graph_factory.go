package diagram

// Graph kinds understood by GraphFactory.
const (
	GraphBar  = "Bar"
	GraphLine = "Line"
)

// GraphFactory creates graphs through a Director and one Builder per kind.
type GraphFactory struct {
	director Director
	builders map[string]Builder
}

// NewGraphFactory creates a factory whose builders paint on paintEngine.
func NewGraphFactory(paintEngine PaintEngine) *GraphFactory {
	return &GraphFactory{
		builders: map[string]Builder{
			GraphBar:  NewBarBuilder(paintEngine),
			GraphLine: NewLineBuilder(paintEngine),
		},
	}
}

// CreateGraph constructs a graph of the given kind at coord.
// Unknown kinds are ignored.
func (f *GraphFactory) CreateGraph(kind string, coord string) error {
	builder, ok := f.builders[kind]
	if !ok {
		Logger().WithField("kind", kind).Debug("Unknown graph kind ignored")
		return nil
	}
	return f.director.Construct(builder, coord)
}

// Builder returns the builder used for kind, or nil.
func (f *GraphFactory) Builder(kind string) Builder {
	return f.builders[kind]
}
