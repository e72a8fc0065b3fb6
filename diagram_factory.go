package diagram

// DiagramFactory is the entry point for creating diagrams. Graph creations
// are recorded in a History; figures get both subscribers attached.
type DiagramFactory struct {
	paintEngine   PaintEngine
	graphFactory  *GraphFactory
	figureFactory *FigureFactory
	history       *History

	regularSubscriber  Subscriber
	contrastSubscriber Subscriber
}

// NewDiagramFactory creates a DiagramFactory painting on paintEngine.
func NewDiagramFactory(paintEngine PaintEngine, regular Subscriber, contrast Subscriber) *DiagramFactory {
	return &DiagramFactory{
		paintEngine:        paintEngine,
		graphFactory:       NewGraphFactory(paintEngine),
		figureFactory:      NewFigureFactory(paintEngine),
		history:            NewHistory(),
		regularSubscriber:  regular,
		contrastSubscriber: contrast,
	}
}

// History returns the command history of graph creations.
func (df *DiagramFactory) History() *History {
	return df.history
}

// FigurePool returns the pool of shared figures.
func (df *DiagramFactory) FigurePool() *FigurePool {
	return df.figureFactory.Pool()
}

// Request creates an element of the category element ("Graph" or "Figure")
// with the given kind at coord. Unknown categories are ignored.
func (df *DiagramFactory) Request(element string, kind string, coord string) error {
	k, ok := ParseKind(element)
	if !ok {
		Logger().WithField("element", element).Debug("Unknown element category ignored")
		return nil
	}

	switch k {
	case KindGraph:
		return df.CreateGraph(kind, coord)
	case KindFigure:
		_, err := df.CreateFigure(kind, coord)
		return err
	}
	return nil
}

// CreateGraph creates a graph as an undoable command.
func (df *DiagramFactory) CreateGraph(kind string, coord string) error {
	cmd := NewCreateGraphCommand(df.graphFactory, kind, coord, df.paintEngine)
	return df.history.Execute(cmd)
}

// CreateFigure creates a figure and attaches the regular and contrast
// subscribers. Figure creations are not recorded in the history.
func (df *DiagramFactory) CreateFigure(kind string, coord string) (*SharedFigure, error) {
	return df.figureFactory.CreateFigure(kind, coord, df.regularSubscriber, df.contrastSubscriber)
}

// Undo undoes the last graph creation.
func (df *DiagramFactory) Undo() error {
	return df.history.Undo()
}

// Redo redoes the last undone graph creation.
func (df *DiagramFactory) Redo() error {
	return df.history.Redo()
}
