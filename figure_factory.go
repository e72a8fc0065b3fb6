package diagram

// FigureFactory hands out shared figures from a FigurePool.
type FigureFactory struct {
	pool        *FigurePool
	paintEngine PaintEngine
}

// NewFigureFactory creates a factory with an empty pool.
func NewFigureFactory(paintEngine PaintEngine) *FigureFactory {
	return &FigureFactory{
		pool:        NewFigurePool(paintEngine),
		paintEngine: paintEngine,
	}
}

// Pool returns the pool backing the factory.
func (f *FigureFactory) Pool() *FigurePool {
	return f.pool
}

// CreateFigure looks up the figure for kind, attaches subs, prints coord
// and draws the figure once. The coordinate is not kept by the figure.
func (f *FigureFactory) CreateFigure(kind string, coord string, subs ...Subscriber) (*SharedFigure, error) {
	figure := f.pool.GetOrCreate(kind)
	for _, sub := range subs {
		if sub != nil {
			figure.AttachSubscriber(sub)
		}
	}

	if err := paint(f.paintEngine, NewDrawTextOperation("Coordinates: "+coord)); err != nil {
		return nil, err
	}
	if err := figure.Draw(); err != nil {
		return nil, err
	}
	return figure, nil
}
