package diagram

import (
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Variant is the color variant of a shared figure
type Variant int

const (
	// VariantBlackWhite is drawn in black and white
	VariantBlackWhite Variant = iota
	// VariantColored is drawn in color
	VariantColored
)

const colorMarker = "Color"

// ClassifyVariant returns VariantColored if key contains "Color" anywhere.
func ClassifyVariant(key string) Variant {
	if strings.Contains(key, colorMarker) {
		return VariantColored
	}
	return VariantBlackWhite
}

func (v Variant) String() string {
	if v == VariantColored {
		return "Colored"
	}
	return "B/W"
}

// SharedFigure is a figure shared by every request with the same key.
// Coordinates are not stored; subscribers accumulate across requests.
type SharedFigure struct {
	key         string
	variant     Variant
	paintEngine PaintEngine

	mutex       sync.Mutex
	subscribers Subscribers
}

// Key returns the pool key of the figure.
func (f *SharedFigure) Key() string {
	return f.key
}

// Variant returns the color variant of the figure.
func (f *SharedFigure) Variant() Variant {
	return f.variant
}

// AttachSubscriber appends sub to the figure's subscribers.
func (f *SharedFigure) AttachSubscriber(sub Subscriber) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.subscribers.Attach(sub)
}

// SubscriberCount returns the number of attached subscribers.
func (f *SharedFigure) SubscriberCount() int {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.subscribers.Len()
}

// Draw draws the figure and notifies its subscribers.
func (f *SharedFigure) Draw() error {
	var text string
	if f.variant == VariantColored {
		text = "[Colored Flyweight] Drawing colored figure of type: " + f.key
	} else {
		text = "[B/W Flyweight] Drawing black and white figure of type: " + f.key
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()
	if err := paint(f.paintEngine, NewDrawTextOperation(text)); err != nil {
		return err
	}
	f.subscribers.Notify(f.variant.String() + " Figure drawn")
	return nil
}

// FigurePool holds at most one SharedFigure per key.
// FigurePool is safe for concurrent use.
type FigurePool struct {
	paintEngine PaintEngine

	mutex   sync.Mutex
	figures map[string]*SharedFigure
}

// NewFigurePool creates an empty pool whose figures paint on paintEngine.
func NewFigurePool(paintEngine PaintEngine) *FigurePool {
	return &FigurePool{
		paintEngine: paintEngine,
		figures:     make(map[string]*SharedFigure),
	}
}

// GetOrCreate returns the figure for key, creating it on first use.
func (p *FigurePool) GetOrCreate(key string) *SharedFigure {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if figure, ok := p.figures[key]; ok {
		return figure
	}

	figure := &SharedFigure{
		key:         key,
		variant:     ClassifyVariant(key),
		paintEngine: p.paintEngine,
	}
	p.figures[key] = figure
	Logger().WithFields(logrus.Fields{
		"key":     key,
		"variant": figure.variant,
	}).Debug("Shared figure created")
	return figure
}

// Len returns the number of pooled figures.
func (p *FigurePool) Len() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return len(p.figures)
}
