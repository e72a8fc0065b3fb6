package diagram

// Kind is an enumeration of element kinds
type Kind int

const (
	// KindGraph is a graphically rendered element
	KindGraph Kind = iota
	// KindFigure is a textual stub element
	KindFigure
)

var kindNames = [...]string{
	KindGraph:  "Graph",
	KindFigure: "Figure",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(?)"
	}
	return kindNames[k]
}

// ParseKind maps an element category name to its Kind.
func ParseKind(name string) (Kind, bool) {
	for k, kindName := range kindNames {
		if kindName == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Behavior holds the text an element prints for each action.
type Behavior struct {
	Name     string
	CalcText string
	DrawText string
	DragText string
}

var behaviors = [...]Behavior{
	KindGraph: {
		Name:     "Graph",
		CalcText: "Calculating Graph",
		DrawText: "[Graph] Drawing graphical representation.",
		DragText: "Dragging Graph",
	},
	KindFigure: {
		Name:     "Figure",
		CalcText: "Calculating Figure",
		DrawText: "[Figure Stub] Drawing textual stub.",
		DragText: "Dragging Figure",
	},
}

// Element is a Graph or a Figure. Every action notifies the attached
// subscribers after it has been painted.
type Element struct {
	kind        Kind
	behavior    Behavior
	paintEngine PaintEngine
	subscribers Subscribers
}

// NewElement creates an element of the given kind.
func NewElement(kind Kind, paintEngine PaintEngine) *Element {
	return &Element{
		kind:        kind,
		behavior:    behaviors[kind],
		paintEngine: paintEngine,
	}
}

// NewGraph creates a Graph element.
func NewGraph(paintEngine PaintEngine) *Element {
	return NewElement(KindGraph, paintEngine)
}

// NewFigure creates a Figure element.
func NewFigure(paintEngine PaintEngine) *Element {
	return NewElement(KindFigure, paintEngine)
}

// Kind returns the element kind.
func (e *Element) Kind() Kind {
	return e.kind
}

// Behavior returns the texts used by the element.
func (e *Element) Behavior() Behavior {
	return e.behavior
}

// AttachSubscriber appends sub to the element's subscribers.
func (e *Element) AttachSubscriber(sub Subscriber) {
	e.subscribers.Attach(sub)
}

// Calc calculates the element.
func (e *Element) Calc() error {
	return e.act(e.behavior.CalcText, "calculated")
}

// Draw draws the element.
func (e *Element) Draw() error {
	return e.act(e.behavior.DrawText, "drawn")
}

// Drag drags the element.
func (e *Element) Drag() error {
	return e.act(e.behavior.DragText, "dragged")
}

func (e *Element) act(text string, done string) error {
	if err := paint(e.paintEngine, NewDrawTextOperation(text)); err != nil {
		return err
	}
	e.subscribers.Notify(e.behavior.Name + " " + done)
	return nil
}
