package diagram

// DrawOperation is interface to encapsulate the drawing operation
type DrawOperation interface {
	Draw(paintEngine PaintEngine) error
}

type drawTextOperation struct {
	line string
}

func (o *drawTextOperation) Draw(paintEngine PaintEngine) error {
	return paintEngine.DrawText(o.line)
}

// NewDrawTextOperation creates an operation to print one line of text.
func NewDrawTextOperation(line string) DrawOperation {
	return &drawTextOperation{line}
}
