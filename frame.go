package diagram

// Frame contains a set of operations painted as one batch.
type Frame struct {
	DrawOperations []DrawOperation
}

// Draw draws the operations of the frame in order.
func (frame *Frame) Draw(paintEngine PaintEngine) error {
	for _, drawOperation := range frame.DrawOperations {
		err := drawOperation.Draw(paintEngine)
		if err != nil {
			return err
		}
	}
	return nil
}

// Paint draws the frame between Begin and End of paintEngine.
func (frame *Frame) Paint(paintEngine PaintEngine) error {
	if err := paintEngine.Begin(); err != nil {
		return err
	}

	if err := frame.Draw(paintEngine); err != nil {
		paintEngine.End()
		return err
	}

	return paintEngine.End()
}

func paint(paintEngine PaintEngine, drawOperations ...DrawOperation) error {
	frame := Frame{DrawOperations: drawOperations}
	return frame.Paint(paintEngine)
}
