package diagram

import "errors"

var (
	// ErrEngineActive is returned by Begin when the engine is already painting.
	ErrEngineActive = errors.New("paint engine is already active")
	// ErrEngineInactive is returned by DrawText and End outside of Begin/End.
	ErrEngineInactive = errors.New("paint engine is not active")
)

// PaintEngine is the interface definition for drawing
type PaintEngine interface {
	Begin() error
	DrawText(line string) error
	End() error
}
