package diagram

import "fmt"

var exportFormats = [...]string{
	KindGraph:  "PNG",
	KindFigure: "JPG",
}

// ExportFormat returns the image format elements of kind are exported to.
func ExportFormat(kind Kind) string {
	if kind < 0 || int(kind) >= len(exportFormats) {
		return ""
	}
	return exportFormats[kind]
}

// Export reports the export of element in its kind's format.
// It has no other effect on the element.
func Export(paintEngine PaintEngine, element *Element) error {
	line := fmt.Sprintf("Exporting %s as %s...", element.Behavior().Name, ExportFormat(element.Kind()))
	return paint(paintEngine, NewDrawTextOperation(line))
}
