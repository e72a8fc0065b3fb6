package diagram

const proxyDrawText = "[Graph Proxy] Drawing graphical + textual stub"

// DrawProxy stands in for the graph draw call of a builder.
type DrawProxy struct {
	paintEngine PaintEngine
}

// NewDrawProxy creates a DrawProxy painting on paintEngine.
func NewDrawProxy(paintEngine PaintEngine) *DrawProxy {
	return &DrawProxy{paintEngine}
}

// Draw paints the proxy line.
func (p *DrawProxy) Draw() error {
	return paint(p.paintEngine, NewDrawTextOperation(proxyDrawText))
}
