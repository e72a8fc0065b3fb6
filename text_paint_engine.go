package diagram

import (
	"bufio"
	"io"
)

const (
	startLineCapacity = 16
)

type textPaintEngine struct {
	out      *bufio.Writer
	isActive bool
	lines    []string
}

// NewTextPaintEngine creates a PaintEngine that prints lines to w.
// Lines drawn between Begin and End are flushed together on End.
func NewTextPaintEngine(w io.Writer) PaintEngine {
	return &textPaintEngine{
		out:   bufio.NewWriter(w),
		lines: make([]string, 0, startLineCapacity),
	}
}

func (p *textPaintEngine) Begin() error {
	if p.isActive {
		return ErrEngineActive
	}

	p.isActive = true
	return nil
}

func (p *textPaintEngine) DrawText(line string) error {
	if !p.isActive {
		return ErrEngineInactive
	}

	p.lines = append(p.lines, line)
	return nil
}

func (p *textPaintEngine) End() error {
	if !p.isActive {
		return ErrEngineInactive
	}

	var err error
	for _, line := range p.lines {
		if _, err = p.out.WriteString(line + "\n"); err != nil {
			break
		}
	}
	if err == nil {
		err = p.out.Flush()
	}

	p.lines = p.lines[:0]
	p.isActive = false
	return err
}
