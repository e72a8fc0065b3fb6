package diagram

type commandStack struct {
	commands []Command
}

func (s *commandStack) push(cmd Command) {
	s.commands = append(s.commands, cmd)
}

func (s *commandStack) pop() Command {
	if len(s.commands) == 0 {
		return nil
	}
	cmd := s.commands[len(s.commands)-1]
	s.commands[len(s.commands)-1] = nil
	s.commands = s.commands[:len(s.commands)-1]
	return cmd
}

func (s *commandStack) clear() {
	for i := range s.commands {
		s.commands[i] = nil
	}
	s.commands = s.commands[:0]
}

// History keeps the undo and redo stacks of executed commands.
// History is not safe for concurrent use.
type History struct {
	undoStack commandStack
	redoStack commandStack
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Execute runs cmd, records it for undo and drops the redo stack.
// A command that fails is not recorded.
func (h *History) Execute(cmd Command) error {
	if err := cmd.Execute(); err != nil {
		return err
	}
	h.undoStack.push(cmd)
	h.redoStack.clear()
	return nil
}

// Undo undoes the most recent command. It is a no-op on an empty history.
func (h *History) Undo() error {
	cmd := h.undoStack.pop()
	if cmd == nil {
		Logger().Debug("Nothing to undo")
		return nil
	}

	if err := cmd.Undo(); err != nil {
		h.undoStack.push(cmd)
		return err
	}
	h.redoStack.push(cmd)
	return nil
}

// Redo executes the most recently undone command again.
// It is a no-op when nothing was undone.
func (h *History) Redo() error {
	cmd := h.redoStack.pop()
	if cmd == nil {
		Logger().Debug("Nothing to redo")
		return nil
	}

	if err := cmd.Execute(); err != nil {
		h.redoStack.push(cmd)
		return err
	}
	h.undoStack.push(cmd)
	return nil
}

// CanUndo reports whether Undo has a command to undo.
func (h *History) CanUndo() bool {
	return len(h.undoStack.commands) > 0
}

// CanRedo reports whether Redo has a command to redo.
func (h *History) CanRedo() bool {
	return len(h.redoStack.commands) > 0
}

// UndoLen returns the number of commands that can be undone.
func (h *History) UndoLen() int {
	return len(h.undoStack.commands)
}

// RedoLen returns the number of commands that can be redone.
func (h *History) RedoLen() int {
	return len(h.redoStack.commands)
}
