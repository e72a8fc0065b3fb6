package diagram

// CommandState is the lifecycle state of a command
type CommandState int

const (
	// CommandCreated is a command that has never run
	CommandCreated CommandState = iota
	// CommandExecuted has run once
	CommandExecuted
	// CommandUndone has been reported as undone
	CommandUndone
	// CommandRedone has run again after an undo
	CommandRedone
)

var commandStateNames = [...]string{
	CommandCreated:  "created",
	CommandExecuted: "executed",
	CommandUndone:   "undone",
	CommandRedone:   "redone",
}

func (s CommandState) String() string {
	if s < 0 || int(s) >= len(commandStateNames) {
		return "CommandState(?)"
	}
	return commandStateNames[s]
}

// Command is an action recorded in a History.
type Command interface {
	Execute() error
	Undo() error
}

// CreateGraphCommand creates a graph through a GraphFactory.
// Undo only reports the undo; the graph output is not taken back.
type CreateGraphCommand struct {
	factory     *GraphFactory
	kind        string
	coord       string
	paintEngine PaintEngine
	state       CommandState
}

// NewCreateGraphCommand creates a command building a graph of kind at coord.
func NewCreateGraphCommand(factory *GraphFactory, kind string, coord string, paintEngine PaintEngine) *CreateGraphCommand {
	return &CreateGraphCommand{
		factory:     factory,
		kind:        kind,
		coord:       coord,
		paintEngine: paintEngine,
		state:       CommandCreated,
	}
}

// Kind returns the graph kind.
func (c *CreateGraphCommand) Kind() string {
	return c.kind
}

// Coord returns the graph coordinate.
func (c *CreateGraphCommand) Coord() string {
	return c.coord
}

// State returns the lifecycle state.
func (c *CreateGraphCommand) State() CommandState {
	return c.state
}

// Execute creates the graph.
func (c *CreateGraphCommand) Execute() error {
	if err := c.factory.CreateGraph(c.kind, c.coord); err != nil {
		return err
	}

	if c.state == CommandCreated {
		c.state = CommandExecuted
	} else {
		c.state = CommandRedone
	}
	return nil
}

// Undo reports the undo of the graph creation.
func (c *CreateGraphCommand) Undo() error {
	if err := paint(c.paintEngine, NewDrawTextOperation("Undo creation of graph: "+c.kind)); err != nil {
		return err
	}
	c.state = CommandUndone
	return nil
}
