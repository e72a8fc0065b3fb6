package diagram

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Script actions.
const (
	ActionRequest = "request"
	ActionUndo    = "undo"
	ActionRedo    = "redo"
	ActionExport  = "export"
)

var (
	// ErrUnknownAction is returned for a step with an unsupported action.
	ErrUnknownAction = errors.New("unknown script action")
	// ErrUnknownScriptFormat is returned for a script file that is neither TOML nor YAML.
	ErrUnknownScriptFormat = errors.New("unknown script format")
)

// Step is one action of a Script. Element, Kind and Coord are used by
// request steps; export steps only use Element.
type Step struct {
	Action  string `toml:"action" yaml:"action"`
	Element string `toml:"element,omitempty" yaml:"element,omitempty"`
	Kind    string `toml:"kind,omitempty" yaml:"kind,omitempty"`
	Coord   string `toml:"coord,omitempty" yaml:"coord,omitempty"`
}

// Script is a sequence of steps driving a DiagramFactory.
type Script struct {
	Steps []Step `toml:"steps" yaml:"steps"`
}

// DefaultScript returns the demonstration sequence.
func DefaultScript() *Script {
	return &Script{
		Steps: []Step{
			{Action: ActionRequest, Element: "Graph", Kind: GraphLine, Coord: "(10,20)"},
			{Action: ActionRequest, Element: "Graph", Kind: GraphBar, Coord: "(15,30)"},
			{Action: ActionRequest, Element: "Figure", Kind: "CircleColor", Coord: "(5,5)"},
			{Action: ActionRequest, Element: "Figure", Kind: "SquareBW", Coord: "(2,3)"},
			{Action: ActionUndo},
			{Action: ActionRedo},
			{Action: ActionExport, Element: "Graph"},
			{Action: ActionExport, Element: "Figure"},
		},
	}
}

// LoadScript loads a script from a .toml, .yaml or .yml file.
func LoadScript(fileName string) (*Script, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	script := &Script{}
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".toml":
		err = toml.Unmarshal(data, script)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, script)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownScriptFormat, fileName)
	}
	if err != nil {
		return nil, fmt.Errorf("couldn't parse script '%s': %w", fileName, err)
	}

	if err = script.Validate(); err != nil {
		return nil, err
	}
	return script, nil
}

// Validate checks that every step has a known action and that export
// steps name a known element category.
func (s *Script) Validate() error {
	for i, step := range s.Steps {
		switch step.Action {
		case ActionRequest, ActionUndo, ActionRedo:
		case ActionExport:
			if _, ok := ParseKind(step.Element); !ok {
				return fmt.Errorf("step %d: couldn't export element '%s'", i, step.Element)
			}
		default:
			return fmt.Errorf("step %d: %w '%s'", i, ErrUnknownAction, step.Action)
		}
	}
	return nil
}

// Run executes the steps in order. Exports paint on paintEngine.
func (s *Script) Run(df *DiagramFactory, paintEngine PaintEngine) error {
	if err := s.Validate(); err != nil {
		return err
	}

	for i, step := range s.Steps {
		Logger().WithField("step", i).WithField("action", step.Action).Debug("Running script step")

		var err error
		switch step.Action {
		case ActionRequest:
			err = df.Request(step.Element, step.Kind, step.Coord)
		case ActionUndo:
			err = df.Undo()
		case ActionRedo:
			err = df.Redo()
		case ActionExport:
			kind, _ := ParseKind(step.Element)
			err = Export(paintEngine, NewElement(kind, paintEngine))
		}
		if err != nil {
			return fmt.Errorf("step %d (%s): %w", i, step.Action, err)
		}
	}
	return nil
}
