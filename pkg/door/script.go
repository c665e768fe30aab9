package door

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const describeStep = "describe"

// Step is one entry of a Script. Exactly one of its forms is set:
// an operation, a describe request or a repaint.
type Step struct {
	Op       Operation
	Describe bool
	Color    string
	Paint    bool
}

// UnmarshalYAML accepts a scalar step ("open", "describe", ...) or a
// mapping with a single "color" key.
func (s *Step) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value == describeStep {
			*s = Step{Describe: true}
			return nil
		}
		op, err := ParseOperation(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*s = Step{Op: op}
		return nil
	case yaml.MappingNode:
		var m struct {
			Color *string `yaml:"color"`
		}
		if err := node.Decode(&m); err != nil {
			return err
		}
		if m.Color == nil || len(node.Content) != 2 {
			return fmt.Errorf("line %d: %w: mapping step must have exactly one \"color\" key", node.Line, ErrInvalidScript)
		}
		*s = Step{Paint: true, Color: *m.Color}
		return nil
	default:
		return fmt.Errorf("line %d: %w: unsupported step", node.Line, ErrInvalidScript)
	}
}

// MarshalYAML writes the step back in the form UnmarshalYAML reads.
func (s Step) MarshalYAML() (any, error) {
	switch {
	case s.Describe:
		return describeStep, nil
	case s.Paint:
		return map[string]string{"color": s.Color}, nil
	default:
		return string(s.Op), nil
	}
}

// Script is a sequence of steps replayed against a door.
type Script struct {
	Color string `yaml:"color,omitempty"`
	Steps []Step `yaml:"steps"`
}

// DefaultScript dumps the door, opens it and dumps it again.
func DefaultScript(color string) *Script {
	return &Script{
		Color: color,
		Steps: []Step{{Describe: true}, {Op: OpOpen}, {Describe: true}},
	}
}

// LoadScript decodes a YAML script.
func LoadScript(r io.Reader) (*Script, error) {
	var s Script
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidScript)
		}
		if errors.Is(err, ErrInvalidScript) || errors.Is(err, ErrUnknownOperation) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("%w: no steps", ErrInvalidScript)
	}
	return &s, nil
}

// Run replays the script against d. Dumps and a "-- <op>: <outcome>" line per
// operation are written to w. Only write errors are returned; rejected
// operations are part of the output.
func (s *Script) Run(ctx context.Context, d *Door, w io.Writer) ([]Outcome, error) {
	var outcomes []Outcome
	for _, step := range s.Steps {
		switch {
		case step.Describe:
			if err := d.Describe(w); err != nil {
				return outcomes, err
			}
		case step.Paint:
			d.SetColor(step.Color)
			if _, err := fmt.Fprintf(w, "-- color: %s\n", step.Color); err != nil {
				return outcomes, err
			}
		default:
			o := d.ApplyContext(ctx, step.Op)
			outcomes = append(outcomes, o)
			if _, err := fmt.Fprintf(w, "-- %s: %s\n", step.Op, o); err != nil {
				return outcomes, err
			}
		}
	}
	return outcomes, nil
}
