package verbal

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrScriptEmpty is returned when an input script has no steps.
var ErrScriptEmpty = errors.New("verbal: input script has no steps")

// scriptFrame is the simulated frame length between script steps.
const scriptFrame = time.Second / 60

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// InputScript is a recorded sequence of pointer input, waits and snapshots
// that can be replayed against a layer:
//
//	{"steps": [
//	  {"action": "click", "x": 120, "y": 80},
//	  {"action": "drag", "fromX": 120, "fromY": 80, "toX": 300, "toY": 80, "frames": 10},
//	  {"action": "wait", "frames": 2},
//	  {"action": "snapshot", "label": "after-drag"}
//	]}
//
// Actions are down, up, move, click, drag, wait and snapshot.
type InputScript struct {
	steps []scriptStep
}

// LoadInputScript parses a JSON input script.
func LoadInputScript(data []byte) (*InputScript, error) {
	var script struct {
		Steps []scriptStep `json:"steps"`
	}
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("verbal: parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, ErrScriptEmpty
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "down", "up", "move", "click", "drag", "wait", "snapshot":
		default:
			return nil, fmt.Errorf("verbal: parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &InputScript{steps: script.Steps}, nil
}

// Len returns the number of steps.
func (s *InputScript) Len() int { return len(s.steps) }

// Run replays the script against l, ticking the layer once per simulated
// frame, and returns the paths of the snapshots written to dir. A click is a
// down, an up and a click at the same point in one frame. A drag is a down
// at its start, evenly spaced moves, and an up at its end, spread over
// Frames frames (at least 2).
func (s *InputScript) Run(l *Layer, dir string) ([]string, error) {
	var shots []string
	for i, st := range s.steps {
		switch st.Action {
		case "down":
			l.DispatchPointerDown(scriptInput(InputDown, st.X, st.Y))
		case "up":
			l.DispatchPointerUp(scriptInput(InputUp, st.X, st.Y))
		case "move":
			l.DispatchPointerMove(scriptInput(InputMove, st.X, st.Y))
		case "click":
			l.DispatchPointerDown(scriptInput(InputDown, st.X, st.Y))
			l.DispatchPointerUp(scriptInput(InputUp, st.X, st.Y))
			l.DispatchClick(scriptInput(InputClick, st.X, st.Y))
		case "drag":
			runDrag(l, st)
			continue
		case "wait":
			for f := 1; f < st.Frames; f++ {
				l.Tick(scriptFrame)
			}
		case "snapshot":
			path, err := l.Snapshot(dir, st.Label)
			if err != nil {
				return shots, fmt.Errorf("verbal: input script step %d: %w", i, err)
			}
			shots = append(shots, path)
		}
		l.Tick(scriptFrame)
	}
	return shots, nil
}

func runDrag(l *Layer, st scriptStep) {
	frames := max(st.Frames, 2)
	l.DispatchPointerMove(scriptInput(InputMove, st.FromX, st.FromY))
	l.DispatchPointerDown(scriptInput(InputDown, st.FromX, st.FromY))
	l.Tick(scriptFrame)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := st.FromX + (st.ToX-st.FromX)*t
		y := st.FromY + (st.ToY-st.FromY)*t
		l.DispatchPointerMove(scriptInput(InputMove, x, y))
		l.Tick(scriptFrame)
	}
	l.DispatchPointerMove(scriptInput(InputMove, st.ToX, st.ToY))
	l.DispatchPointerUp(scriptInput(InputUp, st.ToX, st.ToY))
	l.Tick(scriptFrame)
}

func scriptInput(kind InputKind, x, y float64) PointerInput {
	return PointerInput{X: x, Y: y, Kind: kind, Button: MouseButtonLeft}
}
