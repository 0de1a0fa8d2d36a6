package pipeline

import "fmt"

type Stage int

const (
	Fetching Stage = iota
	Summarizing
	Composing
	Writing
	Done
	Failed
)

var stageNames = map[Stage]string{
	Fetching:    "fetching transcript",
	Summarizing: "summarizing",
	Composing:   "composing",
	Writing:     "writing",
	Done:        "done",
	Failed:      "failed",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// StageError names the stage a run failed in and unwraps to the cause.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
