package lifecycle

import (
	"errors"
	"fmt"
)

// Stage identifies which step of a lifecycle sequence failed.
type Stage string

const (
	StagePowerOn     Stage = "power-on"
	StageAttachStart Stage = "attach-start"
	StageBringUp     Stage = "bring-up"
	StageMainStart   Stage = "main-start"
	StageMainStop    Stage = "main-stop"
	StageBringDown   Stage = "bring-down"
	StageAttachStop  Stage = "attach-stop"
	StagePowerOff    Stage = "power-off"
)

// ErrBringUpTimeout means the device never accepted bring-up within the
// bounded poll.
var ErrBringUpTimeout = errors.New("lifecycle: timeout waiting for device bring-up")

// StageError tags a failure with the sequence stage it occurred in. Callers
// only need success or failure; the stage exists for diagnostics.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("lifecycle: stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageErr(stage Stage, err error) error {
	return &StageError{Stage: stage, Err: err}
}
