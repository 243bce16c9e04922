package create

import (
	"fmt"

	"github.com/apex/log"
)

// Stage is a step of project creation.
type Stage int

const (
	StageIdle Stage = iota
	StagePrompting
	StageResolving
	StageCopying
	StageInstalling
	StageVersionControlling
	StageSucceeded
	StageFailed
)

var stageNames = [...]string{
	StageIdle:               "idle",
	StagePrompting:          "prompting",
	StageResolving:          "resolving",
	StageCopying:            "copying",
	StageInstalling:         "installing",
	StageVersionControlling: "version controlling",
	StageSucceeded:          "succeeded",
	StageFailed:             "failed",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("stage(%d)", int(s))
	}
	return stageNames[s]
}

// isFinal returns true for the stages that end project creation.
func (s Stage) isFinal() bool {
	return s == StageSucceeded || s == StageFailed
}

// stageTracker keeps the current stage. Stages only move forward.
type stageTracker struct {
	current Stage
}

// advance moves to the next stage. It panics on moving backward or leaving
// a final stage.
func (t *stageTracker) advance(next Stage) {
	if t.current.isFinal() || next <= t.current {
		panic(fmt.Sprintf("invalid stage transition: %s -> %s", t.current, next))
	}
	log.Debugf("Stage: %s -> %s", t.current, next)
	t.current = next
}
