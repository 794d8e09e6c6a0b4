// Package scheduler implements the VM's 64-thread cooperative table,
// including the deferred-until-next-tic semantics of thread
// activation, deactivation, and pause state described in section 4.3.
package scheduler

import "errors"

// Count is the fixed number of threads.
const Count = 64

// ErrInvalidThreadID is returned when a thread id falls outside
// [0, Count).
var ErrInvalidThreadID = errors.New("scheduler: invalid thread id")

// ErrInvalidThreadRange is returned when a requested range has
// start > end.
var ErrInvalidThreadRange = errors.New("scheduler: invalid thread range")

// ErrInvalidThreadOperation is returned for an unrecognised
// ControlThreads operation code.
var ErrInvalidThreadOperation = errors.New("scheduler: invalid thread operation")

// PauseOp enumerates the operations ControlThreads can schedule.
type PauseOp uint8

const (
	OpResume PauseOp = iota
	OpSuspend
	OpDeactivate
)

// ParsePauseOp validates a raw ControlThreads operation byte.
func ParsePauseOp(v uint8) (PauseOp, error) {
	switch v {
	case uint8(OpResume), uint8(OpSuspend), uint8(OpDeactivate):
		return PauseOp(v), nil
	default:
		return 0, ErrInvalidThreadOperation
	}
}

// Thread is one cooperative execution context: a resumable program
// counter, a running/paused flag, and the scheduled successors of
// both that take effect at the next tic boundary.
type Thread struct {
	Active bool
	PC     uint16
	Paused bool

	scheduledActive bool
	scheduledPC     uint16
	hasActiveSched  bool

	scheduledPaused bool
	hasPauseSched   bool
}

// ScheduleActivate arranges for the thread to become active at PC
// starting next tic.
func (t *Thread) ScheduleActivate(pc uint16) {
	t.scheduledActive = true
	t.scheduledPC = pc
	t.hasActiveSched = true
}

// ScheduleDeactivate arranges for the thread to become inactive
// starting next tic.
func (t *Thread) ScheduleDeactivate() {
	t.scheduledActive = false
	t.hasActiveSched = true
}

// SchedulePause arranges for the thread's pause state to change
// starting next tic.
func (t *Thread) SchedulePause(paused bool) {
	t.scheduledPaused = paused
	t.hasPauseSched = true
}

// ApplySchedule promotes any pending scheduled state to current state
// and clears the pending slots. Called once per thread at the start
// of every tic, before any thread runs.
func (t *Thread) ApplySchedule() {
	if t.hasActiveSched {
		t.Active = t.scheduledActive
		if t.scheduledActive {
			t.PC = t.scheduledPC
		}
		t.hasActiveSched = false
	}
	if t.hasPauseSched {
		t.Paused = t.scheduledPaused
		t.hasPauseSched = false
	}
}

// Deactivate immediately deactivates the thread, bypassing the
// scheduling delay. Used by the Kill instruction, which the spec
// states takes effect the instant it executes.
func (t *Thread) Deactivate() {
	t.Active = false
}

// Yield suspends the thread at pc, to resume there next tic. Like
// Kill, this is an immediate transition of the *current* thread
// performed by the instruction executor, not a scheduled one.
func (t *Thread) Yield(pc uint16) {
	t.PC = pc
}

// Reset returns the thread to its post-game-part-load state: inactive
// (except thread 0, handled by the caller), running, with no pending
// schedule.
func (t *Thread) Reset() {
	*t = Thread{}
}

// Table is the fixed set of 64 threads.
type Table struct {
	Threads [Count]Thread
}

// New returns a Table with every thread inactive and running.
func New() *Table {
	return &Table{}
}

// ResetForGamePart reinitialises every thread to inactive/running and
// then activates thread 0 at address 0, per section 8's invariant for
// LoadGamePart.
func (tb *Table) ResetForGamePart() {
	for i := range tb.Threads {
		tb.Threads[i].Reset()
	}
	tb.Threads[0].Active = true
	tb.Threads[0].PC = 0
}

// ApplySchedule promotes pending state for every thread, in index
// order, as required before any thread runs in a given tic.
func (tb *Table) ApplySchedule() {
	for i := range tb.Threads {
		tb.Threads[i].ApplySchedule()
	}
}

// Activate validates and schedules an activation for a single
// thread id, used by the ActivateThread instruction.
func (tb *Table) Activate(id uint8, pc uint16) error {
	if int(id) >= Count {
		return ErrInvalidThreadID
	}
	tb.Threads[id].ScheduleActivate(pc)
	return nil
}

// ControlRange validates and schedules op for every thread in
// [start, end] inclusive, used by the ControlThreads instruction.
func (tb *Table) ControlRange(start, end uint8, op PauseOp) error {
	if start > end {
		return ErrInvalidThreadRange
	}
	if int(end) >= Count {
		return ErrInvalidThreadID
	}
	for id := start; id <= end; id++ {
		switch op {
		case OpResume:
			tb.Threads[id].SchedulePause(false)
		case OpSuspend:
			tb.Threads[id].SchedulePause(true)
		case OpDeactivate:
			tb.Threads[id].ScheduleDeactivate()
		}
		if id == end {
			break // avoid uint8 wraparound when end == 255
		}
	}
	return nil
}
