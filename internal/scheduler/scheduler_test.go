package scheduler

import (
	"errors"
	"testing"
)

func TestActivationIsDeferred(t *testing.T) {
	tb := New()
	if err := tb.Activate(3, 0x100); err != nil {
		t.Fatalf("Activate() err = %v", err)
	}
	if tb.Threads[3].Active {
		t.Errorf("thread active before ApplySchedule()")
	}
	tb.ApplySchedule()
	if !tb.Threads[3].Active || tb.Threads[3].PC != 0x100 {
		t.Errorf("thread[3] = %+v, wanted active at 0x100", tb.Threads[3])
	}
}

func TestControlRangeValidation(t *testing.T) {
	tb := New()
	if err := tb.ControlRange(5, 3, OpResume); !errors.Is(err, ErrInvalidThreadRange) {
		t.Errorf("ControlRange(5,3) err = %v, wanted ErrInvalidThreadRange", err)
	}
	if err := tb.ControlRange(0, 200, OpResume); !errors.Is(err, ErrInvalidThreadID) {
		t.Errorf("ControlRange(0,200) err = %v, wanted ErrInvalidThreadID", err)
	}
}

func TestControlRangeSuspendResume(t *testing.T) {
	tb := New()
	tb.ControlRange(1, 4, OpSuspend)
	tb.ApplySchedule()
	for i := 1; i <= 4; i++ {
		if !tb.Threads[i].Paused {
			t.Errorf("thread[%d].Paused = false, wanted true", i)
		}
	}
	if tb.Threads[0].Paused || tb.Threads[5].Paused {
		t.Errorf("suspend leaked outside requested range")
	}
}

func TestKillIsImmediate(t *testing.T) {
	tb := New()
	tb.Threads[2].Active = true
	tb.Threads[2].Deactivate()
	if tb.Threads[2].Active {
		t.Errorf("Deactivate() left thread active")
	}
}

func TestResetForGamePartActivatesThreadZero(t *testing.T) {
	tb := New()
	tb.Threads[1].Active = true
	tb.ResetForGamePart()
	if !tb.Threads[0].Active || tb.Threads[0].PC != 0 {
		t.Errorf("thread[0] = %+v, wanted active at 0", tb.Threads[0])
	}
	for i := 1; i < Count; i++ {
		if tb.Threads[i].Active {
			t.Errorf("thread[%d] active after ResetForGamePart()", i)
		}
	}
}

func TestSchedulingDeferredAcrossThreads(t *testing.T) {
	// Activation requested while running thread N must not affect
	// thread N+1's run in the same tic; it only applies at the next
	// tic's ApplySchedule pass.
	tb := New()
	tb.ResetForGamePart()
	tb.Activate(5, 0x50) // simulates thread 0's bytecode activating thread 5
	if tb.Threads[5].Active {
		t.Errorf("thread[5] active same tic, wanted deferred")
	}
	tb.ApplySchedule() // next tic boundary
	if !tb.Threads[5].Active {
		t.Errorf("thread[5] not active after next ApplySchedule()")
	}
}
