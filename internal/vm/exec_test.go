package vm

import (
	"errors"
	"testing"

	"github.com/mkenney-dev/aworld/internal/callstack"
	"github.com/mkenney-dev/aworld/internal/cursor"
	"github.com/mkenney-dev/aworld/internal/gamepart"
	"github.com/mkenney-dev/aworld/internal/registers"
	"github.com/mkenney-dev/aworld/internal/resource"
	"github.com/mkenney-dev/aworld/internal/scheduler"
	"github.com/mkenney-dev/aworld/internal/video"
)

type fakeAudio struct {
	stoppedAll bool
}

func (f *fakeAudio) PlaySound(channel uint8, data []byte, freq, volume uint8) {}
func (f *fakeAudio) StopChannel(channel uint8)                                {}
func (f *fakeAudio) PlayMusic(data []byte, delay uint16, offset uint8)        {}
func (f *fakeAudio) UpdateMusicDelay(delay uint16)                            {}
func (f *fakeAudio) StopMusic()                                               {}
func (f *fakeAudio) StopAll()                                                 { f.stoppedAll = true }

type fakePresenter struct{}

func (fakePresenter) Present(frame *video.Buffer, palette video.Palette, delayMS int) error {
	return nil
}

func newTestContext(code []byte) (*Context, *fakeAudio) {
	descs := make([]resource.Descriptor, 2)
	reader := resource.NewMemReader(descs, map[int][]byte{})
	audio := &fakeAudio{}
	return &Context{
		Cursor:    cursor.New(code),
		Regs:      registers.New(),
		Stack:     callstack.New(),
		Threads:   scheduler.New(),
		Video:     video.NewEngine(fakePresenter{}),
		Resources: resource.New(reader),
		Audio:     audio,
		RequestPartSwitch: func(gamepart.ID) {
		},
	}, audio
}

func TestExecAddConstant(t *testing.T) {
	ctx, _ := newTestContext(nil)
	ctx.Regs.SetSigned(0, 10)
	_, err := Exec(ctx, Instruction{Op: OpAddConstant, Reg: 0, Imm16: 5})
	if err != nil {
		t.Fatalf("Exec() err = %v", err)
	}
	if got := ctx.Regs.Signed(0); got != 15 {
		t.Errorf("reg0 = %d, wanted 15", got)
	}
}

func TestExecCallAndReturn(t *testing.T) {
	ctx, _ := newTestContext([]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	ctx.Cursor.Skip(4) // pretend a 3-byte Call instruction at address 1 was just read

	if _, err := Exec(ctx, Instruction{Op: OpCall, Addr: 8}); err != nil {
		t.Fatalf("Exec(Call) err = %v", err)
	}
	if ctx.Cursor.Pos() != 8 {
		t.Errorf("Pos() after Call = %d, wanted 8", ctx.Cursor.Pos())
	}
	if ctx.Stack.Depth() != 1 {
		t.Errorf("Stack.Depth() = %d, wanted 1", ctx.Stack.Depth())
	}

	if _, err := Exec(ctx, Instruction{Op: OpReturn}); err != nil {
		t.Fatalf("Exec(Return) err = %v", err)
	}
	if ctx.Cursor.Pos() != 4 {
		t.Errorf("Pos() after Return = %d, wanted 4", ctx.Cursor.Pos())
	}
}

func TestExecYieldRequiresEmptyStack(t *testing.T) {
	ctx, _ := newTestContext(nil)
	ctx.Stack.Push(1)
	if _, err := Exec(ctx, Instruction{Op: OpYield}); !errors.Is(err, ErrYieldWithinFunction) {
		t.Errorf("Exec(Yield) err = %v, wanted ErrYieldWithinFunction", err)
	}
}

func TestExecYieldReturnsYieldAction(t *testing.T) {
	ctx, _ := newTestContext(nil)
	action, err := Exec(ctx, Instruction{Op: OpYield})
	if err != nil {
		t.Fatalf("Exec(Yield) err = %v", err)
	}
	if action != Yield {
		t.Errorf("action = %v, wanted Yield", action)
	}
}

func TestExecKillReturnsDeactivate(t *testing.T) {
	ctx, _ := newTestContext(nil)
	action, err := Exec(ctx, Instruction{Op: OpKill})
	if err != nil {
		t.Fatalf("Exec(Kill) err = %v", err)
	}
	if action != Deactivate {
		t.Errorf("action = %v, wanted Deactivate", action)
	}
}

func TestExecJumpIfNotZeroLoop(t *testing.T) {
	// Address 0 must exist in the code for the jump to be valid.
	ctx, _ := newTestContext([]byte{0})
	ctx.Regs.SetSigned(0, 0) // decrements to -1, non-zero -> jumps
	action, err := Exec(ctx, Instruction{Op: OpJumpIfNotZero, Reg: 0, Addr: 0})
	if err != nil {
		t.Fatalf("Exec() err = %v", err)
	}
	if action != Continue {
		t.Errorf("action = %v, wanted Continue", action)
	}
	if got := ctx.Regs.Signed(0); got != -1 {
		t.Errorf("reg0 = %d, wanted -1", got)
	}
}

func TestExecControlResourcesPartSwitch(t *testing.T) {
	ctx, _ := newTestContext(nil)
	var requested gamepart.ID
	var called bool
	ctx.RequestPartSwitch = func(id gamepart.ID) {
		requested = id
		called = true
	}
	_, err := Exec(ctx, Instruction{Op: OpControlResources, ResourceID: gamepart.FirstReservedResourceID + int(gamepart.Gameplay2)})
	if err != nil {
		t.Fatalf("Exec() err = %v", err)
	}
	if !called || requested != gamepart.Gameplay2 {
		t.Errorf("requested part = %v, called = %v, wanted Gameplay2, true", requested, called)
	}
}

func TestExecControlResourcesUnloadAll(t *testing.T) {
	ctx, audio := newTestContext(nil)
	_, err := Exec(ctx, Instruction{Op: OpControlResources, ResourceID: 0})
	if err != nil {
		t.Fatalf("Exec() err = %v", err)
	}
	if !audio.stoppedAll {
		t.Errorf("audio.StopAll() not called")
	}
}

func TestExecAddWraps(t *testing.T) {
	ctx, _ := newTestContext(nil)
	ctx.Regs.SetSigned(0, 32767)
	ctx.Regs.SetSigned(1, 1)
	if _, err := Exec(ctx, Instruction{Op: OpAdd, Reg: 0, Reg2: 1}); err != nil {
		t.Fatalf("Exec() err = %v", err)
	}
	if got := ctx.Regs.Signed(0); got != -32768 {
		t.Errorf("reg0 = %d, wanted -32768", got)
	}
}
