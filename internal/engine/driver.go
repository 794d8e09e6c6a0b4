// Package engine implements the VM driver's per-tic loop described in
// section 4.3: applying deferred thread scheduling, translating user
// input into registers, and running every active, unpaused thread in
// index order.
package engine

import (
	"fmt"

	"github.com/mkenney-dev/aworld/internal/callstack"
	"github.com/mkenney-dev/aworld/internal/cursor"
	"github.com/mkenney-dev/aworld/internal/gamepart"
	"github.com/mkenney-dev/aworld/internal/host"
	"github.com/mkenney-dev/aworld/internal/input"
	"github.com/mkenney-dev/aworld/internal/registers"
	"github.com/mkenney-dev/aworld/internal/resource"
	"github.com/mkenney-dev/aworld/internal/scheduler"
	"github.com/mkenney-dev/aworld/internal/video"
	"github.com/mkenney-dev/aworld/internal/vm"
)

// MaxInstructionsPerTic bounds a single thread's run within one tic,
// per section 4.3; exceeding it almost always indicates a bytecode
// infinite loop rather than a legitimate workload.
const MaxInstructionsPerTic = 10000

// Driver owns every VM collaborator and runs the tic loop over them.
type Driver struct {
	Regs      *registers.Bank
	Threads   *scheduler.Table
	Resources *resource.Memory
	Video     *video.Engine
	Audio     host.AudioPlayer
	Font      *video.Font
	Strings   video.StringTable

	stacks   [scheduler.Count]*callstack.Stack
	bytecode []byte

	currentPart   gamepart.ID
	scheduledPart *gamepart.ID
}

// New returns a Driver wired to its collaborators. The caller is
// responsible for calling LoadPart at least once before the first
// RunTic.
func New(regs *registers.Bank, resources *resource.Memory, vid *video.Engine, audio host.AudioPlayer, font *video.Font, strings video.StringTable) *Driver {
	d := &Driver{
		Regs:      regs,
		Threads:   scheduler.New(),
		Resources: resources,
		Video:     vid,
		Audio:     audio,
		Font:      font,
		Strings:   strings,
	}
	for i := range d.stacks {
		d.stacks[i] = callstack.New()
	}
	return d
}

// LoadPart performs section 4.5's game-part load sequence and resets
// thread state per section 8's invariant.
func (d *Driver) LoadPart(id gamepart.ID) error {
	bindings, err := id.Resources()
	if err != nil {
		return err
	}

	res, err := d.Resources.LoadPart(bindings)
	if err != nil {
		return fmt.Errorf("engine: loading part %v: %w", id, err)
	}

	palettes, err := video.ParsePaletteTable(res.Palettes)
	if err != nil {
		return fmt.Errorf("engine: parsing palettes for part %v: %w", id, err)
	}

	d.bytecode = res.Bytecode
	d.Video.SetPalettes(palettes)
	d.Video.SetPolygons(res.Polygons)
	d.Video.SetAnimations(res.Animations)

	d.Threads.ResetForGamePart()
	d.currentPart = id
	d.scheduledPart = nil

	return nil
}

// CurrentPart returns the game part active for the current tic.
func (d *Driver) CurrentPart() gamepart.ID {
	return d.currentPart
}

// RunTic executes one full tic: apply scheduled part/thread state,
// translate snapshot into registers, then run every active thread in
// index order, per section 4.3.
func (d *Driver) RunTic(snapshot input.Snapshot) error {
	if d.scheduledPart != nil {
		part := *d.scheduledPart
		if err := d.LoadPart(part); err != nil {
			return err
		}
	}

	if snapshot.ShowPassword && d.currentPart.AllowsPasswordEntry() {
		d.scheduledPart = new(gamepart.ID)
		*d.scheduledPart = gamepart.PasswordEntry
	}

	input.Apply(d.Regs, snapshot, d.currentPart == gamepart.PasswordEntry)

	d.Threads.ApplySchedule()

	for id := 0; id < scheduler.Count; id++ {
		th := &d.Threads.Threads[id]
		if !th.Active || th.Paused {
			continue
		}
		if err := d.runThread(id, th); err != nil {
			return fmt.Errorf("engine: thread %d: %w", id, err)
		}
	}

	return nil
}

func (d *Driver) runThread(id int, th *scheduler.Thread) error {
	stack := d.stacks[id]
	stack.Clear()

	c := cursor.New(d.bytecode)
	if err := c.Jump(th.PC); err != nil {
		return err
	}

	ctx := &vm.Context{
		Cursor:    c,
		Regs:      d.Regs,
		Stack:     stack,
		Threads:   d.Threads,
		Video:     d.Video,
		Font:      d.Font,
		Strings:   d.Strings,
		Resources: d.Resources,
		Audio:     d.Audio,
		RequestPartSwitch: func(part gamepart.ID) {
			p := part
			d.scheduledPart = &p
		},
	}

	for n := 0; ; n++ {
		if n >= MaxInstructionsPerTic {
			return vm.ErrInstructionLimitExceeded
		}

		instr, err := vm.Decode(c)
		if err != nil {
			return err
		}

		action, err := vm.Exec(ctx, instr)
		if err != nil {
			return err
		}

		switch action {
		case vm.Yield:
			th.Yield(c.Pos())
			return nil
		case vm.Deactivate:
			th.Deactivate()
			return nil
		}
	}
}
