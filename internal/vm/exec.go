package vm

import (
	"github.com/mkenney-dev/aworld/internal/callstack"
	"github.com/mkenney-dev/aworld/internal/cursor"
	"github.com/mkenney-dev/aworld/internal/gamepart"
	"github.com/mkenney-dev/aworld/internal/host"
	"github.com/mkenney-dev/aworld/internal/registers"
	"github.com/mkenney-dev/aworld/internal/resource"
	"github.com/mkenney-dev/aworld/internal/scheduler"
	"github.com/mkenney-dev/aworld/internal/video"
)

// Context bundles every collaborator a single instruction's execution
// may need to touch. The engine driver constructs one Context per
// thread-run and reuses it across that thread's instructions within
// the tic.
type Context struct {
	Cursor  *cursor.Cursor
	Regs    *registers.Bank
	Stack   *callstack.Stack
	Threads *scheduler.Table
	Video   *video.Engine
	Font    *video.Font
	Strings video.StringTable

	Resources *resource.Memory
	Audio     host.AudioPlayer

	// RequestPartSwitch is called when ControlResources targets the
	// reserved game-part id range; the driver supplies a closure that
	// records the request for application at the next tic boundary.
	RequestPartSwitch func(gamepart.ID)
}

// Exec executes one decoded instruction against ctx and returns the
// scheduling action it produces. On Yield, ctx.Cursor.Pos() is the
// resume address the driver should save to the thread's program
// counter.
func Exec(ctx *Context, instr Instruction) (Action, error) {
	switch instr.Op {
	case OpSetConstant:
		ctx.Regs.SetSigned(instr.Reg, instr.Imm16)
	case OpCopy:
		ctx.Regs.SetSigned(instr.Reg, ctx.Regs.Signed(instr.Reg2))
	case OpAdd:
		ctx.Regs.Add(instr.Reg, instr.Reg2)
	case OpAddConstant:
		ctx.Regs.AddConstant(instr.Reg, instr.Imm16)
	case OpSub:
		ctx.Regs.Sub(instr.Reg, instr.Reg2)
	case OpAnd:
		ctx.Regs.And(instr.Reg, instr.Mask)
	case OpOr:
		ctx.Regs.Or(instr.Reg, instr.Mask)
	case OpShiftLeft:
		ctx.Regs.ShiftLeft(instr.Reg, instr.Shift)
	case OpShiftRight:
		ctx.Regs.ShiftRight(instr.Reg, instr.Shift)

	case OpJump:
		if err := ctx.Cursor.Jump(instr.Addr); err != nil {
			return Continue, err
		}

	case OpCall:
		if err := ctx.Stack.Push(ctx.Cursor.Pos()); err != nil {
			return Continue, err
		}
		if err := ctx.Cursor.Jump(instr.Addr); err != nil {
			return Continue, err
		}

	case OpReturn:
		addr, err := ctx.Stack.Pop()
		if err != nil {
			return Continue, err
		}
		if err := ctx.Cursor.Jump(addr); err != nil {
			return Continue, err
		}

	case OpJumpIfNotZero:
		if ctx.Regs.DecrementAndTest(instr.Reg) {
			if err := ctx.Cursor.Jump(instr.Addr); err != nil {
				return Continue, err
			}
		}

	case OpJumpConditional:
		if evalJumpConditional(ctx.Regs, instr) {
			if err := ctx.Cursor.Jump(instr.Addr); err != nil {
				return Continue, err
			}
		}

	case OpActivateThread:
		if err := ctx.Threads.Activate(instr.ThreadID, instr.Addr); err != nil {
			return Continue, err
		}
	case OpControlThreads:
		if err := ctx.Threads.ControlRange(instr.ThreadStart, instr.ThreadEnd, scheduler.PauseOp(instr.ThreadOp)); err != nil {
			return Continue, err
		}

	case OpKill:
		return Deactivate, nil

	case OpYield:
		if ctx.Stack.Depth() != 0 {
			return Continue, ErrYieldWithinFunction
		}
		return Yield, nil

	case OpSelectPalette:
		if err := ctx.Video.SelectPalette(instr.PaletteID); err != nil {
			return Continue, err
		}
	case OpSelectVideoBuffer:
		if err := ctx.Video.SelectTarget(instr.BufferID); err != nil {
			return Continue, err
		}
	case OpFillVideoBuffer:
		if err := ctx.Video.Fill(instr.BufferID, instr.Color); err != nil {
			return Continue, err
		}
	case OpCopyVideoBuffer:
		scrollY := ctx.Regs.Signed(registers.ScrollY)
		if err := ctx.Video.Copy(instr.BufferID, instr.BufferID2, instr.Scroll, scrollY); err != nil {
			return Continue, err
		}
	case OpRenderVideoBuffer:
		delayMS := int(ctx.Regs.Unsigned(registers.FrameDuration)) * 20
		if err := ctx.Video.MarkReady(instr.BufferID, delayMS); err != nil {
			return Continue, err
		}
		ctx.Regs.SetUnsigned(registers.RenderUnknown, 0)

	case OpDrawString:
		if err := video.DrawString(ctx.Video.Target(), ctx.Font, ctx.Strings, instr.StringID, instr.Color, instr.Col, instr.Row); err != nil {
			return Continue, err
		}

	case OpControlResources:
		if err := execControlResources(ctx, instr); err != nil {
			return Continue, err
		}

	case OpControlSound:
		if err := execControlSound(ctx, instr); err != nil {
			return Continue, err
		}

	case OpControlMusic:
		if err := execControlMusic(ctx, instr); err != nil {
			return Continue, err
		}

	case OpDrawBackgroundPolygon:
		if err := ctx.Video.DrawBackgroundPolygon(instr.Addr, instr.PolygonX, instr.PolygonY, instr.Zoom); err != nil {
			return Continue, err
		}
	case OpDrawSpritePolygon:
		if err := ctx.Video.DrawSpritePolygon(instr.Addr, instr.PolygonX, instr.PolygonY, instr.Zoom); err != nil {
			return Continue, err
		}

	default:
		return Continue, ErrInvalidOpcode
	}

	return Continue, nil
}

func execControlResources(ctx *Context, instr Instruction) error {
	id := instr.ResourceID
	switch {
	case id == 0:
		ctx.Resources.UnloadAll()
		ctx.Audio.StopAll()
		return nil
	default:
		if part, ok := gamepart.FromControlResourcesID(id); ok {
			ctx.RequestPartSwitch(part)
			return nil
		}
		typ, err := ctx.Resources.TypeOf(id)
		if err != nil {
			return err
		}
		buf, err := ctx.Resources.LoadIndividual(id)
		if err != nil {
			return err
		}
		if typ == resource.TypeBitmap {
			return ctx.Video.LoadBitmap(buf)
		}
		return nil
	}
}

func execControlSound(ctx *Context, instr Instruction) error {
	if instr.SoundVolume == 0 {
		ctx.Audio.StopChannel(instr.Channel)
		return nil
	}
	buf, err := ctx.Resources.LoadIndividual(instr.ResourceID)
	if err != nil {
		return err
	}
	ctx.Audio.PlaySound(instr.Channel, buf, instr.SoundFreq, instr.SoundVolume)
	return nil
}

func execControlMusic(ctx *Context, instr Instruction) error {
	switch {
	case instr.ResourceID != 0:
		buf, err := ctx.Resources.LoadIndividual(instr.ResourceID)
		if err != nil {
			return err
		}
		ctx.Audio.PlayMusic(buf, instr.MusicDelay, instr.MusicOffset)
	case instr.MusicDelay != 0:
		ctx.Audio.UpdateMusicDelay(instr.MusicDelay)
	default:
		ctx.Audio.StopMusic()
	}
	return nil
}

// evalJumpConditional compares the lhs register (signed) against the
// decoded right-hand side per section 4.2's JumpConditional contract.
func evalJumpConditional(regs *registers.Bank, instr Instruction) bool {
	lhs := regs.Signed(instr.Reg)

	var rhs int16
	switch instr.RHSKind {
	case RHSImmediate8, RHSImmediate16:
		rhs = instr.RHSImm
	case RHSRegister:
		rhs = regs.Signed(instr.RHSReg)
	}

	switch instr.Cmp {
	case CmpEqual:
		return lhs == rhs
	case CmpNotEqual:
		return lhs != rhs
	case CmpGreater:
		return lhs > rhs
	case CmpGreaterEqual:
		return lhs >= rhs
	case CmpLess:
		return lhs < rhs
	case CmpLessEqual:
		return lhs <= rhs
	default:
		return false
	}
}
