package vm

import (
	"github.com/mkenney-dev/aworld/internal/cursor"
	"github.com/mkenney-dev/aworld/internal/scheduler"
)

// Decode reads one full instruction from c, per section 4.2's opcode
// decoder and section 6.3's wire format. The cursor always advances
// by the instruction's complete byte width, even when a later
// semantic check (in Exec) will reject the decoded operands.
func Decode(c *cursor.Cursor) (Instruction, error) {
	raw, err := c.ReadU8()
	if err != nil {
		return Instruction{}, err
	}

	switch raw & 0xC0 {
	case 0x80:
		return decodeBackgroundPolygon(c, raw)
	case 0x40:
		return decodeSpritePolygon(c, raw)
	case 0x00:
		op := Opcode(raw & 0x3F)
		if op >= opcodeCount {
			return Instruction{}, ErrInvalidOpcode
		}
		return decodeTable(c, op)
	default:
		return Instruction{}, ErrInvalidOpcode
	}
}

func decodeBackgroundPolygon(c *cursor.Cursor, raw uint8) (Instruction, error) {
	lo, err := c.ReadU8()
	if err != nil {
		return Instruction{}, err
	}
	x, err := c.ReadU8()
	if err != nil {
		return Instruction{}, err
	}
	y, err := c.ReadU8()
	if err != nil {
		return Instruction{}, err
	}
	addr := (uint16(raw&0x3F)<<8 | uint16(lo)) << 1
	return Instruction{Op: OpDrawBackgroundPolygon, Addr: addr, PolygonX: int(x), PolygonY: int(y), Zoom: 64}, nil
}

func decodeSpritePolygon(c *cursor.Cursor, raw uint8) (Instruction, error) {
	lo, err := c.ReadU8()
	if err != nil {
		return Instruction{}, err
	}
	x, err := c.ReadU8()
	if err != nil {
		return Instruction{}, err
	}
	y, err := c.ReadU8()
	if err != nil {
		return Instruction{}, err
	}
	addr := (uint16(raw&0x3F)<<8 | uint16(lo)) << 1
	return Instruction{Op: OpDrawSpritePolygon, Addr: addr, PolygonX: int(x), PolygonY: int(y), Zoom: 64}, nil
}

func decodeTable(c *cursor.Cursor, op Opcode) (Instruction, error) {
	switch op {
	case OpSetConstant:
		reg, err := c.ReadU8()
		if err != nil {
			return Instruction{}, err
		}
		imm, err := c.ReadI16()
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: op, Reg: reg, Imm16: imm}, nil

	case OpCopy, OpAdd, OpSub:
		reg, err := c.ReadU8()
		if err != nil {
			return Instruction{}, err
		}
		reg2, err := c.ReadU8()
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: op, Reg: reg, Reg2: reg2}, nil

	case OpAddConstant:
		reg, err := c.ReadU8()
		if err != nil {
			return Instruction{}, err
		}
		imm, err := c.ReadI16()
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: op, Reg: reg, Imm16: imm}, nil

	case OpAnd, OpOr:
		reg, err := c.ReadU8()
		if err != nil {
			return Instruction{}, err
		}
		mask, err := c.ReadU16()
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: op, Reg: reg, Mask: mask}, nil

	case OpShiftLeft, OpShiftRight:
		reg, err := c.ReadU8()
		if err != nil {
			return Instruction{}, err
		}
		dist, err := c.ReadU16()
		if err != nil {
			return Instruction{}, err
		}
		if dist > 15 {
			return Instruction{}, ErrShiftTooLarge
		}
		return Instruction{Op: op, Reg: reg, Shift: uint8(dist)}, nil

	case OpJump, OpCall:
		addr, err := c.ReadU16()
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: op, Addr: addr}, nil

	case OpReturn, OpKill, OpYield:
		return Instruction{Op: op}, nil

	case OpJumpIfNotZero:
		reg, err := c.ReadU8()
		if err != nil {
			return Instruction{}, err
		}
		addr, err := c.ReadU16()
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: op, Reg: reg, Addr: addr}, nil

	case OpJumpConditional:
		return decodeJumpConditional(c)

	case OpActivateThread:
		id, err := c.ReadU8()
		if err != nil {
			return Instruction{}, err
		}
		addr, err := c.ReadU16()
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: op, ThreadID: id, Addr: addr}, nil

	case OpControlThreads:
		start, err := c.ReadU8()
		if err != nil {
			return Instruction{}, err
		}
		end, err := c.ReadU8()
		if err != nil {
			return Instruction{}, err
		}
		rawOp, err := c.ReadU8()
		if err != nil {
			return Instruction{}, err
		}
		if _, err := scheduler.ParsePauseOp(rawOp); err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: op, ThreadStart: start, ThreadEnd: end, ThreadOp: ThreadControlOp(rawOp)}, nil

	case OpSelectPalette:
		hi, err := c.ReadU8()
		if err != nil {
			return Instruction{}, err
		}
		if _, err := c.ReadU8(); err != nil { // dead byte, per section 4.2
			return Instruction{}, err
		}
		return Instruction{Op: op, PaletteID: hi}, nil

	case OpSelectVideoBuffer:
		id, err := c.ReadU8()
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: op, BufferID: id}, nil

	case OpFillVideoBuffer:
		id, err := c.ReadU8()
		if err != nil {
			return Instruction{}, err
		}
		color, err := c.ReadU8()
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: op, BufferID: id, Color: color}, nil

	case OpCopyVideoBuffer:
		rawSrc, err := c.ReadU8()
		if err != nil {
			return Instruction{}, err
		}
		dst, err := c.ReadU8()
		if err != nil {
			return Instruction{}, err
		}
		scroll := rawSrc&0x80 != 0
		src := rawSrc &^ 0xC0
		if rawSrc == 0xFF || rawSrc == 0xFE {
			src = rawSrc
			scroll = false
		}
		return Instruction{Op: op, BufferID: src, BufferID2: dst, Scroll: scroll}, nil

	case OpRenderVideoBuffer:
		id, err := c.ReadU8()
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: op, BufferID: id}, nil

	case OpDrawString:
		id, err := c.ReadU16()
		if err != nil {
			return Instruction{}, err
		}
		color, err := c.ReadU8()
		if err != nil {
			return Instruction{}, err
		}
		col, err := c.ReadU8()
		if err != nil {
			return Instruction{}, err
		}
		row, err := c.ReadU8()
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: op, StringID: id, Color: color, Col: int(col), Row: int(row)}, nil

	case OpControlResources:
		id, err := c.ReadU16()
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: op, ResourceID: int(id)}, nil

	case OpControlSound:
		res, err := c.ReadU16()
		if err != nil {
			return Instruction{}, err
		}
		freq, err := c.ReadU8()
		if err != nil {
			return Instruction{}, err
		}
		vol, err := c.ReadU8()
		if err != nil {
			return Instruction{}, err
		}
		ch, err := c.ReadU8()
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: op, ResourceID: int(res), SoundFreq: freq, SoundVolume: vol, Channel: ch}, nil

	case OpControlMusic:
		res, err := c.ReadU16()
		if err != nil {
			return Instruction{}, err
		}
		delay, err := c.ReadU16()
		if err != nil {
			return Instruction{}, err
		}
		offset, err := c.ReadU8()
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: op, ResourceID: int(res), MusicDelay: delay, MusicOffset: offset}, nil

	default:
		return Instruction{}, ErrInvalidOpcode
	}
}

func decodeJumpConditional(c *cursor.Cursor) (Instruction, error) {
	control, err := c.ReadU8()
	if err != nil {
		return Instruction{}, err
	}
	lhs, err := c.ReadU8()
	if err != nil {
		return Instruction{}, err
	}

	instr := Instruction{Op: OpJumpConditional, Reg: lhs}

	switch control >> 6 {
	case 0:
		v, err := c.ReadU8()
		if err != nil {
			return Instruction{}, err
		}
		instr.RHSKind = RHSImmediate8
		instr.RHSImm = int16(v)
	case 1:
		v, err := c.ReadI16()
		if err != nil {
			return Instruction{}, err
		}
		instr.RHSKind = RHSImmediate16
		instr.RHSImm = v
	default:
		v, err := c.ReadU8()
		if err != nil {
			return Instruction{}, err
		}
		instr.RHSKind = RHSRegister
		instr.RHSReg = v
	}

	addr, err := c.ReadU16()
	if err != nil {
		return Instruction{}, err
	}
	instr.Addr = addr

	cmp := control & 0x07
	if cmp > 5 {
		return Instruction{}, ErrInvalidJumpComparison
	}
	instr.Cmp = JumpComparison(cmp)

	return instr, nil
}
