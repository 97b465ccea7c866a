package cpu

import "testing"

func TestCPU_RotateShift(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint8 // CB opcode operating on B
		in     uint8
		carry  bool
		want   uint8
		wantF  uint8
	}{
		{"RLC", 0x00, 0x85, false, 0x0B, 0x10},
		{"RLC zero", 0x00, 0x00, true, 0x00, 0x80},
		{"RRC", 0x08, 0x01, false, 0x80, 0x10},
		{"RL", 0x10, 0x80, false, 0x00, 0x90},
		{"RL carry in", 0x10, 0x11, true, 0x23, 0x00},
		{"RR", 0x18, 0x01, false, 0x00, 0x90},
		{"RR carry in", 0x18, 0x8A, true, 0xC5, 0x00},
		{"SLA", 0x20, 0xFF, false, 0xFE, 0x10},
		{"SRA", 0x28, 0x81, false, 0xC0, 0x10},
		{"SRA positive", 0x28, 0x02, true, 0x01, 0x00},
		{"SWAP", 0x30, 0xF1, true, 0x1F, 0x00},
		{"SWAP zero", 0x30, 0x00, true, 0x00, 0x80},
		{"SRL", 0x38, 0x81, false, 0x40, 0x10},
		{"SRL zero", 0x38, 0x01, false, 0x00, 0x90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCPU(t, 0xCB, tt.opcode)
			c.B = tt.in
			c.F = 0x60
			c.SetFlag(FlagCarry, tt.carry)

			if ticks := step(t, c, 1); ticks != 2 {
				t.Errorf("ticks expecting 2, was %d", ticks)
			}
			if c.B != tt.want {
				t.Errorf("B expecting %02x, was %02x", tt.want, c.B)
			}
			if c.F != tt.wantF {
				t.Errorf("F expecting %02x, was %02x", tt.wantF, c.F)
			}
		})
	}
}

func TestCPU_AccumulatorRotateClearsZero(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint8
		cb     uint8
		in     uint8
		want   uint8
	}{
		{"RLCA", 0x07, 0x07, 0x00, 0x00},
		{"RLA", 0x17, 0x17, 0x80, 0x00},
		{"RRCA", 0x0F, 0x0F, 0x00, 0x00},
		{"RRA", 0x1F, 0x1F, 0x01, 0x00},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCPU(t, tt.opcode)
			c.A, c.F = tt.in, 0x00
			step(t, c, 1)
			if c.A != tt.want || c.Flag(FlagZero) {
				t.Errorf("expecting A %02x with Z clear, was A %02x F %02x", tt.want, c.A, c.F)
			}
			accumulatorCarry := c.Flag(FlagCarry)

			// the prefixed form sets Z from the result
			c = newTestCPU(t, 0xCB, tt.cb)
			c.A, c.F = tt.in, 0x00
			step(t, c, 1)
			if c.A != tt.want || !c.Flag(FlagZero) {
				t.Errorf("CB expecting A %02x with Z set, was A %02x F %02x", tt.want, c.A, c.F)
			}
			if c.Flag(FlagCarry) != accumulatorCarry {
				t.Errorf("expecting the same carry from both forms")
			}
		})
	}
}

func TestCPU_BitResSet(t *testing.T) {
	for b := uint8(0); b < 8; b++ {
		c := newTestCPU(t, 0xCB, 0x40+b<<3, 0xCB, 0x80+b<<3+7, 0xCB, 0xC0+b<<3)
		c.B = 0x00
		c.A = 0xFF
		c.F = 0x10

		step(t, c, 1) // BIT b,B
		if c.F != 0xB0 {
			t.Errorf("BIT %d,B: F expecting b0, was %02x", b, c.F)
		}
		step(t, c, 1) // RES b,A
		if c.A != 0xFF&^(1<<b) {
			t.Errorf("RES %d,A: expecting %02x, was %02x", b, 0xFF&^(1<<b), c.A)
		}
		step(t, c, 1) // SET b,B
		if c.B != 1<<b {
			t.Errorf("SET %d,B: expecting %02x, was %02x", b, 1<<b, c.B)
		}
		if c.F != 0xB0 {
			t.Errorf("RES/SET expecting flags untouched, was %02x", c.F)
		}
	}
}
