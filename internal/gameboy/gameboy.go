// Package gameboy provides the embedding layer of the SM83 core. It
// wires the CPU, the MMU, the timer and the interrupt context of a
// single instance together, and drives them a step, a tick budget
// or a frame at a time.
package gameboy

import (
	"encoding/binary"

	"github.com/cespare/xxhash"
	"github.com/thelolagemann/sm83/internal/cartridge"
	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/interrupts"
	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/internal/timer"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the Game Boy.
	ClockSpeed = 4194304 // 4.194304 MHz
	// CyclesPerFrame is the number of clock cycles per frame.
	CyclesPerFrame = 70224 // 4194304 / 59.7
	// TicksPerFrame is the number of CPU ticks per frame, where
	// a tick is a machine cycle of 4 clock cycles.
	TicksPerFrame = CyclesPerFrame / 4
)

// ErrROMTooLarge is returned when a program image is larger than
// the cartridge ROM. The ROM is left untouched.
var ErrROMTooLarge = mmu.ErrROMTooLarge

// GameBoy represents a Game Boy. It contains all the components of the Game Boy.
// It is the main entry point for the emulator.
type GameBoy struct {
	CPU        *cpu.CPU
	MMU        *mmu.MMU
	Interrupts *interrupts.Service
	Timer      *timer.Controller

	log.Logger

	ticksPerFrame int
	budget        int // ticks left in the current frame, negative on overshoot
}

// State is a snapshot of the CPU.
type State struct {
	cpu.Registers
	PC     uint16
	SP     uint16
	IME    bool
	Halted bool
	Ticks  uint64
}

// NewGameBoy returns a new GameBoy with rom loaded, in the
// post-boot state.
func NewGameBoy(rom []byte, opts ...Opt) (*GameBoy, error) {
	interrupt := interrupts.NewService()
	memBus := mmu.NewMMU()

	g := &GameBoy{
		CPU:           cpu.NewCPU(memBus, interrupt),
		MMU:           memBus,
		Interrupts:    interrupt,
		Timer:         memBus.Timer,
		Logger:        log.NewNullLogger(),
		ticksPerFrame: TicksPerFrame,
	}

	for _, opt := range opts {
		opt(g)
	}

	if err := g.LoadROM(rom); err != nil {
		return nil, err
	}
	g.Reset()

	return g, nil
}

// LoadROM copies image into the start of the cartridge ROM. Bytes
// past the end of the image read back as 0.
func (g *GameBoy) LoadROM(image []byte) error {
	if err := g.MMU.LoadROM(image); err != nil {
		g.Errorf("loading ROM: %v", err)
		return err
	}
	g.Infof("loaded %d byte ROM (xxhash %016x)", len(image), xxhash.Sum64(image))

	if header, ok := cartridge.ParseHeader(image); ok {
		g.Infof("cartridge: %s", header)
		if !header.Valid() {
			g.Warnf("cartridge: header checksum mismatch")
		}
		if header.CartridgeType.Banked() {
			g.Warnf("cartridge: %s bank switching is not supported, only the first 32kB are mapped", header.CartridgeType)
		}
	}
	return nil
}

// Reset returns the CPU to the post-boot state, and clears
// memory, the timer and the interrupt context. The ROM is kept.
func (g *GameBoy) Reset() {
	g.CPU.Reset()
	g.MMU.Reset()
	g.Interrupts.Reset()
	g.budget = 0
}

// Step executes a single step of the CPU, and returns the
// number of ticks that elapsed.
func (g *GameBoy) Step() (uint8, error) {
	return g.CPU.Step()
}

// RunFor steps the CPU until at least ticks have elapsed, and
// returns the number that did. It never stops mid instruction,
// so it may overshoot by up to one instruction.
func (g *GameBoy) RunFor(ticks int) (int, error) {
	elapsed := 0
	for elapsed < ticks {
		t, err := g.CPU.Step()
		elapsed += int(t)
		if err != nil {
			return elapsed, err
		}
	}
	return elapsed, nil
}

// Frame steps the CPU for a frame worth of ticks. Any overshoot
// of the previous frame is deducted, so that over many frames
// the CPU runs for exactly the number of ticks they add up to.
func (g *GameBoy) Frame() error {
	g.budget += g.ticksPerFrame
	for g.budget > 0 {
		t, err := g.CPU.Step()
		g.budget -= int(t)
		if err != nil {
			return err
		}
	}
	return nil
}

// Registers returns a snapshot of the CPU.
func (g *GameBoy) Registers() State {
	return State{
		Registers: g.CPU.Registers,
		PC:        g.CPU.PC,
		SP:        g.CPU.SP,
		IME:       g.CPU.IME(),
		Halted:    g.CPU.Halted(),
		Ticks:     g.CPU.Ticks(),
	}
}

// Memory returns a copy of the raw bytes of a memory region.
func (g *GameBoy) Memory(region mmu.Region) []byte {
	return g.MMU.Region(region)
}

// Peek reads the byte at addr without advancing the clock.
func (g *GameBoy) Peek(addr uint16) uint8 {
	return g.MMU.Read(g.Interrupts, addr)
}

// Ticks returns the number of ticks since the last Reset.
func (g *GameBoy) Ticks() uint64 {
	return g.CPU.Ticks()
}

// Fingerprint returns a hash of the complete observable state:
// the CPU, the interrupt and timer registers, and every memory
// region. Two instances fed the same ROM and stepped the same
// way always have the same fingerprint.
func (g *GameBoy) Fingerprint() uint64 {
	d := xxhash.New()

	s := g.Registers()
	buf := make([]byte, 0, 32)
	buf = append(buf, s.A, s.F, s.B, s.C, s.D, s.E, s.H, s.L)
	buf = binary.LittleEndian.AppendUint16(buf, s.PC)
	buf = binary.LittleEndian.AppendUint16(buf, s.SP)
	buf = append(buf, boolByte(s.IME), boolByte(s.Halted))
	buf = binary.LittleEndian.AppendUint64(buf, s.Ticks)
	buf = append(buf, g.Interrupts.Flag, g.Interrupts.Enable)
	for _, addr := range []uint16{types.DIV, types.TIMA, types.TMA, types.TAC} {
		buf = append(buf, g.Timer.Read(addr))
	}
	_, _ = d.Write(buf)

	for _, r := range mmu.Regions {
		_, _ = d.Write(g.MMU.Region(r))
	}

	return d.Sum64()
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
