package gameboy

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/internal/serial"
	"github.com/thelolagemann/sm83/pkg/log"
)

// program returns a ROM image with code placed at 0x0100.
func program(code ...uint8) []byte {
	rom := make([]byte, 0x0100+len(code))
	copy(rom[0x0100:], code)
	return rom
}

// serialProgram writes s to the serial data register, then spins.
func serialProgram(s string) []byte {
	var code []uint8
	for _, c := range []byte(s) {
		code = append(code, 0x3E, c, 0xE0, 0x01) // LD A,c; LDH ($01),A
	}
	return program(append(code, 0x18, 0xFE)...) // JR -2
}

func TestGameBoy_Scenario(t *testing.T) {
	g, err := NewGameBoy(program(0x3E, 0x05, 0xC6, 0x03))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		if _, err := g.Step(); err != nil {
			t.Fatal(err)
		}
	}

	s := g.Registers()
	if s.A != 0x08 || s.F != 0x00 || s.PC != 0x0104 || s.Ticks != 4 {
		t.Errorf("expecting A=08 F=00 PC=0104 ticks=4, was A=%02x F=%02x PC=%04x ticks=%d", s.A, s.F, s.PC, s.Ticks)
	}
}

func TestGameBoy_ROMTooLarge(t *testing.T) {
	_, err := NewGameBoy(make([]byte, mmu.ROMSize+1))
	if !errors.Is(err, ErrROMTooLarge) {
		t.Errorf("expecting ErrROMTooLarge, got %v", err)
	}
}

func TestGameBoy_RunFor(t *testing.T) {
	// CALL a16 costs 6 ticks, so a budget of 8 overshoots to 12
	g, err := NewGameBoy(program(0xCD, 0x00, 0x01))
	if err != nil {
		t.Fatal(err)
	}
	elapsed, err := g.RunFor(8)
	if err != nil {
		t.Fatal(err)
	}
	if elapsed != 12 || g.Ticks() != 12 {
		t.Errorf("expecting 12 ticks, was %d", elapsed)
	}
}

func TestGameBoy_Frame(t *testing.T) {
	g, err := NewGameBoy(program(0xCD, 0x00, 0x01), WithTicksPerFrame(100))
	if err != nil {
		t.Fatal(err)
	}

	for frame := 1; frame <= 30; frame++ {
		if err := g.Frame(); err != nil {
			t.Fatal(err)
		}
		// never more than one instruction of overshoot
		if over := int(g.Ticks()) - frame*100; over < 0 || over >= 6 {
			t.Fatalf("frame %d: ticks %d overshoot %d", frame, g.Ticks(), over)
		}
	}
}

func TestGameBoy_FrameDefault(t *testing.T) {
	g, err := NewGameBoy(program(0x18, 0xFE))
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Frame(); err != nil {
		t.Fatal(err)
	}
	// JR -2 costs 3 ticks, which divides the frame evenly
	if g.Ticks() != TicksPerFrame {
		t.Errorf("expecting %d ticks, was %d", TicksPerFrame, g.Ticks())
	}
}

func TestGameBoy_UndefinedOpcode(t *testing.T) {
	var b bytes.Buffer
	g, err := NewGameBoy(program(0x00, 0xFD), WithLogger(log.NewWithOutput(&b, logrus.ErrorLevel)))
	if err != nil {
		t.Fatal(err)
	}

	err = g.Frame()
	var undefined *cpu.UndefinedOpcodeError
	if !errors.As(err, &undefined) || undefined.Opcode != 0xFD || undefined.PC != 0x0101 {
		t.Fatalf("expecting undefined opcode fd at 0101, got %v", err)
	}
	if !strings.Contains(b.String(), "undefined opcode 0xFD") {
		t.Errorf("expecting the error to be logged, was %q", b.String())
	}
	if _, err := g.RunFor(10); !errors.Is(err, cpu.ErrStopped) {
		t.Errorf("expecting ErrStopped, got %v", err)
	}
}

func TestGameBoy_Serial(t *testing.T) {
	out := &serial.Buffer{}
	g, err := NewGameBoy(serialProgram("Passed"), WithSerial(out))
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Frame(); err != nil {
		t.Fatal(err)
	}
	if out.String() != "Passed" || out.Result() != serial.Passed {
		t.Errorf("expecting serial output %q, was %q", "Passed", out.String())
	}
}

func TestGameBoy_Inspection(t *testing.T) {
	// LD HL,$C000; LD (HL),$42; LD A,$99; LDH ($80),A
	g, err := NewGameBoy(program(0x21, 0x00, 0xC0, 0x36, 0x42, 0x3E, 0x99, 0xE0, 0x80))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.RunFor(10); err != nil {
		t.Fatal(err)
	}

	if wram := g.Memory(mmu.WRAM); len(wram) != mmu.WRAMSize || wram[0] != 0x42 {
		t.Errorf("expecting WRAM[0] = 42")
	}
	if hram := g.Memory(mmu.HRAM); hram[0] != 0x99 {
		t.Errorf("expecting HRAM[0] = 99, was %02x", hram[0])
	}
	if g.Peek(0xC000) != 0x42 || g.Peek(0x0100) != 0x21 {
		t.Errorf("unexpected Peek")
	}
	ticks := g.Ticks()
	g.Peek(0xFF04)
	if g.Ticks() != ticks {
		t.Errorf("expecting Peek not to tick")
	}
}

func TestGameBoy_Fingerprint(t *testing.T) {
	rom := serialProgram("deterministic")
	a, err := NewGameBoy(rom)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewGameBoy(rom)
	if err != nil {
		t.Fatal(err)
	}

	if a.Fingerprint() != b.Fingerprint() {
		t.Fatalf("expecting identical fingerprints after reset")
	}
	for i := 0; i < 5; i++ {
		if err := a.Frame(); err != nil {
			t.Fatal(err)
		}
		if err := b.Frame(); err != nil {
			t.Fatal(err)
		}
		if a.Fingerprint() != b.Fingerprint() {
			t.Fatalf("frame %d: fingerprints diverged", i)
		}
	}

	before := a.Fingerprint()
	if _, err := a.Step(); err != nil {
		t.Fatal(err)
	}
	if a.Fingerprint() == before {
		t.Errorf("expecting a step to change the fingerprint")
	}

	a.Reset()
	fresh, _ := NewGameBoy(rom)
	if a.Fingerprint() != fresh.Fingerprint() {
		t.Errorf("expecting Reset to restore the initial fingerprint")
	}
}

func TestGameBoy_HaltBugOption(t *testing.T) {
	// EI is not executed, so the pending interrupt is never serviced
	rom := program(0x76, 0x3C, 0x00) // HALT; INC A; NOP
	for _, tt := range []struct {
		enabled bool
		want    uint8
	}{{true, 0x02}, {false, 0x01}} {
		g, err := NewGameBoy(rom, WithHaltBug(tt.enabled))
		if err != nil {
			t.Fatal(err)
		}
		g.Interrupts.Flag, g.Interrupts.Enable = 0x01, 0x01
		for i := 0; i < 3; i++ {
			if _, err := g.Step(); err != nil {
				t.Fatal(err)
			}
		}
		if g.Registers().A != tt.want {
			t.Errorf("halt bug %v: A expecting %02x, was %02x", tt.enabled, tt.want, g.Registers().A)
		}
	}
}

func TestGameBoy_Trace(t *testing.T) {
	var b bytes.Buffer
	g, err := NewGameBoy(program(0x00), Trace(), WithLogger(log.NewWithOutput(&b, logrus.DebugLevel)))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), "loaded 257 byte ROM") {
		t.Errorf("expecting ROM load to be logged, was %q", b.String())
	}
	if _, err := g.Step(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), "0100 NOP") {
		t.Errorf("expecting trace line, was %q", b.String())
	}
}

func TestGameBoy_CartridgeHeader(t *testing.T) {
	rom := make([]byte, 0x8000)
	copy(rom[0x0134:], "BANKED")
	rom[0x0147] = 0x01

	var b bytes.Buffer
	if _, err := NewGameBoy(rom, WithLogger(log.NewWithOutput(&b, logrus.InfoLevel))); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"BANKED" MBC1`, "header checksum mismatch", "MBC1 bank switching is not supported"} {
		if !strings.Contains(b.String(), want) {
			t.Errorf("expecting %q to be logged, was %q", want, b.String())
		}
	}
}
