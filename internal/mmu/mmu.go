// Package mmu provides the memory bus of the core. The MMU
// decodes the 16-bit address space into cartridge ROM/RAM,
// work RAM, high RAM, the timer registers, the interrupt
// registers and the serial data register.
package mmu

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/thelolagemann/sm83/internal/interrupts"
	"github.com/thelolagemann/sm83/internal/ram"
	"github.com/thelolagemann/sm83/internal/serial"
	"github.com/thelolagemann/sm83/internal/timer"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

const (
	// ROMSize is the size of the fixed cartridge ROM mapping.
	ROMSize = 0x8000
	// CartRAMSize is the size of the cartridge RAM.
	CartRAMSize = 0x2000
	// WRAMSize is the size of the work RAM.
	WRAMSize = 0x2000
	// HRAMSize is the size of the high RAM.
	HRAMSize = 0x7F
)

// ErrROMTooLarge is returned when a program image does not
// fit in the cartridge ROM. Nothing is written in that case.
var ErrROMTooLarge = errors.New("mmu: program image exceeds 32KiB")

// Region identifies one of the memory blocks held by the MMU.
type Region uint8

const (
	// ROM is the cartridge ROM (0x0000 - 0x7FFF).
	ROM Region = iota
	// CartRAM is the cartridge RAM (0xA000 - 0xBFFF).
	CartRAM
	// WRAM is the work RAM (0xC000 - 0xDFFF).
	WRAM
	// HRAM is the high RAM (0xFF80 - 0xFFFE).
	HRAM
)

// Regions lists every Region, in address order.
var Regions = []Region{ROM, CartRAM, WRAM, HRAM}

func (r Region) String() string {
	switch r {
	case ROM:
		return "ROM"
	case CartRAM:
		return "CartRAM"
	case WRAM:
		return "WRAM"
	case HRAM:
		return "HRAM"
	}
	return fmt.Sprintf("Region(%d)", uint8(r))
}

// MMU is the memory bus. It owns the memory blocks and the
// timer, but not the interrupt context, which the CPU hands
// to every Read, Write and Tick.
type MMU struct {
	// 0x0000 - 0x7FFF - ROM (32kB)
	rom *ram.RAM
	// 0xA000 - 0xBFFF - External RAM (8kB)
	cartRAM *ram.RAM
	// 0xC000 - 0xDFFF - Work RAM (8kB)
	wRAM *ram.RAM
	// 0xFF80 - 0xFFFE - High RAM (127B)
	hRAM *ram.RAM

	// 0xFF04 - 0xFF07 - timer registers
	Timer *timer.Controller

	// 0xFF01 - serial data sink
	serial io.ByteWriter

	Log log.Logger
}

// NewMMU returns a new MMU with zeroed memory, its own timer
// and no serial sink attached.
func NewMMU() *MMU {
	return &MMU{
		rom:     ram.NewRAM(ROMSize),
		cartRAM: ram.NewRAM(CartRAMSize),
		wRAM:    ram.NewRAM(WRAMSize),
		hRAM:    ram.NewRAM(HRAMSize),
		Timer:   timer.NewController(),
		serial:  serial.Discard(),
		Log:     log.NewNullLogger(),
	}
}

// AttachSerial attaches the sink that receives every byte
// written to types.SB. A nil sink discards the output.
func (m *MMU) AttachSerial(w io.ByteWriter) {
	if w == nil {
		w = serial.Discard()
	}
	m.serial = w
}

// LoadROM copies image verbatim into the start of the cartridge
// ROM. The remainder of the ROM is zeroed. Images larger than
// ROMSize are rejected and leave the ROM untouched.
func (m *MMU) LoadROM(image []byte) error {
	if len(image) > ROMSize {
		return errors.Wrapf(ErrROMTooLarge, "image is %d bytes", len(image))
	}
	m.rom.Clear()
	m.rom.Load(image)
	return nil
}

// Tick advances the timer by one tick.
func (m *MMU) Tick(irq *interrupts.Service) {
	m.Timer.Tick(irq)
}

// Read returns the value at the given address. Addresses that
// aren't decoded read as 0xFF.
func (m *MMU) Read(irq *interrupts.Service, address uint16) uint8 {
	switch {
	case address < 0x8000:
		return m.rom.Read(address)
	case address >= 0xA000 && address < 0xC000:
		return m.cartRAM.Read(address - 0xA000)
	case address >= 0xC000 && address < 0xE000:
		return m.wRAM.Read(address - 0xC000)
	case address >= types.DIV && address <= types.TAC:
		return m.Timer.Read(address)
	case address == types.IF:
		return irq.Flag
	case address >= 0xFF80 && address < 0xFFFF:
		return m.hRAM.Read(address - 0xFF80)
	case address == types.IE:
		return irq.Enable
	}

	return 0xFF
}

// Write writes the value to the given address. Writes to ROM,
// or to addresses that aren't decoded, are dropped.
func (m *MMU) Write(irq *interrupts.Service, address uint16, value uint8) {
	switch {
	case address < 0x8000:
		// read-only
	case address >= 0xA000 && address < 0xC000:
		m.cartRAM.Write(address-0xA000, value)
	case address >= 0xC000 && address < 0xE000:
		m.wRAM.Write(address-0xC000, value)
	case address >= types.DIV && address <= types.TAC:
		m.Timer.Write(address, value)
	case address == types.IF:
		irq.Flag = value
	case address == types.SB:
		if err := m.serial.WriteByte(value); err != nil {
			m.Log.Warnf("serial sink: %v", err)
		}
	case address >= 0xFF80 && address < 0xFFFF:
		m.hRAM.Write(address-0xFF80, value)
	case address == types.IE:
		irq.Enable = value
	}
}

// Region returns a copy of the raw bytes of the given region.
func (m *MMU) Region(r Region) []byte {
	switch r {
	case ROM:
		return m.rom.Bytes()
	case CartRAM:
		return m.cartRAM.Bytes()
	case WRAM:
		return m.wRAM.Bytes()
	case HRAM:
		return m.hRAM.Bytes()
	}
	return nil
}

// Reset clears every RAM block and the timer. The ROM is kept.
func (m *MMU) Reset() {
	m.cartRAM.Clear()
	m.wRAM.Clear()
	m.hRAM.Clear()
	m.Timer.Reset()
}
