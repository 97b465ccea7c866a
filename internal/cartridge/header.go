// Package cartridge parses the header found in every cartridge
// ROM. The core maps a fixed 32KiB of ROM, so the header is only
// inspected to describe the image being loaded.
package cartridge

import (
	"fmt"
	"strings"
)

// HeaderEnd is the first address past the header.
const HeaderEnd = 0x0150

var ramSizes = map[uint8]uint{
	0x00: 0,
	0x02: 8 * 1024,
	0x03: 32 * 1024,
	0x04: 128 * 1024,
	0x05: 64 * 1024,
}

// Type is the cartridge type byte (0x0147).
type Type uint8

const (
	ROM         Type = 0x00
	MBC1        Type = 0x01
	MBC1RAM     Type = 0x02
	MBC1RAMBATT Type = 0x03
	MBC2        Type = 0x05
	MBC2BATT    Type = 0x06
	ROMRAM      Type = 0x08
	ROMRAMBATT  Type = 0x09
	MBC3        Type = 0x11
	MBC5        Type = 0x19
)

func (t Type) String() string {
	switch t {
	case ROM:
		return "ROM ONLY"
	case MBC1, MBC1RAM, MBC1RAMBATT:
		return "MBC1"
	case MBC2, MBC2BATT:
		return "MBC2"
	case ROMRAM, ROMRAMBATT:
		return "ROM+RAM"
	}
	if t >= 0x0F && t <= 0x13 {
		return "MBC3"
	}
	if t >= MBC5 && t <= 0x1E {
		return "MBC5"
	}
	return fmt.Sprintf("Type(0x%02X)", uint8(t))
}

// Banked returns true if the cartridge type relies on a memory
// bank controller.
func (t Type) Banked() bool {
	return t != ROM && t != ROMRAM && t != ROMRAMBATT
}

// Header represents the header of a cartridge, each cartridge has a header and is
// located at the address space 0x0100-0x014F.
type Header struct {
	// 0x0134-0x0143 - Title of the game
	Title string

	// 0x0147 - CartridgeType describes the hardware on the cartridge
	CartridgeType Type

	// 0x0148 - ROMSize is calculated by 32kB x (1 << n)
	ROMSize uint

	// 0x0149 - RAMSize of the external RAM, if any
	RAMSize uint

	// 0x014D - HeaderChecksum of the bytes 0x0134-0x014C
	HeaderChecksum uint8

	computedChecksum uint8
}

// ParseHeader parses the header of rom. ok is false when rom is
// too short to hold one.
func ParseHeader(rom []byte) (h Header, ok bool) {
	if len(rom) < HeaderEnd {
		return Header{}, false
	}

	h.Title = strings.TrimRight(string(rom[0x0134:0x0144]), "\x00")
	h.CartridgeType = Type(rom[0x0147])
	h.ROMSize = (32 * 1024) << rom[0x0148]
	h.RAMSize = ramSizes[rom[0x0149]]
	h.HeaderChecksum = rom[0x014D]

	for _, b := range rom[0x0134:0x014D] {
		h.computedChecksum = h.computedChecksum - b - 1
	}

	return h, true
}

// Valid returns true if the header checksum matches the header.
func (h Header) Valid() bool {
	return h.HeaderChecksum == h.computedChecksum
}

func (h Header) String() string {
	return fmt.Sprintf("%q %s | ROM Size: %dkB | RAM Size: %dkB", h.Title, h.CartridgeType, h.ROMSize/1024, h.RAMSize/1024)
}
