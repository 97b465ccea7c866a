package gameboy

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thelolagemann/sm83/internal/serial"
	"github.com/thelolagemann/sm83/pkg/utils"
)

const (
	blarggROMPath = "testdata/blargg"
	// blarggFrames bounds how long a single ROM may run for.
	blarggFrames = 60 * 60
)

// Test_Blargg runs the individual cpu_instrs ROMs, which report
// their result on the serial port. The ROMs are not distributed with
// the repository and are looked for in testdata/blargg.
func Test_Blargg(t *testing.T) {
	romDir := filepath.Join(blarggROMPath, "cpu_instrs", "individual")
	if _, err := os.Stat(romDir); os.IsNotExist(err) {
		t.Skipf("%s not present", romDir)
	}

	roms, err := filepath.Glob(filepath.Join(romDir, "*.gb"))
	if err != nil {
		t.Fatal(err)
	}

	for _, rom := range roms {
		rom := rom
		t.Run(strings.TrimSuffix(filepath.Base(rom), ".gb"), func(t *testing.T) {
			image, err := utils.LoadFile(rom)
			if err != nil {
				t.Fatal(err)
			}

			output := &serial.Buffer{}
			g, err := NewGameBoy(image, WithSerial(output))
			if err != nil {
				t.Fatal(err)
			}

			for i := 0; i < blarggFrames && output.Result() == serial.Running; i++ {
				if err := g.Frame(); err != nil {
					t.Fatal(err)
				}
			}

			if output.Result() != serial.Passed {
				t.Errorf("expecting output to contain 'Passed', got '%s'", output.String())
			}
		})
	}
}
