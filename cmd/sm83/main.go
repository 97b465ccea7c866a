package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/pkg/errors"
	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/gameboy"
	"github.com/thelolagemann/sm83/internal/serial"
	"github.com/thelolagemann/sm83/internal/serial/web"
	"github.com/thelolagemann/sm83/pkg/log"
	"github.com/thelolagemann/sm83/pkg/utils"
)

// statsviewAddr is where -statsview serves runtime statistics.
const statsviewAddr = "localhost:12600"

func main() {
	romFile := flag.String("rom", "", "The rom file to load (.gb, .bin, .gz, .zip or .7z)")
	frames := flag.Int("frames", 0, "The number of frames to run, 0 runs until the ROM reports Passed or Failed over serial")
	ticks := flag.Int("ticks", 0, "Run for this many ticks instead of a number of frames")
	logLevel := flag.String("log-level", "info", "The log level (debug, info, warn, error)")
	trace := flag.Bool("trace", false, "Log every executed instruction at debug level")
	haltBug := flag.Bool("halt-bug", true, "Emulate the HALT bug")
	serve := flag.String("serve", "", "Serve serial output to websocket clients on this address, e.g. :8090")
	stats := flag.Bool("statsview", false, "Serve runtime statistics on "+statsviewAddr)
	dumpTables := flag.Bool("dump-tables", false, "Print the instruction tables and exit")
	fingerprint := flag.Bool("fingerprint", false, "Print the state fingerprint when done")
	flag.Parse()

	logger, err := log.NewWithLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if *dumpTables {
		if err := cpu.DumpTables(os.Stdout); err != nil {
			logger.Fatal(err.Error())
		}
		return
	}

	if *romFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	if *stats {
		go func() {
			viewer.SetConfiguration(viewer.WithAddr(statsviewAddr))
			statsview.New().Start()
		}()
		logger.Infof("stats server available at %s/debug/statsview", statsviewAddr)
	}

	if err := run(logger, *romFile, options{
		frames:      *frames,
		ticks:       *ticks,
		trace:       *trace,
		haltBug:     *haltBug,
		serve:       *serve,
		fingerprint: *fingerprint,
	}); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

type options struct {
	frames      int
	ticks       int
	trace       bool
	haltBug     bool
	serve       string
	fingerprint bool
}

var errFailed = errors.New("ROM reported Failed")

func run(logger log.Logger, romFile string, o options) error {
	rom, err := utils.LoadFile(romFile)
	if err != nil {
		return err
	}

	// serial output is captured for the result, logged line by
	// line, and optionally served to websocket clients
	output := &serial.Buffer{}
	lines := serial.NewLogSink(logger)
	defer lines.Flush()
	sinks := []io.ByteWriter{output, lines}

	if o.serve != "" {
		hub := web.NewHub(logger)
		done := make(chan struct{})
		defer close(done)
		go hub.Run(done)
		go func() {
			if err := hub.ListenAndServe(o.serve); err != nil {
				logger.Errorf("web: %v", err)
			}
		}()
		sinks = append(sinks, hub)
	}

	opts := []gameboy.Opt{
		gameboy.WithLogger(logger),
		gameboy.WithSerial(serial.Tee(sinks...)),
		gameboy.WithHaltBug(o.haltBug),
		gameboy.NoBios(),
	}
	if o.trace {
		opts = append(opts, gameboy.Trace())
	}

	gb, err := gameboy.NewGameBoy(rom, opts...)
	if err != nil {
		return errors.Wrapf(err, "loading %s", romFile)
	}

	if o.ticks > 0 {
		_, err = gb.RunFor(o.ticks)
	} else {
		for frame := 0; o.frames == 0 || frame < o.frames; frame++ {
			if err = gb.Frame(); err != nil || output.Result() != serial.Running {
				break
			}
		}
	}
	if err != nil {
		return errors.Wrapf(err, "after %d ticks", gb.Ticks())
	}

	s := gb.Registers()
	logger.Infof("%s after %d ticks: A:%02X F:%02X B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X PC:%04X",
		output.Result(), s.Ticks, s.A, s.F, s.B, s.C, s.D, s.E, s.H, s.L, s.SP, s.PC)
	if o.fingerprint {
		fmt.Printf("%016x\n", gb.Fingerprint())
	}

	if output.Result() == serial.Failed {
		return errFailed
	}
	return nil
}
