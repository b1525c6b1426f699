// Command ch8 executes CHIP-8 ROMs.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"runtime/pprof"

	"github.com/nf/ch8/chip8"
	"github.com/nf/ch8/system"
)

type config struct {
	quirks chip8.Quirks
	rates  system.Rates
	seed   int64
	gui    bool
	scale  int
	dev    bool
}

func main() {
	log.SetPrefix("ch8: ")
	log.SetFlags(0)

	var (
		guiFlag   = flag.Bool("gui", false, "display in a window instead of the terminal")
		scaleFlag = flag.Int("scale", 10, "window `pixels` per display pixel (with -gui)")
		devFlag   = flag.Bool("dev", false, "enable developer mode (reset when the ROM file changes)")

		cpuFlag   = flag.Int("cpu_hz", system.DefaultRates.CPU, "instructions executed per second")
		fpsFlag   = flag.Int("fps", system.DefaultRates.Display, "display refresh rate in Hz")
		timerFlag = flag.Int("timer_hz", system.DefaultRates.Timers, "delay and sound timer rate in Hz")

		shiftFlag   = flag.Bool("shift_quirk", chip8.DefaultQuirks.ShiftCopiesY, "8XY6 and 8XYE copy VY into VX before shifting")
		keyWaitFlag = flag.String("keywait", chip8.DefaultQuirks.KeyWait.String(), "key transition that ends FX0A: `release` or press")
		indexFlag   = flag.Bool("index_flag", chip8.DefaultQuirks.IndexOverflowFlag, "FX1E sets VF when I exceeds 0xFFF")
		seedFlag    = flag.Int64("seed", 0, "random number seed (0 seeds from the clock)")

		cpuProfileFlag = flag.String("cpu_profile", "", "write CPU profile to `file`")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-gui] [-dev] [flags] <program.ch8>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
	}

	keyWait, err := parseKeyWait(*keyWaitFlag)
	if err != nil {
		log.Fatal(err)
	}
	c := config{
		quirks: chip8.Quirks{
			ShiftCopiesY:      *shiftFlag,
			KeyWait:           keyWait,
			IndexOverflowFlag: *indexFlag,
		},
		rates: system.Rates{
			CPU:     *cpuFlag,
			Display: *fpsFlag,
			Timers:  *timerFlag,
		},
		seed:  *seedFlag,
		gui:   *guiFlag,
		scale: *scaleFlag,
		dev:   *devFlag,
	}
	if c.rates.CPU <= 0 || c.rates.Display <= 0 || c.rates.Timers <= 0 {
		log.Fatal("rates must be positive")
	}

	var cpuProfile io.Closer
	if prof := *cpuProfileFlag; prof != "" {
		f, err := os.Create(prof)
		if err != nil {
			log.Fatalf("creating CPU profile file: %v", err)
		}
		pprof.StartCPUProfile(f)
		cpuProfile = f
	}

	err = run(flag.Arg(0), c)

	if f := cpuProfile; f != nil {
		pprof.StopCPUProfile()
		f.Close()
	}

	if err != nil {
		log.Fatal(err)
	}
}

func run(romFile string, c config) error {
	m, err := loadROM(romFile, c)
	if err != nil {
		return err
	}

	var (
		devs  = &system.Devices{}
		title = filepath.Base(romFile)
		fe    system.Frontend
	)
	if c.gui {
		fe = system.NewWindow(devs, title, c.scale)
	} else {
		t, err := system.NewTerminal(devs, title)
		if err != nil {
			return err
		}
		log.SetPrefix("")
		log.SetOutput(t.Log())
		defer func() {
			log.SetOutput(os.Stderr)
			log.SetPrefix("ch8: ")
		}()
		fe = t
	}

	r := system.NewRunner(fe, devs, c.rates, c.dev)
	if c.dev {
		w, err := watchROM(romFile, c, r)
		if err != nil {
			return err
		}
		defer w.Close()
	}
	return r.Run(m)
}

// loadROM reads romFile and returns a machine with it loaded.
func loadROM(romFile string, c config) (*chip8.Machine, error) {
	rom, err := os.ReadFile(romFile)
	if err != nil {
		return nil, err
	}
	m, err := chip8.NewMachine(rom, c.quirks)
	if err != nil {
		return nil, fmt.Errorf("%s: %w (%d bytes, limit %d)", romFile, err, len(rom), chip8.MaxROMSize)
	}
	if c.seed != 0 {
		m.Rand = rand.New(rand.NewSource(c.seed))
	}
	return m, nil
}

func parseKeyWait(s string) (chip8.KeyWaitMode, error) {
	for _, k := range []chip8.KeyWaitMode{chip8.KeyWaitRelease, chip8.KeyWaitPress} {
		if s == k.String() {
			return k, nil
		}
	}
	return 0, fmt.Errorf("invalid -keywait %q (want release or press)", s)
}
