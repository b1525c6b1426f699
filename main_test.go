package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/howeyc/fsnotify"

	"github.com/nf/ch8/chip8"
)

func writeROM(t *testing.T, rom []byte) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "test.ch8")
	if err := os.WriteFile(name, rom, 0o644); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestLoadROM(t *testing.T) {
	c := config{quirks: chip8.DefaultQuirks, seed: 1}
	name := writeROM(t, []byte{0xc0, 0xff, 0xc1, 0xff})

	runTwice := func() [2]byte {
		m, err := loadROM(name, c)
		if err != nil {
			t.Fatal(err)
		}
		m.Step()
		m.Step()
		return [2]byte{m.V[0], m.V[1]}
	}
	if a, b := runTwice(), runTwice(); a != b {
		t.Errorf("seeded machines differ: %v != %v", a, b)
	}

	big := writeROM(t, make([]byte, chip8.MaxROMSize+1))
	_, err := loadROM(big, c)
	if !errors.Is(err, chip8.ErrROMTooLarge) || !strings.Contains(err.Error(), big) {
		t.Errorf("loadROM of oversized ROM returned %v", err)
	}

	if _, err := loadROM(filepath.Join(t.TempDir(), "missing.ch8"), c); err == nil {
		t.Error("loadROM of missing file returned nil error")
	}
}

func TestParseKeyWait(t *testing.T) {
	for s, want := range map[string]chip8.KeyWaitMode{
		"release": chip8.KeyWaitRelease,
		"press":   chip8.KeyWaitPress,
	} {
		if k, err := parseKeyWait(s); err != nil || k != want {
			t.Errorf("parseKeyWait(%q) == %v, %v", s, k, err)
		}
	}
	if _, err := parseKeyWait("down"); err == nil {
		t.Error("parseKeyWait accepted an invalid mode")
	}
}

func TestIsROMChange(t *testing.T) {
	rom := filepath.Clean("roms/pong.ch8")
	if isROMChange(&fsnotify.FileEvent{Name: "roms/other.ch8"}, rom) {
		t.Error("change to another file reported")
	}
	if !isROMChange(&fsnotify.FileEvent{Name: "roms/./pong.ch8"}, rom) {
		t.Error("change to ROM not reported")
	}
}
