package system

import (
	"image/color"
	"testing"
	"time"

	"golang.org/x/mobile/event/key"
)

func TestFramebuffer(t *testing.T) {
	var f Framebuffer
	if !f.Toggle(64+3, -1) {
		t.Fatal("Toggle returned false turning a pixel on")
	}
	if !f.Pixel(3, 31) {
		t.Error("Toggle did not wrap coordinates")
	}
	var fr Frame
	if n := f.Snapshot(&fr); n != 0 || fr[31][3] {
		t.Errorf("unpresented pixel visible in snapshot %d", n)
	}
	if !f.Present() {
		t.Error("Present reported no change")
	}
	if f.Present() {
		t.Error("second Present reported a change")
	}
	if n := f.Snapshot(&fr); n != 1 || !fr[31][3] {
		t.Errorf("snapshot %d missing presented pixel", n)
	}
	if f.Toggle(3, 31) {
		t.Error("Toggle returned true turning a pixel off")
	}
	f.Toggle(0, 0)
	f.Clear()
	if f.Pixel(0, 0) {
		t.Error("pixel on after Clear")
	}

	m := newImage()
	fr.Draw(m)
	if g := m.RGBAAt(3, 31); g != pixelOn {
		t.Errorf("pixel (3, 31) drawn as %v, want %v", g, pixelOn)
	}
	if g := m.RGBAAt(4, 31); g != (color.RGBA{0, 0, 0, 0xff}) {
		t.Errorf("pixel (4, 31) drawn as %v, want black", g)
	}
}

func TestKeypad(t *testing.T) {
	var k Keypad
	k.Press(0x3)
	k.PressAt(0xa, 100*time.Millisecond)
	if !k.IsPressed(0x3) || !k.IsPressed(0xa) || k.IsPressed(0x4) {
		t.Errorf("pressed keys are %.4x", k.Pressed())
	}
	if k.IsPressed(0x13) {
		t.Error("key out of range reported pressed")
	}
	k.Release(0x3)
	if g, w := k.Pressed(), uint16(1<<0xa); g != w {
		t.Errorf("Pressed() == %.4x, want %.4x", g, w)
	}
	k.Expire(300*time.Millisecond, termKeyHold)
	if !k.IsPressed(0xa) {
		t.Error("key expired within hold time")
	}
	k.Expire(400*time.Millisecond, termKeyHold)
	if k.IsPressed(0xa) {
		t.Error("key not expired after hold time")
	}
}

func TestKeyMaps(t *testing.T) {
	for r, want := range map[rune]byte{
		'1': 0x1, '4': 0xc, 'Q': 0x4, 'r': 0xd, 'x': 0x0, 'V': 0xf,
	} {
		if k, ok := keyForRune(r); !ok || k != want {
			t.Errorf("keyForRune(%q) == %x, %v, want %x", r, k, ok, want)
		}
	}
	if _, ok := keyForRune('p'); ok {
		t.Error("keyForRune('p') is mapped")
	}
	for i, r := range keyRunes {
		c, ok := keyForCode(keyCodes[i])
		if !ok || c != byte(i) {
			t.Errorf("key %x: code maps to %x, %v", i, c, ok)
		}
		if k, _ := keyForRune(r); k != byte(i) {
			t.Errorf("key %x: rune %q maps to %x", i, r, k)
		}
	}
	if _, ok := keyForCode(key.CodeP); ok {
		t.Error("keyForCode(CodeP) is mapped")
	}
}

func TestBeeper(t *testing.T) {
	var (
		b     Beeper
		rings int
	)
	b.SetTone(true) // no ring func yet
	b.SetTone(false)
	b.SetRing(func() { rings++ })
	for _, on := range []bool{true, true, false, false, true} {
		b.SetTone(on)
	}
	if rings != 2 {
		t.Errorf("rang %d times, want 2", rings)
	}
	if !b.On() {
		t.Error("tone is off, want on")
	}
}
