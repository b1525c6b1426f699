package system

import (
	"sync"
	"time"
	"unicode"

	"golang.org/x/mobile/event/key"
)

// Keypad implements chip8.Keypad. It is written by a front end and read by
// the machine, possibly from different goroutines.
type Keypad struct {
	mu   sync.Mutex
	down uint16
	seen [16]time.Duration // when each key was last pressed, for Expire
}

func (k *Keypad) IsPressed(key byte) bool {
	if key > 0xf {
		return false
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.down&(1<<key) != 0
}

func (k *Keypad) Pressed() uint16 {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.down
}

// Press marks key as down.
func (k *Keypad) Press(key byte) { k.PressAt(key, 0) }

// PressAt marks key as down at time now.
func (k *Keypad) PressAt(key byte, now time.Duration) {
	key &= 0xf
	k.mu.Lock()
	defer k.mu.Unlock()
	k.down |= 1 << key
	k.seen[key] = now
}

// Release marks key as up.
func (k *Keypad) Release(key byte) {
	key &= 0xf
	k.mu.Lock()
	defer k.mu.Unlock()
	k.down &^= 1 << key
}

// Expire releases every key that has not been pressed within hold of now.
// Terminals report key repeats but not releases, so a key is considered
// held for as long as it keeps repeating.
func (k *Keypad) Expire(now, hold time.Duration) {
	k.mu.Lock()
	defer k.mu.Unlock()
	for i := range k.seen {
		if k.down&(1<<i) != 0 && now-k.seen[i] > hold {
			k.down &^= 1 << i
		}
	}
}

// The hex keypad
//
//	1 2 3 C
//	4 5 6 D
//	7 8 9 E
//	A 0 B F
//
// is mapped onto the left-hand block of a QWERTY keyboard.
var (
	keyRunes = [16]rune{
		'x', '1', '2', '3',
		'q', 'w', 'e', 'a',
		's', 'd', 'z', 'c',
		'4', 'r', 'f', 'v',
	}
	keyCodes = [16]key.Code{
		key.CodeX, key.Code1, key.Code2, key.Code3,
		key.CodeQ, key.CodeW, key.CodeE, key.CodeA,
		key.CodeS, key.CodeD, key.CodeZ, key.CodeC,
		key.Code4, key.CodeR, key.CodeF, key.CodeV,
	}
)

func keyForRune(r rune) (byte, bool) {
	r = unicode.ToLower(r)
	for k, kr := range keyRunes {
		if kr == r {
			return byte(k), true
		}
	}
	return 0, false
}

func keyForCode(c key.Code) (byte, bool) {
	for k, kc := range keyCodes {
		if kc == c {
			return byte(k), true
		}
	}
	return 0, false
}
