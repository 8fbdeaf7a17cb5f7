package tui

import (
	"errors"
	"io"
)

// Key is a decoded keystroke.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyEnter
	KeyQuit
	KeyInterrupt
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEnter:
		return "enter"
	case KeyQuit:
		return "quit"
	case KeyInterrupt:
		return "ctrl+c"
	}
	return "other"
}

// readBufLen is large enough to take a burst of auto-repeated keys in one
// read.
const readBufLen = 64

// DecodeKey maps the bytes returned by a single read to a Key. When the read
// holds several keys, the first one is returned.
func DecodeKey(b []byte) Key {
	return DecodeKeys(b)[0]
}

// DecodeKeys splits the bytes of a single read into keys. An empty read is
// one KeyEnter. ESC [ A and ESC [ B are one key each. Any other escape,
// including a truncated one, swallows the rest of the read as a single
// KeyOther. Every other byte is a key of its own.
func DecodeKeys(b []byte) []Key {
	if len(b) == 0 {
		return []Key{KeyEnter}
	}
	var keys []Key
	for len(b) > 0 {
		if b[0] == 0x1b {
			if len(b) >= 3 && b[1] == '[' && (b[2] == 'A' || b[2] == 'B') {
				keys = append(keys, decodeArrow(b[2]))
				b = b[3:]
				continue
			}
			return append(keys, KeyOther)
		}
		keys = append(keys, decodeByte(b[0]))
		b = b[1:]
	}
	return keys
}

func decodeArrow(c byte) Key {
	if c == 'A' {
		return KeyUp
	}
	return KeyDown
}

func decodeByte(c byte) Key {
	switch c {
	case 'q', 'Q':
		return KeyQuit
	case '\r', '\n':
		return KeyEnter
	case 'k':
		return KeyUp
	case 'j':
		return KeyDown
	case 0x03:
		return KeyInterrupt
	}
	return KeyOther
}

// KeyReader decodes keystrokes from r. It issues at most one blocking read
// per key and queues the extra keys a read may carry.
type KeyReader struct {
	r       io.Reader
	pending []Key
}

func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: r}
}

// ReadKey returns a queued key or blocks on one read. A raw-mode terminal
// delivers a whole escape sequence in one read, so there is no second read
// waiting for the rest of a partial sequence.
func (kr *KeyReader) ReadKey() (Key, error) {
	if len(kr.pending) > 0 {
		k := kr.pending[0]
		kr.pending = kr.pending[1:]
		return k, nil
	}

	var buf [readBufLen]byte
	n, err := kr.r.Read(buf[:])
	if n > 0 {
		keys := DecodeKeys(buf[:n])
		kr.pending = keys[1:]
		return keys[0], nil
	}
	if errors.Is(err, io.EOF) {
		return KeyQuit, err
	}
	if err != nil {
		return KeyOther, err
	}
	return KeyEnter, nil
}
