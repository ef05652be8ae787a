package input

import (
	"bufio"
	"strconv"
	"strings"
)

// Mouse tracking escape sequences: any-motion reporting in SGR encoding.
const (
	EnableMouse  = "\x1b[?1003h\x1b[?1006h"
	DisableMouse = "\x1b[?1003l\x1b[?1006l"
)

// Input is everything the player sent since the previous frame.
type Input struct {
	Quit    bool
	Left    int  // Discrete left presses, one ship step each
	Right   int  // Discrete right presses
	Fire    bool // Space or up
	Confirm bool // Enter
	Pointer int  // Last reported mouse column (1-based), -1 if none
	Closed  bool // The reader hit EOF; the client is gone
	Pressed []byte
}

// Start reports whether the player asked to start or restart.
func (in Input) Start() bool {
	return in.Confirm || in.Fire
}

// Stream delivers input bytes via a channel.
type Stream struct {
	ch      chan byte
	pending []byte // Incomplete escape sequence carried to the next frame
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 256)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream without blocking and
// decodes them.
func ReadInput(s *Stream) Input {
	buf := s.pending
	s.pending = nil
	closed := false

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in, rest := Parse(buf)
	in.Closed = closed
	if !closed && len(rest) > 0 {
		s.pending = append([]byte(nil), rest...)
	}
	return in
}

// Parse decodes raw terminal bytes. It returns the trailing bytes of an
// escape sequence that has not fully arrived yet.
func Parse(buf []byte) (Input, []byte) {
	in := Input{Pointer: -1, Pressed: buf}

	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b != '\x1b' {
			applyByte(&in, b)
			continue
		}

		if i+1 >= len(buf) {
			// Lone ESC at the end: could be the start of a sequence.
			return in, buf[i:]
		}
		if buf[i+1] != '[' {
			continue
		}
		if i+2 >= len(buf) {
			return in, buf[i:]
		}

		switch buf[i+2] {
		case 'A': // Up arrow
			in.Fire = true
			i += 2
		case 'C': // Right arrow
			in.Right++
			i += 2
		case 'D': // Left arrow
			in.Left++
			i += 2
		case 'B': // Down arrow, unused
			i += 2
		case '<':
			n, col, ok := parseMouse(buf[i:])
			if n == 0 {
				return in, buf[i:]
			}
			if ok {
				in.Pointer = col
			}
			i += n - 1
		default:
			i += 2
		}
	}
	return in, nil
}

// parseMouse decodes an SGR mouse report "ESC [ < b ; x ; y (M|m)". It
// returns the sequence length, or 0 if it is incomplete.
func parseMouse(seq []byte) (n, col int, ok bool) {
	end := -1
	for j := 3; j < len(seq); j++ {
		if seq[j] == 'M' || seq[j] == 'm' {
			end = j
			break
		}
		if (seq[j] < '0' || seq[j] > '9') && seq[j] != ';' {
			// Not a mouse report after all; skip the introducer.
			return 3, 0, false
		}
	}
	if end < 0 {
		return 0, 0, false
	}

	fields := strings.Split(string(seq[3:end]), ";")
	if len(fields) != 3 {
		return end + 1, 0, false
	}
	x, err := strconv.Atoi(fields[1])
	if err != nil {
		return end + 1, 0, false
	}
	return end + 1, x, true
}

func applyByte(in *Input, b byte) {
	switch b {
	case 'q', 'Q', '\x03':
		in.Quit = true
	case 'a', 'A', 'h', 'H':
		in.Left++
	case 'd', 'D', 'l', 'L':
		in.Right++
	case ' ', 'w', 'W', 'k', 'K':
		in.Fire = true
	case '\n', '\r':
		in.Confirm = true
	}
}
