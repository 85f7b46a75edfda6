// Package input turns raw terminal bytes into held-key state and game intents.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last
// byte. Terminals report no key releases, only the initial press and the
// auto-repeat that follows, so the window must bridge the repeat delay.
const keyHoldDuration = 150 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit   bool
	Left   bool
	Right  bool
	Thrust bool
	Fire   bool
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	left   time.Time
	right  time.Time
	thrust time.Time
	fire   time.Time
	quit   bool
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The stream reports Quit once r is exhausted.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
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

// ReadInput drains all available bytes from the stream (non-blocking).
func ReadInput(s *Stream) Input {
	return s.read(time.Now())
}

func (s *Stream) read(now time.Time) Input {
	var buf []byte
drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	parseBytes(&s.state, buf, now)

	return Input{
		Quit:   s.state.quit || s.closed,
		Left:   now.Sub(s.state.left) < keyHoldDuration,
		Right:  now.Sub(s.state.right) < keyHoldDuration,
		Thrust: now.Sub(s.state.thrust) < keyHoldDuration,
		Fire:   now.Sub(s.state.fire) < keyHoldDuration,
	}
}

// parseBytes updates key state from a batch of bytes, decoding the
// ESC [ A-D arrow key sequences.
func parseBytes(state *keyState, buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A': // Up arrow
				state.thrust = now
				i += 2
				continue
			case 'C': // Right arrow
				state.right = now
				i += 2
				continue
			case 'D': // Left arrow
				state.left = now
				i += 2
				continue
			case 'B': // Down arrow, unused
				i += 2
				continue
			}
		}

		applyByteToState(state, b, now)
	}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03': // Ctrl-C arrives as a byte in raw mode
		state.quit = true
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'i', 'I':
		state.thrust = now
	case ' ':
		state.fire = now
	}
}
