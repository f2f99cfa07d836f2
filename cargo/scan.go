package cargo

import (
	"bufio"
	"encoding/json"
	"io"
)

// Cargo messages for targets with many dependencies easily exceed
// bufio.Scanner's default line limit.
const maxMessageLen = 4 * 1024 * 1024

// EventScanner reads newline-delimited cargo messages in the order they
// were produced. Empty lines are skipped. Any non-empty line that does not
// decode and validate as an [Event] stops the scanner with a [DecodeError].
type EventScanner struct {
	scn  *bufio.Scanner
	line int
	evt  Event
	err  error
}

func NewEventScanner(r io.Reader) *EventScanner {
	scn := bufio.NewScanner(r)
	scn.Buffer(make([]byte, 0, 64*1024), maxMessageLen)
	return &EventScanner{scn: scn}
}

// Scan advances to the next event. It returns false when the input is
// exhausted or a line failed to decode, to be distinguished with Err.
func (s *EventScanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for s.scn.Scan() {
		s.line++
		text := s.scn.Bytes()
		if len(text) == 0 {
			continue
		}
		s.evt = Event{}
		if err := json.Unmarshal(text, &s.evt); err != nil {
			s.err = &DecodeError{Line: s.line, Err: err}
			return false
		}
		if err := s.evt.Validate(); err != nil {
			s.err = &DecodeError{Line: s.line, Err: err}
			return false
		}
		return true
	}
	s.err = s.scn.Err()
	return false
}

// Event returns the event of the last successful Scan. The returned event
// is only valid until the next call to Scan.
func (s *EventScanner) Event() *Event { return &s.evt }

// Line returns the 1-based number of the last scanned line.
func (s *EventScanner) Line() int { return s.line }

func (s *EventScanner) Err() error { return s.err }
