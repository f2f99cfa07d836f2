package cargo

import "fmt"

// ProcessError reports that the cargo process itself failed, i.e. exited
// with a non-zero status or could not be started at all.
type ProcessError struct {
	Cmd string
	Err error
}

func (pe *ProcessError) Unwrap() error { return pe.Err }

func (pe *ProcessError) Error() string {
	return fmt.Sprintf("cargo [%s]: %s", pe.Cmd, pe.Err)
}

// DecodeError reports a non-empty output line that is no valid cargo
// message. Line counts from 1.
type DecodeError struct {
	Line int
	Err  error
}

func (de *DecodeError) Unwrap() error { return de.Err }

func (de *DecodeError) Error() string {
	return fmt.Sprintf("cargo output line %d: %s", de.Line, de.Err)
}
