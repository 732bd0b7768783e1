package app

import (
	"errors"
	"fmt"
	"os"
)

// InlineFilename labels programs given on the command line in diagnostics.
const InlineFilename = "<input>"

// Input is a program and the name it is reported under.
type Input struct {
	Filename string
	Source   []byte
}

// ReadInput returns the inline program when given, otherwise the contents
// of path. Exactly one of the two must be set.
func ReadInput(inline, path string) (Input, error) {
	switch {
	case inline != "" && path != "":
		return Input{}, errors.New("an inline program and a file cannot both be given")
	case inline != "":
		return Input{Filename: InlineFilename, Source: []byte(inline)}, nil
	case path != "":
		src, err := os.ReadFile(path)
		if err != nil {
			return Input{}, fmt.Errorf("failed to read program: %w", err)
		}
		return Input{Filename: path, Source: src}, nil
	}
	return Input{}, errors.New("no program given")
}
