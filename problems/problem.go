package problems

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode"
)

// Problem is one interpretation job in the textual problem format: a
// header declaring the input byte count and the code line count, the
// input blob terminated by '$', and the declared number of code lines.
type Problem struct {
	Input []byte
	Code  []byte
}

var (
	ErrInputLength = errors.New("input length mismatch")
	ErrLineCount   = errors.New("line count mismatch")
)

// Read parses one problem, validating the declared counts against what
// was actually read. The engine downstream does not re-validate them.
func Read(r *bufio.Reader) (*Problem, error) {
	var inputCount, lineCount int
	if _, err := fmt.Fscan(r, &inputCount, &lineCount); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if err := skipSpaces(r); err != nil {
		return nil, err
	}

	input, err := readUntil(r, '$')
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if len(input) != inputCount {
		return nil, fmt.Errorf("%w: expected %d characters, received %d",
			ErrInputLength, inputCount, len(input))
	}

	if err := skipSpaces(r); err != nil {
		return nil, err
	}

	var code []byte
	lines := 0
	for range lineCount {
		line, err := r.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("read code: %w", err)
		}
		if len(line) == 0 {
			break
		}
		if line[len(line)-1] == '\n' {
			line = line[:len(line)-1]
		}
		code = append(code, line...)
		lines++
		if err == io.EOF {
			break
		}
	}
	if lines != lineCount {
		return nil, fmt.Errorf("%w: expected %d lines, received %d",
			ErrLineCount, lineCount, lines)
	}

	return &Problem{
		Input: input,
		Code:  code,
	}, nil
}

// readUntil collects bytes up to the delimiter, which is consumed and
// discarded. Hitting end-of-stream first returns what was read.
func readUntil(r *bufio.Reader, delim byte) ([]byte, error) {
	blob, err := r.ReadBytes(delim)
	if err == io.EOF {
		return blob, nil
	}
	if err != nil {
		return nil, err
	}
	return blob[:len(blob)-1], nil
}

func skipSpaces(r *bufio.Reader) error {
	for {
		c, err := r.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if !unicode.IsSpace(rune(c)) {
			return r.UnreadByte()
		}
	}
}
