package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/iamasit07/connect-four/internal/domain"
)

const ErrInputClosed domain.Error = "input closed"

// Prompter asks questions on out and reads one answer per line from in.
// Invalid answers are re-asked in a loop until a valid one arrives or the
// input runs out.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

func (p *Prompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// Name reads a non-blank player name.
func (p *Prompter) Name(prompt string) (string, error) {
	fmt.Fprintln(p.out, prompt)
	for {
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
		fmt.Fprintln(p.out, "Name can't be blank.")
	}
}

// Marker reads a non-blank marker that differs from taken.
func (p *Prompter) Marker(prompt string, taken domain.Marker) (domain.Marker, error) {
	fmt.Fprintln(p.out, prompt)
	for {
		line, err := p.readLine()
		if err != nil {
			return domain.Empty, err
		}

		switch m := domain.Marker(line); {
		case m == domain.Empty:
			fmt.Fprintln(p.out, "Marker can't be blank.")
		case m == taken:
			fmt.Fprintf(p.out, "%s is already taken, pick another marker.\n", m)
		default:
			return m, nil
		}
	}
}

// Coordinate reads a single digit between 0 and limit.
func (p *Prompter) Coordinate(axis string, limit int) (int, error) {
	fmt.Fprintf(p.out, "Choose %s coordinate:\n", axis)
	for {
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		if len(line) == 1 && line[0] >= '0' && int(line[0]-'0') <= limit {
			return int(line[0] - '0'), nil
		}
		fmt.Fprintf(p.out, "Coordinate must be an integer between 0 and %d.\n", limit)
	}
}

// Confirm reads a yes/no answer.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	fmt.Fprintln(p.out, prompt)
	for {
		line, err := p.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please answer y or n.")
	}
}
