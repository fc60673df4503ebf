// Package console is the presentation layer: it reads clerk input, renders
// menus, tables and invoices, and calls the services behind the primary
// ports. All retry-until-valid prompting lives here; the core only ever
// sees parsed, range-checked values.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/frontdesk/internal/validate"
)

// Prompter reads validated values from the clerk, re-prompting until the
// input parses and satisfies its bounds. Reads fail only when the input
// stream ends.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter creates a Prompter over the given streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// line reads one line, trimming the trailing newline. io.EOF when the
// stream is exhausted.
func (p *Prompter) line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(p.in.Text(), "\r"), nil
}

// ReadString reads a line as-is. Empty input is allowed; callers that need
// a non-empty value check and re-prompt themselves.
func (p *Prompter) ReadString(prompt string) (string, error) {
	return p.line(prompt)
}

// ReadInt reads an integer within [min, max], re-prompting on empty input,
// non-numeric input and out-of-range values.
func (p *Prompter) ReadInt(prompt string, min, max int) (int, error) {
	for {
		text, err := p.line(prompt)
		if err != nil {
			return 0, err
		}

		if text == "" {
			fmt.Fprintln(p.out, "Error: input must not be empty.")
			continue
		}
		if !validate.IsInteger(text) {
			fmt.Fprintln(p.out, "Error: enter a whole number.")
			continue
		}

		n, err := strconv.Atoi(text)
		if err != nil || n < min || n > max {
			fmt.Fprintf(p.out, "Error: value must be between %d and %d.\n", min, max)
			continue
		}
		return n, nil
	}
}

// ReadFloat reads a decimal number of at least min, re-prompting on empty
// input, non-numeric input and undersized values.
func (p *Prompter) ReadFloat(prompt string, min float64) (float64, error) {
	for {
		text, err := p.line(prompt)
		if err != nil {
			return 0, err
		}

		if text == "" {
			fmt.Fprintln(p.out, "Error: input must not be empty.")
			continue
		}
		if !validate.IsDecimal(text) {
			fmt.Fprintln(p.out, "Error: enter a number.")
			continue
		}

		f, err := strconv.ParseFloat(text, 64)
		if err != nil || f < min {
			fmt.Fprintf(p.out, "Error: value must be at least %.2f.\n", min)
			continue
		}
		return f, nil
	}
}

// ReadDate reads a DD/MM/YYYY date whose year is at least minYear,
// re-prompting until the date validates.
func (p *Prompter) ReadDate(prompt string, minYear int) (string, error) {
	for {
		text, err := p.line(prompt)
		if err != nil {
			return "", err
		}

		if year, ok := validate.DateYear(text); ok && year >= minYear {
			return text, nil
		}
		fmt.Fprintf(p.out, "Error: enter a valid date (DD/MM/YYYY) in year %d or later.\n", minYear)
	}
}
