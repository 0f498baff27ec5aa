// Package source turns raw input into samples of 64-bit floats.
// Samples come from text (files, stdin, CLI arguments) or from a Redis list,
// see the redis subpackage.
package source

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/basicstats/internal/sentinel"
)

// Parse reads a sample from r. Values are separated by whitespace or commas,
// and `#` starts a comment that runs to the end of the line. Lines have no
// length limit.
// Tokens are parsed with strconv, so `NaN`, `Inf` and `-Inf` are accepted.
func Parse(r io.Reader) ([]float64, error) {
	var sample []float64

	reader := bufio.NewReader(r)
	line := 0

	for {
		text, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, ewrap.Wrap(readErr, "reading sample")
		}

		if text != "" {
			line++

			err := parseLine(text, line, &sample)
			if err != nil {
				return nil, err
			}
		}

		if readErr != nil {
			return sample, nil
		}
	}
}

// parseLine appends the values of one line to sample.
func parseLine(text string, line int, sample *[]float64) error {
	if i := strings.IndexByte(text, '#'); i >= 0 {
		text = text[:i]
	}

	for _, field := range strings.FieldsFunc(text, isSeparator) {
		v, err := parseValue(field)
		if err != nil {
			return ewrap.Wrapf(err, "line %d", line)
		}

		*sample = append(*sample, v)
	}

	return nil
}

// ParseStrings parses one value per string, e.g. command line arguments.
func ParseStrings(values []string) ([]float64, error) {
	sample := make([]float64, 0, len(values))

	for i, value := range values {
		v, err := parseValue(strings.TrimSpace(value))
		if err != nil {
			return nil, ewrap.Wrapf(err, "value %d", i)
		}

		sample = append(sample, v)
	}

	return sample, nil
}

func parseValue(token string) (float64, error) {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, ewrap.Wrapf(sentinel.ErrInvalidSample, "%q", token)
	}

	return v, nil
}

func isSeparator(r rune) bool {
	return r == ',' || r == ' ' || r == '\t' || r == '\r' || r == '\n'
}
