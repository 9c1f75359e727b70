// Package batch converts many textual inputs concurrently.
package batch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/leapstack-labs/slownie/internal/output"
	"golang.org/x/sync/errgroup"
)

// ParseError reports an input that is not a representable integer.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%q is not an integer: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ErrEmpty is returned by ParseNumber for blank input.
var ErrEmpty = errors.New("empty input")

// digitSeparators may sit between digit groups: space, no-break space,
// narrow no-break space, underscore.
const digitSeparators = " \u00a0\u202f_"

// ParseNumber parses a signed base-10 integer, allowing grouped digits
// such as "1 000 000" or "-12_500".
func ParseNumber(s string) (int64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, &ParseError{Input: s, Err: ErrEmpty}
	}
	cleaned, ok := ungroup(trimmed)
	if !ok {
		return 0, &ParseError{Input: s, Err: strconv.ErrSyntax}
	}
	n, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &ParseError{Input: s, Err: err}
	}
	return n, nil
}

// ungroup removes digit-group separators from s. After an optional sign the
// first group holds one to three characters and every later group exactly
// three, all split by the same separator.
func ungroup(s string) (string, bool) {
	sign := ""
	if s[0] == '+' || s[0] == '-' {
		sign, s = s[:1], s[1:]
	}

	idx := strings.IndexAny(s, digitSeparators)
	if idx < 0 {
		return sign + s, true
	}
	sep, _ := utf8.DecodeRuneInString(s[idx:])

	groups := strings.Split(s, string(sep))
	for i, g := range groups {
		if strings.ContainsAny(g, digitSeparators) {
			return "", false
		}
		if i == 0 && (len(g) < 1 || len(g) > 3) {
			return "", false
		}
		if i > 0 && len(g) != 3 {
			return "", false
		}
	}
	return sign + strings.Join(groups, ""), true
}

// Options configures Run.
type Options struct {
	Workers int
	Logger  *slog.Logger
}

// Run converts every input with at most opts.Workers goroutines. Results are
// returned in input order; unparsable inputs are recorded on their Result and
// do not stop the run. The only error returned is the context's.
func Run(ctx context.Context, inputs []string, opts Options) ([]output.Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	results := make([]output.Result, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, input := range inputs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			n, err := ParseNumber(input)
			if err != nil {
				logger.Debug("skipping input", "index", i, "input", input, "error", err)
				results[i] = output.Result{Input: input, Err: err.Error()}
				return nil
			}
			results[i] = output.NewResult(input, n)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Debug("batch converted", "inputs", len(inputs), "workers", workers)
	return results, nil
}

// ReadLines returns the non-blank lines of r, skipping lines starting with '#'.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return lines, nil
}

// Failures counts results that could not be converted.
func Failures(results []output.Result) int {
	n := 0
	for _, r := range results {
		if r.Failed() {
			n++
		}
	}
	return n
}
