// Package instance reads a knapsack problem from its plain-text form and
// writes the answer back.
//
// Input is a stream of whitespace-separated integers, line breaks carry no
// meaning:
//
//	n x
//	c_0 c_1 ... c_{n-1}
//	v_0 v_1 ... v_{n-1}
//
// n is the item count, x the budget, c the costs and v the values.
// The output is a single decimal integer followed by a newline.
package instance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/knapsack/knapsack"
)

// ErrInputFormat indicates a missing, extra or non-numeric token.
var ErrInputFormat = errors.New("instance: malformed input")

// Instance is one parsed problem. Costs and Values always have equal length.
type Instance struct {
	Budget int
	Costs  []int
	Values []int
}

// Items pairs Costs and Values by position.
func (in Instance) Items() []knapsack.Item {
	items := make([]knapsack.Item, len(in.Costs))
	for i := range in.Costs {
		items[i] = knapsack.Item{Cost: in.Costs[i], Value: in.Values[i]}
	}

	return items
}

// tokenReader yields integer tokens and remembers how many it consumed,
// so errors can point at the offending position.
type tokenReader struct {
	sc  *bufio.Scanner
	pos int
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &tokenReader{sc: sc}
}

// next parses the next token as an int. field names it in error messages.
func (t *tokenReader) next(field string) (int, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			if errors.Is(err, bufio.ErrTooLong) {
				return 0, fmt.Errorf("token %d (%s): %w: %w", t.pos+1, field, ErrInputFormat, err)
			}

			return 0, fmt.Errorf("read %s: %w", field, err)
		}

		return 0, fmt.Errorf("token %d (%s): unexpected end of input: %w", t.pos+1, field, ErrInputFormat)
	}
	t.pos++

	v, err := strconv.Atoi(t.sc.Text())
	if err != nil {
		return 0, fmt.Errorf("token %d (%s): %q is not an integer: %w", t.pos, field, t.sc.Text(), ErrInputFormat)
	}

	return v, nil
}

// Read parses one Instance from r.
//
// Contract:
//   - exactly 2+2n tokens; fewer, more or non-numeric ones fail with ErrInputFormat.
//   - n, x and every cost and value must be ≥ 0, else knapsack.ErrInvalidRange.
//   - n and x are checked against lim before any n- or x-sized allocation,
//     failing with knapsack.ErrLimitExceeded.
//
// Complexity: O(n) time and memory.
func Read(r io.Reader, lim knapsack.Limits) (Instance, error) {
	tr := newTokenReader(r)

	n, err := tr.next("n")
	if err != nil {
		return Instance{}, err
	}
	x, err := tr.next("x")
	if err != nil {
		return Instance{}, err
	}
	if n < 0 {
		return Instance{}, fmt.Errorf("item count %d: %w", n, knapsack.ErrInvalidRange)
	}
	if x < 0 {
		return Instance{}, fmt.Errorf("budget %d: %w", x, knapsack.ErrInvalidRange)
	}
	if err = lim.Check(n, x); err != nil {
		return Instance{}, err
	}

	in := Instance{Budget: x}
	if in.Costs, err = readSeq(tr, n, "cost"); err != nil {
		return Instance{}, err
	}
	if in.Values, err = readSeq(tr, n, "value"); err != nil {
		return Instance{}, err
	}

	if tr.sc.Scan() {
		return Instance{}, fmt.Errorf("token %d: trailing %q after %d expected tokens: %w",
			tr.pos+1, tr.sc.Text(), tr.pos, ErrInputFormat)
	}
	if err = tr.sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return Instance{}, fmt.Errorf("token %d: trailing token: %w: %w", tr.pos+1, ErrInputFormat, err)
		}

		return Instance{}, fmt.Errorf("read trailing input: %w", err)
	}

	return in, nil
}

// readSeq reads n non-negative integers named field[0..n-1].
func readSeq(tr *tokenReader, n int, field string) ([]int, error) {
	seq := make([]int, n)
	for i := range seq {
		name := field + "[" + strconv.Itoa(i) + "]"
		v, err := tr.next(name)
		if err != nil {
			return nil, err
		}
		if v < 0 {
			return nil, fmt.Errorf("%s=%d: %w", name, v, knapsack.ErrInvalidRange)
		}
		seq[i] = v
	}

	return seq, nil
}

// Write prints value as a decimal integer followed by a newline.
func Write(w io.Writer, value int) error {
	_, err := io.WriteString(w, strconv.Itoa(value)+"\n")

	return err
}
