// Package query compiles path expressions such as .users[0]["first name"]
// into navigation steps over a jj.Value.
//
// The accepted grammar matches the paths jj reports, so a path copied out
// of an error message can be fed back as an expression:
//
//	expr  = [ "<root>" ] { step | "<nil>" }
//	step  = "." key | "[" index "]" | "[" quoted "]"
//
// A bare key is also accepted as the first step, and "." alone selects the
// root.
package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mcncl/gojj/internal/errors"
	"github.com/mcncl/gojj/pkg/jj"
)

const nilMarker = "<nil>"

// Step is one hop of a compiled expression
type Step struct {
	Key     string
	Index   int
	IsIndex bool
}

// String renders the step the way jj renders paths
func (s Step) String() string {
	if s.IsIndex {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	if isBareKey(s.Key) {
		return "." + s.Key
	}
	return "[" + strconv.Quote(s.Key) + "]"
}

// Query is a compiled path expression
type Query struct {
	Expr  string
	Steps []Step
}

// Compile parses expr into a Query
func Compile(expr string) (*Query, error) {
	q := &Query{Expr: expr}

	s := strings.TrimSpace(expr)
	s = strings.TrimPrefix(s, jj.RootPath)
	if s == "" || s == "." {
		return q, nil
	}

	pos := 0
	for pos < len(s) {
		switch {
		case strings.HasPrefix(s[pos:], nilMarker):
			pos += len(nilMarker)

		case s[pos] == '.':
			key, next := readBareKey(s, pos+1)
			if key == "" {
				return nil, invalid(expr, pos, "expected a key after '.'")
			}
			q.Steps = append(q.Steps, Step{Key: key})
			pos = next

		case s[pos] == '[':
			step, next, err := readBracket(expr, s, pos)
			if err != nil {
				return nil, err
			}
			q.Steps = append(q.Steps, step)
			pos = next

		case pos == 0:
			key, next := readBareKey(s, 0)
			if key == "" {
				return nil, invalid(expr, pos, fmt.Sprintf("unexpected character %q", s[pos]))
			}
			q.Steps = append(q.Steps, Step{Key: key})
			pos = next

		default:
			return nil, invalid(expr, pos, fmt.Sprintf("unexpected character %q", s[pos]))
		}
	}

	return q, nil
}

// Apply navigates v along the compiled steps. Like jj navigation it never
// fails; a missing hop yields an absent value carrying the full path.
func (q *Query) Apply(v jj.Value) jj.Value {
	for _, step := range q.Steps {
		if step.IsIndex {
			v = v.Index(step.Index)
		} else {
			v = v.At(step.Key)
		}
	}
	return v
}

// First returns the leading step, if any
func (q *Query) First() (Step, bool) {
	if len(q.Steps) == 0 {
		return Step{}, false
	}
	return q.Steps[0], true
}

// Rest returns a query without its leading step
func (q *Query) Rest() *Query {
	if len(q.Steps) == 0 {
		return &Query{Expr: q.Expr}
	}
	return &Query{Expr: q.Expr, Steps: q.Steps[1:]}
}

// String returns the canonical form of the expression
func (q *Query) String() string {
	var b strings.Builder
	b.WriteString(jj.RootPath)
	for _, step := range q.Steps {
		b.WriteString(step.String())
	}
	return b.String()
}

func readBareKey(s string, pos int) (string, int) {
	start := pos
	for pos < len(s) {
		if s[pos] == '.' || s[pos] == '[' || strings.HasPrefix(s[pos:], nilMarker) {
			break
		}
		pos++
	}
	return s[start:pos], pos
}

func readBracket(expr, s string, pos int) (Step, int, error) {
	open := pos
	pos++
	if pos >= len(s) {
		return Step{}, 0, invalid(expr, open, "unterminated '['")
	}

	if s[pos] == '"' {
		end := pos + 1
		for end < len(s) && s[end] != '"' {
			if s[end] == '\\' {
				end++
			}
			end++
		}
		if end >= len(s) {
			return Step{}, 0, invalid(expr, open, "unterminated quoted key")
		}
		key, err := strconv.Unquote(s[pos : end+1])
		if err != nil {
			return Step{}, 0, invalid(expr, pos, "malformed quoted key")
		}
		end++
		if end >= len(s) || s[end] != ']' {
			return Step{}, 0, invalid(expr, end, "expected ']' after quoted key")
		}
		return Step{Key: key}, end + 1, nil
	}

	end := strings.IndexByte(s[pos:], ']')
	if end < 0 {
		return Step{}, 0, invalid(expr, open, "unterminated '['")
	}
	text := s[pos : pos+end]
	index, err := strconv.Atoi(text)
	if err != nil || index < 0 {
		return Step{}, 0, invalid(expr, pos, fmt.Sprintf("index %q is not a non-negative integer", text))
	}
	return Step{Index: index, IsIndex: true}, pos + end + 1, nil
}

func isBareKey(key string) bool {
	if key == "" || strings.Contains(key, nilMarker) {
		return false
	}
	return !strings.ContainsAny(key, ".[]\" \t\n")
}

func invalid(expr string, offset int, reason string) error {
	return errors.NewQueryError(
		fmt.Sprintf("%s at offset %d in '%s'", reason, offset, expr),
		errors.ErrInvalidQuery,
	)
}
