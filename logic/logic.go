package logic

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/katalvlaran/metagraph/core"
)

var (
	// ErrSyntax is returned for a malformed expression.
	ErrSyntax = errors.New("logic: malformed expression")

	// ErrUnknownProposition is returned when an expression references a
	// proposition the interpretation does not assign.
	ErrUnknownProposition = errors.New("logic: unassigned proposition")
)

// Assignment fixes the truth value of one proposition.
type Assignment struct {
	Proposition core.Element
	Value       bool
}

// Interpretation is an ordered list of assignments; when a proposition is
// assigned twice, the first assignment wins.
type Interpretation []Assignment

// Lookup returns the value assigned to p, and whether p is assigned at all.
func (in Interpretation) Lookup(p core.Element) (value, ok bool) {
	for _, a := range in {
		if a.Proposition == p {
			return a.Value, true
		}
	}
	return false, false
}

// TrueSet returns the propositions assigned true.
func (in Interpretation) TrueSet() core.Set {
	out := core.NewSet()
	for _, a := range in {
		if _, dup := out[a.Proposition]; dup {
			continue
		}
		if v, _ := in.Lookup(a.Proposition); v {
			out[a.Proposition] = struct{}{}
		}
	}
	return out
}

// FalseSet returns the propositions assigned false.
func (in Interpretation) FalseSet() core.Set {
	out := core.NewSet()
	seen := core.NewSet()
	for _, a := range in {
		if seen.Contains(a.Proposition) {
			continue
		}
		seen[a.Proposition] = struct{}{}
		if !a.Value {
			out[a.Proposition] = struct{}{}
		}
	}
	return out
}

// Evaluator is the contract the conditional layer consumes: true iff expr
// holds under interp. Implementations must be side-effect free.
type Evaluator func(expr string, interp Interpretation) (bool, error)

// Eval is the reference Evaluator: a recursive-descent parse of the '!',
// '.', '|' grammar with parentheses.
func Eval(expr string, interp Interpretation) (bool, error) {
	p := &parser{input: []rune(strings.TrimSpace(expr)), interp: interp}
	if len(p.input) == 0 {
		return false, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	v, err := p.parseOr()
	if err != nil {
		return false, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return false, fmt.Errorf("%w: trailing input at %d in %q", ErrSyntax, p.pos, expr)
	}
	return v, nil
}

type parser struct {
	input  []rune
	pos    int
	interp Interpretation
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && unicode.IsSpace(p.input[p.pos]) {
		p.pos++
	}
}

func (p *parser) peek() (rune, bool) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}

func (p *parser) parseOr() (bool, error) {
	v, err := p.parseAnd()
	if err != nil {
		return false, err
	}
	for {
		r, ok := p.peek()
		if !ok || r != '|' {
			return v, nil
		}
		p.pos++
		rhs, err := p.parseAnd()
		if err != nil {
			return false, err
		}
		v = v || rhs
	}
}

func (p *parser) parseAnd() (bool, error) {
	v, err := p.parseUnary()
	if err != nil {
		return false, err
	}
	for {
		r, ok := p.peek()
		if !ok || r != '.' {
			return v, nil
		}
		p.pos++
		rhs, err := p.parseUnary()
		if err != nil {
			return false, err
		}
		v = v && rhs
	}
}

func (p *parser) parseUnary() (bool, error) {
	r, ok := p.peek()
	if !ok {
		return false, fmt.Errorf("%w: unexpected end of input", ErrSyntax)
	}
	switch r {
	case '!':
		p.pos++
		v, err := p.parseUnary()
		return !v, err
	case '(':
		p.pos++
		v, err := p.parseOr()
		if err != nil {
			return false, err
		}
		r, ok = p.peek()
		if !ok || r != ')' {
			return false, fmt.Errorf("%w: missing ')'", ErrSyntax)
		}
		p.pos++
		return v, nil
	default:
		return p.parseIdent()
	}
}

func (p *parser) parseIdent() (bool, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.input) && !isOperator(p.input[p.pos]) && !unicode.IsSpace(p.input[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return false, fmt.Errorf("%w: expected proposition at %d", ErrSyntax, start)
	}
	name := core.Element(p.input[start:p.pos])
	v, ok := p.interp.Lookup(name)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownProposition, name)
	}
	return v, nil
}

func isOperator(r rune) bool {
	return r == '!' || r == '.' || r == '|' || r == '(' || r == ')'
}
