package calc

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

const (
	// maxNesting bounds parentheses, unary signs and ** exponents combined.
	maxNesting = 200
	// maxOperators bounds binary operators, which also bounds tree depth.
	maxOperators = 10000
)

var (
	errSyntax     = errors.New("invalid syntax")
	errTooNested  = errors.New("too many nested parentheses")
	errTooComplex = errors.New("expression too complex")
)

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokName
	tokOp
	tokLParen
	tokRParen
	tokComma
	tokEOF
)

type token struct {
	kind tokenKind
	text string
}

func tokenize(src string) ([]token, error) {
	var out []token
	for i := 0; i < len(src); {
		ch := src[i]
		switch {
		case ch == ' ':
			i++
		case isDigit(ch) || (ch == '.' && i+1 < len(src) && isDigit(src[i+1])):
			end, err := scanNumber(src, i)
			if err != nil {
				return nil, err
			}
			literal := src[i:end]
			if hasLeadingZero(literal) {
				return nil, errors.New("leading zeros in decimal integer literals are not permitted")
			}
			out = append(out, token{kind: tokNumber, text: literal})
			i = end
		case ch == 'e' || ch == 'E':
			end := i
			for end < len(src) && (src[end] == 'e' || src[end] == 'E') {
				end++
			}
			out = append(out, token{kind: tokName, text: src[i:end]})
			i = end
		case ch == '*' || ch == '/':
			if i+1 < len(src) && src[i+1] == ch {
				out = append(out, token{kind: tokOp, text: src[i : i+2]})
				i += 2
				continue
			}
			out = append(out, token{kind: tokOp, text: string(ch)})
			i++
		case ch == '+' || ch == '-':
			out = append(out, token{kind: tokOp, text: string(ch)})
			i++
		case ch == '(':
			out = append(out, token{kind: tokLParen, text: "("})
			i++
		case ch == ')':
			out = append(out, token{kind: tokRParen, text: ")"})
			i++
		case ch == ',':
			out = append(out, token{kind: tokComma, text: ","})
			i++
		default:
			return nil, errSyntax
		}
	}
	return append(out, token{kind: tokEOF}), nil
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func hasLeadingZero(literal string) bool {
	if strings.ContainsAny(literal, ".eE") || len(literal) < 2 || literal[0] != '0' {
		return false
	}
	return strings.Trim(literal, "0") != ""
}

// scanNumber returns the end offset of the numeric literal starting at start.
func scanNumber(src string, start int) (int, error) {
	i := start
	for i < len(src) && isDigit(src[i]) {
		i++
	}
	if i < len(src) && src[i] == '.' {
		i++
		for i < len(src) && isDigit(src[i]) {
			i++
		}
	}
	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		j := i + 1
		if j < len(src) && (src[j] == '+' || src[j] == '-') {
			j++
		}
		if j >= len(src) || !isDigit(src[j]) {
			return 0, errors.New("invalid decimal literal")
		}
		for j < len(src) && isDigit(src[j]) {
			j++
		}
		i = j
	}
	if i < len(src) && (src[i] == 'e' || src[i] == 'E' || src[i] == '.') {
		return 0, errors.New("invalid decimal literal")
	}
	return i, nil
}

type node interface {
	eval() (Value, error)
}

type numberNode struct{ literal string }

type nameNode struct{ name string }

type unaryNode struct {
	op      string
	operand node
}

type binaryNode struct {
	op          string
	left, right node
}

type tupleNode struct{ items []node }

func (n numberNode) eval() (Value, error) {
	if !strings.ContainsAny(n.literal, ".eE") {
		v, ok := new(big.Int).SetString(n.literal, 10)
		if !ok {
			return Value{}, errSyntax
		}
		return intValue(v), nil
	}
	f, err := strconv.ParseFloat(n.literal, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return floatValue(f), nil
		}
		return Value{}, errSyntax
	}
	return floatValue(f), nil
}

func (n nameNode) eval() (Value, error) {
	return Value{}, fmt.Errorf("name '%s' is not defined", n.name)
}

func (n unaryNode) eval() (Value, error) {
	v, err := n.operand.eval()
	if err != nil {
		return Value{}, err
	}
	if n.op == "-" {
		return negate(v)
	}
	return positive(v)
}

func (n binaryNode) eval() (Value, error) {
	left, err := n.left.eval()
	if err != nil {
		return Value{}, err
	}
	right, err := n.right.eval()
	if err != nil {
		return Value{}, err
	}
	return binary(n.op, left, right)
}

func (n tupleNode) eval() (Value, error) {
	items := make([]Value, 0, len(n.items))
	for _, item := range n.items {
		v, err := item.eval()
		if err != nil {
			return Value{}, err
		}
		items = append(items, v)
	}
	return tupleValue(items), nil
}

type parser struct {
	tokens    []token
	pos       int
	depth     int
	operators int
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > maxNesting {
		return errTooNested
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

func (p *parser) countOperator() error {
	p.operators++
	if p.operators > maxOperators {
		return errTooComplex
	}
	return nil
}

func (p *parser) peek() token { return p.tokens[p.pos] }

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) peekOp(ops ...string) (string, bool) {
	tok := p.peek()
	if tok.kind != tokOp {
		return "", false
	}
	for _, op := range ops {
		if tok.text == op {
			return op, true
		}
	}
	return "", false
}

// exprList parses `expr (',' expr)* [',']`; any comma makes it a tuple.
func (p *parser) exprList(closing tokenKind) (node, error) {
	first, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokComma {
		return first, nil
	}
	items := []node{first}
	for p.peek().kind == tokComma {
		p.next()
		if p.peek().kind == closing {
			break
		}
		item, err := p.expr()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return tupleNode{items: items}, nil
}

func (p *parser) expr() (node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.peekOp("+", "-")
		if !ok {
			return left, nil
		}
		p.next()
		if err := p.countOperator(); err != nil {
			return nil, err
		}
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
}

func (p *parser) term() (node, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.peekOp("*", "/", "//")
		if !ok {
			return left, nil
		}
		p.next()
		if err := p.countOperator(); err != nil {
			return nil, err
		}
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
}

func (p *parser) factor() (node, error) {
	if op, ok := p.peekOp("+", "-"); ok {
		p.next()
		if err := p.enter(); err != nil {
			return nil, err
		}
		defer p.leave()
		operand, err := p.factor()
		if err != nil {
			return nil, err
		}
		return unaryNode{op: op, operand: operand}, nil
	}
	return p.power()
}

// power binds tighter than a unary sign on its left and is right-associative.
func (p *parser) power() (node, error) {
	base, err := p.atom()
	if err != nil {
		return nil, err
	}
	if _, ok := p.peekOp("**"); !ok {
		return base, nil
	}
	p.next()
	if err := p.countOperator(); err != nil {
		return nil, err
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	exponent, err := p.factor()
	if err != nil {
		return nil, err
	}
	return binaryNode{op: "**", left: base, right: exponent}, nil
}

func (p *parser) atom() (node, error) {
	tok := p.next()
	switch tok.kind {
	case tokNumber:
		return numberNode{literal: tok.text}, nil
	case tokName:
		return nameNode{name: tok.text}, nil
	case tokLParen:
		if err := p.enter(); err != nil {
			return nil, err
		}
		defer p.leave()
		if p.peek().kind == tokRParen {
			p.next()
			return tupleNode{}, nil
		}
		inner, err := p.exprList(tokRParen)
		if err != nil {
			return nil, err
		}
		if p.next().kind != tokRParen {
			return nil, errSyntax
		}
		return inner, nil
	}
	return nil, errSyntax
}

func parse(expr string) (node, error) {
	tokens, err := tokenize(expr)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	if p.peek().kind == tokEOF {
		return nil, errSyntax
	}
	tree, err := p.exprList(tokEOF)
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEOF {
		return nil, errSyntax
	}
	return tree, nil
}

// Eval parses and evaluates expr. It performs no character screening.
func Eval(expr string) (Value, error) {
	tree, err := parse(expr)
	if err != nil {
		return Value{}, err
	}
	return tree.eval()
}
