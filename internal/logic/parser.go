package logic

import (
	"strings"

	"github.com/samber/lo"
)

// Parse reads an infix propositional formula. Grammar, lowest to highest
// precedence:
//
//	Iff     ::= Imply ('<->' Imply)*
//	Imply   ::= Or ('->' Or)*
//	Or      ::= And ('|' And)*
//	And     ::= Unary ('&' Unary)*
//	Unary   ::= '~' Unary | Primary
//	Primary ::= '(' Iff ')' | Identifier
//
// Identifiers match [A-Za-z_][A-Za-z0-9_]* and whitespace is insignificant.
// Every binary operator is left-associative at its level, including '->'
// and '<->': "P -> Q -> R" parses as "(P -> Q) -> R".
func Parse(text string) (Expr, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ParseError{Input: text, Pos: 0, Msg: "empty input"}
	}

	lx := newLexer(text)
	expr, err := parseIff(lx)
	if err != nil {
		return nil, err
	}
	if !lx.eof() {
		return nil, &ParseError{
			Input: text,
			Pos:   lx.pos,
			Msg:   "unexpected trailing input " + strings.TrimSpace(text[lx.pos:]),
		}
	}
	return expr, nil
}

// ParseMany parses each formula in order, failing on the first bad one.
func ParseMany(texts []string) ([]Expr, error) {
	exprs := make([]Expr, 0, len(texts))
	for _, text := range texts {
		expr, err := Parse(text)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

// ParseAxioms splits a delimiter-separated axiom string ("P; P->Q; Q->R")
// and parses each non-empty part.
func ParseAxioms(axioms string, delimiter string) ([]Expr, error) {
	parts := lo.FilterMap(strings.Split(axioms, delimiter), func(part string, _ int) (string, bool) {
		trimmed := strings.TrimSpace(part)
		return trimmed, trimmed != ""
	})
	return ParseMany(parts)
}

var multiCharOps = []string{"<->", "->"}

type lexer struct {
	text string
	pos  int
}

func newLexer(text string) *lexer {
	lx := &lexer{text: text}
	lx.skipSpace()
	return lx
}

func (lx *lexer) skipSpace() {
	for lx.pos < len(lx.text) && isSpace(lx.text[lx.pos]) {
		lx.pos++
	}
}

// peek returns the token at the cursor without consuming it, or "" at EOF.
func (lx *lexer) peek() string {
	if lx.pos >= len(lx.text) {
		return ""
	}
	for _, op := range multiCharOps {
		if strings.HasPrefix(lx.text[lx.pos:], op) {
			return op
		}
	}
	return lx.text[lx.pos : lx.pos+1]
}

// eat consumes the token when it matches and reports whether it did.
func (lx *lexer) eat(token string) bool {
	if lx.peek() != token {
		return false
	}
	lx.pos += len(token)
	lx.skipSpace()
	return true
}

func (lx *lexer) expect(token string) error {
	if lx.eat(token) {
		return nil
	}
	return &ParseError{
		Input: lx.text,
		Pos:   lx.pos,
		Msg:   "expected " + token + ", got " + lx.describeCurrent(),
	}
}

func (lx *lexer) describeCurrent() string {
	if tok := lx.peek(); tok != "" {
		return tok
	}
	return "end of input"
}

func (lx *lexer) eof() bool {
	return lx.pos >= len(lx.text)
}

func (lx *lexer) readIdentifier() (string, error) {
	start := lx.pos
	if lx.pos < len(lx.text) && isIdentStart(lx.text[lx.pos]) {
		lx.pos++
		for lx.pos < len(lx.text) && isIdentPart(lx.text[lx.pos]) {
			lx.pos++
		}
	}
	if lx.pos == start {
		return "", &ParseError{
			Input: lx.text,
			Pos:   lx.pos,
			Msg:   "expected identifier, got " + lx.describeCurrent(),
		}
	}
	name := lx.text[start:lx.pos]
	lx.skipSpace()
	return name, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || ('0' <= c && c <= '9')
}

func parseIff(lx *lexer) (Expr, error) {
	left, err := parseImply(lx)
	if err != nil {
		return nil, err
	}
	for lx.eat("<->") {
		right, err := parseImply(lx)
		if err != nil {
			return nil, err
		}
		left = Iff{Left: left, Right: right}
	}
	return left, nil
}

func parseImply(lx *lexer) (Expr, error) {
	left, err := parseOr(lx)
	if err != nil {
		return nil, err
	}
	for lx.eat("->") {
		right, err := parseOr(lx)
		if err != nil {
			return nil, err
		}
		left = Imply{Left: left, Right: right}
	}
	return left, nil
}

func parseOr(lx *lexer) (Expr, error) {
	left, err := parseAnd(lx)
	if err != nil {
		return nil, err
	}
	for lx.eat("|") {
		right, err := parseAnd(lx)
		if err != nil {
			return nil, err
		}
		left = Or{Left: left, Right: right}
	}
	return left, nil
}

func parseAnd(lx *lexer) (Expr, error) {
	left, err := parseUnary(lx)
	if err != nil {
		return nil, err
	}
	for lx.eat("&") {
		right, err := parseUnary(lx)
		if err != nil {
			return nil, err
		}
		left = And{Left: left, Right: right}
	}
	return left, nil
}

func parseUnary(lx *lexer) (Expr, error) {
	if lx.eat("~") {
		operand, err := parseUnary(lx)
		if err != nil {
			return nil, err
		}
		return Not{Operand: operand}, nil
	}
	return parsePrimary(lx)
}

func parsePrimary(lx *lexer) (Expr, error) {
	if lx.eat("(") {
		expr, err := parseIff(lx)
		if err != nil {
			return nil, err
		}
		if err := lx.expect(")"); err != nil {
			return nil, err
		}
		return expr, nil
	}
	name, err := lx.readIdentifier()
	if err != nil {
		return nil, err
	}
	return Var{Name: name}, nil
}
