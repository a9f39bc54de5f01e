// Package compiler implements Ember's single-pass Pratt parser: parsing
// and bytecode emission are interleaved so that no intermediate AST is ever
// built. A Parser owns a Scanner, a Chunk being written into, and the
// compile-time locals stack that mirrors the VM's runtime stack slots.
package compiler

import (
	"math"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"ember/bytecode"
	"ember/object"
	"ember/scanner"
	"ember/token"
	"ember/value"
)

// Precedence orders how tightly an operator binds, lowest to highest.
type Precedence int

const (
	PrecNone Precedence = iota
	PrecAssignment        // =
	PrecOr                // or
	PrecAnd               // and
	PrecEquality          // == !=
	PrecComparison        // < > <= >=
	PrecTerm              // + -
	PrecFactor            // * /
	PrecUnary             // ! -
	PrecCall              // reserved; Ember has no calls yet
	PrecPrimary
)

// ParseFn is a prefix or infix handler for a token kind. canAssign reports
// whether an assignment target is legal at the current precedence, so that
// `a + b = c` can be rejected instead of silently parsed.
type ParseFn func(p *Parser, canAssign bool)

type parseRule struct {
	prefix     ParseFn
	infix      ParseFn
	precedence Precedence
}

var rules map[token.Kind]parseRule

func init() {
	rules = map[token.Kind]parseRule{
		token.LeftParen:    {prefix: (*Parser).grouping},
		token.Minus:        {prefix: (*Parser).unary, infix: (*Parser).binary, precedence: PrecTerm},
		token.Plus:         {infix: (*Parser).binary, precedence: PrecTerm},
		token.Slash:        {infix: (*Parser).binary, precedence: PrecFactor},
		token.Star:         {infix: (*Parser).binary, precedence: PrecFactor},
		token.Bang:         {prefix: (*Parser).unary},
		token.BangEqual:    {infix: (*Parser).binary, precedence: PrecEquality},
		token.EqualEqual:   {infix: (*Parser).binary, precedence: PrecEquality},
		token.Greater:      {infix: (*Parser).binary, precedence: PrecComparison},
		token.GreaterEqual: {infix: (*Parser).binary, precedence: PrecComparison},
		token.Less:         {infix: (*Parser).binary, precedence: PrecComparison},
		token.LessEqual:    {infix: (*Parser).binary, precedence: PrecComparison},
		token.Identifier:   {prefix: (*Parser).variable},
		token.String:       {prefix: (*Parser).string},
		token.Number:       {prefix: (*Parser).number},
		token.And:          {infix: (*Parser).and, precedence: PrecAnd},
		token.Or:           {infix: (*Parser).or, precedence: PrecOr},
		token.False:        {prefix: (*Parser).literal},
		token.Nil:          {prefix: (*Parser).literal},
		token.True:         {prefix: (*Parser).literal},
	}
}

func getRule(kind token.Kind) parseRule {
	return rules[kind]
}

// uninitialized marks a local whose initializer is still being compiled; a
// read of the variable in that window is a compile error.
const uninitialized = -1

// notFound is resolveLocal's sentinel for "this name is not a local",
// signaling the caller to fall back to a global lookup.
const notFound = -1

// maxLocals bounds how many locals a single scope chain may hold: locals
// are addressed with a single operand byte, same as constants.
const maxLocals = 256

type local struct {
	name  token.Token
	depth int
}

// Parser turns a token stream into a Chunk in one pass. It has no separate
// compiler or AST type because Ember compiles a single implicit top-level
// script with no nested function scopes.
type Parser struct {
	scanner  *scanner.Scanner
	interner object.StringInterner
	chunk    *bytecode.Chunk

	previous token.Token
	current  token.Token

	hadError  bool
	panicMode bool
	errors    *multierror.Error

	locals     []local
	scopeDepth int
}

// Compile compiles source into a Chunk, interning string and identifier
// constants via interner. It returns the compiled Chunk together with any
// accumulated errors; callers must check the error before executing the
// Chunk, since a partially-compiled Chunk may be incomplete or malformed.
func Compile(source string, interner object.StringInterner) (*bytecode.Chunk, error) {
	p := &Parser{
		scanner:  scanner.New(source),
		interner: interner,
		chunk:    bytecode.NewChunk(),
	}

	p.advance()
	for !p.match(token.EOF) {
		p.declaration()
	}
	p.consume(token.EOF, "Expect end of expression.")
	p.endCompiler()

	return p.chunk, p.errors.ErrorOrNil()
}

/* token stream */

func (p *Parser) advance() {
	p.previous = p.current
	for {
		p.current = p.scanner.ScanToken()
		if p.current.Kind != token.Error {
			break
		}
		p.errorAtCurrent(p.current.Lexeme)
	}
}

func (p *Parser) check(kind token.Kind) bool {
	return p.current.Kind == kind
}

func (p *Parser) match(kind token.Kind) bool {
	if !p.check(kind) {
		return false
	}
	p.advance()
	return true
}

func (p *Parser) consume(kind token.Kind, message string) {
	if p.current.Kind == kind {
		p.advance()
		return
	}
	p.errorAtCurrent(message)
}

/* emission */

func (p *Parser) emitByte(b byte) {
	p.chunk.Write(b, p.previous.Line)
}

func (p *Parser) emitOp(op bytecode.OpCode) {
	p.chunk.WriteOp(op, p.previous.Line)
}

func (p *Parser) emitOps(ops ...bytecode.OpCode) {
	for _, op := range ops {
		p.emitOp(op)
	}
}

func (p *Parser) makeConstant(v value.Value) byte {
	idx, err := p.chunk.AddConstant(v)
	if err != nil {
		p.error(err.Error())
		return 0
	}
	return byte(idx)
}

func (p *Parser) emitConstant(v value.Value) {
	p.emitOp(bytecode.OpConstant)
	p.emitByte(p.makeConstant(v))
}

func (p *Parser) emitJump(op bytecode.OpCode) int {
	p.emitOp(op)
	p.emitByte(0xFF)
	p.emitByte(0xFF)
	return p.chunk.Count() - 2
}

func (p *Parser) patchJump(offset int) {
	jump := p.chunk.Count() - offset - 2
	if jump > math.MaxUint16 {
		p.error("Too much code to jump over.")
		return
	}
	p.chunk.PatchU16(offset, uint16(jump))
}

func (p *Parser) emitLoop(loopStart int) {
	p.emitOp(bytecode.OpLoop)
	offset := p.chunk.Count() - loopStart + 2
	if offset > math.MaxUint16 {
		p.error("Loop body too large.")
		return
	}
	p.emitByte(byte(offset >> 8))
	p.emitByte(byte(offset & 0xFF))
}

func (p *Parser) endCompiler() {
	p.emitOp(bytecode.OpReturn)
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.WithField("bytes", p.chunk.Count()).Debug("compiler: end of chunk")
	}
}

/* expressions */

func (p *Parser) parsePrecedence(precedence Precedence) {
	p.advance()
	prefix := getRule(p.previous.Kind).prefix
	if prefix == nil {
		p.error("Expect expression.")
		return
	}

	canAssign := precedence <= PrecAssignment
	prefix(p, canAssign)

	for precedence <= getRule(p.current.Kind).precedence {
		p.advance()
		infix := getRule(p.previous.Kind).infix
		infix(p, canAssign)
	}

	if canAssign && p.match(token.Equal) {
		p.error("Invalid assignment target.")
	}
}

func (p *Parser) expression() {
	p.parsePrecedence(PrecAssignment)
}

func (p *Parser) number(_ bool) {
	n, err := strconv.ParseFloat(p.previous.Lexeme, 64)
	if err != nil {
		p.error("Invalid number literal.")
		return
	}
	p.emitConstant(value.Number(n))
}

func (p *Parser) string(_ bool) {
	lexeme := p.previous.Lexeme
	contents := lexeme[1 : len(lexeme)-1]
	p.emitConstant(p.interner.InternString(contents))
}

func (p *Parser) grouping(_ bool) {
	p.expression()
	p.consume(token.RightParen, "Expect ')' after expression.")
}

func (p *Parser) unary(_ bool) {
	operator := p.previous.Kind
	p.parsePrecedence(PrecUnary)
	switch operator {
	case token.Bang:
		p.emitOp(bytecode.OpNot)
	case token.Minus:
		p.emitOp(bytecode.OpNegate)
	}
}

func (p *Parser) binary(_ bool) {
	operator := p.previous.Kind
	rule := getRule(operator)
	p.parsePrecedence(rule.precedence + 1)

	switch operator {
	case token.BangEqual:
		p.emitOps(bytecode.OpEqual, bytecode.OpNot)
	case token.EqualEqual:
		p.emitOp(bytecode.OpEqual)
	case token.Greater:
		p.emitOp(bytecode.OpGreater)
	case token.GreaterEqual:
		p.emitOps(bytecode.OpLess, bytecode.OpNot)
	case token.Less:
		p.emitOp(bytecode.OpLess)
	case token.LessEqual:
		p.emitOps(bytecode.OpGreater, bytecode.OpNot)
	case token.Plus:
		p.emitOp(bytecode.OpAdd)
	case token.Minus:
		p.emitOp(bytecode.OpSubtract)
	case token.Star:
		p.emitOp(bytecode.OpMultiply)
	case token.Slash:
		p.emitOp(bytecode.OpDivide)
	}
}

func (p *Parser) literal(_ bool) {
	switch p.previous.Kind {
	case token.False:
		p.emitOp(bytecode.OpFalse)
	case token.Nil:
		p.emitOp(bytecode.OpNil)
	case token.True:
		p.emitOp(bytecode.OpTrue)
	}
}

func (p *Parser) and(_ bool) {
	endJump := p.emitJump(bytecode.OpJumpIfFalse)
	p.emitOp(bytecode.OpPop)
	p.parsePrecedence(PrecAnd)
	p.patchJump(endJump)
}

func (p *Parser) or(_ bool) {
	elseJump := p.emitJump(bytecode.OpJumpIfFalse)
	endJump := p.emitJump(bytecode.OpJump)
	p.patchJump(elseJump)
	p.emitOp(bytecode.OpPop)
	p.parsePrecedence(PrecOr)
	p.patchJump(endJump)
}

func (p *Parser) variable(canAssign bool) {
	p.namedVariable(p.previous, canAssign)
}

func (p *Parser) namedVariable(name token.Token, canAssign bool) {
	var getOp, setOp bytecode.OpCode
	var arg byte

	if slot := p.resolveLocal(name); slot != notFound {
		getOp, setOp = bytecode.OpGetLocal, bytecode.OpSetLocal
		arg = byte(slot)
	} else {
		getOp, setOp = bytecode.OpGetGlobal, bytecode.OpSetGlobal
		arg = p.identifierConstant(name)
	}

	if canAssign && p.match(token.Equal) {
		p.expression()
		p.emitOp(setOp)
		p.emitByte(arg)
	} else {
		p.emitOp(getOp)
		p.emitByte(arg)
	}
}

func (p *Parser) identifierConstant(name token.Token) byte {
	return p.makeConstant(p.interner.InternString(name.Lexeme))
}

/* scopes and locals */

func (p *Parser) beginScope() { p.scopeDepth++ }

func (p *Parser) endScope() {
	p.scopeDepth--
	for len(p.locals) > 0 && p.locals[len(p.locals)-1].depth > p.scopeDepth {
		p.emitOp(bytecode.OpPop)
		p.locals = p.locals[:len(p.locals)-1]
	}
}

func (p *Parser) addLocal(name token.Token) {
	if len(p.locals) >= maxLocals {
		p.error("Too many local variables in function.")
		return
	}
	p.locals = append(p.locals, local{name: name, depth: uninitialized})
}

func (p *Parser) declareVariable(name token.Token) {
	if p.scopeDepth == 0 {
		return
	}
	for i := len(p.locals) - 1; i >= 0; i-- {
		l := p.locals[i]
		if l.depth != uninitialized && l.depth < p.scopeDepth {
			break
		}
		if l.name.Lexeme == name.Lexeme {
			p.error("Already a variable with this name in this scope.")
		}
	}
	p.addLocal(name)
}

func (p *Parser) resolveLocal(name token.Token) int {
	for i := len(p.locals) - 1; i >= 0; i-- {
		l := p.locals[i]
		if l.name.Lexeme == name.Lexeme {
			if l.depth == uninitialized {
				p.error("Can't read local variable in its own initializer.")
			}
			return i
		}
	}
	return notFound
}

func (p *Parser) markInitialized() {
	if p.scopeDepth == 0 {
		return
	}
	p.locals[len(p.locals)-1].depth = p.scopeDepth
}

/* declarations and statements */

func (p *Parser) declaration() {
	if p.match(token.Var) {
		p.varDeclaration()
	} else {
		p.statement()
	}
	if p.panicMode {
		p.synchronize()
	}
}

func (p *Parser) parseVariable(message string) byte {
	p.consume(token.Identifier, message)

	p.declareVariable(p.previous)
	if p.scopeDepth > 0 {
		return 0
	}
	return p.identifierConstant(p.previous)
}

func (p *Parser) defineVariable(global byte) {
	if p.scopeDepth > 0 {
		p.markInitialized()
		return
	}
	p.emitOp(bytecode.OpDefineGlobal)
	p.emitByte(global)
}

func (p *Parser) varDeclaration() {
	global := p.parseVariable("Expect variable name.")

	if p.match(token.Equal) {
		p.expression()
	} else {
		p.emitOp(bytecode.OpNil)
	}
	p.consume(token.Semicolon, "Expect ';' after variable declaration.")

	p.defineVariable(global)
}

func (p *Parser) printStatement() {
	p.expression()
	p.consume(token.Semicolon, "Expect ';' after value.")
	p.emitOp(bytecode.OpPrint)
}

func (p *Parser) expressionStatement() {
	p.expression()
	p.consume(token.Semicolon, "Expect ';' after expression.")
	p.emitOp(bytecode.OpPop)
}

func (p *Parser) block() {
	for !p.check(token.RightBrace) && !p.check(token.EOF) {
		p.declaration()
	}
	p.consume(token.RightBrace, "Expect '}' after block.")
}

func (p *Parser) ifStatement() {
	p.consume(token.LeftParen, "Expect '(' after 'if'.")
	p.expression()
	p.consume(token.RightParen, "Expect ')' after condition.")

	thenJump := p.emitJump(bytecode.OpJumpIfFalse)
	p.emitOp(bytecode.OpPop)
	p.statement()

	elseJump := p.emitJump(bytecode.OpJump)
	p.patchJump(thenJump)
	p.emitOp(bytecode.OpPop)

	if p.match(token.Else) {
		p.statement()
	}
	p.patchJump(elseJump)
}

func (p *Parser) whileStatement() {
	loopStart := p.chunk.Count()
	p.consume(token.LeftParen, "Expect '(' after 'while'.")
	p.expression()
	p.consume(token.RightParen, "Expect ')' after condition.")

	exitJump := p.emitJump(bytecode.OpJumpIfFalse)
	p.emitOp(bytecode.OpPop)
	p.statement()
	p.emitLoop(loopStart)

	p.patchJump(exitJump)
	p.emitOp(bytecode.OpPop)
}

func (p *Parser) forStatement() {
	p.beginScope()
	p.consume(token.LeftParen, "Expect '(' after 'for'.")

	switch {
	case p.match(token.Semicolon):
		// no initializer
	case p.match(token.Var):
		p.varDeclaration()
	default:
		p.expressionStatement()
	}

	loopStart := p.chunk.Count()
	exitJump := notFound
	if !p.match(token.Semicolon) {
		p.expression()
		p.consume(token.Semicolon, "Expect ';' after loop condition.")
		exitJump = p.emitJump(bytecode.OpJumpIfFalse)
		p.emitOp(bytecode.OpPop)
	}

	if !p.match(token.RightParen) {
		bodyJump := p.emitJump(bytecode.OpJump)
		incrementStart := p.chunk.Count()
		p.expression()
		p.emitOp(bytecode.OpPop)
		p.consume(token.RightParen, "Expect ')' after for clauses.")

		p.emitLoop(loopStart)
		loopStart = incrementStart
		p.patchJump(bodyJump)
	}

	p.statement()
	p.emitLoop(loopStart)

	if exitJump != notFound {
		p.patchJump(exitJump)
		p.emitOp(bytecode.OpPop)
	}

	p.endScope()
}

func (p *Parser) statement() {
	switch {
	case p.match(token.Print):
		p.printStatement()
	case p.match(token.If):
		p.ifStatement()
	case p.match(token.While):
		p.whileStatement()
	case p.match(token.For):
		p.forStatement()
	case p.match(token.LeftBrace):
		p.beginScope()
		p.block()
		p.endScope()
	default:
		p.expressionStatement()
	}
}

func (p *Parser) synchronize() {
	p.panicMode = false

	for p.current.Kind != token.EOF {
		if p.previous.Kind == token.Semicolon {
			return
		}
		switch p.current.Kind {
		case token.Class, token.Fun, token.Var, token.For, token.If, token.While, token.Print, token.Return:
			return
		}
		p.advance()
	}
}

/* error reporting */

func (p *Parser) errorAtCurrent(message string) {
	p.errorAt(p.current, message)
}

func (p *Parser) error(message string) {
	p.errorAt(p.previous, message)
}

func (p *Parser) errorAt(tok token.Token, message string) {
	if p.panicMode {
		return
	}
	p.panicMode = true
	p.hadError = true
	p.errors = multierror.Append(p.errors, &CompileError{Line: tok.Line, Message: message})
}
