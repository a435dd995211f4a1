// Package parser turns a token stream into a stream of Listener events.
//
// The parser never assembles an AST. It recognizes a production (an
// IMPORTS clause, an OBJECT-TYPE macro invocation, a type assignment, ...),
// calls Listener.EnterRule, reports each attribute it recognizes through
// Listener.Field, and calls Listener.ExitRule when the production's tokens
// are fully consumed. A Builder is the only thing that needs to remember
// anything across these calls; the parser's own state is limited to its
// token lookahead buffer.
//
// The parser supports configurable strictness via DiagnosticConfig:
//   - Strict mode: emits diagnostics for RFC violations (underscores, long
//     identifiers, etc.)
//   - Normal mode: emits diagnostics for significant issues, warns on RFC
//     violations
//   - Permissive mode: accepts most vendor MIBs, minimal diagnostics
//
// Regardless of strictness level, the parser attempts to recover from
// errors and continue parsing. Parse errors are reported to the listener
// as diagnostics rather than causing immediate failure.
package parser

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/BabisK/snmpcodec/internal/ast"
	"github.com/BabisK/snmpcodec/internal/lexer"
	"github.com/BabisK/snmpcodec/internal/types"
)

// Parser drives a Listener over the token stream of one MIB module.
type Parser struct {
	source     []byte
	lex        *lexer.Lexer
	buf        [3]lexer.Token // lookahead buffer: buf[0]=current, buf[1]=peek(1), buf[2]=peek(2)
	listener   ast.Listener
	diagConfig types.DiagnosticConfig
	eofToken   lexer.Token
	types.Logger
}

// New returns a Parser that lexes source and reports events to listener.
// Pass nil for logger to disable logging. diagConfig controls which RFC
// violations are reported.
func New(source []byte, listener ast.Listener, logger *slog.Logger, diagConfig types.DiagnosticConfig) *Parser {
	var lexLogger *slog.Logger
	if logger != nil {
		lexLogger = logger.With(slog.String("component", "lexer"))
	}
	lex := lexer.New(source, lexLogger)
	eofSpan := types.NewSpan(types.ByteOffset(len(source)), types.ByteOffset(len(source)))
	eofToken := lexer.NewToken(lexer.TokEOF, eofSpan)
	p := &Parser{
		source:     source,
		lex:        lex,
		listener:   listener,
		diagConfig: diagConfig,
		eofToken:   eofToken,
		Logger:     types.Logger{L: logger},
	}
	p.buf[0] = lex.NextToken()
	p.buf[1] = lex.NextToken()
	p.buf[2] = lex.NextToken()
	p.Log(slog.LevelDebug, "parser initialized")
	return p
}

// emitDiagnostic reports a diagnostic to the listener if the current config
// says it should be reported.
func (p *Parser) emitDiagnostic(code string, severity types.Severity, span types.Span, message string) {
	if !p.diagConfig.ShouldReport(code, severity) {
		return
	}
	p.listener.Error(types.Diagnostic{Severity: severity, Code: code, Span: span, Message: message})
}

// validateIdentifier checks for RFC 2578 identifier violations
// (underscores, trailing hyphens, length limits).
func (p *Parser) validateIdentifier(name string, span types.Span) {
	if strings.Contains(name, "_") {
		p.emitDiagnostic(types.DiagIdentifierUnderscore, types.SeverityStyle, span,
			fmt.Sprintf("identifier %q contains underscore (RFC violation)", name))
	}
	if strings.HasSuffix(name, "-") {
		p.emitDiagnostic(types.DiagIdentifierHyphenEnd, types.SeverityError, span,
			fmt.Sprintf("identifier %q ends with hyphen", name))
	}
	if len(name) > 64 {
		p.emitDiagnostic(types.DiagIdentifierLength64, types.SeverityError, span,
			fmt.Sprintf("identifier %q exceeds 64 character limit (%d chars)", name, len(name)))
	} else if len(name) > 32 {
		p.emitDiagnostic(types.DiagIdentifierLength32, types.SeverityWarning, span,
			fmt.Sprintf("identifier %q exceeds 32 character recommendation (%d chars)", name, len(name)))
	}
}

// validateValueReference checks that a value reference starts with
// lowercase, per RFC 2578.
func (p *Parser) validateValueReference(name string, span types.Span) {
	if len(name) > 0 && name[0] >= 'A' && name[0] <= 'Z' {
		p.emitDiagnostic(types.DiagBadIdentifierCase, types.SeverityError, span,
			fmt.Sprintf("%q should start with a lowercase letter", name))
	}
}

// ParseModule parses one complete MIB module, driving the listener, and
// reports whether the module header was recognized at all.
func (p *Parser) ParseModule() bool {
	start := p.currentSpan().Start

	name, definitionsKind, err := p.parseModuleHeader()
	if err != nil {
		p.recordParseError(*err)
		p.Log(slog.LevelDebug, "failed to parse module header")
		return false
	}
	_ = definitionsKind

	p.Log(slog.LevelDebug, "parsing module", slog.String("module", name.Name))
	p.listener.EnterRule(ast.RuleModule, &name, types.NewSpan(start, 0))

	if p.check(lexer.TokKwImports) {
		imports, err := p.parseImports()
		if err != nil {
			p.recordParseError(*err)
			p.Log(slog.LevelDebug, "failed to parse imports", slog.String("module", name.Name))
		} else {
			p.listener.Imports(imports, types.NewSpan(start, p.currentSpan().Start))
		}
	}

	count := 0
	for !p.check(lexer.TokKwEnd) && !p.isEOF() {
		if err := p.parseDefinition(); err != nil {
			p.recordParseError(*err)
			p.recoverToDefinition()
		} else {
			count++
		}
	}

	if p.check(lexer.TokKwEnd) {
		p.advance()
	} else if !p.isEOF() {
		p.recordParseError(p.makeError("expected END"))
	}

	for _, d := range p.lex.Diagnostics() {
		p.listener.Error(d)
	}

	span := types.NewSpan(start, p.currentSpan().End)
	p.listener.ExitRule(ast.RuleModule, span)

	p.Log(slog.LevelDebug, "parsing complete",
		slog.String("module", name.Name),
		slog.Int("definitions", count))
	return true
}

func (p *Parser) isEOF() bool {
	return p.peek().Kind == lexer.TokEOF
}

func (p *Parser) peek() lexer.Token {
	return p.buf[0]
}

func (p *Parser) peekNth(n int) lexer.Token {
	if n < len(p.buf) {
		return p.buf[n]
	}
	return p.eofToken
}

func (p *Parser) advance() lexer.Token {
	tok := p.buf[0]
	p.buf[0] = p.buf[1]
	p.buf[1] = p.buf[2]
	p.buf[2] = p.lex.NextToken()
	return tok
}

func (p *Parser) check(kind lexer.TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) expect(kind lexer.TokenKind) (lexer.Token, *types.Diagnostic) {
	if p.check(kind) {
		return p.advance(), nil
	}
	diag := p.makeError(fmt.Sprintf("expected %s", kind.LibsmiName()))
	return lexer.Token{}, &diag
}

func (p *Parser) currentSpan() types.Span {
	return p.peek().Span
}

func (p *Parser) text(span types.Span) string {
	return string(p.source[span.Start:span.End])
}

func (p *Parser) makeIdent(token lexer.Token) ast.Ident {
	return ast.NewIdent(p.text(token.Span), token.Span)
}

// makeIdentWithValidation creates an Ident and checks for RFC violations.
// Use for definition names, not type references.
func (p *Parser) makeIdentWithValidation(token lexer.Token) ast.Ident {
	name := p.text(token.Span)
	p.validateIdentifier(name, token.Span)
	return ast.NewIdent(name, token.Span)
}

// recordParseError reports a structural parse error unconditionally.
// Parse errors bypass ShouldReport() filtering because they indicate a
// syntax problem that must be reported at any strictness level.
func (p *Parser) recordParseError(diag types.Diagnostic) {
	p.listener.Error(diag)
}

func (p *Parser) makeError(message string) types.Diagnostic {
	return types.Diagnostic{
		Severity: types.SeverityError,
		Code:     types.DiagParseError,
		Span:     p.currentSpan(),
		Message:  message,
	}
}

func (p *Parser) parseU32(span types.Span, context string) (uint32, bool) {
	text := p.text(span)
	v, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		p.emitDiagnostic(types.DiagInvalidU32, types.SeverityError, span,
			fmt.Sprintf("invalid %s (not a valid u32)", context))
		return 0, false
	}
	return uint32(v), true
}

func (p *Parser) parseI64(span types.Span, context string) (int64, bool) {
	text := p.text(span)
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		p.emitDiagnostic(types.DiagInvalidI64, types.SeverityError, span,
			fmt.Sprintf("invalid %s (not a valid integer)", context))
		return 0, false
	}
	return v, true
}

// parseModuleHeader parses: ModuleName [{ oid }] DEFINITIONS ::= BEGIN
func (p *Parser) parseModuleHeader() (ast.Ident, ast.DefinitionsKind, *types.Diagnostic) {
	nameToken, err := p.expectIdentifier()
	if err != nil {
		return ast.Ident{}, ast.DefinitionsKindDefinitions, err
	}
	name := p.makeIdentWithValidation(nameToken)

	// Skip obsolete module OID that some MIBs include before DEFINITIONS.
	if p.check(lexer.TokLBrace) {
		depth := 1
		p.advance()
		for depth > 0 && !p.isEOF() {
			switch p.peek().Kind {
			case lexer.TokLBrace:
				depth++
			case lexer.TokRBrace:
				depth--
			}
			p.advance()
		}
	}

	kind := ast.DefinitionsKindDefinitions
	if _, err := p.expect(lexer.TokKwDefinitions); err != nil {
		return name, kind, err
	}

	if _, err := p.expect(lexer.TokColonColonEqual); err != nil {
		return name, kind, err
	}
	if _, err := p.expect(lexer.TokKwBegin); err != nil {
		return name, kind, err
	}

	return name, kind, nil
}

func (p *Parser) expectIdentifier() (lexer.Token, *types.Diagnostic) {
	if p.check(lexer.TokUppercaseIdent) || p.check(lexer.TokLowercaseIdent) {
		return p.advance(), nil
	}
	if p.check(lexer.TokForbiddenKeyword) {
		token := p.advance()
		name := p.text(token.Span)
		p.emitDiagnostic(types.DiagKeywordReserved, types.SeveritySevere, token.Span,
			fmt.Sprintf("identifier %q is a reserved ASN.1 keyword", name))
		return token, nil
	}
	diag := p.makeError("expected identifier")
	return lexer.Token{}, &diag
}

// expectIndexObject expects an identifier or bare type keyword. Type
// keywords are accepted because vendor MIBs use them as index objects.
func (p *Parser) expectIndexObject() (lexer.Token, *types.Diagnostic) {
	kind := p.peek().Kind
	if kind.IsIdentifier() || kind.IsTypeKeyword() {
		return p.advance(), nil
	}
	diag := p.makeError("expected index object")
	return lexer.Token{}, &diag
}

// expectEnumLabel expects an identifier or keyword usable as an enum
// label. Keywords like "current" and "deprecated" appear as enum labels in
// some MIBs.
func (p *Parser) expectEnumLabel() (lexer.Token, *types.Diagnostic) {
	kind := p.peek().Kind
	if kind.IsIdentifier() ||
		kind == lexer.TokKwCurrent || kind == lexer.TokKwDeprecated ||
		kind == lexer.TokKwObsolete || kind == lexer.TokKwMandatory ||
		kind == lexer.TokKwOptional || kind == lexer.TokKwObject ||
		kind == lexer.TokKwModule || kind == lexer.TokKwGroup {
		return p.advance(), nil
	}
	diag := p.makeError("expected enum label")
	return lexer.Token{}, &diag
}

// parseImports parses: IMPORTS symbols FROM Module ... ;
func (p *Parser) parseImports() ([]ast.ImportClause, *types.Diagnostic) {
	if _, err := p.expect(lexer.TokKwImports); err != nil {
		return nil, err
	}

	var imports []ast.ImportClause
	for {
		if p.check(lexer.TokSemicolon) {
			p.advance()
			break
		}
		if p.isEOF() || p.check(lexer.TokKwEnd) {
			diag := p.makeError("unexpected end of imports")
			return imports, &diag
		}

		start := p.currentSpan().Start
		var symbols []ast.Ident
		for {
			kind := p.peek().Kind
			if kind.IsMacroKeyword() || kind.IsTypeKeyword() || kind.IsIdentifier() {
				symbols = append(symbols, p.makeIdent(p.advance()))
			} else if p.check(lexer.TokKwFrom) {
				break
			} else {
				diag := p.makeError("expected symbol or FROM")
				return imports, &diag
			}
			if p.check(lexer.TokComma) {
				p.advance()
			}
		}

		if _, err := p.expect(lexer.TokKwFrom); err != nil {
			return imports, err
		}
		if !p.check(lexer.TokUppercaseIdent) {
			diag := p.makeError("expected module name after FROM")
			return imports, &diag
		}
		moduleToken := p.advance()
		fromModule := p.makeIdent(moduleToken)
		span := types.NewSpan(start, moduleToken.Span.End)
		imports = append(imports, ast.NewImportClause(symbols, fromModule, span))
	}
	return imports, nil
}

// parseDefinition dispatches to the appropriate rule parser based on
// lookahead tokens, driving EnterRule/Field/ExitRule on success.
func (p *Parser) parseDefinition() *types.Diagnostic {
	first := p.peek().Kind
	second := p.peekNth(1).Kind

	p.Trace("parsing definition",
		slog.Int("offset", int(p.currentSpan().Start)),
		slog.String("first", first.LibsmiName()),
		slog.String("second", second.LibsmiName()))

	switch {
	case first.IsIdentifier() && second == lexer.TokKwObject && p.peekNth(2).Kind == lexer.TokKwIdentifier:
		return p.parseValueAssignment()
	case first.IsIdentifier() && second == lexer.TokKwObjectType:
		return p.parseObjectType()
	case first.IsIdentifier() && second == lexer.TokKwModuleIdentity:
		return p.parseModuleIdentity()
	case first.IsIdentifier() && second == lexer.TokKwObjectIdentity:
		return p.parseObjectIdentity()
	case first.IsIdentifier() && second == lexer.TokKwNotificationType:
		return p.parseNotificationType()
	case first.IsIdentifier() && second == lexer.TokKwTrapType:
		return p.parseTrapType()
	case first == lexer.TokUppercaseIdent && second == lexer.TokKwTextualConvention:
		return p.parseTextualConvention()
	case first.IsIdentifier() && second == lexer.TokKwObjectGroup:
		return p.parseObjectGroup()
	case first.IsIdentifier() && second == lexer.TokKwNotificationGroup:
		return p.parseNotificationGroup()
	case first.IsIdentifier() && second == lexer.TokKwModuleCompliance:
		return p.parseModuleCompliance()
	case first.IsIdentifier() && second == lexer.TokKwAgentCapabilities:
		return p.parseAgentCapabilities()
	case first == lexer.TokUppercaseIdent && second == lexer.TokColonColonEqual:
		if p.peekNth(2).Kind == lexer.TokKwTextualConvention {
			return p.parseTextualConventionWithAssignment()
		}
		return p.parseTypeAssignment()
	case first == lexer.TokUppercaseIdent && second == lexer.TokKwMacro:
		return p.parseMacroDefinition()
	case first == lexer.TokKwExports:
		p.advance()
		if p.check(lexer.TokSemicolon) {
			p.advance()
		}
		return p.parseDefinition()
	default:
		diag := p.makeError(fmt.Sprintf("unexpected token: %s", p.peek().Kind.LibsmiName()))
		return &diag
	}
}

// parseValueAssignment parses: name OBJECT IDENTIFIER ::= { ... }
func (p *Parser) parseValueAssignment() *types.Diagnostic {
	start := p.currentSpan().Start
	nameToken := p.advance()
	name := p.makeIdentWithValidation(nameToken)
	p.validateValueReference(name.Name, nameToken.Span)

	if _, err := p.expect(lexer.TokKwObject); err != nil {
		return err
	}
	if _, err := p.expect(lexer.TokKwIdentifier); err != nil {
		return err
	}
	if _, err := p.expect(lexer.TokColonColonEqual); err != nil {
		return err
	}
	oid, err := p.parseOidAssignment()
	if err != nil {
		return err
	}

	span := types.NewSpan(start, oid.Span.End)
	p.listener.EnterRule(ast.RuleValueAssignment, &name, span)
	p.listener.Field(ast.FieldOidAssignment, oid, oid.Span)
	p.listener.ExitRule(ast.RuleValueAssignment, span)
	return nil
}

// parseOidAssignment parses: { parent subid ... }
func (p *Parser) parseOidAssignment() (ast.OidAssignment, *types.Diagnostic) {
	start := p.currentSpan().Start
	if _, err := p.expect(lexer.TokLBrace); err != nil {
		return ast.OidAssignment{}, err
	}

	var components []ast.OidComponent
	for !p.check(lexer.TokRBrace) && !p.isEOF() {
		compStart := p.currentSpan().Start
		if p.check(lexer.TokNumber) {
			token := p.advance()
			value, _ := p.parseU32(token.Span, "OID component")
			components = append(components, &ast.OidComponentNumber{Value: value, Span: token.Span})
			continue
		}

		if !p.check(lexer.TokLowercaseIdent) && !p.check(lexer.TokUppercaseIdent) {
			diag := p.makeError("expected OID component")
			return ast.OidAssignment{}, &diag
		}
		token := p.advance()
		name := p.makeIdent(token)

		var moduleName *ast.Ident
		if p.check(lexer.TokDot) {
			p.advance()
			qToken, err := p.expectIdentifier()
			if err != nil {
				return ast.OidAssignment{}, err
			}
			qualifier := name
			moduleName = &qualifier
			name = p.makeIdent(qToken)
		}

		if p.check(lexer.TokLParen) {
			p.advance()
			numToken, err := p.expect(lexer.TokNumber)
			if err != nil {
				return ast.OidAssignment{}, err
			}
			number, _ := p.parseU32(numToken.Span, "OID component")
			endParen, err := p.expect(lexer.TokRParen)
			if err != nil {
				return ast.OidAssignment{}, err
			}
			span := types.NewSpan(compStart, endParen.Span.End)
			if moduleName != nil {
				components = append(components, &ast.OidComponentQualifiedNamedNumber{
					ModuleName: *moduleName, Name: name, Num: number, Span: span,
				})
			} else {
				components = append(components, &ast.OidComponentNamedNumber{Name: name, Num: number, Span: span})
			}
			continue
		}

		if moduleName != nil {
			components = append(components, &ast.OidComponentQualifiedName{
				ModuleName: *moduleName, Name: name, Span: types.NewSpan(compStart, name.Span.End),
			})
		} else {
			components = append(components, &ast.OidComponentName{Name: name})
		}
	}

	endToken, err := p.expect(lexer.TokRBrace)
	if err != nil {
		return ast.OidAssignment{}, err
	}
	span := types.NewSpan(start, endToken.Span.End)
	return ast.NewOidAssignment(components, span), nil
}

// parseObjectType parses an OBJECT-TYPE macro invocation.
func (p *Parser) parseObjectType() *types.Diagnostic {
	start := p.currentSpan().Start
	nameToken := p.advance()
	name := p.makeIdentWithValidation(nameToken)
	p.validateValueReference(name.Name, nameToken.Span)

	if _, err := p.expect(lexer.TokKwObjectType); err != nil {
		return err
	}

	if _, err := p.expect(lexer.TokKwSyntax); err != nil {
		return err
	}
	syntax, err := p.parseSyntaxClause()
	if err != nil {
		return err
	}

	var units *ast.QuotedString
	if p.check(lexer.TokKwUnits) {
		p.advance()
		qs, err := p.parseQuotedString()
		if err != nil {
			return err
		}
		units = &qs
	}

	access, err := p.parseAccessClause()
	if err != nil {
		return err
	}

	var status *ast.StatusClause
	if p.check(lexer.TokKwStatus) {
		sc, err := p.parseStatusClause()
		if err != nil {
			return err
		}
		status = &sc
	}

	var description *ast.QuotedString
	if p.check(lexer.TokKwDescription) {
		p.advance()
		qs, err := p.parseQuotedString()
		if err != nil {
			return err
		}
		description = &qs
	}

	reference, err := p.parseOptionalReference()
	if err != nil {
		return err
	}

	index, augments, err := p.parseIndexOrAugments()
	if err != nil {
		return err
	}

	var defval *ast.DefValClause
	if p.check(lexer.TokKwDefval) {
		dv, err := p.parseDefValClause()
		if err != nil {
			return err
		}
		defval = &dv
	}

	if _, err := p.expect(lexer.TokColonColonEqual); err != nil {
		return err
	}
	oid, err := p.parseOidAssignment()
	if err != nil {
		return err
	}

	span := types.NewSpan(start, oid.Span.End)
	p.listener.EnterRule(ast.RuleObjectType, &name, span)
	p.listener.Field(ast.FieldSyntax, syntax, syntax.Span)
	if units != nil {
		p.listener.Field(ast.FieldUnits, *units, units.Span)
	}
	p.listener.Field(ast.FieldAccess, access, access.Span)
	if status != nil {
		p.listener.Field(ast.FieldStatus, *status, status.Span)
	}
	if description != nil {
		p.listener.Field(ast.FieldDescription, *description, description.Span)
	}
	if reference != nil {
		p.listener.Field(ast.FieldReference, *reference, reference.Span)
	}
	if index != nil {
		p.listener.Field(ast.FieldIndex, index, index.IndexClauseSpan())
	}
	if augments != nil {
		p.listener.Field(ast.FieldAugments, *augments, augments.Span)
	}
	if defval != nil {
		p.listener.Field(ast.FieldDefVal, *defval, defval.Span)
	}
	p.listener.Field(ast.FieldOidAssignment, oid, oid.Span)
	p.listener.ExitRule(ast.RuleObjectType, span)
	return nil
}

// parseSyntaxClause parses the type expression following a SYNTAX keyword.
func (p *Parser) parseSyntaxClause() (ast.SyntaxClause, *types.Diagnostic) {
	start := p.currentSpan().Start
	syntax, err := p.parseTypeSyntax()
	if err != nil {
		return ast.SyntaxClause{}, err
	}
	span := types.NewSpan(start, syntax.SyntaxSpan().End)
	return ast.NewSyntaxClause(syntax, span), nil
}

// parseTypeSyntax parses a type expression (builtin types, type
// references, constrained types, SEQUENCE, CHOICE, etc.).
func (p *Parser) parseTypeSyntax() (ast.TypeSyntax, *types.Diagnostic) {
	start := p.currentSpan().Start
	var baseSyntax ast.TypeSyntax

	switch p.peek().Kind {
	case lexer.TokKwInteger, lexer.TokKwInteger32:
		p.advance()
		if p.check(lexer.TokLBrace) {
			namedNumbers, err := p.parseNamedNumbers()
			if err != nil {
				return nil, err
			}
			span := types.NewSpan(start, p.currentSpan().Start)
			baseSyntax = &ast.TypeSyntaxIntegerEnum{NamedNumbers: namedNumbers, Span: span}
		} else {
			baseSyntax = &ast.TypeSyntaxTypeRef{Name: ast.NewIdent("INTEGER", types.NewSpan(start, p.peek().Span.Start))}
		}

	case lexer.TokKwBits:
		p.advance()
		if p.check(lexer.TokLBrace) {
			p.advance()
			namedBits, err := p.parseNamedNumberList()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.TokRBrace); err != nil {
				return nil, err
			}
			span := types.NewSpan(start, p.currentSpan().Start)
			baseSyntax = &ast.TypeSyntaxBits{NamedBits: namedBits, Span: span}
		} else {
			baseSyntax = &ast.TypeSyntaxTypeRef{Name: ast.NewIdent("BITS", types.NewSpan(start, p.peek().Span.Start))}
		}

	case lexer.TokKwOctet:
		p.advance()
		if _, err := p.expect(lexer.TokKwString); err != nil {
			return nil, err
		}
		span := types.NewSpan(start, p.currentSpan().Start)
		if p.check(lexer.TokLParen) {
			constraint, err := p.parseConstraint()
			if err != nil {
				return nil, err
			}
			baseSyntax = &ast.TypeSyntaxConstrained{
				Base: &ast.TypeSyntaxOctetString{Span: span}, Constraint: constraint,
				Span: types.NewSpan(start, constraint.ConstraintSpan().End),
			}
		} else {
			baseSyntax = &ast.TypeSyntaxOctetString{Span: span}
		}

	case lexer.TokKwObject:
		p.advance()
		if _, err := p.expect(lexer.TokKwIdentifier); err != nil {
			return nil, err
		}
		baseSyntax = &ast.TypeSyntaxObjectIdentifier{Span: types.NewSpan(start, p.currentSpan().Start)}

	case lexer.TokKwSequence:
		p.advance()
		if p.check(lexer.TokKwOf) {
			p.advance()
			entryToken, err := p.expectIdentifier()
			if err != nil {
				return nil, err
			}
			entryType := p.makeIdent(entryToken)
			baseSyntax = &ast.TypeSyntaxSequenceOf{EntryType: entryType, Span: types.NewSpan(start, entryToken.Span.End)}
		} else {
			if _, err := p.expect(lexer.TokLBrace); err != nil {
				return nil, err
			}
			fields, err := p.parseSequenceFields()
			if err != nil {
				return nil, err
			}
			endToken, err := p.expect(lexer.TokRBrace)
			if err != nil {
				return nil, err
			}
			baseSyntax = &ast.TypeSyntaxSequence{Fields: fields, Span: types.NewSpan(start, endToken.Span.End)}
		}

	case lexer.TokKwChoice:
		p.advance()
		if _, err := p.expect(lexer.TokLBrace); err != nil {
			return nil, err
		}
		alternatives, err := p.parseChoiceAlternatives()
		if err != nil {
			return nil, err
		}
		endToken, err := p.expect(lexer.TokRBrace)
		if err != nil {
			return nil, err
		}
		baseSyntax = &ast.TypeSyntaxChoice{Alternatives: alternatives, Span: types.NewSpan(start, endToken.Span.End)}

	case lexer.TokKwCounter32, lexer.TokKwCounter64, lexer.TokKwGauge32,
		lexer.TokKwUnsigned32, lexer.TokKwTimeTicks, lexer.TokKwIpAddress,
		lexer.TokKwOpaque, lexer.TokKwCounter, lexer.TokKwGauge, lexer.TokKwNetworkAddress:
		token := p.advance()
		baseSyntax = &ast.TypeSyntaxTypeRef{Name: ast.NewIdent(p.text(token.Span), token.Span)}

	case lexer.TokUppercaseIdent:
		token := p.advance()
		ident := ast.NewIdent(p.text(token.Span), token.Span)

		if p.check(lexer.TokLParen) {
			constraint, err := p.parseConstraint()
			if err != nil {
				return nil, err
			}
			baseSyntax = &ast.TypeSyntaxConstrained{
				Base: &ast.TypeSyntaxTypeRef{Name: ident}, Constraint: constraint,
				Span: types.NewSpan(start, constraint.ConstraintSpan().End),
			}
		} else if p.check(lexer.TokLBrace) {
			namedNumbers, err := p.parseNamedNumbers()
			if err != nil {
				return nil, err
			}
			span := types.NewSpan(start, p.currentSpan().Start)
			baseSyntax = &ast.TypeSyntaxIntegerEnum{Base: &ident, NamedNumbers: namedNumbers, Span: span}
		} else {
			baseSyntax = &ast.TypeSyntaxTypeRef{Name: ident}
		}

	default:
		diag := p.makeError("expected type syntax")
		return nil, &diag
	}

	if p.check(lexer.TokLParen) {
		if _, ok := baseSyntax.(*ast.TypeSyntaxConstrained); !ok {
			constraint, err := p.parseConstraint()
			if err != nil {
				return nil, err
			}
			return &ast.TypeSyntaxConstrained{
				Base: baseSyntax, Constraint: constraint,
				Span: types.NewSpan(start, constraint.ConstraintSpan().End),
			}, nil
		}
	}

	return baseSyntax, nil
}

// parseNamedNumbers parses: { name(value), ... }
func (p *Parser) parseNamedNumbers() ([]ast.NamedNumber, *types.Diagnostic) {
	if _, err := p.expect(lexer.TokLBrace); err != nil {
		return nil, err
	}
	result, err := p.parseNamedNumberList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokRBrace); err != nil {
		return nil, err
	}
	return result, nil
}

// parseNamedNumberList parses a list of named numbers (without braces).
func (p *Parser) parseNamedNumberList() ([]ast.NamedNumber, *types.Diagnostic) {
	var namedNumbers []ast.NamedNumber
	for !p.check(lexer.TokRBrace) && !p.isEOF() {
		start := p.currentSpan().Start
		nameToken, err := p.expectEnumLabel()
		if err != nil {
			return nil, err
		}
		name := p.makeIdent(nameToken)

		if _, err := p.expect(lexer.TokLParen); err != nil {
			return nil, err
		}

		isNegative := p.check(lexer.TokNegativeNumber)
		var numToken lexer.Token
		if isNegative {
			numToken = p.advance()
		} else {
			numToken, err = p.expect(lexer.TokNumber)
			if err != nil {
				return nil, err
			}
		}
		value, _ := p.parseI64(numToken.Span, "named number value")

		endToken, err := p.expect(lexer.TokRParen)
		if err != nil {
			return nil, err
		}
		namedNumbers = append(namedNumbers, ast.NewNamedNumber(name, value, types.NewSpan(start, endToken.Span.End)))

		if p.check(lexer.TokComma) {
			p.advance()
		} else {
			break
		}
	}
	return namedNumbers, nil
}

// parseConstraint parses: (SIZE (0..255)) or (0..65535)
func (p *Parser) parseConstraint() (ast.Constraint, *types.Diagnostic) {
	start := p.currentSpan().Start
	if _, err := p.expect(lexer.TokLParen); err != nil {
		return nil, err
	}

	if p.check(lexer.TokKwSize) {
		p.advance()
		if _, err := p.expect(lexer.TokLParen); err != nil {
			return nil, err
		}
		ranges, err := p.parseRangeList()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokRParen); err != nil {
			return nil, err
		}
		endToken, err := p.expect(lexer.TokRParen)
		if err != nil {
			return nil, err
		}
		return &ast.ConstraintSize{Ranges: ranges, Span: types.NewSpan(start, endToken.Span.End)}, nil
	}

	ranges, err := p.parseRangeList()
	if err != nil {
		return nil, err
	}
	endToken, err := p.expect(lexer.TokRParen)
	if err != nil {
		return nil, err
	}
	return &ast.ConstraintRange{Ranges: ranges, Span: types.NewSpan(start, endToken.Span.End)}, nil
}

// parseRangeList parses: 0..255 | 1024..65535
func (p *Parser) parseRangeList() ([]ast.Range, *types.Diagnostic) {
	var ranges []ast.Range
	for {
		start := p.currentSpan().Start
		min, err := p.parseRangeValue()
		if err != nil {
			return nil, err
		}

		var max ast.RangeValue
		if p.check(lexer.TokDotDot) {
			p.advance()
			max, err = p.parseRangeValue()
			if err != nil {
				return nil, err
			}
		}

		end := p.currentSpan().Start
		ranges = append(ranges, ast.Range{Min: min, Max: max, Span: types.NewSpan(start, end)})

		if p.check(lexer.TokPipe) {
			p.advance()
		} else {
			break
		}
	}
	return ranges, nil
}

// parseRangeValue parses a single range endpoint.
func (p *Parser) parseRangeValue() (ast.RangeValue, *types.Diagnostic) {
	switch {
	case p.check(lexer.TokNumber):
		token := p.advance()
		text := p.text(token.Span)
		if value, err := strconv.ParseUint(text, 10, 64); err == nil {
			return &ast.RangeValueUnsigned{Value: value}, nil
		}
		value, _ := p.parseI64(token.Span, "range value")
		return &ast.RangeValueSigned{Value: value}, nil
	case p.check(lexer.TokNegativeNumber):
		token := p.advance()
		value, _ := p.parseI64(token.Span, "range value")
		return &ast.RangeValueSigned{Value: value}, nil
	case p.check(lexer.TokHexString):
		token := p.advance()
		hexPart := stripQuotedLiteral(p.text(token.Span))
		value, err := strconv.ParseUint(hexPart, 16, 64)
		if err != nil {
			p.emitDiagnostic(types.DiagInvalidHexRange, types.SeverityError, token.Span, "invalid hex value in range")
		}
		return &ast.RangeValueUnsigned{Value: value}, nil
	case p.check(lexer.TokUppercaseIdent) || p.check(lexer.TokForbiddenKeyword):
		token := p.advance()
		return &ast.RangeValueIdent{Name: ast.NewIdent(p.text(token.Span), token.Span)}, nil
	}
	diag := p.makeError("expected range value")
	return nil, &diag
}

// parseSequenceFields parses comma-separated name/type pairs within
// SEQUENCE { ... }.
func (p *Parser) parseSequenceFields() ([]ast.SequenceField, *types.Diagnostic) {
	var fields []ast.SequenceField
	for !p.check(lexer.TokRBrace) && !p.isEOF() {
		start := p.currentSpan().Start
		nameToken, err := p.expectIdentifier()
		if err != nil {
			return nil, err
		}
		name := p.makeIdent(nameToken)

		syntax, err := p.parseTypeSyntax()
		if err != nil {
			return nil, err
		}
		fields = append(fields, ast.SequenceField{Name: name, Syntax: syntax, Span: types.NewSpan(start, syntax.SyntaxSpan().End)})

		if p.check(lexer.TokComma) {
			p.advance()
		}
	}
	return fields, nil
}

// parseChoiceAlternatives parses comma-separated name/type pairs within
// CHOICE { ... }. Reuses parseSequenceFields; the grammar shape is identical.
func (p *Parser) parseChoiceAlternatives() ([]ast.ChoiceAlternative, *types.Diagnostic) {
	fields, err := p.parseSequenceFields()
	if err != nil {
		return nil, err
	}
	alts := make([]ast.ChoiceAlternative, len(fields))
	for i, f := range fields {
		alts[i] = ast.ChoiceAlternative(f)
	}
	return alts, nil
}

// parseAccessClause parses ACCESS, MAX-ACCESS, or MIN-ACCESS with its value.
func (p *Parser) parseAccessClause() (ast.AccessClause, *types.Diagnostic) {
	start := p.currentSpan().Start

	var keyword ast.AccessKeyword
	switch {
	case p.check(lexer.TokKwMaxAccess):
		p.advance()
		keyword = ast.AccessKeywordMaxAccess
	case p.check(lexer.TokKwAccess):
		p.advance()
		keyword = ast.AccessKeywordAccess
	case p.check(lexer.TokKwMinAccess):
		p.advance()
		keyword = ast.AccessKeywordMinAccess
	default:
		diag := p.makeError("expected MAX-ACCESS, MIN-ACCESS, or ACCESS")
		return ast.AccessClause{}, &diag
	}

	var value ast.AccessValue
	switch p.peek().Kind {
	case lexer.TokKwReadOnly:
		p.advance()
		value = ast.AccessValueReadOnly
	case lexer.TokKwReadWrite:
		p.advance()
		value = ast.AccessValueReadWrite
	case lexer.TokKwReadCreate:
		p.advance()
		value = ast.AccessValueReadCreate
	case lexer.TokKwNotAccessible:
		p.advance()
		value = ast.AccessValueNotAccessible
	case lexer.TokKwAccessibleForNotify:
		p.advance()
		value = ast.AccessValueAccessibleForNotify
	case lexer.TokKwWriteOnly:
		p.advance()
		value = ast.AccessValueWriteOnly
	case lexer.TokKwNotImplemented:
		p.advance()
		value = ast.AccessValueNotImplemented
	default:
		diag := p.makeError("expected access value")
		return ast.AccessClause{}, &diag
	}

	return ast.AccessClause{Keyword: keyword, Value: value, Span: types.NewSpan(start, p.currentSpan().Start)}, nil
}

// parseStatusClause parses STATUS with its value keyword.
func (p *Parser) parseStatusClause() (ast.StatusClause, *types.Diagnostic) {
	start := p.currentSpan().Start
	if _, err := p.expect(lexer.TokKwStatus); err != nil {
		return ast.StatusClause{}, err
	}

	var value ast.StatusValue
	switch p.peek().Kind {
	case lexer.TokKwCurrent:
		p.advance()
		value = ast.StatusValueCurrent
	case lexer.TokKwDeprecated:
		p.advance()
		value = ast.StatusValueDeprecated
	case lexer.TokKwObsolete:
		p.advance()
		value = ast.StatusValueObsolete
	case lexer.TokKwMandatory:
		p.advance()
		value = ast.StatusValueMandatory
	case lexer.TokKwOptional:
		p.advance()
		value = ast.StatusValueOptional
	default:
		diag := p.makeError("expected status value")
		return ast.StatusClause{}, &diag
	}

	return ast.StatusClause{Value: value, Span: types.NewSpan(start, p.currentSpan().Start)}, nil
}

// parseIndexOrAugments parses an optional INDEX or AUGMENTS clause.
// Returns nil for both if neither is present.
func (p *Parser) parseIndexOrAugments() (ast.IndexClause, *ast.AugmentsClause, *types.Diagnostic) {
	if p.check(lexer.TokKwIndex) {
		start := p.currentSpan().Start
		p.advance()
		if _, err := p.expect(lexer.TokLBrace); err != nil {
			return nil, nil, err
		}

		var indexes []ast.IndexItem
		for !p.check(lexer.TokRBrace) && !p.isEOF() {
			itemStart := p.currentSpan().Start
			implied := false
			if p.check(lexer.TokKwImplied) {
				p.advance()
				implied = true
			}

			objToken, err := p.expectIndexObject()
			if err != nil {
				return nil, nil, err
			}

			var object ast.Ident
			if objToken.Kind == lexer.TokKwOctet && p.check(lexer.TokKwString) {
				strToken := p.advance()
				object = ast.NewIdent("OCTET STRING", types.NewSpan(objToken.Span.Start, strToken.Span.End))
			} else {
				object = p.makeIdent(objToken)
			}

			indexes = append(indexes, ast.IndexItem{Implied: implied, Object: object, Span: types.NewSpan(itemStart, object.Span.End)})

			if p.check(lexer.TokComma) {
				p.advance()
			}
		}

		endToken, err := p.expect(lexer.TokRBrace)
		if err != nil {
			return nil, nil, err
		}
		return &ast.IndexClauseIndex{Items: indexes, Span: types.NewSpan(start, endToken.Span.End)}, nil, nil
	} else if p.check(lexer.TokKwAugments) {
		start := p.currentSpan().Start
		p.advance()
		if _, err := p.expect(lexer.TokLBrace); err != nil {
			return nil, nil, err
		}
		targetToken, err := p.expectIdentifier()
		if err != nil {
			return nil, nil, err
		}
		target := p.makeIdent(targetToken)
		endToken, err := p.expect(lexer.TokRBrace)
		if err != nil {
			return nil, nil, err
		}
		return nil, &ast.AugmentsClause{Target: target, Span: types.NewSpan(start, endToken.Span.End)}, nil
	}
	return nil, nil, nil
}

// parseDefValClause parses: DEFVAL { content }.
func (p *Parser) parseDefValClause() (ast.DefValClause, *types.Diagnostic) {
	start := p.currentSpan().Start
	if _, err := p.expect(lexer.TokKwDefval); err != nil {
		return ast.DefValClause{}, err
	}
	if _, err := p.expect(lexer.TokLBrace); err != nil {
		return ast.DefValClause{}, err
	}

	value, err := p.parseDefValContent()
	if err != nil {
		return ast.DefValClause{}, err
	}

	endToken, err := p.expect(lexer.TokRBrace)
	if err != nil {
		return ast.DefValClause{}, err
	}
	return ast.DefValClause{Value: value, Span: types.NewSpan(start, endToken.Span.End)}, nil
}

// parseDefValContent parses the value inside DEFVAL { ... } braces.
func (p *Parser) parseDefValContent() (ast.DefValContent, *types.Diagnostic) {
	contentStart := p.currentSpan().Start
	kind := p.peek().Kind
	switch kind {
	case lexer.TokNegativeNumber, lexer.TokNumber:
		return p.parseDefValNumber(), nil
	case lexer.TokQuotedString:
		return p.parseDefValString()
	case lexer.TokHexString:
		return p.parseDefValHexString(), nil
	case lexer.TokBinString:
		return p.parseDefValBinaryString(), nil
	case lexer.TokLowercaseIdent, lexer.TokUppercaseIdent:
		token := p.advance()
		return &ast.DefValContentIdentifier{Name: p.makeIdent(token)}, nil
	case lexer.TokLBrace:
		return p.parseDefValBracedContent()
	default:
		if kind.IsKeyword() {
			token := p.advance()
			return &ast.DefValContentIdentifier{Name: p.makeIdent(token)}, nil
		}
		return p.parseDefValSkipUnknown(contentStart), nil
	}
}

func (p *Parser) parseDefValNumber() ast.DefValContent {
	token := p.advance()
	if token.Kind == lexer.TokNegativeNumber {
		value, _ := p.parseI64(token.Span, "DEFVAL integer")
		return &ast.DefValContentInteger{Value: value}
	}
	text := p.text(token.Span)
	if value, err := strconv.ParseInt(text, 10, 64); err == nil {
		return &ast.DefValContentInteger{Value: value}
	}
	if value, err := strconv.ParseUint(text, 10, 64); err == nil {
		return &ast.DefValContentUnsigned{Value: value}
	}
	value, _ := p.parseI64(token.Span, "DEFVAL integer")
	return &ast.DefValContentInteger{Value: value}
}

func (p *Parser) parseDefValString() (ast.DefValContent, *types.Diagnostic) {
	qs, err := p.parseQuotedString()
	if err != nil {
		return nil, err
	}
	return &ast.DefValContentString{Value: qs}, nil
}

func (p *Parser) parseDefValHexString() ast.DefValContent {
	token := p.advance()
	return &ast.DefValContentHexString{Content: stripQuotedLiteral(p.text(token.Span)), Span: token.Span}
}

func (p *Parser) parseDefValBinaryString() ast.DefValContent {
	token := p.advance()
	return &ast.DefValContentBinaryString{Content: stripQuotedLiteral(p.text(token.Span)), Span: token.Span}
}

// stripQuotedLiteral strips the 'xxx'H or 'xxx'B quoting from a hex or
// binary string literal, returning just the inner content.
func stripQuotedLiteral(s string) string {
	s, _ = strings.CutPrefix(s, "'")
	for _, suffix := range []string{"'H", "'h", "'B", "'b"} {
		if inner, ok := strings.CutSuffix(s, suffix); ok {
			return inner
		}
	}
	return s
}

func (p *Parser) parseDefValBracedContent() (ast.DefValContent, *types.Diagnostic) {
	p.advance() // consume opening brace
	innerStart := p.currentSpan().Start

	if p.check(lexer.TokRBrace) {
		endToken := p.advance()
		return &ast.DefValContentBits{Labels: nil, Span: types.NewSpan(innerStart, endToken.Span.End)}, nil
	}

	kind := p.peek().Kind
	switch kind {
	case lexer.TokLowercaseIdent, lexer.TokUppercaseIdent:
		return p.parseDefValBracedIdent(innerStart)
	case lexer.TokNumber:
		return p.parseDefValOidNumeric(innerStart)
	default:
		if kind.IsKeyword() {
			return p.parseDefValBracedIdent(innerStart)
		}
		return p.parseDefValSkipBraced(innerStart)
	}
}

func (p *Parser) parseDefValBracedIdent(innerStart types.ByteOffset) (ast.DefValContent, *types.Diagnostic) {
	identToken := p.advance()
	ident := p.makeIdent(identToken)

	if p.check(lexer.TokComma) || p.check(lexer.TokRBrace) {
		return p.parseDefValBitsLabels(ident, innerStart)
	}
	return p.parseDefValOidWithFirstIdent(ident, identToken, innerStart)
}

func (p *Parser) parseDefValBitsLabels(first ast.Ident, innerStart types.ByteOffset) (ast.DefValContent, *types.Diagnostic) {
	labels := []ast.Ident{first}
	for p.check(lexer.TokComma) {
		p.advance()
		kind := p.peek().Kind
		if kind.IsIdentifier() || kind.IsKeyword() {
			token := p.advance()
			labels = append(labels, ast.NewIdent(p.text(token.Span), token.Span))
		}
	}
	endToken, err := p.expect(lexer.TokRBrace)
	if err != nil {
		return nil, err
	}
	return &ast.DefValContentBits{Labels: labels, Span: types.NewSpan(innerStart, endToken.Span.End)}, nil
}

func (p *Parser) parseDefValOidWithFirstIdent(ident ast.Ident, identToken lexer.Token, innerStart types.ByteOffset) (ast.DefValContent, *types.Diagnostic) {
	var components []ast.OidComponent

	if p.check(lexer.TokLParen) {
		p.advance()
		numToken, err := p.expect(lexer.TokNumber)
		if err != nil {
			return nil, err
		}
		number, _ := p.parseU32(numToken.Span, "OID component")
		endParen, err := p.expect(lexer.TokRParen)
		if err != nil {
			return nil, err
		}
		components = append(components, &ast.OidComponentNamedNumber{
			Name: ident, Num: number, Span: types.NewSpan(identToken.Span.Start, endParen.Span.End),
		})
	} else {
		components = append(components, &ast.OidComponentName{Name: ident})
	}

	var err *types.Diagnostic
	components, err = p.parseDefValOidComponents(components)
	if err != nil {
		return nil, err
	}

	endToken, err := p.expect(lexer.TokRBrace)
	if err != nil {
		return nil, err
	}
	return &ast.DefValContentObjectIdentifier{Components: components, Span: types.NewSpan(innerStart, endToken.Span.End)}, nil
}

func (p *Parser) parseDefValOidNumeric(innerStart types.ByteOffset) (ast.DefValContent, *types.Diagnostic) {
	components, err := p.parseDefValOidComponents(nil)
	if err != nil {
		return nil, err
	}
	endToken, err := p.expect(lexer.TokRBrace)
	if err != nil {
		return nil, err
	}
	return &ast.DefValContentObjectIdentifier{Components: components, Span: types.NewSpan(innerStart, endToken.Span.End)}, nil
}

func (p *Parser) parseDefValOidComponents(components []ast.OidComponent) ([]ast.OidComponent, *types.Diagnostic) {
	for !p.check(lexer.TokRBrace) && !p.isEOF() {
		if p.check(lexer.TokNumber) {
			token := p.advance()
			value, _ := p.parseU32(token.Span, "OID component")
			components = append(components, &ast.OidComponentNumber{Value: value, Span: token.Span})
		} else if p.check(lexer.TokLowercaseIdent) || p.check(lexer.TokUppercaseIdent) {
			token := p.advance()
			name := p.makeIdent(token)
			if p.check(lexer.TokLParen) {
				p.advance()
				numToken, err := p.expect(lexer.TokNumber)
				if err != nil {
					return components, err
				}
				number, _ := p.parseU32(numToken.Span, "OID component")
				endParen, err := p.expect(lexer.TokRParen)
				if err != nil {
					return components, err
				}
				components = append(components, &ast.OidComponentNamedNumber{
					Name: name, Num: number, Span: types.NewSpan(token.Span.Start, endParen.Span.End),
				})
			} else {
				components = append(components, &ast.OidComponentName{Name: name})
			}
		} else {
			break
		}
	}
	return components, nil
}

func (p *Parser) parseDefValSkipBraced(start types.ByteOffset) (ast.DefValContent, *types.Diagnostic) {
	depth := 1
	for depth > 0 && !p.isEOF() {
		switch p.peek().Kind {
		case lexer.TokLBrace:
			depth++
			p.advance()
		case lexer.TokRBrace:
			depth--
			if depth > 0 {
				p.advance()
			}
		default:
			p.advance()
		}
	}
	endToken, err := p.expect(lexer.TokRBrace)
	if err != nil {
		return nil, err
	}
	return &ast.DefValContentUnparsed{Span: types.NewSpan(start, endToken.Span.End)}, nil
}

func (p *Parser) parseDefValSkipUnknown(contentStart types.ByteOffset) ast.DefValContent {
	depth := 0
	for !p.isEOF() {
		switch p.peek().Kind {
		case lexer.TokLBrace:
			depth++
			p.advance()
		case lexer.TokRBrace:
			if depth == 0 {
				return &ast.DefValContentUnparsed{Span: types.NewSpan(contentStart, p.currentSpan().Start)}
			}
			depth--
			p.advance()
		default:
			p.advance()
		}
	}
	return &ast.DefValContentUnparsed{Span: types.NewSpan(contentStart, p.currentSpan().Start)}
}

// parseQuotedString consumes a quoted string token and strips the quotes.
func (p *Parser) parseQuotedString() (ast.QuotedString, *types.Diagnostic) {
	if !p.check(lexer.TokQuotedString) {
		diag := p.makeError("expected quoted string")
		return ast.QuotedString{}, &diag
	}
	token := p.advance()
	fullText := p.text(token.Span)
	value := ""
	if len(fullText) >= 2 && fullText[len(fullText)-1] == '"' {
		value = fullText[1 : len(fullText)-1]
	} else if len(fullText) >= 1 {
		value = fullText[1:]
	}
	return ast.NewQuotedString(value, token.Span), nil
}

// parseOptionalReference parses an optional REFERENCE clause, returning
// nil if not present.
func (p *Parser) parseOptionalReference() (*ast.QuotedString, *types.Diagnostic) {
	if !p.check(lexer.TokKwReference) {
		return nil, nil
	}
	p.advance()
	qs, err := p.parseQuotedString()
	if err != nil {
		return nil, err
	}
	return &qs, nil
}

// parseModuleIdentity parses a MODULE-IDENTITY macro invocation.
func (p *Parser) parseModuleIdentity() *types.Diagnostic {
	start := p.currentSpan().Start
	nameToken := p.advance()
	name := p.makeIdentWithValidation(nameToken)
	p.validateValueReference(name.Name, nameToken.Span)

	if _, err := p.expect(lexer.TokKwModuleIdentity); err != nil {
		return err
	}
	if _, err := p.expect(lexer.TokKwLastUpdated); err != nil {
		return err
	}
	lastUpdated, err := p.parseQuotedString()
	if err != nil {
		return err
	}
	if _, err := p.expect(lexer.TokKwOrganization); err != nil {
		return err
	}
	organization, err := p.parseQuotedString()
	if err != nil {
		return err
	}
	if _, err := p.expect(lexer.TokKwContactInfo); err != nil {
		return err
	}
	contactInfo, err := p.parseQuotedString()
	if err != nil {
		return err
	}
	if _, err := p.expect(lexer.TokKwDescription); err != nil {
		return err
	}
	description, err := p.parseQuotedString()
	if err != nil {
		return err
	}

	var revisions []ast.RevisionClause
	for p.check(lexer.TokKwRevision) {
		revStart := p.currentSpan().Start
		p.advance()
		date, err := p.parseQuotedString()
		if err != nil {
			return err
		}
		if _, err := p.expect(lexer.TokKwDescription); err != nil {
			return err
		}
		revDescription, err := p.parseQuotedString()
		if err != nil {
			return err
		}
		revisions = append(revisions, ast.RevisionClause{Date: date, Description: revDescription, Span: types.NewSpan(revStart, revDescription.Span.End)})
	}

	if _, err := p.expect(lexer.TokColonColonEqual); err != nil {
		return err
	}
	oid, err := p.parseOidAssignment()
	if err != nil {
		return err
	}

	span := types.NewSpan(start, oid.Span.End)
	p.listener.EnterRule(ast.RuleModuleIdentity, &name, span)
	p.listener.Field(ast.FieldLastUpdated, lastUpdated, lastUpdated.Span)
	p.listener.Field(ast.FieldOrganization, organization, organization.Span)
	p.listener.Field(ast.FieldContactInfo, contactInfo, contactInfo.Span)
	p.listener.Field(ast.FieldDescription, description, description.Span)
	for _, rev := range revisions {
		p.listener.Field(ast.FieldRevision, rev, rev.Span)
	}
	p.listener.Field(ast.FieldOidAssignment, oid, oid.Span)
	p.listener.ExitRule(ast.RuleModuleIdentity, span)
	return nil
}

// parseObjectIdentity parses an OBJECT-IDENTITY macro invocation.
func (p *Parser) parseObjectIdentity() *types.Diagnostic {
	start := p.currentSpan().Start
	nameToken := p.advance()
	name := p.makeIdentWithValidation(nameToken)
	p.validateValueReference(name.Name, nameToken.Span)

	if _, err := p.expect(lexer.TokKwObjectIdentity); err != nil {
		return err
	}
	status, err := p.parseStatusClause()
	if err != nil {
		return err
	}
	if _, err := p.expect(lexer.TokKwDescription); err != nil {
		return err
	}
	description, err := p.parseQuotedString()
	if err != nil {
		return err
	}
	reference, err := p.parseOptionalReference()
	if err != nil {
		return err
	}
	if _, err := p.expect(lexer.TokColonColonEqual); err != nil {
		return err
	}
	oid, err := p.parseOidAssignment()
	if err != nil {
		return err
	}

	span := types.NewSpan(start, oid.Span.End)
	p.listener.EnterRule(ast.RuleObjectIdentity, &name, span)
	p.listener.Field(ast.FieldStatus, status, status.Span)
	p.listener.Field(ast.FieldDescription, description, description.Span)
	if reference != nil {
		p.listener.Field(ast.FieldReference, *reference, reference.Span)
	}
	p.listener.Field(ast.FieldOidAssignment, oid, oid.Span)
	p.listener.ExitRule(ast.RuleObjectIdentity, span)
	return nil
}

// parseNotificationType parses a NOTIFICATION-TYPE macro invocation.
func (p *Parser) parseNotificationType() *types.Diagnostic {
	start := p.currentSpan().Start
	nameToken := p.advance()
	name := p.makeIdentWithValidation(nameToken)
	p.validateValueReference(name.Name, nameToken.Span)

	if _, err := p.expect(lexer.TokKwNotificationType); err != nil {
		return err
	}

	var objects []ast.Ident
	if p.check(lexer.TokKwObjects) {
		p.advance()
		if _, err := p.expect(lexer.TokLBrace); err != nil {
			return err
		}
		objs, err := p.parseIdentifierList()
		if err != nil {
			return err
		}
		if _, err := p.expect(lexer.TokRBrace); err != nil {
			return err
		}
		objects = objs
	}

	status, err := p.parseStatusClause()
	if err != nil {
		return err
	}
	if _, err := p.expect(lexer.TokKwDescription); err != nil {
		return err
	}
	description, err := p.parseQuotedString()
	if err != nil {
		return err
	}
	reference, err := p.parseOptionalReference()
	if err != nil {
		return err
	}
	if _, err := p.expect(lexer.TokColonColonEqual); err != nil {
		return err
	}
	oid, err := p.parseOidAssignment()
	if err != nil {
		return err
	}

	span := types.NewSpan(start, oid.Span.End)
	p.listener.EnterRule(ast.RuleNotificationType, &name, span)
	if objects != nil {
		p.listener.Field(ast.FieldObjects, objects, span)
	}
	p.listener.Field(ast.FieldStatus, status, status.Span)
	p.listener.Field(ast.FieldDescription, description, description.Span)
	if reference != nil {
		p.listener.Field(ast.FieldReference, *reference, reference.Span)
	}
	p.listener.Field(ast.FieldOidAssignment, oid, oid.Span)
	p.listener.ExitRule(ast.RuleNotificationType, span)
	return nil
}

// parseTrapType parses a TRAP-TYPE macro invocation (SMIv1).
func (p *Parser) parseTrapType() *types.Diagnostic {
	start := p.currentSpan().Start
	nameToken := p.advance()
	name := p.makeIdentWithValidation(nameToken)
	p.validateValueReference(name.Name, nameToken.Span)

	if _, err := p.expect(lexer.TokKwTrapType); err != nil {
		return err
	}
	if _, err := p.expect(lexer.TokKwEnterprise); err != nil {
		return err
	}
	enterpriseToken, err := p.expectIdentifier()
	if err != nil {
		return err
	}
	enterprise := p.makeIdent(enterpriseToken)

	var variables []ast.Ident
	if p.check(lexer.TokKwVariables) {
		p.advance()
		if _, err := p.expect(lexer.TokLBrace); err != nil {
			return err
		}
		vars, err := p.parseIdentifierList()
		if err != nil {
			return err
		}
		if _, err := p.expect(lexer.TokRBrace); err != nil {
			return err
		}
		variables = vars
	}

	var description *ast.QuotedString
	if p.check(lexer.TokKwDescription) {
		p.advance()
		qs, err := p.parseQuotedString()
		if err != nil {
			return err
		}
		description = &qs
	}

	reference, err := p.parseOptionalReference()
	if err != nil {
		return err
	}

	if _, err := p.expect(lexer.TokColonColonEqual); err != nil {
		return err
	}
	numToken, err := p.expect(lexer.TokNumber)
	if err != nil {
		return err
	}
	trapNumber, _ := p.parseU32(numToken.Span, "trap number")

	span := types.NewSpan(start, numToken.Span.End)
	p.listener.EnterRule(ast.RuleTrapType, &name, span)
	p.listener.Field(ast.FieldEnterprise, enterprise, enterprise.Span)
	if variables != nil {
		p.listener.Field(ast.FieldVariables, variables, span)
	}
	if description != nil {
		p.listener.Field(ast.FieldDescription, *description, description.Span)
	}
	if reference != nil {
		p.listener.Field(ast.FieldReference, *reference, reference.Span)
	}
	p.listener.Field(ast.FieldTrapNumber, trapNumber, numToken.Span)
	p.listener.ExitRule(ast.RuleTrapType, span)
	return nil
}

// parseTextualConvention parses: Name TEXTUAL-CONVENTION ...
func (p *Parser) parseTextualConvention() *types.Diagnostic {
	start := p.currentSpan().Start
	nameToken := p.advance()
	name := p.makeIdentWithValidation(nameToken)
	if _, err := p.expect(lexer.TokKwTextualConvention); err != nil {
		return err
	}
	return p.parseTextualConventionBody(name, start)
}

// parseTextualConventionWithAssignment parses the alternate form:
// Name ::= TEXTUAL-CONVENTION ...
func (p *Parser) parseTextualConventionWithAssignment() *types.Diagnostic {
	start := p.currentSpan().Start
	nameToken := p.advance()
	name := p.makeIdentWithValidation(nameToken)
	if _, err := p.expect(lexer.TokColonColonEqual); err != nil {
		return err
	}
	if _, err := p.expect(lexer.TokKwTextualConvention); err != nil {
		return err
	}
	return p.parseTextualConventionBody(name, start)
}

// parseTextualConventionBody parses the shared body of a TEXTUAL-CONVENTION
// (DISPLAY-HINT, STATUS, DESCRIPTION, REFERENCE, SYNTAX).
func (p *Parser) parseTextualConventionBody(name ast.Ident, start types.ByteOffset) *types.Diagnostic {
	var displayHint *ast.QuotedString
	if p.check(lexer.TokKwDisplayHint) {
		p.advance()
		qs, err := p.parseQuotedString()
		if err != nil {
			return err
		}
		displayHint = &qs
	}

	status, err := p.parseStatusClause()
	if err != nil {
		return err
	}
	if _, err := p.expect(lexer.TokKwDescription); err != nil {
		return err
	}
	description, err := p.parseQuotedString()
	if err != nil {
		return err
	}
	reference, err := p.parseOptionalReference()
	if err != nil {
		return err
	}
	if _, err := p.expect(lexer.TokKwSyntax); err != nil {
		return err
	}
	syntax, err := p.parseSyntaxClause()
	if err != nil {
		return err
	}

	span := types.NewSpan(start, syntax.Span.End)
	p.listener.EnterRule(ast.RuleTextualConvention, &name, span)
	if displayHint != nil {
		p.listener.Field(ast.FieldDisplayHint, *displayHint, displayHint.Span)
	}
	p.listener.Field(ast.FieldStatus, status, status.Span)
	p.listener.Field(ast.FieldDescription, description, description.Span)
	if reference != nil {
		p.listener.Field(ast.FieldReference, *reference, reference.Span)
	}
	p.listener.Field(ast.FieldSyntax, syntax, syntax.Span)
	p.listener.ExitRule(ast.RuleTextualConvention, span)
	return nil
}

// parseTypeAssignment parses: TypeName ::= TypeSyntax
func (p *Parser) parseTypeAssignment() *types.Diagnostic {
	start := p.currentSpan().Start
	nameToken := p.advance()
	name := p.makeIdentWithValidation(nameToken)
	if _, err := p.expect(lexer.TokColonColonEqual); err != nil {
		return err
	}
	syntax, err := p.parseTypeSyntax()
	if err != nil {
		return err
	}

	span := types.NewSpan(start, syntax.SyntaxSpan().End)
	p.listener.EnterRule(ast.RuleTypeAssignment, &name, span)
	p.listener.Field(ast.FieldTypeSyntax, syntax, syntax.SyntaxSpan())
	p.listener.ExitRule(ast.RuleTypeAssignment, span)
	return nil
}

// parseObjectGroup parses an OBJECT-GROUP macro invocation.
func (p *Parser) parseObjectGroup() *types.Diagnostic {
	start := p.currentSpan().Start
	nameToken := p.advance()
	name := p.makeIdentWithValidation(nameToken)
	p.validateValueReference(name.Name, nameToken.Span)

	if _, err := p.expect(lexer.TokKwObjectGroup); err != nil {
		return err
	}
	if _, err := p.expect(lexer.TokKwObjects); err != nil {
		return err
	}
	if _, err := p.expect(lexer.TokLBrace); err != nil {
		return err
	}
	objects, err := p.parseIdentifierList()
	if err != nil {
		return err
	}
	if _, err := p.expect(lexer.TokRBrace); err != nil {
		return err
	}
	status, err := p.parseStatusClause()
	if err != nil {
		return err
	}
	if _, err := p.expect(lexer.TokKwDescription); err != nil {
		return err
	}
	description, err := p.parseQuotedString()
	if err != nil {
		return err
	}
	reference, err := p.parseOptionalReference()
	if err != nil {
		return err
	}
	if _, err := p.expect(lexer.TokColonColonEqual); err != nil {
		return err
	}
	oid, err := p.parseOidAssignment()
	if err != nil {
		return err
	}

	span := types.NewSpan(start, oid.Span.End)
	p.listener.EnterRule(ast.RuleObjectGroup, &name, span)
	p.listener.Field(ast.FieldObjects, objects, span)
	p.listener.Field(ast.FieldStatus, status, status.Span)
	p.listener.Field(ast.FieldDescription, description, description.Span)
	if reference != nil {
		p.listener.Field(ast.FieldReference, *reference, reference.Span)
	}
	p.listener.Field(ast.FieldOidAssignment, oid, oid.Span)
	p.listener.ExitRule(ast.RuleObjectGroup, span)
	return nil
}

// parseNotificationGroup parses a NOTIFICATION-GROUP macro invocation.
func (p *Parser) parseNotificationGroup() *types.Diagnostic {
	start := p.currentSpan().Start
	nameToken := p.advance()
	name := p.makeIdentWithValidation(nameToken)
	p.validateValueReference(name.Name, nameToken.Span)

	if _, err := p.expect(lexer.TokKwNotificationGroup); err != nil {
		return err
	}
	if _, err := p.expect(lexer.TokKwNotifications); err != nil {
		return err
	}
	if _, err := p.expect(lexer.TokLBrace); err != nil {
		return err
	}
	notifications, err := p.parseIdentifierList()
	if err != nil {
		return err
	}
	if _, err := p.expect(lexer.TokRBrace); err != nil {
		return err
	}
	status, err := p.parseStatusClause()
	if err != nil {
		return err
	}
	if _, err := p.expect(lexer.TokKwDescription); err != nil {
		return err
	}
	description, err := p.parseQuotedString()
	if err != nil {
		return err
	}
	reference, err := p.parseOptionalReference()
	if err != nil {
		return err
	}
	if _, err := p.expect(lexer.TokColonColonEqual); err != nil {
		return err
	}
	oid, err := p.parseOidAssignment()
	if err != nil {
		return err
	}

	span := types.NewSpan(start, oid.Span.End)
	p.listener.EnterRule(ast.RuleNotificationGroup, &name, span)
	p.listener.Field(ast.FieldNotifications, notifications, span)
	p.listener.Field(ast.FieldStatus, status, status.Span)
	p.listener.Field(ast.FieldDescription, description, description.Span)
	if reference != nil {
		p.listener.Field(ast.FieldReference, *reference, reference.Span)
	}
	p.listener.Field(ast.FieldOidAssignment, oid, oid.Span)
	p.listener.ExitRule(ast.RuleNotificationGroup, span)
	return nil
}

// parseModuleCompliance parses a MODULE-COMPLIANCE macro invocation.
func (p *Parser) parseModuleCompliance() *types.Diagnostic {
	start := p.currentSpan().Start
	nameToken := p.advance()
	name := p.makeIdentWithValidation(nameToken)
	p.validateValueReference(name.Name, nameToken.Span)

	if _, err := p.expect(lexer.TokKwModuleCompliance); err != nil {
		return err
	}
	status, err := p.parseStatusClause()
	if err != nil {
		return err
	}
	if _, err := p.expect(lexer.TokKwDescription); err != nil {
		return err
	}
	description, err := p.parseQuotedString()
	if err != nil {
		return err
	}
	reference, err := p.parseOptionalReference()
	if err != nil {
		return err
	}

	span := types.NewSpan(start, p.currentSpan().Start)
	p.listener.EnterRule(ast.RuleModuleCompliance, &name, span)
	p.listener.Field(ast.FieldStatus, status, status.Span)
	p.listener.Field(ast.FieldDescription, description, description.Span)
	if reference != nil {
		p.listener.Field(ast.FieldReference, *reference, reference.Span)
	}

	for p.check(lexer.TokKwModule) {
		if err := p.parseComplianceModule(); err != nil {
			return err
		}
	}

	if _, err := p.expect(lexer.TokColonColonEqual); err != nil {
		return err
	}
	oid, err := p.parseOidAssignment()
	if err != nil {
		return err
	}
	p.listener.Field(ast.FieldOidAssignment, oid, oid.Span)
	finalSpan := types.NewSpan(start, oid.Span.End)
	p.listener.ExitRule(ast.RuleModuleCompliance, finalSpan)
	return nil
}

func (p *Parser) parseComplianceModule() *types.Diagnostic {
	start := p.currentSpan().Start
	if _, err := p.expect(lexer.TokKwModule); err != nil {
		return err
	}

	var moduleName *ast.Ident
	if p.check(lexer.TokUppercaseIdent) {
		ident := p.makeIdent(p.advance())
		moduleName = &ident
	}

	var moduleOid *ast.OidAssignment
	if p.check(lexer.TokLBrace) {
		oid, err := p.parseOidAssignment()
		if err != nil {
			return err
		}
		moduleOid = &oid
	}

	var mandatoryGroups []ast.Ident
	if p.check(lexer.TokKwMandatoryGroups) {
		p.advance()
		if _, err := p.expect(lexer.TokLBrace); err != nil {
			return err
		}
		groups, err := p.parseIdentifierList()
		if err != nil {
			return err
		}
		if _, err := p.expect(lexer.TokRBrace); err != nil {
			return err
		}
		mandatoryGroups = groups
	}

	span := types.NewSpan(start, p.currentSpan().Start)
	p.listener.EnterRule(ast.RuleComplianceModule, moduleName, span)
	if moduleOid != nil {
		p.listener.Field(ast.FieldOidAssignment, *moduleOid, moduleOid.Span)
	}
	if mandatoryGroups != nil {
		p.listener.Field(ast.FieldMandatoryGroups, mandatoryGroups, span)
	}

	for p.check(lexer.TokKwGroup) || p.check(lexer.TokKwObject) {
		if p.check(lexer.TokKwGroup) {
			group, err := p.parseComplianceGroup()
			if err != nil {
				return err
			}
			p.listener.Field(ast.FieldComplianceGroup, *group, group.Span)
		} else {
			obj, err := p.parseComplianceObject()
			if err != nil {
				return err
			}
			p.listener.Field(ast.FieldComplianceObject, *obj, obj.Span)
		}
	}

	p.listener.ExitRule(ast.RuleComplianceModule, types.NewSpan(start, p.currentSpan().Start))
	return nil
}

func (p *Parser) parseComplianceGroup() (*ast.ComplianceGroupClause, *types.Diagnostic) {
	start := p.currentSpan().Start
	if _, err := p.expect(lexer.TokKwGroup); err != nil {
		return nil, err
	}
	groupIdent, err := p.parseIdentifierAsIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokKwDescription); err != nil {
		return nil, err
	}
	description, err := p.parseQuotedString()
	if err != nil {
		return nil, err
	}
	return &ast.ComplianceGroupClause{Group: groupIdent, Description: description, Span: types.NewSpan(start, description.Span.End)}, nil
}

func (p *Parser) parseComplianceObject() (*ast.ComplianceObjectClause, *types.Diagnostic) {
	start := p.currentSpan().Start
	if _, err := p.expect(lexer.TokKwObject); err != nil {
		return nil, err
	}
	objectIdent, err := p.parseIdentifierAsIdent()
	if err != nil {
		return nil, err
	}

	var syntax *ast.SyntaxClause
	if p.check(lexer.TokKwSyntax) {
		p.advance()
		sc, err := p.parseSyntaxClause()
		if err != nil {
			return nil, err
		}
		syntax = &sc
	}

	var writeSyntax *ast.SyntaxClause
	if p.check(lexer.TokKwWriteSyntax) {
		p.advance()
		sc, err := p.parseSyntaxClause()
		if err != nil {
			return nil, err
		}
		writeSyntax = &sc
	}

	var minAccess *ast.AccessClause
	if p.check(lexer.TokKwMinAccess) {
		ac, err := p.parseAccessClause()
		if err != nil {
			return nil, err
		}
		minAccess = &ac
	}

	if _, err := p.expect(lexer.TokKwDescription); err != nil {
		return nil, err
	}
	description, err := p.parseQuotedString()
	if err != nil {
		return nil, err
	}

	return &ast.ComplianceObjectClause{
		Object: objectIdent, Syntax: syntax, WriteSyntax: writeSyntax, MinAccess: minAccess,
		Description: description, Span: types.NewSpan(start, description.Span.End),
	}, nil
}

func (p *Parser) parseIdentifierAsIdent() (ast.Ident, *types.Diagnostic) {
	token, err := p.expectIdentifier()
	if err != nil {
		return ast.Ident{}, err
	}
	return p.makeIdent(token), nil
}

// parseAgentCapabilities parses an AGENT-CAPABILITIES macro invocation.
func (p *Parser) parseAgentCapabilities() *types.Diagnostic {
	start := p.currentSpan().Start
	nameToken := p.advance()
	name := p.makeIdentWithValidation(nameToken)
	p.validateValueReference(name.Name, nameToken.Span)

	if _, err := p.expect(lexer.TokKwAgentCapabilities); err != nil {
		return err
	}
	if _, err := p.expect(lexer.TokKwProductRelease); err != nil {
		return err
	}
	productRelease, err := p.parseQuotedString()
	if err != nil {
		return err
	}
	status, err := p.parseStatusClause()
	if err != nil {
		return err
	}
	if _, err := p.expect(lexer.TokKwDescription); err != nil {
		return err
	}
	description, err := p.parseQuotedString()
	if err != nil {
		return err
	}
	reference, err := p.parseOptionalReference()
	if err != nil {
		return err
	}

	span := types.NewSpan(start, p.currentSpan().Start)
	p.listener.EnterRule(ast.RuleAgentCapabilities, &name, span)
	p.listener.Field(ast.FieldProductRelease, productRelease, productRelease.Span)
	p.listener.Field(ast.FieldStatus, status, status.Span)
	p.listener.Field(ast.FieldDescription, description, description.Span)
	if reference != nil {
		p.listener.Field(ast.FieldReference, *reference, reference.Span)
	}

	for p.check(lexer.TokKwSupports) {
		if err := p.parseSupportsModule(); err != nil {
			return err
		}
	}

	if _, err := p.expect(lexer.TokColonColonEqual); err != nil {
		return err
	}
	oid, err := p.parseOidAssignment()
	if err != nil {
		return err
	}
	p.listener.Field(ast.FieldOidAssignment, oid, oid.Span)
	p.listener.ExitRule(ast.RuleAgentCapabilities, types.NewSpan(start, oid.Span.End))
	return nil
}

func (p *Parser) parseSupportsModule() *types.Diagnostic {
	start := p.currentSpan().Start
	if _, err := p.expect(lexer.TokKwSupports); err != nil {
		return err
	}
	moduleName, err := p.parseIdentifierAsIdent()
	if err != nil {
		return err
	}

	var moduleOid *ast.OidAssignment
	if p.check(lexer.TokLBrace) {
		oid, err := p.parseOidAssignment()
		if err != nil {
			return err
		}
		moduleOid = &oid
	}

	if _, err := p.expect(lexer.TokKwIncludes); err != nil {
		return err
	}
	if _, err := p.expect(lexer.TokLBrace); err != nil {
		return err
	}
	includes, err := p.parseIdentifierList()
	if err != nil {
		return err
	}
	if _, err := p.expect(lexer.TokRBrace); err != nil {
		return err
	}

	p.listener.EnterRule(ast.RuleSupportsModule, &moduleName, types.NewSpan(start, p.currentSpan().Start))
	if moduleOid != nil {
		p.listener.Field(ast.FieldOidAssignment, *moduleOid, moduleOid.Span)
	}
	p.listener.Field(ast.FieldInclude, includes, types.NewSpan(start, p.currentSpan().Start))

	// VARIATION clauses refine a single object or notification's behavior for
	// this agent; their content does not feed the catalogue model, so the
	// clause is consumed for correct token accounting and not reported.
	for p.check(lexer.TokKwVariation) {
		if err := p.skipVariationClause(); err != nil {
			return err
		}
	}

	p.listener.ExitRule(ast.RuleSupportsModule, types.NewSpan(start, p.currentSpan().Start))
	return nil
}

func (p *Parser) skipVariationClause() *types.Diagnostic {
	if _, err := p.expect(lexer.TokKwVariation); err != nil {
		return err
	}
	if _, err := p.parseIdentifierAsIdent(); err != nil {
		return err
	}
	if p.check(lexer.TokKwSyntax) {
		p.advance()
		if _, err := p.parseSyntaxClause(); err != nil {
			return err
		}
	}
	if p.check(lexer.TokKwWriteSyntax) {
		p.advance()
		if _, err := p.parseSyntaxClause(); err != nil {
			return err
		}
	}
	if p.check(lexer.TokKwAccess) {
		if _, err := p.parseAccessClause(); err != nil {
			return err
		}
	}
	if p.check(lexer.TokKwCreationRequires) {
		p.advance()
		if _, err := p.expect(lexer.TokLBrace); err != nil {
			return err
		}
		if _, err := p.parseIdentifierList(); err != nil {
			return err
		}
		if _, err := p.expect(lexer.TokRBrace); err != nil {
			return err
		}
	}
	if p.check(lexer.TokKwDefval) {
		if _, err := p.parseDefValClause(); err != nil {
			return err
		}
	}
	if _, err := p.expect(lexer.TokKwDescription); err != nil {
		return err
	}
	_, err := p.parseQuotedString()
	return err
}

// parseMacroDefinition parses a MACRO definition header and skips to END.
func (p *Parser) parseMacroDefinition() *types.Diagnostic {
	start := p.currentSpan().Start
	name := p.makeIdent(p.advance())

	if _, err := p.expect(lexer.TokKwMacro); err != nil {
		return err
	}

	for !p.check(lexer.TokKwEnd) && !p.isEOF() {
		p.advance()
	}

	if !p.check(lexer.TokKwEnd) {
		diag := p.makeError("expected END for MACRO")
		return &diag
	}
	endToken := p.advance()

	span := types.NewSpan(start, endToken.Span.End)
	p.listener.EnterRule(ast.RuleMacroDefinition, &name, span)
	p.listener.ExitRule(ast.RuleMacroDefinition, span)
	return nil
}

// parseIdentifierList parses a comma-separated list of identifiers.
func (p *Parser) parseIdentifierList() ([]ast.Ident, *types.Diagnostic) {
	var idents []ast.Ident
	for !p.check(lexer.TokRBrace) && !p.isEOF() {
		token, err := p.expectIdentifier()
		if err != nil {
			return nil, err
		}
		idents = append(idents, p.makeIdent(token))
		if p.check(lexer.TokComma) {
			p.advance()
		} else {
			break
		}
	}
	return idents, nil
}

// recoverToDefinition skips tokens until the start of a new definition or
// END, allowing the parser to continue after an error.
func (p *Parser) recoverToDefinition() {
	for !p.isEOF() && !p.check(lexer.TokKwEnd) {
		current := p.peek().Kind
		next := p.peekNth(1).Kind

		if (current.IsIdentifier() && next.IsMacroKeyword()) ||
			(current == lexer.TokUppercaseIdent && next == lexer.TokColonColonEqual) ||
			(current == lexer.TokUppercaseIdent && next == lexer.TokKwTextualConvention) ||
			(current == lexer.TokUppercaseIdent && next == lexer.TokKwMacro) ||
			(current.IsIdentifier() && next == lexer.TokKwObject && p.peekNth(2).Kind == lexer.TokKwIdentifier) {
			break
		}
		p.advance()
	}
}
