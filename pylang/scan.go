package pylang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
	"sync"

	"github.com/npillmayer/pygo"
	"github.com/npillmayer/pygo/scanner"
	"github.com/npillmayer/pygo/scanner/lexmach"
	"github.com/npillmayer/pygo/token"
	"github.com/timtadh/lexmachine"
)

// lineBreak is the token kind of a raw line break, including the indentation
// of the following line. Line breaks never leave the lexer; the indentation
// pass replaces them by NEWLINE, INDENT and DEDENT.
const lineBreak pygo.TokType = 1000

// tokenIds will be set in initTokens()
var tokenIds map[string]int   // A map from the token names to their token types
var keywordIds map[string]int // reserved words

var initOnce sync.Once // monitors one-time initialization
func initTokens() {
	initOnce.Do(func() {
		tokenIds = make(map[string]int)
		tokenIds["NAME"] = int(token.Name)
		tokenIds["NUMBER"] = int(token.Number)
		tokenIds["STRING"] = int(token.String)
		tokenIds["LINEBREAK"] = int(lineBreak)
		for _, op := range token.Operators {
			k, _ := token.OperatorKind(op)
			tokenIds[op] = int(k)
		}
		keywordIds = make(map[string]int)
		for kw, k := range token.Keywords {
			keywordIds[kw] = int(k)
		}
	})
}

var lexer *lexmach.LMAdapter
var lexerErr error
var lexOnce sync.Once // monitors one-time creation of the lexer

// Lexer returns the lexmachine lexer for the language. The DFA is compiled
// on first use.
func Lexer() (*lexmach.LMAdapter, error) {
	lexOnce.Do(func() {
		initTokens()
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`#[^\n]*`), lexmach.Skip) // skip comments
			lexer.Add([]byte(`( |\t)+`), lexmach.Skip)
			lexer.Add([]byte(`\r?\n( |\t)*`), makeToken("LINEBREAK"))
			lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`),
				lexmach.MakeKeywordOrToken(tokenIds["NAME"], keywordIds))
			lexer.Add([]byte(`[0-9]+(\.[0-9]*)?([eE][\+\-]?[0-9]+)?`), makeToken("NUMBER"))
			lexer.Add([]byte(`\.[0-9]+([eE][\+\-]?[0-9]+)?`), makeToken("NUMBER"))
			lexer.Add([]byte(`\"[^"\n]*\"`), makeToken("STRING"))
			lexer.Add([]byte(`'[^'\n]*'`), makeToken("STRING"))
		}
		tracer().Infof("Creating lexer")
		lexer, lexerErr = lexmach.NewLMAdapter(init, token.Operators, nil, tokenIds)
	})
	return lexer, lexerErr
}

func makeToken(s string) lexmachine.Action {
	return lexmach.MakeToken(s, tokenIds[s])
}

// Tokenize splits a source text into tokens. Illegal characters and
// inconsistent indentation are reported as ParseError.
func Tokenize(src string, opts ...scanner.Option) (*TokenStream, error) {
	options := scanner.DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	lex, err := Lexer()
	if err != nil {
		return nil, err
	}
	sc, err := lex.Scanner(src)
	if err != nil {
		return nil, err
	}
	var scanErr error
	sc.SetErrorHandler(func(e error) {
		options.ErrorHandler(e)
		if scanErr == nil {
			scanErr = pygo.Errorf(pygo.ParseError, "illegal input: %v", e)
		}
	})
	toks, err := layout(sc, options.TabWidth)
	if scanErr != nil {
		return nil, scanErr
	}
	if err != nil {
		return nil, err
	}
	return &TokenStream{tokens: toks}, nil
}

// layout reads all tokens from a tokenizer and replaces line breaks by
// NEWLINE, INDENT and DEDENT tokens. Blank lines, and line breaks within
// parentheses or brackets, do not produce any tokens. The stream always ends
// with a NEWLINE (for non-empty input), DEDENTs for all open blocks and EOF.
func layout(tz scanner.Tokenizer, tabWidth int) ([]pygo.Token, error) {
	var toks []pygo.Token
	levels := []int{0}
	nesting := 0
	var pending pygo.Token // last line break seen, if any
	synth := func(k pygo.TokType, at pygo.Token) pygo.Token {
		from := at.Span().From()
		return scanner.MakeDefaultToken(k, "", pygo.Span{from, from})
	}
	for {
		tok := tz.NextToken()
		switch tok.TokType() {
		case lineBreak:
			if nesting == 0 {
				pending = tok
			}
			continue
		case token.EOF:
			if len(toks) > 0 {
				toks = append(toks, synth(token.Newline, tok))
			}
			for len(levels) > 1 {
				levels = levels[:len(levels)-1]
				toks = append(toks, synth(token.Dedent, tok))
			}
			return append(toks, tok), nil
		}
		if pending != nil && len(toks) > 0 {
			toks = append(toks, synth(token.Newline, pending))
			col := indentation(pending.Lexeme(), tabWidth)
			if top := levels[len(levels)-1]; col > top {
				levels = append(levels, col)
				toks = append(toks, synth(token.Indent, pending))
			} else {
				for col < levels[len(levels)-1] {
					levels = levels[:len(levels)-1]
					toks = append(toks, synth(token.Dedent, pending))
				}
				if col != levels[len(levels)-1] {
					return toks, pygo.TokenErrorf(pygo.ParseError, tok,
						"unindent does not match any outer indentation level")
				}
			}
		}
		pending = nil
		switch tok.TokType() {
		case token.OpenParen, token.OpenBrack:
			nesting++
		case token.CloseParen, token.CloseBrack:
			if nesting > 0 {
				nesting--
			}
		}
		toks = append(toks, tok)
	}
}

// indentation returns the column of the first character after a line break.
func indentation(linebreak string, tabWidth int) int {
	col := 0
	for _, c := range linebreak[strings.LastIndexByte(linebreak, '\n')+1:] {
		if c == '\t' {
			col += tabWidth - col%tabWidth
		} else {
			col++
		}
	}
	return col
}

// --- Token stream ----------------------------------------------------------

// TokenStream is a sequence of tokens with random access. It is terminated
// by an EOF token, which is answered for every position past the end.
type TokenStream struct {
	tokens []pygo.Token
}

// At returns the token at position i.
func (ts *TokenStream) At(i uint64) pygo.Token {
	if i < uint64(len(ts.tokens)) {
		return ts.tokens[i]
	}
	if len(ts.tokens) == 0 {
		return scanner.MakeDefaultToken(token.EOF, "", pygo.Span{})
	}
	return ts.tokens[len(ts.tokens)-1]
}

// Len returns the number of tokens, including EOF.
func (ts *TokenStream) Len() int {
	return len(ts.tokens)
}

// Retriever returns a function for getting tokens at an input position.
func (ts *TokenStream) Retriever() pygo.TokenRetriever {
	return ts.At
}
