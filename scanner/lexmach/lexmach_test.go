package lexmach

import (
	"testing"

	"github.com/npillmayer/pygo/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/timtadh/lexmachine"
)

var inputStrings = []string{
	"1",
	"1+12",
	"Hello World",
	`x="mystring" # commented `,
	"1,22,333",
	"if x <= 3",
}

var tokenCounts = []int{1, 3, 2, 3, 5, 4}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pygo.scanner")
	defer teardown()
	//
	initTokens()
	LM, err := NewLMAdapter(lmInit, literals, nil, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner(input)
		if err != nil {
			t.Error(err)
		}
		token := sc.NextToken()
		count := 0
		for token.TokType() != scanner.EOF {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			token = sc.NextToken()
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestKeywordAction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pygo.scanner")
	defer teardown()
	//
	initTokens()
	LM, err := NewLMAdapter(lmInit, literals, nil, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	sc, _ := LM.Scanner("if iffy")
	if tok := sc.NextToken(); int(tok.TokType()) != tokenIds["if"] {
		t.Errorf("expected 'if' to be a keyword, is %d", tok.TokType())
	}
	if tok := sc.NextToken(); int(tok.TokType()) != tokenIds["ID"] || tok.Lexeme() != "iffy" {
		t.Errorf("expected 'iffy' to be an identifier, is %d|%q", tok.TokType(), tok.Lexeme())
	}
}

func TestUnconsumedInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pygo.scanner")
	defer teardown()
	//
	initTokens()
	LM, err := NewLMAdapter(lmInit, literals, nil, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	sc, _ := LM.Scanner("a ? b")
	errcnt := 0
	sc.SetErrorHandler(func(e error) { errcnt++ })
	count := 0
	for tok := sc.NextToken(); tok.TokType() != scanner.EOF; tok = sc.NextToken() {
		count++
	}
	if errcnt != 1 || count != 2 {
		t.Errorf("expected 1 error and 2 tokens, have %d errors and %d tokens", errcnt, count)
	}
}

var literals []string       // The tokens representing literal strings
var tokenIds map[string]int // A map from the token names to their int ids
var keywordIds map[string]int

func lmInit(lexer *lexmachine.Lexer) {
	lexer.Add([]byte(`#[^\n]*\n?`), Skip)
	lexer.Add([]byte(`\"[^"]*\"`), MakeToken("STRING", tokenIds["STRING"]))
	lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), MakeKeywordOrToken(tokenIds["ID"], keywordIds))
	lexer.Add([]byte(`[0-9]+`), MakeToken("NUM", tokenIds["NUM"]))
	lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
}

func initTokens() {
	literals = []string{
		"(", ")", "[", "]", "=", "+", "-", "*", "/", ",", "<=", "<",
	}
	tokenIds = make(map[string]int)
	tokenIds["ID"] = 45
	tokenIds["NUM"] = 4
	tokenIds["STRING"] = 3
	tokenIds["if"] = 25
	for i, lit := range literals {
		tokenIds[lit] = i + 100
	}
	keywordIds = map[string]int{"if": 25}
}
