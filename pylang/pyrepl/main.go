package main

import (
	"bufio"
	"flag"
	"io/ioutil"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/pygo/ast"
	"github.com/npillmayer/pygo/object"
	"github.com/npillmayer/pygo/pylang"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

const continuation = "... "

// main() starts an interactive CLI ("PyREPL"), where users may enter
// statements. PyREPL will run them and print out the value of expressions.
// If a script file is given as an argument, it is run instead, and PyREPL
// exits.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	conff := flag.String("config", "", "Configuration file (YAML)")
	dump := flag.Bool("ast", false, "Show statement trees")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	conf, err := loadConfig(*conff)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	if *tlevel != "" {
		conf.Trace = *tlevel
	}
	if *dump {
		conf.DumpAST = true
	}
	tracer().SetTraceLevel(traceLevel(conf.Trace))
	tracer().Infof("Trace level is %s", conf.Trace)
	//
	intp := &Intp{
		conf: conf,
		py:   pylang.NewInterpreter(pylang.WithMaxDepth(conf.MaxDepth)),
	}
	if flag.NArg() > 0 { // run a script and exit
		if err := intp.runScript(flag.Arg(0)); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(2)
		}
		return
	}
	//
	// set up REPL
	pterm.Info.Println("Welcome to PyREPL") // colored welcome message
	intp.repl, err = readline.NewEx(&readline.Config{
		Prompt:       conf.Prompt,
		AutoComplete: completer{py: intp.py},
	})
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer intp.repl.Close()
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	conf *Config
	py   *pylang.Interpreter
	repl *readline.Instance
}

func (intp *Intp) runScript(filename string) error {
	src, err := ioutil.ReadFile(filename)
	if err != nil {
		return err
	}
	tracer().Infof("Running script %s", filename)
	_, err = intp.Eval(string(src))
	return err
}

// loadInitFile runs the statements of an init file. Blocks are collected
// the same way as in interactive mode.
func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	var chunk []string
	flush := func() {
		if len(chunk) == 0 {
			return
		}
		if _, err := intp.Eval(strings.Join(chunk, "\n")); err != nil {
			tracer().Errorf("Error in init file: %v", err)
		}
		chunk = chunk[:0]
	}
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if len(chunk) > 0 && !indented(line) {
			flush()
		}
		chunk = append(chunk, line)
	}
	flush()
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		src := line
		if opensBlock(line) {
			if src, err = intp.readBlock(line); err != nil {
				break
			}
		}
		if _, err := intp.Eval(src); err != nil {
			if gconf.GetBool("panic-on-runtime-error") {
				panic(err)
			}
			continue
		}
	}
	println("Good bye!")
}

// readBlock reads continuation lines until an empty line is entered.
func (intp *Intp) readBlock(first string) (string, error) {
	lines := []string{first}
	intp.repl.SetPrompt(continuation)
	defer intp.repl.SetPrompt(intp.conf.Prompt)
	for {
		line, err := intp.repl.Readline()
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) == "" {
			return strings.Join(lines, "\n"), nil
		}
		lines = append(lines, line)
	}
}

// Eval runs a piece of source code in the global scope of the session.
// If the last statement is an expression, its value is printed.
func (intp *Intp) Eval(src string) (object.Value, error) {
	stmts, code, err := intp.py.Compile(src)
	if err != nil {
		pterm.Error.Println(err.Error())
		return nil, err
	}
	if intp.conf.DumpAST {
		if tree, err := ast.Tree("program", stmts); err == nil {
			pterm.Println(tree)
		}
	}
	v, err := intp.py.Execute(code)
	if err != nil {
		pterm.Error.Println(err.Error())
		return nil, err
	}
	if len(stmts) > 0 && isExpression(stmts[len(stmts)-1]) && v != object.None {
		pterm.Info.Println(object.Repr(v))
	}
	return v, nil
}

func isExpression(s ast.Statement) bool {
	switch s.(type) {
	case *ast.Var, *ast.Fun, *ast.Class, *ast.If, *ast.While, *ast.SubSet:
		return false
	}
	return true
}

func opensBlock(line string) bool {
	return strings.HasSuffix(strings.TrimSpace(line), ":")
}

func indented(line string) bool {
	return strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
