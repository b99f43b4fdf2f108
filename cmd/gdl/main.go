package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/gamedef"
	"github.com/npillmayer/gamedef/decl"
	"github.com/npillmayer/gamedef/gamedata"
	"github.com/npillmayer/gamedef/scanner"
	"github.com/npillmayer/gamedef/scanner/lexmach"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() reads the game data files given as arguments, or starts an
// interactive CLI if there are none.
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	tokens := flag.Bool("tokens", false, "Print tokens instead of records")
	useLM := flag.Bool("lexmachine", false, "Use the lexmachine tokenizer")
	lax := flag.Bool("lax", false, "Keep unknown escape sequences in strings")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	tracer().Infof("Trace level is %s", *tlevel)
	tracer().SetTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	//
	intp := &Intp{
		gd:     gamedata.New(),
		useLM:  *useLM,
		strict: !*lax,
	}
	if flag.NArg() > 0 {
		if err := intp.readFiles(flag.Args(), *tokens); err != nil {
			os.Exit(2)
		}
		return
	}
	//
	// set up REPL
	pterm.Info.Println("Welcome to GDL") // colored welcome message
	repl, err := readline.New("gdl> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                         // go into interactive mode
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
	gd     *gamedata.GameData
	repl   *readline.Instance
	useLM  bool // use lexmachine instead of the default tokenizer
	strict bool // unknown escapes are errors
}

func (intp *Intp) tokenizer(input []byte, sourceID string) (scanner.Tokenizer, error) {
	var tz scanner.Tokenizer
	if intp.useLM {
		lm, err := lexmach.Default()
		if err != nil {
			return nil, err
		}
		if tz, err = lm.Scanner(input, sourceID); err != nil {
			return nil, err
		}
	} else {
		tz = scanner.NewTokenizer(input, scanner.SourceID(sourceID), scanner.StrictEscapes(intp.strict))
	}
	tz.SetErrorHandler(func(error) {}) // errors are reported by the caller
	return tz, nil
}

func (intp *Intp) readFiles(filenames []string, tokens bool) error {
	var failed error
	for _, filename := range filenames {
		input, err := ioutil.ReadFile(filename)
		if err != nil {
			pterm.Error.Println(err.Error())
			failed = err
			continue
		}
		if tokens {
			err = intp.printTokens(input, filename)
		} else {
			err = intp.Eval(input, filename)
		}
		if err != nil {
			failed = err
		}
	}
	if !tokens {
		intp.printRecords()
		intp.printDigest()
	}
	return failed
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if quit := intp.Execute(line); quit {
				break
			}
			continue
		}
		intp.Eval([]byte(line), "")
	}
	println("Good bye!")
}

// Execute executes a command line.
func (intp *Intp) Execute(line string) bool {
	args := strings.SplitN(line, " ", 2)
	switch args[0] {
	case ":quit":
		return true
	case ":list":
		intp.printRecords()
	case ":digest":
		intp.printDigest()
	case ":tokens":
		if len(args) > 1 {
			intp.printTokens([]byte(args[1]), "")
		}
	default:
		pterm.Error.Println(fmt.Sprintf("unknown command %s", args[0]))
	}
	return false
}

// Eval reads the declarations of an input and adds the records to the game data.
//
func (intp *Intp) Eval(input []byte, sourceID string) error {
	tz, err := intp.tokenizer(input, sourceID)
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	m, i := intp.gd.MonsterTypes.Size(), intp.gd.ItemTypes.Size()
	err = decl.Parse(tz, intp.gd)
	m, i = intp.gd.MonsterTypes.Size()-m, intp.gd.ItemTypes.Size()-i
	tracer().Infof("read %d monster types and %d item types", m, i)
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	return nil
}

func (intp *Intp) printTokens(input []byte, sourceID string) error {
	tz, err := intp.tokenizer(input, sourceID)
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	for {
		tok, err := tz.PopToken()
		if err == scanner.ErrEndOfInput {
			return nil
		} else if err != nil {
			pterm.Error.Println(err.Error())
			return err
		}
		pterm.Println(tokenString(tok))
	}
}

func tokenString(tok gamedef.Token) string {
	return fmt.Sprintf("%-8s %-24q %s", scanner.KindString(tok.TokType()), tok.Lexeme(), tok.Span())
}

func (intp *Intp) printRecords() {
	var ll pterm.LeveledList
	ll = leveledRegistry(intp.gd.MonsterTypes, ll)
	ll = leveledRegistry(intp.gd.ItemTypes, ll)
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

func (intp *Intp) printDigest() {
	digest, err := intp.gd.Digest()
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	pterm.Info.Println("digest " + digest)
}

func leveledRegistry(r *gamedata.Registry, ll pterm.LeveledList) pterm.LeveledList {
	ll = append(ll, pterm.LeveledListItem{
		Level: 0,
		Text:  fmt.Sprintf("%s (%d)", r.Kind, r.Size()),
	})
	r.Each(func(h gamedata.Handle, rec gamedata.Record) {
		ll = append(ll, pterm.LeveledListItem{
			Level: 1,
			Text:  fmt.Sprintf("#%d %v", h, rec),
		})
	})
	return ll
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
