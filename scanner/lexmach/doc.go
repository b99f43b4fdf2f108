/*
Package lexmach provides an adapter to use the lexmachine scanner generator as a
tokenizer for game data declarations.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

The adapter compiles a DFA for the declaration format: identifiers, strings in
double or single quotes, integers and whitespace. Clients may add rules of
their own, e.g. for comments, with an init function.

	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`;[^\n]*\n?`), lexmach.Skip) // skip comments
	}

Having that, clients use `NewLMAdapter` to wrap lexmachine into a scanner.Tokenizer.
NewLMAdapter will return an error if compiling the DFA failed.
Without additional rules, `Default` returns a shared adapter.

	LM, err := NewLMAdapter(init)
	if err != nil {
		// do error handling
	}

A scanner is instantiated for each concrete input sequence.
The scanner implements the scanner.Tokenizer interface and produces the same
tokens as scanner.DefaultTokenizer in strict mode.

	scan, err := LM.Scanner(input, "monsters.gd")
	if err != nil {
		// do error handling
	}

On the reader side tokens are read until scanner.ErrEndOfInput.

	for … {
		token, err := scan.PopToken()
		if err == scanner.ErrEndOfInput {
			break
		}
		…
	}

Please refer to package gamedef/decl on how to read declarations from a
scanner.Tokenizer.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
