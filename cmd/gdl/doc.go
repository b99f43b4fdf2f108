/*
Command gdl reads game data declarations and lists the records found.

    gdl [-trace Info] [-tokens] [-lexmachine] [-lax] [file …]

For every file given, gdl reads the declarations and prints the monster types
and item types as a tree, together with a digest of the game data. With flag
-tokens it prints the tokens of the files instead.

Without files, gdl enters interactive mode: every line entered is read as a
sequence of declarations and added to the game data of the session. Lines
starting with a colon are commands:

    :tokens <text>   print the tokens of text
    :list            print all records read so far
    :digest          print the digest of all records read so far
    :quit            leave (as does <ctrl>D)


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gamedef.cli'
func tracer() tracing.Trace {
	return tracing.Select("gamedef.cli")
}
