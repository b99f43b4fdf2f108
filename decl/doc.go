/*
Package decl reads game data declarations from a stream of tokens.

A declaration starts with a keyword naming the kind of record, followed by
`field value` clauses:

    declaration   := KEYWORD field*
    field         := FIELDNAME value
    value         := INTEGER | STRING | IDENT

For example

    MONSTER name 'Cave Troll' maxhp 10
    ITEM name "Rusty Sword"

A declaration ends at the first token which is not a known field name of its
kind. This token is left in the tokenizer and starts the next declaration.

Each kind of declaration has a Reader. Readers decline input not starting with
their keyword, leaving the tokenizer untouched, so a table of readers may be
tried one after the other at the same position. Parse does exactly this until
the input is exhausted.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package decl

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gamedef.decl'
func tracer() tracing.Trace {
	return tracing.Select("gamedef.decl")
}
