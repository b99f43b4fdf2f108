/*
Package gamedef reads game data descriptions.

Game data is written in a small declarative format, one declaration per
record, e.g.

    MONSTER name 'Cave Troll' maxhp 10
    ITEM name "Rusty Sword"

Package structure is as follows:

■ scanner: Package scanner implements the tokenizer for the declaration format,
together with a lexmachine-based alternative in sub-package lexmach.

■ decl: Package decl implements readers for declarations, consuming tokens and
producing records.

■ gamedata: Package gamedata holds the records and the registries they are
collected in.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gamedef
