/*
 * Copyright 2021. Go-Sharding Author All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 *  File author: Anders Xiao
 */

package parser

import (
	"sort"
	"strings"

	"github.com/endink/go-sharding/core"
	"github.com/endink/go-sharding/statement"
	"github.com/pingcap/errors"
)

// keywords after which a table reference list starts
var tableIntroducers = map[string]struct{}{
	"from":          core.Nothing,
	"join":          core.Nothing,
	"straight_join": core.Nothing,
	"update":        core.Nothing,
	"into":          core.Nothing,
	"table":         core.Nothing,
	"tables":        core.Nothing,
	"references":    core.Nothing,
}

// introducers only when leading the statement, elsewhere they are functions or sort modifiers
var leadingIntroducers = map[string]struct{}{
	"delete":   core.Nothing,
	"insert":   core.Nothing,
	"replace":  core.Nothing,
	"truncate": core.Nothing,
	"desc":     core.Nothing,
	"describe": core.Nothing,
	"explain":  core.Nothing,
}

// statements in which TO introduces the new table name
var renameStatements = map[string]struct{}{
	"rename": core.Nothing,
	"alter":  core.Nothing,
}

// keywords ending a table reference list
var clauseKeywords = map[string]struct{}{
	"select":    core.Nothing,
	"where":     core.Nothing,
	"on":        core.Nothing,
	"using":     core.Nothing,
	"set":       core.Nothing,
	"group":     core.Nothing,
	"order":     core.Nothing,
	"limit":     core.Nothing,
	"having":    core.Nothing,
	"values":    core.Nothing,
	"value":     core.Nothing,
	"union":     core.Nothing,
	"for":       core.Nothing,
	"lock":      core.Nothing,
	"window":    core.Nothing,
	"returning": core.Nothing,
	"duplicate": core.Nothing,
}

// modifiers allowed between an introducer and the table name
var transparentKeywords = map[string]struct{}{
	"if":            core.Nothing,
	"not":           core.Nothing,
	"exists":        core.Nothing,
	"ignore":        core.Nothing,
	"low_priority":  core.Nothing,
	"high_priority": core.Nothing,
	"delayed":       core.Nothing,
	"quick":         core.Nothing,
	"only":          core.Nothing,
}

// words following a table name which are never an alias
var aliasStopWords = map[string]struct{}{
	"as":            core.Nothing,
	"from":          core.Nothing,
	"into":          core.Nothing,
	"join":          core.Nothing,
	"inner":         core.Nothing,
	"outer":         core.Nothing,
	"full":          core.Nothing,
	"left":          core.Nothing,
	"right":         core.Nothing,
	"cross":         core.Nothing,
	"natural":       core.Nothing,
	"straight_join": core.Nothing,
	"use":           core.Nothing,
	"force":         core.Nothing,
	"ignore":        core.Nothing,
	"partition":     core.Nothing,
	"select":        core.Nothing,
	"where":         core.Nothing,
	"on":            core.Nothing,
	"using":         core.Nothing,
	"set":           core.Nothing,
	"group":         core.Nothing,
	"order":         core.Nothing,
	"limit":         core.Nothing,
	"having":        core.Nothing,
	"values":        core.Nothing,
	"value":         core.Nothing,
	"union":         core.Nothing,
	"for":           core.Nothing,
	"lock":          core.Nothing,
	"window":        core.Nothing,
	"add":           core.Nothing,
	"drop":          core.Nothing,
	"modify":        core.Nothing,
	"change":        core.Nothing,
	"rename":        core.Nothing,
	"to":            core.Nothing,
	"like":          core.Nothing,
	"read":          core.Nothing,
	"write":         core.Nothing,
}

func lowerWord(l Lexeme) string {
	return strings.ToLower(l.Text)
}

func inSet(set map[string]struct{}, l Lexeme) bool {
	if l.Kind != LexIdent {
		return false
	}
	_, ok := set[lowerWord(l)]
	return ok
}

// isIntroducer reports whether lexemes[i] starts a table reference list.
func isIntroducer(lexemes []Lexeme, i int) bool {
	l := lexemes[i]
	switch {
	case inSet(leadingIntroducers, l):
		return i == 0 && !(len(lexemes) > 1 && lexemes[1].IsSymbol("("))
	case l.IsKeyword("to"):
		return i > 0 && inSet(renameStatements, lexemes[0])
	case !inSet(tableIntroducers, l):
		return false
	}
	// SELECT ... FOR UPDATE, ON DUPLICATE KEY UPDATE, ON UPDATE CASCADE
	if l.IsKeyword("update") && i > 0 {
		prev := lexemes[i-1]
		return !(prev.IsKeyword("for") || prev.IsKeyword("key") || prev.IsKeyword("on"))
	}
	return true
}

// LocateTables finds the position of every table reference whose name is one of tableNames.
// Every name must be found at least once.
func LocateTables(sql string, tableNames ...string) ([]*statement.SimpleTable, error) {
	names := make(map[string]struct{}, len(tableNames))
	for _, n := range tableNames {
		names[core.TrimAndLower(n)] = core.Nothing
	}
	return locateTables(sql, 0, names)
}

func locateTables(sql string, offset int, names map[string]struct{}) ([]*statement.SimpleTable, error) {
	lexemes := Lex(sql)
	found := make(map[string]struct{}, len(names))

	var result []*statement.SimpleTable
	var stack []bool
	inTables := false
	expect := false

	for i := 0; i < len(lexemes); i++ {
		l := lexemes[i]
		switch {
		case l.IsSymbol("("):
			stack = append(stack, inTables)
			// FROM (t1, t2) keeps the table list, FROM (SELECT ...) ends it at SELECT
			inTables = expect
		case l.IsSymbol(")"):
			if len(stack) > 0 {
				inTables = stack[len(stack)-1]
				stack = stack[:len(stack)-1]
			}
			expect = false
		case l.IsSymbol(","):
			expect = inTables
		case isIntroducer(lexemes, i):
			inTables, expect = true, true
		case inSet(clauseKeywords, l):
			inTables, expect = false, false
		case expect && inSet(transparentKeywords, l):
		case expect && l.IsIdentifier():
			var owner *Lexeme
			nameLexeme := l
			if i+2 < len(lexemes) && lexemes[i+1].IsSymbol(".") && lexemes[i+2].IsIdentifier() {
				owner = &lexemes[i]
				nameLexeme = lexemes[i+2]
				i += 2
			}
			id := statement.ParseIdentifier(nameLexeme.Text)
			name := core.TrimAndLower(id.Value)
			if _, ok := names[name]; ok {
				table := statement.NewSimpleTable(id, nameLexeme.Start+offset, nameLexeme.Stop+offset)
				if owner != nil {
					ownerID := statement.ParseIdentifier(owner.Text)
					table.Owner = &ownerID
				}
				table.Alias = readAlias(lexemes, i+1)
				result = append(result, table)
				found[name] = core.Nothing
			}
			expect = false
		default:
			expect = false
		}
	}

	if len(found) < len(names) {
		var missing []string
		for n := range names {
			if _, ok := found[n]; !ok {
				missing = append(missing, n)
			}
		}
		sort.Strings(missing)
		return nil, errors.Errorf("unable to locate table %s in sql: %s", strings.Join(missing, ", "), sql)
	}
	return result, nil
}

func readAlias(lexemes []Lexeme, i int) string {
	if i >= len(lexemes) {
		return ""
	}
	l := lexemes[i]
	if l.IsKeyword("as") {
		if i+1 < len(lexemes) && lexemes[i+1].IsIdentifier() {
			return statement.ParseIdentifier(lexemes[i+1].Text).Value
		}
		return ""
	}
	switch l.Kind {
	case LexQuotedIdent:
		return statement.ParseIdentifier(l.Text).Value
	case LexIdent:
		if !inSet(aliasStopWords, l) {
			return l.Text
		}
	}
	return ""
}
