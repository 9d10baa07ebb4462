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

import "strings"

type LexemeKind int

const (
	LexIdent LexemeKind = iota
	LexQuotedIdent
	LexString
	LexNumber
	LexSymbol
)

// Lexeme is one significant piece of SQL text, Start and Stop are inclusive byte offsets.
type Lexeme struct {
	Kind  LexemeKind
	Text  string
	Start int
	Stop  int
}

// IsKeyword reports whether the lexeme is the unquoted word kw, case insensitive.
func (l Lexeme) IsKeyword(kw string) bool {
	return l.Kind == LexIdent && strings.EqualFold(l.Text, kw)
}

func (l Lexeme) IsSymbol(s string) bool {
	return l.Kind == LexSymbol && l.Text == s
}

func (l Lexeme) IsIdentifier() bool {
	return l.Kind == LexIdent || l.Kind == LexQuotedIdent
}

// Lex splits MySQL text into lexemes, dropping whitespace and comments.
// Unterminated quotes and comments run to the end of the text.
func Lex(sql string) []Lexeme {
	var result []Lexeme
	n := len(sql)
	i := 0
	for i < n {
		c := sql[i]
		switch {
		case isSpace(c):
			i++
		case c == '#':
			i = skipLineComment(sql, i)
		case c == '-' && i+1 < n && sql[i+1] == '-' && (i+2 == n || isSpace(sql[i+2])):
			i = skipLineComment(sql, i)
		case c == '/' && i+1 < n && sql[i+1] == '*':
			end := strings.Index(sql[i+2:], "*/")
			if end < 0 {
				i = n
			} else {
				i = i + 2 + end + 2
			}
		case c == '\'' || c == '"':
			end := scanQuoted(sql, i, c, true)
			result = append(result, Lexeme{Kind: LexString, Text: sql[i:end], Start: i, Stop: end - 1})
			i = end
		case c == '`':
			end := scanQuoted(sql, i, c, false)
			result = append(result, Lexeme{Kind: LexQuotedIdent, Text: sql[i:end], Start: i, Stop: end - 1})
			i = end
		case isIdentStart(c):
			end := i + 1
			for end < n && isIdentChar(sql[end]) {
				end++
			}
			result = append(result, Lexeme{Kind: LexIdent, Text: sql[i:end], Start: i, Stop: end - 1})
			i = end
		case isDigit(c):
			end := i + 1
			for end < n && (isIdentChar(sql[end]) || (sql[end] == '.' && end+1 < n && isDigit(sql[end+1]))) {
				end++
			}
			result = append(result, Lexeme{Kind: LexNumber, Text: sql[i:end], Start: i, Stop: end - 1})
			i = end
		default:
			result = append(result, Lexeme{Kind: LexSymbol, Text: sql[i : i+1], Start: i, Stop: i})
			i++
		}
	}
	return result
}

func skipLineComment(sql string, i int) int {
	end := strings.IndexByte(sql[i:], '\n')
	if end < 0 {
		return len(sql)
	}
	return i + end + 1
}

// scanQuoted returns the offset right after the closing quote.
func scanQuoted(sql string, start int, quote byte, backslash bool) int {
	i := start + 1
	for i < len(sql) {
		c := sql[i]
		switch {
		case backslash && c == '\\':
			i += 2
		case c == quote:
			if i+1 < len(sql) && sql[i+1] == quote {
				i += 2
				continue
			}
			return i + 1
		default:
			i++
		}
	}
	return len(sql)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c >= 0x80
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
