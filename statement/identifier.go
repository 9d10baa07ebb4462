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

package statement

import "strings"

type QuoteCharacter int

const (
	QuoteNone QuoteCharacter = iota
	QuoteBack
	QuoteDouble
	QuoteBracket
)

// QuoteCharacterOf detects the quote from the raw identifier text as written in SQL.
func QuoteCharacterOf(raw string) QuoteCharacter {
	if len(raw) < 2 {
		return QuoteNone
	}
	switch {
	case raw[0] == '`' && raw[len(raw)-1] == '`':
		return QuoteBack
	case raw[0] == '"' && raw[len(raw)-1] == '"':
		return QuoteDouble
	case raw[0] == '[' && raw[len(raw)-1] == ']':
		return QuoteBracket
	}
	return QuoteNone
}

func (q QuoteCharacter) StartDelimiter() string {
	switch q {
	case QuoteBack:
		return "`"
	case QuoteDouble:
		return `"`
	case QuoteBracket:
		return "["
	}
	return ""
}

func (q QuoteCharacter) EndDelimiter() string {
	switch q {
	case QuoteBack:
		return "`"
	case QuoteDouble:
		return `"`
	case QuoteBracket:
		return "]"
	}
	return ""
}

// Wrap quotes value, doubling embedded end delimiters.
func (q QuoteCharacter) Wrap(value string) string {
	if q == QuoteNone {
		return value
	}
	end := q.EndDelimiter()
	return q.StartDelimiter() + strings.ReplaceAll(value, end, end+end) + end
}

// Identifier is an SQL name without its quotes, remembering how it was quoted.
type Identifier struct {
	Value string
	Quote QuoteCharacter
}

func NewIdentifier(value string) Identifier {
	return Identifier{Value: value}
}

// ParseIdentifier strips quotes from raw identifier text.
func ParseIdentifier(raw string) Identifier {
	q := QuoteCharacterOf(raw)
	if q == QuoteNone {
		return Identifier{Value: raw}
	}
	end := q.EndDelimiter()
	value := strings.ReplaceAll(raw[1:len(raw)-1], end+end, end)
	return Identifier{Value: value, Quote: q}
}

// String returns the identifier as written in SQL.
func (i Identifier) String() string {
	return i.Quote.Wrap(i.Value)
}
