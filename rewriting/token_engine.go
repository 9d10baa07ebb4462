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

package rewriting

import (
	"github.com/emirpasic/gods/utils"
	"github.com/endink/go-sharding/statement"
)

// TokenEngine merges the tokens of all applicable generators into one sorted, conflict free sequence.
type TokenEngine struct {
	generators []TokenGenerator
}

func NewTokenEngine(generators ...TokenGenerator) *TokenEngine {
	list := make([]TokenGenerator, 0, len(generators))
	for _, g := range generators {
		if g != nil {
			list = append(list, g)
		}
	}
	return &TokenEngine{generators: list}
}

// GenerateTokens runs generators in registration order, sorts the result by position and
// fails with a *ConflictError when two spans overlap. Touching spans are kept.
func (e *TokenEngine) GenerateTokens(ctx statement.Context) ([]Token, error) {
	var tokens []Token
	for _, g := range e.generators {
		if g.IsGenerateToken(ctx) {
			tokens = append(tokens, g.GenerateTokens(ctx)...)
		}
	}
	if len(tokens) == 0 {
		return nil, nil
	}
	SortTokens(tokens)
	if err := CheckConflicts(tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}

// SortTokens orders tokens by start index, then by stop index.
func SortTokens(tokens []Token) {
	values := make([]interface{}, len(tokens))
	for i, t := range tokens {
		values[i] = t
	}
	utils.Sort(values, tokenComparator)
	for i, v := range values {
		tokens[i] = v.(Token)
	}
}

func tokenComparator(a, b interface{}) int {
	t1 := a.(Token)
	t2 := b.(Token)
	if c := utils.IntComparator(t1.StartIndex(), t2.StartIndex()); c != 0 {
		return c
	}
	return utils.IntComparator(t1.StopIndex(), t2.StopIndex())
}

// CheckConflicts expects tokens sorted by SortTokens.
func CheckConflicts(tokens []Token) error {
	for i := 1; i < len(tokens); i++ {
		previous, current := tokens[i-1], tokens[i]
		if current.StartIndex() <= previous.StopIndex() {
			return newConflictError(previous, current)
		}
	}
	return nil
}

// ValidateTokens checks every span is inside the SQL text.
func ValidateTokens(sql string, tokens []Token) error {
	for _, t := range tokens {
		if err := checkRange(len(sql), t); err != nil {
			return err
		}
	}
	return nil
}

func checkRange(sqlLength int, t Token) error {
	if t.StartIndex() < 0 || t.StartIndex() > t.StopIndex() || t.StopIndex() >= sqlLength {
		return newTokenRangeError(t, sqlLength)
	}
	return nil
}
