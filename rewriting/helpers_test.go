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
	"testing"

	"github.com/endink/go-sharding/core"
	"github.com/endink/go-sharding/routing"
	"github.com/endink/go-sharding/statement"
	"github.com/endink/go-sharding/testkit"
)

const sqlSelectOrder = "SELECT * FROM t_order WHERE id=1"

func orderRule(t *testing.T) *core.ShardingRule {
	return testkit.RuleForTest(t, map[string][]string{
		"t_order":      {"ds0.t_order_0", "ds0.t_order_1", "ds1.t_order_0", "ds1.t_order_1"},
		"t_order_item": {"ds0.t_order_item_0", "ds0.t_order_item_1", "ds1.t_order_item_0", "ds1.t_order_item_1"},
		"t_user":       {"ds0.t_user", "ds1.t_user"},
	}, []string{"t_order", "t_order_item"})
}

type fixedToken struct {
	start int
	stop  int
	text  string
}

func newFixedToken(start int, stop int, text string) *fixedToken {
	return &fixedToken{start: start, stop: stop, text: text}
}

func (t *fixedToken) StartIndex() int {
	return t.start
}

func (t *fixedToken) StopIndex() int {
	return t.stop
}

func (t *fixedToken) ToString(_ *routing.RouteUnit) string {
	return t.text
}

type fixedGenerator struct {
	applicable bool
	tokens     []Token
}

func newFixedGenerator(tokens ...Token) *fixedGenerator {
	return &fixedGenerator{applicable: true, tokens: tokens}
}

func (g *fixedGenerator) IsGenerateToken(_ statement.Context) bool {
	return g.applicable
}

func (g *fixedGenerator) GenerateTokens(_ statement.Context) []Token {
	return g.tokens
}

func fixedFactory(tokens ...Token) GeneratorFactory {
	return func(_ *core.ShardingRule, _ *routing.RouteContext) TokenGenerator {
		return newFixedGenerator(tokens...)
	}
}

func tokenSpans(tokens []Token) [][2]int {
	spans := make([][2]int, 0, len(tokens))
	for _, t := range tokens {
		spans = append(spans, [2]int{t.StartIndex(), t.StopIndex()})
	}
	return spans
}
