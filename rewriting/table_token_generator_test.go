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

	"github.com/endink/go-sharding/routing"
	"github.com/endink/go-sharding/statement"
	"github.com/endink/go-sharding/testkit"
	"github.com/stretchr/testify/assert"
)

func TestTableTokenGeneratorRoutedTable(t *testing.T) {
	rule := orderRule(t)
	ctx := testkit.BindForTest(sqlSelectOrder, t)
	g := NewTableTokenGenerator(rule, testkit.RouteForTest(t, "ds0:t_order=t_order_0"))

	assert.True(t, g.IsGenerateToken(ctx))
	tokens := g.GenerateTokens(ctx)
	assert.Equal(t, [][2]int{{14, 20}}, tokenSpans(tokens))

	tt, ok := tokens[0].(*TableToken)
	assert.True(t, ok)
	assert.Equal(t, "t_order", tt.Identifier().Value)
	assert.True(t, tt.StatementContext() == ctx)
}

func TestTableTokenGeneratorBindingWithoutTableSharding(t *testing.T) {
	rule := orderRule(t)
	sql := "SELECT * FROM t_order o JOIN t_order_item i ON o.order_id = i.order_id"
	ctx := testkit.BindForTest(sql, t)
	route := testkit.RouteForTest(t, "ds0:t_order=t_order,t_order_item=t_order_item")
	assert.False(t, route.ContainsTableSharding())

	g := NewTableTokenGenerator(rule, route)
	assert.True(t, g.IsGenerateToken(ctx))
	assert.Equal(t, [][2]int{{14, 20}, {29, 40}}, tokenSpans(g.GenerateTokens(ctx)))
}

func TestTableTokenGeneratorNotApplicable(t *testing.T) {
	rule := orderRule(t)

	// one sharding table and no table sharding in the route
	ctx := testkit.BindForTest(sqlSelectOrder, t)
	g := NewTableTokenGenerator(rule, testkit.RouteForTest(t, "ds0:t_order=t_order"))
	assert.False(t, g.IsGenerateToken(ctx))

	// not binding
	ctx = testkit.BindForTest("SELECT * FROM t_order o JOIN t_user u ON o.user_id = u.user_id", t)
	g = NewTableTokenGenerator(rule, routing.NewRouteContext())
	assert.False(t, g.IsGenerateToken(ctx))

	// cursor statements
	ctx = testkit.BindForTest("DECLARE c1 CURSOR FOR SELECT * FROM t_order", t)
	g = NewTableTokenGenerator(rule, testkit.RouteForTest(t, "ds0:t_order=t_order_0"))
	assert.False(t, g.IsGenerateToken(ctx))
	assert.Empty(t, g.GenerateTokens(ctx))
}

func TestTableTokenGeneratorSkipsUnshardedTables(t *testing.T) {
	rule := orderRule(t)
	sql := "SELECT * FROM t_config c JOIN t_order o ON c.id = o.config_id"
	ctx := testkit.BindForTest(sql, t)
	g := NewTableTokenGenerator(rule, testkit.RouteForTest(t, "ds0:t_order=t_order_1"))

	assert.True(t, g.IsGenerateToken(ctx))
	tokens := g.GenerateTokens(ctx)
	assert.Len(t, tokens, 1)
	assert.Equal(t, "t_order", sql[tokens[0].StartIndex():tokens[0].StopIndex()+1])
}

func TestTableTokenGeneratorWithoutTables(t *testing.T) {
	g := NewTableTokenGenerator(orderRule(t), testkit.RouteForTest(t, "ds0:t_order=t_order_0"))
	ctx := statement.NewContext("SELECT 1")

	assert.True(t, g.IsGenerateToken(ctx))
	assert.Empty(t, g.GenerateTokens(ctx))
	assert.Empty(t, NewTableTokenGenerator(nil, nil).GenerateTokens(testkit.BindForTest(sqlSelectOrder, t)))
}
