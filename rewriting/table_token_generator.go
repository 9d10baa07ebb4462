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
	"github.com/endink/go-sharding/core"
	"github.com/endink/go-sharding/routing"
	"github.com/endink/go-sharding/statement"
)

var _ TokenGenerator = &TableTokenGenerator{}

// TableTokenGenerator emits a TableToken for every sharding table referenced by a statement.
type TableTokenGenerator struct {
	rule         *core.ShardingRule
	routeContext *routing.RouteContext
}

func NewTableTokenGenerator(rule *core.ShardingRule, routeContext *routing.RouteContext) *TableTokenGenerator {
	return &TableTokenGenerator{
		rule:         rule,
		routeContext: routeContext,
	}
}

// IsGenerateToken is false for cursor statements, their tables are resolved by the cursor.
func (g *TableTokenGenerator) IsGenerateToken(ctx statement.Context) bool {
	if _, isCursor := statement.AsCursorAware(ctx); isCursor {
		return false
	}
	return g.isAllBindingTables(ctx) || g.routeContext.ContainsTableSharding()
}

func (g *TableTokenGenerator) isAllBindingTables(ctx statement.Context) bool {
	if g.rule == nil {
		return false
	}
	var names []string
	if c, ok := statement.AsTableAvailable(ctx); ok {
		names = g.rule.ShardingLogicTableNames(c.TablesContext().TableNames())
	}
	return len(names) > 1 && g.rule.IsAllBindingTables(names)
}

func (g *TableTokenGenerator) GenerateTokens(ctx statement.Context) []Token {
	// cursor statements resolve their tables through the cursor
	if _, cursor := statement.AsCursorAware(ctx); cursor {
		return nil
	}
	c, ok := statement.AsTableAvailable(ctx)
	if !ok || g.rule == nil {
		return nil
	}
	var result []Token
	for _, table := range c.TablesContext().SimpleTables() {
		if _, sharding := g.rule.FindShardingTable(table.Name.Value); sharding {
			result = append(result, NewTableToken(table.StartIndex, table.StopIndex, table.Name, ctx, g.rule))
		}
	}
	return result
}
