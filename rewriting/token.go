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
	"fmt"

	"github.com/endink/go-sharding/core"
	"github.com/endink/go-sharding/routing"
	"github.com/endink/go-sharding/statement"
)

// Token is a deferred replacement of the SQL text between StartIndex and StopIndex (both inclusive).
type Token interface {
	StartIndex() int
	StopIndex() int
	// ToString resolves the replacement text for one route unit.
	ToString(unit *routing.RouteUnit) string
}

func tokenSpan(t Token) string {
	return fmt.Sprintf("%T[%d,%d]", t, t.StartIndex(), t.StopIndex())
}

var _ Token = &TableToken{}

// TableToken replaces a logic table name with the actual table name of each route unit.
type TableToken struct {
	startIndex int
	stopIndex  int
	identifier statement.Identifier
	context    statement.Context
	rule       *core.ShardingRule
}

func NewTableToken(startIndex int, stopIndex int, identifier statement.Identifier, ctx statement.Context, rule *core.ShardingRule) *TableToken {
	return &TableToken{
		startIndex: startIndex,
		stopIndex:  stopIndex,
		identifier: identifier,
		context:    ctx,
		rule:       rule,
	}
}

func (t *TableToken) StartIndex() int {
	return t.startIndex
}

func (t *TableToken) StopIndex() int {
	return t.stopIndex
}

func (t *TableToken) Identifier() statement.Identifier {
	return t.identifier
}

func (t *TableToken) StatementContext() statement.Context {
	return t.context
}

// ToString keeps the identifier as written when the unit has no actual table for it.
func (t *TableToken) ToString(unit *routing.RouteUnit) string {
	actual, ok := PhysicalTableName(t.rule, unit, t.identifier.Value)
	if !ok {
		actual = t.identifier.Value
	}
	return t.identifier.Quote.Wrap(actual)
}

func (t *TableToken) String() string {
	return fmt.Sprintf("TableToken(%s[%d,%d])", t.identifier, t.startIndex, t.stopIndex)
}

// PhysicalTableName finds the actual table a logic table is routed to in the unit.
// A table without its own mapper borrows the shard index of a routed binding peer.
func PhysicalTableName(rule *core.ShardingRule, unit *routing.RouteUnit, logicTable string) (string, bool) {
	if unit == nil {
		return "", false
	}
	if actual, ok := unit.ActualTableName(logicTable); ok {
		return actual, true
	}
	if rule == nil {
		return "", false
	}
	dataSource := unit.DataSourceName()
	for _, m := range unit.TableMappers() {
		if actual, ok := rule.FindActualTableByBinding(dataSource, logicTable, m.LogicName, m.ActualName); ok {
			return actual, true
		}
	}
	return "", false
}
