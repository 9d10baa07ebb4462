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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextCapabilities(t *testing.T) {
	sql := "SELECT * FROM t_order"
	table := NewSimpleTable(NewIdentifier("t_order"), 14, 20)

	plain := NewContext(sql)
	_, ok := AsTableAvailable(plain)
	assert.False(t, ok)
	_, ok = AsCursorAware(plain)
	assert.False(t, ok)
	assert.Equal(t, sql, plain.SQL())

	tables := NewContext(sql, WithTables(table))
	ta, ok := AsTableAvailable(tables)
	assert.True(t, ok)
	assert.Equal(t, []string{"t_order"}, ta.TablesContext().TableNames())
	_, ok = AsCursorAware(tables)
	assert.False(t, ok)

	cursor := NewContext("FETCH NEXT FROM c1", WithCursor("c1"))
	ca, ok := AsCursorAware(cursor)
	assert.True(t, ok)
	assert.Equal(t, "c1", ca.CursorName())
	_, ok = AsTableAvailable(cursor)
	assert.False(t, ok)

	both := NewContext(sql, WithCursor("c1"), WithTables(table))
	_, ok = AsTableAvailable(both)
	assert.True(t, ok)
	_, ok = AsCursorAware(both)
	assert.True(t, ok)

	_, ok = AsTableAvailable(nil)
	assert.False(t, ok)
}

func TestTablesContextNames(t *testing.T) {
	order := NewSimpleTable(NewIdentifier("T_Order"), 0, 6)
	order.Alias = "o"
	item := NewSimpleTable(NewIdentifier("t_order_item"), 10, 21)
	again := NewSimpleTable(NewIdentifier("t_order"), 30, 36)

	c := NewTablesContext(order, nil, item, again)
	assert.Equal(t, []string{"t_order", "t_order_item"}, c.TableNames())
	assert.Equal(t, 3, len(c.SimpleTables()))
	assert.False(t, c.IsEmpty())

	name, ok := c.FindTableNameByAlias("O")
	assert.True(t, ok)
	assert.Equal(t, "t_order", name)
}

func TestIdentifierQuote(t *testing.T) {
	id := ParseIdentifier("`t_order`")
	assert.Equal(t, "t_order", id.Value)
	assert.Equal(t, QuoteBack, id.Quote)
	assert.Equal(t, "`t_order_0`", id.Quote.Wrap("t_order_0"))

	id = ParseIdentifier("`a``b`")
	assert.Equal(t, "a`b", id.Value)
	assert.Equal(t, "`a``b`", id.String())

	id = ParseIdentifier("[t_order]")
	assert.Equal(t, QuoteBracket, id.Quote)
	assert.Equal(t, "[x]", id.Quote.Wrap("x"))

	id = ParseIdentifier("t_order")
	assert.Equal(t, QuoteNone, id.Quote)
	assert.Equal(t, "t_order", id.String())
}
