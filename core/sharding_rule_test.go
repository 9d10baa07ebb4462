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

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustShardingTable(t *testing.T, name string, nodes ...string) *ShardingTable {
	dataNodes, err := ParseDataNodes(nodes...)
	require.Nil(t, err)
	table, err := NewShardingTable(name, dataNodes...)
	require.Nil(t, err)
	return table
}

func newTestRule(t *testing.T) *ShardingRule {
	order := mustShardingTable(t, "t_order", "ds0.t_order_0", "ds0.t_order_1", "ds1.t_order_0", "ds1.t_order_1")
	item := mustShardingTable(t, "T_Order_Item", "ds0.t_order_item_0", "ds0.t_order_item_1", "ds1.t_order_item_0", "ds1.t_order_item_1")
	user := mustShardingTable(t, "t_user", "ds0.t_user", "ds1.t_user")

	rule, err := NewShardingRule([]*ShardingTable{order, item, user}, []string{"t_order", "t_order_item"})
	require.Nil(t, err)
	return rule
}

func TestParseDataNode(t *testing.T) {
	n, err := ParseDataNode(" DS0.T_Order_0 ")
	assert.Nil(t, err)
	assert.Equal(t, "ds0", n.DataSource)
	assert.Equal(t, "t_order_0", n.Table)
	assert.Equal(t, "ds0.t_order_0", n.String())

	_, err = ParseDataNode("t_order_0")
	assert.NotNil(t, err)

	_, err = ParseDataNode("ds0.")
	assert.NotNil(t, err)
}

func TestShardingTableIndex(t *testing.T) {
	table := mustShardingTable(t, "t_order", "ds0.t_order_0", "ds0.t_order_1", "ds1.t_order_2")

	assert.Equal(t, []string{"ds0", "ds1"}, table.GetDatabases())
	assert.Equal(t, []string{"t_order_0", "t_order_1", "t_order_2"}, table.GetTables())
	assert.Equal(t, 1, table.FindActualTableIndex("ds0", "T_ORDER_1"))
	assert.Equal(t, 0, table.FindActualTableIndex("ds1", "t_order_2"))
	assert.Equal(t, -1, table.FindActualTableIndex("ds1", "t_order_0"))

	name, ok := table.FindActualTableByIndex("ds0", 1)
	assert.True(t, ok)
	assert.Equal(t, "t_order_1", name)

	_, ok = table.FindActualTableByIndex("ds1", 1)
	assert.False(t, ok)
}

func TestShardingTableDuplexNode(t *testing.T) {
	_, err := NewShardingTable("t_order", NewDataNode("ds0", "t_order_0"), NewDataNode("DS0", "t_order_0"))
	assert.NotNil(t, err)

	_, err = NewShardingTable("t_order")
	assert.NotNil(t, err)
}

func TestShardingLogicTableNames(t *testing.T) {
	rule := newTestRule(t)

	assert.True(t, rule.IsShardingTable("T_ORDER"))
	assert.False(t, rule.IsShardingTable("t_product"))

	names := rule.ShardingLogicTableNames([]string{"t_product", "t_order_item", "t_config", "t_order"})
	assert.Equal(t, []string{"t_order_item", "t_order"}, names)
	assert.Equal(t, []string{"t_order", "t_order_item", "t_user"}, rule.GetTableNames())
}

func TestIsAllBindingTables(t *testing.T) {
	rule := newTestRule(t)

	assert.True(t, rule.IsAllBindingTables([]string{"t_order", "t_order_item"}))
	assert.True(t, rule.IsAllBindingTables([]string{"T_ORDER_ITEM"}))
	assert.False(t, rule.IsAllBindingTables([]string{"t_order", "t_user"}))
	assert.False(t, rule.IsAllBindingTables([]string{"t_user", "t_order"}))
	assert.False(t, rule.IsAllBindingTables(nil))
}

func TestFindActualTableByBinding(t *testing.T) {
	rule := newTestRule(t)

	actual, ok := rule.FindActualTableByBinding("ds1", "t_order_item", "t_order", "t_order_1")
	assert.True(t, ok)
	assert.Equal(t, "t_order_item_1", actual)

	_, ok = rule.FindActualTableByBinding("ds1", "t_user", "t_order", "t_order_1")
	assert.False(t, ok)

	_, ok = rule.FindActualTableByBinding("ds1", "t_order_item", "t_order", "t_order_9")
	assert.False(t, ok)
}

func TestBindingGroupValidation(t *testing.T) {
	order := mustShardingTable(t, "t_order", "ds0.t_order_0", "ds0.t_order_1")
	item := mustShardingTable(t, "t_order_item", "ds0.t_order_item_0")
	user := mustShardingTable(t, "t_user", "ds1.t_user_0", "ds1.t_user_1")

	_, err := NewShardingRule([]*ShardingTable{order, item}, []string{"t_order", "t_order_item"})
	assert.NotNil(t, err, "different actual table count should be rejected")

	_, err = NewShardingRule([]*ShardingTable{order, user}, []string{"t_order", "t_user"})
	assert.NotNil(t, err, "different data sources should be rejected")

	_, err = NewShardingRule([]*ShardingTable{order}, []string{"t_order", "t_product"})
	assert.NotNil(t, err, "unknown binding table should be rejected")

	_, err = NewShardingRule([]*ShardingTable{order, order})
	assert.NotNil(t, err, "duplex table should be rejected")
}
