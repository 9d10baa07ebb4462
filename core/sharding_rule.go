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
	"fmt"
	"sort"

	"github.com/scylladb/go-set/strset"
	"go.uber.org/multierr"
)

// BindingTableGroup is a set of sharding tables that route identically row for row.
type BindingTableGroup struct {
	names []string
	set   *strset.Set
}

func (g *BindingTableGroup) GetTables() []string {
	return append([]string(nil), g.names...)
}

func (g *BindingTableGroup) Contains(tables ...string) bool {
	for _, t := range tables {
		if !g.set.Has(TrimAndLower(t)) {
			return false
		}
	}
	return true
}

func (g *BindingTableGroup) String() string {
	sb := NewStringBuilder()
	sb.Write("[")
	sb.WriteJoin(", ", stringsToInterfaces(g.names)...)
	sb.Write("]")
	return sb.String()
}

// ShardingRule is the read-only lookup from logic table name to sharding configuration.
// It is safe for concurrent use once constructed.
type ShardingRule struct {
	tables        map[string]*ShardingTable
	tableNames    []string
	bindingGroups []*BindingTableGroup
	// logic table -> binding group
	bindingIndex map[string]*BindingTableGroup
}

func NewShardingRule(tables []*ShardingTable, bindingGroups ...[]string) (*ShardingRule, error) {
	rule := &ShardingRule{
		tables:       make(map[string]*ShardingTable, len(tables)),
		bindingIndex: make(map[string]*BindingTableGroup),
	}

	var err error
	for _, t := range tables {
		if t == nil {
			continue
		}
		if _, ok := rule.tables[t.Name]; ok {
			err = multierr.Append(err, fmt.Errorf("sharding table '%s' is configured more than once", t.Name))
			continue
		}
		rule.tables[t.Name] = t
		rule.tableNames = append(rule.tableNames, t.Name)
	}
	sort.Strings(rule.tableNames)

	for _, names := range bindingGroups {
		group, e := rule.newBindingGroup(names)
		if e != nil {
			err = multierr.Append(err, e)
			continue
		}
		rule.bindingGroups = append(rule.bindingGroups, group)
		for _, n := range group.names {
			rule.bindingIndex[n] = group
		}
	}

	if err != nil {
		return nil, err
	}
	return rule, nil
}

func (r *ShardingRule) newBindingGroup(names []string) (*BindingTableGroup, error) {
	group := &BindingTableGroup{set: strset.NewWithSize(len(names))}
	for _, n := range names {
		name := TrimAndLower(n)
		if name == "" || group.set.Has(name) {
			continue
		}
		group.set.Add(name)
		group.names = append(group.names, name)
	}

	if len(group.names) < 2 {
		return nil, fmt.Errorf("binding table group %v requires at least two tables", names)
	}

	var err error
	for _, name := range group.names {
		if _, ok := r.tables[name]; !ok {
			err = multierr.Append(err, fmt.Errorf("binding table '%s' is not a sharding table", name))
		}
		if other, ok := r.bindingIndex[name]; ok {
			err = multierr.Append(err, fmt.Errorf("table '%s' already belongs to binding group %s", name, other))
		}
	}
	if err != nil {
		return nil, err
	}

	// binding peers must be split the same way, otherwise index based derivation is meaningless
	first := r.tables[group.names[0]]
	for _, name := range group.names[1:] {
		t := r.tables[name]
		if !strset.New(first.databases...).IsEqual(strset.New(t.databases...)) {
			err = multierr.Append(err, fmt.Errorf("binding tables '%s' and '%s' must be configured on the same data sources", first.Name, name))
			continue
		}
		for _, ds := range first.databases {
			if first.actualTableCount(ds) != t.actualTableCount(ds) {
				err = multierr.Append(err, fmt.Errorf("binding tables '%s' and '%s' have different actual table count on data source '%s'", first.Name, name, ds))
			}
		}
	}
	if err != nil {
		return nil, err
	}
	return group, nil
}

func (r *ShardingRule) FindShardingTable(table string) (*ShardingTable, bool) {
	t, ok := r.tables[TrimAndLower(table)]
	return t, ok
}

func (r *ShardingRule) IsShardingTable(table string) bool {
	_, ok := r.FindShardingTable(table)
	return ok
}

// GetTableNames returns all logic sharding table names, sorted.
func (r *ShardingRule) GetTableNames() []string {
	return append([]string(nil), r.tableNames...)
}

func (r *ShardingRule) GetBindingTableGroups() []*BindingTableGroup {
	return append([]*BindingTableGroup(nil), r.bindingGroups...)
}

// ShardingLogicTableNames keeps the names which are sharding tables, in the given order.
func (r *ShardingRule) ShardingLogicTableNames(tables []string) []string {
	result := make([]string, 0, len(tables))
	for _, t := range tables {
		if r.IsShardingTable(t) {
			result = append(result, t)
		}
	}
	return result
}

func (r *ShardingRule) FindBindingTableGroup(table string) (*BindingTableGroup, bool) {
	g, ok := r.bindingIndex[TrimAndLower(table)]
	return g, ok
}

// IsAllBindingTables reports whether every given table belongs to one single binding group.
func (r *ShardingRule) IsAllBindingTables(tables []string) bool {
	if len(tables) == 0 {
		return false
	}
	group, ok := r.FindBindingTableGroup(tables[0])
	if !ok {
		return false
	}
	return group.Contains(tables...)
}

// FindActualTableByBinding derives the actual table of logicTable from the actual table a binding peer was routed to.
// The result has the same index on the data source as peerActualTable has among the peer's tables.
func (r *ShardingRule) FindActualTableByBinding(dataSource string, logicTable string, peerLogicTable string, peerActualTable string) (string, bool) {
	group, ok := r.FindBindingTableGroup(logicTable)
	if !ok || !group.Contains(peerLogicTable) {
		return "", false
	}
	peer, ok := r.FindShardingTable(peerLogicTable)
	if !ok {
		return "", false
	}
	index := peer.FindActualTableIndex(dataSource, peerActualTable)
	if index < 0 {
		return "", false
	}
	table, ok := r.FindShardingTable(logicTable)
	if !ok {
		return "", false
	}
	return table.FindActualTableByIndex(dataSource, index)
}

func stringsToInterfaces(values []string) []interface{} {
	r := make([]interface{}, len(values))
	for i, v := range values {
		r[i] = v
	}
	return r
}
