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

//配置参考：https://shardingsphere.apache.org/document/legacy/4.x/document/cn/manual/sharding-jdbc/configuration/config-yaml/

package core

import (
	"errors"
	"fmt"

	"github.com/scylladb/go-set/strset"
)

// ShardingTable is a logic table together with the physical tables it is split into.
type ShardingTable struct {
	Name            string
	actualDataNodes []DataNode
	databases       []string
	tables          []string
	actualTableSet  *strset.Set
	// data source -> actual tables, in configured order
	dataSourceTables map[string][]string
}

func NewShardingTable(name string, dataNodes ...DataNode) (*ShardingTable, error) {
	logic := TrimAndLower(name)
	if logic == "" {
		return nil, errors.New("sharding table name can not be empty")
	}
	if len(dataNodes) == 0 {
		return nil, fmt.Errorf("actual data nodes of sharding table '%s' are missing", logic)
	}

	t := &ShardingTable{
		Name:             logic,
		actualTableSet:   strset.NewWithSize(len(dataNodes)),
		dataSourceTables: make(map[string][]string),
	}

	nodeSet := strset.NewWithSize(len(dataNodes))
	for _, node := range dataNodes {
		n := NewDataNode(node.DataSource, node.Table)
		if nodeSet.Has(n.String()) {
			return nil, fmt.Errorf("duplex data node '%s' in sharding table '%s'", n, logic)
		}
		nodeSet.Add(n.String())
		t.actualDataNodes = append(t.actualDataNodes, n)

		if _, ok := t.dataSourceTables[n.DataSource]; !ok {
			t.databases = append(t.databases, n.DataSource)
		}
		t.dataSourceTables[n.DataSource] = append(t.dataSourceTables[n.DataSource], n.Table)

		if !t.actualTableSet.Has(n.Table) {
			t.actualTableSet.Add(n.Table)
			t.tables = append(t.tables, n.Table)
		}
	}
	return t, nil
}

func (t *ShardingTable) GetDataNodes() []DataNode {
	nodes := make([]DataNode, len(t.actualDataNodes))
	copy(nodes, t.actualDataNodes)
	return nodes
}

//get all of the configured data sources
func (t *ShardingTable) GetDatabases() []string {
	return append([]string(nil), t.databases...)
}

//get all of the configured tables
func (t *ShardingTable) GetTables() []string {
	return append([]string(nil), t.tables...)
}

func (t *ShardingTable) HasActualTable(table string) bool {
	return t.actualTableSet.Has(TrimAndLower(table))
}

// FindActualTableIndex returns the position of the actual table among the tables configured on the data source, -1 if absent.
func (t *ShardingTable) FindActualTableIndex(dataSource string, actualTable string) int {
	tables := t.dataSourceTables[TrimAndLower(dataSource)]
	name := TrimAndLower(actualTable)
	for i, table := range tables {
		if table == name {
			return i
		}
	}
	return -1
}

func (t *ShardingTable) FindActualTableByIndex(dataSource string, index int) (string, bool) {
	tables := t.dataSourceTables[TrimAndLower(dataSource)]
	if index < 0 || index >= len(tables) {
		return "", false
	}
	return tables[index], true
}

func (t *ShardingTable) actualTableCount(dataSource string) int {
	return len(t.dataSourceTables[dataSource])
}

func (t *ShardingTable) String() string {
	sb := NewStringBuilder()
	sb.Write(t.Name, ": ")
	for i, n := range t.actualDataNodes {
		if i > 0 {
			sb.Write(", ")
		}
		sb.Write(n)
	}
	return sb.String()
}
