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
	"fmt"

	"github.com/endink/go-sharding/core"
)

// SimpleTable is one table reference of a statement.
// StartIndex and StopIndex are the inclusive byte offsets of the table name identifier (quotes included) in the SQL text.
type SimpleTable struct {
	Owner      *Identifier
	Name       Identifier
	Alias      string
	StartIndex int
	StopIndex  int
}

func NewSimpleTable(name Identifier, startIndex int, stopIndex int) *SimpleTable {
	return &SimpleTable{
		Name:       name,
		StartIndex: startIndex,
		StopIndex:  stopIndex,
	}
}

func (t *SimpleTable) String() string {
	if t.Owner != nil {
		return fmt.Sprintf("%s.%s[%d,%d]", t.Owner, t.Name, t.StartIndex, t.StopIndex)
	}
	return fmt.Sprintf("%s[%d,%d]", t.Name, t.StartIndex, t.StopIndex)
}

// TablesContext holds the simple tables of a statement in textual order.
type TablesContext struct {
	tables     []*SimpleTable
	tableNames []string
	aliases    map[string]string
}

func NewTablesContext(tables ...*SimpleTable) *TablesContext {
	c := &TablesContext{
		aliases: make(map[string]string),
	}
	seen := make(map[string]struct{}, len(tables))
	for _, t := range tables {
		if t == nil {
			continue
		}
		c.tables = append(c.tables, t)
		name := core.TrimAndLower(t.Name.Value)
		if _, ok := seen[name]; !ok {
			seen[name] = core.Nothing
			c.tableNames = append(c.tableNames, name)
		}
		if t.Alias != "" {
			c.aliases[core.TrimAndLower(t.Alias)] = name
		}
	}
	return c
}

func (c *TablesContext) SimpleTables() []*SimpleTable {
	return append([]*SimpleTable(nil), c.tables...)
}

// TableNames returns distinct lower case table names in order of first occurrence.
func (c *TablesContext) TableNames() []string {
	return append([]string(nil), c.tableNames...)
}

func (c *TablesContext) FindTableNameByAlias(alias string) (string, bool) {
	name, ok := c.aliases[core.TrimAndLower(alias)]
	return name, ok
}

func (c *TablesContext) IsEmpty() bool {
	return len(c.tables) == 0
}
