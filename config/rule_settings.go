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

package config

import (
	"sort"

	"github.com/endink/go-sharding/core"
	"github.com/endink/go-sharding/core/script"
	"github.com/pingcap/errors"
	"go.uber.org/multierr"
)

// RuleSettings is the "rule" section of the configuration file.
type RuleSettings struct {
	Tables        map[string]*TableSettings `yaml:"tables"`
	BindingTables [][]string                `yaml:"binding-tables"`
}

type TableSettings struct {
	// ActualDataNodes items are "ds.table" or inline expressions like "ds${range(0,1)}.t_order_${[0,1]}".
	ActualDataNodes []string `yaml:"actual-data-nodes"`
}

// Build validates the settings and creates the sharding rule, every problem found is reported.
func (s *RuleSettings) Build() (*core.ShardingRule, error) {
	names := make([]string, 0, len(s.Tables))
	for name := range s.Tables {
		names = append(names, name)
	}
	sort.Strings(names)

	var err error
	tables := make([]*core.ShardingTable, 0, len(names))
	for _, name := range names {
		table, e := s.Tables[name].build(name)
		if e != nil {
			err = multierr.Append(err, e)
			continue
		}
		tables = append(tables, table)
	}
	if err != nil {
		return nil, err
	}
	return core.NewShardingRule(tables, s.BindingTables...)
}

func (t *TableSettings) build(name string) (*core.ShardingTable, error) {
	if t == nil || len(t.ActualDataNodes) == 0 {
		return nil, errors.Errorf("actual-data-nodes of table '%s' is missing", name)
	}
	var items []string
	for _, n := range t.ActualDataNodes {
		if !script.IsInlineExpression(n) {
			items = append(items, n)
			continue
		}
		flat, err := script.FlatInlineExpression(n)
		if err != nil {
			return nil, errors.Annotatef(err, "invalid actual-data-nodes of table '%s'", name)
		}
		items = append(items, flat...)
	}
	nodes, err := core.ParseDataNodes(items...)
	if err != nil {
		return nil, errors.Annotatef(err, "invalid actual-data-nodes of table '%s'", name)
	}
	return core.NewShardingTable(name, nodes...)
}
