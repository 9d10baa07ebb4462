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

package testkit

import (
	"sort"
	"testing"

	"github.com/endink/go-sharding/core"
	"github.com/endink/go-sharding/routing"
)

// RuleForTest builds a sharding rule from "table -> ds.actual, ..." and binding groups.
func RuleForTest(t testing.TB, tables map[string][]string, bindingGroups ...[]string) *core.ShardingRule {
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)

	shardingTables := make([]*core.ShardingTable, 0, len(names))
	for _, name := range names {
		nodes, err := core.ParseDataNodes(tables[name]...)
		if err != nil {
			t.Fatalf("table %s: %v", name, err)
		}
		st, err := core.NewShardingTable(name, nodes...)
		if err != nil {
			t.Fatalf("table %s: %v", name, err)
		}
		shardingTables = append(shardingTables, st)
	}

	rule, err := core.NewShardingRule(shardingTables, bindingGroups...)
	if err != nil {
		t.Fatalf("sharding rule: %v", err)
	}
	return rule
}

// RouteForTest builds a route context from "ds:logic=actual,..." expressions.
func RouteForTest(t testing.TB, units ...string) *routing.RouteContext {
	list := make([]*routing.RouteUnit, 0, len(units))
	for _, u := range units {
		unit, err := routing.ParseRouteUnit(u)
		if err != nil {
			t.Fatalf("route unit %s: %v", u, err)
		}
		list = append(list, unit)
	}
	return routing.NewRouteContext(list...)
}
