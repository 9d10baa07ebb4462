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

package routing

import (
	"github.com/endink/go-sharding/core"
	"github.com/scylladb/go-set/strset"
)

// RouteContext is the routing decision of one statement, computed before rewriting starts.
// The zero value and a nil pointer both behave as an empty context.
type RouteContext struct {
	units []*RouteUnit
}

func NewRouteContext(units ...*RouteUnit) *RouteContext {
	list := make([]*RouteUnit, 0, len(units))
	for _, u := range units {
		if u != nil {
			list = append(list, u)
		}
	}
	return &RouteContext{units: list}
}

func (c *RouteContext) RouteUnits() []*RouteUnit {
	if c == nil {
		return nil
	}
	return append([]*RouteUnit(nil), c.units...)
}

func (c *RouteContext) IsEmpty() bool {
	return c == nil || len(c.units) == 0
}

// ContainsTableSharding reports whether any unit maps a logic table to a different actual table.
func (c *RouteContext) ContainsTableSharding() bool {
	if c == nil {
		return false
	}
	for _, u := range c.units {
		for _, m := range u.tableMappers {
			if core.TrimAndLower(m.LogicName) != core.TrimAndLower(m.ActualName) {
				return true
			}
		}
	}
	return false
}

// ActualDataSourceNames returns the distinct data sources in route unit order.
func (c *RouteContext) ActualDataSourceNames() []string {
	if c == nil {
		return nil
	}
	seen := strset.NewWithSize(len(c.units))
	var names []string
	for _, u := range c.units {
		ds := u.DataSourceName()
		if !seen.Has(ds) {
			seen.Add(ds)
			names = append(names, ds)
		}
	}
	return names
}

// ActualTableNames returns the distinct actual tables a logic table is routed to.
func (c *RouteContext) ActualTableNames(logicTable string) []string {
	if c == nil {
		return nil
	}
	seen := strset.New()
	var names []string
	for _, u := range c.units {
		if actual, ok := u.ActualTableName(logicTable); ok && !seen.Has(actual) {
			seen.Add(actual)
			names = append(names, actual)
		}
	}
	return names
}
