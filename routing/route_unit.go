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
	"fmt"
	"strings"

	"github.com/endink/go-sharding/core"
	"github.com/pingcap/errors"
)

// RouteMapper maps a logic name (data source or table) to the actual one of a shard.
type RouteMapper struct {
	LogicName  string
	ActualName string
}

func NewRouteMapper(logicName string, actualName string) RouteMapper {
	return RouteMapper{
		LogicName:  strings.TrimSpace(logicName),
		ActualName: strings.TrimSpace(actualName),
	}
}

func (m RouteMapper) String() string {
	return fmt.Sprint(m.LogicName, "=", m.ActualName)
}

// RouteUnit is one shard specific execution target of a statement.
type RouteUnit struct {
	dataSourceMapper RouteMapper
	tableMappers     []RouteMapper
}

func NewRouteUnit(dataSourceMapper RouteMapper, tableMappers ...RouteMapper) *RouteUnit {
	mappers := make([]RouteMapper, len(tableMappers))
	copy(mappers, tableMappers)
	return &RouteUnit{
		dataSourceMapper: dataSourceMapper,
		tableMappers:     mappers,
	}
}

func (u *RouteUnit) DataSourceMapper() RouteMapper {
	return u.dataSourceMapper
}

func (u *RouteUnit) DataSourceName() string {
	return u.dataSourceMapper.ActualName
}

func (u *RouteUnit) TableMappers() []RouteMapper {
	mappers := make([]RouteMapper, len(u.tableMappers))
	copy(mappers, u.tableMappers)
	return mappers
}

// FindTableMapper looks up the mapper of a logic table, case insensitive.
func (u *RouteUnit) FindTableMapper(logicTable string) (RouteMapper, bool) {
	name := core.TrimAndLower(logicTable)
	for _, m := range u.tableMappers {
		if core.TrimAndLower(m.LogicName) == name {
			return m, true
		}
	}
	return RouteMapper{}, false
}

func (u *RouteUnit) ActualTableName(logicTable string) (string, bool) {
	m, ok := u.FindTableMapper(logicTable)
	return m.ActualName, ok
}

func (u *RouteUnit) LogicTableNames() []string {
	names := make([]string, 0, len(u.tableMappers))
	for _, m := range u.tableMappers {
		names = append(names, m.LogicName)
	}
	return names
}

// Key identifies the unit inside one route context: "<data source>" or "<data source>:<actual tables>".
func (u *RouteUnit) Key() string {
	if len(u.tableMappers) == 0 {
		return u.dataSourceMapper.ActualName
	}
	sb := core.NewStringBuilder(u.dataSourceMapper.ActualName, ":")
	for i, m := range u.tableMappers {
		if i > 0 {
			sb.Write(",")
		}
		sb.Write(m.ActualName)
	}
	return sb.String()
}

func (u *RouteUnit) String() string {
	sb := core.NewStringBuilder()
	sb.Write("RouteUnit(", u.dataSourceMapper, " [")
	for i, m := range u.tableMappers {
		if i > 0 {
			sb.Write(", ")
		}
		sb.Write(m)
	}
	sb.Write("])")
	return sb.String()
}

// ParseRouteUnit reads the textual form "ds0:t_order=t_order_0,t_order_item=t_order_item_0".
// The data source may be written "logic=actual", a bare name maps to itself.
func ParseRouteUnit(text string) (*RouteUnit, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, errors.New("route unit can not be empty")
	}
	dsPart, tablesPart := s, ""
	if i := strings.Index(s, ":"); i >= 0 {
		dsPart, tablesPart = s[:i], s[i+1:]
	}

	dsMapper, err := parseMapper(dsPart, true)
	if err != nil {
		return nil, errors.Annotatef(err, "invalid data source of route unit '%s'", text)
	}

	var mappers []RouteMapper
	for _, part := range strings.Split(tablesPart, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		m, e := parseMapper(part, false)
		if e != nil {
			return nil, errors.Annotatef(e, "invalid table mapper of route unit '%s'", text)
		}
		mappers = append(mappers, m)
	}
	return NewRouteUnit(dsMapper, mappers...), nil
}

func parseMapper(text string, allowBare bool) (RouteMapper, error) {
	segments := strings.Split(text, "=")
	switch {
	case len(segments) == 1 && allowBare && strings.TrimSpace(segments[0]) != "":
		return NewRouteMapper(segments[0], segments[0]), nil
	case len(segments) == 2 && strings.TrimSpace(segments[0]) != "" && strings.TrimSpace(segments[1]) != "":
		return NewRouteMapper(segments[0], segments[1]), nil
	default:
		return RouteMapper{}, errors.Errorf("expected 'logic=actual', got '%s'", text)
	}
}
