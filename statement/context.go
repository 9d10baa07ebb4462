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

// Context is the read-only view over one parsed statement.
// Optional facets are exposed as capability interfaces and queried with AsTableAvailable / AsCursorAware,
// never by the concrete type of the context.
type Context interface {
	SQL() string
}

// TableAvailable is implemented by statements referencing tables.
type TableAvailable interface {
	Context
	TablesContext() *TablesContext
}

// CursorAware is implemented by statements whose tables are resolved through a cursor.
type CursorAware interface {
	Context
	CursorName() string
}

func AsTableAvailable(ctx Context) (TableAvailable, bool) {
	if ctx == nil {
		return nil, false
	}
	c, ok := ctx.(TableAvailable)
	return c, ok
}

func AsCursorAware(ctx Context) (CursorAware, bool) {
	if ctx == nil {
		return nil, false
	}
	c, ok := ctx.(CursorAware)
	return c, ok
}

type Option func(o *options)

type options struct {
	tables     []*SimpleTable
	withTables bool
	cursor     string
	withCursor bool
}

// WithTables attaches the TableAvailable capability.
func WithTables(tables ...*SimpleTable) Option {
	return func(o *options) {
		o.tables = append(o.tables, tables...)
		o.withTables = true
	}
}

// WithCursor attaches the CursorAware capability.
func WithCursor(name string) Option {
	return func(o *options) {
		o.cursor = name
		o.withCursor = true
	}
}

// NewContext builds a context exposing only the capabilities given by options.
func NewContext(sql string, opts ...Option) Context {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	base := &baseContext{sql: sql}
	switch {
	case o.withTables && o.withCursor:
		return &cursorTablesContext{
			tablesContext: &tablesContext{baseContext: base, tables: NewTablesContext(o.tables...)},
			cursor:        o.cursor,
		}
	case o.withTables:
		return &tablesContext{baseContext: base, tables: NewTablesContext(o.tables...)}
	case o.withCursor:
		return &cursorContext{baseContext: base, cursor: o.cursor}
	default:
		return base
	}
}

type baseContext struct {
	sql string
}

func (c *baseContext) SQL() string {
	return c.sql
}

type tablesContext struct {
	*baseContext
	tables *TablesContext
}

func (c *tablesContext) TablesContext() *TablesContext {
	return c.tables
}

type cursorContext struct {
	*baseContext
	cursor string
}

func (c *cursorContext) CursorName() string {
	return c.cursor
}

type cursorTablesContext struct {
	*tablesContext
	cursor string
}

func (c *cursorTablesContext) CursorName() string {
	return c.cursor
}
