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

package rewriting

import "github.com/endink/go-sharding/routing"

// RouteSQL is the SQL to execute on one route unit, Unit is nil when the statement was not routed.
type RouteSQL struct {
	Unit *routing.RouteUnit
	SQL  string
}

func (r *RouteSQL) Key() string {
	if r.Unit == nil {
		return ""
	}
	return r.Unit.Key()
}

type RewriteResult struct {
	original  string
	tokens    []Token
	routeSQLs []*RouteSQL
}

func (r *RewriteResult) OriginalSQL() string {
	return r.original
}

func (r *RewriteResult) Tokens() []Token {
	return append([]Token(nil), r.tokens...)
}

// RouteSQLs keeps route unit order.
func (r *RewriteResult) RouteSQLs() []*RouteSQL {
	return append([]*RouteSQL(nil), r.routeSQLs...)
}

// SQLs maps RouteUnit.Key() to the rewritten SQL, the empty key holds the SQL of an unrouted statement.
func (r *RewriteResult) SQLs() map[string]string {
	m := make(map[string]string, len(r.routeSQLs))
	for _, s := range r.routeSQLs {
		m[s.Key()] = s.SQL
	}
	return m
}
