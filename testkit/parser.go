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
	"testing"

	"github.com/endink/go-sharding/parser"
	"github.com/endink/go-sharding/statement"
	"github.com/pingcap/parser/ast"
)

func ParseForTest(sql string, t testing.TB) ast.StmtNode {
	node, err := parser.ParseSQL(sql)
	if err != nil {
		t.Fatalf("%s\nsql err:%v", sql, err.Error())
	}
	return node
}

// BindForTest binds sql to a statement context and fails the test on error.
func BindForTest(sql string, t testing.TB) statement.Context {
	ctx, err := parser.Bind(sql)
	if err != nil {
		t.Fatalf("%s\nbind err:%v", sql, err.Error())
	}
	return ctx
}
