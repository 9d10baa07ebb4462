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

package parser

import (
	"github.com/endink/go-sharding/core"
	"github.com/endink/go-sharding/statement"
	"github.com/pingcap/errors"
	"github.com/pingcap/parser/ast"
)

// Bind parses sql and builds the statement context the rewriter consumes.
// Statements referencing tables get the table capability, cursor statements get the cursor capability.
func Bind(sql string) (statement.Context, error) {
	if PreviewSql(sql) == StmtCursor {
		return bindCursor(sql)
	}
	tables, err := bindTables(sql, 0)
	if err != nil {
		return nil, err
	}
	if len(tables) == 0 {
		return statement.NewContext(sql), nil
	}
	return statement.NewContext(sql, statement.WithTables(tables...)), nil
}

func bindTables(sql string, offset int) ([]*statement.SimpleTable, error) {
	stmt, err := ParseSQL(sql)
	if err != nil {
		return nil, err
	}
	names, err := collectTableNames(stmt)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, nil
	}
	return locateTables(sql, offset, names)
}

func collectTableNames(node ast.Node) (map[string]struct{}, error) {
	names := make(map[string]struct{})
	err := Walk(func(n ast.Node) (bool, error) {
		if t, ok := n.(*ast.TableName); ok && t.Name.L != "" {
			names[t.Name.L] = core.Nothing
		}
		return true, nil
	}, node)
	return names, err
}

// bindCursor handles DECLARE name CURSOR FOR query, OPEN name, FETCH ... name, MOVE ... name and CLOSE name.
func bindCursor(sql string) (statement.Context, error) {
	lexemes := Lex(sql)
	for len(lexemes) > 0 && lexemes[len(lexemes)-1].IsSymbol(";") {
		lexemes = lexemes[:len(lexemes)-1]
	}
	if len(lexemes) < 2 {
		return nil, errors.Errorf("cursor name is missing, sql: %s", sql)
	}

	if !lexemes[0].IsKeyword("declare") {
		last := lexemes[len(lexemes)-1]
		if !last.IsIdentifier() {
			return nil, errors.Errorf("cursor name is missing, sql: %s", sql)
		}
		return statement.NewContext(sql, statement.WithCursor(statement.ParseIdentifier(last.Text).Value)), nil
	}

	if !lexemes[1].IsIdentifier() {
		return nil, errors.Errorf("cursor name is missing, sql: %s", sql)
	}
	cursor := statement.ParseIdentifier(lexemes[1].Text).Value

	cursorSeen := false
	for _, l := range lexemes[2:] {
		if l.IsKeyword("cursor") {
			cursorSeen = true
			continue
		}
		if cursorSeen && l.IsKeyword("for") {
			offset := l.Stop + 1
			tables, err := bindTables(sql[offset:], offset)
			if err != nil {
				return nil, errors.Annotatef(err, "bind cursor '%s' fault", cursor)
			}
			return statement.NewContext(sql, statement.WithCursor(cursor), statement.WithTables(tables...)), nil
		}
	}
	return nil, errors.Errorf("cursor query is missing, sql: %s", sql)
}
