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

import (
	"strings"

	"github.com/endink/go-sharding/routing"
)

// Apply splices the sorted, conflict free tokens into sql for one route unit.
// Text outside the token spans is copied unchanged.
func Apply(sql string, tokens []Token, unit *routing.RouteUnit) (string, error) {
	if len(tokens) == 0 {
		return sql, nil
	}

	var sb strings.Builder
	sb.Grow(len(sql))

	cursor := 0
	var previous Token
	for _, t := range tokens {
		if err := checkRange(len(sql), t); err != nil {
			return "", err
		}
		if t.StartIndex() < cursor {
			return "", newConflictError(previous, t)
		}
		sb.WriteString(sql[cursor:t.StartIndex()])
		sb.WriteString(t.ToString(unit))
		cursor = t.StopIndex() + 1
		previous = t
	}
	sb.WriteString(sql[cursor:])
	return sb.String(), nil
}
