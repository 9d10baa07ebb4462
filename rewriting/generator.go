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
	"github.com/endink/go-sharding/core"
	"github.com/endink/go-sharding/routing"
	"github.com/endink/go-sharding/statement"
)

// TokenGenerator produces the tokens of one kind of edit.
// Implementations receive their collaborators at construction and are immutable afterwards.
type TokenGenerator interface {
	IsGenerateToken(ctx statement.Context) bool
	// GenerateTokens returns tokens in textual order, possibly none.
	GenerateTokens(ctx statement.Context) []Token
}

// GeneratorFactory builds a generator bound to one statement's rule and route context.
type GeneratorFactory func(rule *core.ShardingRule, routeContext *routing.RouteContext) TokenGenerator

func TableTokenGeneratorFactory(rule *core.ShardingRule, routeContext *routing.RouteContext) TokenGenerator {
	return NewTableTokenGenerator(rule, routeContext)
}
