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
	"time"

	"github.com/endink/go-sharding/core"
	"github.com/endink/go-sharding/logging"
	"github.com/endink/go-sharding/routing"
	"github.com/endink/go-sharding/statement"
	"github.com/endink/go-sharding/telemetry"
	"github.com/pingcap/errors"
)

var logger = logging.GetLogger("rewriting")

type Option func(e *Engine)

// WithGenerators registers generators running after the table token generator.
func WithGenerators(factories ...GeneratorFactory) Option {
	return func(e *Engine) {
		e.factories = append(e.factories, factories...)
	}
}

func WithLogger(l logging.StandardLogger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// Engine rewrites one statement into the SQL of every route unit.
// It holds no per statement state and may be shared by concurrent sessions.
type Engine struct {
	rule      *core.ShardingRule
	factories []GeneratorFactory
	logger    logging.StandardLogger
}

func NewRewritingEngine(rule *core.ShardingRule, opts ...Option) *Engine {
	e := &Engine{
		rule:      rule,
		factories: []GeneratorFactory{TableTokenGeneratorFactory},
		logger:    logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// GenerateTokens builds fresh generators bound to routeContext and merges their tokens.
func (e *Engine) GenerateTokens(ctx statement.Context, routeContext *routing.RouteContext) ([]Token, error) {
	generators := make([]TokenGenerator, 0, len(e.factories))
	for _, f := range e.factories {
		generators = append(generators, f(e.rule, routeContext))
	}
	tokens, err := NewTokenEngine(generators...).GenerateTokens(ctx)
	if err != nil {
		return nil, err
	}
	if err = ValidateTokens(ctx.SQL(), tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}

func (e *Engine) Rewrite(ctx statement.Context, routeContext *routing.RouteContext) (*RewriteResult, error) {
	if ctx == nil {
		return nil, errors.New("statement context can not be nil")
	}
	defer telemetry.NewDurationRecorder(telemetry.RewriteDuration).Since(time.Now())

	sql := ctx.SQL()
	tokens, err := e.GenerateTokens(ctx, routeContext)
	if err != nil {
		e.onFailed(sql, err)
		return nil, errors.Annotatef(err, "rewrite sql fault, sql: %s", sql)
	}

	result := &RewriteResult{
		original: sql,
		tokens:   tokens,
	}

	if routeContext.IsEmpty() {
		result.routeSQLs = []*RouteSQL{{SQL: sql}}
	} else {
		units := routeContext.RouteUnits()
		result.routeSQLs = make([]*RouteSQL, 0, len(units))
		for _, unit := range units {
			s, applyErr := Apply(sql, tokens, unit)
			if applyErr != nil {
				e.onFailed(sql, applyErr)
				return nil, errors.Annotatef(applyErr, "rewrite sql for route unit %s fault, sql: %s", unit, sql)
			}
			result.routeSQLs = append(result.routeSQLs, &RouteSQL{Unit: unit, SQL: s})
		}
	}

	telemetry.RewriteStatements.WithLabelValues(telemetry.ResultSuccess).Inc()
	telemetry.RewriteTokens.Add(float64(len(tokens)))
	telemetry.RewriteRouteUnits.Add(float64(len(result.routeSQLs)))
	e.logger.Debugf("sql rewrote, tokens: %d, route units: %d", len(tokens), len(result.routeSQLs))
	return result, nil
}

func (e *Engine) onFailed(sql string, err error) {
	switch {
	case IsConflict(err):
		telemetry.RewriteStatements.WithLabelValues(telemetry.ResultConflict).Inc()
	case IsTokenOutOfRange(err):
		telemetry.RewriteStatements.WithLabelValues(telemetry.ResultOutOfRange).Inc()
	}
	e.logger.Warnf("rewrite sql fault: %v, sql: %s", err, sql)
}
