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
	"testing"

	"github.com/endink/go-sharding/logging"
	"github.com/endink/go-sharding/routing"
	"github.com/endink/go-sharding/telemetry"
	"github.com/endink/go-sharding/testkit"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func rewriteForTest(t *testing.T, engine *Engine, sql string, route *routing.RouteContext) *RewriteResult {
	result, err := engine.Rewrite(testkit.BindForTest(sql, t), route)
	if !assert.Nil(t, err) {
		t.FailNow()
	}
	return result
}

func TestRewriteSingleUnit(t *testing.T) {
	engine := NewRewritingEngine(orderRule(t))
	result := rewriteForTest(t, engine, sqlSelectOrder, testkit.RouteForTest(t, "ds0:t_order=t_order_0"))

	assert.Equal(t, sqlSelectOrder, result.OriginalSQL())
	assert.Len(t, result.Tokens(), 1)
	assert.Equal(t, map[string]string{
		"ds0:t_order_0": "SELECT * FROM t_order_0 WHERE id=1",
	}, result.SQLs())
}

func TestRewriteKeepsColumnsNamedAsTables(t *testing.T) {
	engine := NewRewritingEngine(orderRule(t))
	route := testkit.RouteForTest(t, "ds0:t_order=t_order_0")

	result := rewriteForTest(t, engine, "SELECT REPLACE(t_order, 'a', 'b') FROM t_order", route)
	assert.Equal(t, "SELECT REPLACE(t_order, 'a', 'b') FROM t_order_0", result.RouteSQLs()[0].SQL)

	result = rewriteForTest(t, engine, "SELECT * FROM t_order ORDER BY id DESC, t_order", route)
	assert.Equal(t, "SELECT * FROM t_order_0 ORDER BY id DESC, t_order", result.RouteSQLs()[0].SQL)
}

func TestRewriteUnitsKeepOrder(t *testing.T) {
	engine := NewRewritingEngine(orderRule(t))
	route := testkit.RouteForTest(t, "ds1:t_order=t_order_1", "ds0:t_order=t_order_0")
	result := rewriteForTest(t, engine, "select id from `t_order` where id in (1, 2)", route)

	sqls := result.RouteSQLs()
	assert.Len(t, sqls, 2)
	assert.Equal(t, "ds1", sqls[0].Unit.DataSourceName())
	assert.Equal(t, "select id from `t_order_1` where id in (1, 2)", sqls[0].SQL)
	assert.Equal(t, "ds0", sqls[1].Unit.DataSourceName())
	assert.Equal(t, "select id from `t_order_0` where id in (1, 2)", sqls[1].SQL)
	testkit.MustMatchRoute(t, route.RouteUnits(), []*routing.RouteUnit{sqls[0].Unit, sqls[1].Unit}, "route units")
}

func TestRewriteBindingTables(t *testing.T) {
	engine := NewRewritingEngine(orderRule(t))
	sql := "SELECT * FROM t_order o JOIN t_order_item i ON o.order_id = i.order_id WHERE o.order_id = 3"
	result := rewriteForTest(t, engine, sql, testkit.RouteForTest(t, "ds1:t_order=t_order_1"))

	sqls := result.RouteSQLs()
	assert.Len(t, sqls, 1)
	testkit.AssertEqualSql(t,
		"SELECT * FROM t_order_1 o JOIN t_order_item_1 i ON o.order_id = i.order_id WHERE o.order_id = 3",
		sqls[0].SQL)
}

func TestRewriteWithoutRouteUnits(t *testing.T) {
	engine := NewRewritingEngine(orderRule(t))
	sql := "SELECT * FROM t_order o JOIN t_order_item i ON o.order_id = i.order_id"
	result := rewriteForTest(t, engine, sql, routing.NewRouteContext())

	assert.Len(t, result.Tokens(), 2)
	sqls := result.RouteSQLs()
	assert.Len(t, sqls, 1)
	assert.Nil(t, sqls[0].Unit)
	assert.Equal(t, "", sqls[0].Key())
	assert.Equal(t, sql, sqls[0].SQL)

	result = rewriteForTest(t, engine, sqlSelectOrder, nil)
	assert.Equal(t, map[string]string{"": sqlSelectOrder}, result.SQLs())
}

func TestRewriteLeavesCursorAndUnshardedStatements(t *testing.T) {
	engine := NewRewritingEngine(orderRule(t))
	route := testkit.RouteForTest(t, "ds0:t_order=t_order_0")

	for _, sql := range []string{
		"DECLARE c1 CURSOR FOR SELECT * FROM t_order",
		"FETCH NEXT FROM c1",
		"SELECT * FROM t_config WHERE id = 1",
		"SELECT 1",
	} {
		result := rewriteForTest(t, engine, sql, route)
		assert.Empty(t, result.Tokens(), sql)
		assert.Equal(t, sql, result.RouteSQLs()[0].SQL, sql)
	}
}

func TestRewriteIsDeterministic(t *testing.T) {
	engine := NewRewritingEngine(orderRule(t))
	route := testkit.RouteForTest(t, "ds0:t_order=t_order_0,t_order_item=t_order_item_0", "ds1:t_order=t_order_1,t_order_item=t_order_item_1")
	sql := "SELECT * FROM t_order_item i, t_order o WHERE i.order_id = o.order_id"

	first := rewriteForTest(t, engine, sql, route).SQLs()
	second := rewriteForTest(t, engine, sql, route).SQLs()
	assert.Equal(t, first, second)
	assert.Equal(t, "SELECT * FROM t_order_item_1 i, t_order_1 o WHERE i.order_id = o.order_id",
		first["ds1:t_order_1,t_order_item_1"])
}

func TestRewriteConflict(t *testing.T) {
	ch := make(chan string, 8)
	engine := NewRewritingEngine(orderRule(t),
		WithGenerators(fixedFactory(newFixedToken(10, 14, "x"))),
		WithLogger(logging.NewLoggerForTest(ch)),
	)
	conflicts := testutil.ToFloat64(telemetry.RewriteStatements.WithLabelValues(telemetry.ResultConflict))

	_, err := engine.Rewrite(testkit.BindForTest(sqlSelectOrder, t), testkit.RouteForTest(t, "ds0:t_order=t_order_0"))
	assert.True(t, IsConflict(err))
	assert.Equal(t, conflicts+1, testutil.ToFloat64(telemetry.RewriteStatements.WithLabelValues(telemetry.ResultConflict)))

	msg := <-ch
	assert.True(t, strings.HasPrefix(msg, "[WARN]"), msg)
	assert.Contains(t, msg, "rewrite conflict")
}

func TestRewriteTokenOutOfRange(t *testing.T) {
	ch := make(chan string, 8)
	engine := NewRewritingEngine(orderRule(t),
		WithGenerators(fixedFactory(newFixedToken(30, 40, "x"))),
		WithLogger(logging.NewLoggerForTest(ch)),
	)
	outOfRange := testutil.ToFloat64(telemetry.RewriteStatements.WithLabelValues(telemetry.ResultOutOfRange))

	_, err := engine.Rewrite(testkit.BindForTest(sqlSelectOrder, t), nil)
	assert.True(t, IsTokenOutOfRange(err))
	assert.Equal(t, outOfRange+1, testutil.ToFloat64(telemetry.RewriteStatements.WithLabelValues(telemetry.ResultOutOfRange)))
}

func TestRewriteExtraGenerator(t *testing.T) {
	ch := make(chan string, 8)
	engine := NewRewritingEngine(orderRule(t),
		WithGenerators(fixedFactory(newFixedToken(0, 5, "select"))),
		WithLogger(logging.NewLoggerForTest(ch)),
	)
	success := testutil.ToFloat64(telemetry.RewriteStatements.WithLabelValues(telemetry.ResultSuccess))

	result := rewriteForTest(t, engine, sqlSelectOrder, testkit.RouteForTest(t, "ds0:t_order=t_order_1"))
	assert.Equal(t, "select * FROM t_order_1 WHERE id=1", result.RouteSQLs()[0].SQL)
	assert.Equal(t, success+1, testutil.ToFloat64(telemetry.RewriteStatements.WithLabelValues(telemetry.ResultSuccess)))
	assert.Equal(t, "[DEBUG]sql rewrote, tokens: 2, route units: 1", <-ch)
}

func TestRewriteNilContext(t *testing.T) {
	_, err := NewRewritingEngine(orderRule(t)).Rewrite(nil, nil)
	assert.NotNil(t, err)
}
