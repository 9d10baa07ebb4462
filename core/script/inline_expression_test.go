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

package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func flatForTest(expression string, t *testing.T) []string {
	list, err := FlatInlineExpression(expression)
	assert.Nil(t, err, "flat inline expression fault: %s", expression)
	return list
}

func TestFlatNoScript(t *testing.T) {
	list := flatForTest("ds_1,ds_2, ds_3", t)
	assert.Equal(t, []string{"ds_1", "ds_2", "ds_3"}, list)
	assert.False(t, IsInlineExpression("ds_1,ds_2"))
}

func TestFlatOneDepth(t *testing.T) {
	assert.Equal(t, []string{"ds_1", "ds_2", "ds_3"}, flatForTest("ds_${range(1,3)}", t))
}

func TestFlatKeepsOrder(t *testing.T) {
	list := flatForTest("ds${range(0,1)}.t_order_${[0,1]}", t)
	assert.Equal(t, []string{"ds0.t_order_0", "ds0.t_order_1", "ds1.t_order_0", "ds1.t_order_1"}, list)
}

func TestFlatThirdDepth(t *testing.T) {
	list := flatForTest("ds_${range(1,3)}_t${range(2,3)}_b${[5,6,7,8]}", t)
	assert.Equal(t, 24, len(list))
	assert.Equal(t, "ds_1_t2_b5", list[0])
	assert.Equal(t, "ds_3_t3_b8", list[23])
}

func TestMultiGroups(t *testing.T) {
	expr := "ds_${range(1,3)}_t${range(2,3)}_b${[5,6,7,8]},es_${range(2,4)}_t${range(2,3)}_b${[5,6,7,8]}, ts_${range(3,5)}_t${range(2,3)}_b${[5,6,7,8]}"
	assert.Equal(t, 72, len(flatForTest(expr, t)))

	// overlapping groups are merged
	expr = "ds_${range(1,3)}_t${range(2,3)}_b${[5,6,7,8]}, ds_${range(3,4)}_t${range(2,3)}_b${[5,6,7,8]}"
	assert.Equal(t, 32, len(flatForTest(expr, t)))
}

func TestFlatScalarAndStrings(t *testing.T) {
	assert.Equal(t, []string{"t_7"}, flatForTest("t_${3+4}", t))
	assert.Equal(t, []string{"t_a", "t_b"}, flatForTest(`t_${["a","b"]}`, t))
}

func TestInlineExpressionSyntaxError(t *testing.T) {
	for _, expr := range []string{"ds_$1", "ds_${range(0,1)", "ds_${}", "ds_${range(1,0)}"} {
		_, err := FlatInlineExpression(expr)
		assert.NotNil(t, err, expr)
	}
}
