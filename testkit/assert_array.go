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
	"fmt"

	"github.com/emirpasic/gods/utils"
	"github.com/endink/go-sharding/core"
	"github.com/stretchr/testify/assert"
)

type equatable interface {
	Equals(v interface{}) bool
}

func errorDifferent(excepted []interface{}, actual []interface{}) string {
	sb := core.NewStringBuilder()
	sb.WriteLine("array not same")

	sb.Write("excepted: ")
	utils.Sort(excepted, textComparator)
	writeArray(sb, excepted)
	sb.WriteLine()

	sb.Write("actual: ")
	utils.Sort(actual, textComparator)
	writeArray(sb, actual)
	sb.WriteLine()

	return sb.String()
}

// textComparator orders values of mixed types by their printed form.
func textComparator(a, b interface{}) int {
	return utils.StringComparator(fmt.Sprint(a), fmt.Sprint(b))
}

func writeArray(sb *core.StringBuilder, excepted []interface{}) {
	if len(excepted) > 0 {
		sb.WriteJoin(", ", excepted...)
	} else {
		sb.Write("<empty array>")
	}
}

func AssertStrArrayEquals(t assert.TestingT, excepted []string, actual []string, msgAndArgs ...interface{}) bool {
	return AssertArrayEquals(t, convertStrArray(excepted), convertStrArray(actual), msgAndArgs...)
}

func AssertArrayEquals(t assert.TestingT, excepted []interface{}, actual []interface{}, msgAndArgs ...interface{}) bool {
	if excepted == nil && actual == nil {
		return true
	}

	if len(excepted) != len(actual) {
		msg := errorDifferent(excepted, actual)
		return assert.Fail(t, msg, msgAndArgs...)
	}
	var diff bool
	for _, r := range excepted {
		if !arrayContains(actual, r) {
			diff = true
			break
		}
	}

	if diff {
		msg := errorDifferent(excepted, actual)
		return assert.Fail(t, msg, msgAndArgs...)
	}

	return true
}

func convertStrArray(values []string) []interface{} {
	r := make([]interface{}, len(values))

	for i, value := range values {
		r[i] = value
	}
	return r
}

func arrayContains(ranges []interface{}, value interface{}) bool {
	for _, r := range ranges {
		if r == value {
			return true
		}
		if eq, ok := value.(equatable); ok && eq.Equals(r) {
			return true
		}
	}
	return false
}
