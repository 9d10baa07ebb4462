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

	"github.com/endink/go-sharding/routing"
	"github.com/google/go-cmp/cmp"
)

type MatchFunc func(t testing.TB, want, got interface{}, errMsg ...string)

// MustMatchFn builds a MatchFunc failing the test with a (-want +got) diff.
// Fields named in ignoredFields are skipped at any depth.
func MustMatchFn(allowUnexportedTypes []interface{}, ignoredFields []string, extraOpts ...cmp.Option) MatchFunc {
	opts := append([]cmp.Option{
		cmp.AllowUnexported(allowUnexportedTypes...),
		ignoreFields(ignoredFields...),
	}, extraOpts...)
	return func(t testing.TB, want, got interface{}, errMsg ...string) {
		t.Helper()
		if diff := cmp.Diff(want, got, opts...); diff != "" {
			t.Fatalf("%v: (-want +got)\n%v", errMsg, diff)
		}
	}
}

// MustMatch diffs values having no unexported fields:
//
// testkit.MustMatch(t, want, got, "settings mismatch")
var MustMatch = MustMatchFn(nil, nil)

// MustMatchRoute compares route units and route contexts including their mappers.
var MustMatchRoute = MustMatchFn([]interface{}{routing.RouteUnit{}, routing.RouteContext{}}, nil)

func ignoreFields(names ...string) cmp.Option {
	skip := make(map[string]struct{}, len(names))
	for _, name := range names {
		skip[name] = struct{}{}
	}
	return cmp.FilterPath(func(path cmp.Path) bool {
		for _, step := range path {
			if _, ok := skip[step.String()]; ok {
				return true
			}
		}
		return false
	}, cmp.Ignore())
}
