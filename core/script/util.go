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

// product joins every prefix with every suffix, prefixes vary slowest.
func product(prefix []string, suffix []string) []string {
	r := make([]string, 0, len(prefix)*len(suffix))
	for _, p := range prefix {
		for _, v := range suffix {
			r = append(r, p+v)
		}
	}
	return r
}

func prefixAll(prefix string, values []string) []string {
	r := make([]string, len(values))
	for i, v := range values {
		r[i] = prefix + v
	}
	return r
}
