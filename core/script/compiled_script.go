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
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/endink/go-sharding/core"
	"github.com/pingcap/errors"
)

type CompiledScript interface {
	// Run evaluates the script, the result is flattened to strings.
	Run() ([]string, error)
}

type tengoScript struct {
	raw       string
	compiled  *tengo.Compiled
	resultVar string
}

func (script *tengoScript) Run() ([]string, error) {
	if err := script.compiled.Run(); err != nil {
		return nil, errors.Annotatef(err, "run script fault, script: %s", script.raw)
	}
	v := script.compiled.Get(script.resultVar)
	switch value := v.Value().(type) {
	case []interface{}:
		return stringArray(value), nil
	case rune:
		return []string{string(value)}, nil
	case int64, float64, string:
		return []string{fmt.Sprint(value)}, nil
	default:
		return nil, invalidReturnTypeError(script.raw, v)
	}
}

func stringArray(array []interface{}) []string {
	list := make([]string, len(array))
	for i, v := range array {
		if r, ok := v.(rune); ok {
			list[i] = string(r)
		} else {
			list[i] = fmt.Sprint(v)
		}
	}
	return list
}

func invalidReturnTypeError(raw string, v *tengo.Variable) error {
	return errors.New(fmt.Sprint("script return invalid type, excepted array that element is number or string, and primitive number or string", core.LineSeparator, "script: ", raw, core.LineSeparator, "return type:", v.ValueType()))
}

func ParseScript(script string, variables map[string]interface{}) (CompiledScript, error) {
	parser, err := NewScriptParser(script)
	if err != nil {
		return nil, err
	}
	for name, value := range variables {
		if err = parser.Var(name, value); err != nil {
			return nil, err
		}
	}
	return parser.Compile()
}
