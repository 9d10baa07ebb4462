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
	"strings"

	"github.com/endink/go-sharding/core"
	"github.com/pingcap/errors"
)

// InlineExpression expands expressions like "ds${range(0,1)}.t_order_${[0,1]}".
// Groups are separated by ',' outside scripts and every group is the cartesian product of its segments.
type InlineExpression struct {
	expression string
	groups     [][]*inlineSegment
}

type inlineSegment struct {
	prefix string
	script CompiledScript
}

// IsInlineExpression reports whether s contains a script segment.
func IsInlineExpression(s string) bool {
	return strings.Contains(s, "${")
}

func NewInlineExpression(expression string) (*InlineExpression, error) {
	groups, err := splitSegments(expression)
	if err != nil {
		return nil, err
	}
	return &InlineExpression{expression: expression, groups: groups}, nil
}

// FlatInlineExpression expands expression into distinct values, in expression order.
func FlatInlineExpression(expression string) ([]string, error) {
	expr, err := NewInlineExpression(expression)
	if err != nil {
		return nil, err
	}
	return expr.Flat()
}

func (i *InlineExpression) String() string {
	return i.expression
}

func (i *InlineExpression) Flat() ([]string, error) {
	seen := make(map[string]struct{})
	list := make([]string, 0)

	for _, g := range i.groups {
		current := []string{""}
		for _, s := range g {
			values := []string{s.prefix}
			if s.script != nil {
				l, err := s.script.Run()
				if err != nil {
					return nil, i.wrapExecuteError(err)
				}
				values = prefixAll(s.prefix, l)
			}
			current = product(current, values)
		}
		for _, c := range current {
			if _, ok := seen[c]; !ok && c != "" {
				seen[c] = core.Nothing
				list = append(list, c)
			}
		}
	}
	return list, nil
}

func (i *InlineExpression) wrapExecuteError(e error) error {
	sb := core.NewStringBuilder()
	sb.WriteLine("inline expression fault.")
	sb.WriteLine("Expression: ", i.expression)
	sb.WriteLine("Error:")
	sb.Write(e.Error())
	return errors.New(sb.String())
}

func splitSegments(exp string) ([][]*inlineSegment, error) {
	syntaxError := func(message string, index int) error {
		sb := core.NewStringBuilder()
		sb.WriteLine("inline expression syntax error")
		sb.WriteLine(message)
		sb.WriteLineF("expression: %s", exp)
		if index >= 0 {
			sb.WriteLineF("char index: %d", index)
		}
		return errors.New(sb.String())
	}

	var groups [][]*inlineSegment
	var segments []*inlineSegment
	var prefix, rawScript strings.Builder
	depth := -1

	flushSegment := func(index int) error {
		seg := &inlineSegment{prefix: strings.TrimSpace(prefix.String())}
		raw := strings.TrimSpace(rawScript.String())
		prefix.Reset()
		rawScript.Reset()
		if raw != "" {
			s, err := ParseScript(raw, nil)
			if err != nil {
				return syntaxError(err.Error(), index)
			}
			seg.script = s
		}
		if seg.prefix != "" || seg.script != nil {
			segments = append(segments, seg)
		}
		return nil
	}

	for i := 0; i < len(exp); i++ {
		c := exp[i]
		if depth < 0 {
			switch {
			case c == '$' && i+1 < len(exp) && exp[i+1] == '{':
				depth = 0
				i++
			case c == '$':
				return nil, syntaxError("'{' symbol is missing after the symbol '$'", i)
			case c == ',':
				if err := flushSegment(i); err != nil {
					return nil, err
				}
				if len(segments) > 0 {
					groups = append(groups, segments)
				}
				segments = nil
			default:
				prefix.WriteByte(c)
			}
			continue
		}

		switch c {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				depth = -1
				if strings.TrimSpace(rawScript.String()) == "" {
					return nil, syntaxError("script can not be empty", i)
				}
				if err := flushSegment(i); err != nil {
					return nil, err
				}
				continue
			}
			depth--
		}
		rawScript.WriteByte(c)
	}

	if depth >= 0 {
		return nil, syntaxError("symbol '}' used to end the script are missing", -1)
	}
	if err := flushSegment(len(exp)); err != nil {
		return nil, err
	}
	if len(segments) > 0 {
		groups = append(groups, segments)
	}
	return groups, nil
}
