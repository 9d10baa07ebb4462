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
	"fmt"

	"github.com/pingcap/errors"
)

// ConflictError means two tokens want to replace overlapping text.
type ConflictError struct {
	Previous Token
	Current  Token
}

func newConflictError(previous Token, current Token) *ConflictError {
	return &ConflictError{Previous: previous, Current: current}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("rewrite conflict: token %s overlaps token %s", tokenSpan(e.Current), tokenSpan(e.Previous))
}

// TokenRangeError means a token span lies outside the SQL text, a position computation bug.
type TokenRangeError struct {
	Token     Token
	SQLLength int
}

func newTokenRangeError(token Token, sqlLength int) *TokenRangeError {
	return &TokenRangeError{Token: token, SQLLength: sqlLength}
}

func (e *TokenRangeError) Error() string {
	return fmt.Sprintf("token out of range: token %s, sql length %d", tokenSpan(e.Token), e.SQLLength)
}

// IsConflict reports whether err, or its cause, is a rewrite conflict.
func IsConflict(err error) bool {
	_, ok := errors.Cause(err).(*ConflictError)
	return ok
}

// IsTokenOutOfRange reports whether err, or its cause, is an out of range token.
func IsTokenOutOfRange(err error) bool {
	_, ok := errors.Cause(err).(*TokenRangeError)
	return ok
}
