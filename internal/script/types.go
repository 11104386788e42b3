/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package script

import (
	"fmt"

	"gopainter/internal/input"
	"gopainter/internal/tools"
	"gopainter/internal/vector"
)

// StepKind tells which field of a Step carries the payload.
type StepKind int

const (
	StepEvent StepKind = iota // Event
	StepTool                  // Tool
	StepColor                 // Target and Color
)

// Step is one executable line of an event script.
//
//	down [left|right] X Y
//	move X Y
//	up [left|right] X Y
//	key NAME
//	tool INDEX|NAME
//	color fill|outline NAME|#RRGGBB
//	quit
type Step struct {
	Kind   StepKind
	Event  input.Event
	Tool   string
	Target tools.ColorTarget
	Color  vector.Color
	LineNo int // 1-based line number in the source
}

// Error represents a parse error with position context.
type Error struct {
	Line    int
	Column  int
	Message string
}

func (e Error) Error() string { return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message) }
