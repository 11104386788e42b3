/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package tools implements the interaction modes of the editor. Each tool
// consumes the same input stream and mutates shapes through a Document.
package tools

import (
	"gopainter/internal/input"
	"gopainter/internal/vector"
)

// Document is the view of the scene a tool works on. Tools never keep
// shape pointers across calls; they hold IDs and resolve them every time.
type Document interface {
	// SelectAt returns the topmost shape containing p.
	SelectAt(p vector.Pt) (vector.ShapeID, bool)
	Shape(id vector.ShapeID) (*vector.Shape, bool)
	// AddShape appends s, stamped with the document's current colours.
	AddShape(s vector.Shape) vector.ShapeID
	RemoveShape(id vector.ShapeID) bool
}

// ColorTarget says which colour of a shape a palette click addresses.
type ColorTarget uint8

const (
	ColorFill ColorTarget = iota
	ColorOutline
)

func (c ColorTarget) String() string {
	if c == ColorOutline {
		return "outline"
	}
	return "fill"
}

// Tool is one interaction mode.
type Tool interface {
	Name() string
	// DrawIcon paints the toolbar icon into slot r.
	DrawIcon(dst vector.Surface, r vector.Rect)
	// Draw paints the transient overlay above the shapes.
	Draw(doc Document, dst vector.Surface)
	HandleInput(doc Document, ev input.Event)
	// HandleColor reports whether the tool consumed the colour request.
	HandleColor(doc Document, target ColorTarget, c vector.Color) bool
}

// iconInset is the margin between a toolbar slot and its icon.
const iconInset = 5
