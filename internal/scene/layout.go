/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package scene

import "gopainter/internal/vector"

// Layout places the toolbar and the palette. Slots of each strip stack
// downwards from the first slot with no gap.
type Layout struct {
	Tool   vector.Rect // first toolbar slot
	Swatch vector.Rect // first palette slot
}

// DefaultLayout fits an 800x600 window: tools on the left, colours on the right.
func DefaultLayout() Layout {
	return Layout{
		Tool:   vector.R(20, 20, 100, 80),
		Swatch: vector.R(710, 20, 70, 60),
	}
}

// ToolSlot is the toolbar slot of tool i.
func (l Layout) ToolSlot(i int) vector.Rect {
	r := l.Tool
	r.Y += float32(i) * r.H
	return r
}

// SwatchSlot is the palette slot of colour i.
func (l Layout) SwatchSlot(i int) vector.Rect {
	r := l.Swatch
	r.Y += float32(i) * r.H
	return r
}

// PreviewSlot shows the current fill and outline, right below n tools.
func (l Layout) PreviewSlot(n int) vector.Rect { return l.ToolSlot(n) }

// slotBackground fills toolbar and palette slots.
var slotBackground = vector.RGB(192, 192, 192)

const (
	slotInset     = 5
	activeFrame   = 2
	previewStroke = 3
)
