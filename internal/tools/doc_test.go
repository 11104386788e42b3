/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package tools

import (
	"gopainter/internal/input"
	applog "gopainter/internal/log"
	"gopainter/internal/vector"
)

// memDoc is a minimal Document for exercising tools without a scene.
type memDoc struct {
	shapes  []*vector.Shape
	next    vector.ShapeID
	fill    vector.Color
	outline vector.Color
}

func (d *memDoc) SelectAt(p vector.Pt) (vector.ShapeID, bool) {
	for i := len(d.shapes) - 1; i >= 0; i-- {
		if d.shapes[i].Contains(p) {
			return d.shapes[i].ID, true
		}
	}
	return 0, false
}

func (d *memDoc) Shape(id vector.ShapeID) (*vector.Shape, bool) {
	for _, s := range d.shapes {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

func (d *memDoc) AddShape(s vector.Shape) vector.ShapeID {
	d.next++
	s.ID = d.next
	s.Fill, s.Outline = d.fill, d.outline
	d.shapes = append(d.shapes, &s)
	return s.ID
}

func (d *memDoc) RemoveShape(id vector.ShapeID) bool {
	for i, s := range d.shapes {
		if s.ID == id {
			d.shapes = append(d.shapes[:i], d.shapes[i+1:]...)
			return true
		}
	}
	return false
}

func feed(t Tool, d Document, evs ...input.Event) {
	for _, ev := range evs {
		t.HandleInput(d, ev)
	}
}

func quietSelect() *SelectTool {
	return NewSelectTool(SelectOptions{Logger: applog.Discard()})
}
