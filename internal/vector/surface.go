/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

import "image"

// Surface is the drawing target shapes, tools and the scene render onto.
// A width of 0 means the primitive is filled; any other value strokes its outline.
// Rotations are in degrees, clockwise on screen, about the rectangle's centre.
type Surface interface {
	Clear(c Color)
	DrawImage(x, y float32, img image.Image)
	DrawEllipse(r Rect, rotation float32, c Color, width float32)
	DrawPolygon(pts []Pt, c Color, width float32)
	DrawRect(r Rect, rotation float32, c Color, width float32)
	DrawLine(p1, p2 Pt, c Color, width float32)
}
