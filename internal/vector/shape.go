/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

import "fmt"

// ShapeID identifies a shape inside a scene. IDs are never reused.
type ShapeID uint64

// Kind is the closed set of shape variants.
type Kind uint8

const (
	KindRectangle Kind = iota
	KindEllipse
)

func (k Kind) String() string {
	switch k {
	case KindRectangle:
		return "rectangle"
	case KindEllipse:
		return "ellipse"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// OutlineWidth is the stroke width used for shape outlines and focus frames.
const OutlineWidth = 2

// Shape is a rectangle or an ellipse inscribed in the rectangle X,Y,W,H,
// rotated by Rotation degrees about the rectangle's centre.
//
// W and H are signed while the shape is being resized; Rect always returns
// the sign-normalized view and Normalize settles the stored fields.
type Shape struct {
	ID       ShapeID
	Kind     Kind
	X, Y     float32
	W, H     float32
	Rotation float32
	Fill     Color
	Outline  Color
}

// NewShape returns an unrotated shape of kind k occupying r.
func NewShape(k Kind, r Rect) Shape {
	return Shape{Kind: k, X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// Move translates the shape.
func (s *Shape) Move(dx, dy float32) {
	s.X += dx
	s.Y += dy
}

// Resize grows the stored size by dw,dh. The result may be negative.
func (s *Shape) Resize(dw, dh float32) {
	s.W += dw
	s.H += dh
}

// Normalize folds negative extents back into the position. It is idempotent
// and keeps the centre in place.
func (s *Shape) Normalize() {
	r := s.Rect()
	s.X, s.Y, s.W, s.H = r.X, r.Y, r.W, r.H
}

// Rect returns the sign-normalized bounding rectangle without rotation.
func (s *Shape) Rect() Rect { return Rect{X: s.X, Y: s.Y, W: s.W, H: s.H}.Canon() }

// Center is the rotation centre.
func (s *Shape) Center() Pt { return s.Rect().Center() }

// Points returns the four corners of Rect rotated about the centre, in the
// order top-left, top-right, bottom-right, bottom-left.
func (s *Shape) Points() []Pt {
	r := s.Rect()
	c := r.Corners()
	return RotatePoints(c[:], r.Center(), s.Rotation)
}

// RotateTowards points the shape's top edge at handle: the rotation is the
// angle of handle around the centre, with 0 meaning straight above.
func (s *Shape) RotateTowards(handle Pt) {
	v := handle.Sub(s.Center())
	if v.X == 0 && v.Y == 0 {
		return
	}
	s.Rotation = WrapDeg(90 + AngleDeg(v))
}

// ToLocal maps a screen point into the shape's unrotated frame.
func (s *Shape) ToLocal(p Pt) Pt {
	if s.Rotation == 0 {
		return p
	}
	return RotateAbout(s.Center(), s.Rotation).Invert().Apply(p)
}

// Contains reports whether p lies inside the rotated bounding rectangle, edges included.
func (s *Shape) Contains(p Pt) bool { return s.Rect().Contains(s.ToLocal(p)) }

// Draw paints the shape body followed by its outline.
func (s *Shape) Draw(dst Surface) {
	switch s.Kind {
	case KindRectangle:
		pts := s.Points()
		dst.DrawPolygon(pts, s.Fill, 0)
		dst.DrawPolygon(pts, s.Outline, OutlineWidth)
	case KindEllipse:
		r := s.Rect()
		dst.DrawEllipse(r, s.Rotation, s.Fill, 0)
		dst.DrawEllipse(r, s.Rotation, s.Outline, OutlineWidth)
	}
}

// DrawFocus paints the selection frame in c.
func (s *Shape) DrawFocus(dst Surface, c Color) {
	switch s.Kind {
	case KindRectangle:
		dst.DrawRect(s.Rect(), s.Rotation, c, OutlineWidth)
	case KindEllipse:
		dst.DrawEllipse(s.Rect(), s.Rotation, c, OutlineWidth)
	}
}

func (s *Shape) String() string {
	return fmt.Sprintf("%s#%d(%g,%g %gx%g @%g°)", s.Kind, s.ID, s.X, s.Y, s.W, s.H, s.Rotation)
}
