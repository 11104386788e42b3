/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

// Handle indexes a manipulation handle of the active shape. Corners follow
// Points: 0 top-left, 1 top-right, 2 bottom-right, 3 bottom-left.
type Handle int

const (
	HandleTopLeft Handle = iota
	HandleTopRight
	HandleBottomRight
	HandleBottomLeft
	HandleRotate
)

// IsCorner reports whether h resizes rather than rotates.
func (h Handle) IsCorner() bool { return h >= HandleTopLeft && h <= HandleBottomLeft }

// Opposite returns the diagonally opposite corner.
func (h Handle) Opposite() Handle { return (h + 2) % 4 }

func (h Handle) String() string {
	switch h {
	case HandleTopLeft:
		return "top-left"
	case HandleTopRight:
		return "top-right"
	case HandleBottomRight:
		return "bottom-right"
	case HandleBottomLeft:
		return "bottom-left"
	case HandleRotate:
		return "rotate"
	}
	return "none"
}

// HandleGeometry sizes the handle squares and places the rotation handle.
type HandleGeometry struct {
	Size           float32 // edge length of every handle square
	RotationOffset float32 // distance of the rotation handle above the top edge
}

// DefaultHandleGeometry matches the stock editor look.
func DefaultHandleGeometry() HandleGeometry { return HandleGeometry{Size: 10, RotationOffset: 30} }

// Corners returns the corner handle squares, centred on the rotated corners.
func (g HandleGeometry) Corners(s *Shape) [4]Rect {
	var out [4]Rect
	for i, p := range s.Points() {
		out[i] = SquareAt(p, g.Size)
	}
	return out
}

// RotationHandle returns the grab point p1 and the top-edge midpoint p2, both rotated.
func (g HandleGeometry) RotationHandle(s *Shape) (p1, p2 Pt) {
	r := s.Rect()
	top := Pt{X: r.X + r.W/2, Y: r.Y}
	grab := top.Add(Pt{Y: -g.RotationOffset})
	pts := RotatePoints([]Pt{grab, top}, r.Center(), s.Rotation)
	return pts[0], pts[1]
}

// HandleAt returns the handle under p. Corners are tested before the rotation
// handle, so a corner wins wherever the squares overlap.
func (g HandleGeometry) HandleAt(s *Shape, p Pt) (Handle, bool) {
	for i, sq := range g.Corners(s) {
		if sq.Contains(p) {
			return Handle(i), true
		}
	}
	p1, _ := g.RotationHandle(s)
	if SquareAt(p1, g.Size).Contains(p) {
		return HandleRotate, true
	}
	return 0, false
}

// DrawHandles paints the corner squares, the stalk and the rotation handle in c.
func (g HandleGeometry) DrawHandles(dst Surface, s *Shape, c Color) {
	for _, sq := range g.Corners(s) {
		dst.DrawRect(sq, 0, c, 0)
	}
	p1, p2 := g.RotationHandle(s)
	dst.DrawLine(p1, p2, c, OutlineWidth)
	dst.DrawRect(SquareAt(p1, g.Size), 0, c, 0)
}

// ResizeWithHandle applies a pointer delta dx,dy (screen space) to corner h
// so that the diagonally opposite corner stays where it is:
//
//	handle        move      resize
//	top-left      (dx, dy)  (-dx, -dy)
//	top-right     (0, dy)   (dx, -dy)
//	bottom-right  none      (dx, dy)
//	bottom-left   (dx, 0)   (-dx, dy)
//
// For a rotated shape the delta is first taken into the shape's own frame,
// and the centre shift caused by resizing is compensated.
func ResizeWithHandle(s *Shape, h Handle, dx, dy float32) {
	if !h.IsCorner() {
		return
	}
	rotated := s.Rotation != 0
	var anchor Pt
	if rotated {
		d := Rotate(Radians(-s.Rotation)).Apply(Pt{dx, dy})
		dx, dy = d.X, d.Y
		anchor = s.signedCorner(h.Opposite())
	}
	switch h {
	case HandleTopLeft:
		s.Move(dx, dy)
		s.Resize(-dx, -dy)
	case HandleTopRight:
		s.Move(0, dy)
		s.Resize(dx, -dy)
	case HandleBottomRight:
		s.Resize(dx, dy)
	case HandleBottomLeft:
		s.Move(dx, 0)
		s.Resize(-dx, dy)
	}
	if rotated {
		drift := anchor.Sub(s.signedCorner(h.Opposite()))
		s.Move(drift.X, drift.Y)
	}
}

// signedCorner is corner h of the stored, possibly inverted, rectangle in screen space.
func (s *Shape) signedCorner(h Handle) Pt {
	raw := Rect{X: s.X, Y: s.Y, W: s.W, H: s.H}
	return RotateAbout(raw.Center(), s.Rotation).Apply(raw.Corners()[h])
}
