/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

// Basic 2D geometry and transforms in screen space (y grows downwards).
// Float values use float32 to align with the UI toolkits the surfaces wrap.

import "math"

// Pt is a 2D point.
type Pt struct{ X, Y float32 }

func (p Pt) Add(q Pt) Pt { return Pt{p.X + q.X, p.Y + q.Y} }
func (p Pt) Sub(q Pt) Pt { return Pt{p.X - q.X, p.Y - q.Y} }

// Rect is an axis-aligned rectangle defined by its min corner and size.
// W and H may be negative while a shape is being dragged.
type Rect struct {
	X, Y float32
	W, H float32
}

func R(x, y, w, h float32) Rect { return Rect{X: x, Y: y, W: w, H: h} }

func (r Rect) Center() Pt { return Pt{r.X + r.W/2, r.Y + r.H/2} }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Pt) bool {
	return p.X >= r.X && p.Y >= r.Y && p.X <= r.X+r.W && p.Y <= r.Y+r.H
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.W == 0 || r.H == 0 }

// Canon returns the sign-normalized view of r: a negative extent is folded
// back so that W and H are non-negative. r itself is not modified.
func (r Rect) Canon() Rect {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// Corners returns top-left, top-right, bottom-right, bottom-left.
func (r Rect) Corners() [4]Pt {
	return [4]Pt{
		{r.X, r.Y},
		{r.X + r.W, r.Y},
		{r.X + r.W, r.Y + r.H},
		{r.X, r.Y + r.H},
	}
}

// Inset returns a rectangle inset by dx,dy on all sides (negative grows).
func (r Rect) Inset(dx, dy float32) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
}

// NormalizeRect builds the rectangle spanned by two opposite corners given in any order.
func NormalizeRect(x1, y1, x2, y2 float32) Rect {
	return Rect{
		X: min(x1, x2),
		Y: min(y1, y2),
		W: abs(x2 - x1),
		H: abs(y2 - y1),
	}
}

// SquareAt returns a size x size square centred on p.
func SquareAt(p Pt, size float32) Rect {
	return Rect{X: p.X - size/2, Y: p.Y - size/2, W: size, H: size}
}

// Affine2D represents a 2D affine transform as matrix:
// | a c e |
// | b d f |
// | 0 0 1 |
type Affine2D struct{ A, B, C, D, E, F float32 }

var Identity = Affine2D{A: 1, D: 1}

func (m Affine2D) Mul(n Affine2D) Affine2D {
	return Affine2D{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

func (m Affine2D) Apply(p Pt) Pt {
	return Pt{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// Invert returns the inverse transform. A singular matrix yields Identity.
func (m Affine2D) Invert() Affine2D {
	det := m.A*m.D - m.B*m.C
	if det == 0 {
		return Identity
	}
	inv := 1 / det
	return Affine2D{
		A: m.D * inv,
		B: -m.B * inv,
		C: -m.C * inv,
		D: m.A * inv,
		E: (m.C*m.F - m.D*m.E) * inv,
		F: (m.B*m.E - m.A*m.F) * inv,
	}
}

func Translate(tx, ty float32) Affine2D { return Affine2D{A: 1, D: 1, E: tx, F: ty} }

// Rotate rotates by rad radians. With y pointing down a positive angle turns clockwise.
func Rotate(rad float32) Affine2D {
	c := float32(math.Cos(float64(rad)))
	s := float32(math.Sin(float64(rad)))
	return Affine2D{A: c, B: s, C: -s, D: c}
}

// RotateAbout rotates by deg degrees (clockwise on screen) around center.
func RotateAbout(center Pt, deg float32) Affine2D {
	return Translate(center.X, center.Y).Mul(Rotate(Radians(deg))).Mul(Translate(-center.X, -center.Y))
}

// RotatePoints returns pts rotated by deg degrees about center, preserving order.
func RotatePoints(pts []Pt, center Pt, deg float32) []Pt {
	m := RotateAbout(center, deg)
	out := make([]Pt, len(pts))
	for i, p := range pts {
		out[i] = m.Apply(p)
	}
	return out
}

func Radians(deg float32) float32 { return deg * math.Pi / 180 }

// AngleDeg is the direction of v in degrees, measured from +X towards +Y.
// The conversion runs in float64 so axis directions come out exact.
func AngleDeg(v Pt) float32 {
	return float32(math.Atan2(float64(v.Y), float64(v.X)) * 180 / math.Pi)
}

// WrapDeg maps deg into [0, 360).
func WrapDeg(deg float32) float32 {
	d := float32(math.Mod(float64(deg), 360))
	if d < 0 {
		d += 360
	}
	if d >= 360 {
		d = 0
	}
	return d
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
