/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

import "testing"

func TestShapeNormalizeIdempotentKeepsCenter(t *testing.T) {
	cases := []Shape{
		{X: 100, Y: 50, W: -40, H: 20},
		{X: 10, Y: 80, W: 30, H: -60},
		{X: -5, Y: -5, W: -1, H: -1},
	}
	for _, s := range cases {
		before := Rect{s.X, s.Y, s.W, s.H}.Center()
		s.Normalize()
		once := s
		s.Normalize()
		if s != once {
			t.Fatalf("normalize not idempotent: %+v vs %+v", s, once)
		}
		if s.W < 0 || s.H < 0 {
			t.Fatalf("negative extent after normalize: %+v", s)
		}
		if s.Center() != before {
			t.Fatalf("centre moved: %+v -> %+v", before, s.Center())
		}
	}
}

func TestShapeRectDoesNotMutate(t *testing.T) {
	s := Shape{X: 100, Y: 50, W: -40, H: -20}
	if r := s.Rect(); r != R(60, 30, 40, 20) {
		t.Fatalf("unexpected rect: %+v", r)
	}
	if s.W != -40 || s.H != -20 {
		t.Fatalf("Rect must not change stored fields: %+v", s)
	}
}

func TestShapeMoveResize(t *testing.T) {
	s := NewShape(KindRectangle, R(0, 0, 10, 10))
	s.Move(5, -3)
	s.Resize(-20, 4)
	if s.X != 5 || s.Y != -3 || s.W != -10 || s.H != 14 {
		t.Fatalf("unexpected shape: %+v", s)
	}
}

func TestShapeRotateTowards(t *testing.T) {
	s := NewShape(KindRectangle, R(0, 0, 100, 50))
	c := s.Center()

	s.RotateTowards(Pt{c.X, c.Y - 80})
	if !almostEqual(s.Rotation, 0, 1e-3) {
		t.Fatalf("handle above centre should give 0, got %v", s.Rotation)
	}
	s.RotateTowards(Pt{c.X + 10, c.Y})
	if !almostEqual(s.Rotation, 90, 1e-3) {
		t.Fatalf("handle right of centre should give 90, got %v", s.Rotation)
	}
	s.RotateTowards(Pt{c.X - 10, c.Y})
	if !almostEqual(s.Rotation, 270, 1e-3) {
		t.Fatalf("handle left of centre should give 270, got %v", s.Rotation)
	}
	if s.Center() != c {
		t.Fatalf("rotation moved the centre")
	}
}

func TestShapePointsFollowRotation(t *testing.T) {
	s := NewShape(KindRectangle, R(0, 0, 100, 50))
	pts := s.Points()
	want := []Pt{{0, 0}, {100, 0}, {100, 50}, {0, 50}}
	for i := range want {
		if pts[i] != want[i] {
			t.Fatalf("corner %d = %+v, want %+v", i, pts[i], want[i])
		}
	}
	s.Rotation = 90
	pts = s.Points()
	// clockwise quarter turn about (50,25): top-left goes to top-right of the rotated box
	if !ptNear(pts[0], Pt{75, -25}) || !ptNear(pts[2], Pt{25, 75}) {
		t.Fatalf("unexpected rotated corners: %+v", pts)
	}
}

func TestShapeContainsRotated(t *testing.T) {
	s := NewShape(KindRectangle, R(0, 40, 100, 20))
	if !s.Contains(Pt{95, 50}) {
		t.Fatalf("point inside unrotated shape should hit")
	}
	s.Rotation = 90
	if s.Contains(Pt{95, 50}) {
		t.Fatalf("after a quarter turn the far end is no longer covered")
	}
	if !s.Contains(Pt{50, 5}) {
		t.Fatalf("rotated shape should cover the point above its centre")
	}
}

func TestShapeDrawPerKind(t *testing.T) {
	rect := Shape{Kind: KindRectangle, X: 0, Y: 0, W: 10, H: 10, Fill: RGB(255, 0, 0), Outline: Black}
	ell := Shape{Kind: KindEllipse, X: 0, Y: 0, W: 10, H: 10, Rotation: 30, Fill: White, Outline: Black}

	var rec Recorder
	rect.Draw(&rec)
	ell.Draw(&rec)
	ops := rec.Ops()
	want := []Op{OpPolygon, OpPolygon, OpEllipse, OpEllipse}
	if len(ops) != len(want) {
		t.Fatalf("ops = %v, want %v", ops, want)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Fatalf("ops = %v, want %v", ops, want)
		}
	}
	if rec.Commands[0].Width != 0 || rec.Commands[1].Width != OutlineWidth || rec.Commands[0].Color != rect.Fill {
		t.Fatalf("rectangle fill/outline mismatch: %+v", rec.Commands[:2])
	}
	if rec.Commands[2].Rotation != 30 {
		t.Fatalf("ellipse should be drawn rotated, got %v", rec.Commands[2].Rotation)
	}

	rec.Reset()
	rect.DrawFocus(&rec, Highlight)
	ell.DrawFocus(&rec, Highlight)
	if rec.Commands[0].Op != OpRect || rec.Commands[1].Op != OpEllipse || rec.Commands[0].Color != Highlight {
		t.Fatalf("unexpected focus commands: %+v", rec.Commands)
	}
}
