/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

import (
	"math"
	"testing"
)

func almostEqual(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

func ptNear(a, b Pt) bool { return almostEqual(a.X, b.X, 1e-3) && almostEqual(a.Y, b.Y, 1e-3) }

func TestRectContainsAndInset(t *testing.T) {
	r := R(10, 20, 100, 50)
	if !r.Contains(Pt{10, 20}) || !r.Contains(Pt{110, 70}) {
		t.Fatalf("expected edge points to be contained")
	}
	if r.Contains(Pt{9.5, 30}) {
		t.Fatalf("point left of rect should not be contained")
	}
	in := r.Inset(5, 5)
	if in.X != 15 || in.Y != 25 || in.W != 90 || in.H != 40 {
		t.Fatalf("unexpected inset: %+v", in)
	}
}

func TestAffineBasic(t *testing.T) {
	m := Translate(10, 5).Mul(Rotate(Radians(90)))
	p := m.Apply(Pt{1, 1})
	if !ptNear(p, Pt{9, 6}) {
		t.Fatalf("unexpected transform result: %+v", p)
	}
	back := m.Invert().Apply(p)
	if !ptNear(back, Pt{1, 1}) {
		t.Fatalf("inverse did not round-trip: %+v", back)
	}
}

func TestNormalizeRectAnyCornerOrder(t *testing.T) {
	want := R(10, 10, 50, 30)
	cases := [][4]float32{
		{10, 10, 60, 40},
		{60, 40, 10, 10},
		{60, 10, 10, 40},
		{10, 40, 60, 10},
	}
	for _, c := range cases {
		if got := NormalizeRect(c[0], c[1], c[2], c[3]); got != want {
			t.Fatalf("NormalizeRect(%v) = %+v, want %+v", c, got, want)
		}
	}
}

func TestRectCanon(t *testing.T) {
	r := R(100, 50, -40, -20).Canon()
	if r != R(60, 30, 40, 20) {
		t.Fatalf("unexpected canonical rect: %+v", r)
	}
	if R(1, 2, 3, 4).Canon() != R(1, 2, 3, 4) {
		t.Fatalf("positive rect should be unchanged")
	}
}

func TestRotatePointsClockwiseOnScreen(t *testing.T) {
	c := Pt{50, 50}
	// a point above the centre ends up to its right after +90 degrees
	got := RotatePoints([]Pt{{50, 0}}, c, 90)
	if !ptNear(got[0], Pt{100, 50}) {
		t.Fatalf("unexpected rotated point: %+v", got[0])
	}
}

func TestRotatePointsRoundTrip(t *testing.T) {
	pts := []Pt{{0, 0}, {13, -7}, {120.5, 44}, {-30, 80}}
	c := Pt{17, 23}
	for _, deg := range []float32{0, 15, 90, 137.5, -250, 359} {
		fwd := RotatePoints(pts, c, deg)
		back := RotatePoints(fwd, c, -deg)
		for i := range pts {
			if !ptNear(back[i], pts[i]) {
				t.Fatalf("deg=%v point %d: got %+v want %+v", deg, i, back[i], pts[i])
			}
		}
	}
	// input slice is left untouched
	if pts[1] != (Pt{13, -7}) {
		t.Fatalf("input modified: %+v", pts[1])
	}
}

func TestWrapDegAndAngle(t *testing.T) {
	if WrapDeg(-90) != 270 || WrapDeg(360) != 0 || WrapDeg(725) != 5 {
		t.Fatalf("WrapDeg mismatch: %v %v %v", WrapDeg(-90), WrapDeg(360), WrapDeg(725))
	}
	if !almostEqual(AngleDeg(Pt{0, 1}), 90, 1e-4) {
		t.Fatalf("AngleDeg down should be 90, got %v", AngleDeg(Pt{0, 1}))
	}
}

func TestAngleDegAxesAreExact(t *testing.T) {
	cases := []struct {
		v    Pt
		want float32
	}{
		{Pt{1, 0}, 0},
		{Pt{0, 1}, 90},
		{Pt{-1, 0}, 180},
		{Pt{0, -1}, -90},
	}
	for _, c := range cases {
		if got := AngleDeg(c.v); got != c.want {
			t.Fatalf("AngleDeg(%+v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestInvertSingularIsIdentity(t *testing.T) {
	if got := (Affine2D{}).Invert(); got != Identity {
		t.Fatalf("singular inverse should be identity, got %+v", got)
	}
}
