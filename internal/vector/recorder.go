/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

import "image"

// Op names a recorded drawing call.
type Op uint8

const (
	OpClear Op = iota
	OpImage
	OpEllipse
	OpPolygon
	OpRect
	OpLine
)

func (o Op) String() string {
	switch o {
	case OpClear:
		return "clear"
	case OpImage:
		return "image"
	case OpEllipse:
		return "ellipse"
	case OpPolygon:
		return "polygon"
	case OpRect:
		return "rect"
	case OpLine:
		return "line"
	}
	return "unknown"
}

// Command is one recorded drawing call. Only the fields relevant to Op are set.
type Command struct {
	Op       Op
	Rect     Rect
	Rotation float32
	Points   []Pt
	Color    Color
	Width    float32
	Image    image.Image
}

// Recorder is a Surface that keeps every call for later inspection or playback.
type Recorder struct {
	Commands []Command
}

func (r *Recorder) Clear(c Color) {
	r.Commands = append(r.Commands, Command{Op: OpClear, Color: c})
}

func (r *Recorder) DrawImage(x, y float32, img image.Image) {
	b := img.Bounds()
	r.Commands = append(r.Commands, Command{Op: OpImage, Rect: R(x, y, float32(b.Dx()), float32(b.Dy())), Image: img})
}

func (r *Recorder) DrawEllipse(rc Rect, rotation float32, c Color, width float32) {
	r.Commands = append(r.Commands, Command{Op: OpEllipse, Rect: rc, Rotation: rotation, Color: c, Width: width})
}

func (r *Recorder) DrawPolygon(pts []Pt, c Color, width float32) {
	cp := append([]Pt(nil), pts...)
	r.Commands = append(r.Commands, Command{Op: OpPolygon, Points: cp, Color: c, Width: width})
}

func (r *Recorder) DrawRect(rc Rect, rotation float32, c Color, width float32) {
	r.Commands = append(r.Commands, Command{Op: OpRect, Rect: rc, Rotation: rotation, Color: c, Width: width})
}

func (r *Recorder) DrawLine(p1, p2 Pt, c Color, width float32) {
	r.Commands = append(r.Commands, Command{Op: OpLine, Points: []Pt{p1, p2}, Color: c, Width: width})
}

// Reset drops all recorded commands.
func (r *Recorder) Reset() { r.Commands = r.Commands[:0] }

// Ops lists the recorded operations in order.
func (r *Recorder) Ops() []Op {
	out := make([]Op, len(r.Commands))
	for i, c := range r.Commands {
		out[i] = c.Op
	}
	return out
}

// Playback replays the recording onto dst.
func (r *Recorder) Playback(dst Surface) {
	for _, c := range r.Commands {
		switch c.Op {
		case OpClear:
			dst.Clear(c.Color)
		case OpImage:
			dst.DrawImage(c.Rect.X, c.Rect.Y, c.Image)
		case OpEllipse:
			dst.DrawEllipse(c.Rect, c.Rotation, c.Color, c.Width)
		case OpPolygon:
			dst.DrawPolygon(c.Points, c.Color, c.Width)
		case OpRect:
			dst.DrawRect(c.Rect, c.Rotation, c.Color, c.Width)
		case OpLine:
			dst.DrawLine(c.Points[0], c.Points[1], c.Color, c.Width)
		}
	}
}
