/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package script

import (
	"bufio"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopainter/internal/input"
	"gopainter/internal/tools"
	"gopainter/internal/vector"
)

var reToken = regexp.MustCompile(`\S+`)

type token struct {
	text string
	col  int
}

// Parse parses an event script. Blank lines and lines starting with "#" are
// skipped; a "#" after a command starts a trailing comment. Parsing continues
// past bad lines so every error is reported.
func Parse(input string) ([]Step, []Error) {
	var steps []Step
	var errs []Error

	scanner := bufio.NewScanner(strings.NewReader(input))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		toks := tokenize(scanner.Text())
		if len(toks) == 0 {
			continue
		}
		st, err := parseLine(toks)
		if err != nil {
			err.Line = lineNo
			errs = append(errs, *err)
			continue
		}
		st.LineNo = lineNo
		steps = append(steps, st)
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, Error{Line: lineNo, Column: 1, Message: err.Error()})
	}
	return steps, errs
}

// tokenize splits line on whitespace and drops a trailing comment. A "#"
// token is a comment except for the colour argument of a color command.
func tokenize(line string) []token {
	locs := reToken.FindAllStringIndex(line, -1)
	out := make([]token, 0, len(locs))
	for i, l := range locs {
		text := line[l[0]:l[1]]
		if strings.HasPrefix(text, "#") && !(i == 2 && isColorCmd(out[0].text)) {
			break
		}
		out = append(out, token{text: text, col: l[0] + 1})
	}
	return out
}

func isColorCmd(s string) bool { return strings.EqualFold(s, "color") || strings.EqualFold(s, "colour") }

func parseLine(toks []token) (Step, *Error) {
	cmd := toks[0]
	args := toks[1:]
	switch strings.ToLower(cmd.text) {
	case "down", "up":
		b := input.ButtonPrimary
		if len(args) == 3 {
			switch strings.ToLower(args[0].text) {
			case "left":
			case "right":
				b = input.ButtonSecondary
			default:
				return Step{}, errAt(args[0], "unknown button %q", args[0].text)
			}
			args = args[1:]
		}
		p, err := point(cmd, args)
		if err != nil {
			return Step{}, err
		}
		ev := input.Down(b, p.X, p.Y)
		if strings.EqualFold(cmd.text, "up") {
			ev = input.Up(b, p.X, p.Y)
		}
		return Step{Kind: StepEvent, Event: ev}, nil
	case "move":
		p, err := point(cmd, args)
		if err != nil {
			return Step{}, err
		}
		return Step{Kind: StepEvent, Event: input.Move(p.X, p.Y)}, nil
	case "key":
		if len(args) != 1 {
			return Step{}, errAt(cmd, "key expects a key name")
		}
		return Step{Kind: StepEvent, Event: input.Release(input.Key(strings.ToLower(args[0].text)))}, nil
	case "tool":
		if len(args) != 1 {
			return Step{}, errAt(cmd, "tool expects an index or a name")
		}
		return Step{Kind: StepTool, Tool: args[0].text}, nil
	case "color", "colour":
		if len(args) != 2 {
			return Step{}, errAt(cmd, "color expects fill|outline and a colour")
		}
		var target tools.ColorTarget
		switch strings.ToLower(args[0].text) {
		case "fill":
			target = tools.ColorFill
		case "outline":
			target = tools.ColorOutline
		default:
			return Step{}, errAt(args[0], "unknown colour target %q", args[0].text)
		}
		c, perr := vector.ParseColor(args[1].text)
		if perr != nil {
			return Step{}, errAt(args[1], "%v", perr)
		}
		return Step{Kind: StepColor, Target: target, Color: c}, nil
	case "quit":
		if len(args) != 0 {
			return Step{}, errAt(args[0], "quit takes no arguments")
		}
		return Step{Kind: StepEvent, Event: input.QuitEvent()}, nil
	}
	return Step{}, errAt(cmd, "unknown command %q", cmd.text)
}

func point(cmd token, args []token) (vector.Pt, *Error) {
	if len(args) != 2 {
		return vector.Pt{}, errAt(cmd, "%s expects X Y", strings.ToLower(cmd.text))
	}
	var v [2]float32
	for i, a := range args {
		f, err := strconv.ParseFloat(a.text, 32)
		if err != nil {
			return vector.Pt{}, errAt(a, "bad coordinate %q", a.text)
		}
		v[i] = float32(f)
	}
	return vector.Pt{X: v[0], Y: v[1]}, nil
}

func errAt(t token, format string, args ...any) *Error {
	return &Error{Column: t.col, Message: fmt.Sprintf(format, args...)}
}
