/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package script

import (
	"fmt"
	"log/slog"
	"strconv"

	"gopainter/internal/scene"
)

// Play runs steps against sc in order and stops after a quit event. It
// returns the number of steps executed.
func Play(sc *scene.Scene, steps []Step, l *slog.Logger) (int, error) {
	if l == nil {
		l = slog.Default()
	}
	for i, st := range steps {
		switch st.Kind {
		case StepEvent:
			l.Debug("event", slog.Int("line", st.LineNo), slog.String("event", st.Event.String()))
			if !sc.Dispatch(st.Event) {
				return i + 1, nil
			}
		case StepTool:
			if err := selectTool(sc, st.Tool); err != nil {
				return i, fmt.Errorf("line %d: %w", st.LineNo, err)
			}
		case StepColor:
			sc.RequestColor(st.Target, st.Color)
		}
	}
	return len(steps), nil
}

func selectTool(sc *scene.Scene, ref string) error {
	if n, err := strconv.Atoi(ref); err == nil {
		return sc.SetTool(n)
	}
	return sc.SetToolByName(ref)
}
