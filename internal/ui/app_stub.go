//go:build !fyne

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package ui

import (
	"fmt"
	"log/slog"
)

// Run reports that this binary was built without a window backend. The
// replay command renders scripts to PNG without one.
func Run(o Options) error {
	o = o.withDefaults()
	o.Logger.Warn("window backend missing", slog.String("build_tags", "!fyne"))
	return fmt.Errorf(`"gopainter ui" needs the Fyne window backend; build with -tags fyne (cgo enabled), or render headless with "gopainter replay <script>"`)
}
