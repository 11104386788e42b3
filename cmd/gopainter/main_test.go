/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopainter/internal/config"
	"gopainter/internal/scene"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.EnvConfigPath, filepath.Join(dir, "config.yaml"))
	t.Setenv(config.EnvLogLevel, "error")
	return dir
}

func runCLI(t *testing.T, args ...string) (int, string, *scene.Scene) {
	t.Helper()
	var out bytes.Buffer
	var sc *scene.Scene
	code := run(args, &out, &sc)
	return code, out.String(), sc
}

func TestVersionAndUsage(t *testing.T) {
	isolate(t)
	code, out, _ := runCLI(t, "version")
	if code != 0 || !strings.Contains(out, "GoPainter") {
		t.Fatalf("version: code=%d out=%q", code, out)
	}
	code, out, _ = runCLI(t, "bogus")
	if code != 2 || !strings.Contains(out, "Usage:") {
		t.Fatalf("unknown command: code=%d out=%q", code, out)
	}
}

func TestReplayWritesPNG(t *testing.T) {
	dir := isolate(t)
	scriptPath := filepath.Join(dir, "draw.txt")
	src := "tool ellipse\ndown 300 300\nmove 400 380\nup 400 380\ntool select\ndown 350 340\nup 350 340\n"
	if err := os.WriteFile(scriptPath, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(dir, "frame.png")
	code, out, sc := runCLI(t, "replay", scriptPath, "-o", outPath)
	if code != 0 {
		t.Fatalf("replay failed: code=%d out=%q", code, out)
	}
	if sc == nil || sc.Len() != 1 {
		t.Fatalf("replay should leave one shape, scene=%v", sc)
	}
	if !strings.Contains(out, "Played 7 steps") || !strings.Contains(out, "selected=#") {
		t.Fatalf("unexpected output: %q", out)
	}
	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("open frame: %v", err)
	}
	defer func() { _ = f.Close() }()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode frame: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 600 {
		t.Fatalf("frame bounds = %v", b)
	}
}

func TestReplayReportsParseErrors(t *testing.T) {
	dir := isolate(t)
	scriptPath := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(scriptPath, []byte("down 1 2\nwiggle\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	code, out, _ := runCLI(t, "replay", scriptPath)
	if code != 1 || !strings.Contains(out, "bad.txt:2:1: unknown command") {
		t.Fatalf("code=%d out=%q", code, out)
	}
	code, _, _ = runCLI(t, "replay")
	if code != 2 {
		t.Fatalf("missing script should be a usage error, got %d", code)
	}
}

func TestConfigCommands(t *testing.T) {
	dir := isolate(t)
	code, out, _ := runCLI(t, "config", "path")
	if code != 0 || strings.TrimSpace(out) != filepath.Join(dir, "config.yaml") {
		t.Fatalf("config path: code=%d out=%q", code, out)
	}
	if code, out, _ = runCLI(t, "config", "init"); code != 0 {
		t.Fatalf("config init: code=%d out=%q", code, out)
	}
	if code, _, _ = runCLI(t, "config", "init"); code != 1 {
		t.Fatalf("second init must refuse to overwrite")
	}
	if code, out, _ = runCLI(t, "config", "validate"); code != 0 || !strings.Contains(out, "Config OK") {
		t.Fatalf("config validate: code=%d out=%q", code, out)
	}
	t.Setenv(config.EnvPalette, "red,notacolour")
	code, out, _ = runCLI(t, "config", "show")
	if code != 0 || !strings.Contains(out, "notacolour") || !strings.Contains(out, "overridden by "+config.EnvPalette) {
		t.Fatalf("config show: code=%d out=%q", code, out)
	}
	if code, out, _ = runCLI(t, "config", "validate"); code != 1 || !strings.Contains(out, "palette.1") {
		t.Fatalf("invalid palette should fail validation: code=%d out=%q", code, out)
	}
}
