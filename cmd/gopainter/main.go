/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"gopainter/internal/config"
	"gopainter/internal/crash"
	applog "gopainter/internal/log"
	"gopainter/internal/raster"
	"gopainter/internal/scene"
	"gopainter/internal/script"
	"gopainter/internal/ui"
	"gopainter/internal/vector"
	"gopainter/internal/version"
)

// iconSize is the edge of the square a cursor icon is scaled to.
const iconSize = 64

func usage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "GoPainter - shape editor")
	_, _ = fmt.Fprintf(w, "Version: %s\n", version.String())
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Usage:")
	_, _ = fmt.Fprintln(w, "  gopainter version|-v|--version              Show version")
	_, _ = fmt.Fprintln(w, "  gopainter ui                                Launch desktop UI (build with -tags fyne)")
	_, _ = fmt.Fprintln(w, "  gopainter replay <script> [-o out.png]      Play an event script and render the last frame")
	_, _ = fmt.Fprintln(w, "  gopainter config [path|show|validate|init]  Inspect or create the user config")
}

func main() {
	var sc *scene.Scene
	defer crash.Recover(func() string {
		if sc == nil {
			return ""
		}
		return sc.Summary()
	})
	os.Exit(run(os.Args[1:], os.Stdout, &sc))
}

// run executes one CLI command. The scene it builds is published through
// current for crash reports.
func run(args []string, stdout io.Writer, current **scene.Scene) int {
	applog.Init(applog.FromEnv())
	cfg, cfgErr := config.Load("")
	if cfgErr == nil {
		applog.Init(cfg.LogOptions())
	}
	defer func() { _ = applog.Close() }()
	l := applog.WithComponent("cli")
	l.Debug("start", slog.Int("args", len(args)))

	if len(args) == 0 {
		usage(stdout)
		return 0
	}
	cmd := args[0]
	if cfgErr != nil && cmd != "config" && cmd != "version" {
		_, _ = fmt.Fprintln(stdout, "Error:", cfgErr)
		return 1
	}
	switch cmd {
	case "version", "--version", "-v":
		_, _ = fmt.Fprintln(stdout, "GoPainter - shape editor")
		_, _ = fmt.Fprintln(stdout, version.String())
		return 0
	case "ui":
		sc, err := newScene(cfg, l)
		if err != nil {
			_, _ = fmt.Fprintln(stdout, "Error:", err)
			return 1
		}
		*current = sc
		if err := ui.Run(ui.Options{Scene: sc, Width: cfg.Canvas.Width, Height: cfg.Canvas.Height}); err != nil {
			_, _ = fmt.Fprintln(stdout, "Error:", err)
			return 1
		}
		return 0
	case "replay":
		return replay(args[1:], cfg, stdout, current, l)
	case "config":
		return configCmd(args[1:], cfg, cfgErr, stdout)
	}
	usage(stdout)
	return 2
}

func replay(args []string, cfg config.AppConfig, stdout io.Writer, current **scene.Scene, l *slog.Logger) int {
	fs := flag.NewFlagSet("replay", flag.ContinueOnError)
	fs.SetOutput(stdout)
	out := fs.String("o", "out.png", "output PNG path")
	// the script path may come before or after the flags
	var path string
	if len(args) > 0 && len(args[0]) > 0 && args[0][0] != '-' {
		path, args = args[0], args[1:]
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if path == "" && fs.NArg() > 0 {
		path = fs.Arg(0)
	}
	if path == "" {
		_, _ = fmt.Fprintln(stdout, "replay requires <script>")
		usage(stdout)
		return 2
	}
	l = applog.WithOperation(l, "replay").With(slog.String("script", path))

	data, err := os.ReadFile(path)
	if err != nil {
		_, _ = fmt.Fprintln(stdout, "Error:", err)
		return 1
	}
	steps, perrs := script.Parse(string(data))
	if len(perrs) > 0 {
		for _, e := range perrs {
			_, _ = fmt.Fprintf(stdout, "%s:%s\n", path, e.Error())
		}
		return 1
	}
	sc, err := newScene(cfg, l)
	if err != nil {
		_, _ = fmt.Fprintln(stdout, "Error:", err)
		return 1
	}
	*current = sc
	n, err := script.Play(sc, steps, l)
	if err != nil {
		_, _ = fmt.Fprintln(stdout, "Error:", err)
		return 1
	}
	var frame vector.Recorder
	sc.Draw(&frame)
	surf := raster.New(cfg.Canvas.Width, cfg.Canvas.Height)
	frame.Playback(surf)
	l.Debug("frame recorded", slog.Int("ops", len(frame.Commands)))
	if err := surf.WritePNG(*out); err != nil {
		l.Error("write frame failed", slog.Any("err", err))
		_, _ = fmt.Fprintln(stdout, "Error:", err)
		return 1
	}
	l.Info("replay done", slog.Int("steps", n), slog.String("out", *out))
	_, _ = fmt.Fprintf(stdout, "Played %d steps: %s\n", n, sc.Summary())
	_, _ = fmt.Fprintln(stdout, "Wrote", *out)
	return 0
}

func configCmd(args []string, cfg config.AppConfig, loadErr error, stdout io.Writer) int {
	sub := "show"
	if len(args) > 0 {
		sub = args[0]
	}
	path, err := config.ConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(stdout, "Error:", err)
		return 1
	}
	switch sub {
	case "path":
		_, _ = fmt.Fprintln(stdout, path)
		return 0
	case "show":
		if loadErr != nil {
			_, _ = fmt.Fprintln(stdout, "Error:", loadErr)
			return 1
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			_, _ = fmt.Fprintln(stdout, "Error:", err)
			return 1
		}
		_, _ = stdout.Write(data)
		for _, key := range []string{"canvas.width", "canvas.height", "canvas.background", "canvas.highlight",
			"canvas.cursor_icon", "palette", "handles.size", "handles.rotation_offset",
			"logging.level", "logging.format", "logging.source", "logging.file"} {
			if env, ok := config.EnvOverrideFor(key); ok {
				_, _ = fmt.Fprintf(stdout, "# %s overridden by %s\n", key, env)
			}
		}
		return 0
	case "validate":
		if loadErr != nil {
			_, _ = fmt.Fprintln(stdout, "Error:", loadErr)
			return 1
		}
		if err := config.Validate(cfg); err != nil {
			var ve *config.ValidationError
			if errors.As(err, &ve) {
				for _, p := range ve.Problems {
					_, _ = fmt.Fprintln(stdout, "-", p)
				}
			} else {
				_, _ = fmt.Fprintln(stdout, "Error:", err)
			}
			return 1
		}
		_, _ = fmt.Fprintln(stdout, "Config OK:", path)
		return 0
	case "init":
		if _, err := os.Stat(path); err == nil {
			_, _ = fmt.Fprintln(stdout, "Config already exists:", path)
			return 1
		}
		if err := config.Save(path, config.Defaults()); err != nil {
			_, _ = fmt.Fprintln(stdout, "Error:", err)
			return 1
		}
		_, _ = fmt.Fprintln(stdout, "Created", path)
		return 0
	}
	_, _ = fmt.Fprintf(stdout, "unknown config command %q\n", sub)
	usage(stdout)
	return 2
}

// newScene builds an editor scene from the theme in cfg.
func newScene(cfg config.AppConfig, l *slog.Logger) (*scene.Scene, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	th, err := cfg.Theme()
	if err != nil {
		return nil, err
	}
	opts := []scene.Option{
		scene.WithPalette(th.Palette),
		scene.WithBackground(th.Background),
		scene.WithHighlight(th.Highlight),
		scene.WithHandleGeometry(th.Handles),
		scene.WithLogger(applog.WithComponent("scene")),
	}
	if p := cfg.Canvas.CursorIcon; p != "" {
		icon, err := raster.LoadIcon(p, iconSize)
		if err != nil {
			l.Warn("cursor icon not loaded", slog.String("path", p), slog.Any("err", err))
		} else {
			opts = append(opts, scene.WithCursorIcon(icon))
		}
	}
	return scene.New(opts...), nil
}
