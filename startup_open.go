package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/olivier-w/scrollus/internal/config"
	"github.com/olivier-w/scrollus/internal/document"
	"github.com/olivier-w/scrollus/internal/ui"
)

// openDocument validates path, loads it and builds the viewer. The
// returned cleanup stops the file watcher, if one was started.
func openDocument(path string, cfg config.Config) (ui.Model, func(), error) {
	info, err := os.Stat(path)
	if err != nil {
		return ui.Model{}, nil, err
	}
	if info.IsDir() {
		return ui.Model{}, nil, fmt.Errorf("%s is a directory", path)
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !document.IsSupportedExt(ext) {
		return ui.Model{}, nil, fmt.Errorf("unsupported format %s (supported: %s)", ext, document.SupportedExtsList())
	}

	doc, err := document.Load(path)
	if err != nil {
		return ui.Model{}, nil, err
	}

	cleanup := func() {}
	var watcher *document.Watcher
	if cfg.Watch {
		// Live reload is optional; a viewer without it is still useful.
		if w, err := document.NewWatcher(path); err == nil {
			watcher = w
			cleanup = func() { _ = w.Close() }
		}
	}
	return ui.New(doc, cfg, watcher), cleanup, nil
}
