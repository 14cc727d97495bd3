package workspace

// Package workspace finds telemetry logs on disk. The visualization
// shell points it at a recording directory and gets back candidate log
// files, newest first; loading them is the fileloader's job.

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// LogInfo describes one discovered telemetry log.
type LogInfo struct {
	Path     string    `json:"path"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

// FindLogs walks root and returns every regular file matching pattern,
// newest modification first. The pattern is a doublestar glob relative
// to root, so "**/*.csv" descends into session subdirectories while
// "*.csv" stays at the top level.
func FindLogs(root, pattern string) ([]LogInfo, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("log directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("log directory %s: not a directory", root)
	}

	matches, err := doublestar.Glob(os.DirFS(root), pattern)
	if err != nil {
		return nil, fmt.Errorf("bad log pattern %q: %w", pattern, err)
	}

	logs := make([]LogInfo, 0, len(matches))
	for _, rel := range matches {
		full := filepath.Join(root, filepath.FromSlash(rel))
		fi, err := os.Stat(full)
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		logs = append(logs, LogInfo{
			Path:     full,
			Size:     fi.Size(),
			Modified: fi.ModTime(),
		})
	}

	sort.Slice(logs, func(i, j int) bool {
		if logs[i].Modified.Equal(logs[j].Modified) {
			return logs[i].Path < logs[j].Path
		}
		return logs[i].Modified.After(logs[j].Modified)
	})
	return logs, nil
}

// LatestLog returns the most recently modified log under root matching
// pattern, or fs.ErrNotExist when nothing matches.
func LatestLog(root, pattern string) (LogInfo, error) {
	logs, err := FindLogs(root, pattern)
	if err != nil {
		return LogInfo{}, err
	}
	if len(logs) == 0 {
		return LogInfo{}, fmt.Errorf("no logs matching %q under %s: %w", pattern, root, fs.ErrNotExist)
	}
	return logs[0], nil
}
