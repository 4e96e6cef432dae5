package publish

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"taskboard-cli/internal/model"
)

type WriteOptions struct {
	IncludeArchived bool
	Overwrite       bool
	Filter          model.FilterType
	Sort            model.SortType
	Now             time.Time
}

type WriteResult struct {
	Written []string `json:"written"`
}

// WriteTasks writes index.md plus tasks/<id>.md for every task in ts, which the caller has
// already filtered and sorted. It stops on the first error.
func WriteTasks(ts []model.Task, toDir string, opt WriteOptions) (WriteResult, error) {
	toDir = strings.TrimSpace(toDir)
	if toDir == "" {
		return WriteResult{}, errors.New("missing --to")
	}
	toDir = filepath.Clean(toDir)

	included := make([]model.Task, 0, len(ts))
	for _, t := range ts {
		if t.IsArchive && !opt.IncludeArchived {
			continue
		}
		if _, err := pageName(t.ID); err != nil {
			return WriteResult{}, err
		}
		included = append(included, t)
	}

	tasksDir := filepath.Join(toDir, "tasks")
	if err := os.MkdirAll(tasksDir, 0o755); err != nil {
		return WriteResult{}, err
	}

	indexPath := filepath.Join(toDir, "index.md")
	if err := writeFile(indexPath, []byte(RenderIndexMarkdown(included, opt.Filter, opt.Sort)), opt.Overwrite); err != nil {
		return WriteResult{}, err
	}

	written := []string{indexPath}
	for _, t := range included {
		md, err := RenderTaskMarkdown(t, RenderOptions{IncludeArchived: opt.IncludeArchived, Now: opt.Now})
		if err != nil {
			return WriteResult{}, err
		}
		name, _ := pageName(t.ID)
		p := filepath.Join(tasksDir, name)
		if err := writeFile(p, []byte(md), opt.Overwrite); err != nil {
			return WriteResult{}, err
		}
		written = append(written, p)
	}

	return WriteResult{Written: written}, nil
}

// pageName is the file a task page is written to. Ids come from the store unchecked, so
// anything that is not a plain file name is rejected.
func pageName(id string) (string, error) {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) || filepath.Base(id) != id {
		return "", fmt.Errorf("task id is not a valid file name: %q", id)
	}
	return id + ".md", nil
}

func writeFile(path string, b []byte, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.New("file exists (use --overwrite): " + path)
		}
	}
	return os.WriteFile(path, b, 0o644)
}
