// Package format writes command output as JSON or EDN.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"taskboard-cli/internal/model"
)

type Format string

const (
	JSON Format = "json"
	EDN  Format = "edn"
)

func Parse(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", JSON:
		return JSON, nil
	case EDN:
		return EDN, nil
	default:
		return "", fmt.Errorf("unknown format: %s", s)
	}
}

// Write writes v in the requested format.
func Write(w io.Writer, v any, f Format, pretty bool) error {
	switch f {
	case "", JSON:
		return WriteJSON(w, v, pretty)
	case EDN:
		return WriteEDN(w, v, pretty)
	default:
		return fmt.Errorf("unknown format: %s", f)
	}
}

// WriteJSON writes strict JSON, one document per call.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}

// TaskList is the payload of the list command: the derived view plus how it was derived.
type TaskList struct {
	Tasks []model.Task `json:"tasks"`
	Meta  ListMeta     `json:"meta"`
}

type ListMeta struct {
	Sort   string `json:"sort"`
	Filter string `json:"filter"`
	// Shown is the size of the derived view; Total counts every task in the store.
	Shown int `json:"shown"`
	Total int `json:"total"`
}

func NewTaskList(ts []model.Task, sortType model.SortType, filter model.FilterType, total int) TaskList {
	if ts == nil {
		ts = []model.Task{}
	}
	return TaskList{
		Tasks: ts,
		Meta: ListMeta{
			Sort:   sortType.String(),
			Filter: string(filter),
			Shown:  len(ts),
			Total:  total,
		},
	}
}
