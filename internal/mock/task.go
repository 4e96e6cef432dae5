// Package mock generates demo tasks for the seed command and empty boards.
package mock

import (
	"encoding/binary"
	"math/rand/v2"
	"time"

	"taskboard-cli/internal/model"

	"github.com/google/uuid"
)

// DefaultCount matches the demo board: enough tasks for three pages.
const DefaultCount = 22

var descriptions = []string{
	"Study the theory",
	"Do the homework",
	"Pass the intensive with full marks",
	"Review the board presenter",
	"Write the release notes",
	"Water the plants",
}

// Generator builds random tasks. A fixed seed gives a reproducible board.
type Generator struct {
	src *rand.ChaCha8
	rnd *rand.Rand
	now func() time.Time
}

func NewGenerator(seed uint64, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	src := rand.NewChaCha8(key)
	return &Generator{src: src, rnd: rand.New(src), now: now}
}

// Task returns one task. Roughly half the tasks get a due date within a week of now;
// dated tasks never repeat.
func (g *Generator) Task() model.Task {
	t := model.Task{
		ID:          g.newID(),
		Description: descriptions[g.rnd.IntN(len(descriptions))],
		Repeating:   model.NoRepeating(),
		Color:       model.Colors[g.rnd.IntN(len(model.Colors))],
		IsArchive:   g.rnd.IntN(2) == 1,
		IsFavorite:  g.rnd.IntN(2) == 1,
	}
	if g.rnd.IntN(2) == 1 {
		days := g.rnd.IntN(15) - 7
		y, m, d := g.now().AddDate(0, 0, days).Date()
		due := time.Date(y, m, d, 23, 59, 0, 0, time.Local)
		t.DueDate = &due
	} else {
		for _, day := range model.Weekdays {
			t.Repeating[day] = g.rnd.IntN(4) == 0
		}
	}
	return t
}

func (g *Generator) newID() string {
	id, err := uuid.NewRandomFromReader(g.src)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Tasks returns n generated tasks.
func (g *Generator) Tasks(n int) []model.Task {
	out := make([]model.Task, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, g.Task())
	}
	return out
}
