package store

import (
	"context"
	"time"

	"taskboard-cli/internal/model"
	"taskboard-cli/internal/tasks"

	"github.com/sirupsen/logrus"
)

const defaultSaveTimeout = 5 * time.Second

// Syncer is a task model observer that saves a full snapshot after every change.
type Syncer struct {
	store   Store
	tasks   *tasks.Model
	log     logrus.FieldLogger
	timeout time.Duration
}

var _ tasks.Observer = (*Syncer)(nil)

func NewSyncer(s Store, m *tasks.Model, log logrus.FieldLogger) *Syncer {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Syncer{
		store:   s,
		tasks:   m,
		log:     log.WithField("component", "store"),
		timeout: defaultSaveTimeout,
	}
}

func (s *Syncer) Notify(updateType model.UpdateType, task model.Task) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	snapshot := s.tasks.Tasks()
	entry := s.log.WithFields(logrus.Fields{
		"update": updateType.String(),
		"task":   task.ID,
		"count":  len(snapshot),
	})
	if err := s.store.Save(ctx, snapshot); err != nil {
		entry.WithError(err).Error("save snapshot")
		return err
	}
	entry.Debug("snapshot saved")
	return nil
}

// Open loads the stored collection into a new task model and subscribes a Syncer to it.
func Open(ctx context.Context, s Store, log logrus.FieldLogger) (*tasks.Model, *Syncer, error) {
	ts, err := s.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	m := tasks.New(ts)
	syncer := NewSyncer(s, m, log)
	m.AddObserver(syncer)
	return m, syncer, nil
}
