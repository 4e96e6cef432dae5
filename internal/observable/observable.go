// Package observable implements the synchronous subscriber list shared by the
// task and filter models.
package observable

import (
	"errors"
	"fmt"

	"taskboard-cli/internal/model"
)

// Observer receives one notification per model mutation.
type Observer[T any] interface {
	Notify(updateType model.UpdateType, payload T) error
}

// ObserverFunc adapts a plain function (usually a method value) to Observer.
type ObserverFunc[T any] func(updateType model.UpdateType, payload T) error

func (f ObserverFunc[T]) Notify(updateType model.UpdateType, payload T) error {
	return f(updateType, payload)
}

type subscription[T any] struct {
	id       uint64
	observer Observer[T]
}

// Observable delivers notifications to observers in registration order.
// The zero value is ready to use.
type Observable[T any] struct {
	nextID    uint64
	subs      []subscription[T]
	notifying bool
}

// AddObserver registers o and returns a handle that unregisters exactly this registration.
func (o *Observable[T]) AddObserver(obs Observer[T]) (unsubscribe func()) {
	o.nextID++
	id := o.nextID
	o.subs = append(o.subs, subscription[T]{id: id, observer: obs})
	return func() { o.removeByID(id) }
}

// RemoveObserver unregisters every registration of obs. Observers that cannot be compared
// (plain funcs, or values holding funcs) can only be removed through their unsubscribe handle.
func (o *Observable[T]) RemoveObserver(obs Observer[T]) {
	if obs == nil {
		return
	}
	kept := o.subs[:0]
	for _, s := range o.subs {
		if sameObserver(s.observer, obs) {
			continue
		}
		kept = append(kept, s)
	}
	o.subs = kept
}

// sameObserver is interface equality that reports false instead of panicking when the
// dynamic values are not comparable.
func sameObserver[T any](a, b Observer[T]) (same bool) {
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}

func (o *Observable[T]) removeByID(id uint64) {
	for i, s := range o.subs {
		if s.id == id {
			o.subs = append(o.subs[:i:i], o.subs[i+1:]...)
			return
		}
	}
}

func (o *Observable[T]) Len() int { return len(o.subs) }

// Notifying reports whether a notification pass is in progress.
func (o *Observable[T]) Notifying() bool { return o.notifying }

// Notify runs one notification pass. A failing observer (error or panic) does not stop
// delivery to the rest; all failures are joined into the returned error.
func (o *Observable[T]) Notify(updateType model.UpdateType, payload T) error {
	// Snapshot so observers that unsubscribe mid-pass don't shift delivery.
	subs := append([]subscription[T](nil), o.subs...)

	o.notifying = true
	defer func() { o.notifying = false }()

	var errs []error
	for _, s := range subs {
		if err := deliver(s.observer, updateType, payload); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func deliver[T any](obs Observer[T], updateType model.UpdateType, payload T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r}
		}
	}()
	return obs.Notify(updateType, payload)
}

// PanicError wraps a value recovered from a panicking observer.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("observer panicked: %v", e.Value)
}
