// Package workflow drives the add/edit dialog lifecycle shared by every
// catalogue entity: collect, validate, persist, notify, close.
//
// A dialog rests in Open until a submission either fails (it returns to Open
// with the error kept for display) or persists (the refresher runs and the
// dialog closes). Submitted, Validated, Rejected, Persisted and PersistFailed
// are transient and only visible to observers and through Last.
package workflow

import (
	"context"
	"errors"
)

var ErrClosed = errors.New("dialog closed")

// Field describes one form input in display order.
type Field struct {
	Name  string
	Label string
}

type Refresher interface {
	Refresh(ctx context.Context) error
}

type RefreshFunc func(ctx context.Context) error

func (f RefreshFunc) Refresh(ctx context.Context) error { return f(ctx) }

// Spec configures a dialog specialisation.
type Spec[T any] struct {
	Kind     Kind
	Fields   []Field
	Defaults T
	// Validate may be nil: every value is accepted.
	Validate func(T) error
	// Submit persists values and returns them as stored, storage id included.
	Submit   func(ctx context.Context, values T) (T, error)
}

type Observer func(kind Kind, from, to State)

type options struct {
	observer       Observer
	onRefreshError func(ctx context.Context, err error)
}

type Option func(*options)

func WithObserver(o Observer) Option {
	return func(opts *options) { opts.observer = o }
}

// WithRefreshErrorHandler receives refresher failures. The submission has
// already been persisted at that point, so they never fail Submit.
func WithRefreshErrorHandler(fn func(ctx context.Context, err error)) Option {
	return func(opts *options) { opts.onRefreshError = fn }
}

type Dialog[T any] struct {
	spec      Spec[T]
	refresher Refresher
	opts      options

	state  State
	last   State
	values T
	err    error
}

// Open starts a dialog populated with spec.Defaults.
func Open[T any](spec Spec[T], refresher Refresher, opts ...Option) *Dialog[T] {
	if spec.Submit == nil {
		panic("workflow: spec " + spec.Kind.String() + " has no submit handler")
	}

	d := &Dialog[T]{
		spec:      spec,
		refresher: refresher,
		state:     StateOpen,
		last:      StateOpen,
		values:    spec.Defaults,
	}
	for _, opt := range opts {
		opt(&d.opts)
	}

	return d
}

// OpenEdit loads the backing entity first. When load fails no dialog is
// created and the error is returned as is.
func OpenEdit[T any](
	ctx context.Context,
	spec Spec[T],
	load func(ctx context.Context) (T, error),
	refresher Refresher,
	opts ...Option,
) (*Dialog[T], error) {
	values, err := load(ctx)
	if err != nil {
		return nil, err
	}

	spec.Defaults = values
	return Open(spec, refresher, opts...), nil
}

func (d *Dialog[T]) Kind() Kind      { return d.spec.Kind }
func (d *Dialog[T]) Fields() []Field { return d.spec.Fields }
func (d *Dialog[T]) Defaults() T     { return d.spec.Defaults }
func (d *Dialog[T]) Values() T       { return d.values }
func (d *Dialog[T]) State() State    { return d.state }
func (d *Dialog[T]) Last() State     { return d.last }
func (d *Dialog[T]) Err() error      { return d.err }
func (d *Dialog[T]) Closed() bool    { return d.state == StateClosed }
func (d *Dialog[T]) Persisted() bool { return d.last == StatePersisted }

// Submit runs one collect-validate-persist-notify cycle with values. After a
// successful persist Values reports what was stored.
func (d *Dialog[T]) Submit(ctx context.Context, values T) error {
	if d.state == StateClosed {
		return ErrClosed
	}

	d.values = values
	d.transition(StateSubmitted)

	if d.spec.Validate != nil {
		if err := d.spec.Validate(values); err != nil {
			d.fail(StateRejected, err)
			return err
		}
	}
	d.transition(StateValidated)

	stored, err := d.spec.Submit(ctx, values)
	if err != nil {
		d.fail(StatePersistFailed, err)
		return err
	}

	d.values = stored
	d.err = nil
	d.transition(StatePersisted)

	if d.refresher != nil {
		if err := d.refresher.Refresh(ctx); err != nil && d.opts.onRefreshError != nil {
			d.opts.onRefreshError(ctx, err)
		}
	}

	d.transition(StateClosed)
	return nil
}

// Close abandons the dialog without persisting anything.
func (d *Dialog[T]) Close() {
	if d.state == StateClosed {
		return
	}
	d.transition(StateClosed)
}

func (d *Dialog[T]) fail(outcome State, err error) {
	d.err = err
	d.transition(outcome)
	d.transition(StateOpen)
}

func (d *Dialog[T]) transition(to State) {
	from := d.state
	d.state = to

	switch to {
	case StateRejected, StatePersistFailed, StatePersisted:
		d.last = to
	}

	if d.opts.observer != nil {
		d.opts.observer(d.spec.Kind, from, to)
	}
}
