// Package errstore collects errors from many independent validation steps.
//
// A Store owns a flat, ordered list of errors and a tree of sinks. Each
// validation step reports through a Sink; a sink knows whether it or any of
// its descendants received a critical error, so a caller can abandon one unit
// of work (for example one kind) while unrelated units carry on. The whole
// list is read back once, after every sink is done.
package errstore

// Store holds every error pushed through its sinks.
//
// A Store and its sinks must be used from a single goroutine.
type Store[T any] struct {
	errors []T
	sinks  []sinkData
	done   bool
}

// sinkData is one record of the sink arena. Sinks refer to their parent by
// index, never by pointer.
type sinkData struct {
	parent   int // -1 for root sinks
	critical bool
}

// New returns an empty Store.
func New[T any]() *Store[T] {
	return &Store[T]{}
}

// Sink creates a new root sink.
func (s *Store[T]) Sink() *Sink[T] {
	return &Sink[T]{store: s, id: s.register(-1)}
}

// Errors returns all errors pushed so far, critical and warning alike, in push
// order. It consumes the store: pushing through any of its sinks afterwards
// panics.
func (s *Store[T]) Errors() []T {
	s.done = true
	errs := s.errors
	s.errors = nil
	return errs
}

func (s *Store[T]) register(parent int) int {
	// The arena length is the next ID.
	id := len(s.sinks)
	s.sinks = append(s.sinks, sinkData{parent: parent})
	return id
}

func (s *Store[T]) push(err T) {
	if s.done {
		panic("errstore: push after Store.Errors")
	}
	s.errors = append(s.errors, err)
}

func (s *Store[T]) markCritical(id int) {
	// Propagate eagerly so that reads never walk the tree.
	for curr := id; curr >= 0; curr = s.sinks[curr].parent {
		s.sinks[curr].critical = true
	}
}

// Sink is a handle through which one subtree of validation reports errors.
type Sink[T any] struct {
	store *Store[T]
	id    int
}

// PushCritical records an error that blocks progress. The sink and all of its
// ancestors report HasCriticalErrors from now on.
func (s *Sink[T]) PushCritical(err T) {
	s.store.push(err)
	s.store.markCritical(s.id)
}

// PushWarning records an error that does not block progress.
func (s *Sink[T]) PushWarning(err T) {
	s.store.push(err)
}

// HasCriticalErrors reports whether a critical error was pushed to this sink
// or to one of its descendants.
func (s *Sink[T]) HasCriticalErrors() bool {
	return s.store.sinks[s.id].critical
}

// NewChild creates a sink whose critical errors also mark s.
func (s *Sink[T]) NewChild() *Sink[T] {
	return &Sink[T]{store: s.store, id: s.store.register(s.id)}
}
