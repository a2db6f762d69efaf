// Package event implements a small typed subscription router. It is used for the scroll and
// visibility notification streams as well as for publishing state changes to the ui.
package event

import (
	"sync"
)

// Token identifies a single subscription. The zero Token is never issued.
type Token uint64

type Handler[T any] func(T)

type subscription[T any] struct {
	token   Token
	handler Handler[T]
}

func NewRouter[T any]() *Router[T] {
	return &Router[T]{readersMu: &sync.RWMutex{}}
}

// Router delivers each sent value to every registered handler, synchronously and in the order the
// handlers were subscribed.
type Router[T any] struct {
	readers   []subscription[T]
	readersMu *sync.RWMutex
	lastToken Token
	closed    bool
}

// Subscribe registers a handler and returns the token used to remove it again. Subscribing to a
// closed router returns a token that is already inert.
func (r *Router[T]) Subscribe(handler Handler[T]) Token {
	r.readersMu.Lock()
	defer r.readersMu.Unlock()

	r.lastToken++
	if r.closed || handler == nil {
		return r.lastToken
	}

	r.readers = append(r.readers, subscription[T]{token: r.lastToken, handler: handler})

	return r.lastToken
}

// Unsubscribe removes the handler registered under token. It is safe to call more than once and
// reports whether a handler was actually removed.
func (r *Router[T]) Unsubscribe(token Token) bool {
	r.readersMu.Lock()
	defer r.readersMu.Unlock()

	for idx, reader := range r.readers {
		if reader.token == token {
			r.readers = append(r.readers[:idx:idx], r.readers[idx+1:]...)

			return true
		}
	}

	return false
}

// Send delivers value to the current handlers. Handlers are allowed to subscribe or unsubscribe
// while being called. A handler removed during delivery is not called for the rest of it.
func (r *Router[T]) Send(value T) {
	r.readersMu.RLock()
	if r.closed || len(r.readers) == 0 {
		r.readersMu.RUnlock()

		return
	}

	tokens := make([]Token, len(r.readers))
	for idx, reader := range r.readers {
		tokens[idx] = reader.token
	}
	r.readersMu.RUnlock()

	for _, token := range tokens {
		handler, ok := r.handler(token)
		if !ok {
			continue
		}

		handler(value)
	}
}

func (r *Router[T]) handler(token Token) (Handler[T], bool) {
	r.readersMu.RLock()
	defer r.readersMu.RUnlock()

	if r.closed {
		return nil, false
	}

	for _, reader := range r.readers {
		if reader.token == token {
			return reader.handler, true
		}
	}

	return nil, false
}

// Len returns the number of active subscriptions.
func (r *Router[T]) Len() int {
	r.readersMu.RLock()
	defer r.readersMu.RUnlock()

	return len(r.readers)
}

// Close removes every handler. Nothing is delivered after Close returns.
func (r *Router[T]) Close() {
	r.readersMu.Lock()
	defer r.readersMu.Unlock()

	r.closed = true
	r.readers = nil
}
