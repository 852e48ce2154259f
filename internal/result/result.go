// Package result implements the tri-state outcome protocol shared by every
// repository and service in the application. An asynchronous operation is
// always observed as exactly one of three states: Loading (in flight, no
// payload), Success (carrying a full snapshot of the data), or Error
// (carrying the provider-supplied message as plain text).
//
// One-shot operations emit Loading at most once and then terminate with
// exactly one Success or Error. Live subscriptions emit Loading first, then
// a fresh Success per backend change, or a single Error on listener failure;
// a failed subscription is not retried automatically and must be restarted
// by the caller. Every emission fully replaces prior state; consumers must
// never merge partial snapshots.
package result

import "encoding/json"

// State discriminates the three variants of a Result.
type State int

const (
	StateLoading State = iota
	StateSuccess
	StateError
)

// String returns the wire name of the state as used in API payloads.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is a discriminated tri-state value. The zero value is Loading.
type Result[T any] struct {
	state   State
	data    T
	message string
}

// Loading returns the in-flight variant. It carries no payload.
func Loading[T any]() Result[T] {
	return Result[T]{state: StateLoading}
}

// Success returns the terminal (or, for subscriptions, latest-snapshot)
// variant carrying data.
func Success[T any](data T) Result[T] {
	return Result[T]{state: StateSuccess, data: data}
}

// Failure returns the error variant. The message is surfaced to consumers
// verbatim; no structured code accompanies it.
func Failure[T any](message string) Result[T] {
	return Result[T]{state: StateError, message: message}
}

// State reports which variant this result is.
func (r Result[T]) State() State { return r.state }

// IsLoading reports whether the result is the Loading variant.
func (r Result[T]) IsLoading() bool { return r.state == StateLoading }

// IsSuccess reports whether the result is the Success variant.
func (r Result[T]) IsSuccess() bool { return r.state == StateSuccess }

// IsError reports whether the result is the Error variant.
func (r Result[T]) IsError() bool { return r.state == StateError }

// Data returns the payload. It is only meaningful when IsSuccess is true;
// otherwise the zero value of T is returned.
func (r Result[T]) Data() T { return r.data }

// Message returns the error text. Empty unless IsError is true.
func (r Result[T]) Message() string { return r.message }

// envelope is the JSON shape emitted over the API stream endpoints.
type envelope[T any] struct {
	State string `json:"state"`
	Data  *T     `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// MarshalJSON encodes the result as {"state":...,"data":...,"error":...}
// with the payload present only for the Success variant.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	env := envelope[T]{State: r.state.String()}
	switch r.state {
	case StateSuccess:
		data := r.data
		env.Data = &data
	case StateError:
		env.Error = r.message
	}
	return json.Marshal(env)
}
