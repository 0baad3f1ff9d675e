package api

import "fmt"

// Error taxonomy for the coaching API. ValidationError lives in the workout
// package and never reaches this layer; everything here surfaces as a
// dismissible message, except best-effort cleanup calls which only log.

// NetworkError means the request could not complete at all.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// AuthError means the session is no longer valid (401). The client clears
// its cached credentials before returning it; the caller should route the
// user back to login.
type AuthError struct {
	Status int
}

func (e *AuthError) Error() string {
	return "session expired — run 'plcoach login'"
}

// ConflictError means the session lock is held by another device, or the
// server rejected a state transition. Non-fatal and user-visible.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "workout is checked out by another user or device"
}

// ServerError carries the server's own error text: an ok:false envelope or
// a non-2xx status with a parseable body. The message is shown verbatim
// when present.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}
