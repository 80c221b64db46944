package domain

import "errors"

// ErrUnknownState is returned when text does not name a known State.
var ErrUnknownState = errors.New("unknown state")

// ErrUnknownAction is returned when text does not name a known Action.
var ErrUnknownAction = errors.New("unknown action")

// ErrPersonNotFound is returned when a person ID cannot be found in the store.
var ErrPersonNotFound = errors.New("person not found")

// ErrInvalidPersonID is returned when an ID cannot be used by a store.
var ErrInvalidPersonID = errors.New("invalid person ID")
