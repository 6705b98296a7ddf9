package ecs

import (
	"fmt"

	"github.com/rotisserie/eris"
)

var (
	ErrReentrantBorrow  = eris.New("reentrant borrow")
	ErrNoColumns        = eris.New("store needs at least one column")
	ErrUnknownComponent = eris.New("component not registered")
)

// LockedStorageError is returned by store operations that cannot be queued
// while a traversal is in progress.
type LockedStorageError struct {
	Store string
}

func (e LockedStorageError) Error() string {
	return fmt.Sprintf("store %q is currently locked", e.Store)
}

// BorrowError is the panic value raised when an exclusive borrow is
// requested while another operation holds the same target.
type BorrowError struct {
	Target    string
	Held      string
	Requested string
}

func (e *BorrowError) Error() string {
	return fmt.Sprintf("%s: %s requested while %s is in progress", e.Target, e.Requested, e.Held)
}

func (e *BorrowError) Unwrap() error {
	return ErrReentrantBorrow
}

type ComponentRegisteredError struct {
	Name string
}

func (e ComponentRegisteredError) Error() string {
	return fmt.Sprintf("component %q is already registered", e.Name)
}

type RegistryFullError struct {
	Capacity int
}

func (e RegistryFullError) Error() string {
	return fmt.Sprintf("component registry at maximum capacity (%d)", e.Capacity)
}
