package database

import (
	"errors"
	"fmt"
)

var (
	ErrNotInitialized = errors.New("store is not initialized")
	ErrNotFound       = errors.New("record not found")
	ErrInvalidLead    = errors.New("invalid lead")
	ErrInvalidSale    = errors.New("invalid sale")
)

// Entity names used in OpError.Resource.
const (
	EntityLead  = "lead"
	EntitySale  = "sale"
	EntityStats = "stats"
	EntityStore = "store"
)

// OpError records the failed operation and the record it targeted.
type OpError struct {
	Op       string
	Resource string
	ID       int64
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID > 0 {
		return fmt.Sprintf("%s %s %d: %v", e.Op, e.Resource, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapErr(resource, op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	var opErr *OpError
	if errors.As(err, &opErr) {
		return err
	}
	return &OpError{Op: op, Resource: resource, ID: id, Err: err}
}
