package setting

import (
	"errors"
	"fmt"
)

// ErrViewIDInvalid is returned when the changeset does not name a grid view.
var ErrViewIDInvalid = errors.New("view id is invalid")

// ErrorKind attributes a rejected changeset to the field that caused it.
type ErrorKind int

const (
	InvalidIdentifier ErrorKind = iota + 1
	InvalidInsertFilterPayload
	InvalidDeleteFilterPayload
	InvalidInsertGroupPayload
	InvalidDeleteGroupPayload
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidIdentifier:
		return "invalid_identifier"
	case InvalidInsertFilterPayload:
		return "invalid_insert_filter_payload"
	case InvalidDeleteFilterPayload:
		return "invalid_delete_filter_payload"
	case InvalidInsertGroupPayload:
		return "invalid_insert_group_payload"
	case InvalidDeleteGroupPayload:
		return "invalid_delete_group_payload"
	default:
		return "unknown"
	}
}

// Field returns the changeset field the kind refers to.
func (k ErrorKind) Field() string {
	switch k {
	case InvalidIdentifier:
		return "grid_id"
	case InvalidInsertFilterPayload:
		return "insert_filter"
	case InvalidDeleteFilterPayload:
		return "delete_filter"
	case InvalidInsertGroupPayload:
		return "insert_group"
	case InvalidDeleteGroupPayload:
		return "delete_group"
	default:
		return ""
	}
}

// ChangesetError reports why a changeset was rejected. Err is the error
// raised by the subsystem that owns the field.
type ChangesetError struct {
	Kind ErrorKind
	Err  error
}

func (e *ChangesetError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Kind.Field(), e.Err)
}

func (e *ChangesetError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a changeset rejection, or 0 if err is not one.
func KindOf(err error) ErrorKind {
	var changesetErr *ChangesetError
	if errors.As(err, &changesetErr) {
		return changesetErr.Kind
	}
	return 0
}
