package docstore

import "errors"

var (
	ErrNotFound          = errors.New("docstore: document not found")
	ErrDuplicate         = errors.New("docstore: duplicate id")
	ErrInvalidCollection = errors.New("docstore: invalid collection name")
)
