package storage

import "errors"

var (
	// ErrTruncated is returned when a read or seek would move past the end of the buffer.
	ErrTruncated = errors.New("truncated buffer")

	// ErrShortFile is returned when the image cannot hold the 100 byte file header.
	ErrShortFile = errors.New("file too short for header")

	// ErrInvalidPageSize is returned when the file header declares a page size of zero.
	ErrInvalidPageSize = errors.New("invalid page size")

	// ErrUnsupportedSerialType is returned for serial type codes 10 and 11.
	ErrUnsupportedSerialType = errors.New("unrecognized serial type")

	// ErrMalformedRecord is returned when a record does not match its own header.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrPageOutOfBounds is returned when a page number does not address a page in the file.
	ErrPageOutOfBounds = errors.New("page out of bounds")
)
