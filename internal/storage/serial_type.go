package storage

import "fmt"

// SerialType describes the storage class and width of one record column.
type SerialType uint64

const (
	SerialNull    SerialType = 0
	SerialInt8    SerialType = 1
	SerialInt16   SerialType = 2
	SerialInt24   SerialType = 3
	SerialInt32   SerialType = 4
	SerialInt48   SerialType = 5
	SerialInt64   SerialType = 6
	SerialFloat64 SerialType = 7
	SerialZero    SerialType = 8
	SerialOne     SerialType = 9

	serialBlobBase SerialType = 12
	serialTextBase SerialType = 13
)

// fixedLengths holds the payload width of codes 0 through 9.
var fixedLengths = [...]int{0, 1, 2, 3, 4, 6, 8, 8, 0, 0}

// TextSerialType is the serial type of a text value of n bytes.
func TextSerialType(n int) SerialType {
	return serialTextBase + SerialType(2*n)
}

// BlobSerialType is the serial type of a blob of n bytes.
func BlobSerialType(n int) SerialType {
	return serialBlobBase + SerialType(2*n)
}

// Length is the number of payload bytes a value of this type occupies.
// Codes 10 and 11 are reserved and return ErrUnsupportedSerialType.
func (s SerialType) Length() (int, error) {
	switch {
	case s < SerialType(len(fixedLengths)):
		return fixedLengths[s], nil
	case s >= serialBlobBase && s%2 == 0:
		return int((s - serialBlobBase) / 2), nil
	case s >= serialTextBase:
		return int((s - serialTextBase) / 2), nil
	}
	return 0, fmt.Errorf("serial type %d: %w", uint64(s), ErrUnsupportedSerialType)
}

// IsInteger reports whether the type stores an integer, including the two constants.
func (s SerialType) IsInteger() bool {
	return (s >= SerialInt8 && s <= SerialInt64) || s == SerialZero || s == SerialOne
}

// IsText reports whether the type stores text.
func (s SerialType) IsText() bool {
	return s >= serialTextBase && s%2 == 1
}

// IsBlob reports whether the type stores a blob.
func (s SerialType) IsBlob() bool {
	return s >= serialBlobBase && s%2 == 0
}
