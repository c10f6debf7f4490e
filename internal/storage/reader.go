package storage

import (
	"encoding/binary"
	"fmt"
)

// Reader is a cursor over an in-memory database image.
// Every read is checked against the end of the buffer and advances the
// position by exactly the number of bytes consumed.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a Reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Len is the length of the underlying buffer.
func (r *Reader) Len() int {
	return len(r.data)
}

// Remaining is the number of bytes between the position and the end of the buffer.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Position returns the absolute read position.
func (r *Reader) Position() int {
	return r.pos
}

// SetPosition moves the cursor to an absolute offset.
func (r *Reader) SetPosition(pos int) error {
	if pos < 0 || pos > len(r.data) {
		return fmt.Errorf("seek to %d of %d: %w", pos, len(r.data), ErrTruncated)
	}
	r.pos = pos
	return nil
}

// Skip advances the cursor n bytes without reading them.
func (r *Reader) Skip(n int) error {
	if n < 0 {
		return fmt.Errorf("skip %d bytes at %d: %w", n, r.pos, ErrTruncated)
	}
	_, err := r.next(n)
	return err
}

// ReadByte reads a single byte. Reader satisfies io.ByteReader so the varint
// decoder can run directly on it.
func (r *Reader) ReadByte() (byte, error) {
	b, err := r.next(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadUint16 reads a big-endian two byte unsigned integer.
func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.next(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// ReadBytes returns the next n bytes. The slice aliases the buffer, which is
// never written after it is loaded.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	b, err := r.next(n)
	if err != nil {
		return nil, err
	}
	return b[:n:n], nil
}

// ReadString copies the next n bytes into a string. The bytes are not
// validated against any text encoding.
func (r *Reader) ReadString(n int) (string, error) {
	b, err := r.next(n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadVarint decodes a varint at the current position.
func (r *Reader) ReadVarint() (uint64, error) {
	start := r.pos
	v, _, err := ReadVarint(r)
	if err != nil {
		r.pos = start
		return 0, fmt.Errorf("varint at %d: %w", start, err)
	}
	return v, nil
}

func (r *Reader) next(n int) ([]byte, error) {
	if n < 0 || n > len(r.data)-r.pos {
		return nil, fmt.Errorf("read %d bytes at %d of %d: %w", n, r.pos, len(r.data), ErrTruncated)
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}
