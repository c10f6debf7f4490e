package storage

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// EncodeRecord serializes values in the record format. Supported values are
// nil, signed and unsigned integers up to 32 bits, int64, int, float64,
// string (stored as text) and []byte (stored as a blob).
func EncodeRecord(values ...interface{}) ([]byte, error) {
	var header, body bytes.Buffer

	for i, value := range values {
		var serialType SerialType

		switch v := value.(type) {
		case nil:
			serialType = SerialNull
		case int:
			serialType = putInt(&body, int64(v))
		case int8:
			serialType = putInt(&body, int64(v))
		case int16:
			serialType = putInt(&body, int64(v))
		case int32:
			serialType = putInt(&body, int64(v))
		case int64:
			serialType = putInt(&body, v)
		case uint8:
			serialType = putInt(&body, int64(v))
		case uint16:
			serialType = putInt(&body, int64(v))
		case uint32:
			serialType = putInt(&body, int64(v))
		case float64:
			serialType = SerialFloat64
			_ = binary.Write(&body, binary.BigEndian, math.Float64bits(v))
		case string:
			serialType = TextSerialType(len(v))
			body.WriteString(v)
		case []byte:
			serialType = BlobSerialType(len(v))
			body.Write(v)
		default:
			return nil, fmt.Errorf("column %d: unsupported value type %T", i, value)
		}

		header.Write(AppendVarint(nil, uint64(serialType)))
	}

	// The header length counts its own varint.
	headerLen := header.Len() + 1
	for VarintLen(uint64(headerLen)) != headerLen-header.Len() {
		headerLen = header.Len() + VarintLen(uint64(headerLen))
	}

	record := AppendVarint(make([]byte, 0, headerLen+body.Len()), uint64(headerLen))
	record = append(record, header.Bytes()...)
	record = append(record, body.Bytes()...)

	return record, nil
}

// putInt writes v in the narrowest integer serial type that holds it.
func putInt(body *bytes.Buffer, v int64) SerialType {
	switch {
	case v == 0:
		return SerialZero
	case v == 1:
		return SerialOne
	}

	serialType := SerialInt64
	for _, t := range []SerialType{SerialInt8, SerialInt16, SerialInt24, SerialInt32, SerialInt48} {
		bits := uint(fixedLengths[t] * 8)
		if v >= -(1<<(bits-1)) && v < 1<<(bits-1) {
			serialType = t
			break
		}
	}

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	body.Write(buf[8-fixedLengths[serialType]:])

	return serialType
}

// BuildDatabase lays pages out into a database image and writes the file
// header over the start of page one. Pages missing from the list are left
// zeroed.
func BuildDatabase(pageSize int, pages ...*MemPage) ([]byte, error) {
	total := 1
	for _, p := range pages {
		if len(p.Data) != pageSize {
			return nil, fmt.Errorf("page [%d] is %d bytes, want %d", p.PageNumber, len(p.Data), pageSize)
		}
		if p.PageNumber > total {
			total = p.PageNumber
		}
	}

	data := make([]byte, total*pageSize)
	for _, p := range pages {
		copy(data[(p.PageNumber-1)*pageSize:], p.Data)
	}

	var header bytes.Buffer
	if _, err := NewFileHeader(pageSize).WriteTo(&header); err != nil {
		return nil, err
	}
	copy(data, header.Bytes())

	return data, nil
}
