package io

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/cfoust/gmk/pkg/codec"
)

var ErrShort = errors.New("buffer too short")

// Buffer accumulates little-endian project file data. Booleans are stored as
// 32-bit integers and strings are prefixed with their 32-bit length.
type Buffer []byte

func (p *Buffer) marshalRawValue(value interface{}) error {
	switch v := value.(type) {
	case bool:
		p.PutBool(v)
		return nil
	case string:
		return p.PutString(v)
	case int:
		return fmt.Errorf("int has no fixed width, use int32 or uint32")
	case uint:
		return fmt.Errorf("uint has no fixed width, use int32 or uint32")
	}

	var buffer bytes.Buffer
	err := binary.Write(&buffer, binary.LittleEndian, value)
	if err != nil {
		return err
	}

	*p = append(*p, buffer.Bytes()...)
	return nil
}

func (p *Buffer) Marshal(pieces ...interface{}) error {
	for _, piece := range pieces {
		err := p.marshalRawValue(piece)
		if err != nil {
			return err
		}
	}

	return nil
}

func (p *Buffer) Put(pieces ...interface{}) error {
	return p.Marshal(pieces...)
}

func (p *Buffer) PutByte(v byte) {
	*p = append(*p, v)
}

func (p *Buffer) PutUint(v uint32) {
	*p = binary.LittleEndian.AppendUint32(*p, v)
}

func (p *Buffer) PutInt(v int32) {
	p.PutUint(uint32(v))
}

func (p *Buffer) PutUint64(v uint64) {
	*p = binary.LittleEndian.AppendUint64(*p, v)
}

func (p *Buffer) PutFloat(v float64) {
	p.PutUint64(math.Float64bits(v))
}

func (p *Buffer) PutBool(v bool) {
	if v {
		p.PutUint(1)
	} else {
		p.PutUint(0)
	}
}

func (p *Buffer) putLength(n int) error {
	if n < 0 || uint64(n) > math.MaxUint32 {
		return fmt.Errorf("length %d does not fit in 32 bits", n)
	}
	p.PutUint(uint32(n))
	return nil
}

// PutString writes the string's bytes as they are, with no terminator and no
// re-encoding.
func (p *Buffer) PutString(s string) error {
	if err := p.putLength(len(s)); err != nil {
		return err
	}
	*p = append(*p, s...)
	return nil
}

func (p *Buffer) PutBlob(data []byte) error {
	if err := p.putLength(len(data)); err != nil {
		return err
	}
	*p = append(*p, data...)
	return nil
}

// PutBlock writes data as a compressed block: the uncompressed length, then
// the zlib stream prefixed with its own length.
func (p *Buffer) PutBlock(data []byte) error {
	compressed, err := codec.Compress(data)
	if err != nil {
		return err
	}

	if err := p.putLength(len(data)); err != nil {
		return err
	}

	return p.PutBlob(compressed)
}

// PutBuffer frames the contents of another buffer as a compressed block.
func (p *Buffer) PutBuffer(other Buffer) error {
	return p.PutBlock(other)
}

func (p *Buffer) Len() int {
	return len(*p)
}

func (p *Buffer) Bytes() []byte {
	return *p
}
