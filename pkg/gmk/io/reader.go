package io

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cfoust/gmk/pkg/codec"
)

// Reads consume the front of the buffer. They exist for verifying encoder
// output and for tooling that inspects written files.

func (p *Buffer) Read(n []byte) (int, error) {
	if len(*p) < len(n) {
		return 0, ErrShort
	}
	copy(n, *p)
	*p = (*p)[len(n):]
	return len(n), nil
}

func (p *Buffer) Unmarshal(pieces ...interface{}) error {
	for _, piece := range pieces {
		err := binary.Read(p, binary.LittleEndian, piece)
		if err != nil {
			return err
		}
	}

	return nil
}

func (p *Buffer) Get(pieces ...interface{}) error {
	return p.Unmarshal(pieces...)
}

func (p *Buffer) GetByte() (byte, bool) {
	if len(*p) < 1 {
		return 0, false
	}
	b := (*p)[0]
	*p = (*p)[1:]
	return b, true
}

func (p *Buffer) GetBytes(n int) ([]byte, bool) {
	if n < 0 || n > len(*p) {
		return nil, false
	}
	b := make([]byte, n)
	copy(b, (*p)[:n])
	*p = (*p)[n:]
	return b, true
}

func (p *Buffer) Skip(n int) bool {
	if n > len(*p) {
		return false
	}
	*p = (*p)[n:]
	return true
}

func (p *Buffer) GetUint() (uint32, bool) {
	if len(*p) < 4 {
		return 0, false
	}
	v := binary.LittleEndian.Uint32(*p)
	*p = (*p)[4:]
	return v, true
}

func (p *Buffer) GetInt() (int32, bool) {
	v, ok := p.GetUint()
	return int32(v), ok
}

func (p *Buffer) GetFloat() (float64, bool) {
	if len(*p) < 8 {
		return 0, false
	}
	v := math.Float64frombits(binary.LittleEndian.Uint64(*p))
	*p = (*p)[8:]
	return v, true
}

func (p *Buffer) GetBool() (bool, bool) {
	v, ok := p.GetUint()
	return v != 0, ok
}

func (p *Buffer) GetString() (string, bool) {
	data, ok := p.GetBlob()
	return string(data), ok
}

func (p *Buffer) GetBlob() ([]byte, bool) {
	length, ok := p.GetUint()
	if !ok {
		return nil, false
	}
	return p.GetBytes(int(length))
}

// GetBlock reads a compressed block and returns its inflated contents.
func (p *Buffer) GetBlock() (Buffer, error) {
	size, ok := p.GetUint()
	if !ok {
		return nil, ErrShort
	}

	compressed, ok := p.GetBlob()
	if !ok {
		return nil, ErrShort
	}

	data, err := codec.Decompress(compressed)
	if err != nil {
		return nil, err
	}

	if len(data) != int(size) {
		return nil, fmt.Errorf(
			"%w: block declared %d bytes but inflated to %d",
			codec.ErrCorruptStream,
			size,
			len(data),
		)
	}

	return Buffer(data), nil
}
