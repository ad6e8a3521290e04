// Package codec implements the zlib stream codec used for every compressed
// block in a project file.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zlib"
)

// The authoring tool writes standard zlib streams (0x78 0x9C header). Changing
// the level changes the output bytes of every file we produce.
const Level = zlib.DefaultCompression

var ErrCorruptStream = errors.New("corrupt compressed stream")

var writers = sync.Pool{
	New: func() interface{} {
		w, _ := zlib.NewWriterLevel(nil, Level)
		return w
	},
}

// CompressTo streams everything from r into w as a single zlib stream.
func CompressTo(w io.Writer, r io.Reader) (int64, error) {
	z := writers.Get().(*zlib.Writer)
	defer writers.Put(z)
	z.Reset(w)

	n, err := io.Copy(z, r)
	if err != nil {
		return n, err
	}

	if err := z.Close(); err != nil {
		return n, err
	}

	return n, nil
}

// Compress returns the zlib stream for data. The output depends only on the
// input bytes.
func Compress(data []byte) ([]byte, error) {
	var buffer bytes.Buffer
	buffer.Grow(len(data)/2 + 64)

	_, err := CompressTo(&buffer, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

// DecompressFrom reads one zlib stream from r and writes the inflated bytes
// to w.
func DecompressFrom(w io.Writer, r io.Reader) (int64, error) {
	z, err := zlib.NewReader(r)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCorruptStream, err)
	}
	defer z.Close()

	n, err := io.Copy(w, z)
	if err != nil {
		return n, fmt.Errorf("%w: %v", ErrCorruptStream, err)
	}

	return n, nil
}

func Decompress(data []byte) ([]byte, error) {
	var buffer bytes.Buffer
	_, err := DecompressFrom(&buffer, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
