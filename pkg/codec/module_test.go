package codec

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, before []byte) {
	compressed, err := Compress(before)
	require.NoError(t, err)

	after, err := Decompress(compressed)
	require.NoError(t, err)

	assert.Equal(t, len(before), len(after))
	assert.True(t, bytes.Equal(before, after), "should yield same result")
}

func TestEmpty(t *testing.T) {
	roundTrip(t, []byte{})
}

func TestText(t *testing.T) {
	roundTrip(t, []byte("instance_create(x, y, obj_player);\n"))
}

func TestLargeRandom(t *testing.T) {
	data := make([]byte, 8<<20)
	rand.New(rand.NewSource(1)).Read(data)
	roundTrip(t, data)
}

func TestLargeRepetitive(t *testing.T) {
	data := bytes.Repeat([]byte{0xFF, 0x00, 0x7F, 0x10}, 4<<20)
	roundTrip(t, data)
}

func TestHeader(t *testing.T) {
	compressed, err := Compress([]byte("header"))
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(compressed), 2)

	// CMF/FLG pair of a default-level zlib stream
	assert.Equal(t, byte(0x78), compressed[0])
	assert.Equal(t, byte(0x9C), compressed[1])
	assert.Zero(t, (uint16(compressed[0])<<8|uint16(compressed[1]))%31)
}

func TestDeterministic(t *testing.T) {
	data := make([]byte, 1<<20)
	rand.New(rand.NewSource(7)).Read(data[:len(data)/2])

	first, err := Compress(data)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		again, err := Compress(data)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestCorrupt(t *testing.T) {
	_, err := Decompress([]byte("definitely not zlib"))
	assert.True(t, errors.Is(err, ErrCorruptStream))

	compressed, err := Compress(bytes.Repeat([]byte("abc"), 1000))
	require.NoError(t, err)

	_, err = Decompress(compressed[:len(compressed)/2])
	assert.True(t, errors.Is(err, ErrCorruptStream))

	// flip the adler32 trailer
	broken := append([]byte{}, compressed...)
	broken[len(broken)-1] ^= 0xFF
	_, err = Decompress(broken)
	assert.True(t, errors.Is(err, ErrCorruptStream))
}
