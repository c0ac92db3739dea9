package wire

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderPrimitives(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08})

	u8, err := r.ReadU8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x01), u8)

	u16, err := r.ReadU16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0203), u16)

	u32, err := r.ReadU32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x04050607), u32)

	_, err = r.ReadU32()
	assert.ErrorIs(t, err, ErrEndOfBuffer)
}

func TestReaderI32Negative(t *testing.T) {
	r := NewReader([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	v, err := r.ReadI32()
	require.NoError(t, err)
	assert.Equal(t, int32(-1), v)
}

func TestReaderBoolOnlyOneIsTrue(t *testing.T) {
	// this is the documented, tested property: only byte value 1 is true.
	for _, tc := range []struct {
		b    byte
		want bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{255, false},
	} {
		r := NewReader([]byte{tc.b})
		v, err := r.ReadBool()
		require.NoError(t, err)
		assert.Equal(t, tc.want, v)
	}
}

func TestReaderReadArrayVsSlice(t *testing.T) {
	src := []byte{1, 2, 3, 4}
	r := NewReader(src)
	owned, err := r.ReadArray(2)
	require.NoError(t, err)
	owned[0] = 0xFF
	assert.Equal(t, byte(1), src[0], "ReadArray must copy, not alias")

	r2 := NewReader(src)
	borrowed, err := r2.ReadSlice(2)
	require.NoError(t, err)
	borrowed[0] = 0xFF
	assert.Equal(t, byte(0xFF), src[0], "ReadSlice must alias the source")
}

func TestReaderReadString(t *testing.T) {
	r := NewReader([]byte("hello"))
	s, err := r.ReadString(5)
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	r2 := NewReader([]byte{0xff, 0xfe, 0xfd})
	_, err = r2.ReadString(3)
	assert.ErrorIs(t, err, ErrUTF8)
}

func TestReaderReadNulBytes(t *testing.T) {
	// first byte zero -> absent
	r := NewReader(make([]byte, 8))
	b, present, err := r.ReadNulBytes(8)
	require.NoError(t, err)
	assert.False(t, present)
	assert.Nil(t, b)

	// terminator mid-field
	buf := make([]byte, 8)
	copy(buf, "srv")
	r2 := NewReader(buf)
	b2, present2, err2 := r2.ReadNulBytes(8)
	require.NoError(t, err2)
	assert.True(t, present2)
	assert.Equal(t, append([]byte("srv"), 0), b2)

	// no terminator at all -> treated as absent, not an error
	buf3 := []byte("abcdefgh")
	r3 := NewReader(buf3)
	b3, present3, err3 := r3.ReadNulBytes(8)
	require.NoError(t, err3)
	assert.False(t, present3)
	assert.Nil(t, b3)
}

func TestReaderIPv4List(t *testing.T) {
	r := NewReader([]byte{192, 168, 1, 1, 192, 168, 1, 2})
	ips, err := r.ReadIPv4s(8)
	require.NoError(t, err)
	require.Len(t, ips, 2)
	assert.True(t, ips[0].Equal(net.IPv4(192, 168, 1, 1)))
	assert.True(t, ips[1].Equal(net.IPv4(192, 168, 1, 2)))

	_, err = NewReader([]byte{1, 2, 3}).ReadIPv4s(3)
	assert.ErrorIs(t, err, ErrNotEnoughBytes)
}

func TestReaderPairIPv4(t *testing.T) {
	r := NewReader([]byte{10, 0, 0, 0, 192, 168, 1, 1})
	pairs, err := r.ReadPairIPv4(8)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.True(t, pairs[0].Network.Equal(net.IPv4(10, 0, 0, 0)))
	assert.True(t, pairs[0].NextHop.Equal(net.IPv4(192, 168, 1, 1)))
}

func TestReaderSub(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4, 5})
	inner, err := r.Sub(3)
	require.NoError(t, err)
	assert.Equal(t, 3, inner.Len())
	assert.Equal(t, 2, r.Len())
}

func TestReaderDomains(t *testing.T) {
	// "www.google.com." followed by a pointer back to offset 0
	region := []byte{
		3, 'w', 'w', 'w', 6, 'g', 'o', 'o', 'g', 'l', 'e', 3, 'c', 'o', 'm', 0,
		0xC0, 0x00,
	}
	r := NewReader(region)
	names, err := r.ReadDomains(len(region))
	require.NoError(t, err)
	require.Len(t, names, 2)
	assert.Equal(t, "www.google.com.", names[0])
	assert.Equal(t, "www.google.com.", names[1])
}
