package wire

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterPrimitivesRoundTrip(t *testing.T) {
	w := NewWriter(16)
	require.NoError(t, w.WriteU8(1))
	require.NoError(t, w.WriteU16(0x0203))
	require.NoError(t, w.WriteU32(0x04050607))
	require.NoError(t, w.WriteI32(-1))

	r := NewReader(w.Bytes())
	u8, _ := r.ReadU8()
	u16, _ := r.ReadU16()
	u32, _ := r.ReadU32()
	i32, _ := r.ReadI32()
	assert.Equal(t, uint8(1), u8)
	assert.Equal(t, uint16(0x0203), u16)
	assert.Equal(t, uint32(0x04050607), u32)
	assert.Equal(t, int32(-1), i32)
}

func TestWriterFill(t *testing.T) {
	w := NewWriter(0)
	require.NoError(t, w.WriteFill([]byte("abc"), 8))
	assert.Equal(t, append([]byte("abc"), make([]byte, 5)...), w.Bytes())

	w2 := NewWriter(0)
	err := w2.WriteFill([]byte("waytoolongforthisfield"), 8)
	var tooLong *StringTooLongError
	assert.ErrorAs(t, err, &tooLong)
}

func TestWriterIPv4(t *testing.T) {
	w := NewWriter(0)
	require.NoError(t, w.WriteIPv4(net.IPv4(192, 168, 0, 1)))
	assert.Equal(t, []byte{192, 168, 0, 1}, w.Bytes())

	w2 := NewWriter(0)
	err := w2.WriteIPv4(net.ParseIP("2001:db8::1"))
	assert.Error(t, err)
}
