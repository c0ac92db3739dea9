package wire

import (
	"bytes"
	"encoding/binary"
	"net"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Reader is a linear, bounds-checked cursor over an immutable byte slice.
// Every read either advances the cursor by an exact width and returns the
// value, or fails. A read that runs past the end of the buffer, or whose
// length fails a constraint, fails with an error wrapping
// ErrEndOfBuffer/ErrNotEnoughBytes and leaves the cursor unmoved.
// ReadString and ReadDomains check their bytes after consuming them, so
// when that check fails the cursor has already moved past those bytes.
// Reader never seeks backwards.
type Reader struct {
	buf []byte
	pos int
}

// NewReader wraps buf for sequential reading. The returned Reader borrows
// buf; callers that need values to outlive buf must copy (ReadArray does
// this for them, ReadSlice does not).
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	return len(r.buf) - r.pos
}

// Pos returns the current cursor offset from the start of the original
// buffer, for error reporting.
func (r *Reader) Pos() int {
	return r.pos
}

// Remaining returns a borrowed view of the unread tail of the buffer.
func (r *Reader) Remaining() []byte {
	return r.buf[r.pos:]
}

func (r *Reader) require(n int) error {
	if n < 0 || r.pos+n > len(r.buf) {
		return endOfBufferAt(r.pos)
	}
	return nil
}

// ReadU8 consumes one byte.
func (r *Reader) ReadU8() (uint8, error) {
	if err := r.require(1); err != nil {
		return 0, err
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

// ReadU16 consumes two big-endian bytes.
func (r *Reader) ReadU16() (uint16, error) {
	if err := r.require(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(r.buf[r.pos : r.pos+2])
	r.pos += 2
	return v, nil
}

// ReadU32 consumes four big-endian bytes.
func (r *Reader) ReadU32() (uint32, error) {
	if err := r.require(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(r.buf[r.pos : r.pos+4])
	r.pos += 4
	return v, nil
}

// ReadU64 consumes eight big-endian bytes.
func (r *Reader) ReadU64() (uint64, error) {
	if err := r.require(8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(r.buf[r.pos : r.pos+8])
	r.pos += 8
	return v, nil
}

// ReadI32 consumes a u32 and reinterprets it as two's-complement.
func (r *Reader) ReadI32() (int32, error) {
	v, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// ReadArray consumes exactly n bytes and returns an owned copy.
func (r *Reader) ReadArray(n int) ([]byte, error) {
	if err := r.require(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, r.buf[r.pos:r.pos+n])
	r.pos += n
	return out, nil
}

// ReadSlice consumes n bytes and returns a borrowed view into the original
// buffer. Callers that retain the result beyond the lifetime of the
// decode's input buffer must copy it themselves.
func (r *Reader) ReadSlice(n int) ([]byte, error) {
	if err := r.require(n); err != nil {
		return nil, err
	}
	v := r.buf[r.pos : r.pos+n]
	r.pos += n
	return v, nil
}

// ReadBool reads one byte; true iff the byte equals 1. Any other value,
// including 0, decodes to false — this matches RFC 2132/3315 wire usage in
// the field and is a deliberately tested property, not a bug.
func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadU8()
	if err != nil {
		return false, err
	}
	return v == 1, nil
}

// ReadString consumes n bytes and validates them as UTF-8.
func (r *Reader) ReadString(n int) (string, error) {
	start := r.pos
	b, err := r.ReadSlice(n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errors.Wrapf(ErrUTF8, "at index %d", start)
	}
	return string(b), nil
}

// ReadNulBytes consumes exactly max bytes. If the first byte is zero, or no
// nul terminator appears in the field, it returns (nil, false, nil) — "no
// value present". Otherwise it returns the bytes up to and including the
// first zero, and true.
func (r *Reader) ReadNulBytes(max int) ([]byte, bool, error) {
	b, err := r.ReadArray(max)
	if err != nil {
		return nil, false, err
	}
	idx := bytes.IndexByte(b, 0)
	if idx <= 0 {
		return nil, false, nil
	}
	return b[:idx+1], true, nil
}

// ReadIPv4 consumes a single 4-byte IPv4 address. n must equal 4.
func (r *Reader) ReadIPv4(n int) (net.IP, error) {
	if n != 4 {
		return nil, notEnoughBytes("ipv4 address must be exactly 4 bytes")
	}
	b, err := r.ReadArray(4)
	if err != nil {
		return nil, err
	}
	return net.IP(b), nil
}

// ReadIPv4s consumes n bytes, a multiple of 4, as a list of IPv4 addresses.
func (r *Reader) ReadIPv4s(n int) ([]net.IP, error) {
	if n%4 != 0 {
		return nil, notEnoughBytes("ipv4 list length must be a multiple of 4")
	}
	b, err := r.ReadArray(n)
	if err != nil {
		return nil, err
	}
	out := make([]net.IP, 0, n/4)
	for i := 0; i < n; i += 4 {
		out = append(out, net.IP(b[i:i+4]))
	}
	return out, nil
}

// ReadIPv6s consumes n bytes, a multiple of 16, as a list of IPv6 addresses.
func (r *Reader) ReadIPv6s(n int) ([]net.IP, error) {
	if n%16 != 0 {
		return nil, notEnoughBytes("ipv6 list length must be a multiple of 16")
	}
	b, err := r.ReadArray(n)
	if err != nil {
		return nil, err
	}
	out := make([]net.IP, 0, n/16)
	for i := 0; i < n; i += 16 {
		out = append(out, net.IP(b[i:i+16]))
	}
	return out, nil
}

// IPv4Pair is a (network, next-hop) pair as used by PolicyFilter and
// StaticRoutingTable.
type IPv4Pair struct {
	Network, NextHop net.IP
}

// ReadPairIPv4 consumes n bytes, a multiple of 8, as a list of IPv4 pairs.
func (r *Reader) ReadPairIPv4(n int) ([]IPv4Pair, error) {
	if n%8 != 0 {
		return nil, notEnoughBytes("ipv4 pair list length must be a multiple of 8")
	}
	b, err := r.ReadArray(n)
	if err != nil {
		return nil, err
	}
	out := make([]IPv4Pair, 0, n/8)
	for i := 0; i < n; i += 8 {
		out = append(out, IPv4Pair{
			Network: net.IP(b[i : i+4]),
			NextHop: net.IP(b[i+4 : i+8]),
		})
	}
	return out, nil
}

// ReadDomains treats the next n bytes as a bounded region and repeatedly
// decodes RFC 1035 domain names (with pointer compression resolved within
// that region) until the region is exhausted.
func (r *Reader) ReadDomains(n int) ([]string, error) {
	region, err := r.ReadSlice(n)
	if err != nil {
		return nil, err
	}
	var names []string
	offset := 0
	for offset < len(region) {
		name, next, err := unpackDomainName(region, offset)
		if err != nil {
			return names, err
		}
		names = append(names, name)
		offset = next
	}
	return names, nil
}

// PeekU8 returns the next byte without advancing the cursor.
func (r *Reader) PeekU8() (uint8, error) {
	if err := r.require(1); err != nil {
		return 0, err
	}
	return r.buf[r.pos], nil
}

// Peek returns the next n bytes without advancing the cursor.
func (r *Reader) Peek(n int) ([]byte, error) {
	if err := r.require(n); err != nil {
		return nil, err
	}
	return r.buf[r.pos : r.pos+n], nil
}

// Sub returns a new Reader bounded to the next n bytes, advancing this
// Reader past them. Used to hand a nested option region (IA_NA, VendorOpts,
// RelayAgentInformation, ...) its own cursor without risking it reading
// past its declared length.
func (r *Reader) Sub(n int) (*Reader, error) {
	b, err := r.ReadSlice(n)
	if err != nil {
		return nil, err
	}
	return NewReader(b), nil
}
