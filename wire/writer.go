package wire

import (
	"encoding/binary"
	"net"
)

// Writer is a growable byte sink. Writes append big-endian bytes, grow the
// buffer as needed, and advance the offset. Like Reader, it is strictly
// linear: there is no seeking or rewriting of already-written bytes.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer. size is a capacity hint, not a limit.
func NewWriter(size int) *Writer {
	return &Writer{buf: make([]byte, 0, size)}
}

// Bytes returns the accumulated buffer. The caller must not retain it
// across further writes.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// WriteU8 appends one byte.
func (w *Writer) WriteU8(v uint8) error {
	w.buf = append(w.buf, v)
	return nil
}

// WriteU16 appends two big-endian bytes.
func (w *Writer) WriteU16(v uint16) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	w.buf = append(w.buf, b[:]...)
	return nil
}

// WriteU32 appends four big-endian bytes.
func (w *Writer) WriteU32(v uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
	return nil
}

// WriteU64 appends eight big-endian bytes.
func (w *Writer) WriteU64(v uint64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf = append(w.buf, b[:]...)
	return nil
}

// WriteI32 appends a signed 32-bit value as its two's-complement bit
// pattern, big-endian.
func (w *Writer) WriteI32(v int32) error {
	return w.WriteU32(uint32(v))
}

// WriteBool appends 1 for true, 0 for false.
func (w *Writer) WriteBool(v bool) error {
	if v {
		return w.WriteU8(1)
	}
	return w.WriteU8(0)
}

// WriteBytes appends b verbatim.
func (w *Writer) WriteBytes(b []byte) error {
	w.buf = append(w.buf, b...)
	return nil
}

// WriteIPv4 appends the 4-byte form of ip, failing if ip is not a valid
// IPv4 address.
func (w *Writer) WriteIPv4(ip net.IP) error {
	v4 := ip.To4()
	if v4 == nil {
		return &InvalidDataError{Value: ip, Reason: "not a valid IPv4 address"}
	}
	return w.WriteBytes(v4)
}

// WriteIPv6 appends the 16-byte form of ip, failing if ip is not a valid
// IPv6 address.
func (w *Writer) WriteIPv6(ip net.IP) error {
	v6 := ip.To16()
	if v6 == nil || ip.To4() != nil {
		return &InvalidDataError{Value: ip, Reason: "not a valid IPv6 address"}
	}
	return w.WriteBytes(v6)
}

// WriteFill writes data padded with zeros to exactly width bytes, failing
// if data is longer than width.
func (w *Writer) WriteFill(data []byte, width int) error {
	if len(data) > width {
		return &StringTooLongError{Len: len(data), Width: width}
	}
	w.buf = append(w.buf, data...)
	if pad := width - len(data); pad > 0 {
		w.buf = append(w.buf, make([]byte, pad)...)
	}
	return nil
}
