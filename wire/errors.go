// Package wire provides the byte-level primitives shared by the dhcpv4 and
// dhcpv6 codecs: a linear, bounds-checked reader and writer and the RFC 1035
// domain name packing routines both option sets need.
package wire

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors making up the decode/encode failure taxonomy. Callers
// should compare against these with errors.Is rather than string-matching,
// since every returned error is wrapped with positional context via
// github.com/pkg/errors.
var (
	// ErrEndOfBuffer is returned when a read would consume more bytes than
	// remain in the buffer.
	ErrEndOfBuffer = errors.New("end of buffer")
	// ErrNotEnoughBytes is returned when a length-prefixed field's declared
	// length fails a semantic constraint (e.g. "multiple of 4").
	ErrNotEnoughBytes = errors.New("not enough bytes")
	// ErrUTF8 is returned when a field declared as UTF-8 contains invalid
	// bytes.
	ErrUTF8 = errors.New("invalid utf8 data")
	// ErrSliceConversion is returned when a fixed-width conversion fails.
	ErrSliceConversion = errors.New("slice conversion failed")
	// ErrURLParse is returned when a CaptivePortal payload isn't a
	// syntactically valid absolute URL.
	ErrURLParse = errors.New("invalid url")
	// ErrDomainEncode is returned when RFC 1035 name encoding fails.
	ErrDomainEncode = errors.New("domain name encode failed")
	// ErrAddOverflow is returned on integer overflow in writer offset
	// arithmetic.
	ErrAddOverflow = errors.New("writer offset overflow")
)

// StringTooLongError is returned by Writer.WriteFill when a value is wider
// than the field it's being padded into.
type StringTooLongError struct {
	Len   int
	Width int
}

func (e *StringTooLongError) Error() string {
	return fmt.Sprintf("value of %d bytes does not fit field of width %d", e.Len, e.Width)
}

// InvalidDataError reports a semantic mismatch at a decode choice point,
// e.g. a reserved-only sub-option code or a mismatched magic cookie.
type InvalidDataError struct {
	Value  interface{}
	Reason string
}

func (e *InvalidDataError) Error() string {
	return fmt.Sprintf("invalid value %v: %s", e.Value, e.Reason)
}

func endOfBufferAt(index int) error {
	return errors.Wrapf(ErrEndOfBuffer, "index %d", index)
}

func notEnoughBytes(reason string) error {
	return errors.Wrap(ErrNotEnoughBytes, reason)
}
