package wire

import (
	"strings"

	"github.com/pkg/errors"
)

// maxDomainJumps bounds the number of compression-pointer hops followed
// while unpacking a single name, guarding against pointer cycles.
const maxDomainJumps = 128

// PackDomainName encodes name (an absolute or bare domain, trailing dot
// optional) as RFC 1035 length-prefixed labels terminated by a zero byte.
// Names this module writes never reference compression pointers — nothing
// in the option set benefits from the space saving, and always emitting
// literal labels keeps encode output independent of anything written
// earlier in the buffer.
func PackDomainName(name string) ([]byte, error) {
	name = strings.TrimSuffix(name, ".")
	var out []byte
	if name != "" {
		for _, label := range strings.Split(name, ".") {
			if len(label) == 0 {
				return nil, errors.Wrap(ErrDomainEncode, "empty label")
			}
			if len(label) > 63 {
				return nil, errors.Wrap(ErrDomainEncode, "label exceeds 63 bytes")
			}
			out = append(out, byte(len(label)))
			out = append(out, label...)
		}
	}
	out = append(out, 0)
	return out, nil
}

// PackDomainNames encodes a sequence of domain names back to back, as used
// by DomainSearchList and similar list-of-name options.
func PackDomainNames(names []string) ([]byte, error) {
	var out []byte
	for _, name := range names {
		b, err := PackDomainName(name)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

// unpackDomainName decodes one RFC 1035 name starting at offset within
// region, resolving compression pointers that must target an earlier
// position within region. It returns the decoded name (with a trailing
// dot, e.g. "www.example.com."), and the offset immediately following the
// name as it appeared linearly in region (i.e. not following any pointer
// jump) so the caller can continue decoding sibling names.
func unpackDomainName(region []byte, offset int) (string, int, error) {
	var labels []string
	pos := offset
	jumped := false
	next := offset
	jumps := 0

	for {
		if pos >= len(region) {
			return "", 0, endOfBufferAt(pos)
		}
		lengthByte := region[pos]

		if lengthByte == 0 {
			pos++
			if !jumped {
				next = pos
			}
			break
		}

		if lengthByte&0xC0 == 0xC0 {
			if pos+1 >= len(region) {
				return "", 0, endOfBufferAt(pos + 1)
			}
			ptr := int(lengthByte&0x3F)<<8 | int(region[pos+1])
			before := pos
			if !jumped {
				next = pos + 2
			}
			jumps++
			if jumps > maxDomainJumps || ptr >= before {
				return "", 0, errors.Wrap(ErrDomainEncode, "invalid compression pointer")
			}
			pos = ptr
			jumped = true
			continue
		}

		if lengthByte&0xC0 != 0 {
			return "", 0, errors.Wrap(ErrDomainEncode, "reserved label length bits set")
		}

		labelLen := int(lengthByte)
		pos++
		if pos+labelLen > len(region) {
			return "", 0, endOfBufferAt(pos)
		}
		labels = append(labels, string(region[pos:pos+labelLen]))
		pos += labelLen
	}

	if len(labels) == 0 {
		return ".", next, nil
	}
	return strings.Join(labels, ".") + ".", next, nil
}
