package dhcpv4

import (
	"sort"

	"github.com/go-dhcp/dhcpwire/wire"
)

// OptionSet holds the decoded options of a message, keyed by code. At
// most one option of each code is kept; RFC 3396 concatenation happens
// transparently during Decode so a logically oversized option is never
// split across more than one Option value.
type OptionSet struct {
	byCode map[Code]Option
	order  []Code
}

// NewOptionSet returns an empty OptionSet.
func NewOptionSet() *OptionSet {
	return &OptionSet{byCode: make(map[Code]Option)}
}

// Get returns the option stored under code, or nil if absent.
func (s *OptionSet) Get(code Code) Option {
	return s.byCode[code]
}

// Insert stores opt, replacing any existing option of the same code.
// Insertion order is preserved for first-seen codes; re-inserting an
// existing code does not move it.
func (s *OptionSet) Insert(opt Option) {
	if s.byCode == nil {
		s.byCode = make(map[Code]Option)
	}
	code := opt.Code()
	if _, exists := s.byCode[code]; !exists {
		s.order = append(s.order, code)
	}
	s.byCode[code] = opt
}

// Remove deletes the option stored under code, if any.
func (s *OptionSet) Remove(code Code) {
	if _, ok := s.byCode[code]; !ok {
		return
	}
	delete(s.byCode, code)
	for i, c := range s.order {
		if c == code {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Len reports the number of distinct option codes stored.
func (s *OptionSet) Len() int { return len(s.order) }

// Codes returns the stored codes in ascending numeric order, matching
// the container's general iteration contract.
func (s *OptionSet) Codes() []Code {
	out := make([]Code, len(s.order))
	copy(out, s.order)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// MessageType is a convenience accessor for the common case of reading
// the message type option.
func (s *OptionSet) MessageType() (MessageType, bool) {
	opt, ok := s.byCode[CodeMessageType].(*MessageTypeOption)
	if !ok {
		return 0, false
	}
	return opt.Value, true
}

// Encode serializes every stored option as one or more TLVs in ascending
// code order, splitting any value over 255 bytes into consecutive
// same-code chunks per RFC 3396, and appends the terminating End option.
// RelayAgentInformation is always written immediately before End
// regardless of its numeric position, matching the convention that a
// relay's own injected option must be the last one a forwarding relay
// sees before the terminator.
func (s *OptionSet) Encode() ([]byte, error) {
	w := wire.NewWriter(0)

	sorted := make([]Code, len(s.order))
	copy(sorted, s.order)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var relay Option
	for _, code := range sorted {
		if code == CodeRelayAgentInformation {
			relay = s.byCode[code]
			continue
		}
		if err := encodeOptionTLV(w, s.byCode[code]); err != nil {
			return nil, err
		}
	}
	if relay != nil {
		if err := encodeOptionTLV(w, relay); err != nil {
			return nil, err
		}
	}
	if err := w.WriteU8(uint8(CodeEnd)); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func encodeOptionTLV(w *wire.Writer, opt Option) error {
	val, err := opt.Value()
	if err != nil {
		return err
	}
	if len(val) == 0 {
		if err := w.WriteU8(uint8(opt.Code())); err != nil {
			return err
		}
		return w.WriteU8(0)
	}
	for len(val) > 0 {
		chunk := val
		if len(chunk) > 255 {
			chunk = val[:255]
		}
		if err := w.WriteU8(uint8(opt.Code())); err != nil {
			return err
		}
		if err := w.WriteU8(uint8(len(chunk))); err != nil {
			return err
		}
		if err := w.WriteBytes(chunk); err != nil {
			return err
		}
		val = val[len(chunk):]
	}
	return nil
}

// DecodeOptionSet reads options from r until End or the buffer is
// exhausted, concatenating consecutive same-code TLVs per RFC 3396
// before decoding each accumulated value once. On failure it returns the
// options decoded before the error together with that error.
func DecodeOptionSet(r *wire.Reader) (*OptionSet, error) {
	set := NewOptionSet()

	var pendingCode Code
	var pendingData []byte
	havePending := false

	flush := func() error {
		if !havePending {
			return nil
		}
		opt, err := decodeOption(pendingCode, pendingData)
		if err != nil {
			return err
		}
		set.Insert(opt)
		havePending = false
		pendingData = nil
		return nil
	}

	for r.Len() > 0 {
		codeByte, err := r.PeekU8()
		if err != nil {
			return set, err
		}
		code := Code(codeByte)

		if code == CodeEnd {
			r.ReadU8() //nolint:errcheck // just peeked
			if err := flush(); err != nil {
				return set, err
			}
			return set, nil
		}
		if code == CodePad {
			r.ReadU8() //nolint:errcheck // just peeked
			if err := flush(); err != nil {
				return set, err
			}
			continue
		}

		r.ReadU8() //nolint:errcheck // just peeked
		length, err := r.ReadU8()
		if err != nil {
			return set, err
		}
		value, err := r.ReadArray(int(length))
		if err != nil {
			return set, err
		}

		switch {
		case havePending && code == pendingCode:
			pendingData = append(pendingData, value...)
		case havePending:
			if err := flush(); err != nil {
				return set, err
			}
			pendingCode, pendingData, havePending = code, value, true
		default:
			pendingCode, pendingData, havePending = code, value, true
		}
	}

	if err := flush(); err != nil {
		return set, err
	}
	return set, nil
}
