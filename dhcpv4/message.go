package dhcpv4

import (
	"crypto/rand"
	"encoding/binary"
	"net"

	"github.com/pkg/errors"

	"github.com/go-dhcp/dhcpwire/wire"
)

// MagicCookie is the four bytes (RFC 2131 §3) that mark the start of the
// options area, distinguishing DHCP from plain BOOTP.
var MagicCookie = [4]byte{99, 130, 83, 99}

// Op is the BOOTP message op code (the first byte of the header).
type Op uint8

const (
	OpBootRequest Op = 1
	OpBootReply   Op = 2
)

func (o Op) String() string {
	switch o {
	case OpBootRequest:
		return "BOOTREQUEST"
	case OpBootReply:
		return "BOOTREPLY"
	default:
		return "Unknown"
	}
}

const (
	flagBroadcast = 0x8000

	chaddrLen = 16
	snameLen  = 64
	fileLen   = 128
	// headerLen is the fixed BOOTP header: op,htype,hlen,hops(4) + xid(4) +
	// secs,flags(4) + ciaddr,yiaddr,siaddr,giaddr(16) + chaddr(16) +
	// sname(64) + file(128) = 236 bytes, before the magic cookie and options.
	headerLen = 236
)

// Message is a DHCPv4 packet: the fixed 236-byte BOOTP header plus the
// magic cookie and a variable-length option area (RFC 2131, RFC 2132).
type Message struct {
	Op           Op
	HType        uint8
	HLen         uint8
	Hops         uint8
	Xid          uint32
	Secs         uint16
	Broadcast    bool
	ClientAddr   net.IP // ciaddr
	YourAddr     net.IP // yiaddr
	ServerAddr   net.IP // siaddr
	GatewayAddr  net.IP // giaddr
	ClientHWAddr net.HardwareAddr
	ServerName   string
	BootFile     string
	Options      *OptionSet
}

// NewMessage returns a BOOTREQUEST Message with a random transaction ID
// and an empty option set, ready for the caller to populate.
func NewMessage() (*Message, error) {
	var xidBytes [4]byte
	if _, err := rand.Read(xidBytes[:]); err != nil {
		return nil, errors.Wrap(err, "generate transaction id")
	}
	return &Message{
		Op:         OpBootRequest,
		HType:      1, // ethernet
		HLen:       6,
		ClientAddr: net.IPv4zero,
		YourAddr:   net.IPv4zero,
		ServerAddr: net.IPv4zero,
		GatewayAddr: net.IPv4zero,
		Xid:        binary.BigEndian.Uint32(xidBytes[:]),
		Options:    NewOptionSet(),
	}, nil
}

// SetClientHWAddr stores addr as the chaddr field, truncating to the
// 16-byte field width and setting HLen to its length.
func (m *Message) SetClientHWAddr(addr net.HardwareAddr) {
	if len(addr) > chaddrLen {
		addr = addr[:chaddrLen]
	}
	m.ClientHWAddr = addr
	m.HLen = uint8(len(addr))
}

// Encode serializes the header, magic cookie and options to wire bytes.
// ServerName and BootFile are zero-padded to their field widths; if
// either is too long to fit, Encode fails with a *wire.StringTooLongError
// rather than silently truncating a value the caller may act on.
func (m *Message) Encode() ([]byte, error) {
	w := wire.NewWriter(headerLen + 4 + 64)

	if err := w.WriteU8(uint8(m.Op)); err != nil {
		return nil, err
	}
	if err := w.WriteU8(m.HType); err != nil {
		return nil, err
	}
	if err := w.WriteU8(m.HLen); err != nil {
		return nil, err
	}
	if err := w.WriteU8(m.Hops); err != nil {
		return nil, err
	}
	if err := w.WriteU32(m.Xid); err != nil {
		return nil, err
	}
	if err := w.WriteU16(m.Secs); err != nil {
		return nil, err
	}
	flags := uint16(0)
	if m.Broadcast {
		flags = flagBroadcast
	}
	if err := w.WriteU16(flags); err != nil {
		return nil, err
	}
	for _, ip := range []net.IP{m.ClientAddr, m.YourAddr, m.ServerAddr, m.GatewayAddr} {
		if ip == nil {
			ip = net.IPv4zero
		}
		if err := w.WriteIPv4(ip); err != nil {
			return nil, err
		}
	}
	if err := w.WriteFill(m.ClientHWAddr, chaddrLen); err != nil {
		return nil, err
	}
	if err := w.WriteFill([]byte(m.ServerName), snameLen); err != nil {
		return nil, err
	}
	if err := w.WriteFill([]byte(m.BootFile), fileLen); err != nil {
		return nil, err
	}
	if err := w.WriteBytes(MagicCookie[:]); err != nil {
		return nil, err
	}

	opts := m.Options
	if opts == nil {
		opts = NewOptionSet()
	}
	optBytes, err := opts.Encode()
	if err != nil {
		return nil, errors.Wrap(err, "encode options")
	}
	if err := w.WriteBytes(optBytes); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// DecodeOptions controls how strictly Decode validates the magic cookie.
type DecodeOptions struct {
	// Lenient, when true, accepts a mismatched magic cookie (its four
	// bytes are skipped) or a message too short to carry one, and decodes
	// the bytes that follow as options instead of failing. Some captured BOOTP-only traffic predates RFC 1497 and
	// carries no cookie at all.
	Lenient bool
}

// Decode parses a wire-format DHCPv4 message. By default the magic
// cookie must be present and correct; pass opts.Lenient to relax that.
func Decode(data []byte, opts *DecodeOptions) (*Message, error) {
	if opts == nil {
		opts = &DecodeOptions{}
	}
	r := wire.NewReader(data)
	if r.Len() < headerLen {
		return nil, errors.Wrap(wire.ErrNotEnoughBytes, "message shorter than BOOTP header")
	}

	m := &Message{}

	op, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	m.Op = Op(op)

	if m.HType, err = r.ReadU8(); err != nil {
		return nil, err
	}
	if m.HLen, err = r.ReadU8(); err != nil {
		return nil, err
	}
	if m.Hops, err = r.ReadU8(); err != nil {
		return nil, err
	}
	if m.Xid, err = r.ReadU32(); err != nil {
		return nil, err
	}
	if m.Secs, err = r.ReadU16(); err != nil {
		return nil, err
	}
	flags, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	m.Broadcast = flags&flagBroadcast != 0

	if m.ClientAddr, err = r.ReadIPv4(4); err != nil {
		return nil, err
	}
	if m.YourAddr, err = r.ReadIPv4(4); err != nil {
		return nil, err
	}
	if m.ServerAddr, err = r.ReadIPv4(4); err != nil {
		return nil, err
	}
	if m.GatewayAddr, err = r.ReadIPv4(4); err != nil {
		return nil, err
	}

	chaddr, err := r.ReadArray(chaddrLen)
	if err != nil {
		return nil, err
	}
	hlen := int(m.HLen)
	if hlen > chaddrLen {
		hlen = chaddrLen
	}
	m.ClientHWAddr = net.HardwareAddr(chaddr[:hlen])

	snameBytes, present, err := r.ReadNulBytes(snameLen)
	if err != nil {
		return nil, err
	}
	if present {
		m.ServerName = string(snameBytes[:len(snameBytes)-1])
	}

	fileBytes, present, err := r.ReadNulBytes(fileLen)
	if err != nil {
		return nil, err
	}
	if present {
		m.BootFile = string(fileBytes[:len(fileBytes)-1])
	}

	if r.Len() >= 4 {
		cookie, err := r.Peek(4)
		if err != nil {
			return nil, err
		}
		if cookie[0] == MagicCookie[0] && cookie[1] == MagicCookie[1] &&
			cookie[2] == MagicCookie[2] && cookie[3] == MagicCookie[3] {
			if _, err := r.ReadArray(4); err != nil {
				return nil, err
			}
		} else if !opts.Lenient {
			return nil, &wire.InvalidDataError{Value: cookie, Reason: "magic cookie mismatch"}
		} else if _, err := r.ReadArray(4); err != nil {
			return nil, err
		}
	} else if !opts.Lenient {
		return nil, errors.Wrap(wire.ErrNotEnoughBytes, "message too short for magic cookie")
	}

	optSet, err := DecodeOptionSet(r)
	if err != nil {
		return nil, errors.Wrap(err, "decode options")
	}
	m.Options = optSet

	return m, nil
}
