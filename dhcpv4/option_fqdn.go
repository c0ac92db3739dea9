package dhcpv4

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/go-dhcp/dhcpwire/wire"
)

// FQDNFlags are the flag bits of the Client FQDN option (RFC 4702 §2.1).
type FQDNFlags uint8

// N: server must not perform a DNS update. E: the domain name field is
// encoded as RFC 1035 labels rather than ASCII. O: set by the server to
// tell the client it overrode the client's preference. S: the server
// should perform the forward (A/AAAA) update.
const (
	FQDNFlagN FQDNFlags = 0x08
	FQDNFlagE FQDNFlags = 0x04
	FQDNFlagO FQDNFlags = 0x02
	FQDNFlagS FQDNFlags = 0x01
)

func (f FQDNFlags) N() bool { return f&FQDNFlagN != 0 }
func (f FQDNFlags) E() bool { return f&FQDNFlagE != 0 }
func (f FQDNFlags) O() bool { return f&FQDNFlagO != 0 }
func (f FQDNFlags) S() bool { return f&FQDNFlagS != 0 }

func (f FQDNFlags) String() string {
	return fmt.Sprintf("N=%t E=%t O=%t S=%t", f.N(), f.E(), f.O(), f.S())
}

// ClientFQDNOption implements the Client FQDN option, option 81
// (RFC 4702). R1/R2 are the legacy RCODE bytes, fixed to 0xFF by
// senders that don't speak the pre-RFC encoding.
type ClientFQDNOption struct {
	Flags  FQDNFlags
	R1, R2 uint8
	Domain string
}

func (o *ClientFQDNOption) Code() Code { return CodeClientFQDN }
func (o *ClientFQDNOption) String() string {
	return fmt.Sprintf("ClientFQDN: %s domain=%q", o.Flags, o.Domain)
}

// Value encodes the option body. When the E bit is set the domain is
// written as RFC 1035 labels; otherwise it is written as a plain ASCII
// string with no terminator, matching what RFC 4702 calls the
// deprecated encoding still seen from some clients.
func (o *ClientFQDNOption) Value() ([]byte, error) {
	w := wire.NewWriter(3)
	if err := w.WriteU8(uint8(o.Flags)); err != nil {
		return nil, err
	}
	if err := w.WriteU8(o.R1); err != nil {
		return nil, err
	}
	if err := w.WriteU8(o.R2); err != nil {
		return nil, err
	}
	if o.Flags.E() {
		domain, err := wire.PackDomainName(o.Domain)
		if err != nil {
			return nil, err
		}
		if err := w.WriteBytes(domain); err != nil {
			return nil, err
		}
	} else {
		if err := w.WriteBytes([]byte(o.Domain)); err != nil {
			return nil, err
		}
	}
	return w.Bytes(), nil
}

func decodeClientFQDN(data []byte) (Option, error) {
	r := wire.NewReader(data)
	flagsByte, err := r.ReadU8()
	if err != nil {
		return nil, errors.Wrap(err, "fqdn flags")
	}
	r1, err := r.ReadU8()
	if err != nil {
		return nil, errors.Wrap(err, "fqdn r1")
	}
	r2, err := r.ReadU8()
	if err != nil {
		return nil, errors.Wrap(err, "fqdn r2")
	}
	flags := FQDNFlags(flagsByte)

	rest, err := r.ReadArray(r.Len())
	if err != nil {
		return nil, errors.Wrap(err, "fqdn domain")
	}

	var domain string
	if flags.E() {
		names, err := wire.NewReader(rest).ReadDomains(len(rest))
		if err != nil {
			return nil, errors.Wrap(err, "fqdn domain labels")
		}
		if len(names) > 0 {
			domain = names[0]
		}
	} else {
		domain = string(rest)
	}

	return &ClientFQDNOption{Flags: flags, R1: r1, R2: r2, Domain: domain}, nil
}
