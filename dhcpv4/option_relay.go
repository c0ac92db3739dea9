package dhcpv4

import (
	"fmt"
	"net"

	"github.com/pkg/errors"

	"github.com/go-dhcp/dhcpwire/wire"
)

// RelayCode identifies a Relay Agent Information sub-option (RFC 3046
// and its extensions).
type RelayCode uint8

const (
	RelayCodeAgentCircuitID           RelayCode = 1
	RelayCodeAgentRemoteID            RelayCode = 2
	RelayCodeDocsisDeviceClass        RelayCode = 4
	RelayCodeLinkSelection            RelayCode = 5
	RelayCodeSubscriberID             RelayCode = 6
	RelayCodeRadiusAttributes         RelayCode = 7
	RelayCodeAuthentication           RelayCode = 8
	RelayCodeVendorSpecificInfo       RelayCode = 9
	RelayCodeRelayAgentFlags          RelayCode = 10
	RelayCodeServerIdentifierOverride RelayCode = 11
	RelayCodeVirtualSubnet            RelayCode = 151
	RelayCodeVirtualSubnetControl     RelayCode = 152
)

var relayCodeNames = map[RelayCode]string{
	RelayCodeAgentCircuitID:           "AgentCircuitID",
	RelayCodeAgentRemoteID:            "AgentRemoteID",
	RelayCodeDocsisDeviceClass:        "DocsisDeviceClass",
	RelayCodeLinkSelection:            "LinkSelection",
	RelayCodeSubscriberID:             "SubscriberID",
	RelayCodeRadiusAttributes:         "RadiusAttributes",
	RelayCodeAuthentication:           "Authentication",
	RelayCodeVendorSpecificInfo:       "VendorSpecificInformation",
	RelayCodeRelayAgentFlags:          "RelayAgentFlags",
	RelayCodeServerIdentifierOverride: "ServerIdentifierOverride",
	RelayCodeVirtualSubnet:            "VirtualSubnet",
	RelayCodeVirtualSubnetControl:     "VirtualSubnetControl",
}

func (c RelayCode) String() string {
	if name, ok := relayCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", uint8(c))
}

// RelayFlags is the one-byte flag field of RelayAgentFlags (RFC 5010).
type RelayFlags uint8

// Unicast reports whether the relay is asking the server to unicast
// its reply rather than broadcast it.
func (f RelayFlags) Unicast() bool { return f&0x80 != 0 }

func (f RelayFlags) SetUnicast() RelayFlags { return f | 0x80 }

// RelaySubOption is one TLV nested inside a RelayAgentInformation
// option.
type RelaySubOption interface {
	Code() RelayCode
	String() string
	Value() ([]byte, error)
}

// RelayBytesOption carries an opaque sub-option payload (circuit ID,
// remote ID, subscriber ID).
type RelayBytesOption struct {
	code RelayCode
	Data []byte
}

func (o *RelayBytesOption) Code() RelayCode { return o.code }
func (o *RelayBytesOption) String() string  { return fmt.Sprintf("%s: % x", o.code, o.Data) }
func (o *RelayBytesOption) Value() ([]byte, error) {
	return o.Data, nil
}

// RelayIPv4Option carries a single IPv4 address sub-option (link
// selection, server identifier override).
type RelayIPv4Option struct {
	code RelayCode
	IP   net.IP
}

func (o *RelayIPv4Option) Code() RelayCode { return o.code }
func (o *RelayIPv4Option) String() string  { return fmt.Sprintf("%s: %s", o.code, o.IP) }
func (o *RelayIPv4Option) Value() ([]byte, error) {
	w := wire.NewWriter(4)
	if err := w.WriteIPv4(o.IP); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// RelayDocsisDeviceClassOption carries the DOCSIS device class bitmask
// sub-option.
type RelayDocsisDeviceClassOption struct {
	Value uint32
}

func (o *RelayDocsisDeviceClassOption) Code() RelayCode { return RelayCodeDocsisDeviceClass }
func (o *RelayDocsisDeviceClassOption) String() string {
	return fmt.Sprintf("DocsisDeviceClass: %#x", o.Value)
}
func (o *RelayDocsisDeviceClassOption) Value() ([]byte, error) {
	w := wire.NewWriter(4)
	if err := w.WriteU32(o.Value); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// RelayFlagsOption carries the RelayAgentFlags sub-option.
type RelayFlagsOption struct {
	Flags RelayFlags
}

func (o *RelayFlagsOption) Code() RelayCode { return RelayCodeRelayAgentFlags }
func (o *RelayFlagsOption) String() string  { return fmt.Sprintf("RelayAgentFlags: unicast=%t", o.Flags.Unicast()) }
func (o *RelayFlagsOption) Value() ([]byte, error) {
	return []byte{uint8(o.Flags)}, nil
}

// RelayUnknownOption preserves an unrecognized sub-option's raw bytes.
type RelayUnknownOption struct {
	code RelayCode
	Data []byte
}

func (o *RelayUnknownOption) Code() RelayCode { return o.code }
func (o *RelayUnknownOption) String() string  { return fmt.Sprintf("%s: % x", o.code, o.Data) }
func (o *RelayUnknownOption) Value() ([]byte, error) {
	return o.Data, nil
}

// RelayAgentInformationOption is option 82: a nested TLV container
// relays use to attach circuit/remote identification to a forwarded
// request, unwrapped by the server and (minus the injected options)
// echoed back in the reply.
type RelayAgentInformationOption struct {
	SubOptions []RelaySubOption
}

func (o *RelayAgentInformationOption) Code() Code { return CodeRelayAgentInformation }
func (o *RelayAgentInformationOption) String() string {
	return fmt.Sprintf("RelayAgentInformation: %v", o.SubOptions)
}
func (o *RelayAgentInformationOption) Value() ([]byte, error) {
	w := wire.NewWriter(0)
	for _, sub := range o.SubOptions {
		val, err := sub.Value()
		if err != nil {
			return nil, err
		}
		if len(val) > 255 {
			return nil, errors.Errorf("relay sub-option %s value exceeds 255 bytes", sub.Code())
		}
		if err := w.WriteU8(uint8(sub.Code())); err != nil {
			return nil, err
		}
		if err := w.WriteU8(uint8(len(val))); err != nil {
			return nil, err
		}
		if err := w.WriteBytes(val); err != nil {
			return nil, err
		}
	}
	return w.Bytes(), nil
}

func decodeRelayOptions(data []byte) ([]RelaySubOption, error) {
	r := wire.NewReader(data)
	var subs []RelaySubOption
	for r.Len() > 0 {
		code, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		n, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		val, err := r.ReadArray(int(n))
		if err != nil {
			return nil, errors.Wrapf(err, "relay sub-option %d", code)
		}

		rc := RelayCode(code)
		switch rc {
		case RelayCodeAgentCircuitID, RelayCodeAgentRemoteID, RelayCodeSubscriberID:
			subs = append(subs, &RelayBytesOption{code: rc, Data: val})
		case RelayCodeLinkSelection, RelayCodeServerIdentifierOverride:
			ip, err := wire.NewReader(val).ReadIPv4(len(val))
			if err != nil {
				return nil, errors.Wrapf(err, "relay sub-option %s", rc)
			}
			subs = append(subs, &RelayIPv4Option{code: rc, IP: ip})
		case RelayCodeDocsisDeviceClass:
			v, err := wire.NewReader(val).ReadU32()
			if err != nil {
				return nil, errors.Wrapf(err, "relay sub-option %s", rc)
			}
			subs = append(subs, &RelayDocsisDeviceClassOption{Value: v})
		case RelayCodeRelayAgentFlags:
			if len(val) != 1 {
				return nil, errors.Errorf("relay agent flags sub-option length %d, want 1", len(val))
			}
			subs = append(subs, &RelayFlagsOption{Flags: RelayFlags(val[0])})
		case RelayCodeRadiusAttributes, RelayCodeAuthentication, RelayCodeVendorSpecificInfo,
			RelayCodeVirtualSubnet, RelayCodeVirtualSubnetControl:
			// named sub-options without a typed payload definition yet;
			// keep the raw bytes under their real code.
			subs = append(subs, &RelayUnknownOption{code: rc, Data: val})
		default:
			subs = append(subs, &RelayUnknownOption{code: rc, Data: val})
		}
	}
	return subs, nil
}
