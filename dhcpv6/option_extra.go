package dhcpv6

import (
	"encoding/binary"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/go-dhcp/dhcpwire/wire"
)

// OptionIATA implements the Identity Association for Temporary Addresses
// option as described at https://tools.ietf.org/html/rfc3315#section-22.5
type OptionIATA struct {
	optionContainer
	IAID uint32
}

func (o OptionIATA) String() string {
	output := fmt.Sprintf("IA_TA IAID:%d", o.IAID)
	if len(o.options) > 0 {
		output += fmt.Sprintf(" %s", o.options)
	}
	return output
}

// Len returns the length in bytes of OptionIATA's body
func (o OptionIATA) Len() uint16 {
	return 4 + o.options.Len()
}

// Type returns OptionTypeIATA
func (o OptionIATA) Type() OptionType {
	return OptionTypeIATA
}

// Marshal returns byte slice representing this OptionIATA
func (o *OptionIATA) Marshal() ([]byte, error) {
	b := make([]byte, 8)
	binary.BigEndian.PutUint16(b[0:2], uint16(OptionTypeIATA))
	binary.BigEndian.PutUint16(b[2:4], o.Len())
	binary.BigEndian.PutUint32(b[4:8], o.IAID)
	if len(o.options) > 0 {
		optMarshal, err := o.options.Marshal()
		if err != nil {
			return nil, err
		}
		b = append(b, optMarshal...)
	}
	return b, nil
}

// OptionIAPD implements the Identity Association for Prefix Delegation
// option as described at https://tools.ietf.org/html/rfc3633#section-9
type OptionIAPD struct {
	optionContainer
	IAID uint32
	T1   time.Duration
	T2   time.Duration
}

func (o OptionIAPD) String() string {
	output := fmt.Sprintf("IA_PD IAID:%d T1:%s T2:%s", o.IAID, o.T1, o.T2)
	if len(o.options) > 0 {
		output += fmt.Sprintf(" %s", o.options)
	}
	return output
}

// Len returns the length in bytes of OptionIAPD's body
func (o OptionIAPD) Len() uint16 {
	return 12 + o.options.Len()
}

// Type returns OptionTypeIAPD
func (o OptionIAPD) Type() OptionType {
	return OptionTypeIAPD
}

// Marshal returns byte slice representing this OptionIAPD
func (o *OptionIAPD) Marshal() ([]byte, error) {
	b := make([]byte, 16)
	binary.BigEndian.PutUint16(b[0:2], uint16(OptionTypeIAPD))
	binary.BigEndian.PutUint16(b[2:4], o.Len())
	binary.BigEndian.PutUint32(b[4:8], o.IAID)
	binary.BigEndian.PutUint32(b[8:12], uint32(o.T1/time.Second))
	binary.BigEndian.PutUint32(b[12:16], uint32(o.T2/time.Second))
	if len(o.options) > 0 {
		optMarshal, err := o.options.Marshal()
		if err != nil {
			return nil, err
		}
		b = append(b, optMarshal...)
	}
	return b, nil
}

// OptionIAPrefix implements the IA_PD Prefix option as described at
// https://tools.ietf.org/html/rfc3633#section-10
type OptionIAPrefix struct {
	optionContainer
	PreferredLifetime time.Duration
	ValidLifetime     time.Duration
	PrefixLength      uint8
	Prefix            net.IP
}

func (o OptionIAPrefix) String() string {
	output := fmt.Sprintf("IA_PD-prefix %s/%d pltime:%s vltime:%s", o.Prefix, o.PrefixLength, o.PreferredLifetime, o.ValidLifetime)
	if len(o.options) > 0 {
		output += fmt.Sprintf(" %s", o.options)
	}
	return output
}

// Len returns the length in bytes of OptionIAPrefix's body
func (o OptionIAPrefix) Len() uint16 {
	// preferred lifetime (4), valid lifetime (4), prefix length (1), prefix (16)
	return 25 + o.options.Len()
}

// Type returns OptionTypeIAPrefix
func (o OptionIAPrefix) Type() OptionType {
	return OptionTypeIAPrefix
}

// Marshal returns byte slice representing this OptionIAPrefix
func (o *OptionIAPrefix) Marshal() ([]byte, error) {
	b := make([]byte, 29)
	binary.BigEndian.PutUint16(b[0:2], uint16(OptionTypeIAPrefix))
	binary.BigEndian.PutUint16(b[2:4], o.Len())
	binary.BigEndian.PutUint32(b[4:8], uint32(o.PreferredLifetime/time.Second))
	binary.BigEndian.PutUint32(b[8:12], uint32(o.ValidLifetime/time.Second))
	b[12] = o.PrefixLength
	copy(b[13:29], o.Prefix.To16())
	if len(o.options) > 0 {
		optMarshal, err := o.options.Marshal()
		if err != nil {
			return nil, err
		}
		b = append(b, optMarshal...)
	}
	return b, nil
}

// OptionVendorOpts implements the Vendor-specific Information option as
// described at https://tools.ietf.org/html/rfc3315#section-22.17
type OptionVendorOpts struct {
	optionContainer
	EnterpriseNumber uint32
}

func (o OptionVendorOpts) String() string {
	output := fmt.Sprintf("vendor-opts enterprise:%d", o.EnterpriseNumber)
	if len(o.options) > 0 {
		output += fmt.Sprintf(" %s", o.options)
	}
	return output
}

// Len returns the length in bytes of OptionVendorOpts's body
func (o OptionVendorOpts) Len() uint16 {
	return 4 + o.options.Len()
}

// Type returns OptionTypeVendorOption
func (o OptionVendorOpts) Type() OptionType {
	return OptionTypeVendorOption
}

// Marshal returns byte slice representing this OptionVendorOpts
func (o *OptionVendorOpts) Marshal() ([]byte, error) {
	b := make([]byte, 8)
	binary.BigEndian.PutUint16(b[0:2], uint16(OptionTypeVendorOption))
	binary.BigEndian.PutUint16(b[2:4], o.Len())
	binary.BigEndian.PutUint32(b[4:8], o.EnterpriseNumber)
	if len(o.options) > 0 {
		optMarshal, err := o.options.Marshal()
		if err != nil {
			return nil, err
		}
		b = append(b, optMarshal...)
	}
	return b, nil
}

// OptionInterfaceID implements the Interface-ID option as described at
// https://tools.ietf.org/html/rfc3315#section-22.18
type OptionInterfaceID struct {
	ID []byte
}

func (o OptionInterfaceID) String() string {
	return fmt.Sprintf("interface-id %x", o.ID)
}

// Len returns the length in bytes of OptionInterfaceID's body
func (o OptionInterfaceID) Len() uint16 {
	return uint16(len(o.ID))
}

// Type returns OptionTypeInterfaceID
func (o OptionInterfaceID) Type() OptionType {
	return OptionTypeInterfaceID
}

// Marshal returns byte slice representing this OptionInterfaceID
func (o OptionInterfaceID) Marshal() ([]byte, error) {
	b := make([]byte, 4)
	binary.BigEndian.PutUint16(b[0:2], uint16(OptionTypeInterfaceID))
	binary.BigEndian.PutUint16(b[2:4], o.Len())
	b = append(b, o.ID...)
	return b, nil
}

// OptionPreference implements the Preference option as described at
// https://tools.ietf.org/html/rfc3315#section-22.8
type OptionPreference struct {
	Value uint8
}

func (o OptionPreference) String() string {
	return fmt.Sprintf("preference %d", o.Value)
}

// Len returns the length in bytes of OptionPreference's body
func (o OptionPreference) Len() uint16 {
	return 1
}

// Type returns OptionTypePreference
func (o OptionPreference) Type() OptionType {
	return OptionTypePreference
}

// Marshal returns byte slice representing this OptionPreference
func (o OptionPreference) Marshal() ([]byte, error) {
	b := make([]byte, 5)
	binary.BigEndian.PutUint16(b[0:2], uint16(OptionTypePreference))
	binary.BigEndian.PutUint16(b[2:4], o.Len())
	b[4] = o.Value
	return b, nil
}

// OptionServerUnicast implements the Server Unicast option as described at
// https://tools.ietf.org/html/rfc3315#section-22.12
type OptionServerUnicast struct {
	Address net.IP
}

func (o OptionServerUnicast) String() string {
	return fmt.Sprintf("server-unicast %s", o.Address)
}

// Len returns the length in bytes of OptionServerUnicast's body
func (o OptionServerUnicast) Len() uint16 {
	return 16
}

// Type returns OptionTypeServerUnicast
func (o OptionServerUnicast) Type() OptionType {
	return OptionTypeServerUnicast
}

// Marshal returns byte slice representing this OptionServerUnicast
func (o OptionServerUnicast) Marshal() ([]byte, error) {
	b := make([]byte, 4)
	binary.BigEndian.PutUint16(b[0:2], uint16(OptionTypeServerUnicast))
	binary.BigEndian.PutUint16(b[2:4], o.Len())
	b = append(b, o.Address.To16()...)
	return b, nil
}

// OptionReconfigureMessage implements the Reconfigure Message option as
// described at https://tools.ietf.org/html/rfc3315#section-22.19
type OptionReconfigureMessage struct {
	MessageType MessageType
}

func (o OptionReconfigureMessage) String() string {
	return fmt.Sprintf("reconfigure-message %s", o.MessageType)
}

// Len returns the length in bytes of OptionReconfigureMessage's body
func (o OptionReconfigureMessage) Len() uint16 {
	return 1
}

// Type returns OptionTypeReconfigureMessage
func (o OptionReconfigureMessage) Type() OptionType {
	return OptionTypeReconfigureMessage
}

// Marshal returns byte slice representing this OptionReconfigureMessage
func (o OptionReconfigureMessage) Marshal() ([]byte, error) {
	b := make([]byte, 5)
	binary.BigEndian.PutUint16(b[0:2], uint16(OptionTypeReconfigureMessage))
	binary.BigEndian.PutUint16(b[2:4], o.Len())
	b[4] = uint8(o.MessageType)
	return b, nil
}

// OptionReconfigureAccept implements the Reconfigure Accept option as
// described at https://tools.ietf.org/html/rfc3315#section-22.20
// this option acts as a flag for the message carrying it and has no
// further contents
type OptionReconfigureAccept struct{}

func (o OptionReconfigureAccept) String() string {
	return "reconfigure-accept"
}

// Len returns the length in bytes of OptionReconfigureAccept's body
func (o OptionReconfigureAccept) Len() uint16 {
	return 0
}

// Type returns OptionTypeReconfigureAccept
func (o OptionReconfigureAccept) Type() OptionType {
	return OptionTypeReconfigureAccept
}

// Marshal returns byte slice representing this OptionReconfigureAccept
func (o OptionReconfigureAccept) Marshal() ([]byte, error) {
	b := make([]byte, 4)
	binary.BigEndian.PutUint16(b[0:2], uint16(OptionTypeReconfigureAccept))
	return b, nil
}

// OptionRelayMsg implements the Relay Message option as described at
// https://tools.ietf.org/html/rfc3315#section-22.10. Message carries the
// encapsulated DHCPv6 message bytes opaque to this option; callers wanting
// the decoded inner message pass Message to DecodeMessage or
// DecodeRelayMessage themselves.
type OptionRelayMsg struct {
	Message []byte
}

func (o OptionRelayMsg) String() string {
	return fmt.Sprintf("relay-message (%d bytes)", len(o.Message))
}

// Len returns the length in bytes of OptionRelayMsg's body
func (o OptionRelayMsg) Len() uint16 {
	return uint16(len(o.Message))
}

// Type returns OptionTypeRelayMessage
func (o OptionRelayMsg) Type() OptionType {
	return OptionTypeRelayMessage
}

// Marshal returns byte slice representing this OptionRelayMsg
func (o OptionRelayMsg) Marshal() ([]byte, error) {
	b := make([]byte, 4)
	binary.BigEndian.PutUint16(b[0:2], uint16(OptionTypeRelayMessage))
	binary.BigEndian.PutUint16(b[2:4], o.Len())
	b = append(b, o.Message...)
	return b, nil
}

// OptionAuth implements the Authentication option as described at
// https://tools.ietf.org/html/rfc3315#section-22.11. The HMAC/Kerberos
// authentication information itself is carried opaque in Info; computing
// or verifying it is outside this package's scope.
type OptionAuth struct {
	Protocol        uint8
	Algorithm       uint8
	RDM             uint8
	ReplayDetection [8]byte
	Info            []byte
}

func (o OptionAuth) String() string {
	return fmt.Sprintf("auth protocol:%d algorithm:%d rdm:%d", o.Protocol, o.Algorithm, o.RDM)
}

// Len returns the length in bytes of OptionAuth's body
func (o OptionAuth) Len() uint16 {
	return uint16(11 + len(o.Info))
}

// Type returns OptionTypeAuthentication
func (o OptionAuth) Type() OptionType {
	return OptionTypeAuthentication
}

// Marshal returns byte slice representing this OptionAuth
func (o OptionAuth) Marshal() ([]byte, error) {
	b := make([]byte, 15)
	binary.BigEndian.PutUint16(b[0:2], uint16(OptionTypeAuthentication))
	binary.BigEndian.PutUint16(b[2:4], o.Len())
	b[4] = o.Protocol
	b[5] = o.Algorithm
	b[6] = o.RDM
	copy(b[7:15], o.ReplayDetection[:])
	b = append(b, o.Info...)
	return b, nil
}

// OptionDNSServer implements the DNS Recursive Name Server option as
// described at https://tools.ietf.org/html/rfc3646#section-3
type OptionDNSServer struct {
	Servers []net.IP
}

func (o OptionDNSServer) String() string {
	addrs := make([]string, len(o.Servers))
	for i, s := range o.Servers {
		addrs[i] = s.String()
	}
	return fmt.Sprintf("DNS-recursive-name-server %s", strings.Join(addrs, ","))
}

// Len returns the length in bytes of OptionDNSServer's body
func (o OptionDNSServer) Len() uint16 {
	return uint16(16 * len(o.Servers))
}

// Type returns OptionTypeDNSServer
func (o OptionDNSServer) Type() OptionType {
	return OptionTypeDNSServer
}

// Marshal returns byte slice representing this OptionDNSServer
func (o OptionDNSServer) Marshal() ([]byte, error) {
	b := make([]byte, 4)
	binary.BigEndian.PutUint16(b[0:2], uint16(OptionTypeDNSServer))
	binary.BigEndian.PutUint16(b[2:4], o.Len())
	for _, s := range o.Servers {
		b = append(b, s.To16()...)
	}
	return b, nil
}

// OptionDNSSearchList implements the Domain Search List option as
// described at https://tools.ietf.org/html/rfc3646#section-3
type OptionDNSSearchList struct {
	Domains []string
}

func (o OptionDNSSearchList) String() string {
	return fmt.Sprintf("domain-search-list %s", strings.Join(o.Domains, ","))
}

// Len returns the length in bytes of OptionDNSSearchList's body
func (o OptionDNSSearchList) Len() uint16 {
	b, err := wire.PackDomainNames(o.Domains)
	if err != nil {
		return 0
	}
	return uint16(len(b))
}

// Type returns OptionTypeDNSSearchList
func (o OptionDNSSearchList) Type() OptionType {
	return OptionTypeDNSSearchList
}

// Marshal returns byte slice representing this OptionDNSSearchList
func (o OptionDNSSearchList) Marshal() ([]byte, error) {
	packed, err := wire.PackDomainNames(o.Domains)
	if err != nil {
		return nil, err
	}
	b := make([]byte, 4)
	binary.BigEndian.PutUint16(b[0:2], uint16(OptionTypeDNSSearchList))
	binary.BigEndian.PutUint16(b[2:4], uint16(len(packed)))
	b = append(b, packed...)
	return b, nil
}

func decodeDomainList(data []byte) ([]string, error) {
	if len(data) == 0 {
		return nil, nil
	}
	return wire.NewReader(data).ReadDomains(len(data))
}

// NtpServerSubOptionType distinguishes the three sub-option shapes RFC 5908
// defines inside a single NTP Server option.
type NtpServerSubOptionType uint16

// NTP server sub-option types as described at
// https://tools.ietf.org/html/rfc5908#section-4
const (
	NtpServerSubOptionTypeServerAddress NtpServerSubOptionType = iota + 1
	NtpServerSubOptionTypeMulticastAddress
	NtpServerSubOptionTypeFQDN
)

// NtpServerSubOption is one repeated sub-record inside an NtpServer option.
type NtpServerSubOption struct {
	Type    NtpServerSubOptionType
	Address net.IP
	FQDN    string
}

func (s NtpServerSubOption) marshal() []byte {
	switch s.Type {
	case NtpServerSubOptionTypeFQDN:
		packed, err := wire.PackDomainName(s.FQDN)
		if err != nil {
			packed = nil
		}
		b := make([]byte, 4)
		binary.BigEndian.PutUint16(b[0:2], uint16(NtpServerSubOptionTypeFQDN))
		binary.BigEndian.PutUint16(b[2:4], uint16(len(packed)))
		return append(b, packed...)
	default:
		b := make([]byte, 4)
		binary.BigEndian.PutUint16(b[0:2], uint16(s.Type))
		binary.BigEndian.PutUint16(b[2:4], 16)
		return append(b, s.Address.To16()...)
	}
}

func (s NtpServerSubOption) len() uint16 {
	if s.Type == NtpServerSubOptionTypeFQDN {
		packed, err := wire.PackDomainName(s.FQDN)
		if err != nil {
			return 4
		}
		return uint16(4 + len(packed))
	}
	return 20
}

// OptionNtpServer implements the NTP Server option as described at
// https://tools.ietf.org/html/rfc5908
type OptionNtpServer struct {
	SubOptions []NtpServerSubOption
}

func (o OptionNtpServer) String() string {
	return fmt.Sprintf("ntp-server (%d sub-options)", len(o.SubOptions))
}

// Len returns the length in bytes of OptionNtpServer's body
func (o OptionNtpServer) Len() uint16 {
	var l uint16
	for _, s := range o.SubOptions {
		l += s.len()
	}
	return l
}

// Type returns OptionTypeNtpServer
func (o OptionNtpServer) Type() OptionType {
	return OptionTypeNtpServer
}

// Marshal returns byte slice representing this OptionNtpServer
func (o OptionNtpServer) Marshal() ([]byte, error) {
	b := make([]byte, 4)
	binary.BigEndian.PutUint16(b[0:2], uint16(OptionTypeNtpServer))
	binary.BigEndian.PutUint16(b[2:4], o.Len())
	for _, s := range o.SubOptions {
		b = append(b, s.marshal()...)
	}
	return b, nil
}

// decodeNtpServerSuboptions parses the repeated sub-options inside an
// NtpServer option body. Sub-option 1 (server address) and 2 (multicast
// address) share the same 16-byte-address wire shape; the type byte read
// from the wire is kept rather than re-derived from the address's
// multicast property, since the type byte is authoritative per RFC 5908.
func decodeNtpServerSuboptions(data []byte) ([]NtpServerSubOption, error) {
	var subs []NtpServerSubOption
	for len(data) > 0 {
		if len(data) < 4 {
			return subs, errOptionTooShort
		}
		subType := NtpServerSubOptionType(binary.BigEndian.Uint16(data[0:2]))
		subLen := binary.BigEndian.Uint16(data[2:4])
		if len(data) < int(4+subLen) {
			return subs, errOptionTooShort
		}
		body := data[4 : 4+subLen]

		switch subType {
		case NtpServerSubOptionTypeServerAddress, NtpServerSubOptionTypeMulticastAddress:
			if subLen != 16 {
				return subs, errOptionTooShort
			}
			subs = append(subs, NtpServerSubOption{Type: subType, Address: append(net.IP{}, body...)})
		case NtpServerSubOptionTypeFQDN:
			name, err := decodeDomainList(body)
			if err != nil {
				return subs, err
			}
			fqdn := ""
			if len(name) > 0 {
				fqdn = name[0]
			}
			subs = append(subs, NtpServerSubOption{Type: subType, FQDN: fqdn})
		default:
			// unrecognized sub-option type, skip its body
		}

		data = data[4+subLen:]
	}
	return subs, nil
}

// OptionUnknown preserves the raw payload of any option code this package
// has no concrete decoder for, per the registry's Unknown(n) fallback.
type OptionUnknown struct {
	optionType OptionType
	Data       []byte
}

func (o OptionUnknown) String() string {
	return fmt.Sprintf("%s %x", o.optionType, o.Data)
}

// Len returns the length in bytes of OptionUnknown's body
func (o OptionUnknown) Len() uint16 {
	return uint16(len(o.Data))
}

// Type returns the original, otherwise-unhandled option type
func (o OptionUnknown) Type() OptionType {
	return o.optionType
}

// Marshal returns byte slice representing this OptionUnknown, reproducing
// the original wire bytes unchanged
func (o OptionUnknown) Marshal() ([]byte, error) {
	b := make([]byte, 4)
	binary.BigEndian.PutUint16(b[0:2], uint16(o.optionType))
	binary.BigEndian.PutUint16(b[2:4], o.Len())
	b = append(b, o.Data...)
	return b, nil
}
