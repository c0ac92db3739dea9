package dhcpv4

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/go-dhcp/dhcpwire/wire"
)

// Option is a single decoded DHCPv4 option value. Every concrete option
// type is a value of this interface; the zoo of shapes below mirrors the
// value types the registry in codes.go assigns to each code, rather than
// one struct per code; many codes share the same wire shape (an IPv4
// list, a uint32, an opaque byte string) and so share a struct.
type Option interface {
	Code() Code
	String() string
	// Value returns the option's encoded value bytes, without the
	// code/length header. OptionSet is responsible for splitting this
	// across repeated TLVs per RFC 3396 when it exceeds 255 bytes.
	Value() ([]byte, error)
}

// decodeOption builds the typed Option for code from its already
// RFC-3396-concatenated value bytes.
func decodeOption(code Code, data []byte) (Option, error) {
	r := wire.NewReader(data)
	switch code {
	case CodeSubnetMask, CodeSwapServer, CodeRouterSolicitationAddr,
		CodeRequestedIPAddress, CodeServerIdentifier, CodeSubnetSelection,
		CodeTFTPServerAddress, CodeBroadcastAddr:
		ip, err := r.ReadIPv4(len(data))
		if err != nil {
			return nil, errors.Wrapf(err, "option %s", code)
		}
		return &IPv4Option{code: code, IP: ip}, nil

	case CodeRouter, CodeTimeServer, CodeNameServer, CodeDomainNameServer,
		CodeLogServer, CodeQuoteServer, CodeLprServer, CodeImpressServer,
		CodeResourceLocationServer, CodeNisServers, CodeNtpServers,
		CodeNetBiosNameServers, CodeNetBiosDatagramDistributionServer,
		CodeXFontServer, CodeXDisplayManager, CodeNispServers,
		CodeBcmsControllerAddrs, CodeAssociatedIP, CodeMobileIPHomeAgent,
		CodeSmtpServer, CodePop3Server, CodeNntpServer, CodeWwwServer,
		CodeDefaultFingerServer, CodeIrcServer, CodeStreetTalkServer,
		CodeStreetTalkDirectoryAssistance:
		ips, err := r.ReadIPv4s(len(data))
		if err != nil {
			return nil, errors.Wrapf(err, "option %s", code)
		}
		return &IPv4ListOption{code: code, IPs: ips}, nil

	case CodePolicyFilter, CodeStaticRoutingTable:
		pairs, err := r.ReadPairIPv4(len(data))
		if err != nil {
			return nil, errors.Wrapf(err, "option %s", code)
		}
		return &IPv4PairListOption{code: code, Pairs: pairs}, nil

	case CodeDefaultIPTTL, CodeDefaultTCPTTL, CodeOptionOverload:
		v, err := r.ReadU8()
		if err != nil {
			return nil, errors.Wrapf(err, "option %s", code)
		}
		return &Uint8Option{code: code, Value: v}, nil

	case CodeBootFileSize, CodeMaxDatagramSize, CodeInterfaceMTU, CodeMaxMessageSize:
		v, err := r.ReadU16()
		if err != nil {
			return nil, errors.Wrapf(err, "option %s", code)
		}
		return &Uint16Option{code: code, Value: v}, nil

	case CodePathMTUPlateauTable:
		if len(data)%2 != 0 {
			return nil, errors.Wrapf(wire.ErrNotEnoughBytes, "option %s: odd length %d", code, len(data))
		}
		vals := make([]uint16, 0, len(data)/2)
		for r.Len() > 0 {
			v, err := r.ReadU16()
			if err != nil {
				return nil, errors.Wrapf(err, "option %s", code)
			}
			vals = append(vals, v)
		}
		return &Uint16ListOption{code: code, Values: vals}, nil

	case CodePathMTUAgingTimeout, CodeArpCacheTimeout, CodeTCPKeepaliveInterval,
		CodeAddressLeaseTime, CodeRenewal, CodeRebinding,
		CodeClientLastTransactionTime, CodeIPv6OnlyPreferred,
		CodeBulkLeaseQueryBaseTime, CodeBulkLeaseQueryStartTimeOfState,
		CodeBulkLeaseQueryQueryStartTime, CodeBulkLeaseQueryQueryEndTime:
		v, err := r.ReadU32()
		if err != nil {
			return nil, errors.Wrapf(err, "option %s", code)
		}
		return &Uint32Option{code: code, Value: v}, nil

	case CodeTimeOffset:
		v, err := r.ReadI32()
		if err != nil {
			return nil, errors.Wrapf(err, "option %s", code)
		}
		return &Int32Option{code: code, Value: v}, nil

	case CodeIPForwarding, CodeNonLocalSrcRouting, CodeAllSubnetsLocal,
		CodePerformMaskDiscovery, CodeMaskSupplier, CodePerformRouterDiscovery,
		CodeTrailerEncapsulated, CodeEthernetEncapsulation, CodeTCPKeepaliveGarbage:
		v, err := r.ReadBool()
		if err != nil {
			return nil, errors.Wrapf(err, "option %s", code)
		}
		return &BoolOption{code: code, Value: v}, nil

	case CodeRapidCommit:
		return &FlagOption{code: code}, nil

	case CodeHostname, CodeMeritDumpFile, CodeDomainName, CodeRootPath,
		CodeExtensionsPath, CodeNisDomain, CodeNwipDomainName,
		CodeNispServiceDomain, CodeNetBiosScope, CodeMessage:
		s, err := r.ReadString(len(data))
		if err != nil {
			return nil, errors.Wrapf(err, "option %s", code)
		}
		return &StringOption{code: code, Value: s}, nil

	case CodeVendorExtensions, CodeClassIdentifier, CodeClientIdentifier,
		CodeNwipInformation, CodeTFTPServerName, CodeBootfileName,
		CodeUserClass, CodeClientMachineIdentifier:
		b, err := r.ReadArray(len(data))
		if err != nil {
			return nil, errors.Wrapf(err, "option %s", code)
		}
		return &BytesOption{code: code, Value: b}, nil

	case CodeBcmsControllerNames, CodeDomainSearch:
		names, err := r.ReadDomains(len(data))
		if err != nil {
			return nil, errors.Wrapf(err, "option %s", code)
		}
		return &DomainListOption{code: code, Names: names}, nil

	case CodeParameterRequestList:
		b, err := r.ReadArray(len(data))
		if err != nil {
			return nil, errors.Wrapf(err, "option %s", code)
		}
		codes := make([]Code, len(b))
		for i, c := range b {
			codes[i] = Code(c)
		}
		return &ParameterRequestListOption{Codes: codes}, nil

	case CodeMessageType:
		v, err := r.ReadU8()
		if err != nil {
			return nil, errors.Wrapf(err, "option %s", code)
		}
		return &MessageTypeOption{Value: MessageType(v)}, nil

	case CodeNetBiosNodeType:
		v, err := r.ReadU8()
		if err != nil {
			return nil, errors.Wrapf(err, "option %s", code)
		}
		return &NodeTypeOption{Value: NodeType(v)}, nil

	case CodeClientSystemArchitecture:
		v, err := r.ReadU16()
		if err != nil {
			return nil, errors.Wrapf(err, "option %s", code)
		}
		return &ArchitectureOption{Value: Architecture(v)}, nil

	case CodeClientNetworkInterface:
		b, err := r.ReadArray(len(data))
		if err != nil {
			return nil, errors.Wrapf(err, "option %s", code)
		}
		if len(b) != 3 {
			return nil, errors.Wrapf(wire.ErrNotEnoughBytes, "option %s: expected 3 bytes, got %d", code, len(b))
		}
		return &ClientNetworkInterfaceOption{Type: b[0], Major: b[1], Minor: b[2]}, nil

	case CodeDisableSLAAC:
		v, err := r.ReadU8()
		if err != nil {
			return nil, errors.Wrapf(err, "option %s", code)
		}
		return &AutoConfigOption{Value: AutoConfig(v)}, nil

	case CodeCaptivePortal:
		s, err := r.ReadString(len(data))
		if err != nil {
			return nil, errors.Wrapf(err, "option %s", code)
		}
		u, err := url.ParseRequestURI(s)
		if err != nil || u.Host == "" || u.Path == "" {
			return nil, errors.Wrapf(wire.ErrURLParse, "option %s: %q", code, s)
		}
		return &CaptivePortalOption{URL: s}, nil

	case CodeClasslessStaticRoute:
		routes, err := decodeClasslessRoutes(data)
		if err != nil {
			return nil, errors.Wrapf(err, "option %s", code)
		}
		return &ClasslessStaticRouteOption{Routes: routes}, nil

	case CodeClientFQDN:
		return decodeClientFQDN(data)

	case CodeRelayAgentInformation:
		subs, err := decodeRelayOptions(data)
		if err != nil {
			return nil, errors.Wrapf(err, "option %s", code)
		}
		return &RelayAgentInformationOption{SubOptions: subs}, nil

	case CodeBulkLeaseQueryDhcpState:
		v, err := r.ReadU8()
		if err != nil {
			return nil, errors.Wrapf(err, "option %s", code)
		}
		return &Uint8Option{code: code, Value: v}, nil

	case CodeBulkLeaseQueryDataSource:
		v, err := r.ReadU8()
		if err != nil {
			return nil, errors.Wrapf(err, "option %s", code)
		}
		return &Uint8Option{code: code, Value: v}, nil

	case CodeBulkLeaseQueryStatusCode:
		return &UnknownOption{code: code, Data: append([]byte(nil), data...)}, nil

	default:
		return &UnknownOption{code: code, Data: append([]byte(nil), data...)}, nil
	}
}

// IPv4Option carries a single IPv4 address value.
type IPv4Option struct {
	code Code
	IP   net.IP
}

func (o *IPv4Option) Code() Code { return o.code }
func (o *IPv4Option) String() string {
	return fmt.Sprintf("%s: %s", o.code, o.IP)
}
func (o *IPv4Option) Value() ([]byte, error) {
	w := wire.NewWriter(4)
	if err := w.WriteIPv4(o.IP); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// IPv4ListOption carries a variable-length list of IPv4 addresses.
type IPv4ListOption struct {
	code Code
	IPs  []net.IP
}

func (o *IPv4ListOption) Code() Code { return o.code }
func (o *IPv4ListOption) String() string {
	return fmt.Sprintf("%s: %v", o.code, o.IPs)
}
func (o *IPv4ListOption) Value() ([]byte, error) {
	w := wire.NewWriter(4 * len(o.IPs))
	for _, ip := range o.IPs {
		if err := w.WriteIPv4(ip); err != nil {
			return nil, err
		}
	}
	return w.Bytes(), nil
}

// IPv4PairListOption carries a list of (destination, router) address
// pairs, used by the policy filter and static route options.
type IPv4PairListOption struct {
	code  Code
	Pairs []wire.IPv4Pair
}

func (o *IPv4PairListOption) Code() Code { return o.code }
func (o *IPv4PairListOption) String() string {
	return fmt.Sprintf("%s: %v", o.code, o.Pairs)
}
func (o *IPv4PairListOption) Value() ([]byte, error) {
	w := wire.NewWriter(8 * len(o.Pairs))
	for _, p := range o.Pairs {
		if err := w.WriteIPv4(p.Network); err != nil {
			return nil, err
		}
		if err := w.WriteIPv4(p.NextHop); err != nil {
			return nil, err
		}
	}
	return w.Bytes(), nil
}

// Uint8Option carries a single byte value.
type Uint8Option struct {
	code  Code
	Value uint8
}

func (o *Uint8Option) Code() Code { return o.code }
func (o *Uint8Option) String() string {
	return fmt.Sprintf("%s: %d", o.code, o.Value)
}
func (o *Uint8Option) Value() ([]byte, error) {
	return []byte{o.Value}, nil
}

// Uint16Option carries a big-endian 16-bit value.
type Uint16Option struct {
	code  Code
	Value uint16
}

func (o *Uint16Option) Code() Code { return o.code }
func (o *Uint16Option) String() string {
	return fmt.Sprintf("%s: %d", o.code, o.Value)
}
func (o *Uint16Option) Value() ([]byte, error) {
	w := wire.NewWriter(2)
	if err := w.WriteU16(o.Value); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Uint16ListOption carries a list of big-endian 16-bit values, used by
// the Path MTU Plateau Table option.
type Uint16ListOption struct {
	code   Code
	Values []uint16
}

func (o *Uint16ListOption) Code() Code { return o.code }
func (o *Uint16ListOption) String() string {
	return fmt.Sprintf("%s: %v", o.code, o.Values)
}
func (o *Uint16ListOption) Value() ([]byte, error) {
	w := wire.NewWriter(2 * len(o.Values))
	for _, v := range o.Values {
		if err := w.WriteU16(v); err != nil {
			return nil, err
		}
	}
	return w.Bytes(), nil
}

// Uint32Option carries a big-endian 32-bit value.
type Uint32Option struct {
	code  Code
	Value uint32
}

func (o *Uint32Option) Code() Code { return o.code }
func (o *Uint32Option) String() string {
	return fmt.Sprintf("%s: %d", o.code, o.Value)
}
func (o *Uint32Option) Value() ([]byte, error) {
	w := wire.NewWriter(4)
	if err := w.WriteU32(o.Value); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Int32Option carries a signed big-endian 32-bit value, used only by
// the Time Offset option.
type Int32Option struct {
	code  Code
	Value int32
}

func (o *Int32Option) Code() Code { return o.code }
func (o *Int32Option) String() string {
	return fmt.Sprintf("%s: %d", o.code, o.Value)
}
func (o *Int32Option) Value() ([]byte, error) {
	w := wire.NewWriter(4)
	if err := w.WriteI32(o.Value); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// BoolOption carries a one-byte boolean flag.
type BoolOption struct {
	code  Code
	Value bool
}

func (o *BoolOption) Code() Code { return o.code }
func (o *BoolOption) String() string {
	return fmt.Sprintf("%s: %t", o.code, o.Value)
}
func (o *BoolOption) Value() ([]byte, error) {
	w := wire.NewWriter(1)
	if err := w.WriteBool(o.Value); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// FlagOption carries no value; its presence is the signal. Used for
// Rapid Commit.
type FlagOption struct {
	code Code
}

func (o *FlagOption) Code() Code      { return o.code }
func (o *FlagOption) String() string  { return o.code.String() }
func (o *FlagOption) Value() ([]byte, error) {
	return nil, nil
}

// StringOption carries an ASCII/UTF-8 text value.
type StringOption struct {
	code  Code
	Value string
}

func (o *StringOption) Code() Code { return o.code }
func (o *StringOption) String() string {
	return fmt.Sprintf("%s: %q", o.code, o.Value)
}
func (o *StringOption) Value() ([]byte, error) {
	return []byte(o.Value), nil
}

// BytesOption carries an opaque byte string.
type BytesOption struct {
	code  Code
	Value []byte
}

func (o *BytesOption) Code() Code { return o.code }
func (o *BytesOption) String() string {
	return fmt.Sprintf("%s: % x", o.code, o.Value)
}
func (o *BytesOption) Value() ([]byte, error) {
	return o.Value, nil
}

// SubClasses splits a User Class option's opaque value into the
// length-prefixed sub-classes defined by RFC 3004, without mutating the
// option. Malformed trailing data (a declared length that runs past the
// end of the value) is reported as an error rather than silently
// truncated.
func (o *BytesOption) SubClasses() ([][]byte, error) {
	if o.code != CodeUserClass {
		return nil, errors.Errorf("SubClasses only applies to UserClass, got %s", o.code)
	}
	r := wire.NewReader(o.Value)
	var classes [][]byte
	for r.Len() > 0 {
		n, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		b, err := r.ReadArray(int(n))
		if err != nil {
			return nil, errors.Wrap(err, "truncated user class entry")
		}
		classes = append(classes, b)
	}
	return classes, nil
}

// DomainListOption carries a back-to-back sequence of RFC 1035 names,
// used by Domain Search and the BCMS controller name list.
type DomainListOption struct {
	code  Code
	Names []string
}

func (o *DomainListOption) Code() Code { return o.code }
func (o *DomainListOption) String() string {
	return fmt.Sprintf("%s: %s", o.code, strings.Join(o.Names, ","))
}
func (o *DomainListOption) Value() ([]byte, error) {
	return wire.PackDomainNames(o.Names)
}

// ParameterRequestListOption lists the option codes a client is asking
// the server to include in its reply.
type ParameterRequestListOption struct {
	Codes []Code
}

func (o *ParameterRequestListOption) Code() Code { return CodeParameterRequestList }
func (o *ParameterRequestListOption) String() string {
	return fmt.Sprintf("ParameterRequestList: %v", o.Codes)
}
func (o *ParameterRequestListOption) Value() ([]byte, error) {
	b := make([]byte, len(o.Codes))
	for i, c := range o.Codes {
		b[i] = uint8(c)
	}
	return b, nil
}

// MessageTypeOption carries the DHCP message type (option 53).
type MessageTypeOption struct {
	Value MessageType
}

func (o *MessageTypeOption) Code() Code     { return CodeMessageType }
func (o *MessageTypeOption) String() string { return o.Value.String() }
func (o *MessageTypeOption) Value() ([]byte, error) {
	return []byte{uint8(o.Value)}, nil
}

// NodeTypeOption carries the NetBIOS node type (option 46).
type NodeTypeOption struct {
	Value NodeType
}

func (o *NodeTypeOption) Code() Code     { return CodeNetBiosNodeType }
func (o *NodeTypeOption) String() string { return o.Value.String() }
func (o *NodeTypeOption) Value() ([]byte, error) {
	return []byte{uint8(o.Value)}, nil
}

// ArchitectureOption carries the client system architecture (option 93).
type ArchitectureOption struct {
	Value Architecture
}

func (o *ArchitectureOption) Code() Code     { return CodeClientSystemArchitecture }
func (o *ArchitectureOption) String() string { return o.Value.String() }
func (o *ArchitectureOption) Value() ([]byte, error) {
	w := wire.NewWriter(2)
	if err := w.WriteU16(uint16(o.Value)); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// ClientNetworkInterfaceOption carries the UNDI interface version
// (option 94): an interface type byte plus a major.minor version.
type ClientNetworkInterfaceOption struct {
	Type  byte
	Major byte
	Minor byte
}

func (o *ClientNetworkInterfaceOption) Code() Code { return CodeClientNetworkInterface }
func (o *ClientNetworkInterfaceOption) String() string {
	return fmt.Sprintf("ClientNetworkInterface: type=%d %d.%d", o.Type, o.Major, o.Minor)
}
func (o *ClientNetworkInterfaceOption) Value() ([]byte, error) {
	return []byte{o.Type, o.Major, o.Minor}, nil
}

// AutoConfigOption carries the Disable SLAAC option (116).
type AutoConfigOption struct {
	Value AutoConfig
}

func (o *AutoConfigOption) Code() Code     { return CodeDisableSLAAC }
func (o *AutoConfigOption) String() string { return o.Value.String() }
func (o *AutoConfigOption) Value() ([]byte, error) {
	return []byte{uint8(o.Value)}, nil
}

// CaptivePortalOption carries the Captive Portal URL (option 114,
// RFC 8910). decodeOption rejects a payload that doesn't parse as an
// absolute URL with a host and path, returning wire.ErrURLParse.
type CaptivePortalOption struct {
	URL string
}

func (o *CaptivePortalOption) Code() Code     { return CodeCaptivePortal }
func (o *CaptivePortalOption) String() string { return fmt.Sprintf("CaptivePortal: %s", o.URL) }
func (o *CaptivePortalOption) Value() ([]byte, error) {
	return []byte(o.URL), nil
}

// UnknownOption preserves the raw value bytes for a code this package
// has no typed representation for, so round-tripping never loses data.
type UnknownOption struct {
	code Code
	Data []byte
}

func (o *UnknownOption) Code() Code { return o.code }
func (o *UnknownOption) String() string {
	return fmt.Sprintf("%s: % x", o.code, o.Data)
}
func (o *UnknownOption) Value() ([]byte, error) {
	return o.Data, nil
}
