package dhcpv4

import "fmt"

// MessageType is the value carried by the DHCP Message Type option (53).
type MessageType uint8

const (
	MessageTypeDiscover         MessageType = 1
	MessageTypeOffer            MessageType = 2
	MessageTypeRequest          MessageType = 3
	MessageTypeDecline          MessageType = 4
	MessageTypeAck              MessageType = 5
	MessageTypeNak              MessageType = 6
	MessageTypeRelease          MessageType = 7
	MessageTypeInform           MessageType = 8
	MessageTypeForceRenew       MessageType = 9
	MessageTypeLeaseQuery       MessageType = 10
	MessageTypeLeaseUnassigned  MessageType = 11
	MessageTypeLeaseUnknown     MessageType = 12
	MessageTypeLeaseActive      MessageType = 13
	MessageTypeBulkLeaseQuery   MessageType = 14
	MessageTypeLeaseQueryDone   MessageType = 15
	MessageTypeActiveLeaseQuery MessageType = 16
	MessageTypeLeaseQueryStatus MessageType = 17
	MessageTypeTLS              MessageType = 18
)

var messageTypeNames = map[MessageType]string{
	MessageTypeDiscover:         "DHCPDISCOVER",
	MessageTypeOffer:            "DHCPOFFER",
	MessageTypeRequest:          "DHCPREQUEST",
	MessageTypeDecline:          "DHCPDECLINE",
	MessageTypeAck:              "DHCPACK",
	MessageTypeNak:              "DHCPNAK",
	MessageTypeRelease:          "DHCPRELEASE",
	MessageTypeInform:           "DHCPINFORM",
	MessageTypeForceRenew:       "DHCPFORCERENEW",
	MessageTypeLeaseQuery:       "DHCPLEASEQUERY",
	MessageTypeLeaseUnassigned:  "DHCPLEASEUNASSIGNED",
	MessageTypeLeaseUnknown:     "DHCPLEASEUNKNOWN",
	MessageTypeLeaseActive:      "DHCPLEASEACTIVE",
	MessageTypeBulkLeaseQuery:   "DHCPBULKLEASEQUERY",
	MessageTypeLeaseQueryDone:   "DHCPLEASEQUERYDONE",
	MessageTypeActiveLeaseQuery: "DHCPACTIVELEASEQUERY",
	MessageTypeLeaseQueryStatus: "DHCPLEASEQUERYSTATUS",
	MessageTypeTLS:              "DHCPTLS",
}

func (m MessageType) String() string {
	if name, ok := messageTypeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", uint8(m))
}

// NodeType is the NetBIOS node type carried by option 46.
type NodeType uint8

const (
	NodeTypeBroadcast    NodeType = 0x1
	NodeTypePeerToPeer   NodeType = 0x2
	NodeTypeMixed        NodeType = 0x4
	NodeTypeHybrid       NodeType = 0x8
)

func (n NodeType) String() string {
	switch n {
	case NodeTypeBroadcast:
		return "B"
	case NodeTypePeerToPeer:
		return "P"
	case NodeTypeMixed:
		return "M"
	case NodeTypeHybrid:
		return "H"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(n))
	}
}

// Architecture is the client system architecture carried by option 93
// (RFC 4578). Values not in the registry keep their raw code, and String
// reports them as Unknown(n).
type Architecture uint16

const (
	ArchitectureIntelX86PC      Architecture = 0
	ArchitectureNECPC98         Architecture = 1
	ArchitectureItanium         Architecture = 2
	ArchitectureDECAlpha        Architecture = 3
	ArchitectureArcX86          Architecture = 4
	ArchitectureIntelLeanClient Architecture = 5
	ArchitectureIA32            Architecture = 6
	ArchitectureBC              Architecture = 7
	ArchitectureXscale          Architecture = 8
	ArchitectureX86_64          Architecture = 9
)

var architectureNames = map[Architecture]string{
	ArchitectureIntelX86PC:      "Intel x86PC",
	ArchitectureNECPC98:         "NEC/PC98",
	ArchitectureItanium:         "EFI Itanium",
	ArchitectureDECAlpha:        "DEC Alpha",
	ArchitectureArcX86:          "Arc x86",
	ArchitectureIntelLeanClient: "Intel Lean Client",
	ArchitectureIA32:            "EFI IA32",
	ArchitectureBC:              "EFI BC",
	ArchitectureXscale:          "EFI Xscale",
	ArchitectureX86_64:          "EFI x86-64",
}

func (a Architecture) String() string {
	if name, ok := architectureNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", uint16(a))
}

// AutoConfig is the value of the Disable SLAAC option (116, RFC 2563).
type AutoConfig uint8

const (
	AutoConfigDoNotAutoConfigure AutoConfig = 0
	AutoConfigAutoConfigure      AutoConfig = 1
)

func (a AutoConfig) String() string {
	switch a {
	case AutoConfigDoNotAutoConfigure:
		return "DoNotAutoConfigure"
	case AutoConfigAutoConfigure:
		return "AutoConfigure"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(a))
	}
}
