// Package dhcpv4 implements the DHCP for IPv4 wire format: the BOOTP
// message header (RFC 2131), the tag-length-value option encoding
// (RFC 2132), and the option payload shapes added by later RFCs.
package dhcpv4

import "fmt"

// Code identifies a DHCPv4 option tag. The numeric values are fixed by the
// registry below and must never be renumbered.
type Code uint8

// Option codes, preserved verbatim from the registry this package is
// ported from. Names follow the RFC wherever the RFC names the option;
// a handful (TimeServer vs "Router" in the source docstring, etc.) keep
// the conventional DHCP name rather than a literal RFC quote.
const (
	CodePad                              Code = 0
	CodeSubnetMask                        Code = 1
	CodeTimeOffset                        Code = 2
	CodeRouter                            Code = 3
	CodeTimeServer                        Code = 4
	CodeNameServer                        Code = 5
	CodeDomainNameServer                  Code = 6
	CodeLogServer                         Code = 7
	CodeQuoteServer                       Code = 8
	CodeLprServer                         Code = 9
	CodeImpressServer                     Code = 10
	CodeResourceLocationServer            Code = 11
	CodeHostname                          Code = 12
	CodeBootFileSize                      Code = 13
	CodeMeritDumpFile                     Code = 14
	CodeDomainName                        Code = 15
	CodeSwapServer                        Code = 16
	CodeRootPath                          Code = 17
	CodeExtensionsPath                    Code = 18
	CodeIPForwarding                      Code = 19
	CodeNonLocalSrcRouting                Code = 20
	CodePolicyFilter                      Code = 21
	CodeMaxDatagramSize                   Code = 22
	CodeDefaultIPTTL                      Code = 23
	CodePathMTUAgingTimeout               Code = 24
	CodePathMTUPlateauTable               Code = 25
	CodeInterfaceMTU                      Code = 26
	CodeAllSubnetsLocal                   Code = 27
	CodeBroadcastAddr                     Code = 28
	CodePerformMaskDiscovery              Code = 29
	CodeMaskSupplier                      Code = 30
	CodePerformRouterDiscovery            Code = 31
	CodeRouterSolicitationAddr            Code = 32
	CodeStaticRoutingTable                Code = 33
	CodeTrailerEncapsulated               Code = 34
	CodeArpCacheTimeout                   Code = 35
	CodeEthernetEncapsulation             Code = 36
	CodeDefaultTCPTTL                     Code = 37
	CodeTCPKeepaliveInterval              Code = 38
	CodeTCPKeepaliveGarbage               Code = 39
	CodeNisDomain                         Code = 40
	CodeNisServers                        Code = 41
	CodeNtpServers                        Code = 42
	CodeVendorExtensions                  Code = 43
	CodeNetBiosNameServers                Code = 44
	CodeNetBiosDatagramDistributionServer Code = 45
	CodeNetBiosNodeType                   Code = 46
	CodeNetBiosScope                      Code = 47
	CodeXFontServer                       Code = 48
	CodeXDisplayManager                   Code = 49
	CodeRequestedIPAddress                Code = 50
	CodeAddressLeaseTime                  Code = 51
	CodeOptionOverload                    Code = 52
	CodeMessageType                       Code = 53
	CodeServerIdentifier                  Code = 54
	CodeParameterRequestList              Code = 55
	CodeMessage                           Code = 56
	CodeMaxMessageSize                    Code = 57
	CodeRenewal                           Code = 58
	CodeRebinding                         Code = 59
	CodeClassIdentifier                   Code = 60
	CodeClientIdentifier                  Code = 61
	CodeNwipDomainName                    Code = 62
	CodeNwipInformation                   Code = 63
	CodeNispServiceDomain                 Code = 64
	CodeNispServers                       Code = 65
	CodeTFTPServerName                    Code = 66
	CodeBootfileName                      Code = 67
	CodeMobileIPHomeAgent                 Code = 68
	CodeSmtpServer                        Code = 69
	CodePop3Server                        Code = 70
	CodeNntpServer                        Code = 71
	CodeWwwServer                         Code = 72
	CodeDefaultFingerServer               Code = 73
	CodeIrcServer                         Code = 74
	CodeStreetTalkServer                  Code = 75
	CodeStreetTalkDirectoryAssistance     Code = 76
	CodeUserClass                         Code = 77
	CodeRapidCommit                       Code = 80
	CodeClientFQDN                        Code = 81
	CodeRelayAgentInformation             Code = 82
	CodeBcmsControllerNames               Code = 88
	CodeBcmsControllerAddrs               Code = 89
	CodeClientLastTransactionTime         Code = 91
	CodeAssociatedIP                      Code = 92
	CodeClientSystemArchitecture          Code = 93
	CodeClientNetworkInterface            Code = 94
	CodeClientMachineIdentifier           Code = 97
	CodeIPv6OnlyPreferred                 Code = 106
	CodeCaptivePortal                     Code = 114
	CodeDisableSLAAC                      Code = 116
	CodeSubnetSelection                   Code = 118
	CodeDomainSearch                      Code = 119
	CodeClasslessStaticRoute              Code = 121
	CodeTFTPServerAddress                 Code = 150
	CodeBulkLeaseQueryStatusCode          Code = 151
	CodeBulkLeaseQueryBaseTime            Code = 152
	CodeBulkLeaseQueryStartTimeOfState    Code = 153
	CodeBulkLeaseQueryQueryStartTime      Code = 154
	CodeBulkLeaseQueryQueryEndTime        Code = 155
	CodeBulkLeaseQueryDhcpState           Code = 156
	CodeBulkLeaseQueryDataSource          Code = 157
	CodeEnd                               Code = 255
)

var codeNames = map[Code]string{
	CodePad:                              "Pad",
	CodeSubnetMask:                       "SubnetMask",
	CodeTimeOffset:                       "TimeOffset",
	CodeRouter:                           "Router",
	CodeTimeServer:                       "TimeServer",
	CodeNameServer:                       "NameServer",
	CodeDomainNameServer:                 "DomainNameServer",
	CodeLogServer:                        "LogServer",
	CodeQuoteServer:                      "QuoteServer",
	CodeLprServer:                        "LprServer",
	CodeImpressServer:                    "ImpressServer",
	CodeResourceLocationServer:           "ResourceLocationServer",
	CodeHostname:                         "Hostname",
	CodeBootFileSize:                     "BootFileSize",
	CodeMeritDumpFile:                    "MeritDumpFile",
	CodeDomainName:                       "DomainName",
	CodeSwapServer:                       "SwapServer",
	CodeRootPath:                         "RootPath",
	CodeExtensionsPath:                   "ExtensionsPath",
	CodeIPForwarding:                     "IPForwarding",
	CodeNonLocalSrcRouting:               "NonLocalSrcRouting",
	CodePolicyFilter:                     "PolicyFilter",
	CodeMaxDatagramSize:                  "MaxDatagramSize",
	CodeDefaultIPTTL:                     "DefaultIPTTL",
	CodePathMTUAgingTimeout:              "PathMTUAgingTimeout",
	CodePathMTUPlateauTable:              "PathMTUPlateauTable",
	CodeInterfaceMTU:                     "InterfaceMTU",
	CodeAllSubnetsLocal:                  "AllSubnetsLocal",
	CodeBroadcastAddr:                    "BroadcastAddr",
	CodePerformMaskDiscovery:             "PerformMaskDiscovery",
	CodeMaskSupplier:                     "MaskSupplier",
	CodePerformRouterDiscovery:           "PerformRouterDiscovery",
	CodeRouterSolicitationAddr:           "RouterSolicitationAddr",
	CodeStaticRoutingTable:               "StaticRoutingTable",
	CodeTrailerEncapsulated:              "TrailerEncapsulated",
	CodeArpCacheTimeout:                  "ArpCacheTimeout",
	CodeEthernetEncapsulation:            "EthernetEncapsulation",
	CodeDefaultTCPTTL:                    "DefaultTCPTTL",
	CodeTCPKeepaliveInterval:             "TCPKeepaliveInterval",
	CodeTCPKeepaliveGarbage:              "TCPKeepaliveGarbage",
	CodeNisDomain:                        "NisDomain",
	CodeNisServers:                       "NisServers",
	CodeNtpServers:                       "NtpServers",
	CodeVendorExtensions:                 "VendorExtensions",
	CodeNetBiosNameServers:               "NetBiosNameServers",
	CodeNetBiosDatagramDistributionServer: "NetBiosDatagramDistributionServer",
	CodeNetBiosNodeType:                  "NetBiosNodeType",
	CodeNetBiosScope:                     "NetBiosScope",
	CodeXFontServer:                      "XFontServer",
	CodeXDisplayManager:                  "XDisplayManager",
	CodeRequestedIPAddress:               "RequestedIPAddress",
	CodeAddressLeaseTime:                 "AddressLeaseTime",
	CodeOptionOverload:                   "OptionOverload",
	CodeMessageType:                      "MessageType",
	CodeServerIdentifier:                 "ServerIdentifier",
	CodeParameterRequestList:             "ParameterRequestList",
	CodeMessage:                          "Message",
	CodeMaxMessageSize:                   "MaxMessageSize",
	CodeRenewal:                          "Renewal",
	CodeRebinding:                        "Rebinding",
	CodeClassIdentifier:                  "ClassIdentifier",
	CodeClientIdentifier:                 "ClientIdentifier",
	CodeNwipDomainName:                   "NwipDomainName",
	CodeNwipInformation:                  "NwipInformation",
	CodeNispServiceDomain:                "NispServiceDomain",
	CodeNispServers:                      "NispServers",
	CodeTFTPServerName:                   "TFTPServerName",
	CodeBootfileName:                     "BootfileName",
	CodeMobileIPHomeAgent:                "MobileIPHomeAgent",
	CodeSmtpServer:                       "SmtpServer",
	CodePop3Server:                       "Pop3Server",
	CodeNntpServer:                       "NntpServer",
	CodeWwwServer:                        "WwwServer",
	CodeDefaultFingerServer:              "DefaultFingerServer",
	CodeIrcServer:                        "IrcServer",
	CodeStreetTalkServer:                 "StreetTalkServer",
	CodeStreetTalkDirectoryAssistance:    "StreetTalkDirectoryAssistance",
	CodeUserClass:                        "UserClass",
	CodeRapidCommit:                      "RapidCommit",
	CodeClientFQDN:                       "ClientFQDN",
	CodeRelayAgentInformation:            "RelayAgentInformation",
	CodeBcmsControllerNames:              "BcmsControllerNames",
	CodeBcmsControllerAddrs:              "BcmsControllerAddrs",
	CodeClientLastTransactionTime:        "ClientLastTransactionTime",
	CodeAssociatedIP:                     "AssociatedIP",
	CodeClientSystemArchitecture:         "ClientSystemArchitecture",
	CodeClientNetworkInterface:           "ClientNetworkInterface",
	CodeClientMachineIdentifier:          "ClientMachineIdentifier",
	CodeIPv6OnlyPreferred:                "IPv6OnlyPreferred",
	CodeCaptivePortal:                    "CaptivePortal",
	CodeDisableSLAAC:                     "DisableSLAAC",
	CodeSubnetSelection:                  "SubnetSelection",
	CodeDomainSearch:                     "DomainSearch",
	CodeClasslessStaticRoute:             "ClasslessStaticRoute",
	CodeTFTPServerAddress:                "TFTPServerAddress",
	CodeBulkLeaseQueryStatusCode:         "BulkLeaseQueryStatusCode",
	CodeBulkLeaseQueryBaseTime:           "BulkLeaseQueryBaseTime",
	CodeBulkLeaseQueryStartTimeOfState:   "BulkLeaseQueryStartTimeOfState",
	CodeBulkLeaseQueryQueryStartTime:     "BulkLeaseQueryQueryStartTime",
	CodeBulkLeaseQueryQueryEndTime:       "BulkLeaseQueryQueryEndTime",
	CodeBulkLeaseQueryDhcpState:          "BulkLeaseQueryDhcpState",
	CodeBulkLeaseQueryDataSource:         "BulkLeaseQueryDataSource",
	CodeEnd:                              "End",
}

// String renders the option's registry name, or "Unknown(n)" for a code
// this package does not carry a named constant for.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", uint8(c))
}
