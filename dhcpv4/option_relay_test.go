package dhcpv4

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelayLinkSelectionExactBytes(t *testing.T) {
	info := &RelayAgentInformationOption{SubOptions: []RelaySubOption{
		&RelayIPv4Option{code: RelayCodeLinkSelection, IP: net.IPv4(192, 168, 0, 1)},
	}}
	val, err := info.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte{5, 4, 192, 168, 0, 1}, val)
}

func TestRelayAgentCircuitIDExactBytes(t *testing.T) {
	info := &RelayAgentInformationOption{SubOptions: []RelaySubOption{
		&RelayBytesOption{code: RelayCodeAgentCircuitID, Data: []byte{0, 1, 2, 3, 4}},
	}}
	val, err := info.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 5, 0, 1, 2, 3, 4}, val)
}

func TestRelayFlagsUnicast(t *testing.T) {
	flags := RelayFlags(0).SetUnicast()
	info := &RelayAgentInformationOption{SubOptions: []RelaySubOption{
		&RelayFlagsOption{Flags: flags},
	}}
	val, err := info.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte{10, 1, 0x80}, val)
}

func TestRelayUnknownSubOptionRoundTrip(t *testing.T) {
	subs, err := decodeRelayOptions([]byte{149, 4, 1, 2, 3, 4})
	require.NoError(t, err)
	require.Len(t, subs, 1)
	got, ok := subs[0].(*RelayUnknownOption)
	require.True(t, ok)
	assert.Equal(t, RelayCode(149), got.code)
	assert.Equal(t, []byte{1, 2, 3, 4}, got.Data)

	info := &RelayAgentInformationOption{SubOptions: subs}
	val, err := info.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte{149, 4, 1, 2, 3, 4}, val)
}

func TestRelayNamedUnknownSubOptionKeepsCode(t *testing.T) {
	subs, err := decodeRelayOptions([]byte{9, 3, 0xAA, 0xBB, 0xCC})
	require.NoError(t, err)
	require.Len(t, subs, 1)
	got, ok := subs[0].(*RelayUnknownOption)
	require.True(t, ok)
	assert.Equal(t, RelayCodeVendorSpecificInfo, got.code)
	assert.Equal(t, "VendorSpecificInformation", got.code.String())
	assert.Equal(t, []byte{0xAA, 0xBB, 0xCC}, got.Data)
}

func TestDecodeRelayOptionsRoundTrip(t *testing.T) {
	info := &RelayAgentInformationOption{SubOptions: []RelaySubOption{
		&RelayBytesOption{code: RelayCodeAgentCircuitID, Data: []byte{1, 2}},
		&RelayIPv4Option{code: RelayCodeLinkSelection, IP: net.IPv4(10, 0, 0, 1)},
	}}
	val, err := info.Value()
	require.NoError(t, err)

	decoded, err := decodeOption(CodeRelayAgentInformation, val)
	require.NoError(t, err)
	got := decoded.(*RelayAgentInformationOption)
	require.Len(t, got.SubOptions, 2)
	assert.Equal(t, RelayCodeAgentCircuitID, got.SubOptions[0].Code())
	ip := got.SubOptions[1].(*RelayIPv4Option)
	assert.True(t, ip.IP.Equal(net.IPv4(10, 0, 0, 1)))
}
