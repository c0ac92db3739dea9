package dhcpv4

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessageDiscoverRoundTrip(t *testing.T) {
	m, err := NewMessage()
	require.NoError(t, err)
	m.SetClientHWAddr(net.HardwareAddr{0x00, 0x0c, 0x29, 0x11, 0x22, 0x33})
	m.Options.Insert(&MessageTypeOption{Value: MessageTypeDiscover})
	m.Options.Insert(&ParameterRequestListOption{Codes: []Code{
		CodeSubnetMask, CodeRouter, CodeDomainNameServer, CodeDomainName,
	}})

	encoded, err := m.Encode()
	require.NoError(t, err)
	require.True(t, len(encoded) > headerLen+4)

	decoded, err := Decode(encoded, nil)
	require.NoError(t, err)
	assert.Equal(t, OpBootRequest, decoded.Op)
	assert.Equal(t, m.Xid, decoded.Xid)
	assert.Equal(t, m.ClientHWAddr, decoded.ClientHWAddr)

	mt, ok := decoded.Options.MessageType()
	require.True(t, ok)
	assert.Equal(t, MessageTypeDiscover, mt)

	prl, ok := decoded.Options.Get(CodeParameterRequestList).(*ParameterRequestListOption)
	require.True(t, ok)
	assert.Equal(t, []Code{CodeSubnetMask, CodeRouter, CodeDomainNameServer, CodeDomainName}, prl.Codes)
}

func TestDecodeRejectsBadMagicCookieByDefault(t *testing.T) {
	m, err := NewMessage()
	require.NoError(t, err)
	encoded, err := m.Encode()
	require.NoError(t, err)

	// corrupt the magic cookie, which sits right after the 236-byte header.
	encoded[headerLen] ^= 0xFF

	_, err = Decode(encoded, nil)
	assert.Error(t, err)

	lenient, err := Decode(encoded, &DecodeOptions{Lenient: true})
	require.NoError(t, err)
	assert.NotNil(t, lenient)
}

func TestMessageServerNameAndBootFileWidths(t *testing.T) {
	m, err := NewMessage()
	require.NoError(t, err)
	m.ServerName = "dhcp.example.com"
	m.BootFile = "pxelinux.0"

	encoded, err := m.Encode()
	require.NoError(t, err)

	decoded, err := Decode(encoded, nil)
	require.NoError(t, err)
	assert.Equal(t, "dhcp.example.com", decoded.ServerName)
	assert.Equal(t, "pxelinux.0", decoded.BootFile)
}

func TestMessageServerNameTooLongFails(t *testing.T) {
	m, err := NewMessage()
	require.NoError(t, err)
	long := make([]byte, snameLen+1)
	for i := range long {
		long[i] = 'a'
	}
	m.ServerName = string(long)

	_, err = m.Encode()
	assert.Error(t, err)
}

func TestOfferMessageBroadcastFlagAndAddresses(t *testing.T) {
	m, err := NewMessage()
	require.NoError(t, err)
	m.Op = OpBootReply
	m.Broadcast = true
	m.YourAddr = net.IPv4(192, 168, 1, 50)
	m.ServerAddr = net.IPv4(192, 168, 1, 1)
	m.Options.Insert(&MessageTypeOption{Value: MessageTypeOffer})
	m.Options.Insert(&Uint32Option{code: CodeAddressLeaseTime, Value: 86400})
	m.Options.Insert(&IPv4Option{code: CodeServerIdentifier, IP: net.IPv4(192, 168, 1, 1)})

	encoded, err := m.Encode()
	require.NoError(t, err)

	decoded, err := Decode(encoded, nil)
	require.NoError(t, err)
	assert.Equal(t, OpBootReply, decoded.Op)
	assert.True(t, decoded.Broadcast)
	assert.True(t, decoded.YourAddr.Equal(net.IPv4(192, 168, 1, 50)))
	mt, _ := decoded.Options.MessageType()
	assert.Equal(t, MessageTypeOffer, mt)
}
