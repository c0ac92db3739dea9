package dhcpv4

import (
	"net"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-dhcp/dhcpwire/wire"
)

func TestIPv4OptionRoundTrip(t *testing.T) {
	opt := &IPv4Option{code: CodeSubnetMask, IP: net.IPv4(255, 255, 255, 0)}
	val, err := opt.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte{255, 255, 255, 0}, val)

	decoded, err := decodeOption(CodeSubnetMask, val)
	require.NoError(t, err)
	got, ok := decoded.(*IPv4Option)
	require.True(t, ok)
	assert.True(t, got.IP.Equal(opt.IP))
}

func TestIPv4ListOptionRoundTrip(t *testing.T) {
	opt := &IPv4ListOption{code: CodeRouter, IPs: []net.IP{
		net.IPv4(192, 168, 1, 1), net.IPv4(192, 168, 1, 2),
	}}
	val, err := opt.Value()
	require.NoError(t, err)
	require.Len(t, val, 8)

	decoded, err := decodeOption(CodeRouter, val)
	require.NoError(t, err)
	got := decoded.(*IPv4ListOption)
	require.Len(t, got.IPs, 2)
	assert.True(t, got.IPs[0].Equal(net.IPv4(192, 168, 1, 1)))
}

func TestBoolOptionWire(t *testing.T) {
	opt := &BoolOption{code: CodeIPForwarding, Value: true}
	val, err := opt.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, val)

	decoded, err := decodeOption(CodeIPForwarding, []byte{2})
	require.NoError(t, err)
	assert.False(t, decoded.(*BoolOption).Value, "only byte value 1 decodes true")
}

func TestClasslessStaticRouteExactBytes(t *testing.T) {
	opt := &ClasslessStaticRouteOption{Routes: []ClasslessRoute{
		{
			Dest:   net.IPNet{IP: net.IPv4(10, 0, 0, 0).To4(), Mask: net.CIDRMask(8, 32)},
			Router: net.IPv4(192, 168, 1, 1),
		},
		{
			Dest:   net.IPNet{IP: net.IPv4(172, 16, 0, 0).To4(), Mask: net.CIDRMask(24, 32)},
			Router: net.IPv4(192, 168, 1, 1),
		},
	}}
	val, err := opt.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte{
		8, 10, 192, 168, 1, 1,
		24, 172, 16, 0, 192, 168, 1, 1,
	}, val)

	decoded, err := decodeOption(CodeClasslessStaticRoute, val)
	require.NoError(t, err)
	got := decoded.(*ClasslessStaticRouteOption)
	require.Len(t, got.Routes, 2)
	assert.True(t, got.Routes[0].Router.Equal(net.IPv4(192, 168, 1, 1)))
	ones, _ := got.Routes[1].Dest.Mask.Size()
	assert.Equal(t, 24, ones)
}

func TestClientFQDNEBitRoundTrip(t *testing.T) {
	opt := &ClientFQDNOption{
		Flags:  FQDNFlagE,
		R1:     0,
		R2:     0,
		Domain: "www.google.com.",
	}
	val, err := opt.Value()
	require.NoError(t, err)
	// RFC 1035 labels including the terminating root label byte:
	// (1+3 www) + (1+6 google) + (1+3 com) + 1 root = 19, plus flags/r1/r2.
	want := []byte{
		0x04, 0x00, 0x00,
		3, 'w', 'w', 'w',
		6, 'g', 'o', 'o', 'g', 'l', 'e',
		3, 'c', 'o', 'm',
		0,
	}
	assert.Equal(t, want, val)
	assert.Len(t, val, 19)

	decoded, err := decodeOption(CodeClientFQDN, val)
	require.NoError(t, err)
	got := decoded.(*ClientFQDNOption)
	assert.Equal(t, "www.google.com.", got.Domain)
	assert.True(t, got.Flags.E())
}

func TestClientFQDNAsciiRoundTrip(t *testing.T) {
	opt := &ClientFQDNOption{Flags: FQDNFlagS, R1: 0xFF, R2: 0xFF, Domain: "host.example.com"}
	val, err := opt.Value()
	require.NoError(t, err)

	decoded, err := decodeOption(CodeClientFQDN, val)
	require.NoError(t, err)
	got := decoded.(*ClientFQDNOption)
	assert.Equal(t, "host.example.com", got.Domain)
	assert.False(t, got.Flags.E())
}

func TestUserClassSubClasses(t *testing.T) {
	opt := &BytesOption{code: CodeUserClass, Value: []byte{3, 'f', 'o', 'o', 2, 'h', 'i'}}
	classes, err := opt.SubClasses()
	require.NoError(t, err)
	require.Len(t, classes, 2)
	assert.Equal(t, []byte("foo"), classes[0])
	assert.Equal(t, []byte("hi"), classes[1])
}

func TestParameterRequestListRoundTrip(t *testing.T) {
	opt := &ParameterRequestListOption{Codes: []Code{CodeSubnetMask, CodeRouter, CodeDomainNameServer}}
	val, err := opt.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 3, 6}, val)
}

func TestClientFQDNWireRecord(t *testing.T) {
	s := NewOptionSet()
	s.Insert(&ClientFQDNOption{Flags: FQDNFlagE, Domain: "www.google.com."})
	out, err := s.Encode()
	require.NoError(t, err)
	want := []byte{
		81, 19,
		0x04, 0x00, 0x00,
		3, 'w', 'w', 'w',
		6, 'g', 'o', 'o', 'g', 'l', 'e',
		3, 'c', 'o', 'm',
		0,
		uint8(CodeEnd),
	}
	assert.Equal(t, want, out)
}

func TestCaptivePortalRoundTrip(t *testing.T) {
	decoded, err := decodeOption(CodeCaptivePortal, []byte("https://portal.example.com/login"))
	require.NoError(t, err)
	got := decoded.(*CaptivePortalOption)
	assert.Equal(t, "https://portal.example.com/login", got.URL)

	val, err := got.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("https://portal.example.com/login"), val)
}

func TestCaptivePortalRejectsInvalidURL(t *testing.T) {
	_, err := decodeOption(CodeCaptivePortal, []byte("not a url"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, wire.ErrURLParse))
}

func TestUnknownOptionPreservesBytes(t *testing.T) {
	decoded, err := decodeOption(Code(200), []byte{1, 2, 3})
	require.NoError(t, err)
	got := decoded.(*UnknownOption)
	assert.Equal(t, []byte{1, 2, 3}, got.Data)
}
