package dhcpv4

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeString(t *testing.T) {
	assert.Equal(t, "SubnetMask", CodeSubnetMask.String())
	assert.Equal(t, "ClasslessStaticRoute", CodeClasslessStaticRoute.String())
	assert.Equal(t, "End", CodeEnd.String())
	assert.Equal(t, "Unknown(200)", Code(200).String())
}

func TestMessageTypeString(t *testing.T) {
	assert.Equal(t, "DHCPDISCOVER", MessageTypeDiscover.String())
	assert.Equal(t, "DHCPACK", MessageTypeAck.String())
	assert.Equal(t, "Unknown(250)", MessageType(250).String())
}
