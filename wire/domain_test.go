package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackDomainName(t *testing.T) {
	b, err := PackDomainName("www.google.com.")
	require.NoError(t, err)
	assert.Equal(t, []byte{
		3, 'w', 'w', 'w', 6, 'g', 'o', 'o', 'g', 'l', 'e', 3, 'c', 'o', 'm', 0,
	}, b)
}

func TestPackDomainNameRoot(t *testing.T) {
	b, err := PackDomainName(".")
	require.NoError(t, err)
	assert.Equal(t, []byte{0}, b)
}

func TestPackDomainNameLabelTooLong(t *testing.T) {
	long := make([]byte, 64)
	for i := range long {
		long[i] = 'a'
	}
	_, err := PackDomainName(string(long) + ".com")
	assert.ErrorIs(t, err, ErrDomainEncode)
}

func TestUnpackDomainNameRoundTrip(t *testing.T) {
	packed, err := PackDomainName("example.org")
	require.NoError(t, err)
	name, next, err := unpackDomainName(packed, 0)
	require.NoError(t, err)
	assert.Equal(t, "example.org.", name)
	assert.Equal(t, len(packed), next)
}

func TestUnpackDomainNamePointerCycleRejected(t *testing.T) {
	region := []byte{0xC0, 0x00}
	_, _, err := unpackDomainName(region, 0)
	assert.ErrorIs(t, err, ErrDomainEncode)
}

func TestPackDomainNamesList(t *testing.T) {
	b, err := PackDomainNames([]string{"a.com", "b.org"})
	require.NoError(t, err)
	r := NewReader(b)
	names, err := r.ReadDomains(len(b))
	require.NoError(t, err)
	assert.Equal(t, []string{"a.com.", "b.org."}, names)
}
