package dhcpv6

import (
	"bytes"
	"net"
	"testing"
	"time"
)

func TestOptionIATA(t *testing.T) {
	opt := &OptionIATA{IAID: 0xAABBCCDD}
	opt.AddOption(&OptionStatusCode{Code: StatusCodeSuccess, Message: "ok"})

	b, err := opt.Marshal()
	if err != nil {
		t.Fatalf("error marshalling OptionIATA: %s", err)
	}

	list, err := DecodeOptions(b)
	if err != nil {
		t.Fatalf("error decoding OptionIATA: %s", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected exactly 1 option, got %d", len(list))
	}

	got := list[0].(*OptionIATA)
	if got.IAID != opt.IAID {
		t.Errorf("expected IAID %d, got %d", opt.IAID, got.IAID)
	}
	if got.HasOption(OptionTypeStatusCode) == nil {
		t.Error("expected nested status-code option")
	}
}

func TestOptionIAPD(t *testing.T) {
	opt := &OptionIAPD{IAID: 1, T1: 3600 * time.Second, T2: 5400 * time.Second}
	prefix := &OptionIAPrefix{
		PreferredLifetime: 100 * time.Second,
		ValidLifetime:     200 * time.Second,
		PrefixLength:      56,
		Prefix:            net.ParseIP("2001:db8:abcd::"),
	}
	opt.AddOption(prefix)

	b, err := opt.Marshal()
	if err != nil {
		t.Fatalf("error marshalling OptionIAPD: %s", err)
	}

	list, err := DecodeOptions(b)
	if err != nil {
		t.Fatalf("error decoding OptionIAPD: %s", err)
	}
	got := list[0].(*OptionIAPD)
	if got.T1 != opt.T1 || got.T2 != opt.T2 {
		t.Errorf("expected T1/T2 %d/%d, got %d/%d", opt.T1, opt.T2, got.T1, got.T2)
	}

	nested := got.HasOption(OptionTypeIAPrefix)
	if nested == nil {
		t.Fatal("expected nested IA_PD-prefix option")
	}
	gotPrefix := nested.(*OptionIAPrefix)
	if gotPrefix.PrefixLength != 56 {
		t.Errorf("expected prefix length 56, got %d", gotPrefix.PrefixLength)
	}
	if !gotPrefix.Prefix.Equal(prefix.Prefix) {
		t.Errorf("expected prefix %s, got %s", prefix.Prefix, gotPrefix.Prefix)
	}
}

func TestOptionVendorOpts(t *testing.T) {
	opt := &OptionVendorOpts{EnterpriseNumber: 9}
	opt.AddOption(&OptionInterfaceID{ID: []byte{1, 2, 3}})

	b, err := opt.Marshal()
	if err != nil {
		t.Fatalf("error marshalling OptionVendorOpts: %s", err)
	}

	list, err := DecodeOptions(b)
	if err != nil {
		t.Fatalf("error decoding OptionVendorOpts: %s", err)
	}
	got := list[0].(*OptionVendorOpts)
	if got.EnterpriseNumber != 9 {
		t.Errorf("expected enterprise number 9, got %d", got.EnterpriseNumber)
	}
	if got.HasOption(OptionTypeInterfaceID) == nil {
		t.Error("expected nested interface-id option")
	}
}

func TestOptionDNSSearchListRoundTrip(t *testing.T) {
	opt := OptionDNSSearchList{Domains: []string{"example.com", "foo.example.com"}}
	b, err := opt.Marshal()
	if err != nil {
		t.Fatalf("error marshalling OptionDNSSearchList: %s", err)
	}

	list, err := DecodeOptions(b)
	if err != nil {
		t.Fatalf("error decoding OptionDNSSearchList: %s", err)
	}
	got := list[0].(*OptionDNSSearchList)
	if len(got.Domains) != 2 || got.Domains[0] != "example.com." || got.Domains[1] != "foo.example.com." {
		t.Errorf("unexpected domains: %v", got.Domains)
	}
}

func TestOptionNtpServerRoundTrip(t *testing.T) {
	opt := OptionNtpServer{SubOptions: []NtpServerSubOption{
		{Type: NtpServerSubOptionTypeServerAddress, Address: net.ParseIP("2001:db8::123")},
		{Type: NtpServerSubOptionTypeFQDN, FQDN: "ntp.example.com"},
	}}
	b, err := opt.Marshal()
	if err != nil {
		t.Fatalf("error marshalling OptionNtpServer: %s", err)
	}

	list, err := DecodeOptions(b)
	if err != nil {
		t.Fatalf("error decoding OptionNtpServer: %s", err)
	}
	got := list[0].(*OptionNtpServer)
	if len(got.SubOptions) != 2 {
		t.Fatalf("expected 2 sub-options, got %d", len(got.SubOptions))
	}
	if !got.SubOptions[0].Address.Equal(net.ParseIP("2001:db8::123")) {
		t.Errorf("unexpected server address: %s", got.SubOptions[0].Address)
	}
	if got.SubOptions[1].FQDN != "ntp.example.com." {
		t.Errorf("unexpected fqdn: %s", got.SubOptions[1].FQDN)
	}
}

func TestOptionUnknownPreservesBytes(t *testing.T) {
	fixtbyte := []byte{0, 200, 0, 3, 1, 2, 3}
	list, err := DecodeOptions(fixtbyte)
	if err != nil {
		t.Fatalf("error decoding fixture: %s", err)
	}
	got, ok := list[0].(*OptionUnknown)
	if !ok {
		t.Fatalf("expected *OptionUnknown, got %T", list[0])
	}
	if got.Type() != OptionType(200) {
		t.Errorf("expected type 200, got %d", got.Type())
	}
	if !bytes.Equal(got.Data, []byte{1, 2, 3}) {
		t.Errorf("expected data %v, got %v", []byte{1, 2, 3}, got.Data)
	}
	mshByte, err := got.Marshal()
	if err != nil {
		t.Fatalf("error marshalling OptionUnknown: %s", err)
	}
	if !bytes.Equal(mshByte, fixtbyte) {
		t.Errorf("marshalled OptionUnknown didn't round-trip: %v vs %v", fixtbyte, mshByte)
	}
}

func TestOptionsMultiplicity(t *testing.T) {
	var opts Options
	opts.Insert(&OptionIANA{IAID: 1})
	opts.Insert(&OptionClientID{})
	opts.Insert(&OptionIANA{IAID: 2})

	all := opts.GetAll(OptionTypeIANA)
	if len(all) != 2 {
		t.Fatalf("expected 2 IA_NA options, got %d", len(all))
	}
	if all[0].(*OptionIANA).IAID != 1 || all[1].(*OptionIANA).IAID != 2 {
		t.Error("expected insertion order preserved within same type")
	}

	removed := opts.RemoveAll(OptionTypeIANA)
	if len(removed) != 1 {
		t.Fatalf("expected 1 option left after RemoveAll, got %d", len(removed))
	}
}
