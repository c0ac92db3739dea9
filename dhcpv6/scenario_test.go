package dhcpv6

import (
	"bytes"
	"net"
	"testing"
	"time"
)

// TestDecodeSolicitCapture decodes a realistic Solicit packet and checks
// every field named by the capture, then re-encodes it and checks the
// result round-trips to the identical bytes.
func TestDecodeSolicitCapture(t *testing.T) {
	fixtbyte := []byte{
		// message type (Solicit) + xid
		1, 16, 8, 116,
		// ClientID, DUID-LLT
		0, 1, 0, 14, 0, 1, 0, 1, 29, 205, 101, 0, 170, 187, 204, 221, 238, 255,
		// IA_NA
		0, 3, 0, 12, 39, 254, 143, 149, 0, 0, 14, 16, 0, 0, 21, 24,
		// Option Request: DNS Server, DNS Search List
		0, 6, 0, 4, 0, 23, 0, 24,
		// Elapsed Time: 0
		0, 8, 0, 2, 0, 0,
	}
	if len(fixtbyte) != 52 {
		t.Fatalf("fixture must be 52 bytes, is %d", len(fixtbyte))
	}

	msg, err := DecodeMessage(fixtbyte)
	if err != nil {
		t.Fatalf("could not decode fixture: %s", err)
	}

	if msg.MessageType != MessageTypeSolicit {
		t.Errorf("expected message type %s, got %s", MessageTypeSolicit, msg.MessageType)
	}
	fixtxid := uint32(0x100874)
	if msg.Xid != fixtxid {
		t.Errorf("expected xid %#x, got %#x", fixtxid, msg.Xid)
	}

	clientID, ok := msg.HasOption(OptionTypeClientID).(*OptionClientID)
	if !ok {
		t.Fatal("expected ClientID option")
	}
	if clientID.Len() != 14 {
		t.Errorf("expected ClientID length 14, got %d", clientID.Len())
	}

	oro, ok := msg.HasOption(OptionTypeOptionRequest).(*OptionOptionRequest)
	if !ok {
		t.Fatal("expected OptionRequest option")
	}
	if !oro.HasOption(OptionTypeDNSServer) || !oro.HasOption(OptionTypeDNSSearchList) {
		t.Errorf("expected ORO to request DNS Server and DNS Search List, got %v", oro.Options)
	}

	elapsed, ok := msg.HasOption(OptionTypeElapsedTime).(*OptionElapsedTime)
	if !ok {
		t.Fatal("expected ElapsedTime option")
	}
	if elapsed.ElapsedTime != 0 {
		t.Errorf("expected elapsed time 0, got %s", elapsed.ElapsedTime)
	}

	iana, ok := msg.HasOption(OptionTypeIANA).(*OptionIANA)
	if !ok {
		t.Fatal("expected IA_NA option")
	}
	fixtiaid := uint32(0x27fe8f95)
	if iana.IAID != fixtiaid {
		t.Errorf("expected IAID %#x, got %#x", fixtiaid, iana.IAID)
	}
	if iana.T1 != 3600*time.Second {
		t.Errorf("expected T1 3600s, got %s", iana.T1)
	}
	if iana.T2 != 5400*time.Second {
		t.Errorf("expected T2 5400s, got %s", iana.T2)
	}
	if iana.HasOption(OptionTypeIAAddress) != nil {
		t.Error("expected IA_NA to carry no nested options")
	}

	mshByte, err := msg.Marshal()
	if err != nil {
		t.Fatalf("error re-encoding Solicit: %s", err)
	}
	if !bytes.Equal(mshByte, fixtbyte) {
		t.Errorf("re-encoded Solicit didn't match fixture!\nfixture: %v\nmarshal: %v", fixtbyte, mshByte)
	}
}

// TestIANAWithIAAddrLength constructs an IA_NA carrying a single IA_Addr and
// checks the outer option's length works out to the header plus the nested
// option's own header plus body: 12 + (4 + 24) = 40.
func TestIANAWithIAAddrLength(t *testing.T) {
	iana := &OptionIANA{
		IAID: 0xAABB,
		T1:   0xCCDDEEFF * time.Second,
		T2:   0x11223344 * time.Second,
	}
	iaaddr := &OptionIAAddress{
		Address:           net.ParseIP("2001:db8::284"),
		PreferredLifetime: 120 * time.Second,
		ValidLifetime:     120 * time.Second,
	}
	iana.AddOption(iaaddr)

	fixtlen := uint16(12 + (4 + 24))
	if iana.Len() != fixtlen {
		t.Fatalf("expected outer length %d, got %d", fixtlen, iana.Len())
	}

	mshByte, err := iana.Marshal()
	if err != nil {
		t.Fatalf("error marshalling IA_NA: %s", err)
	}

	list, err := DecodeOptions(mshByte)
	if err != nil {
		t.Fatalf("error decoding IA_NA: %s", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected exactly 1 option, got %d", len(list))
	}

	got := list[0].(*OptionIANA)
	if got.IAID != iana.IAID || got.T1 != iana.T1 || got.T2 != iana.T2 {
		t.Errorf("decoded IA_NA fields don't match: %+v vs %+v", got, iana)
	}

	gotAddr, ok := got.HasOption(OptionTypeIAAddress).(*OptionIAAddress)
	if !ok {
		t.Fatal("expected nested IA_Addr option")
	}
	if !gotAddr.Address.Equal(iaaddr.Address) {
		t.Errorf("expected address %s, got %s", iaaddr.Address, gotAddr.Address)
	}
	if gotAddr.PreferredLifetime != iaaddr.PreferredLifetime || gotAddr.ValidLifetime != iaaddr.ValidLifetime {
		t.Errorf("expected lifetimes %s/%s, got %s/%s", iaaddr.PreferredLifetime, iaaddr.ValidLifetime, gotAddr.PreferredLifetime, gotAddr.ValidLifetime)
	}
}
