package common

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestAddressRoundTrip(t *testing.T) {
	pub := make([]byte, 32)
	for i := range pub {
		pub[i] = byte(i)
	}

	address := EncodeAddress(pub)
	if address[:2] != "0x" {
		t.Fatalf("expected 0x prefix, got %s", address)
	}
	if len(address) != 66 {
		t.Fatalf("expected 66 characters, got %d", len(address))
	}

	raw, err := DecodeAddress(address)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(raw, pub) {
		t.Fatal("round trip changed the address bytes")
	}
}

func TestDecodeAddressRejectsBadInput(t *testing.T) {
	if _, err := DecodeAddress("0xzz"); err == nil {
		t.Fatal("expected error for non-hex address")
	}
	if _, err := DecodeAddress("0xdeadbeef"); err == nil {
		t.Fatal("expected error for short address")
	}
}

func TestByteSliceNumericArray(t *testing.T) {
	data, err := json.Marshal(ByteSlice{0, 1, 255})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "[0,1,255]" {
		t.Fatalf("expected numeric array, got %s", data)
	}

	var back ByteSlice
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !bytes.Equal(back, []byte{0, 1, 255}) {
		t.Fatalf("round trip changed bytes: %v", back)
	}
}

func TestByteSliceRejectsOutOfRange(t *testing.T) {
	var b ByteSlice
	if err := json.Unmarshal([]byte("[0,256]"), &b); err == nil {
		t.Fatal("expected error for value over 255")
	}
	if err := json.Unmarshal([]byte(`"AAEC"`), &b); err == nil {
		t.Fatal("expected error for base64 string input")
	}
}

func TestBytes32JSON(t *testing.T) {
	var v Bytes32
	v[0] = 7
	v[31] = 9

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back Bytes32
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != v {
		t.Fatal("round trip changed the value")
	}

	if err := json.Unmarshal([]byte("[1,2,3]"), &back); err == nil {
		t.Fatal("expected error for wrong length")
	}
}
