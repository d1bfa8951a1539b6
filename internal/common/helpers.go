package common

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	// AddressBytes is the raw length of a Lumina address (an Ed25519 public key).
	AddressBytes = 32
)

// EncodeAddress converts a 32-byte public key to its "0x"-prefixed hex form.
func EncodeAddress(publicKey []byte) string {
	return "0x" + hex.EncodeToString(publicKey)
}

// DecodeAddress parses a "0x"-prefixed (or bare) hex address into 32 raw bytes.
func DecodeAddress(address string) ([]byte, error) {
	raw, err := hex.DecodeString(StripHexPrefix(address))
	if err != nil {
		return nil, fmt.Errorf("invalid address hex: %w", err)
	}
	if len(raw) != AddressBytes {
		return nil, fmt.Errorf("address must be %d bytes, got %d", AddressBytes, len(raw))
	}
	return raw, nil
}

// StripHexPrefix removes a leading "0x" or "0X" if present.
func StripHexPrefix(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s[2:]
	}
	return s
}

// ByteSlice is a []byte that marshals to a JSON array of numbers instead of
// base64. The ledger serializes Vec<u8> fields (signatures, proofs) this way,
// so the client must match it byte for byte.
type ByteSlice []byte

// MarshalJSON encodes the slice as [1,2,3,...].
func (b ByteSlice) MarshalJSON() ([]byte, error) {
	if b == nil {
		return []byte("[]"), nil
	}
	out := make([]uint16, len(b))
	for i, v := range b {
		out[i] = uint16(v)
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts a JSON array of numbers in 0..255.
func (b *ByteSlice) UnmarshalJSON(data []byte) error {
	var raw []int
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("byte array must be a numeric JSON array: %w", err)
	}
	out := make([]byte, len(raw))
	for i, v := range raw {
		if v < 0 || v > 255 {
			return fmt.Errorf("byte array element %d out of range: %d", i, v)
		}
		out[i] = byte(v)
	}
	*b = out
	return nil
}

// Bytes32 is a fixed 32-byte value (sender keys, transfer targets) with the
// same numeric-array JSON encoding as ByteSlice.
type Bytes32 [32]byte

// Bytes32FromSlice copies a 32-byte slice into a Bytes32.
func Bytes32FromSlice(raw []byte) (Bytes32, error) {
	var out Bytes32
	if len(raw) != 32 {
		return out, fmt.Errorf("expected 32 bytes, got %d", len(raw))
	}
	copy(out[:], raw)
	return out, nil
}

// Bytes32FromHex parses a 64-character hex string (optionally 0x-prefixed).
func Bytes32FromHex(s string) (Bytes32, error) {
	raw, err := hex.DecodeString(StripHexPrefix(s))
	if err != nil {
		return Bytes32{}, fmt.Errorf("invalid hex: %w", err)
	}
	return Bytes32FromSlice(raw)
}

// Hex returns the bare hex encoding of the value.
func (b Bytes32) Hex() string {
	return hex.EncodeToString(b[:])
}

// MarshalJSON encodes the value as a 32-element numeric array.
func (b Bytes32) MarshalJSON() ([]byte, error) {
	return ByteSlice(b[:]).MarshalJSON()
}

// UnmarshalJSON decodes a 32-element numeric array.
func (b *Bytes32) UnmarshalJSON(data []byte) error {
	var s ByteSlice
	if err := s.UnmarshalJSON(data); err != nil {
		return err
	}
	if len(s) != 32 {
		return fmt.Errorf("expected 32 bytes, got %d", len(s))
	}
	copy(b[:], s)
	return nil
}
