package model

import (
	"encoding/json"
	"fmt"

	"github.com/luminachain/lumina-wallet/internal/common"
)

// Asset identifies a ledger asset. LUSD and LJUN encode as bare strings,
// the native gas token encodes as {"Lumina": <units>}.
type Asset struct {
	name   string
	lumina uint64
}

var (
	AssetLUSD = Asset{name: "LUSD"}
	AssetLJUN = Asset{name: "LJUN"}
)

// AssetLumina is the native gas token with an explicit unit amount.
func AssetLumina(units uint64) Asset {
	return Asset{name: "Lumina", lumina: units}
}

// ParseAsset maps a user-facing asset name to its wire form.
func ParseAsset(name string) (Asset, error) {
	switch name {
	case "LUSD", "lusd", "senior":
		return AssetLUSD, nil
	case "LJUN", "ljun", "junior":
		return AssetLJUN, nil
	case "LUMINA", "lumina":
		return AssetLumina(0), nil
	}
	return Asset{}, fmt.Errorf("unknown asset %q", name)
}

func (a Asset) String() string { return a.name }

// MarshalJSON follows the ledger's externally tagged enum encoding.
func (a Asset) MarshalJSON() ([]byte, error) {
	switch a.name {
	case "LUSD", "LJUN":
		return json.Marshal(a.name)
	case "Lumina":
		return json.Marshal(map[string]uint64{"Lumina": a.lumina})
	}
	return nil, fmt.Errorf("unknown asset %q", a.name)
}

// UnmarshalJSON accepts either the string or the tagged-object form.
func (a *Asset) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		a.name = s
		a.lumina = 0
		return nil
	}
	var obj map[string]uint64
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("invalid asset encoding: %s", data)
	}
	if v, ok := obj["Lumina"]; ok {
		a.name = "Lumina"
		a.lumina = v
		return nil
	}
	return fmt.Errorf("invalid asset encoding: %s", data)
}

// Instruction is a ledger instruction in the externally tagged form the
// signing-bytes endpoint expects, e.g. {"Transfer":{"to":[...],"amount":10}}.
type Instruction map[string]any

// NewTransfer builds a transparent transfer instruction.
func NewTransfer(to common.Bytes32, amount uint64, asset Asset) Instruction {
	return Instruction{"Transfer": struct {
		To     common.Bytes32 `json:"to"`
		Amount uint64         `json:"amount"`
		Asset  Asset          `json:"asset"`
	}{To: to, Amount: amount, Asset: asset}}
}

// NewMintSenior builds a senior stablecoin mint with its collateral proof.
func NewMintSenior(amount, collateralAmount uint64, proof []byte) Instruction {
	return Instruction{"MintSenior": struct {
		Amount           uint64           `json:"amount"`
		CollateralAmount uint64           `json:"collateral_amount"`
		Proof            common.ByteSlice `json:"proof"`
	}{Amount: amount, CollateralAmount: collateralAmount, Proof: proof}}
}

// NewRedeemSenior builds a senior redemption (enters the redeem queue).
func NewRedeemSenior(amount uint64) Instruction {
	return Instruction{"RedeemSenior": struct {
		Amount uint64 `json:"amount"`
	}{Amount: amount}}
}

// NewMintJunior builds a junior token mint.
func NewMintJunior(amount, collateralAmount uint64) Instruction {
	return Instruction{"MintJunior": struct {
		Amount           uint64 `json:"amount"`
		CollateralAmount uint64 `json:"collateral_amount"`
	}{Amount: amount, CollateralAmount: collateralAmount}}
}

// NewRedeemJunior builds a junior token redemption.
func NewRedeemJunior(amount uint64) Instruction {
	return Instruction{"RedeemJunior": struct {
		Amount uint64 `json:"amount"`
	}{Amount: amount}}
}

// UnsignedTxRequest is the unsigned transaction sent to /tx/signing_bytes.
// Nonce is advisory here: the authoritative value lives on the ledger and is
// fetched fresh before every submission.
type UnsignedTxRequest struct {
	Sender      common.Bytes32 `json:"sender"`
	Nonce       uint64         `json:"nonce"`
	Instruction Instruction    `json:"instruction"`
	GasLimit    uint64         `json:"gas_limit"`
	GasPrice    uint64         `json:"gas_price"`
}

// SignedTx is the full transaction submitted to /tx. Signature covers the
// exact signing bytes the ledger computed for the unsigned fields.
type SignedTx struct {
	Sender      common.Bytes32   `json:"sender"`
	Nonce       uint64           `json:"nonce"`
	Instruction Instruction      `json:"instruction"`
	Signature   common.ByteSlice `json:"signature"`
	GasLimit    uint64           `json:"gas_limit"`
	GasPrice    uint64           `json:"gas_price"`
}

// SigningBytesResponse is the /tx/signing_bytes reply.
type SigningBytesResponse struct {
	SigningBytesHex string `json:"signing_bytes_hex"`
}

// Receipt is the ledger's confirmation for an accepted transaction.
type Receipt struct {
	Status string `json:"status"`
	TxID   string `json:"tx_id"`
	Error  string `json:"error,omitempty"`
}
