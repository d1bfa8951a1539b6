package lumina

import (
	"context"
	"fmt"
	"math"

	"github.com/luminachain/lumina-wallet/internal/common"
	"github.com/luminachain/lumina-wallet/internal/model"
	"github.com/luminachain/lumina-wallet/internal/session"
)

// GasOverrides replaces the service defaults for one submission. Nil fields
// keep the defaults.
type GasOverrides struct {
	GasLimit *uint64
	GasPrice *uint64
}

// Submit turns an instruction into a confirmed ledger submission:
// fetch the sender's current nonce, ask the ledger for the canonical
// signing bytes, sign them locally, and submit the assembled transaction.
//
// The nonce read and the submission are not atomic. Two submissions issued
// back to back from the same wallet read the same nonce and the ledger
// rejects the second; callers wanting several instructions in quick
// succession must serialize their Submit calls.
func (s *Service) Submit(ctx context.Context, instruction model.Instruction, gas *GasOverrides) (model.Receipt, error) {
	if _, err := s.sessions.Require(); err != nil {
		return model.Receipt{}, err
	}
	w, ok := s.wallets.Load()
	if !ok {
		return model.Receipt{}, session.ErrNotAuthenticated
	}
	defer clear(w.SecretKey)

	sender, err := common.Bytes32FromSlice(w.PublicKey)
	if err != nil {
		return model.Receipt{}, fmt.Errorf("unusable public key: %w", err)
	}

	account, err := s.ledger.Account(ctx, w.Address())
	if err != nil {
		return model.Receipt{}, fmt.Errorf("failed to fetch account: %w", err)
	}

	unsigned := model.UnsignedTxRequest{
		Sender:      sender,
		Nonce:       account.Nonce,
		Instruction: instruction,
		GasLimit:    s.gasLimit,
		GasPrice:    s.gasPrice,
	}
	if gas != nil {
		if gas.GasLimit != nil {
			unsigned.GasLimit = *gas.GasLimit
		}
		if gas.GasPrice != nil {
			unsigned.GasPrice = *gas.GasPrice
		}
	}

	signingBytes, err := s.ledger.SigningBytes(ctx, unsigned)
	if err != nil {
		return model.Receipt{}, fmt.Errorf("failed to fetch signing bytes: %w", err)
	}

	signature := w.Sign(signingBytes)

	tx := model.SignedTx{
		Sender:      unsigned.Sender,
		Nonce:       unsigned.Nonce,
		Instruction: unsigned.Instruction,
		Signature:   signature,
		GasLimit:    unsigned.GasLimit,
		GasPrice:    unsigned.GasPrice,
	}

	receipt, err := s.ledger.SubmitTx(ctx, tx)
	if err != nil {
		return model.Receipt{}, fmt.Errorf("failed to submit transaction: %w", err)
	}

	s.log.Infow("transaction submitted", "tx_id", receipt.TxID, "nonce", unsigned.Nonce)
	return receipt, nil
}

// Transfer submits a transparent transfer to a "0x"-prefixed address.
func (s *Service) Transfer(ctx context.Context, to string, amount uint64, asset model.Asset, gas *GasOverrides) (model.Receipt, error) {
	target, err := common.Bytes32FromHex(to)
	if err != nil {
		return model.Receipt{}, fmt.Errorf("invalid recipient address: %w", err)
	}
	return s.Submit(ctx, model.NewTransfer(target, amount, asset), gas)
}

// MintInstruction builds a mint of the senior (LUSD) or junior (LJUN) token.
// Collateral follows the testnet convention of 120% of the minted amount,
// saturating instead of wrapping for very large amounts.
func MintInstruction(amount uint64, asset model.Asset) (model.Instruction, error) {
	collateral := amount * 120 / 100
	if amount > math.MaxUint64/120 {
		collateral = math.MaxUint64 / 100
	}
	switch asset {
	case model.AssetLUSD:
		return model.NewMintSenior(amount, collateral, nil), nil
	case model.AssetLJUN:
		return model.NewMintJunior(amount, collateral), nil
	}
	return nil, fmt.Errorf("mint supports LUSD or LJUN, got %q", asset.String())
}

// RedeemInstruction builds a redemption of the senior or junior token.
func RedeemInstruction(amount uint64, asset model.Asset) (model.Instruction, error) {
	switch asset {
	case model.AssetLUSD:
		return model.NewRedeemSenior(amount), nil
	case model.AssetLJUN:
		return model.NewRedeemJunior(amount), nil
	}
	return nil, fmt.Errorf("redeem supports LUSD or LJUN, got %q", asset.String())
}

// Mint submits a mint built by MintInstruction.
func (s *Service) Mint(ctx context.Context, amount uint64, asset model.Asset, gas *GasOverrides) (model.Receipt, error) {
	inst, err := MintInstruction(amount, asset)
	if err != nil {
		return model.Receipt{}, err
	}
	return s.Submit(ctx, inst, gas)
}

// Redeem submits a redemption built by RedeemInstruction.
func (s *Service) Redeem(ctx context.Context, amount uint64, asset model.Asset, gas *GasOverrides) (model.Receipt, error) {
	inst, err := RedeemInstruction(amount, asset)
	if err != nil {
		return model.Receipt{}, err
	}
	return s.Submit(ctx, inst, gas)
}
