package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/luminachain/lumina-wallet/internal/common"
	"github.com/luminachain/lumina-wallet/internal/model"
	"github.com/luminachain/lumina-wallet/lumina"
)

// Submit handles POST /tx/submit
// @Summary      Submit an instruction
// @Description  Runs the transaction pipeline: nonce fetch, remote signing bytes, local signature, submission
// @Tags         tx
// @Accept       json
// @Produce      json
// @Param        request  body      model.SubmitRequest  true  "Instruction"
// @Success      200      {object}  model.Receipt
// @Failure      400      {object}  model.ErrorResponse
// @Failure      401      {object}  model.ErrorResponse
// @Failure      502      {object}  model.ErrorResponse
// @Router       /tx/submit [post]
func (h *WalletHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	instruction, err := buildInstruction(&req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	gas := &lumina.GasOverrides{GasLimit: req.GasLimit, GasPrice: req.GasPrice}
	receipt, err := h.service.Submit(r.Context(), instruction, gas)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, receipt)
}

// buildInstruction maps the user-facing request onto a ledger instruction.
func buildInstruction(req *model.SubmitRequest) (model.Instruction, error) {
	set := 0
	if req.Transfer != nil {
		set++
	}
	if req.Mint != nil {
		set++
	}
	if req.Redeem != nil {
		set++
	}
	if set != 1 {
		return nil, fmt.Errorf("exactly one of transfer, mint, redeem must be set")
	}

	switch {
	case req.Transfer != nil:
		to, err := common.Bytes32FromHex(req.Transfer.To)
		if err != nil {
			return nil, fmt.Errorf("invalid recipient address: %w", err)
		}
		asset, err := model.ParseAsset(req.Transfer.Asset)
		if err != nil {
			return nil, err
		}
		return model.NewTransfer(to, req.Transfer.Amount, asset), nil

	case req.Mint != nil:
		asset, err := model.ParseAsset(req.Mint.Asset)
		if err != nil {
			return nil, err
		}
		return lumina.MintInstruction(req.Mint.Amount, asset)

	default:
		asset, err := model.ParseAsset(req.Redeem.Asset)
		if err != nil {
			return nil, err
		}
		return lumina.RedeemInstruction(req.Redeem.Amount, asset)
	}
}

// Faucet handles POST /faucet
// @Summary      Request test funds
// @Description  Asks the ledger faucet to fund the given address, or the session address when omitted
// @Tags         tx
// @Accept       json
// @Produce      json
// @Param        request  body      model.FaucetRequest  false  "Target address"
// @Success      200      {object}  model.FaucetResponse
// @Failure      502      {object}  model.ErrorResponse
// @Router       /faucet [post]
func (h *WalletHandler) Faucet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	// An empty body means "fund my session address"; anything else must be
	// valid JSON.
	var req model.FaucetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	reply, err := h.service.Faucet(r.Context(), req.Address)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, reply)
}
