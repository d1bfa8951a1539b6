package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/luminachain/lumina-wallet/internal/model"

	"github.com/spf13/cobra"
)

var (
	sendTo       string
	sendAmount   uint64
	sendAsset    string
	mintAmount   uint64
	mintAsset    string
	redeemAmount uint64
	redeemAsset  string
	address      string
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a transfer",
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := buildService()
		if err != nil {
			return err
		}

		asset, err := model.ParseAsset(sendAsset)
		if err != nil {
			return err
		}

		receipt, err := service.Transfer(context.Background(), sendTo, sendAmount, asset, nil)
		if err != nil {
			return err
		}

		fmt.Println("Submitted:", receipt.TxID)
		return nil
	},
}

var mintCmd = &cobra.Command{
	Use:   "mint",
	Short: "Mint senior (LUSD) or junior (LJUN) tokens",
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := buildService()
		if err != nil {
			return err
		}

		asset, err := model.ParseAsset(mintAsset)
		if err != nil {
			return err
		}

		receipt, err := service.Mint(context.Background(), mintAmount, asset, nil)
		if err != nil {
			return err
		}

		fmt.Println("Submitted:", receipt.TxID)
		return nil
	},
}

var redeemCmd = &cobra.Command{
	Use:   "redeem",
	Short: "Redeem senior (LUSD) or junior (LJUN) tokens",
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := buildService()
		if err != nil {
			return err
		}

		asset, err := model.ParseAsset(redeemAsset)
		if err != nil {
			return err
		}

		receipt, err := service.Redeem(context.Background(), redeemAmount, asset, nil)
		if err != nil {
			return err
		}

		fmt.Println("Submitted:", receipt.TxID)
		return nil
	},
}

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show an account balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := buildService()
		if err != nil {
			return err
		}

		account, err := service.Balance(context.Background(), address)
		if err != nil {
			return err
		}

		fmt.Println("Address:", account.Address)
		fmt.Println("LUSD:", account.LUSDBalance)
		fmt.Println("LJUN:", account.LJUNBalance)
		fmt.Println("LUMINA:", account.LuminaBalance)
		fmt.Println("Nonce:", account.Nonce)
		return nil
	},
}

var faucetCmd = &cobra.Command{
	Use:   "faucet",
	Short: "Request test funds",
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := buildService()
		if err != nil {
			return err
		}

		reply, err := service.Faucet(context.Background(), address)
		if err != nil {
			return err
		}

		fmt.Printf("Funded %s with %d %s\n", reply.Address, reply.Amount, reply.Asset)
		return nil
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Show ledger health",
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := buildService()
		if err != nil {
			return err
		}

		raw, err := service.Health(context.Background())
		if err != nil {
			return err
		}
		return printJSON(raw)
	},
}

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Show ledger state",
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := buildService()
		if err != nil {
			return err
		}

		raw, err := service.State(context.Background())
		if err != nil {
			return err
		}
		return printJSON(raw)
	},
}

func printJSON(raw json.RawMessage) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(raw)
}

func init() {
	sendCmd.Flags().StringVarP(&sendTo, "to", "t", "", "Recipient 0x address.")
	sendCmd.Flags().Uint64VarP(&sendAmount, "amount", "m", 0, "Amount in base units.")
	sendCmd.Flags().StringVarP(&sendAsset, "asset", "a", "LUSD", "Asset: LUSD, LJUN, or LUMINA.")
	sendCmd.MarkFlagRequired("to")
	sendCmd.MarkFlagRequired("amount")

	mintCmd.Flags().Uint64VarP(&mintAmount, "amount", "m", 0, "Amount in base units.")
	mintCmd.Flags().StringVarP(&mintAsset, "asset", "a", "LUSD", "Asset: LUSD or LJUN.")
	mintCmd.MarkFlagRequired("amount")

	redeemCmd.Flags().Uint64VarP(&redeemAmount, "amount", "m", 0, "Amount in base units.")
	redeemCmd.Flags().StringVarP(&redeemAsset, "asset", "a", "LUSD", "Asset: LUSD or LJUN.")
	redeemCmd.MarkFlagRequired("amount")

	balanceCmd.Flags().StringVarP(&address, "address", "d", "", "0x address (defaults to the session address).")
	faucetCmd.Flags().StringVarP(&address, "address", "d", "", "0x address (defaults to the session address).")

	rootCmd.AddCommand(sendCmd, mintCmd, redeemCmd, balanceCmd, faucetCmd, healthCmd, stateCmd)
}
