package cli

import (
	"github.com/spf13/cobra"
)

func newStoreCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "store",
		Short: "List credit packages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderCatalog(cmd.OutOrStdout(), app.Shop.Catalog(), app.Wallet.Balance())
			return nil
		},
	}
}

func newBuyCommand(app *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "buy PACKAGE_ID",
		Short: "Buy a credit package (simulated, no payment is taken)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout(), opts.assumeYes)
			receipt, err := app.Shop.Purchase(cmd.Context(), args[0], p)
			if err != nil {
				return err
			}
			renderReceipt(cmd.OutOrStdout(), receipt)
			return nil
		},
	}
}

func newAdCommand(app *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ad",
		Short: "Watch a reward video for free credits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout(), opts.assumeYes)
			receipt, err := app.Shop.WatchAd(cmd.Context(), p)
			if err != nil {
				return err
			}
			renderReceipt(cmd.OutOrStdout(), receipt)
			return nil
		},
	}
}
