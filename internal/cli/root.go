package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fadedpez/aetheria/internal/config"
	"github.com/fadedpez/aetheria/internal/logging"
	"github.com/fadedpez/aetheria/internal/types"
	"github.com/spf13/cobra"
)

// Commands carrying this annotation do not trigger the automatic daily bonus
const skipBonusAnnotation = "aetheria/skip-bonus"

type rootOptions struct {
	assumeYes bool
	noBonus   bool
}

// NewRootCommand builds the command tree over app
func NewRootCommand(app *App) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "aetheria",
		Short: "Spend credits on tarot, dream and astral readings",
		Long: `Aetheria is a mystical oracle for the terminal. Readings cost credits:
tarot 20, dream interpretation 15, astral guidance 25. A failed reading is
always refunded in full. Claim a daily bonus, watch a reward video or buy a
credit package when you run low.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.noBonus || cmd.Annotations[skipBonusAnnotation] != "" {
				return nil
			}
			result, err := app.Wallet.EvaluateDailyBonus(cmd.Context(), app.now())
			if err != nil {
				return err
			}
			if result.Eligible {
				renderBonusClaimed(cmd.OutOrStdout(), result)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if err := app.Wallet.PersistenceError(); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "⚠️  Your wallet could not be saved. Changes this session may be lost.")
			}
		},
	}

	root.PersistentFlags().BoolVarP(&opts.assumeYes, "yes", "y", false, "Confirm purchases and resets without prompting")
	root.PersistentFlags().BoolVar(&opts.noBonus, "no-bonus", false, "Do not claim the daily bonus on this run")

	root.AddCommand(
		newTarotCommand(app),
		newDreamCommand(app),
		newAstralCommand(app),
		newSymbolCommand(app),
		newBalanceCommand(app),
		newBonusCommand(app),
		newHistoryCommand(app),
		newSettingsCommand(app),
		newResetCommand(app, opts),
		newStoreCommand(app),
		newBuyCommand(app, opts),
		newAdCommand(app, opts),
	)
	return root
}

// Execute loads configuration, wires the app and runs the command line. It
// returns the process exit code.
func Execute(ctx context.Context, args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return 1
	}

	logger := logging.NewLogger(logging.ParseLevel(cfg.LogLevel))
	app := NewApp(ctx, cfg, logger, os.Stdout)
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("[APP] Error closing storage: %v", err)
		}
	}()

	root := NewRootCommand(app)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "❌", errorMessage(err))
		return 1
	}
	return 0
}

func errorMessage(err error) string {
	var appErr *types.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
