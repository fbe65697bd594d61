package cli

import (
	"errors"
	"fmt"

	"github.com/fadedpez/aetheria/pkg/entities"
	"github.com/fadedpez/aetheria/pkg/services/history"
	"github.com/spf13/cobra"
)

func newBalanceCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show credits, streak and daily bonus status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderBalance(cmd.OutOrStdout(), app.Wallet.Snapshot(), app.Wallet.CheckDailyBonus(app.now()))
			return nil
		},
	}
}

func newBonusCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:         "bonus",
		Short:       "Claim today's daily bonus",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipBonusAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Wallet.EvaluateDailyBonus(cmd.Context(), app.now())
			if err != nil {
				return err
			}
			if result.Eligible {
				renderBonusClaimed(cmd.OutOrStdout(), result)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "🌙 Today's bonus is already claimed. Come back tomorrow. (streak %d)\n", result.Streak)
			return nil
		},
	}
}

func newHistoryCommand(app *App) *cobra.Command {
	var (
		limit int
		kind  string
		sync  bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent readings, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sync {
				synced, err := app.Recorder.SyncMirror(cmd.Context())
				if errors.Is(err, history.ErrNoMirror) {
					return fmt.Errorf("set ELASTICSEARCH_URL to sync history")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Synced %d entries to the history mirror.\n", synced)
				if err != nil {
					return fmt.Errorf("some entries could not be synced: %w", err)
				}
				return nil
			}

			var entries []entities.HistoryEntry
			if kind == "" {
				entries = app.Recorder.Recent(limit)
			} else {
				k := entities.Kind(kind)
				if !k.Valid() {
					return fmt.Errorf("unknown kind %q, expected tarot, dream or astral", kind)
				}
				for _, e := range app.Recorder.Recent(len(app.Wallet.History())) {
					if e.Kind == k && len(entries) < limit {
						entries = append(entries, e)
					}
				}
			}
			renderHistory(cmd.OutOrStdout(), entries)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", history.DefaultRecent, "Number of entries to show")
	cmd.Flags().StringVar(&kind, "kind", "", "Only show tarot, dream or astral entries")
	cmd.Flags().BoolVar(&sync, "sync", false, "Re-index every entry into the Elasticsearch mirror")
	return cmd
}

func newSettingsCommand(app *App) *cobra.Command {
	var sound, haptics, tutorialSeen bool

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change sound and haptic feedback",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if cmd.Flags().Changed("sound") {
				app.Wallet.SetSoundEnabled(ctx, sound)
			}
			if cmd.Flags().Changed("haptics") {
				app.Wallet.SetHapticEnabled(ctx, haptics)
			}
			if tutorialSeen {
				app.Wallet.MarkTutorialSeen(ctx)
			}
			renderSettings(cmd.OutOrStdout(), app.Wallet.Snapshot())
			return nil
		},
	}
	cmd.Flags().BoolVar(&sound, "sound", true, "Enable sound cues")
	cmd.Flags().BoolVar(&haptics, "haptics", true, "Enable haptic cues")
	cmd.Flags().BoolVar(&tutorialSeen, "tutorial-seen", false, "Mark the tutorial as seen")
	return cmd
}

func newResetCommand(app *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:         "reset",
		Short:       "Wipe the wallet back to its starting state",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipBonusAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout(), opts.assumeYes)
			ok, err := p.Ask("This erases your credits, streak and history. Continue?")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Reset cancelled.")
				return nil
			}

			app.Wallet.Reset(cmd.Context())
			app.Recorder.ClearMirror(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "✨ Wallet reset. You have %d credits.\n", app.Wallet.Balance())
			return nil
		},
	}
}
