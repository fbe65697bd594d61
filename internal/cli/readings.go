package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fadedpez/aetheria/internal/types"
	"github.com/fadedpez/aetheria/pkg/services/oracle"
	"github.com/spf13/cobra"
)

func newTarotCommand(app *App) *cobra.Command {
	var imagesDir string

	cmd := &cobra.Command{
		Use:   "tarot QUESTION",
		Short: "Draw a three-card Past/Present/Future spread (20 credits)",
		RunE: func(cmd *cobra.Command, args []string) error {
			orc, err := app.Oracle(cmd.Context())
			if err != nil {
				return err
			}
			ctx, cancel := app.requestContext(cmd)
			defer cancel()

			result, err := orc.Tarot(ctx, strings.Join(args, " "))
			if err != nil {
				return actionError(cmd, err)
			}

			out := cmd.OutOrStdout()
			renderTarot(out, result.Reading, result.Outcome)
			for slot := range result.Illustrations.Updates() {
				path := ""
				if imagesDir != "" && !slot.Placeholder() {
					path, err = saveIllustration(imagesDir, result.Outcome.Entry.ID, slot)
					if err != nil {
						app.Logger.Warn("[APP] Could not save illustration %d: %v", slot.Index, err)
					}
				}
				renderIllustration(out, slot, path)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&imagesDir, "images", "", "Directory to save card illustrations into")
	return cmd
}

func newDreamCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dream DESCRIPTION",
		Short: "Interpret a dream (15 credits)",
		RunE: func(cmd *cobra.Command, args []string) error {
			orc, err := app.Oracle(cmd.Context())
			if err != nil {
				return err
			}
			ctx, cancel := app.requestContext(cmd)
			defer cancel()

			reading, outcome, err := orc.Dream(ctx, strings.Join(args, " "))
			if err != nil {
				return actionError(cmd, err)
			}
			renderDream(cmd.OutOrStdout(), reading, outcome)
			return nil
		},
	}
}

func newAstralCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "astral QUESTION",
		Short: "Receive astral projection guidance (25 credits)",
		RunE: func(cmd *cobra.Command, args []string) error {
			orc, err := app.Oracle(cmd.Context())
			if err != nil {
				return err
			}
			ctx, cancel := app.requestContext(cmd)
			defer cancel()

			reading, outcome, err := orc.Astral(ctx, strings.Join(args, " "))
			if err != nil {
				return actionError(cmd, err)
			}
			renderAstral(cmd.OutOrStdout(), reading, outcome)
			return nil
		},
	}
}

func newSymbolCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "symbol WORD",
		Short: "Look up a dream symbol and past dreams that mention it (free)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orc, err := app.Oracle(cmd.Context())
			if err != nil {
				return err
			}
			ctx, cancel := app.requestContext(cmd)
			defer cancel()

			renderSymbol(cmd.OutOrStdout(), orc.Symbol(ctx, strings.Join(args, " ")))
			return nil
		},
	}
}

func (a *App) requestContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), a.Config.RequestTimeout)
}

// actionError points the user at the store when they ran out of credits
func actionError(cmd *cobra.Command, err error) error {
	if types.IsCode(err, types.ErrInsufficientFunds) {
		fmt.Fprintln(cmd.ErrOrStderr(), "💰 Run `aetheria store` to see credit packages, or `aetheria ad` for free credits.")
	}
	return err
}

func saveIllustration(dir, readingID string, slot oracle.IllustrationSlot) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	ext := ".png"
	if slot.Image.MIMEType == "image/jpeg" {
		ext = ".jpg"
	}
	name := fmt.Sprintf("%s-%d%s", readingID, slot.Index+1, ext)
	if readingID == "" {
		name = fmt.Sprintf("card-%d%s", slot.Index+1, ext)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, slot.Image.Data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
