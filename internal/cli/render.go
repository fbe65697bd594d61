package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fadedpez/aetheria/pkg/entities"
	"github.com/fadedpez/aetheria/pkg/services/oracle"
	"github.com/fadedpez/aetheria/pkg/services/store"
	"github.com/fadedpez/aetheria/pkg/services/wallet"
)

const timeLayout = "Jan 2, 2006 15:04"

func renderSpent(w io.Writer, outcome oracle.Outcome) {
	fmt.Fprintf(w, "\n💎 -%d credits, %d remaining\n", outcome.Cost, outcome.Balance)
}

func renderTarot(w io.Writer, reading *entities.TarotReading, outcome oracle.Outcome) {
	fmt.Fprintln(w, "🔮 The cards have spoken")
	for _, card := range reading.Cards {
		fmt.Fprintf(w, "\n  %s · %s\n", card.Position, card.Name)
		if card.Meaning != "" {
			fmt.Fprintf(w, "    %s\n", card.Meaning)
		}
	}
	fmt.Fprintf(w, "\n%s\n", reading.Summary)
	renderSpent(w, outcome)
}

func renderIllustration(w io.Writer, slot oracle.IllustrationSlot, path string) {
	switch {
	case slot.Placeholder():
		fmt.Fprintf(w, "  🂠 %s: no illustration available\n", slot.Card.Name)
	case path != "":
		fmt.Fprintf(w, "  🖼  %s: saved to %s\n", slot.Card.Name, path)
	default:
		fmt.Fprintf(w, "  🖼  %s: illustration ready (%s, %d bytes)\n", slot.Card.Name, slot.Image.MIMEType, len(slot.Image.Data))
	}
}

func renderDream(w io.Writer, reading *entities.DreamReading, outcome oracle.Outcome) {
	fmt.Fprintln(w, "🌙 Your dream, interpreted")
	fmt.Fprintf(w, "\n%s\n", reading.Interpretation)
	if len(reading.Themes) > 0 {
		fmt.Fprintf(w, "\nThemes: %s\n", strings.Join(reading.Themes, ", "))
	}
	if reading.PsychologicalNote != "" {
		fmt.Fprintf(w, "Note: %s\n", reading.PsychologicalNote)
	}
	if len(reading.LuckyNumbers) > 0 {
		numbers := make([]string, 0, len(reading.LuckyNumbers))
		for _, n := range reading.LuckyNumbers {
			numbers = append(numbers, strconv.FormatFloat(n, 'f', -1, 64))
		}
		fmt.Fprintf(w, "Lucky numbers: %s\n", strings.Join(numbers, " "))
	}
	renderSpent(w, outcome)
}

func renderAstral(w io.Writer, reading *entities.AstralReading, outcome oracle.Outcome) {
	fmt.Fprintln(w, "✨ Guidance from beyond")
	if reading.Plane != "" {
		fmt.Fprintf(w, "Plane: %s\n", reading.Plane)
	}
	fmt.Fprintf(w, "\n%s\n", reading.Guidance)
	if reading.Technique != "" {
		fmt.Fprintf(w, "\nTechnique: %s\n", reading.Technique)
	}
	if reading.SafetyTip != "" {
		fmt.Fprintf(w, "Safety: %s\n", reading.SafetyTip)
	}
	renderSpent(w, outcome)
}

func renderSymbol(w io.Writer, insight oracle.SymbolInsight) {
	fmt.Fprintf(w, "📖 %s\n%s\n", insight.Word, insight.Meaning)
	if len(insight.Related) == 0 {
		return
	}
	fmt.Fprintln(w, "\nIn your past dreams:")
	for _, e := range insight.Related {
		fmt.Fprintf(w, "  %s  %s\n", e.Timestamp.Format(timeLayout), e.Summary)
	}
}

func renderBalance(w io.Writer, state *entities.WalletState, bonus wallet.BonusResult) {
	fmt.Fprintf(w, "💎 %d credits\n", state.Credits)
	fmt.Fprintf(w, "🔥 %d day streak\n", state.Streak)
	if bonus.Eligible {
		fmt.Fprintf(w, "🎁 Daily bonus of %d credits is waiting. Run `aetheria bonus`.\n", bonus.Amount)
	}
}

func renderBonusClaimed(w io.Writer, result wallet.BonusResult) {
	fmt.Fprintf(w, "🎁 Daily bonus: +%d credits (streak %d, balance %d)\n", result.Amount, result.Streak, result.Balance)
}

func renderHistory(w io.Writer, entries []entities.HistoryEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No readings yet.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Timestamp.Format(timeLayout), e.Kind, e.Summary)
	}
	tw.Flush()
}

func renderSettings(w io.Writer, state *entities.WalletState) {
	fmt.Fprintf(w, "Sound:    %s\n", onOff(state.SoundEnabled))
	fmt.Fprintf(w, "Haptics:  %s\n", onOff(state.HapticEnabled))
	tutorial := "not seen"
	if state.HasSeenTutorial {
		tutorial = "seen"
	}
	fmt.Fprintf(w, "Tutorial: %s\n", tutorial)
}

func renderCatalog(w io.Writer, catalog []entities.Product, balance int64) {
	fmt.Fprintf(w, "You have %d credits.\n\n", balance)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PACKAGE\tCREDITS\tPRICE\t")
	for _, p := range catalog {
		tag := ""
		if p.Popular {
			tag = "⭐ most popular"
		}
		fmt.Fprintf(tw, "%s\t%d + %d bonus\t%s\t%s\n", p.ID, p.Base, p.Bonus, p.DisplayPrice(), tag)
	}
	fmt.Fprintf(tw, "%s\t%d\tfree\twatch a video with `aetheria ad`\n", entities.AdRewardProductID, entities.AdRewardCredits)
	tw.Flush()
}

func renderReceipt(w io.Writer, receipt *store.Receipt) {
	fmt.Fprintf(w, "💎 +%d credits, balance %d\n", receipt.Granted, receipt.Balance)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
