package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fadedpez/aetheria/internal/config"
	"github.com/fadedpez/aetheria/internal/logging"
	"github.com/fadedpez/aetheria/internal/types"
	"github.com/fadedpez/aetheria/pkg/entities"
	"github.com/fadedpez/aetheria/pkg/generator"
	"github.com/fadedpez/aetheria/pkg/generator/mock"
	"github.com/fadedpez/aetheria/pkg/storage"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CLITestSuite struct {
	suite.Suite
	ctx   context.Context
	gen   *mock.MockGenerator
	store *storage.MemoryStore
	app   *App
	now   time.Time
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

func (s *CLITestSuite) SetupTest() {
	s.ctx = context.Background()
	s.gen = mock.NewMockGenerator(gomock.NewController(s.T()))
	s.store = storage.NewMemoryStore()
	s.now = time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)

	cfg := &config.Config{
		RequestTimeout: time.Second,
		StorageType:    config.StorageFile,
		DailyBonus:     10,
	}
	s.app = newApp(s.ctx, cfg, logging.Discard(), s.store, nil, &bytes.Buffer{})
	s.app.newGenerator = func(context.Context) (generator.Generator, error) { return s.gen, nil }
	s.app.now = func() time.Time { return s.now }
}

func (s *CLITestSuite) run(stdin string, args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	root := NewRootCommand(s.app)
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.ExecuteContext(s.ctx)
	return out.String(), errOut.String(), err
}

func spread() *entities.TarotReading {
	return &entities.TarotReading{
		Cards: []entities.TarotCard{
			{Name: "The Fool", Position: entities.PositionPast, Meaning: "a leap", VisualCue: "cliff"},
			{Name: "The Moon", Position: entities.PositionPresent, Meaning: "illusion", VisualCue: "moon"},
			{Name: "The Sun", Position: entities.PositionFuture, Meaning: "joy", VisualCue: "sun"},
		},
		Summary: "From uncertainty to clarity.",
	}
}

func (s *CLITestSuite) TestFirstRunClaimsDailyBonus() {
	out, _, err := s.run("", "balance")

	s.Require().NoError(err)
	s.Contains(out, "Daily bonus: +10 credits (streak 2, balance 60)")
	s.Contains(out, "60 credits")
	s.NotContains(out, "is waiting")

	out, _, err = s.run("", "balance")
	s.Require().NoError(err)
	s.NotContains(out, "Daily bonus")
	s.Equal(int64(60), s.app.Wallet.Balance())
}

func (s *CLITestSuite) TestBonusCommand() {
	out, _, err := s.run("", "bonus")
	s.Require().NoError(err)
	s.Contains(out, "+10 credits")

	out, _, err = s.run("", "bonus")
	s.Require().NoError(err)
	s.Contains(out, "already claimed")

	s.now = s.now.Add(24 * time.Hour)
	out, _, err = s.run("", "bonus")
	s.Require().NoError(err)
	s.Contains(out, "streak 3")
	s.Equal(int64(70), s.app.Wallet.Balance())
}

func (s *CLITestSuite) TestNoBonusFlag() {
	out, _, err := s.run("", "--no-bonus", "balance")

	s.Require().NoError(err)
	s.Contains(out, "50 credits")
	s.Contains(out, "Daily bonus of 10 credits is waiting")
}

func (s *CLITestSuite) TestTarot() {
	s.gen.EXPECT().Tarot(gomock.Any(), "will it rain").Return(spread(), nil)
	s.gen.EXPECT().Illustration(gomock.Any(), "cliff").Return(&entities.Illustration{MIMEType: "image/png", Data: []byte("png")}, nil)
	s.gen.EXPECT().Illustration(gomock.Any(), "moon").Return(nil, errors.New("quota"))
	s.gen.EXPECT().Illustration(gomock.Any(), "sun").Return(&entities.Illustration{MIMEType: "image/png", Data: []byte("png")}, nil)

	dir := s.T().TempDir()
	out, _, err := s.run("", "--no-bonus", "tarot", "--images", dir, "will", "it", "rain")

	s.Require().NoError(err)
	s.Contains(out, "Past · The Fool")
	s.Contains(out, "From uncertainty to clarity.")
	s.Contains(out, "-20 credits, 30 remaining")
	s.Contains(out, "The Moon: no illustration available")
	s.Contains(out, "The Sun: saved to")

	files, err := filepath.Glob(filepath.Join(dir, "*.png"))
	s.Require().NoError(err)
	s.Len(files, 2)
	data, err := os.ReadFile(files[0])
	s.Require().NoError(err)
	s.Equal("png", string(data))
}

func (s *CLITestSuite) TestInsufficientFundsPointsToStore() {
	s.Require().NoError(s.debitTo(10))

	_, errOut, err := s.run("", "--no-bonus", "dream", "a", "red", "door")

	s.True(types.IsCode(err, types.ErrInsufficientFunds))
	s.Contains(errOut, "aetheria store")
	s.Equal(int64(10), s.app.Wallet.Balance())
}

func (s *CLITestSuite) TestGenerationFailure() {
	s.gen.EXPECT().Astral(gomock.Any(), gomock.Any()).Return(nil, errors.New("503"))

	_, _, err := s.run("", "--no-bonus", "astral", "how")

	s.True(types.IsCode(err, types.ErrGenerationFailed))
	s.Equal("The astral cord is unreachable.", errorMessage(err))
	s.Equal(entities.DefaultCredits, s.app.Wallet.Balance())
}

func (s *CLITestSuite) TestDreamAndSymbol() {
	s.gen.EXPECT().Dream(gomock.Any(), "a wolf in the snow").Return(&entities.DreamReading{
		Interpretation:    "Instinct guides you.",
		Themes:            []string{"instinct", "isolation"},
		PsychologicalNote: "You crave independence.",
		LuckyNumbers:      []float64{3, 21, 8},
	}, nil)
	s.gen.EXPECT().Symbol(gomock.Any(), "wolf").Return("", generator.ErrEmptyResponse)

	out, _, err := s.run("", "--no-bonus", "dream", "a wolf in the snow")
	s.Require().NoError(err)
	s.Contains(out, "Instinct guides you.")
	s.Contains(out, "Lucky numbers: 3 21 8")
	s.Contains(out, "35 remaining")

	out, _, err = s.run("", "--no-bonus", "symbol", "wolf")
	s.Require().NoError(err)
	s.Contains(out, "The mists obscure this symbol's meaning.")
	s.Contains(out, "a wolf in the snow")
	s.Equal(int64(35), s.app.Wallet.Balance())
}

func (s *CLITestSuite) TestMissingGenerator() {
	s.app.newGenerator = func(context.Context) (generator.Generator, error) {
		return nil, errors.New("GEMINI_API_KEY is required")
	}

	_, _, err := s.run("", "--no-bonus", "tarot", "anything")

	s.EqualError(err, "GEMINI_API_KEY is required")
	s.Equal(entities.DefaultCredits, s.app.Wallet.Balance())
}

func (s *CLITestSuite) TestStoreAndBuy() {
	out, _, err := s.run("", "--no-bonus", "store")
	s.Require().NoError(err)
	s.Contains(out, "pkg_300")
	s.Contains(out, "$2.99")
	s.Contains(out, "most popular")

	out, _, err = s.run("y\n", "--no-bonus", "buy", "pkg_75")
	s.Require().NoError(err)
	s.Contains(out, "Buy 75 credits for $0.99? [y/N]")
	s.Contains(out, "+75 credits, balance 125")

	_, _, err = s.run("n\n", "--no-bonus", "buy", "pkg_1500")
	s.True(types.IsCode(err, types.ErrPurchaseDeclined))

	_, _, err = s.run("", "--no-bonus", "buy", "pkg_1")
	s.True(types.IsCode(err, types.ErrProductNotFound))

	out, _, err = s.run("", "--no-bonus", "--yes", "ad")
	s.Require().NoError(err)
	s.Contains(out, "+5 credits, balance 130")
}

func (s *CLITestSuite) TestHistory() {
	out, _, err := s.run("", "--no-bonus", "history")
	s.Require().NoError(err)
	s.Contains(out, "No readings yet.")

	for _, summary := range []string{"first dream", "second dream"} {
		_, err := s.app.Recorder.Record(s.ctx, entities.KindDream, summary)
		s.Require().NoError(err)
	}
	_, err = s.app.Recorder.Record(s.ctx, entities.KindTarot, "a tarot")
	s.Require().NoError(err)

	out, _, err = s.run("", "--no-bonus", "history", "--kind", "dream", "-n", "1")
	s.Require().NoError(err)
	s.Contains(out, "second dream")
	s.NotContains(out, "first dream")
	s.NotContains(out, "a tarot")

	_, _, err = s.run("", "--no-bonus", "history", "--kind", "palmistry")
	s.Error(err)

	_, _, err = s.run("", "--no-bonus", "history", "--sync")
	s.EqualError(err, "set ELASTICSEARCH_URL to sync history")
}

func (s *CLITestSuite) TestSettings() {
	out, _, err := s.run("", "--no-bonus", "settings", "--sound=false", "--tutorial-seen")

	s.Require().NoError(err)
	s.Contains(out, "Sound:    off")
	s.Contains(out, "Haptics:  on")
	s.Contains(out, "Tutorial: seen")

	persisted, err := s.store.Load(s.ctx)
	s.Require().NoError(err)
	s.False(persisted.SoundEnabled)
	s.True(persisted.HasSeenTutorial)
}

func (s *CLITestSuite) TestReset() {
	_, err := s.app.Wallet.Credit(s.ctx, 100)
	s.Require().NoError(err)

	out, _, err := s.run("no\n", "reset")
	s.Require().NoError(err)
	s.Contains(out, "Reset cancelled.")
	s.Equal(int64(150), s.app.Wallet.Balance())

	out, _, err = s.run("", "--yes", "reset")
	s.Require().NoError(err)
	s.Contains(out, "You have 50 credits.")
	s.NotContains(out, "Daily bonus")
}

func (s *CLITestSuite) debitTo(balance int64) error {
	_, err := s.app.Wallet.Debit(s.ctx, s.app.Wallet.Balance()-balance)
	return err
}
