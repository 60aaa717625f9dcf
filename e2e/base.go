package e2e

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"

	"roomlist-lab/domain/event"
	"roomlist-lab/policy"
	"roomlist-lab/repositories"
	"roomlist-lab/runtime"
)

// BaseEngineSuite boots a full engine the way the viewer does: settings
// loaded from badger, the persisted priority feeding the policy, and a
// tap collecting every notification for assertions.
type BaseEngineSuite struct {
	suite.Suite
	Config Config

	Log         *slog.Logger
	Coordinator *runtime.Coordinator
	Tap         *notificationTap
}

// notificationTap counts notifications by name across the run.
type notificationTap struct {
	ByName map[string]int
}

func (t *notificationTap) Consume(_ context.Context, n event.Notification) error {
	t.ByName[n.Name()]++
	return nil
}

func (s *BaseEngineSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	s.Log = logs.GetLoggerFromString(s.Config.LogLevel)
}

func (s *BaseEngineSuite) SetupTest() {
	dir := s.Config.BadgerDir
	if dir == "" {
		dir = s.T().TempDir()
	}
	db, err := badger.Open(badger.DefaultOptions(dir).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = db.Close() })

	order, err := repositories.NewSettingsRepository(db, s.Log).LoadTagsOrder()
	s.Require().NoError(err)

	s.Tap = &notificationTap{ByName: make(map[string]int)}
	s.Coordinator = runtime.NewCoordinator(context.Background(), s.Log,
		policy.New(s.Log, order), runtime.NewRegistry(s.Log), s.Tap)
}

// Step prints a colorized header for the scenario step in logs.
func (s *BaseEngineSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}
