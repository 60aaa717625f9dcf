package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"

	"roomlist-lab/contract"
	"roomlist-lab/domain"
	"roomlist-lab/domain/event"
	"roomlist-lab/internal"
	"roomlist-lab/policy"
	"roomlist-lab/repositories"
	"roomlist-lab/runtime"
	"roomlist-lab/source"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Viewer terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components and centralizes error reporting, so every
// defer (like the database cleanup) executes before the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Settings store (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Group priority: the environment overrides the persisted order
	priority, err := config.PriorityPatterns()
	if err != nil {
		return exitConfig, err
	}
	settings := repositories.NewSettingsRepository(db, logger)
	if priority == nil {
		if priority, err = settings.LoadTagsOrder(); err != nil {
			return exitRuntime, err
		}
	} else if err = settings.SaveTagsOrder(priority); err != nil {
		return exitRuntime, err
	}
	logger.Info("Group priority order", "patterns", priority)

	// 4. Engine
	ctx := context.Background()
	coordinator := runtime.NewCoordinator(ctx, logger, policy.New(logger, priority),
		runtime.NewRegistry(logger), &printerSink{})

	// 5. A scripted source demonstrating live regrouping
	demo := source.NewLocalSource("demo")
	favourite := demo.NewRoom(uuid.NewString(), "Weekly sync")
	favourite.SetTag(domain.FavouriteTag, domain.Unordered)
	demo.AddRoom(favourite)
	project := demo.NewRoom(uuid.NewString(), "Release planning")
	project.SetTag("u.project", domain.Order(1))
	demo.AddRoom(project)
	dm := demo.NewRoom(uuid.NewString(), "Alice")
	dm.SetDirect(true)
	demo.AddRoom(dm)
	demo.AddRoom(demo.NewRoom(uuid.NewString(), "Random"))

	coordinator.Attach(demo)
	render(coordinator)

	color.Green.Println("== Moving the favourite into the project group ==")
	favourite.RemoveTag(domain.FavouriteTag)
	favourite.SetTag("u.project", domain.Order(0))
	render(coordinator)

	color.Green.Println("== Deleting the u.project tag everywhere ==")
	if err := coordinator.DeleteTag("u.project"); err != nil {
		return exitRuntime, err
	}
	render(coordinator)

	logger.Info("Done", "total_rooms", coordinator.TotalRooms())
	return exitOK, nil
}

// printerSink narrates every engine notification on stdout.
type printerSink struct{}

func (printerSink) Consume(_ context.Context, n event.Notification) error {
	color.Gray.Printf("  -> %s %+v\n", n.Name(), n)
	return nil
}

// render prints the current two-level structure as a table.
func render(c *runtime.Coordinator) {
	ix := c.Index()
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Group", "Room", "Direct", "Unread"})
	table.SetAutoMergeCellsByColumnIndex([]int{0})
	table.SetRowLine(true)
	for g := 0; g < ix.GroupCount(); g++ {
		label := domain.DisplayLabel(ix.GroupAt(g))
		for r := 0; r < ix.RoomCount(g); r++ {
			room := ix.RoomAt(g, r)
			table.Append([]string{
				label,
				room.DisplayName(),
				strconv.FormatBool(room.IsDirectChat()),
				strconv.Itoa(unreadOf(room)),
			})
		}
	}
	table.Render()
}

func unreadOf(r contract.Room) int {
	type unreadCounter interface{ UnreadCount() int }
	if counted, ok := r.(unreadCounter); ok {
		return counted.UnreadCount()
	}
	return 0
}
