package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fiatjaf/bookstore"
	"github.com/fiatjaf/bookstore/badger"
	"github.com/fiatjaf/bookstore/bolt"
	"github.com/fiatjaf/bookstore/internal"
	"github.com/fiatjaf/bookstore/mongo"
	"github.com/fiatjaf/bookstore/mysql"
	"github.com/fiatjaf/bookstore/postgresql"
	"github.com/fiatjaf/bookstore/runner"
	"github.com/fiatjaf/bookstore/slicestore"
	"github.com/fiatjaf/bookstore/sqlite3"
	"github.com/fiatjaf/bookstore/wrappers/logged"
	"github.com/fiatjaf/bookstore/wrappers/readonly"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
)

var (
	db      bookstore.Store
	cfg     bookstore.Config
	logger  zerolog.Logger
	printer runner.Printer
	stdout  io.Writer = os.Stdout
)

// errSomeFailed makes the process exit with 123, meaning it ran but some step or line failed.
var errSomeFailed = errors.New("some operations failed")

var app = &cli.Command{
	Name:      "bookstore",
	Usage:     "runs queries against a collection of books",
	UsageText: "bookstore -a mongodb://localhost:27017 [run|find|update-price|delete|aggregate|index|explain|seed] ...",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "address",
			Aliases: []string{"a"},
			Usage:   "database connection uri, or path to the database file or directory",
			Value:   bookstore.DefaultAddress,
			Sources: cli.EnvVars("BOOKSTORE_ADDRESS"),
		},
		&cli.StringFlag{
			Name:    "database",
			Usage:   "database name (mongo only)",
			Value:   bookstore.DefaultDatabase,
			Sources: cli.EnvVars("BOOKSTORE_DATABASE"),
		},
		&cli.StringFlag{
			Name:    "collection",
			Usage:   "collection or table name",
			Value:   bookstore.DefaultCollection,
			Sources: cli.EnvVars("BOOKSTORE_COLLECTION"),
		},
		&cli.IntFlag{
			Name:    "page-size",
			Usage:   "how many books per page",
			Value:   bookstore.DefaultPageSize,
			Sources: cli.EnvVars("BOOKSTORE_PAGE_SIZE"),
		},
		&cli.StringFlag{
			Name:    "type",
			Aliases: []string{"t"},
			Usage:   "store type ('mongo', 'sqlite', 'postgres', 'mysql', 'bolt', 'badger', 'memory')",
			Sources: cli.EnvVars("BOOKSTORE_TYPE"),
		},
		&cli.BoolFlag{
			Name:  "read-only",
			Usage: "refuse every operation that would change the collection",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "print results as Go values instead of JSON",
		},
		&cli.BoolFlag{
			Name:  "compact",
			Usage: "print each JSON result on a single line",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "log every store call",
		},
	},
	Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
		cfg = bookstore.Config{
			Address:    c.String("address"),
			Database:   c.String("database"),
			Collection: c.String("collection"),
			PageSize:   c.Int("page-size"),
		}.WithDefaults()

		level := zerolog.InfoLevel
		if c.Bool("verbose") {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.Out = os.Stderr
		})).Level(level).With().Timestamp().Logger()

		if c.Bool("pretty") {
			printer = runner.PrettyPrinter{}
		} else {
			printer = runner.JSONPrinter{Compact: c.Bool("compact")}
		}

		typ := c.String("type")
		if typ != "" {
			// bypass automatic detection
			// this also works for creating disk databases from scratch
		} else {
			// try to detect based on url scheme
			switch {
			case strings.HasPrefix(cfg.Address, "mongodb://"), strings.HasPrefix(cfg.Address, "mongodb+srv://"):
				typ = "mongo"
			case strings.HasPrefix(cfg.Address, "postgres://"), strings.HasPrefix(cfg.Address, "postgresql://"):
				typ = "postgres"
			case strings.HasPrefix(cfg.Address, "mysql://"):
				typ = "mysql"
			case cfg.Address == ":memory:":
				typ = "memory"
			default:
				// try to detect based on the form and names of disk files
				dbname, err := detect(cfg.Address)
				if err != nil {
					if os.IsNotExist(err) {
						return ctx, fmt.Errorf(
							"'%s' does not exist, to create a store there specify the --type argument", cfg.Address)
					}
					return ctx, fmt.Errorf("failed to detect store type: %w", err)
				}
				typ = dbname
			}
		}

		var store bookstore.Store
		switch typ {
		case "mongo", "mongodb":
			store = &mongo.MongoDBBackend{
				DatabaseURL:    cfg.Address,
				DatabaseName:   cfg.Database,
				CollectionName: cfg.Collection,
			}
		case "sqlite":
			store = &sqlite3.SQLite3Backend{DatabaseURL: cfg.Address, TableName: cfg.Collection}
		case "postgres", "postgresql":
			store = &postgresql.PostgresBackend{DatabaseURL: cfg.Address, TableName: cfg.Collection}
		case "mysql":
			store = &mysql.MySQLBackend{
				DatabaseURL: strings.TrimPrefix(cfg.Address, "mysql://"),
				TableName:   cfg.Collection,
			}
		case "bolt":
			store = &bolt.BoltBackend{Path: cfg.Address}
		case "badger":
			store = &badger.BadgerBackend{Path: cfg.Address}
		case "memory":
			store = &slicestore.SliceStore{}
		case "":
			return ctx, fmt.Errorf("couldn't determine store type, you can use --type to specify it manually")
		default:
			return ctx, fmt.Errorf("'%s' store type is not supported by this CLI", typ)
		}

		if err := store.Init(); err != nil {
			return ctx, err
		}
		if typ == "memory" {
			// nothing persists, so start from the sample catalog
			if err := seedMemory(ctx, store); err != nil {
				store.Close()
				return ctx, err
			}
		}
		logger.Debug().Str("type", typ).Str("address", cfg.Address).Msg("store ready")

		if c.Bool("read-only") {
			store = readonly.Wrapper{Store: store}
		}
		db = logged.Wrapper{Store: store, Logger: logger}
		return ctx, nil
	},
	Commands: []*cli.Command{
		run,
		find,
		updatePrice,
		delete_,
		aggregate,
		index,
		explain,
		seed,
	},
	DefaultCommand: "run",
}

func seedMemory(ctx context.Context, store bookstore.Store) error {
	for _, book := range internal.SampleBooks() {
		if err := store.SaveBook(ctx, &book); err != nil {
			return fmt.Errorf("failed to seed %q: %w", book.Title, err)
		}
	}
	return nil
}

func main() {
	loadEnvFiles()

	err := app.Run(context.Background(), os.Args)
	if db != nil {
		db.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errSomeFailed) {
			os.Exit(123)
		}
		os.Exit(1)
	}
}
