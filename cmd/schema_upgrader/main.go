package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	kpg "github.com/opst/knitsocial/pkg/domain/knitsocial/db/postgres"
	kio "github.com/opst/knitsocial/pkg/io"
	"github.com/opst/knitsocial/pkg/utils/try"
	"github.com/youta-t/flarc"
)

type Flag struct {
	Host     string `flag:"host" help:"The host of the database."`
	Port     int    `flag:"port" help:"The port of the database."`
	User     string `flag:"user" help:"The user of the database."`
	Password string `flag:"pass" help:"The password of the database."`
	Database string `flag:"database" help:"The name of the database."`

	Schema string `flag:"schema" help:"The path to the schema repository directory."`
}

const ARG_SCHEMA_DEST = "ARG_SCHEMA_DEST"

func main() {
	logger := log.Default()
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer cancel()

	port := 5432
	if sp := os.Getenv("DB_PORT"); sp != "" {
		if p, err := strconv.Atoi(sp); err == nil {
			port = p
		}
	}

	cmd := try.To(flarc.NewCommand(
		"database schema upgrader for knitsocial",
		Flag{
			Host:     os.Getenv("DB_HOST"),
			Port:     port,
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Database: os.Getenv("DB_NAME"),

			Schema: os.Getenv("KNITSOCIAL_SCHEMA"),
		},
		flarc.Args{
			{
				Name: ARG_SCHEMA_DEST, Help: "The schema files are copied to this directory.",
				Required: false, Repeatable: false,
			},
		},
		func(ctx context.Context, c flarc.Commandline[Flag], _ []any) error {
			return upgrade(ctx, logger, c.Flags(), c.Args()[ARG_SCHEMA_DEST])
		},
	)).OrFatal(logger)

	os.Exit(flarc.Run(ctx, cmd))
}

// upgrade copies the schema repository into dest (if any), and applies it to the database.
func upgrade(ctx context.Context, logger *log.Logger, flags Flag, dest []string) error {
	if flags.Schema == "" {
		return fmt.Errorf("%w: flag `--schema` (or, envvar KNITSOCIAL_SCHEMA) is required", flarc.ErrUsage)
	}
	if flags.Host == "" || flags.Database == "" {
		return fmt.Errorf("%w: flags `--host` and `--database` are required", flarc.ErrUsage)
	}

	for _, d := range dest {
		logger.Printf("copying schema files into %s ...", d)
		if err := kio.DirCopy(flags.Schema, d); err != nil {
			return err
		}
	}

	db, err := kpg.New(ctx, dsn(flags), kpg.WithSchemaRepository(flags.Schema))
	if err != nil {
		return err
	}
	defer db.Close()

	schema := db.Schema()
	before, err := schema.Version(ctx)
	if err != nil {
		return err
	}
	if err := schema.Upgrade(ctx); err != nil {
		return err
	}
	after, err := schema.Version(ctx)
	if err != nil {
		return err
	}

	if before == after {
		logger.Printf("schema is up to date: version %d", after)
	} else {
		logger.Printf("schema is upgraded: version %d -> %d", before, after)
	}
	return nil
}

func dsn(f Flag) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(f.User, f.Password),
		Host:   f.Host + ":" + strconv.Itoa(f.Port),
		Path:   "/" + f.Database,
	}
	return u.String()
}
