package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/opst/knitsocial/cmd/knitsocial/handlers"
	"github.com/opst/knitsocial/pkg/auth/token"
	kcfg "github.com/opst/knitsocial/pkg/configs/api"
	kdb "github.com/opst/knitsocial/pkg/domain/knitsocial/db"
	kpg "github.com/opst/knitsocial/pkg/domain/knitsocial/db/postgres"
	"github.com/opst/knitsocial/pkg/utils/filewatch"
	"github.com/opst/knitsocial/pkg/utils/retry"
	"golang.org/x/sync/errgroup"
)

func main() {
	pconfig := flag.String("config", os.Getenv("KNITSOCIAL_CONFIG"), "path to the api config file")
	loglevel := flag.String("loglevel", "info", "log level. debug|info|warn|error|off")
	pcert := flag.String("cert", "", "certification file for TLS")
	pkey := flag.String("certkey", "", "key of certification file for TLS")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	conf, err := kcfg.LoadApiConfig(*pconfig)
	if err != nil {
		log.Fatalf("can not read configration: %s", err)
	}

	key, err := token.LoadKey(conf.Auth().KeyFile())
	if err != nil {
		log.Fatalf("can not read token key: %s", err)
	}
	verifier, err := token.NewVerifier(
		key,
		token.WithIssuer(conf.Auth().Issuer()),
		token.WithAudience(conf.Auth().Audience()),
		token.WithLeeway(30*time.Second),
	)
	if err != nil {
		log.Fatalf("can not build token verifier: %s", err)
	}

	var dbopts []kpg.Option
	if repo := conf.SchemaRepository(); repo != "" {
		dbopts = append(dbopts, kpg.WithSchemaRepository(repo))
	}
	db, err := connect(ctx, conf.Database(), dbopts...)
	if err != nil {
		log.Fatalf("can not connect to database: %s", err)
	}
	defer db.Close()

	{
		ctx_, ccan := db.Schema().Context(ctx)
		defer ccan()
		ctx = ctx_
	}
	{
		// the key is read only once. restart to load a new one.
		ctx_, wcan, err := filewatch.UntilModifyContext(ctx, conf.Auth().KeyFile())
		if err != nil {
			log.Fatalf("can not watch token key: %s", err)
		}
		defer wcan()
		ctx = ctx_
	}

	server := BuildServer(
		db, verifier,
		handlers.Paging{
			DefaultPageSize: conf.Pagination().DefaultPageSize(),
			MaxPageSize:     conf.Pagination().MaxPageSize(),
		},
		*loglevel,
	)
	for _, r := range server.Routes() {
		server.Logger.Debugf("- mount handler: %s %s", strings.ToUpper(r.Method), r.Path)
	}

	addr := fmt.Sprintf(":%d", conf.Port())
	eg, gctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		if cert, key := *pcert, *pkey; cert != "" && key != "" {
			err = server.StartTLS(addr, cert, key)
		} else {
			err = server.Start(addr)
		}
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	eg.Go(func() error {
		<-gctx.Done()
		if cause := context.Cause(ctx); cause != nil {
			server.Logger.Infof("shutting down: %s", cause)
		}

		qctx, qcancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer qcancel()
		return server.Shutdown(qctx)
	})

	exit := 0
	if err := eg.Wait(); err != nil {
		server.Logger.Error("server stops with error: ", err)
		exit = 1
	}
	if cause := context.Cause(ctx); cause != nil && !errors.Is(cause, context.Canceled) {
		// stopped by schema update or key rotation.
		exit = 1
	}

	cancel()
	db.Close()
	os.Exit(exit)
}

// connect waits for the database to accept connections, up to a minute.
func connect(ctx context.Context, url string, options ...kpg.Option) (kdb.KnitSocialDatabase, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	return retry.Blocking(
		ctx, retry.ExponentialBackoff(500*time.Millisecond, 2, 10*time.Second),
		func() (kdb.KnitSocialDatabase, error) {
			db, err := kpg.New(ctx, url, options...)
			if err != nil {
				log.Printf("database is not ready: %s", err)
				return nil, errors.Join(retry.ErrRetry, err)
			}
			return db, nil
		},
	)
}
