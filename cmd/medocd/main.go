// Command medocd serves generated medical certificates and prescriptions
// over HTTP.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/zeptools/medoc/blobcache"
	"github.com/zeptools/medoc/compose"
	"github.com/zeptools/medoc/conf"
	"github.com/zeptools/medoc/docsvc"
	"github.com/zeptools/medoc/logging"
	"github.com/zeptools/medoc/metrics"
	"github.com/zeptools/medoc/recordstore"
	"github.com/zeptools/medoc/routing"
	"github.com/zeptools/medoc/throttle"
	"go.uber.org/zap"
)

const throttleGroup = "api"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "medocd: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	appRoot, err := conf.AppRootFromEnv()
	if err != nil {
		return err
	}
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	core := &conf.Core{}
	if err := core.BaseInit(appRoot, rootCtx, rootCancel); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log, flush, err := logging.Install(core.Log)
	if err != nil {
		return err
	}
	defer flush()
	log = log.With(zap.String("app", core.AppName))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(core.AppName, reg)

	engine := compose.NewEngine(
		compose.WithPaper(core.Paper()),
		compose.WithCreator(core.Documents.Creator),
	)
	opts := []docsvc.Option{
		docsvc.WithLogger(log),
		docsvc.WithMetrics(collector),
		docsvc.WithMaxBodyBytes(core.Documents.MaxBodyBytes),
	}
	health := map[string]docsvc.Pinger{}
	defer core.ResourceCleanUp()

	if _, err := os.Stat(core.ConfigPath(".sql-databases.json")); err == nil {
		if err := core.PrepareSQLDatabases(); err != nil {
			return fmt.Errorf("sql databases: %w", err)
		}
		client, err := core.DocumentsSQLDB()
		if err != nil {
			return err
		}
		store, err := recordstore.New(client, log)
		if err != nil {
			return err
		}
		if core.Documents.EnsureSchema {
			if err := store.EnsureSchema(rootCtx); err != nil {
				return err
			}
		}
		opts = append(opts, docsvc.WithSource(store))
		health["sql"] = client
	} else {
		log.Warn("no sql databases configured; stored-document routes answer 503")
	}

	if core.Documents.Cache.Enabled {
		if err := core.PrepareKVDatabase(); err != nil {
			return fmt.Errorf("kv database: %w", err)
		}
		if err := core.PrepareBlobCipher(); err != nil {
			return err
		}
		cache := blobcache.New(core.BackendKVDBClient, core.BlobCipher, core.AppName, core.Documents.Cache.TTL(), log)
		opts = append(opts, docsvc.WithCache(cache))
		health["kv"] = core.BackendKVDBClient
	}

	service := docsvc.New(engine, opts...)

	wrappers := []routing.HandlerWrapper{
		routing.WrapperFunc(routing.RequestIDWrapper),
		&routing.AccessLogWrapper{Log: log.Named("access"), Metrics: collector},
		routing.WrapperFunc(routing.RecoverWrapper),
	}
	if core.Throttle.Enabled {
		core.PrepareThrottleBucketStore()
		core.ThrottleBucketStore.SetBucketGroup(throttleGroup, core.Throttle.BucketConf())
		wrappers = append(wrappers, &throttle.ClientIPWrapper{
			Store:    core.ThrottleBucketStore,
			Group:    throttleGroup,
			OnReject: func(*http.Request) { collector.ThrottledTotal.Inc() },
		})
	}
	if core.Auth.Enabled {
		if err := core.PrepareTokenVerifier(); err != nil {
			return err
		}
		wrappers = append(wrappers, &routing.BearerAuthWrapper{Verifier: core.TokenVerifier, Log: log.Named("auth")})
	}

	router := routing.NewBaseRouter()
	router.Group("/api/v1/", service.Routes, wrappers...)
	router.Handle("GET /healthz", docsvc.HealthHandler(health, 2*time.Second))
	router.Handle("GET /metrics", collector.Handler())

	core.PrepareWebService(router)
	if err := core.StartServices(); err != nil {
		return err
	}
	log.Info("started", zap.String("listen", core.Listen), zap.String("root", appRoot))

	waitErr := make(chan error, 1)
	go func() { waitErr <- core.WaitServicesDone() }()
	select {
	case err = <-waitErr:
		// a service exited on its own
		rootCancel()
	case <-rootCtx.Done():
		core.StopServices()
		err = <-waitErr
	}
	if err != nil {
		return err
	}
	log.Info("stopped")
	return nil
}
