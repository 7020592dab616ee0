package conf

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/zeptools/medoc/db"
	"github.com/zeptools/medoc/db/kvdb"
	"github.com/zeptools/medoc/db/kvdb/impls/redis"
	"github.com/zeptools/medoc/db/sqldb"
	_ "github.com/zeptools/medoc/db/sqldb/impls/mysql" // registers "mysql"
	_ "github.com/zeptools/medoc/db/sqldb/impls/pgsql" // registers "pgsql"
	"github.com/zeptools/medoc/logging"
	"github.com/zeptools/medoc/pdfs"
	"github.com/zeptools/medoc/sec"
	"github.com/zeptools/medoc/svc"
	"github.com/zeptools/medoc/throttle"
	"github.com/zeptools/medoc/web"
	"go.uber.org/zap"
)

// DocumentsConf is the `documents` section of config/.core.json
type DocumentsConf struct {
	Paper        string    `json:"paper"`   // A4, A5, Letter
	Creator      string    `json:"creator"` // PDF Creator metadata
	MaxBodyBytes int64     `json:"max_body_bytes"`
	SQLDB        string    `json:"sql_db"` // key in .sql-databases.json holding clinical_documents
	EnsureSchema bool      `json:"ensure_schema"`
	Cache        CacheConf `json:"cache"`
}

type CacheConf struct {
	Enabled bool   `json:"enabled"`
	TTLSec  int    `json:"ttl_sec"`
	Key     string `json:"key"` // base64 XChaCha20-Poly1305 key
}

func (c CacheConf) TTL() time.Duration {
	return time.Duration(c.TTLSec) * time.Second
}

// AuthConf enables bearer-token verification on the document routes
type AuthConf struct {
	Enabled  bool   `json:"enabled"`
	KeysDir  string `json:"keys_dir"` // <kid>_public.pem files, relative to AppRoot
	Issuer   string `json:"issuer"`
	Audience string `json:"audience"`
}

// Core - common config
type Core struct {
	AppName            string        `json:"app_name"`
	Listen             string        `json:"listen"` // HTTP Server Listen IP:PORT Address
	Host               string        `json:"host"`   // HTTP Host. Can be used to generate public url endpoints
	ShutdownTimeoutSec int           `json:"shutdown_timeout_sec"`
	Log                logging.Conf  `json:"log"`
	Documents          DocumentsConf `json:"documents"`
	Throttle           throttle.Conf `json:"throttle"`
	Auth               AuthConf      `json:"auth"`

	AppRoot             string                        `json:"-"` // MEDOC_ROOT or working directory
	RootCtx             context.Context               `json:"-"` // Global Context with RootCancel
	RootCancel          context.CancelFunc            `json:"-"` // CancelFunc for RootCtx
	WebService          *web.Service                  `json:"-"` // PrepareWebService
	ThrottleBucketStore *throttle.BucketStore[string] `json:"-"` // PrepareThrottleBucketStore
	KVDBConf            kvdb.Conf                     `json:"-"` // loadKVDBConf
	BackendKVDBClient   kvdb.Client                   `json:"-"` // prepareKVDBClient
	SQLDBConfs          map[string]*sqldb.Conf        `json:"-"` // loadSQLDBConfs
	BackendSQLDBClients map[string]sqldb.Client       `json:"-"` // prepareSQLDBClients
	BlobCipher          *sec.XChaCha20Poly1305Cipher  `json:"-"` // PrepareBlobCipher
	TokenVerifier       *sec.Verifier                 `json:"-"` // PrepareTokenVerifier

	services []svc.Service // Services to Manage
	done     chan error
}

// BaseInit - 1st step for initialization
// 1. load config/.core.json under appRoot
// 2. set root context
// 3. start the shutdown signal listener
func (c *Core) BaseInit(appRoot string, rootCtx context.Context, rootCancel context.CancelFunc) error {
	if err := c.Load(appRoot); err != nil {
		return err
	}
	c.RootCtx = rootCtx
	c.RootCancel = rootCancel
	c.startShutdownSignalListener()
	return nil
}

// Load reads config/.core.json, applies defaults and validates
func (c *Core) Load(appRoot string) error {
	c.AppRoot = appRoot
	if err := c.readJSON(".core.json", c); err != nil {
		return err
	}
	c.SetDefaults()
	return c.Validate()
}

func (c *Core) SetDefaults() {
	if c.AppName == "" {
		c.AppName = "medoc"
	}
	if c.Listen == "" {
		c.Listen = ":8080"
	}
	if c.ShutdownTimeoutSec <= 0 {
		c.ShutdownTimeoutSec = 10
	}
	c.Log.SetDefaults()
	c.Throttle.SetDefaults()
	if c.Documents.Paper == "" {
		c.Documents.Paper = pdfs.A4Size.Name
	}
	if c.Documents.Creator == "" {
		c.Documents.Creator = c.AppName
	}
	if c.Documents.MaxBodyBytes <= 0 {
		c.Documents.MaxBodyBytes = 1 << 20
	}
	if c.Documents.SQLDB == "" {
		c.Documents.SQLDB = "main"
	}
	if c.Documents.Cache.TTLSec <= 0 {
		c.Documents.Cache.TTLSec = 900
	}
}

func (c *Core) Validate() error {
	if _, ok := pdfs.PaperSizeByName(c.Documents.Paper); !ok {
		return fmt.Errorf("conf: unknown paper %q", c.Documents.Paper)
	}
	if c.Documents.Cache.Enabled && c.Documents.Cache.Key == "" {
		return errors.New("conf: documents.cache.key is required when the cache is enabled")
	}
	if c.Auth.Enabled && c.Auth.KeysDir == "" {
		return errors.New("conf: auth.keys_dir is required when auth is enabled")
	}
	if c.Throttle.Enabled {
		if err := c.Throttle.BucketConf().Validate(); err != nil {
			return fmt.Errorf("conf: %w", err)
		}
	}
	return nil
}

func (c *Core) Paper() pdfs.PaperSize {
	p, _ := pdfs.PaperSizeByName(c.Documents.Paper)
	return p
}

func (c *Core) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSec) * time.Second
}

func (c *Core) readJSON(name string, dst any) error {
	confBytes, err := os.ReadFile(c.ConfigPath(name)) // ([]byte, error)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(confBytes, dst); err != nil {
		return fmt.Errorf("conf: %s: %w", name, err)
	}
	return nil
}

func (c *Core) AddService(s svc.Service) {
	c.services = append(c.services, s)
	zap.L().Named("core").Info("service added", zap.String("service", s.Name()), zap.Int("total", len(c.services)))
}

func (c *Core) StartServices() error {
	c.done = make(chan error, len(c.services))
	for _, s := range c.services {
		err := s.Start()
		if err != nil {
			return fmt.Errorf("start %s: %w", s.Name(), err)
		}
		go func(s svc.Service) {
			err := <-s.Done()
			c.done <- err
		}(s)
	}
	return nil
}

func (c *Core) WaitServicesDone() error {
	for i := 0; i < len(c.services); i++ {
		if err := <-c.done; err != nil {
			return err
		}
	}
	return nil
}

func (c *Core) StopServices() {
	for _, s := range c.services {
		s.Stop()
	}
}

var once sync.Once

func (c *Core) startShutdownSignalListener() {
	log := zap.L().Named("core")
	once.Do(func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			sig := <-sigs
			log.Info("shutting down", zap.String("signal", sig.String()), zap.String("app", c.AppName))
			c.RootCancel() // broadcast to all child services via Context.Done()
		}()
	})
	log.Info("shutdown signal listener started")
}

func (c *Core) PrepareWebService(router http.Handler) {
	c.WebService = web.NewService(c.RootCtx, c.Listen, router)
	c.WebService.ShutdownTimeout = c.ShutdownTimeout()
	c.AddService(c.WebService)
}

func (c *Core) PrepareThrottleBucketStore() {
	c.ThrottleBucketStore = throttle.NewBucketStore[string](c.RootCtx, c.Throttle.CleanupCycle(), c.Throttle.CleanupAge())
	c.AddService(c.ThrottleBucketStore)
}

func (c *Core) PrepareKVDatabase() error {
	// Load KV Database Config File
	err := c.loadKVDBConf()
	if err != nil {
		return err
	}
	if err = c.prepareKVDBClient(); err != nil {
		return err
	}
	return nil
}

func (c *Core) loadKVDBConf() error {
	return c.readJSON(".kv-databases.json", &c.KVDBConf)
}

func (c *Core) prepareKVDBClient() error {
	switch c.KVDBConf.Type {
	case redis.DBType:
		c.BackendKVDBClient = &redis.Client{Conf: &c.KVDBConf}
		if err := c.BackendKVDBClient.Init(); err != nil {
			return err
		}
	// case "memcached"
	default:
		return fmt.Errorf("unsupported key-value database type %q", c.KVDBConf.Type)
	}
	return nil
}

func (c *Core) loadSQLDBConfs() error {
	c.SQLDBConfs = make(map[string]*sqldb.Conf)
	return c.readJSON(".sql-databases.json", &c.SQLDBConfs)
}

// prepareSQLDBClients - Build & Init SQL DB Clients
// Use after loadSQLDBConfs
func (c *Core) prepareSQLDBClients() error {
	c.BackendSQLDBClients = make(map[string]sqldb.Client)
	for dbName, sqlDBConf := range c.SQLDBConfs {
		dbClient, err := sqldb.New(sqlDBConf)
		if err != nil {
			return fmt.Errorf("sql db %q: %w", dbName, err)
		}
		if err = dbClient.Init(); err != nil {
			return fmt.Errorf("sql db %q: %w", dbName, err)
		}
		c.BackendSQLDBClients[dbName] = dbClient
	}
	return nil
}

// PrepareSQLDatabases loads config/.sql-databases.json and opens every client
func (c *Core) PrepareSQLDatabases() error {
	if err := c.loadSQLDBConfs(); err != nil {
		return err
	}
	return c.prepareSQLDBClients()
}

// DocumentsSQLDB is the client named by documents.sql_db
func (c *Core) DocumentsSQLDB() (sqldb.Client, error) {
	client, ok := c.BackendSQLDBClients[c.Documents.SQLDB]
	if !ok {
		return nil, fmt.Errorf("conf: sql db %q not configured", c.Documents.SQLDB)
	}
	return client, nil
}

// PrepareBlobCipher builds the cache cipher from documents.cache.key
func (c *Core) PrepareBlobCipher() error {
	cipher, err := sec.NewXChaCha20Poly1305CipherFromEncodedKey(c.Documents.Cache.Key)
	if err != nil {
		return fmt.Errorf("blob cipher: %w", err)
	}
	c.BlobCipher = cipher
	return nil
}

// PrepareTokenVerifier loads the public keys under auth.keys_dir
func (c *Core) PrepareTokenVerifier() error {
	jwks, err := sec.LoadPublicPEMKeysAsJWKS(c.ResolvePath(c.Auth.KeysDir))
	if err != nil {
		return fmt.Errorf("token verifier: %w", err)
	}
	verifier, err := sec.NewVerifier(jwks, c.Auth.Issuer, c.Auth.Audience)
	if err != nil {
		return fmt.Errorf("token verifier: %w", err)
	}
	c.TokenVerifier = verifier
	return nil
}

func (c *Core) ResourceCleanUp() {
	log := zap.L().Named("core")
	log.Info("app resource cleaning up")
	if c.BackendKVDBClient != nil {
		db.CloseClient("kv", c.BackendKVDBClient)
	}
	for name, sqlDBClient := range c.BackendSQLDBClients {
		db.CloseClient(sqlDBClient.GetConf().Type+":"+name, sqlDBClient)
	}
	log.Info("app resource cleanup complete")
}
