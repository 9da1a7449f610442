package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"runji/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Transport selects how the process reaches the database.
type Transport string

const (
	// TransportPooled keeps a small pool of TCP connections.
	TransportPooled Transport = "pooled"
	// TransportServerless uses one short-lived connection at a time with the
	// simple query protocol, for hosts that cannot keep connections open.
	TransportServerless Transport = "serverless"
	// TransportSQLite opens a local SQLite file. Used for development and tests.
	TransportSQLite Transport = "sqlite"
)

// Pool tuning for the pooled transport. Sized for a small hosting tier.
const (
	MaxOpenConns    = 5
	MaxIdleConns    = 2
	ConnMaxIdleTime = 30 * time.Second
	ConnectTimeout  = 10 * time.Second
)

// Options configures ConnectDb.
type Options struct {
	DatabaseURL string
	Transport   Transport
	InsecureTLS bool // accept any server certificate
	LogLevel    logger.LogLevel
}

// OptionsFromConfig builds connection options from the loaded configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		DatabaseURL: cfg.DatabaseURL,
		Transport:   Transport(cfg.Transport),
		InsecureTLS: cfg.InsecureTLS,
		LogLevel:    ParseLogLevel(cfg.DBLogLevel),
	}
}

// DbInstance owns the process-wide database handle. Create it once at startup
// with ConnectDb, pass it to whatever needs it and Close it on shutdown.
type DbInstance struct {
	Db        *gorm.DB
	Transport Transport
}

// ConnectDb builds the database handle for opts. No connection is made until
// the first query; use TestConnection to check reachability.
func ConnectDb(opts Options) (*DbInstance, error) {
	if strings.TrimSpace(opts.DatabaseURL) == "" {
		return nil, config.ErrMissingDatabaseURL
	}
	if opts.Transport == "" {
		opts.Transport = TransportPooled
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Warn
	}

	dialector, err := opts.dialector()
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:               logger.Default.LogMode(opts.LogLevel),
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	tunePool(sqlDB, opts.Transport)

	return &DbInstance{Db: db, Transport: opts.Transport}, nil
}

func (o Options) dialector() (gorm.Dialector, error) {
	switch o.Transport {
	case TransportSQLite:
		return sqlite.Open(sqliteDSN(o.DatabaseURL)), nil
	case TransportPooled, TransportServerless:
		connConfig, err := o.pgxConnConfig()
		if err != nil {
			return nil, err
		}
		sqlDB := stdlib.OpenDB(*connConfig, stdlib.OptionAfterConnect(logConnect))
		return postgres.New(postgres.Config{Conn: sqlDB}), nil
	default:
		return nil, fmt.Errorf("unknown database transport %q", o.Transport)
	}
}

func (o Options) pgxConnConfig() (*pgx.ConnConfig, error) {
	connConfig, err := pgx.ParseConfig(o.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid DATABASE_URL: %w", err)
	}
	if connConfig.ConnectTimeout == 0 || connConfig.ConnectTimeout > ConnectTimeout {
		connConfig.ConnectTimeout = ConnectTimeout
	}

	if o.InsecureTLS {
		if connConfig.TLSConfig != nil {
			connConfig.TLSConfig.InsecureSkipVerify = true
			connConfig.TLSConfig.VerifyPeerCertificate = nil
		}
		for _, fb := range connConfig.Fallbacks {
			if fb.TLSConfig != nil {
				fb.TLSConfig.InsecureSkipVerify = true
				fb.TLSConfig.VerifyPeerCertificate = nil
			}
		}
	}

	if o.Transport == TransportServerless {
		connConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	}
	connConfig.Tracer = errorTracer{}
	return connConfig, nil
}

func logConnect(_ context.Context, conn *pgx.Conn) error {
	log.Printf("Database connection established (backend pid %d)", conn.PgConn().PID())
	return nil
}

// errorTracer logs failed connection attempts and failed statements on
// connections in the pool. Successful work is left to the GORM logger.
type errorTracer struct{}

type tracedSQL struct{}

const maxLoggedSQL = 120

func (errorTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, tracedSQL{}, data.SQL)
}

func (errorTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	if data.Err == nil {
		return
	}
	stmt, _ := ctx.Value(tracedSQL{}).(string)
	stmt = strings.Join(strings.Fields(stmt), " ")
	if r := []rune(stmt); len(r) > maxLoggedSQL {
		stmt = string(r[:maxLoggedSQL]) + "..."
	}
	var pid uint32
	if conn != nil && conn.PgConn() != nil {
		pid = conn.PgConn().PID()
	}
	log.Printf("Database query failed (backend pid %d): %v [%s]", pid, data.Err, stmt)
}

func (errorTracer) TraceConnectStart(ctx context.Context, _ pgx.TraceConnectStartData) context.Context {
	return ctx
}

func (errorTracer) TraceConnectEnd(_ context.Context, data pgx.TraceConnectEndData) {
	if data.Err != nil {
		log.Printf("Database connection failed: %v", data.Err)
	}
}

func tunePool(sqlDB *sql.DB, transport Transport) {
	switch transport {
	case TransportServerless:
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(0) // close after every use
	case TransportSQLite:
		sqlDB.SetMaxOpenConns(1)
	default:
		sqlDB.SetMaxOpenConns(MaxOpenConns)
		sqlDB.SetMaxIdleConns(MaxIdleConns)
		sqlDB.SetConnMaxIdleTime(ConnMaxIdleTime)
	}
}

// sqliteDSN turns on foreign keys and a busy timeout unless the DSN sets them.
func sqliteDSN(dsn string) string {
	dsn = strings.TrimPrefix(dsn, "sqlite://")
	params := []string{}
	if !strings.Contains(dsn, "_foreign_keys") && !strings.Contains(dsn, "_fk=") {
		params = append(params, "_foreign_keys=on")
	}
	if !strings.Contains(dsn, "_busy_timeout") && !strings.Contains(dsn, "_timeout=") {
		params = append(params, "_busy_timeout=5000")
	}
	if len(params) == 0 {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(params, "&")
}

// TestConnection runs a trivial query and reports whether it succeeded.
// Failures are logged, never returned.
func (d *DbInstance) TestConnection(ctx context.Context) bool {
	var now string
	err := d.Db.WithContext(ctx).Raw("SELECT CAST(CURRENT_TIMESTAMP AS TEXT)").Scan(&now).Error
	if err != nil {
		log.Printf("Database connection failed: %v", err)
		return false
	}
	log.Printf("Database connection successful: %s", now)
	return true
}

// Close releases the pool.
func (d *DbInstance) Close() error {
	sqlDB, err := d.Db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ParseLogLevel maps silent, error, warn and info to GORM log levels. Anything else is warn.
func ParseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
