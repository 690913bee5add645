package conn

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"xroad/internal/errors"
	"xroad/pkg/exception"
)

const (
	defaultHost     = "localhost"
	defaultPort     = 5432
	defaultDatabase = "xroad"
	defaultSSLMode  = "disable"
)

// Option describes a PostgreSQL connection. DSN wins over the discrete fields.
type Option struct {
	DSN      string
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	Params   map[string]string
	Verbose  bool
}

// FromDSN returns an Option using a ready connection string.
func FromDSN(dsn string) Option {
	return Option{DSN: strings.TrimSpace(dsn)}
}

// Postgres is a gorm session bound to one database.
type Postgres struct {
	opt Option
	db  *gorm.DB
}

// Open connects to PostgreSQL. gorm logging is silenced unless Verbose is set.
func Open(opt Option) (*Postgres, error) {
	dsn, err := opt.connString()
	if err != nil {
		return nil, err
	}

	level := logger.Silent
	if opt.Verbose {
		level = logger.Info
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(level)})
	if err != nil {
		return nil, errors.Wrapf(err, "open postgres %s", opt.redacted())
	}
	return &Postgres{opt: opt, db: db}, nil
}

// DB returns the gorm handle bound to ctx.
func (p *Postgres) DB(ctx context.Context) *gorm.DB {
	if p == nil || p.db == nil {
		return nil
	}
	return p.db.WithContext(ctx)
}

// Ping checks the pool can reach the server.
func (p *Postgres) Ping(ctx context.Context) error {
	if p == nil || p.db == nil {
		return exception.ErrNilInstance
	}
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Migrate creates or updates the tables of models.
func (p *Postgres) Migrate(ctx context.Context, models ...any) error {
	if p == nil || p.db == nil {
		return exception.ErrNilInstance
	}
	if err := p.db.WithContext(ctx).AutoMigrate(models...); err != nil {
		return errors.Wrap(err, "migrate")
	}
	return nil
}

// Close releases the pool.
func (p *Postgres) Close() error {
	if p == nil || p.db == nil {
		return nil
	}
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (opt Option) connString() (string, error) {
	if opt.DSN != "" {
		return opt.DSN, nil
	}

	host := opt.Host
	if host == "" {
		host = defaultHost
	}
	port := opt.Port
	if port == 0 {
		port = defaultPort
	}
	if port < 0 || port > 65535 {
		return "", errors.Wrapf(exception.ErrInvalidArgument, "postgres port %d", port)
	}
	database := opt.Database
	if database == "" {
		database = defaultDatabase
	}
	sslMode := opt.SSLMode
	if sslMode == "" {
		sslMode = defaultSSLMode
	}

	u := &url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", host, port),
		Path:   "/" + database,
	}
	if opt.User != "" {
		if opt.Password != "" {
			u.User = url.UserPassword(opt.User, opt.Password)
		} else {
			u.User = url.User(opt.User)
		}
	}

	query := url.Values{}
	query.Set("sslmode", sslMode)
	for key, value := range opt.Params {
		if key == "" {
			continue
		}
		query.Set(key, value)
	}
	u.RawQuery = query.Encode()
	return u.String(), nil
}

// redacted renders the target without credentials for error messages.
func (opt Option) redacted() string {
	dsn, err := opt.connString()
	if err != nil {
		return "?"
	}
	u, err := url.Parse(dsn)
	if err != nil || u.Host == "" {
		return "dsn"
	}
	return u.Host + u.Path
}
