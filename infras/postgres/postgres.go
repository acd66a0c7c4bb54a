package postgres

//nolint:revive
import (
	"errors"
	"net"
	"net/url"
	"resto/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName = "postgres"

	maxIdleConnections = 10
	maxOpenConnections = 20
	connMaxLifetime    = 30 * time.Minute
)

// Connection holds the read replica and the primary. Reads that must observe
// writes of the same request go through a transaction on Write.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type target struct {
	name     string
	host     string
	port     string
	username string
	password string
	dbName   string
	sslMode  string
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	write := target{
		name:     "write",
		host:     pg.Write.Host,
		port:     pg.Write.Port,
		username: pg.Write.Username,
		password: pg.Write.Password,
		dbName:   prefixed(pg.Prefix, pg.Write.Name),
		sslMode:  pg.Write.SSLMode,
	}

	read := target{
		name:     "read",
		host:     pg.Read.Host,
		port:     pg.Read.Port,
		username: pg.Read.Username,
		password: pg.Read.Password,
		dbName:   prefixed(pg.Prefix, pg.Read.Name),
		sslMode:  pg.Read.SSLMode,
	}

	writeDB := connect(write, pg.MaxRetry, pg.RetryWaitTime)

	// A deployment without a replica points reads at the primary.
	if read.host == "" {
		return &Connection{Read: writeDB, Write: writeDB}
	}

	return &Connection{
		Read:  connect(read, pg.MaxRetry, pg.RetryWaitTime),
		Write: writeDB,
	}
}

func (c *Connection) Close() error {
	var errs []error

	if c.Write != nil {
		errs = append(errs, c.Write.Close())
	}

	if c.Read != nil && c.Read != c.Write {
		errs = append(errs, c.Read.Close())
	}

	return errors.Join(errs...)
}

func prefixed(prefix, name string) string {
	return prefix + name
}

func (t target) dsn() string {
	u := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(t.username, t.password),
		Host:     net.JoinHostPort(t.host, t.port),
		Path:     t.dbName,
		RawQuery: "sslmode=" + t.sslMode,
	}

	return u.String()
}

func connect(t target, maxRetry, waitTime int) *sqlx.DB {
	logger := log.With().
		Str("name", t.name).
		Str("host", t.host).
		Str("port", t.port).
		Str("dbName", t.dbName).
		Logger()

	for attempt := range max(maxRetry, 1) {
		db, err := sqlx.Connect(driverName, t.dsn())
		if err == nil {
			db.SetMaxIdleConns(maxIdleConnections)
			db.SetMaxOpenConns(maxOpenConnections)
			db.SetConnMaxLifetime(connMaxLifetime)

			logger.Info().Msg("Connected to database")

			return db
		}

		logger.Error().Err(err).Int("attempt", attempt+1).Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	logger.Fatal().Msgf("Could not connect to database after %d attempts", max(maxRetry, 1))

	return nil
}
