package postgres

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"galerij/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// Connection holds the read and write pools. Both pools queue callers once every
// connection is busy; none are rejected.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type poolOptions struct {
	maxOpen  int
	maxIdle  int
	maxRetry int
	waitTime int
}

func New(config *config.Config) *Connection {
	read := CreatePostgresReadConn(*config)
	write := CreatePostgresWriteConn(*config)

	if read == nil || write == nil {
		log.Fatal().Msg("Could not connect to database")
	}

	return &Connection{
		Read:  read,
		Write: write,
	}
}

// Close releases both pools. Read and write may share one database handle.
func (c *Connection) Close() error {
	var errs []error

	if c.Write != nil {
		if err := c.Write.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close write connection: %w", err))
		}
	}

	if c.Read != nil && c.Read != c.Write {
		if err := c.Read.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close read connection: %w", err))
		}
	}

	return errors.Join(errs...)
}

// getDBName returns the database name with prefix if configured
func getDBName(config config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

func getPoolOptions(config config.Config) poolOptions {
	return poolOptions{
		maxOpen:  config.DB.Postgres.MaxOpenConnections,
		maxIdle:  config.DB.Postgres.MaxIdleConnections,
		maxRetry: config.DB.Postgres.MaxRetry,
		waitTime: config.DB.Postgres.RetryWaitTime,
	}
}

// WriteDSN returns the connection string of the write database.
func WriteDSN(config config.Config) string {
	return buildDSN(
		config.DB.Postgres.Write.Username,
		config.DB.Postgres.Write.Password,
		config.DB.Postgres.Write.Host,
		config.DB.Postgres.Write.Port,
		getDBName(config, config.DB.Postgres.Write.Name),
		config.DB.Postgres.Write.SSLMode,
		config.DB.Postgres.Write.Timezone,
	)
}

// ReadDSN returns the connection string of the read database.
func ReadDSN(config config.Config) string {
	return buildDSN(
		config.DB.Postgres.Read.Username,
		config.DB.Postgres.Read.Password,
		config.DB.Postgres.Read.Host,
		config.DB.Postgres.Read.Port,
		getDBName(config, config.DB.Postgres.Read.Name),
		config.DB.Postgres.Read.SSLMode,
		config.DB.Postgres.Read.Timezone,
	)
}

// CreatePostgresWriteConn creates a database connection for write access.
func CreatePostgresWriteConn(config config.Config) *sqlx.DB {
	return CreatePostgresConnection("write", WriteDSN(config), config.DB.Postgres.Write.Host, getPoolOptions(config))
}

// CreatePostgresReadConn creates a database connection for read access.
func CreatePostgresReadConn(config config.Config) *sqlx.DB {
	return CreatePostgresConnection("read", ReadDSN(config), config.DB.Postgres.Read.Host, getPoolOptions(config))
}

func buildDSN(username, password, host, port, dbName, sslMode, timezone string) string {
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(username, password),
		Host:   net.JoinHostPort(host, port),
		Path:   "/" + dbName,
	}

	query := url.Values{}
	query.Set("sslmode", sslMode)

	if timezone != "" {
		query.Set("timezone", timezone)
	}

	dsn.RawQuery = query.Encode()

	return dsn.String()
}

// CreatePostgresConnection creates a database connection, retrying maxRetry times.
func CreatePostgresConnection(name, descriptor, host string, options poolOptions) *sqlx.DB {
	for retry := range options.maxRetry {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Str("name", name).
				Str("host", host).
				Int("maxOpen", options.maxOpen).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(options.maxIdle)
			sqlDB.SetMaxOpenConns(options.maxOpen)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Str("host", host).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(options.waitTime) * time.Second)
	}

	return nil
}
