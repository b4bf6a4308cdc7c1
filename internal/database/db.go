package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// DSNFromURL converts a mysql:// connection URL into the DSN format
// expected by go-sql-driver. parseTime=true -> DATETIME -> time.Time,
// loc=UTC keeps times consistent across hosts.
func DSNFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse database url: %w", err)
	}
	if u.Scheme != "mysql" {
		return "", fmt.Errorf("unsupported database scheme %q (want mysql://)", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("database url missing host")
	}
	dbName := ""
	if len(u.Path) > 1 {
		dbName = u.Path[1:]
	}
	if dbName == "" {
		return "", fmt.Errorf("database url missing database name")
	}

	auth := u.User.Username()
	if pass, ok := u.User.Password(); ok && pass != "" {
		auth = fmt.Sprintf("%s:%s", auth, pass)
	}
	host := u.Host
	if u.Port() == "" {
		host = host + ":3306"
	}
	return fmt.Sprintf("%s@tcp(%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, dbName), nil
}

// Open connects to MySQL using a mysql:// URL and verifies the
// connection. The returned *sql.DB is the process-wide bounded pool;
// it is constructed once at startup and passed into every repository
// that needs data access.
func Open(rawURL string) (*sql.DB, error) {
	dsn, err := DSNFromURL(rawURL)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings: small fixed ceiling, single logical unit of work
	// per acquired connection.
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
