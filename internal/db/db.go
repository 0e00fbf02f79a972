package db

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/friendsofgo/errors"
	_ "github.com/lib/pq"
)

var Conn *sql.DB

// InitPostgres opens and pings the platform database. Conn stays nil on
// failure.
func InitPostgres(dsn string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return errors.Wrap(err, "open postgres")
	}

	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return errors.Wrap(err, "ping postgres")
	}
	conn.SetMaxOpenConns(10)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	Conn = conn
	slog.Info("PostgreSQL connected")
	return nil
}

func CloseDB() {
	if Conn == nil {
		return
	}
	if err := Conn.Close(); err != nil {
		slog.Error("closing DB", "err", err)
		return
	}
	Conn = nil
	slog.Info("PostgreSQL connection closed")
}
