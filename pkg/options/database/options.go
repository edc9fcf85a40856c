// Package database provides relational database configuration options.
package database

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// Driver names accepted by the database component.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Options defines configuration options for the document database.
type Options struct {
	// Driver selects the database backend (postgres or sqlite).
	Driver string `json:"driver" mapstructure:"driver"`

	// Host, Port, Username, Password, Database and SSLMode configure
	// the postgres driver.
	Host     string `json:"host" mapstructure:"host"`
	Port     int    `json:"port" mapstructure:"port"`
	Username string `json:"username" mapstructure:"username"`
	Password string `json:"password" mapstructure:"password"`
	Database string `json:"database" mapstructure:"database"`
	SSLMode  string `json:"ssl-mode" mapstructure:"ssl-mode"`

	// Path is the sqlite database file (":memory:" for in-memory).
	Path string `json:"path" mapstructure:"path"`

	MaxIdleConnections    int           `json:"max-idle-connections" mapstructure:"max-idle-connections"`
	MaxOpenConnections    int           `json:"max-open-connections" mapstructure:"max-open-connections"`
	MaxConnectionLifeTime time.Duration `json:"max-connection-life-time" mapstructure:"max-connection-life-time"`
	LogLevel              int           `json:"log-level" mapstructure:"log-level"`
}

// NewOptions creates a new Options object with default values.
func NewOptions() *Options {
	return &Options{
		Driver:                DriverSQLite,
		Host:                  "127.0.0.1",
		Port:                  5432,
		Username:              "postgres",
		SSLMode:               "disable",
		Path:                  "doc-center.db",
		MaxIdleConnections:    10,
		MaxOpenConnections:    100,
		MaxConnectionLifeTime: 10 * time.Second,
		LogLevel:              1, // Silent
	}
}

// DSN builds the postgres connection string.
func (o *Options) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		o.Host, o.Port, o.Username, o.Password, o.Database, o.SSLMode)
}

// Validate checks if the options are valid.
func (o *Options) Validate() error {
	switch o.Driver {
	case DriverPostgres:
		if o.Database == "" {
			return fmt.Errorf("database.database is required for the postgres driver")
		}
	case DriverSQLite:
		if o.Path == "" {
			return fmt.Errorf("database.path is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("database.driver must be 'postgres' or 'sqlite', got: %s", o.Driver)
	}
	return nil
}

// AddFlags adds flags for database options to the specified FlagSet.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Driver, "database.driver", o.Driver, "Database driver (postgres, sqlite)")
	fs.StringVar(&o.Host, "database.host", o.Host, "PostgreSQL host")
	fs.IntVar(&o.Port, "database.port", o.Port, "PostgreSQL port")
	fs.StringVar(&o.Username, "database.username", o.Username, "PostgreSQL username")
	fs.StringVar(&o.Password, "database.password", o.Password, "PostgreSQL password")
	fs.StringVar(&o.Database, "database.database", o.Database, "PostgreSQL database")
	fs.StringVar(&o.SSLMode, "database.ssl-mode", o.SSLMode, "PostgreSQL SSL mode")
	fs.StringVar(&o.Path, "database.path", o.Path, "SQLite database file path")
	fs.IntVar(&o.MaxIdleConnections, "database.max-idle-connections", o.MaxIdleConnections, "Database max idle connections")
	fs.IntVar(&o.MaxOpenConnections, "database.max-open-connections", o.MaxOpenConnections, "Database max open connections")
	fs.DurationVar(&o.MaxConnectionLifeTime, "database.max-connection-life-time", o.MaxConnectionLifeTime, "Database max connection life time")
	fs.IntVar(&o.LogLevel, "database.log-level", o.LogLevel, "Database log level")
}
