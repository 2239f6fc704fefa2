package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from the process command line.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-db-driver database/sql driver (pgx, sqlite3, sqlite)
//	-db-host database host
//	-db-user database username
//	-db-password database password
//	-db-name database name
//	-migrate apply schema migrations at startup
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level minimum log level
//	-version application version
//	-c/-config json file path with configs
func ParseFlags() (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN, driver, host, username, password, name string
	var migrate bool
	var requestTimeout time.Duration
	var logLevel, version string
	var jsonConfigPath string

	fs := flag.CommandLine
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&driver, "db-driver", "", "Database driver (pgx, sqlite3, sqlite)")
	fs.StringVar(&host, "db-host", "", "Database host")
	fs.StringVar(&username, "db-user", "", "Database username")
	fs.StringVar(&password, "db-password", "", "Database password")
	fs.StringVar(&name, "db-name", "", "Database name")
	fs.BoolVar(&migrate, "migrate", false, "Apply schema migrations at startup")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level")
	fs.StringVar(&version, "version", "", "Application version")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	// only an explicitly passed -migrate takes part in the merge
	var autoMigrate *bool
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "migrate" {
			autoMigrate = &migrate
		}
	})

	return &StructuredConfig{
		App: App{
			Version:  version,
			LogLevel: logLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver:      driver,
				Host:        host,
				Username:    username,
				Password:    password,
				Name:        name,
				DSN:         databaseDSN,
				AutoMigrate: autoMigrate,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host may be empty (all interfaces), "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
