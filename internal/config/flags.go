package config

import (
	"errors"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// Flags holds the command-line overrides bound to a cobra/pflag flag set.
type Flags struct {
	address NetAddress
	cfg     StructuredConfig
}

// NewFlags registers the configuration flags on fs.
//
// Flags:
//
//	-a/--address remote vault address in format [host]:[port]
//	-d/--dsn local sqlite database path
//	-c/--config JSON config file path
//	-u/--user user id whose queue is processed
//	--request-timeout outbound request timeout (e.g. "30s")
//	--sync-interval watch-mode pass period (e.g. "5m")
//	--soft-conflict-threshold offline password changes that force a backup
//	--backup-placement conflict_folder or in_place
//	--conflict-folder name of the backup folder
func NewFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.VarP(&f.address, "address", "a", "Remote vault address host:port")
	fs.StringVarP(&f.cfg.Storage.DB.DSN, "dsn", "d", "", "Local sqlite database path")
	fs.StringVarP(&f.cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.StringVarP(&f.cfg.App.UserID, "user", "u", "", "User id")
	fs.DurationVar(&f.cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&f.cfg.Workers.SyncInterval, "sync-interval", 0, "Watch mode interval (e.g., 5m)")
	fs.IntVar(&f.cfg.Resolver.SoftConflictThreshold, "soft-conflict-threshold", 0, "Offline password changes that force a backup")
	fs.StringVar((*string)(&f.cfg.Resolver.BackupPlacement), "backup-placement", "", "Backup placement: conflict_folder or in_place")
	fs.StringVar(&f.cfg.Resolver.ConflictFolderName, "conflict-folder", "", "Name of the folder holding backups")

	return f
}

// Config returns the parsed overrides. Unset flags stay zero and never
// override other sources.
func (f *Flags) Config() *StructuredConfig {
	cfg := f.cfg
	cfg.Adapter.HTTPAddress = f.address.String()
	return &cfg
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
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in 1..65535")
	}

	if host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
