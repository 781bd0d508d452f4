package config

import (
	"errors"
	"flag"
	"fmt"
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

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a analysis API base URL (e.g. http://localhost:8000)
//	-request-timeout analysis request timeout (e.g. "2m")
//	-d durable storage DSN (SQLite path or postgres URL)
//	-session-path bbolt session file path
//	-kdf-iterations PBKDF2 iteration count
//	-min-passphrase-length minimum secure-mode passphrase length
//	-clear-on-format-error erase a corrupted stored envelope
//	-server-address development server address in format [host]:[port]
//	-server-request-timeout development server request timeout
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet(commandName(), flag.ContinueOnError)

	var serverAddress NetAddress
	var adapterAddress string
	var adapterTimeout time.Duration
	var databaseDSN string
	var sessionPath string
	var kdfIterations int
	var minPassphraseLength int
	var clearOnFormatError bool
	var serverTimeout time.Duration
	var jsonConfigPath string

	fs.StringVar(&adapterAddress, "a", "", "Analysis API base URL")
	fs.DurationVar(&adapterTimeout, "request-timeout", 0, "Analysis request timeout (e.g., 30s, 2m)")
	fs.StringVar(&databaseDSN, "d", "", "Durable storage DSN")
	fs.StringVar(&sessionPath, "session-path", "", "Session storage file path")
	fs.IntVar(&kdfIterations, "kdf-iterations", 0, "PBKDF2 iteration count")
	fs.IntVar(&minPassphraseLength, "min-passphrase-length", 0, "Minimum passphrase length")
	fs.BoolVar(&clearOnFormatError, "clear-on-format-error", false, "Erase a corrupted stored key")
	fs.Var(&serverAddress, "server-address", "Development server address host:port")
	fs.DurationVar(&serverTimeout, "server-request-timeout", 0, "Development server request timeout")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: adapterTimeout,
		},
		Storage: Storage{
			DB:      DB{DSN: databaseDSN},
			Session: Session{Path: sessionPath},
		},
		Vault: Vault{
			KDFIterations:       kdfIterations,
			MinPassphraseLength: minPassphraseLength,
			ClearOnFormatError:  clearOnFormatError,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: serverTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func commandName() string {
	if len(os.Args) == 0 {
		return "go-wise"
	}
	return os.Args[0]
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
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
