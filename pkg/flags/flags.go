package flags

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Config holds the server's command-line options. Port overrides
// SERVER_PORT when set.
type Config struct {
	Port  string
	Reset bool
	Help  bool
}

// Parse parses os.Args and exits on --help or an invalid port.
func Parse(defaultPort string) Config {
	config, err := ParseArgs(os.Args[1:], defaultPort, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return config
}

// ParseArgs parses args into a Config. It returns flag.ErrHelp after
// printing usage when --help is given.
func ParseArgs(args []string, defaultPort string, output io.Writer) (Config, error) {
	fs := flag.NewFlagSet("gorestaurant", flag.ContinueOnError)
	fs.SetOutput(output)

	var config Config
	fs.StringVar(&config.Port, "port", defaultPort, "Port number")
	fs.BoolVar(&config.Reset, "reset", false, "Drop and recreate all tables")
	fs.BoolVar(&config.Help, "help", false, "Show this screen")

	fs.Usage = func() {
		fmt.Fprintf(output, "GoRestaurant API\n\n")
		fmt.Fprintf(output, "Usage:\n")
		fmt.Fprintf(output, "  gorestaurant [--port <N>] [--reset]\n")
		fmt.Fprintf(output, "  gorestaurant --help\n\n")
		fmt.Fprintf(output, "Options:\n")
		fmt.Fprintf(output, "  --help       Show this screen.\n")
		fmt.Fprintf(output, "  --port N     Port number (1-65535).\n")
		fmt.Fprintf(output, "  --reset      Drop and recreate all tables before starting.\n")
	}

	if err := fs.Parse(args); err != nil {
		return config, err
	}
	if config.Help {
		fs.Usage()
		return config, flag.ErrHelp
	}

	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// Validate checks the parsed configuration.
func (c Config) Validate() error {
	return validatePort(c.Port)
}

func validatePort(port string) error {
	if port == "" {
		return fmt.Errorf("port cannot be empty")
	}

	portNum, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("invalid port number '%s': must be a number", port)
	}

	if portNum < 1 || portNum > 65535 {
		return fmt.Errorf("port number %d is out of range: must be between 1 and 65535", portNum)
	}

	return nil
}
