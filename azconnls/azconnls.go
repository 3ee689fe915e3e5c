package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli"

	azurestorage "github.com/egomobile/go-azure-storage"
)

func main() {
	app := newApp(os.Stdout)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "azconnls"
	app.Usage = "Lists the Azure Storage connections declared in the environment (AZURE_STORAGE_CONNECTION_<N> variable groups)"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "quiet, q",
			Usage: "print connection names only",
		},
	}
	app.Action = func(c *cli.Context) error {
		return listConnections(out, nil, c.Bool("quiet"))
	}
	return app
}

// listConnections prints every connection declared in env to out.  A nil env
// means the process environment.
func listConnections(out io.Writer, env azurestorage.Env, quiet bool) error {
	connections := azurestorage.ListConnections(env)
	if len(connections) == 0 {
		fmt.Fprintln(out, "no connections declared")
		return nil
	}

	for _, conn := range connections {
		if quiet {
			fmt.Fprintln(out, conn.Name)
			continue
		}
		printConnection(out, conn)
	}
	return nil
}

func printConnection(out io.Writer, conn azurestorage.ConnectionInfo) {
	name := color.New(color.FgCyan, color.Bold).SprintFunc()
	warn := color.New(color.FgRed).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	fmt.Fprintf(out, "%s %s\n", name(conn.Name), dim(fmt.Sprintf("(index %d)", conn.Index)))
	if conn.URL == "" {
		fmt.Fprintf(out, "  url:       %s\n", warn("<missing>"))
	} else {
		fmt.Fprintf(out, "  url:       %s\n", redact(conn.URL))
	}
	if conn.Container != "" {
		fmt.Fprintf(out, "  container: %s\n", conn.Container)
	}
}

// redact masks the AccountKey and SharedAccessSignature values of a connection
// string so that listings are safe to paste into logs and tickets.
func redact(url string) string {
	parts := strings.Split(url, ";")
	for i, part := range parts {
		key, _, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "accountkey", "sharedaccesssignature":
			parts[i] = key + "=***"
		}
	}
	return strings.Join(parts, ";")
}
