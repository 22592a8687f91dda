// tilomsg sends a command line to a running tilo instance over its IPC
// socket and prints the per-command results.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/xonecas/tilo/internal/config"
	"github.com/xonecas/tilo/internal/ipc"
)

func main() {
	socketPath := flag.String("socket", "", "IPC socket path (defaults to $TILOSOCK, then the runtime dir)")
	quiet := flag.Bool("q", false, "suppress output, report via exit status only")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: tilomsg [-socket path] [-q] <command>...")
		os.Exit(2)
	}

	path := *socketPath
	if path == "" {
		path = os.Getenv("TILOSOCK")
	}
	if path == "" {
		path = config.Default().SocketOrDefault()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	results, err := ipc.RunCommand(ctx, path, strings.Join(flag.Args(), " "))
	if err != nil {
		fmt.Fprintln(os.Stderr, "tilomsg:", err)
		os.Exit(1)
	}

	code := 0
	for _, res := range results {
		if !res.Success {
			code = 1
		}
		if *quiet {
			continue
		}
		if res.Message != "" {
			fmt.Printf("%s: %s\n", res.Status, res.Message)
		} else {
			fmt.Println(res.Status)
		}
	}
	os.Exit(code)
}
