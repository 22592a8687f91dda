// Package ipc exposes the command language over a unix socket so external
// tools (tilomsg) can drive the manager while it runs.
package ipc

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/jsonrpc2"

	"github.com/xonecas/tilo/internal/commands"
)

// MethodRunCommand is the only RPC method: run a command line.
const MethodRunCommand = "run_command"

// CommandRequest is the run_command parameter payload.
type CommandRequest struct {
	Command string `json:"command"`
}

// CommandResult is the per-command outcome returned to the client.
type CommandResult struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Runner executes a command line on the manager's event loop and returns
// the results. Implementations must serialize execution themselves; the
// server may call from multiple connections.
type Runner func(command string) []commands.Results

// Server accepts connections on a unix socket and forwards command lines
// to the runner. It never touches the tree directly.
type Server struct {
	listener net.Listener
	runner   Runner
}

// Listen binds the unix socket, replacing a stale one if present.
func Listen(path string, runner Runner) (*Server, error) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ipc: remove stale socket: %w", err)
	}
	ln, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("ipc: listen: %w", err)
	}
	return &Server{listener: ln, runner: runner}, nil
}

// Serve accepts connections until the listener is closed.
func (s *Server) Serve(ctx context.Context) {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return
		}
		stream := jsonrpc2.NewBufferedStream(conn, jsonrpc2.VSCodeObjectCodec{})
		jsonrpc2.NewConn(ctx, stream, jsonrpc2.HandlerWithError(s.handle))
	}
}

// Close shuts the listener down; in-flight connections finish on their own.
func (s *Server) Close() error {
	return s.listener.Close()
}

// Addr returns the socket path.
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

func (s *Server) handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
	if req.Method != MethodRunCommand {
		return nil, &jsonrpc2.Error{
			Code:    jsonrpc2.CodeMethodNotFound,
			Message: fmt.Sprintf("method %q not found", req.Method),
		}
	}
	var params CommandRequest
	if req.Params == nil {
		return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: "missing params"}
	}
	if err := json.Unmarshal(*req.Params, &params); err != nil {
		return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: err.Error()}
	}

	log.Debug().Str("command", params.Command).Msg("ipc command received")
	results := s.runner(params.Command)
	out := make([]CommandResult, len(results))
	for i, res := range results {
		out[i] = CommandResult{
			Success: res.Status == commands.Success,
			Status:  res.Status.String(),
			Message: res.Message,
		}
	}
	return out, nil
}

// RunCommand dials the socket and runs one command line, client side.
func RunCommand(ctx context.Context, socketPath, command string) ([]CommandResult, error) {
	rpc, err := dial(ctx, socketPath)
	if err != nil {
		return nil, err
	}
	defer rpc.Close()

	var results []CommandResult
	if err := rpc.Call(ctx, MethodRunCommand, CommandRequest{Command: command}, &results); err != nil {
		return nil, fmt.Errorf("ipc: %s: %w", MethodRunCommand, err)
	}
	return results, nil
}

// dial opens a client connection to the socket.
func dial(ctx context.Context, socketPath string) (*jsonrpc2.Conn, error) {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("ipc: dial %s: %w", socketPath, err)
	}
	stream := jsonrpc2.NewBufferedStream(conn, jsonrpc2.VSCodeObjectCodec{})
	return jsonrpc2.NewConn(ctx, stream, noopHandler{}), nil
}

// noopHandler ignores server-initiated requests on client connections.
type noopHandler struct{}

func (noopHandler) Handle(context.Context, *jsonrpc2.Conn, *jsonrpc2.Request) {}
