package lsp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	intconfig "github.com/leapstack-labs/timelang/internal/config"
	"github.com/leapstack-labs/timelang/internal/engine"
)

// maxContentLength bounds a single message body. Larger bodies are skipped.
const maxContentLength = 4 << 20

var errMessageTooLarge = fmt.Errorf("message exceeds %d bytes", maxContentLength)

// JSON-RPC error codes.
const (
	codeParseError     = -32700
	codeInvalidParams  = -32602
	codeMethodNotFound = -32601
	codeInvalidRequest = -32600
	codeNotInitialized = -32002
)

// Config configures a Server.
type Config struct {
	Engine  *engine.Engine
	Version string
	Logger  *slog.Logger
}

// Server speaks LSP over a Content-Length framed JSON-RPC stream.
type Server struct {
	documents *DocumentStore
	engine    *engine.Engine
	version   string

	initialized bool
	shutdown    bool

	reader  *bufio.Reader
	writer  io.Writer
	writeMu sync.Mutex

	logger *slog.Logger
}

// NewServer creates a server reading requests from reader and writing
// responses to writer.
func NewServer(reader io.Reader, writer io.Writer, cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		documents: NewDocumentStore(),
		engine:    cfg.Engine,
		version:   cfg.Version,
		reader:    bufio.NewReader(reader),
		writer:    writer,
		logger:    logger,
	}
}

// Documents returns the store of open documents.
func (s *Server) Documents() *DocumentStore {
	return s.documents
}

// Run processes messages until the client sends exit, closes the stream,
// or ctx is done.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("timelang language server starting")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		msg, err := s.readMessage()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				s.logger.Info("client disconnected")
				return nil
			}
			var se *json.SyntaxError
			var te *json.UnmarshalTypeError
			switch {
			case errors.As(err, &se):
				s.sendResponse(nil, nil, &JSONRPCError{Code: codeParseError, Message: err.Error()})
				continue
			case errors.As(err, &te), errors.Is(err, errMessageTooLarge):
				s.logger.Warn("rejected message", slog.String("error", err.Error()))
				s.sendResponse(nil, nil, &JSONRPCError{Code: codeInvalidRequest, Message: err.Error()})
				continue
			}
			return err
		}

		if msg.Method == "exit" {
			s.logger.Info("server exit", slog.Bool("clean", s.shutdown))
			if !s.shutdown {
				return errors.New("exit before shutdown")
			}
			return nil
		}

		if err := s.handleMessage(ctx, msg); err != nil {
			s.logger.Error("error handling message",
				slog.String("method", msg.Method),
				slog.String("error", err.Error()))
		}
	}
}

// JSONRPCMessage represents a JSON-RPC 2.0 message.
type JSONRPCMessage struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      *json.RawMessage `json:"id,omitempty"`
	Method  string           `json:"method,omitempty"`
	Params  json.RawMessage  `json:"params,omitempty"`
	Result  json.RawMessage  `json:"result,omitempty"`
	Error   *JSONRPCError    `json:"error,omitempty"`
}

// JSONRPCError represents a JSON-RPC error.
type JSONRPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// readMessage reads one framed message.
func (s *Server) readMessage() (*JSONRPCMessage, error) {
	contentLength := -1
	for {
		line, err := s.reader.ReadString('\n')
		if err != nil {
			return nil, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			break
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok || !strings.EqualFold(strings.TrimSpace(name), "Content-Length") {
			continue
		}
		contentLength, err = strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("invalid Content-Length: %w", err)
		}
	}
	if contentLength < 0 {
		return nil, errors.New("missing Content-Length header")
	}

	if contentLength > maxContentLength {
		if _, err := io.CopyN(io.Discard, s.reader, int64(contentLength)); err != nil {
			return nil, fmt.Errorf("reading body: %w", err)
		}
		return nil, errMessageTooLarge
	}

	body := make([]byte, contentLength)
	if _, err := io.ReadFull(s.reader, body); err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}

	var msg JSONRPCMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *Server) sendResponse(id *json.RawMessage, result any, rpcErr *JSONRPCError) {
	msg := JSONRPCMessage{JSONRPC: "2.0", ID: id}
	if id == nil {
		null := json.RawMessage("null")
		msg.ID = &null
	}
	if rpcErr != nil {
		msg.Error = rpcErr
	} else {
		body, err := json.Marshal(result)
		if err != nil {
			s.logger.Error("marshaling result", slog.String("error", err.Error()))
			return
		}
		msg.Result = body
	}
	s.writeMessage(&msg)
}

func (s *Server) sendNotification(method string, params any) {
	msg := JSONRPCMessage{JSONRPC: "2.0", Method: method}
	if params != nil {
		body, err := json.Marshal(params)
		if err != nil {
			s.logger.Error("marshaling params", slog.String("error", err.Error()))
			return
		}
		msg.Params = body
	}
	s.writeMessage(&msg)
}

func (s *Server) writeMessage(msg *JSONRPCMessage) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	body, err := json.Marshal(msg)
	if err != nil {
		s.logger.Error("marshaling message", slog.String("error", err.Error()))
		return
	}
	if _, err := fmt.Fprintf(s.writer, "Content-Length: %d\r\n\r\n", len(body)); err != nil {
		s.logger.Error("writing header", slog.String("error", err.Error()))
		return
	}
	if _, err := s.writer.Write(body); err != nil {
		s.logger.Error("writing body", slog.String("error", err.Error()))
	}
}

// handleMessage dispatches a message to its handler.
func (s *Server) handleMessage(ctx context.Context, msg *JSONRPCMessage) error {
	s.logger.Debug("received", slog.String("method", msg.Method))

	if s.shutdown && msg.ID != nil {
		s.sendResponse(msg.ID, nil, &JSONRPCError{Code: codeInvalidRequest, Message: "server is shut down"})
		return nil
	}
	if !s.initialized && msg.Method != "initialize" {
		if msg.ID != nil {
			s.sendResponse(msg.ID, nil, &JSONRPCError{Code: codeNotInitialized, Message: "server not initialized"})
		}
		return nil
	}

	switch msg.Method {
	case "initialize":
		return s.handleInitialize(msg)
	case "initialized":
		return nil
	case "shutdown":
		s.shutdown = true
		s.sendResponse(msg.ID, nil, nil)
		return nil
	case "textDocument/didOpen":
		return s.handleDidOpen(ctx, msg)
	case "textDocument/didChange":
		return s.handleDidChange(ctx, msg)
	case "textDocument/didClose":
		return s.handleDidClose(msg)
	case "textDocument/completion":
		return s.handleCompletion(msg)
	case "textDocument/hover":
		return s.handleHover(msg)
	case "textDocument/formatting":
		return s.handleFormatting(ctx, msg)
	default:
		if msg.ID != nil {
			s.sendResponse(msg.ID, nil, &JSONRPCError{
				Code:    codeMethodNotFound,
				Message: "method not found: " + msg.Method,
			})
		}
		return nil
	}
}

// decodeParams unmarshals params, answering requests with an
// invalid-params error on failure.
func (s *Server) decodeParams(msg *JSONRPCMessage, v any) error {
	if err := json.Unmarshal(msg.Params, v); err != nil {
		if msg.ID != nil {
			s.sendResponse(msg.ID, nil, &JSONRPCError{Code: codeInvalidParams, Message: err.Error()})
		}
		return err
	}
	return nil
}

// --- Lifecycle ---

func (s *Server) handleInitialize(msg *JSONRPCMessage) error {
	var params InitializeParams
	if err := s.decodeParams(msg, &params); err != nil {
		return err
	}
	s.initialized = true
	root := URIToPath(params.RootURI)
	s.logger.Info("initialized", slog.String("root", root))
	if root != "" {
		s.loadProjectConfig(root)
	}

	s.sendResponse(msg.ID, InitializeResult{
		Capabilities: ServerCapabilities{
			TextDocumentSync: &TextDocumentSyncOptions{
				OpenClose: true,
				Change:    TextDocumentSyncKindFull,
			},
			CompletionProvider:         &CompletionOptions{TriggerCharacters: []string{" "}},
			HoverProvider:              true,
			DocumentFormattingProvider: true,
		},
		ServerInfo: &ServerInfo{Name: "timelang", Version: s.version},
	}, nil)
	return nil
}

// loadProjectConfig switches the engine to the rule set by the workspace
// config file, if any. A broken file is reported to the client and the
// current engine is kept.
func (s *Server) loadProjectConfig(root string) {
	path := intconfig.FindConfigFile(root)
	if path == "" {
		return
	}
	cfg, err := intconfig.LoadFile(path)
	if err == nil && cfg.Rule != s.engine.Rule() {
		var eng *engine.Engine
		eng, err = engine.New(engine.Config{Rule: cfg.Rule, Workers: s.engine.Workers(), Logger: s.logger})
		if err == nil {
			s.engine = eng
		}
	}
	if err != nil {
		s.logger.Warn("ignoring project config",
			slog.String("path", path),
			slog.String("error", err.Error()))
		s.sendNotification("window/showMessage", &ShowMessageParams{
			Type:    MessageTypeWarning,
			Message: fmt.Sprintf("timelang: ignoring %s: %v", path, err),
		})
		return
	}
	s.logger.Info("project config loaded",
		slog.String("path", path),
		slog.String("rule", s.engine.Rule()))
}

// --- Document sync ---

func (s *Server) handleDidOpen(ctx context.Context, msg *JSONRPCMessage) error {
	var params DidOpenTextDocumentParams
	if err := s.decodeParams(msg, &params); err != nil {
		return err
	}
	doc := params.TextDocument
	s.documents.Open(doc.URI, doc.Text, doc.Version)
	s.logger.Debug("opened", slog.String("uri", doc.URI))
	return s.publishDiagnostics(ctx, doc.URI)
}

func (s *Server) handleDidChange(ctx context.Context, msg *JSONRPCMessage) error {
	var params DidChangeTextDocumentParams
	if err := s.decodeParams(msg, &params); err != nil {
		return err
	}
	if len(params.ContentChanges) == 0 {
		return nil
	}
	// Full sync: the last change holds the whole document.
	text := params.ContentChanges[len(params.ContentChanges)-1].Text
	uri := params.TextDocument.URI
	if !s.documents.Update(uri, text, params.TextDocument.Version) {
		return fmt.Errorf("change for unopened document %s", uri)
	}
	return s.publishDiagnostics(ctx, uri)
}

func (s *Server) handleDidClose(msg *JSONRPCMessage) error {
	var params DidCloseTextDocumentParams
	if err := s.decodeParams(msg, &params); err != nil {
		return err
	}
	s.documents.Close(params.TextDocument.URI)
	s.sendNotification("textDocument/publishDiagnostics", &PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []Diagnostic{},
	})
	return nil
}
