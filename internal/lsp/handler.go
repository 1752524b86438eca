package lsp

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"zodiac/internal/lexer"
)

var log = commonlog.GetLogger("zodiac.lsp")

// Semantic token types reported to the client, indexed by SemanticToken.TokenType.
var SemanticTokenTypes = []string{
	"comment",
	"operator",
	"variable",
	"string",
	"number",
}

// No modifiers are reported yet; the legend still has to carry the list.
var SemanticTokenModifiers = []string{}

// ZodiacHandler implements the LSP server handlers for the Zodiac language
type ZodiacHandler struct {
	mu      sync.RWMutex
	content map[string]string
	tokens  map[string][]lexer.Token
}

func NewZodiacHandler() *ZodiacHandler {
	return &ZodiacHandler{
		content: make(map[string]string),
		tokens:  make(map[string][]lexer.Token),
	}
}

// Initialize advertises full document sync and full semantic tokens.
func (h *ZodiacHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

func (h *ZodiacHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("Zodiac LSP Initialized")
	return nil
}

func (h *ZodiacHandler) Shutdown(ctx *glsp.Context) error {
	log.Info("Zodiac LSP Shutdown")
	return nil
}

func (h *ZodiacHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (h *ZodiacHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Infof("Opened file: %s", params.TextDocument.URI)

	return h.updateDocument(ctx, params.TextDocument.URI, params.TextDocument.Text)
}

// TextDocumentDidChange takes the last full-text change; the server only
// advertises full sync.
func (h *ZodiacHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Infof("Changed file: %s", params.TextDocument.URI)

	text, ok := lastFullText(params.ContentChanges)
	if !ok {
		log.Warningf("No full-text change for %s", params.TextDocument.URI)
		return nil
	}

	return h.updateDocument(ctx, params.TextDocument.URI, text)
}

func (h *ZodiacHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Infof("Closed file: %s", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, path)
	delete(h.tokens, path)

	return nil
}

// TextDocumentCompletion returns an empty list.
func (h *ZodiacHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        []protocol.CompletionItem{},
	}, nil
}

func (h *ZodiacHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	log.Debugf("TextDocumentSemanticTokensFull called for: %s", params.TextDocument.URI)

	tokens, err := h.getOrLoadTokens(ctx, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(collectSemanticTokens(tokens)),
	}, nil
}

// Content returns the last known text of a document.
func (h *ZodiacHandler) Content(rawURI protocol.DocumentUri) (string, bool) {
	path, err := uriToPath(rawURI)
	if err != nil {
		return "", false
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	content, ok := h.content[path]
	return content, ok
}

func (h *ZodiacHandler) getOrLoadTokens(ctx *glsp.Context, rawURI protocol.DocumentUri) ([]lexer.Token, error) {
	path, err := uriToPath(rawURI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	h.mu.RLock()
	tokens, ok := h.tokens[path]
	h.mu.RUnlock()
	if ok {
		return tokens, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	if err := h.updateDocument(ctx, rawURI, string(content)); err != nil {
		return nil, err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.tokens[path], nil
}

// updateDocument re-tokenizes a document and publishes its diagnostics. A
// document that fails to lex keeps its text but has no tokens.
func (h *ZodiacHandler) updateDocument(ctx *glsp.Context, rawURI protocol.DocumentUri, text string) error {
	path, err := uriToPath(rawURI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	tokens, lexErr := lexer.Tokenize(text)
	diagnostics := ConvertLexError(lexErr)

	h.mu.Lock()
	h.content[path] = text
	h.tokens[path] = tokens
	h.mu.Unlock()

	sendDiagnosticNotification(ctx, rawURI, diagnostics)
	return nil
}

func lastFullText(changes []any) (string, bool) {
	for i := len(changes) - 1; i >= 0; i-- {
		switch change := changes[i].(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			return change.Text, true
		case *protocol.TextDocumentContentChangeEventWhole:
			return change.Text, true
		case protocol.TextDocumentContentChangeEvent:
			if change.Range == nil {
				return change.Text, true
			}
		}
	}
	return "", false
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) → C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}

	log.Debugf("Sending %d diagnostics for %s", len(diagnostics), uri)

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
