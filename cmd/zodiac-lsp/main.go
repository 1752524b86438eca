// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"zodiac/internal/lsp"
)

const lsName = "zodiac"

func main() {
	// 1 = debug level, nil = stderr
	commonlog.Configure(1, nil)

	zodiacHandler := lsp.NewZodiacHandler()

	handler := protocol.Handler{
		Initialize:                     zodiacHandler.Initialize,
		Initialized:                    zodiacHandler.Initialized,
		Shutdown:                       zodiacHandler.Shutdown,
		SetTrace:                       zodiacHandler.SetTrace,
		TextDocumentDidOpen:            zodiacHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           zodiacHandler.TextDocumentDidClose,
		TextDocumentDidChange:          zodiacHandler.TextDocumentDidChange,
		TextDocumentCompletion:         zodiacHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: zodiacHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting Zodiac LSP server...")

	if err := s.RunStdio(); err != nil {
		log.Println("Error starting Zodiac LSP server:", err)
		os.Exit(1)
	}
}
