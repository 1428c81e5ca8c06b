// Package console is a local chat transport: one line on stdin is one
// inbound message, replies print to stdout. Useful for development and as
// the default gateway when no broker is around.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"grana/internal/chat"
	"grana/internal/log"
)

var (
	typingStyle = color.New(color.FgHiBlack, color.Italic)
	replyStyle  = color.New(color.FgCyan)
)

type Gateway struct {
	handler chat.Handler
	log     *log.Logger

	in  io.Reader
	out io.Writer

	mu sync.Mutex // serializes writes to out
	wg sync.WaitGroup
}

func New(handler chat.Handler, logger *log.Logger) *Gateway {
	return &Gateway{
		handler: handler,
		log:     logger.WithComponent(log.ComponentConsole),
		in:      os.Stdin,
		out:     os.Stdout,
	}
}

// NewWithIO is New with explicit streams, for tests.
func NewWithIO(handler chat.Handler, logger *log.Logger, in io.Reader, out io.Writer) *Gateway {
	g := New(handler, logger)
	g.in = in
	g.out = out
	return g
}

// Run reads messages until EOF or context cancellation. Each message is
// handled on its own goroutine, so a new message may arrive while a previous
// reply is still being composed, just like a real chat session.
func (g *Gateway) Run(ctx context.Context) error {
	g.log.Info("Assistente financeiro pronto!")

	scanner := bufio.NewScanner(g.in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		msg := chat.Message{
			ID:         uuid.NewString(),
			From:       "console",
			Text:       line,
			ReceivedAt: time.Now(),
		}
		g.wg.Add(1)
		go func() {
			defer g.wg.Done()
			g.handler.Handle(ctx, msg, g)
		}()
	}

	g.wg.Wait()
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read console input: %w", err)
	}
	return ctx.Err()
}

func (g *Gateway) SendTyping(_ context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, err := typingStyle.Fprintln(g.out, "digitando…")
	return err
}

func (g *Gateway) Reply(_ context.Context, text string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, err := replyStyle.Fprintln(g.out, text)
	return err
}
