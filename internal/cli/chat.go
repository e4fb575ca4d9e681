// Package cli hosts the interactive chat loop used by `parley chat`.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/parley"
	"github.com/aretw0/parley/internal/adapters/memory"
	"github.com/aretw0/parley/internal/adapters/rules"
	"github.com/aretw0/parley/internal/logging"
	"github.com/aretw0/parley/internal/presentation/tui"
	"github.com/aretw0/parley/pkg/domain"
	"github.com/google/uuid"
	"golang.org/x/term"
)

// RunChat starts a local REPL against an in-memory store and the offline
// rules recognizer. Each run is one fresh conversation.
func RunChat(userID string, debug bool) error {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	bot, err := parley.New(memory.NewStore(), rules.New(),
		parley.WithLogger(logging.New(level)),
	)
	if err != nil {
		return fmt.Errorf("initialize bot: %w", err)
	}

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	render := func(text string) string { return text }
	if interactive {
		tui.PrintBanner()
		markdown := tui.NewRenderer()
		render = func(text string) string {
			if out, err := markdown(text); err == nil {
				return strings.TrimRight(out, "\n")
			}
			return text
		}
		fmt.Println("Type a message, or /quit to leave.")
		fmt.Println()
	}

	conversationID := uuid.NewString()
	if userID == "" {
		userID = "local"
	}

	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Print("> ")
		}
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if text == "/quit" || text == "/exit" {
			break
		}

		replies, err := bot.ProcessTurn(ctx, domain.Activity{
			ChannelID:      "console",
			ConversationID: conversationID,
			UserID:         userID,
			Text:           text,
		})
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}

		for _, reply := range replies {
			if reply.Text != "" {
				fmt.Println(render(reply.Text))
			}
			for _, att := range reply.Attachments {
				printAttachment(att)
			}
		}
	}
	return scanner.Err()
}

// printAttachment gives cards a plain-text rendition; the console has no
// rich card surface.
func printAttachment(att domain.Attachment) {
	card, ok := att.Content.(domain.TemplateCard)
	if !ok {
		return
	}
	for _, el := range card.Elements {
		fmt.Printf("[%s] %s\n", el.Title, el.Subtitle)
		if el.ImageURL != "" {
			fmt.Printf("    %s\n", el.ImageURL)
		}
	}
}
