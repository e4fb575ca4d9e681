package parley_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/parley"
	"github.com/aretw0/parley/internal/adapters/memory"
	"github.com/aretw0/parley/internal/adapters/rules"
	"github.com/aretw0/parley/pkg/domain"
)

func Example() {
	bot, err := parley.New(memory.NewStore(), rules.New())
	if err != nil {
		log.Fatal(err)
	}

	replies, err := bot.ProcessTurn(context.Background(), domain.Activity{
		ChannelID:      "console",
		ConversationID: "demo",
		UserID:         "alice",
		Text:           "hi",
	})
	if err != nil {
		log.Fatal(err)
	}

	for _, reply := range replies {
		fmt.Println(reply.Text)
	}
	// Output:
	// What is your name?
}
