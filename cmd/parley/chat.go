package main

import (
	"fmt"
	"os"

	"github.com/aretw0/parley/internal/cli"
	"github.com/spf13/cobra"
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the bot in the terminal",
	Long:  `Starts a local conversation against an in-memory store and the offline recognizer.`,
	Run: func(cmd *cobra.Command, args []string) {
		userID, _ := cmd.Flags().GetString("user")
		debug, _ := cmd.Flags().GetBool("debug")

		if err := cli.RunChat(userID, debug); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().StringP("user", "u", "local", "User ID for the conversation")
	chatCmd.Flags().Bool("debug", false, "Enable debug logging")
}
