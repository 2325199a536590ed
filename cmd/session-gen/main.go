package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/amarnathcjd/gogram/telegram"
)

// Generates a string session for running the userbot on headless hosts:
// log in once here, then export STRING_SESSION for cmd/userbot.
func main() {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Enter your API_ID (from https://my.telegram.org): ")
	apiIDStr, _ := reader.ReadString('\n')
	apiID, err := strconv.Atoi(strings.TrimSpace(apiIDStr))
	if err != nil {
		fmt.Println("Error: API_ID must be a number.")
		os.Exit(1)
	}

	fmt.Print("Enter your API_HASH: ")
	apiHash, _ := reader.ReadString('\n')
	apiHash = strings.TrimSpace(apiHash)
	if apiHash == "" {
		fmt.Println("Error: API_HASH cannot be empty.")
		os.Exit(1)
	}

	fmt.Println("Connecting to Telegram...")

	client, err := telegram.NewClient(telegram.ClientConfig{
		AppID:         int32(apiID),
		AppHash:       apiHash,
		SessionName:   "userbot_session",
		MemorySession: true,
	})
	if err != nil {
		fmt.Printf("Error creating client: %v\n", err)
		os.Exit(1)
	}

	if err := client.Connect(); err != nil {
		fmt.Printf("Error connecting: %v\n", err)
		os.Exit(1)
	}

	// Prompts for phone, code and password on the terminal.
	if err := client.Start(); err != nil {
		fmt.Printf("Error logging in: %v\n", err)
		os.Exit(1)
	}

	me, err := client.GetMe()
	if err != nil {
		fmt.Printf("Error getting account info: %v\n", err)
		os.Exit(1)
	}

	session := client.ExportSession()

	fmt.Println()
	fmt.Printf("Logged in as: %s %s (@%s), user id %d\n", me.FirstName, me.LastName, me.Username, me.ID)
	fmt.Println()
	fmt.Println("Your STRING_SESSION (keep it secret, it grants full account access):")
	fmt.Println(session)
	fmt.Println()
	fmt.Printf("export STRING_SESSION=\"%s\"\n", session)

	client.Stop()
}
