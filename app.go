package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"
)

// ConfirmFunc answers a yes/no prompt. Returning false declines the
// operation, which is a no-op rather than an error.
type ConfirmFunc func(prompt string) bool

// App runs tracker operations against one loaded store. The confirmation
// prompt and the clock are injectable so the rules can be tested without
// a terminal or real time.
type App struct {
	store   *Store
	confirm ConfirmFunc
	now     func() time.Time
}

func NewApp() *App {
	return &App{
		confirm: terminalConfirm,
		now:     time.Now,
	}
}

// terminalConfirm reads a single y/N line from stdin.
func terminalConfirm(prompt string) bool {
	fmt.Printf("%s (y/N) ", prompt)

	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')

	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(input)), "y")
}
