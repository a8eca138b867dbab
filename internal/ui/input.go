package ui

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/Amr-9/nwcgen/pkg/generator/nostr"
)

// Action is a choice from the main menu.
type Action int

const (
	ActionInvalid Action = iota
	ActionGenerate
	ActionToggleReveal
	ActionBuildURI
	ActionVanity
	ActionQuit
)

// SelectAction prints the main menu and reads the user's choice.
func SelectAction(reader *bufio.Reader, hasKeys, revealed bool) Action {
	fmt.Printf("\n    %s⚡ MENU%s\n", ColorPurple+ColorBold, ColorReset)

	genLabel := "Generate client keys"
	if hasKeys {
		genLabel = "Regenerate client keys"
	}
	fmt.Printf("    %s[1]%s 🔑 %s\n", ColorCyan, ColorReset, genLabel)

	revealLabel := "Show private key"
	if revealed {
		revealLabel = "Hide private key"
	}
	if hasKeys {
		fmt.Printf("    %s[2]%s 👁  %s\n", ColorCyan, ColorReset, revealLabel)
		fmt.Printf("    %s[3]%s 🔗 Build wallet connect URI\n", ColorCyan, ColorReset)
	} else {
		fmt.Printf("    %s[2]%s 👁  %s %s(no keys yet)%s\n", ColorCyan, ColorReset, revealLabel, ColorDim, ColorReset)
		fmt.Printf("    %s[3]%s 🔗 Build wallet connect URI %s(no keys yet)%s\n", ColorCyan, ColorReset, ColorDim, ColorReset)
	}
	fmt.Printf("    %s[4]%s 🎯 Vanity npub search\n", ColorCyan, ColorReset)
	fmt.Printf("    %s[Q]%s Exit\n", ColorRed, ColorReset)

	fmt.Printf("\n    %s→%s ", ColorGreen, ColorReset)
	input, err := reader.ReadString('\n')
	if err != nil && input == "" {
		return ActionQuit
	}
	return ParseAction(input)
}

// ParseAction maps menu input to an Action.
func ParseAction(input string) Action {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "1", "g", "generate":
		return ActionGenerate
	case "2", "r", "reveal":
		return ActionToggleReveal
	case "3", "u", "uri":
		return ActionBuildURI
	case "4", "v", "vanity":
		return ActionVanity
	case "q", "quit", "exit":
		return ActionQuit
	default:
		return ActionInvalid
	}
}

// GetRelay prompts for a relay address, falling back to def on empty input.
func GetRelay(reader *bufio.Reader, def string) string {
	if def != "" {
		fmt.Printf("    %sRelay URL%s [%s]: ", ColorCyan, ColorReset, def)
	} else {
		fmt.Printf("    %sRelay URL%s (wss://relay.example.com): ", ColorCyan, ColorReset)
	}
	input, _ := reader.ReadString('\n')
	relay := strings.TrimSpace(input)
	if relay == "" {
		return def
	}
	return relay
}

// GetVanityPattern prompts for an npub prefix and suffix.
// Patterns with characters bech32 cannot produce are reported and dropped.
func GetVanityPattern(reader *bufio.Reader) (string, string) {
	fmt.Printf("    %s🎯 TARGET PATTERN%s\n", ColorPurple+ColorBold, ColorReset)

	fmt.Printf("    %sPrefix%s (npub1...): ", ColorCyan, ColorReset)
	prefixInput, _ := reader.ReadString('\n')
	prefix := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(prefixInput)), "npub1")

	if prefix != "" && !nostr.IsValidPattern(prefix) {
		printInvalidChars(nostr.InvalidChars(prefix))
		prefix = ""
	}

	fmt.Printf("    %sSuffix%s (...xxx): ", ColorCyan, ColorReset)
	suffixInput, _ := reader.ReadString('\n')
	suffix := strings.ToLower(strings.TrimSpace(suffixInput))

	if suffix != "" && !nostr.IsValidPattern(suffix) {
		printInvalidChars(nostr.InvalidChars(suffix))
		suffix = ""
	}

	return prefix, suffix
}

func printInvalidChars(invalid []rune) {
	fmt.Printf("    %s⚠ Invalid bech32 character(s): %s%s\n", ColorRed, string(invalid), ColorReset)
	fmt.Printf("    %s  (Not allowed: 1, b, i, o)%s\n", ColorDim, ColorReset)
}

// AskToContinue prompts user to continue or exit
func AskToContinue(reader *bufio.Reader) bool {
	fmt.Printf("\n    %s[Enter]%s Back to menu  │  %s[Q]%s Exit\n", ColorGreen, ColorReset, ColorRed, ColorReset)
	fmt.Printf("    %s→%s ", ColorCyan, ColorReset)
	input, err := reader.ReadString('\n')
	if err != nil && input == "" {
		return false
	}
	input = strings.TrimSpace(strings.ToLower(input))
	return input != "q" && input != "quit" && input != "exit"
}
