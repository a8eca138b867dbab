package ui

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/Amr-9/nwcgen/pkg/generator"
	"github.com/Amr-9/nwcgen/pkg/generator/nostr"
	"github.com/Amr-9/nwcgen/pkg/generator/nwc"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorCyan   = "\033[36m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorRed    = "\033[31m"
	ColorPurple = "\033[35m"
	ColorBold   = "\033[1m"
	ColorDim    = "\033[2m"
)

// Mask is shown in place of hidden secrets.
const Mask = "••••••••••••••••••••••••••••••••••••"

// ClearScreen clears the terminal
func ClearScreen() {
	fmt.Print("\033[H\033[2J")
}

// PrintWelcomeBanner shows the welcome screen
func PrintWelcomeBanner(version string) {
	fmt.Println()
	fmt.Printf("%s%s", ColorCyan, ColorBold)
	fmt.Println("  ╔══════════════════════════════════════════════════════════╗")
	fmt.Println("  ║   ⚡ NWCGEN                                               ║")
	fmt.Println("  ╠══════════════════════════════════════════════════════════╣")
	fmt.Printf("  ║%s   Nostr Keys & Wallet Connect URIs %s• v%s%s                ║\n", ColorYellow, ColorDim, version, ColorCyan+ColorBold)
	fmt.Println("  ╚══════════════════════════════════════════════════════════╝")
	fmt.Print(ColorReset)
	fmt.Println()
}

// MaskSecret returns s when reveal is set and the mask otherwise.
func MaskSecret(s string, reveal bool) string {
	if reveal {
		return s
	}
	return Mask
}

// PrintKeyPair shows both halves of a key pair in hex and NIP-19 form.
// Secret values are masked unless reveal is set.
func PrintKeyPair(w io.Writer, kp *nostr.KeyPair, reveal bool) {
	fmt.Fprintf(w, "\n    %s🔓 PUBLIC KEY%s\n", ColorCyan+ColorBold, ColorReset)
	fmt.Fprintf(w, "       %sHex%s      %s%s%s\n", ColorDim, ColorReset, ColorYellow, kp.PublicHex(), ColorReset)
	fmt.Fprintf(w, "       %sNIP-19%s   %s%s%s\n\n", ColorDim, ColorReset, ColorGreen, kp.Npub(), ColorReset)

	fmt.Fprintf(w, "    %s🔑 PRIVATE KEY%s\n", ColorPurple+ColorBold, ColorReset)
	fmt.Fprintf(w, "       %sHex%s      %s%s%s\n", ColorDim, ColorReset, ColorYellow, MaskSecret(kp.SecretHex(), reveal), ColorReset)
	fmt.Fprintf(w, "       %sNIP-19%s   %s%s%s\n\n", ColorDim, ColorReset, ColorGreen, MaskSecret(kp.Nsec(), reveal), ColorReset)

	if reveal {
		fmt.Fprintf(w, "    %s%s⚠  KEEP YOUR PRIVATE KEY SECRET!%s\n", ColorRed, ColorBold, ColorReset)
	} else {
		fmt.Fprintf(w, "    %s(private key hidden, use --reveal to show it)%s\n", ColorDim, ColorReset)
	}
}

// PrintURI shows a freshly built connection URI and what its parts mean.
func PrintURI(w io.Writer, uri string) {
	fmt.Fprintf(w, "\n    %s🔗 WALLET CONNECT URI%s\n\n", ColorCyan+ColorBold, ColorReset)
	fmt.Fprintf(w, "       %s%s%s\n\n", ColorGreen, uri, ColorReset)
	fmt.Fprintf(w, "    %s%s://<wallet pubkey>?%s=<relay>&%s=<client secret>%s\n", ColorDim, nwc.Scheme, nwc.ParamRelay, nwc.ParamSecret, ColorReset)
	fmt.Fprintf(w, "    %s• wallet pubkey  unique key generated for this connection%s\n", ColorDim, ColorReset)
	fmt.Fprintf(w, "    %s• relay          where wallet messages are exchanged%s\n", ColorDim, ColorReset)
	fmt.Fprintf(w, "    %s• secret         client key used for signing and encryption%s\n\n", ColorDim, ColorReset)
	fmt.Fprintf(w, "    %s%s⚠  ANYONE WITH THIS URI CAN USE YOUR WALLET CONNECTION!%s\n", ColorRed, ColorBold, ColorReset)
}

// PrintConnection shows the parts of a parsed connection URI.
func PrintConnection(w io.Writer, conn *nwc.Connection, clientNpub string, reveal bool) {
	fmt.Fprintf(w, "\n    %s🔗 WALLET CONNECTION%s\n", ColorCyan+ColorBold, ColorReset)
	fmt.Fprintf(w, "       %sWallet%s   %s%s%s\n", ColorDim, ColorReset, ColorYellow, conn.WalletPubKey, ColorReset)
	fmt.Fprintf(w, "       %sRelay%s    %s%s%s\n", ColorDim, ColorReset, ColorGreen, conn.Relay, ColorReset)
	fmt.Fprintf(w, "       %sClient%s   %s%s%s\n", ColorDim, ColorReset, ColorGreen, clientNpub, ColorReset)
	fmt.Fprintf(w, "       %sSecret%s   %s%s%s\n", ColorDim, ColorReset, ColorYellow, MaskSecret(conn.Secret, reveal), ColorReset)
}

// PrintDecoded shows a decoded NIP-19 key.
func PrintDecoded(w io.Writer, role nostr.Role, hexKey string, reveal bool) {
	if role == nostr.SecretRole {
		hexKey = MaskSecret(hexKey, reveal)
	}
	fmt.Fprintf(w, "\n    %sRole%s   %s (%s)\n", ColorDim, ColorReset, role, role.Prefix())
	fmt.Fprintf(w, "    %sHex%s    %s%s%s\n", ColorDim, ColorReset, ColorYellow, hexKey, ColorReset)
}

// PrintSearchInfo displays search configuration
func PrintSearchInfo(w io.Writer, config *generator.Config, difficulty uint64) {
	fmt.Fprintf(w, "\n    %s🚀 SEARCHING%s", ColorGreen+ColorBold, ColorReset)
	fmt.Fprintf(w, " %s%snpub1%s%s...%s", ColorBold, ColorCyan, config.Prefix, ColorDim, ColorReset)
	if config.Suffix != "" {
		fmt.Fprintf(w, "%s%s%s%s", ColorCyan, ColorBold, config.Suffix, ColorReset)
	}
	fmt.Fprintf(w, " %s(1/%s)%s\n\n", ColorDim, FormatNumber(difficulty), ColorReset)
}

// PrintProgress shows animated progress bar
func PrintProgress(w io.Writer, stats generator.Stats, difficulty uint64, frame int) {
	spinners := []string{"◐", "◓", "◑", "◒"}
	spinner := spinners[frame%len(spinners)]

	fmt.Fprintf(w, "\r    %s%s%s %s%s%s %s%s%s │ %s%s%s │ %s",
		ColorCyan, spinner, ColorReset,
		ColorDim, ProgressBar(stats.Attempts, difficulty, 40), ColorReset,
		ColorGreen+ColorBold, FormatHashRate(stats.HashRate), ColorReset,
		ColorYellow, FormatNumber(stats.Attempts), ColorReset,
		FormatDuration(time.Duration(stats.ElapsedSecs*float64(time.Second))))
}

// ProgressBar renders the chance of having found a match after attempts tries.
// Half full at difficulty/2 attempts, approaching full asymptotically.
func ProgressBar(attempts, difficulty uint64, width int) string {
	diff := float64(difficulty)
	if diff == 0 {
		diff = 1
	}
	ratio := float64(attempts) / diff
	progress := 1.0 - math.Pow(0.5, 2.0*ratio)

	filled := int(progress * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat("▓", filled) + strings.Repeat("░", width-filled)
}

// PrintVanityResult shows the found npub and its key pair
func PrintVanityResult(w io.Writer, result generator.Result, elapsed time.Duration, attempts uint64, reveal bool) {
	fmt.Fprintf(w, "\n    %s%s╔══════════════════════════════════════════════════════════╗%s\n", ColorGreen, ColorBold, ColorReset)
	fmt.Fprintf(w, "    %s%s║               ✨ NPUB FOUND! ✨                          ║%s\n", ColorGreen, ColorBold, ColorReset)
	fmt.Fprintf(w, "    %s%s╚══════════════════════════════════════════════════════════╝%s\n", ColorGreen, ColorBold, ColorReset)

	PrintKeyPair(w, result.Keys, reveal)

	fmt.Fprintf(w, "\n    %s⏱   %s%s   %s│   %s📊  %s%s%s\n",
		ColorCyan, ColorReset+ColorBold, FormatDuration(elapsed),
		ColorDim,
		ColorPurple, ColorReset+ColorBold, FormatNumber(attempts),
		ColorReset)
}

// PrintError shows an error line
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "\n    %s✗ %v%s\n", ColorRed, err, ColorReset)
}

// FormatHashRate formats hash rate nicely
func FormatHashRate(rate float64) string {
	if rate >= 1000000 {
		return fmt.Sprintf("%.1fM/s", rate/1000000)
	}
	if rate >= 1000 {
		return fmt.Sprintf("%.1fK/s", rate/1000)
	}
	return fmt.Sprintf("%.0f/s", rate)
}

// ClearLine clears the current line
func ClearLine(w io.Writer) {
	fmt.Fprint(w, "\r                                                                                              \r")
}

// FormatNumber adds commas to large numbers
func FormatNumber(n uint64) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	s := fmt.Sprintf("%d", n)
	result := make([]byte, 0, len(s)+(len(s)-1)/3)
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}
	return string(result)
}

// FormatDuration formats duration in a human-readable way
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm %ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", h, m)
}
