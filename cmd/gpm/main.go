package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/apehex/gpm"
)

// masterKeyEnv names the environment variable consulted when --key is absent.
const masterKeyEnv = "GPM_MASTER_KEY"

var (
	masterKey      string
	loginTarget    string
	loginID        string
	passwordLength int
	passwordNonce  int
	excludeLower   bool
	excludeUpper   bool
	excludeDigits  bool
	includeSymbols bool
	contextWidth   int
	embeddingWidth int
	verbose        bool
)

var rootCmd = &cobra.Command{
	Use:   "gpm",
	Short: "Generate / retrieve the password matching the input informations",
	Long: `gpm derives passwords instead of storing them.

The password is a pure function of the master key, the login target, the
login id and the composition flags: the same inputs always print the same
password, on any machine, with nothing written to disk.

The master key is read from --key, from the ` + masterKeyEnv + ` environment
variable, or from a hidden terminal prompt, in that order. The login target
is prompted for when --target is absent.`,
	RunE:          runGenerate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&masterKey, "key", "k", "", "the master key (all ASCII)")
	rootCmd.Flags().StringVarP(&loginTarget, "target", "t", "", "the login target (URL, IP, name, etc)")
	rootCmd.Flags().StringVarP(&loginID, "id", "i", "", "the login id (username, email, etc)")
	rootCmd.Flags().IntVarP(&passwordLength, "length", "l", gpm.DefaultLength, "the length of the password")
	rootCmd.Flags().IntVarP(&passwordNonce, "nonce", "n", gpm.DefaultNonce, "the nonce of the password")
	rootCmd.Flags().BoolVarP(&excludeLower, "lower", "a", false, "exclude lowercase letters from the password")
	rootCmd.Flags().BoolVarP(&excludeUpper, "upper", "A", false, "exclude uppercase letters from the password")
	rootCmd.Flags().BoolVarP(&excludeDigits, "digits", "d", false, "exclude digits from the password")
	rootCmd.Flags().BoolVarP(&includeSymbols, "symbols", "s", false, "include symbols in the password")
	rootCmd.Flags().IntVar(&contextWidth, "context", gpm.DefaultContextWidth, "the width of the model context window")
	rootCmd.Flags().IntVar(&embeddingWidth, "embedding", gpm.DefaultEmbeddingWidth, "the width of the model embeddings")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "echo the masked configuration before the password")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	// Fill the missing arguments
	if masterKey == "" {
		masterKey = os.Getenv(masterKeyEnv)
	}
	if masterKey == "" {
		key, err := promptSecret(cmd, "> Master key: ")
		if err != nil {
			return err
		}
		masterKey = key
	}
	if masterKey == "" {
		return fmt.Errorf("master key cannot be empty")
	}
	if loginTarget == "" {
		target, err := promptLine(cmd, "> Login target: ")
		if err != nil {
			return err
		}
		loginTarget = target
	}

	cfg := gpm.Config{
		MasterKey:      masterKey,
		Target:         loginTarget,
		Login:          loginID,
		Length:         passwordLength,
		Nonce:          passwordNonce,
		Lower:          !excludeLower,
		Upper:          !excludeUpper,
		Digits:         !excludeDigits,
		Symbols:        includeSymbols,
		ContextWidth:   contextWidth,
		EmbeddingWidth: embeddingWidth,
	}

	if verbose {
		for _, line := range gpm.AuditLines(cfg) {
			fmt.Fprintln(cmd.ErrOrStderr(), line)
		}
	}

	password, err := gpm.GenerateContext(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), password)
	return nil
}

// promptSecret reads a value from the terminal without echoing it.
func promptSecret(cmd *cobra.Command, prompt string) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	value, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(cmd.ErrOrStderr()) // New line after hidden input
	if err != nil {
		return "", fmt.Errorf("failed to read master key: %w", err)
	}
	return string(value), nil
}

// promptLine reads one line from standard input.
func promptLine(cmd *cobra.Command, prompt string) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read login target: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
