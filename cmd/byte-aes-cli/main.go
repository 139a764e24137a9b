// Package main is the entry point for the byte-aes-cli application.
// It initializes the root command, registers the AES-256 sub-commands
// and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/xmh0511/byte-aes/cmd/byte-aes-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "byte-aes-cli",
		Short: "AES-256 independent-block encryption CLI tool",
		Long: `byte-aes-cli encrypts and decrypts files and text with AES-256.
Data is padded to whole 16-byte blocks and every block is encrypted on its own.

The 32-byte key is taken from --key, --key-file or the BYTE_AES_KEY environment variable,
in that order.`,
		SilenceUsage: true,
	}

	// Initialize all command groups BEFORE executing
	if err := commands.InitAESCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
