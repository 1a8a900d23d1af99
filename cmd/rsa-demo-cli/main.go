// Package main is the entry point for the rsa-demo-cli application.
// It walks through textbook RSA on tiny primes: key generation, encryption of
// a hexadecimal message, and decryption of the result.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/MGTheTrain/rsa-demo/cmd/rsa-demo-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "rsa-demo-cli",
		Short: "Textbook RSA walkthrough on small integers",
		Long: `rsa-demo-cli generates two small primes, derives an RSA key pair from them,
encrypts the given hexadecimal message with the public key and decrypts it
again with the private key.

Pass -i to print every intermediate value, the extended Euclidean steps that
produce d, and the square-and-multiply steps of both exponentiations.

This is a teaching aid. The keys are tiny and offer no security at all.`,
		SilenceErrors: true,
	}

	if err := commands.InitRSACommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
