package commands

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/MGTheTrain/rsa-demo/internal/app"
	"github.com/MGTheTrain/rsa-demo/internal/domain/toyrsa"
	"github.com/MGTheTrain/rsa-demo/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/rsa-demo/internal/pkg/config"
	"github.com/MGTheTrain/rsa-demo/internal/pkg/logger"
	"github.com/MGTheTrain/rsa-demo/internal/pkg/report"

	"github.com/spf13/cobra"
)

// RSACommandHandler runs one RSA key generation and round trip per invocation.
type RSACommandHandler struct {
	newSource func(seed int64) toyrsa.RandomSource
}

// NewRSACommandHandler returns a handler drawing from a math/rand generator seeded per run
func NewRSACommandHandler() *RSACommandHandler {
	return &RSACommandHandler{
		newSource: func(seed int64) toyrsa.RandomSource {
			return rand.New(rand.NewSource(seed))
		},
	}
}

// RunRSACmd parses the hex message, derives fresh key material, encrypts and
// decrypts the message, and writes the report to stdout.
func (commandHandler *RSACommandHandler) RunRSACmd(cmd *cobra.Command, args []string) error {
	// arguments were accepted, so later failures are not usage errors
	cmd.SilenceUsage = true

	message, err := report.ParseHexMessage(args[0])
	if err != nil {
		return err
	}

	loggerSettings, keyGenSettings, err := readSettings(cmd)
	if err != nil {
		return err
	}
	illustrate, err := cmd.Flags().GetBool("illustrate")
	if err != nil {
		return fmt.Errorf("invalid illustrate flag: %w", err)
	}

	loggerInstance, err := setupLogger(loggerSettings)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(commandHandler.newSource(keyGenSettings.Seed), loggerInstance)
	if err != nil {
		return fmt.Errorf("failed to create RSA processor: %w", err)
	}

	service, err := app.NewRoundTripService(keyGenSettings, rsaProcessor, loggerInstance)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	transcript, err := service.Run(ctx, message)
	if err != nil {
		return err
	}

	if illustrate {
		return report.WriteVerbose(cmd.OutOrStdout(), transcript)
	}
	return report.WriteTerse(cmd.OutOrStdout(), transcript)
}

func readSettings(cmd *cobra.Command) (*config.LoggerSettings, *config.KeyGenSettings, error) {
	flags := cmd.Flags()

	logLevel, err := flags.GetString("log-level")
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log-level flag: %w", err)
	}
	logFile, err := flags.GetString("log-file")
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log-file flag: %w", err)
	}
	logType, err := flags.GetString("log-type")
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log-type flag: %w", err)
	}
	loggerSettings := config.NewLoggerSettings(logLevel, logFile)
	// --log-file alone still selects the file logger
	if flags.Changed("log-type") {
		loggerSettings.LogType = logType
	}
	if err := loggerSettings.Validate(); err != nil {
		return nil, nil, err
	}

	keyGenSettings := &config.KeyGenSettings{}
	for name, dst := range map[string]*int64{
		"seed":      &keyGenSettings.Seed,
		"prime-min": &keyGenSettings.PrimeMin,
		"prime-max": &keyGenSettings.PrimeMax,
		"p":         &keyGenSettings.FixedP,
		"q":         &keyGenSettings.FixedQ,
		"e":         &keyGenSettings.FixedE,
	} {
		v, err := flags.GetInt64(name)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid %s flag: %w", name, err)
		}
		*dst = v
	}
	if err := keyGenSettings.Validate(); err != nil {
		return nil, nil, err
	}

	return loggerSettings, keyGenSettings, nil
}

// InitRSACommands turns rootCmd into the RSA walkthrough command
func InitRSACommands(rootCmd *cobra.Command) error {
	return initRSACommands(rootCmd, NewRSACommandHandler())
}

func initRSACommands(rootCmd *cobra.Command, handler *RSACommandHandler) error {
	if handler == nil {
		return fmt.Errorf("RSA command handler cannot be nil")
	}

	rootCmd.Use = "rsa-demo-cli <hex_message>"
	rootCmd.Args = cobra.ExactArgs(1)
	rootCmd.RunE = handler.RunRSACmd

	flags := rootCmd.Flags()
	flags.BoolP("illustrate", "i", false, "Print every intermediate value and step instead of the two-line summary")
	flags.Int64("seed", time.Now().UnixNano(), "Random number generator seed")
	flags.Int64("prime-min", config.DefaultPrimeMin, "Lower bound of the prime sampling range")
	flags.Int64("prime-max", config.DefaultPrimeMax, "Upper bound of the prime sampling range")
	flags.Int64("p", 0, "Use this prime for p instead of drawing one")
	flags.Int64("q", 0, "Use this prime for q instead of drawing one")
	flags.Int64("e", 0, "Use this public exponent instead of drawing one")
	flags.String("log-level", config.LogLevelWarning, "Log level (debug, info, warning, error, critical)")
	flags.String("log-type", config.LogTypeConsole,
		fmt.Sprintf("Log sink (%s); file requires --log-file", strings.Join(logger.SinkNames(), ", ")))
	flags.String("log-file", "", "Write JSON logs to this rotated file instead of stderr")
	return nil
}
