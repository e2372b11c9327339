// Package cli implements the jurischeck command line tool.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/nexconsult/juris-api/internal/logger"
	"github.com/nexconsult/juris-api/internal/services"
	"github.com/nexconsult/juris-api/internal/tribunal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ErrInvalidInput is returned when at least one argument failed validation.
// The output has already been printed when it is returned.
var ErrInvalidInput = errors.New("invalid input")

type app struct {
	out       io.Writer
	errOut    io.Writer
	tablePath string
	overwrite bool
	logLevel  string
	compact   bool

	logger     *logrus.Logger
	router     *tribunal.Router
	validation *services.ValidationService
}

// NewRootCommand builds the jurischeck command tree writing results to out
// and logs to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "jurischeck",
		Short: "Validate CPF/CNPJ numbers and parse CNJ case numbers",
		Long: `jurischeck validates Brazilian taxpayer numbers and judicial case numbers.

Every command prints JSON and exits with status 1 when any argument is invalid.

Examples:
  # Validate a CPF
  jurischeck cpf 529.982.247-25

  # Classify and validate several numbers
  jurischeck doc 52998224725 11.222.333/0001-81

  # Parse a case number and resolve its court
  jurischeck processo 0000832-35.2018.4.01.3202

  # Look a court up
  jurischeck tribunais 8.26`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&a.tablePath, "tabela", os.Getenv("TRIBUNAL_TABLE_PATH"), "JSON file with extra tribunal entries")
	root.PersistentFlags().BoolVar(&a.overwrite, "sobrescrever", false, "Let the tribunal file replace built-in entries")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.compact, "compacto", false, "Print compact JSON")

	root.AddCommand(
		a.documentCommand("cpf", "Validate CPF numbers", kindCPF),
		a.documentCommand("cnpj", "Validate CNPJ numbers", kindCNPJ),
		a.documentCommand("doc", "Classify and validate CPF or CNPJ numbers", kindAny),
		a.checkDigitsCommand(),
		a.extractCommand(),
		a.caseNumberCommand(),
		a.tribunalCommand(),
	)

	return root
}

// setup runs before every subcommand
func (a *app) setup(cmd *cobra.Command, args []string) error {
	a.logger = logger.NewWithOutput(a.logLevel, "text", a.errOut)

	a.router = tribunal.NewDefault()
	if a.tablePath != "" {
		n, err := a.router.LoadFile(a.tablePath, a.overwrite)
		if err != nil {
			return fmt.Errorf("failed to load tribunal table: %w", err)
		}
		a.logger.WithFields(logrus.Fields{
			"path":    a.tablePath,
			"entries": n,
		}).Info("Tribunal table loaded")
	}

	// Every argument of a single invocation fits in one batch
	a.validation = services.NewValidationService(a.router, max(len(args), 1), a.logger)
	return nil
}

func (a *app) print(v interface{}) error {
	encoder := json.NewEncoder(a.out)
	if !a.compact {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(v)
}

// Execute runs jurischeck against os.Args and returns the exit status
func Execute() int {
	_ = godotenv.Load()

	if err := NewRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		if !errors.Is(err, ErrInvalidInput) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		return 1
	}
	return 0
}
