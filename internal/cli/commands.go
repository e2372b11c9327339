package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nexconsult/juris-api/internal/document"
	"github.com/nexconsult/juris-api/internal/models"
	"github.com/nexconsult/juris-api/internal/tribunal"
	"github.com/spf13/cobra"
)

const (
	kindAny  = document.KindUnknown
	kindCPF  = document.KindCPF
	kindCNPJ = document.KindCNPJ
)

// printOneOrMany prints a single object for one argument, an array otherwise
func printOneOrMany[T any](a *app, items []T) error {
	if len(items) == 1 {
		return a.print(items[0])
	}
	return a.print(items)
}

func (a *app) documentCommand(use, short string, kind document.Kind) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <numero>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var results []document.Result
			if kind == kindAny {
				var err error
				if results, err = a.validation.ValidateBatch(cmd.Context(), args); err != nil {
					return err
				}
			} else {
				for _, arg := range args {
					results = append(results, a.validation.ValidateDocument(kind, arg))
				}
			}

			responses := make([]models.DocumentResponse, 0, len(results))
			invalid := 0
			for _, result := range results {
				if !result.Valid {
					invalid++
				}
				responses = append(responses, models.NewDocumentResponse(result))
			}

			if err := printOneOrMany(a, responses); err != nil {
				return err
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d: %w", invalid, len(args), ErrInvalidInput)
			}
			return nil
		},
	}
}

type checkDigitsOutput struct {
	Base        string `json:"base"`
	Kind        string `json:"kind"`
	CheckDigits string `json:"digito_verificador"`
	Digits      string `json:"digits"`
	Formatted   string `json:"formatted"`
}

func (a *app) checkDigitsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dv <base>",
		Short: "Compute the check digits of a 9-digit CPF or 12-digit CNPJ base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base := document.Clean(args[0])

			var (
				kind   document.Kind
				d1, d2 int
				err    error
			)
			switch len(base) {
			case 9:
				kind = document.KindCPF
				d1, d2, err = document.CheckDigitsCPF(base)
			case 12:
				kind = document.KindCNPJ
				d1, d2, err = document.CheckDigitsCNPJ(base)
			default:
				return fmt.Errorf("base must have 9 (CPF) or 12 (CNPJ) digits, got %d", len(base))
			}
			if err != nil {
				return err
			}

			digits := fmt.Sprintf("%s%d%d", base, d1, d2)
			formatted, err := document.Format(digits, kind)
			if err != nil {
				return err
			}

			return a.print(checkDigitsOutput{
				Base:        base,
				Kind:        kind.String(),
				CheckDigits: fmt.Sprintf("%d%d", d1, d2),
				Digits:      digits,
				Formatted:   formatted,
			})
		},
	}
}

func (a *app) extractCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "extrair [arquivo]",
		Short: "Find valid CPF and CNPJ numbers in a text file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := cmd.InOrStdin()
			if len(args) == 1 {
				file, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer file.Close()
				input = file
			}

			text, err := io.ReadAll(input)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			numbers := document.ExtractFromText(string(text))
			responses := make([]models.DocumentResponse, 0, len(numbers))
			for _, n := range numbers {
				responses = append(responses, models.NewDocumentResponse(a.validation.ValidateDocument(n.Kind, n.Raw)))
			}

			return a.print(responses)
		},
	}
}

type lookupError struct {
	Original string `json:"original"`
	Error    string `json:"erro"`
}

func (a *app) caseNumberCommand() *cobra.Command {
	var checkDigits bool

	cmd := &cobra.Command{
		Use:   "processo <numero>...",
		Short: "Parse CNJ case numbers and resolve their courts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputs := make([]interface{}, 0, len(args))
			invalid := 0

			for _, arg := range args {
				lookup, err := a.validation.ParseCaseNumber(arg)
				if err != nil {
					invalid++
					outputs = append(outputs, lookupError{Original: arg, Error: err.Error()})
					continue
				}

				response := models.NewCaseNumberResponse(lookup.Case)
				if lookup.Court != nil {
					court := models.NewTribunalResponse(*lookup.Court)
					response.Court = &court
				}
				if checkDigits && !response.CheckDigitsValid {
					invalid++
				}
				outputs = append(outputs, response)
			}

			if err := printOneOrMany(a, outputs); err != nil {
				return err
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d: %w", invalid, len(args), ErrInvalidInput)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&checkDigits, "verificar-dv", false, "Treat numbers with wrong check digits as invalid")
	return cmd
}

func (a *app) tribunalCommand() *cobra.Command {
	var branch int

	cmd := &cobra.Command{
		Use:   "tribunais [chave]",
		Short: "List registered courts or look one up by its J.TR key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				key, err := tribunal.ParseKey(args[0])
				if err != nil {
					return err
				}
				entry, err := a.validation.Tribunal(key)
				if errors.Is(err, tribunal.ErrNotFound) {
					if printErr := a.print(lookupError{Original: args[0], Error: err.Error()}); printErr != nil {
						return printErr
					}
					return fmt.Errorf("%s: %w", key, ErrInvalidInput)
				}
				if err != nil {
					return err
				}
				return a.print(models.NewTribunalResponse(entry))
			}

			responses := make([]models.TribunalResponse, 0, a.router.Len())
			for _, entry := range a.validation.Tribunals() {
				if branch > 0 && entry.Key.Branch != branch {
					continue
				}
				responses = append(responses, models.NewTribunalResponse(entry))
			}
			return a.print(responses)
		},
	}

	cmd.Flags().IntVarP(&branch, "segmento", "s", 0, "Only list courts of this judicial branch (1-9)")
	return cmd
}
