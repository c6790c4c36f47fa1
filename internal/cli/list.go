package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"countryexplorer/internal/domain"
	"countryexplorer/internal/ui/logic"
	"countryexplorer/internal/ui/views"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

// listOutput is the JSON shape of the list command
type listOutput struct {
	State     string           `json:"state"`
	Filter    string           `json:"filter,omitempty"`
	Message   string           `json:"message,omitempty"`
	Countries []domain.Country `json:"countries"`
}

func newListCommand(a *app) *cobra.Command {
	var (
		filter string
		output string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Fetch the countries once and print them",
		Long: `Fetch the countries once, apply the filter and print the result.

The same display rules as the interactive explorer apply: a failed query prints
the error text, an empty result prints an explanation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != outputTable && output != outputJSON {
				return fmt.Errorf("unknown output %q (want %s or %s)", output, outputTable, outputJSON)
			}

			ctx, cancel := context.WithTimeout(commandContext(cmd), a.cfg.RequestTimeout())
			defer cancel()

			fetched, fetchErr := a.newFetcher(a.cfg, a.logger).FetchCountries(ctx)
			display := logic.SelectDisplayState(false, fetchErr, filter, logic.FilterCountries(fetched, filter))

			w := cmd.OutOrStdout()
			if fetchErr != nil && output == outputTable {
				w = cmd.ErrOrStderr()
			}
			if err := writeDisplay(w, display, filter, output); err != nil {
				return err
			}

			if fetchErr != nil {
				// Already printed; only the exit status is left to report
				cmd.SilenceErrors = true
				return fetchErr
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "country code filter")
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format (table or json)")

	return cmd
}

// writeDisplay prints a display state in the requested format
func writeDisplay(w io.Writer, display logic.DisplayState, filter, output string) error {
	if output == outputJSON {
		out := listOutput{
			State:     display.Kind.String(),
			Filter:    filter,
			Message:   display.Message,
			Countries: display.Countries,
		}
		if out.Countries == nil {
			out.Countries = []domain.Country{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	_, err := fmt.Fprintln(w, views.RenderPlain(display))
	return err
}
