package cli

import (
	"dailyco/properties"
	"fmt"

	"github.com/spf13/cobra"
)

type fieldRow struct {
	Key     string      `json:"key"`
	Claim   string      `json:"claim,omitempty"`
	Kind    string      `json:"kind"`
	Default interface{} `json:"default,omitempty"`
	Values  []string    `json:"values,omitempty"`
}

func newFieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "fields {room|token}",
		Short:     "List the properties accepted by --set",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"room", "token"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var schema *properties.Schema
			switch args[0] {
			case "room":
				schema = properties.Room
			case "token":
				schema = properties.Token
			default:
				return fmt.Errorf("unknown resource %q", args[0])
			}

			rows := make([]fieldRow, 0, len(schema.Fields()))
			for _, f := range schema.Fields() {
				row := fieldRow{
					Key:     string(f.Key),
					Kind:    f.Kind.String(),
					Default: f.Default,
					Values:  f.Values,
				}
				if schema == properties.Token {
					row.Claim = f.ClaimKey()
				}
				rows = append(rows, row)
			}
			return printJSON(cmd, rows)
		},
	}
}
