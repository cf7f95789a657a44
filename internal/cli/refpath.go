package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rust-protogen/internal/app"
)

type refPathOptions struct {
	From       []string
	To         []string
	ToAbsolute bool
}

func newRefPathCommand() *cobra.Command {
	opts := refPathOptions{}
	cmd := &cobra.Command{
		Use:   "refpath",
		Short: "Compute the shortest module path between two positions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRefPath(cmd, opts)
		},
	}
	cmd.Flags().StringSliceVar(&opts.From, "from", nil, "Source module path segments")
	cmd.Flags().StringSliceVar(&opts.To, "to", nil, "Destination module path segments")
	cmd.Flags().BoolVar(&opts.ToAbsolute, "to-absolute", false, "Treat the destination as an absolute path")
	_ = viper.BindPFlag("from", cmd.Flags().Lookup("from"))
	_ = viper.BindPFlag("to", cmd.Flags().Lookup("to"))
	_ = viper.BindPFlag("to_absolute", cmd.Flags().Lookup("to-absolute"))
	return cmd
}

func runRefPath(cmd *cobra.Command, opts refPathOptions) error {
	service, err := newAppService(nil)
	if err != nil {
		return err
	}
	result, err := service.ResolvePath(cmd.Context(), app.ResolvePathRequest{
		From:       resolveStrings(cmd, opts.From, "from", "from"),
		To:         resolveStrings(cmd, opts.To, "to", "to"),
		ToAbsolute: resolveBool(cmd, opts.ToAbsolute, "to_absolute", "to-absolute"),
	})
	if err != nil {
		return err
	}

	if len(result.Segments) == 0 {
		fmt.Println("(same module)")
		return nil
	}
	fmt.Printf("segments: %s\n", strings.Join(result.Segments, " "))
	fmt.Printf("rendered: %s\n", result.Rendered)
	return nil
}
