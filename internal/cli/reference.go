package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rust-protogen/internal/app"
)

type referenceOptions struct {
	Summaries []string
	TypeName  string
	File      string
	Module    []string
}

func newReferenceCommand() *cobra.Command {
	opts := referenceOptions{}
	cmd := &cobra.Command{
		Use:   "reference",
		Short: "Resolve the qualified Rust name of a schema type",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReference(cmd, opts)
		},
	}
	cmd.Flags().StringSliceVar(&opts.Summaries, "summary", nil, "Schema summary yaml files")
	cmd.Flags().StringVar(&opts.TypeName, "type", "", "Absolute protobuf type name")
	cmd.Flags().StringVar(&opts.File, "file", "", "File being compiled")
	cmd.Flags().StringSliceVar(&opts.Module, "module", nil, "Module position inside the compiled file")
	_ = viper.BindPFlag("summaries", cmd.Flags().Lookup("summary"))
	_ = viper.BindPFlag("type", cmd.Flags().Lookup("type"))
	_ = viper.BindPFlag("file", cmd.Flags().Lookup("file"))
	_ = viper.BindPFlag("module", cmd.Flags().Lookup("module"))
	return cmd
}

func runReference(cmd *cobra.Command, opts referenceOptions) error {
	service, err := newAppService(resolveStrings(cmd, opts.Summaries, "summaries", "summary"))
	if err != nil {
		return err
	}
	result, err := service.ReferenceType(cmd.Context(), app.ReferenceRequest{
		TypeName: resolveString(cmd, opts.TypeName, "type", "type"),
		File:     resolveString(cmd, opts.File, "file", "file"),
		Module:   resolveStrings(cmd, opts.Module, "module", "module"),
	})
	if err != nil {
		return err
	}

	fmt.Println(result.Reference)
	return nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	if cmd == nil {
		if len(values) > 0 {
			return values
		}
		return viper.GetStringSlice(key)
	}
	if flagChanged(cmd, flagName) {
		return values
	}
	return viper.GetStringSlice(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || name == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
