package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rust-protogen/internal/app"
	"rust-protogen/internal/types"
)

type describeOptions struct {
	Kind    string
	Wrapper string
	Bytes   string
}

func newDescribeCommand() *cobra.Command {
	opts := describeOptions{}
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Describe the Rust mapping of a primitive field kind",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDescribe(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Kind, "kind", "", "Protobuf field kind (int32, string, ...)")
	cmd.Flags().StringVar(&opts.Wrapper, "wrapper", "plain", "Wrapper kind (plain, option, singular, singular-ptr, vec, repeated)")
	cmd.Flags().StringVar(&opts.Bytes, "bytes-mode", "default", "Buffer representation (default, shared)")
	_ = viper.BindPFlag("kind", cmd.Flags().Lookup("kind"))
	_ = viper.BindPFlag("wrapper", cmd.Flags().Lookup("wrapper"))
	_ = viper.BindPFlag("bytes_mode", cmd.Flags().Lookup("bytes-mode"))
	return cmd
}

func runDescribe(cmd *cobra.Command, opts describeOptions) error {
	service, err := newAppService(nil)
	if err != nil {
		return err
	}
	result, err := service.DescribeField(cmd.Context(), app.DescribeFieldRequest{
		Kind:    types.FieldKind(resolveString(cmd, opts.Kind, "kind", "kind")),
		Wrapper: types.WrapperKind(resolveString(cmd, opts.Wrapper, "wrapper", "wrapper")),
		Bytes:   types.BytesMode(resolveString(cmd, opts.Bytes, "bytes_mode", "bytes-mode")),
	})
	if err != nil {
		return err
	}

	fmt.Printf("rust type: %s\n", result.RustType)
	fmt.Printf("default:   %s\n", result.DefaultValue)
	fmt.Printf("clear:     %s\n", result.ClearExpr)
	fmt.Printf("codec:     %s\n", result.CodecType)
	return nil
}
