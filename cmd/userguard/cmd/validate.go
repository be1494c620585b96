package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shandysiswandi/userguard/internal/pkg/payload"
	"github.com/shandysiswandi/userguard/internal/uservalidation/entity"
	"github.com/shandysiswandi/userguard/internal/uservalidation/rule"
	"github.com/spf13/cobra"
)

// ErrViolation is returned when the request breaks a rule. The violation has
// already been printed.
var ErrViolation = errors.New("request is not valid")

type validateOptions struct {
	operation   string
	file        string
	countryCode string
}

func newValidateCommand(root *rootOptions) *cobra.Command {
	opts := &validateOptions{}

	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate a JSON request offline",
		Long: `Reads a JSON request from --file or stdin and runs the pipeline of the
given operation. The document may be the bare request object or the API
envelope {"request": {...}}.

Examples:
  userguard validate --operation createUser --file user.json
  echo '{"loginId":"amit"}' | userguard validate --operation verifyUser`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if err := opts.resolveCountryCode(c, root); err != nil {
				return err
			}
			return runValidate(c, opts)
		},
	}

	c.Flags().StringVarP(&opts.operation, "operation", "o", "", "operation name, see `userguard operations`")
	c.Flags().StringVarP(&opts.file, "file", "f", "", "JSON file to read instead of stdin")
	c.Flags().StringVar(&opts.countryCode, "country-code", rule.DefaultCountryCode,
		"country code used when the request has none (default: validation.default_country_code when --config is set)")
	//nolint:errcheck // flag exists
	c.MarkFlagRequired("operation")

	return c
}

// resolveCountryCode lets an explicit --country-code win, then the config
// given with --config, then the built-in default. Without --config no file is
// read so the command stays usable offline.
func (o *validateOptions) resolveCountryCode(c *cobra.Command, root *rootOptions) error {
	if c.Flags().Changed("country-code") || root.configPath == "" {
		return nil
	}

	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	defer cfg.Close()

	if cc := strings.TrimSpace(cfg.GetString("validation.default_country_code")); cc != "" {
		o.countryCode = cc
	}
	return nil
}

func runValidate(c *cobra.Command, opts *validateOptions) error {
	op, ok := entity.OperationFromString(opts.operation)
	if !ok {
		return fmt.Errorf("unknown operation %q", opts.operation)
	}

	data, err := readInput(c.InOrStdin(), opts.file)
	if err != nil {
		return err
	}

	req, err := decodeRequest(data)
	if err != nil {
		return err
	}

	v, err := rule.New(rule.Config{DefaultCountryCode: opts.countryCode})
	if err != nil {
		return err
	}

	err = v.Validate(op, req)
	if err == nil {
		fmt.Fprintln(c.OutOrStdout(), "valid")
		return nil
	}

	var violation *entity.Violation
	if !errors.As(err, &violation) {
		return err
	}

	enc := json.NewEncoder(c.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(violation); err != nil {
		return err
	}
	return ErrViolation
}

func readInput(stdin io.Reader, file string) ([]byte, error) {
	if file == "" || file == "-" {
		return io.ReadAll(stdin)
	}
	// #nosec G304 -- path is given by the operator.
	return os.ReadFile(file)
}

// decodeRequest accepts either the request object or the API envelope.
func decodeRequest(data []byte) (payload.Object, error) {
	obj, err := payload.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON request: %w", err)
	}

	if inner, ok := obj.Get("request").AsObject(); ok {
		return inner, nil
	}
	return obj, nil
}
