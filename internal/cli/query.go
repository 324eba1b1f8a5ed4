package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lagersmit/aishub-api-public/pkg/aishub"
)

func newVesselCmd(opts *options) *cobra.Command {
	var mmsi, imo int

	cmd := &cobra.Command{
		Use:   "vessel",
		Short: "Retrieve a single vessel by MMSI or IMO",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd, opts, func(c *aishub.Client) (*aishub.Response, error) {
				return c.GetVessel(cmd.Context(), aishub.VesselQuery{MMSI: mmsi, IMO: imo})
			})
		},
	}

	cmd.Flags().IntVar(&mmsi, "mmsi", 0, "vessel MMSI")
	cmd.Flags().IntVar(&imo, "imo", 0, "vessel IMO")

	return cmd
}

func newAreaCmd(opts *options) *cobra.Command {
	area := aishub.DefaultArea()

	cmd := &cobra.Command{
		Use:   "area",
		Short: "Retrieve every vessel inside a bounding box",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd, opts, func(c *aishub.Client) (*aishub.Response, error) {
				return c.GetVesselsInArea(cmd.Context(), area)
			})
		},
	}

	cmd.Flags().Float64Var(&area.LatMin, "latmin", area.LatMin, "minimum latitude")
	cmd.Flags().Float64Var(&area.LatMax, "latmax", area.LatMax, "maximum latitude")
	cmd.Flags().Float64Var(&area.LonMin, "lonmin", area.LonMin, "minimum longitude")
	cmd.Flags().Float64Var(&area.LonMax, "lonmax", area.LonMax, "maximum longitude")

	return cmd
}

func newAllCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Retrieve every vessel visible to the account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd, opts, func(c *aishub.Client) (*aishub.Response, error) {
				return c.GetAllVessels(cmd.Context())
			})
		},
	}
}

// runQuery builds the client from the resolved configuration, performs the
// call and prints each record as one JSON line. A provider-side rejection
// is reported as a command error so the process exits nonzero.
func runQuery(cmd *cobra.Command, opts *options, call func(*aishub.Client) (*aishub.Response, error)) error {
	cfg, endpoint, err := opts.resolve(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(opts.debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	client, err := aishub.NewClient(cfg,
		aishub.WithLogger(logger),
		aishub.WithFetcher(aishub.NewHTTPFetcher(endpoint, aishub.WithFetcherLogger(logger))),
	)
	if err != nil {
		return reportError(cmd, err)
	}

	response, err := call(client)
	if err != nil {
		return reportError(cmd, err)
	}

	if response.Header.HasError {
		return fmt.Errorf("provider rejected the request: %s", response.Header.ErrorMessage)
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	for _, record := range response.Records {
		if err := encoder.Encode(record); err != nil {
			return err
		}
	}

	logger.Debug("query finished",
		zap.Int("records", len(response.Records)),
		zap.String("username", response.Header.Username),
	)

	return nil
}

// reportError prefixes validation failures with their offending fields so
// the message is actionable without --debug.
func reportError(cmd *cobra.Command, err error) error {
	var valErr *aishub.ValidationError
	if errors.As(err, &valErr) && len(valErr.Fields) > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "invalid input fields: %v\n", valErr.Fields)
	}
	return err
}

func newLogger(debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
