package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vehiclefactory/vehiclefactory/pkg/factory"
	"github.com/vehiclefactory/vehiclefactory/pkg/logger"
	"github.com/vehiclefactory/vehiclefactory/pkg/types"
)

type buildOptions struct {
	region string
	kind   string
	make   string
	model  string
}

func (c *CLI) newBuildCmd() *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build one vehicle and start its engine",
		Example: `  vehiclefactory build --region us --kind motorcycle --make Harley-Davidson --model Sportster
  vehiclefactory build --region AU --make Hyundai --model Elantra`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuild(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.region, "region", "r", string(types.DefaultRegion), "market region (US, EU, JP)")
	flags.StringVarP(&opts.kind, "kind", "k", string(types.VehicleKindCar), "vehicle kind (car, motorcycle)")
	flags.StringVar(&opts.make, "make", "", "vehicle make")
	flags.StringVar(&opts.model, "model", "", "vehicle model")

	return cmd
}

func (c *CLI) runBuild(opts *buildOptions) error {
	kind, err := types.ParseVehicleKind(opts.kind)
	if err != nil {
		return fmt.Errorf("invalid --kind: %w", err)
	}

	f := factory.GetFactory(opts.region)
	v := factory.Build(f, kind, opts.make, opts.model)

	c.logger.WithTarget(string(f.Region())).Debug("built vehicle",
		logger.WithField("kind", v.Kind()),
		logger.WithField("make", v.Make()),
		logger.WithField("model", v.Model()),
	)

	v.StartEngine(c.logger)
	return nil
}
