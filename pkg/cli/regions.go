package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vehiclefactory/vehiclefactory/pkg/factory"
)

// ErrUnknownOutputFormat is returned for unsupported --output values
var ErrUnknownOutputFormat = errors.New("unknown output format")

// RegionInfo describes one registered region
type RegionInfo struct {
	Code    string `yaml:"code"`
	Spec    string `yaml:"spec"`
	Default bool   `yaml:"default,omitempty"`
}

func (c *CLI) newRegionsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "regions",
		Short: "List supported regions and their specification strings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRegions(output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format (text, yaml)")
	return cmd
}

func listRegions() []RegionInfo {
	fallback := factory.DefaultRegion()
	regions := factory.Regions()

	infos := make([]RegionInfo, 0, len(regions))
	for _, region := range regions {
		infos = append(infos, RegionInfo{
			Code:    string(region),
			Spec:    factory.GetFactory(string(region)).RegionSpec(),
			Default: region == fallback,
		})
	}
	return infos
}

func (c *CLI) runRegions(output string) error {
	infos := listRegions()

	switch output {
	case "text":
		w := tabwriter.NewWriter(c.output, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "REGION\tSPEC\tDEFAULT")
		for _, info := range infos {
			def := ""
			if info.Default {
				def = "yes"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", info.Code, info.Spec, def)
		}
		return w.Flush()

	case "yaml":
		data, err := yaml.Marshal(infos)
		if err != nil {
			return fmt.Errorf("failed to encode regions: %w", err)
		}
		_, err = c.output.Write(data)
		return err

	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutputFormat, output)
	}
}
