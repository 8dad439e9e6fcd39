package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/oliverbestmann/angle"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConvertCommand(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "convert <angle>...",
		Aliases: []string{"c"},
		Short:   "Print angles in another style",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.settings()
			if err != nil {
				return err
			}

			for _, arg := range args {
				value, err := a.parseAngle(arg)
				if err != nil {
					return err
				}

				if all {
					if err := writeAllStyles(cmd, value, s.Decimals); err != nil {
						return err
					}

					continue
				}

				formatted, err := value.Format(s.Style, s.Decimals)
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), formatted)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "print the angle in all styles as yaml")

	return cmd
}

func writeAllStyles(cmd *cobra.Command, value angle.Angle, decimals int) error {
	styles := map[string]string{}

	for _, style := range angle.Styles() {
		formatted, err := value.Format(style, decimals)
		if err != nil {
			return err
		}

		styles[string(style)] = formatted
	}

	return writeYAML(cmd, styles)
}

func newWrapCommand(a *app) *cobra.Command {
	var signed bool

	cmd := &cobra.Command{
		Use:   "wrap <angle>...",
		Short: "Reduce angles into [0, 360°) or [-180°, 180°)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.settings()
			if err != nil {
				return err
			}

			for _, arg := range args {
				value, err := a.parseAngle(arg)
				if err != nil {
					return err
				}

				formatted, err := value.Wrap(signed).Format(s.Style, s.Decimals)
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), formatted)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&signed, "signed", false, "wrap into the signed range")

	return cmd
}

func newCompareCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Compare two angles on the circle, prints -1, 0 or 1",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.settings()
			if err != nil {
				return err
			}

			lhs, err := a.parseAngle(args[0])
			if err != nil {
				return err
			}

			rhs, err := a.parseAngle(args[1])
			if err != nil {
				return err
			}

			cmp, err := lhs.Compare(rhs, s.Epsilon.Radians())
			if err != nil {
				return fmt.Errorf("compare: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cmp)
			return nil
		},
	}
}

type trigValues struct {
	Sin  float64 `yaml:"sin"`
	Cos  float64 `yaml:"cos"`
	Tan  float64 `yaml:"tan"`
	Csc  float64 `yaml:"csc"`
	Sec  float64 `yaml:"sec"`
	Cot  float64 `yaml:"cot"`
	Sinh float64 `yaml:"sinh"`
	Cosh float64 `yaml:"cosh"`
	Tanh float64 `yaml:"tanh"`
	Csch float64 `yaml:"csch"`
	Sech float64 `yaml:"sech"`
	Coth float64 `yaml:"coth"`
}

func newTrigCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "trig <angle>",
		Short: "Evaluate the trigonometric and hyperbolic functions of an angle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := a.parseAngle(args[0])
			if err != nil {
				return err
			}

			return writeYAML(cmd, trigValues{
				Sin:  value.Sin(),
				Cos:  value.Cos(),
				Tan:  value.Tan(),
				Csc:  value.Csc(),
				Sec:  value.Sec(),
				Cot:  value.Cot(),
				Sinh: value.Sinh(),
				Cosh: value.Cosh(),
				Tanh: value.Tanh(),
				Csch: value.Csch(),
				Sech: value.Sech(),
				Coth: value.Coth(),
			})
		},
	}
}

func newDMSCommand(a *app) *cobra.Command {
	var unit int

	cmd := &cobra.Command{
		Use:   "dms <angle>",
		Short: "Split an angle into degrees, minutes and seconds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.settings()
			if err != nil {
				return err
			}

			value, err := a.parseAngle(args[0])
			if err != nil {
				return err
			}

			parts, err := value.ToDMS(angle.DMSUnit(unit), s.Decimals)
			if err != nil {
				return err
			}

			fields := make([]string, len(parts))
			for idx, part := range parts {
				fields[idx] = strconv.FormatFloat(part, 'f', -1, 64)
			}

			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(fields, " "))
			return nil
		},
	}

	cmd.Flags().IntVar(&unit, "unit", int(angle.DMSSeconds), "smallest unit (0 = degrees, 1 = minutes, 2 = seconds)")

	return cmd
}

func writeYAML(cmd *cobra.Command, value any) error {
	encoded, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(encoded)
	return err
}
