package main

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/b97tsk/beaconzone/zone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := _newRootCommand().Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func _newRootCommand() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "beaconzone [report]",
		Short: "Locate the distress beacon no sensor can see",
		Long: `beaconzone reads a sensor report, where every sensor lists the closest
beacon it detects, and prints how many positions on a row cannot contain a
beacon and the tuning frequency of the one position no sensor covers.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := _loadConfig(v)
			if err != nil {
				return err
			}

			name := _defaultReport
			if len(args) > 0 {
				name = args[0]
			}
			report, err := _loadReport(name, conf.Format, cmd.InOrStdin())
			if err != nil {
				return err
			}

			return _run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), conf, report)
		},
	}
	_bindFlags(cmd, v)
	return cmd
}

func _run(ctx context.Context, stdout, stderr io.Writer, conf _Config, report *_Report) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var opts []zone.Option
	progress := _newProgress(stderr, conf.Bound+1)
	if !conf.Quiet {
		opts = append(opts, zone.WithProgress(progress.Update))
	}
	scanner := zone.NewScanner(report.Regions(), opts...)

	fprintf(
		stdout,
		"There are %v positions that cannot contain a beacon on row %v\n",
		scanner.CountRow(conf.Row, report.Beacons()),
		conf.Row,
	)

	start := time.Now()

	var (
		beacon zone.Position
		err    error
	)
	if conf.Strict {
		beacon, err = scanner.FindGapStrict(conf.Bound)
	} else {
		beacon, err = scanner.FindGapContext(ctx, conf.Bound, conf.Workers)
	}
	progress.Clear()
	if err != nil {
		return err
	}

	if !conf.Quiet {
		log.New(stderr, "", log.LstdFlags).Printf(
			"found beacon at %v in %v\n",
			beacon,
			time.Since(start).Truncate(time.Millisecond),
		)
	}

	fprintf(
		stdout,
		"The tuning frequency of the beacon is %v\n",
		_tuningFrequency(beacon, conf.Multiplier),
	)
	return nil
}
