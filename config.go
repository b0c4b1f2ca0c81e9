package main

import (
	"github.com/b97tsk/beaconzone/zone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	_defaultReport     = "input.txt"
	_defaultRow        = 2_000_000
	_defaultBound      = 4_000_000
	_defaultMultiplier = 4_000_000
	_configName        = "beaconzone"
	_envPrefix         = "beaconzone"
)

type _Config struct {
	Row        int64
	Bound      int64
	Multiplier int64
	Workers    int
	Strict     bool
	Format     string
	Quiet      bool
}

func _bindFlags(cmd *cobra.Command, v *viper.Viper) {
	f := cmd.Flags()
	f.Int64("row", _defaultRow, "row on which to count positions that cannot contain a beacon")
	f.Int64("bound", _defaultBound, "search the beacon in [0,bound]x[0,bound]")
	f.Int64("multiplier", _defaultMultiplier, "x multiplier of the tuning frequency")
	f.Int("workers", 0, "number of parallel row scanners (0 means one per CPU)")
	f.Bool("strict", false, "scan the whole square and fail unless exactly one position is uncovered")
	f.String("format", "", "report format, text or yaml (default by file extension)")
	f.Bool("quiet", false, "do not show scan progress")
	f.String("config", "", "config file (default ./beaconzone.yaml if present)")

	v.BindPFlags(f)
	v.SetEnvPrefix(_envPrefix)
	v.AutomaticEnv()
}

func _loadConfig(v *viper.Viper) (conf _Config, err error) {
	if name := v.GetString("config"); name != "" {
		v.SetConfigFile(name)
		if err = v.ReadInConfig(); err != nil {
			return
		}
	} else {
		v.SetConfigName(_configName)
		v.AddConfigPath(".")
		if err = v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return
			}
			err = nil
		}
	}

	conf = _Config{
		Row:        v.GetInt64("row"),
		Bound:      v.GetInt64("bound"),
		Multiplier: v.GetInt64("multiplier"),
		Workers:    v.GetInt("workers"),
		Strict:     v.GetBool("strict"),
		Format:     v.GetString("format"),
		Quiet:      v.GetBool("quiet"),
	}

	switch {
	case conf.Bound < 0:
		err = errorf("bound %v: %w", conf.Bound, zone.ErrInvalidArgument)
	case conf.Multiplier <= 0:
		err = errorf("multiplier %v: %w", conf.Multiplier, zone.ErrInvalidArgument)
	case conf.Workers < 0:
		err = errorf("workers %v: %w", conf.Workers, zone.ErrInvalidArgument)
	case conf.Format != "" && conf.Format != _formatText && conf.Format != _formatYAML:
		err = errorf("format %q: %w", conf.Format, zone.ErrInvalidArgument)
	}
	return
}
