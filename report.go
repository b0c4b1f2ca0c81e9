package main

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/b97tsk/beaconzone/zone"
	"gopkg.in/yaml.v3"
)

const (
	_formatText = "text"
	_formatYAML = "yaml"
)

var _sensorLine = regexp.MustCompile(
	`^Sensor at x=(-?\d+), y=(-?\d+): closest beacon is at x=(-?\d+), y=(-?\d+)$`,
)

type _Sensor struct {
	At     zone.Position `yaml:"at"`
	Beacon zone.Position `yaml:"beacon"`
}

type _Report struct {
	Sensors []_Sensor `yaml:"sensors"`
}

func (r *_Report) Regions() []zone.Region {
	regions := make([]zone.Region, len(r.Sensors))
	for i, s := range r.Sensors {
		regions[i] = zone.NewRegion(s.At, s.Beacon)
	}
	return regions
}

func (r *_Report) Beacons() []zone.Position {
	beacons := make([]zone.Position, len(r.Sensors))
	for i, s := range r.Sensors {
		beacons[i] = s.Beacon
	}
	return beacons
}

// _loadReport reads the report in name, or stdin if name is "-".
// An empty format is guessed from the file extension.
func _loadReport(name, format string, stdin io.Reader) (*_Report, error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(name)) {
		case ".yaml", ".yml":
			format = _formatYAML
		default:
			format = _formatText
		}
	}

	r := stdin
	if name != "-" {
		file, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		r = file
	}

	switch format {
	case _formatText:
		return _parseReport(r)
	case _formatYAML:
		return _parseYAMLReport(r)
	default:
		return nil, errorf("unknown report format %q", format)
	}
}

func _parseReport(r io.Reader) (*_Report, error) {
	var report _Report
	s := bufio.NewScanner(r)
	for n := 1; s.Scan(); n++ {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}

		m := _sensorLine.FindStringSubmatch(line)
		if m == nil {
			return nil, errorf("line %v: unrecognized sensor: %q", n, line)
		}

		var v [4]int64
		for i := range v {
			n64, err := strconv.ParseInt(m[i+1], 10, 64)
			if err != nil {
				return nil, errorf("line %v: %w", n, err)
			}
			v[i] = n64
		}

		report.Sensors = append(report.Sensors, _Sensor{
			At:     zone.Position{X: v[0], Y: v[1]},
			Beacon: zone.Position{X: v[2], Y: v[3]},
		})
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return &report, nil
}

func _parseYAMLReport(r io.Reader) (*_Report, error) {
	var report _Report
	err := yaml.NewDecoder(r).Decode(&report)
	if err != nil && err != io.EOF {
		return nil, err
	}
	return &report, nil
}

// _tuningFrequency encodes a beacon position as a single number.
func _tuningFrequency(p zone.Position, multiplier int64) int64 {
	return p.X*multiplier + p.Y
}
