package main

import (
	"context"
	"encoding/json"
	"fmt"
	"jyotish-service/internal/adapters/geocode"
	"jyotish-service/internal/adapters/random"
	"jyotish-service/internal/adapters/zones"
	"jyotish-service/internal/config"
	"jyotish-service/internal/domain"
	"jyotish-service/internal/render"
	"jyotish-service/internal/services"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

type chartOptions struct {
	date  string
	clock string
	zone  string
	lat   float64
	lon   float64
	place string
	seed  uint64
	json  bool
}

func newChartCmd(root *rootOptions) *cobra.Command {
	opts := &chartOptions{}

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Cast a birth chart and print its reading",
		Example: `  jyotish chart --date 1990-05-17 --time 18:45 --tz Asia/Kolkata --lat 12.9716 --lon 77.5946
  jyotish chart --date 2000-01-01 --time 12:00 --tz UTC --place "Greenwich, London" --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChart(cmd, root, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.date, "date", "", "birth date, YYYY-MM-DD")
	f.StringVar(&opts.clock, "time", "", "local birth time, HH:MM (24h)")
	f.StringVar(&opts.zone, "tz", "UTC", "IANA time zone of the birth place")
	f.Float64Var(&opts.lat, "lat", 0, "latitude in degrees, north positive")
	f.Float64Var(&opts.lon, "lon", 0, "longitude in degrees, east positive")
	f.StringVar(&opts.place, "place", "", "place name to geocode instead of --lat/--lon (needs ORS_API_KEY)")
	f.Uint64Var(&opts.seed, "seed", 0, "seed for the phrase choice; 0 picks one at random")
	f.BoolVar(&opts.json, "json", false, "print the chart and reading as JSON")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("time")
	cmd.MarkFlagsMutuallyExclusive("place", "lat")
	cmd.MarkFlagsMutuallyExclusive("place", "lon")

	return cmd
}

func runChart(cmd *cobra.Command, root *rootOptions, opts *chartOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cat, err := root.catalog()
	if err != nil {
		return err
	}

	coords := domain.Coordinates{Lat: opts.lat, Lon: opts.lon}
	if strings.TrimSpace(opts.place) != "" {
		coords, err = lookupPlace(ctx, opts.place)
		if err != nil {
			return err
		}
	}

	birth, err := domain.ParseBirthData(opts.date, opts.clock, opts.zone, coords.Lat, coords.Lon)
	if err != nil {
		return err
	}

	chart, err := services.CastChart(ctx, birth, zones.NewIANAResolver(), nil)
	if err != nil {
		return err
	}

	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	reading := services.Describe(*chart, cat, random.NewPicker(seed))

	out := cmd.OutOrStdout()
	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(reading)
	}

	md, err := root.render(render.Snapshot(reading))
	if err != nil {
		return err
	}

	if root.plain {
		fmt.Fprint(out, md)
		return nil
	}

	fmt.Fprintln(out, titleStyle.Render("Birth chart"))
	fmt.Fprintln(out, subtleStyle.Render(fmt.Sprintf("%s %s %s at %s (UTC %s)",
		birth.DateString(), birth.ClockString(), birth.Zone, birth.Coordinates,
		chart.UTC.Format("2006-01-02 15:04"))))
	fmt.Fprint(out, md)
	return nil
}

func lookupPlace(ctx context.Context, place string) (domain.Coordinates, error) {
	key := config.Get("ORS_API_KEY", "")
	if key == "" {
		return domain.Coordinates{}, fmt.Errorf("--place needs ORS_API_KEY; pass --lat and --lon instead")
	}

	g, err := geocode.NewORSGeocoder(key, nil)
	if err != nil {
		return domain.Coordinates{}, err
	}
	return services.ResolvePlace(ctx, g, place)
}
