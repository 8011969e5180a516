// Command flightcalc prints the flight parameters for one departure,
// arrival and aircraft type.
//
//	flightcalc -dep ULLI -arr UUEE -aircraft B738 -save .
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/labstack/gommon/log"

	fp "github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan"
	"github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan/report"
	"github.com/onesch/Flight-Data-Calculation-opensource/internal/flightplan/usecase"
	"github.com/onesch/Flight-Data-Calculation-opensource/internal/pkg/pkgconfig"
)

type options struct {
	departure  string
	arrival    string
	aircraft   string
	saveDir    string
	dump       bool
	configPath string
	airports   string
	timeout    time.Duration
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("flightcalc", flag.ContinueOnError)
	fs.StringVar(&opts.departure, "dep", "", "departure airport ICAO code")
	fs.StringVar(&opts.arrival, "arr", "", "arrival airport ICAO code")
	fs.StringVar(&opts.aircraft, "aircraft", "", "aircraft ICAO type code, e.g. B738")
	fs.StringVar(&opts.saveDir, "save", "", "directory to write the JSON report into")
	fs.BoolVar(&opts.dump, "dump", false, "dump the raw calculation")
	fs.StringVar(&opts.configPath, "config", "", "optional config file")
	fs.StringVar(&opts.airports, "airports", "", "JSON airport table used instead of CheckWX")
	fs.DurationVar(&opts.timeout, "timeout", 30*time.Second, "overall timeout")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.departure == "" || opts.arrival == "" || opts.aircraft == "" {
		fs.Usage()
		return options{}, flag.ErrHelp
	}
	return opts, nil
}

func loadConfig(opts options) (pkgconfig.Config, error) {
	if opts.configPath != "" {
		cfg, err := pkgconfig.NewViper(opts.configPath)
		if err != nil {
			return nil, err
		}
		if opts.airports != "" {
			cfg.Set("modules.flight-plan.airports.file", opts.airports)
		}
		return cfg, nil
	}
	return pkgconfig.NewViperDefaults(map[string]any{
		"modules.flight-plan.checkwx.base_url":       "https://api.checkwx.com",
		"modules.flight-plan.checkwx.api_key":        os.Getenv("CHECK_WX_API"),
		"modules.flight-plan.airports.file":          opts.airports,
		"modules.flight-plan.provider.rate_limit_ms": 100,
		"modules.flight-plan.provider.max_retries":   2,
	}), nil
}

func run(ctx context.Context, opts options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	defer cfg.Close()

	uc, err := fp.NewUsecase(cfg)
	if err != nil {
		return err
	}

	out, err := uc.Plan(ctx, usecase.PlanInput{
		Departure: opts.departure,
		Arrival:   opts.arrival,
		Aircraft:  opts.aircraft,
	})
	if err != nil {
		return err
	}

	if err := report.Print(os.Stdout, out.Plan); err != nil {
		return err
	}
	if opts.dump {
		spew.Dump(out.Plan.Calculation)
	}
	if opts.saveDir != "" {
		path, err := report.Save(opts.saveDir, out.Plan)
		if err != nil {
			return err
		}
		log.Printf("report saved to %s", path)
	}
	return nil
}

func main() {
	log.SetHeader("${time_rfc3339} ${level}")

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	if err := run(ctx, opts); err != nil {
		log.Fatal(err)
	}
}
