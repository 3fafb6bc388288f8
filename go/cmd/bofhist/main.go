package main

/*
This command-line tool counts the cluster assignments of
feature rows per image and writes one histogram per run of rows.
*/

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path"

	"github.com/jvlmdr/bof/go/bofhist"
	"github.com/jvlmdr/go-file/fileutil"
	log "github.com/sirupsen/logrus"
)

func init() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[flags] rows.csv hist.(csv|json|gob)")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "rows.csv must have a header.")
		fmt.Fprintln(os.Stderr, "Flags override the values in -config.")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Options:")
		flag.PrintDefaults()
	}
}

func main() {
	var (
		configFile  = flag.String("config", "", "Configuration (JSON)")
		column      = flag.String("column", "", "Column containing the codes")
		imageColumn = flag.String("image-column", "", "Column identifying the image")
		pattern     = flag.String("pattern", "", "Prefix preceding every code")
		numBins     = flag.Int("range", 0, "Number of bins")
	)
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}
	var (
		rowsFile = flag.Arg(0)
		histFile = flag.Arg(1)
	)

	var cfg bofhist.Config
	if *configFile != "" {
		if err := fileutil.LoadJSON(*configFile, &cfg); err != nil {
			log.Fatalln("load config:", err)
		}
	}
	// Only flags which were given override the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "column":
			cfg.Column = *column
		case "image-column":
			cfg.ImageColumn = *imageColumn
		case "pattern":
			cfg.Pattern = *pattern
		case "range":
			cfg.Range = *numBins
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalln("config:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	records, err := histogramFile(ctx, rowsFile, cfg)
	if err != nil {
		log.Fatalln("compute histograms:", err)
	}
	log.Printf("save %d histograms", len(records))
	if err := bofhist.SaveExt(histFile, records, cfg.Range); err != nil {
		log.Fatalln("save histograms:", err)
	}
}

func histogramFile(ctx context.Context, fname string, cfg bofhist.Config) ([]bofhist.Record, error) {
	file, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	r, err := newCSVReader(file, cfg.Column, cfg.ImageColumn)
	if err != nil {
		return nil, err
	}
	h, err := bofhist.New(cfg)
	if err != nil {
		return nil, err
	}
	h.Progress = func(runs, rows int) {
		log.WithFields(log.Fields{"runs": runs, "rows": rows}).Debug("run complete")
	}
	return h.Run(ctx, r)
}
