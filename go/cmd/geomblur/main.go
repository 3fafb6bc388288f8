package main

/*
This command-line tool computes geometric blur descriptors
for lists of keypoints in a set of images.
The edge channels are obtained from a feature transform.
*/

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path"

	"github.com/jvlmdr/bof/go/geomblur"
	"github.com/jvlmdr/bof/go/scalespace"
	"github.com/jvlmdr/bof/go/vecset"
	"github.com/jvlmdr/go-cv/featset"
	"github.com/jvlmdr/go-file/fileutil"
	"github.com/nfnt/resize"
	log "github.com/sirupsen/logrus"
)

func init() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[flags] images.txt feat.json descriptors.(csv|json|gob)")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Each line of images.txt contains an image and its keypoint file.")
		fmt.Fprintln(os.Stderr, "Each line of a keypoint file contains x, y and optionally an octave.")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Options:")
		flag.PrintDefaults()
	}
}

func main() {
	var (
		dir      = flag.String("images-dir", "", "Directory to which paths in images.txt are relative.")
		minSigma = flag.Float64("min-sigma", 2, "Blur of the finest level")
		maxSigma = flag.Float64("max-sigma", 10, "Upper bound on the blur (not reached)")
		levels   = flag.Int("levels", 5, "Number of levels in the scale-space (at least 5)")
		strict   = flag.Bool("strict", false, "Abort if a channel cannot be blurred (otherwise zero-fill)")
		workers  = flag.Int("workers", 1, "Number of slices blurred concurrently")
		boundary = flag.String("boundary", "strict", "Samples outside the image: {strict, mirror}")
		width    = flag.Int("width", 0, "Resize images to this width before the transform (keypoints are in resized coordinates)")
		interp   = flag.Int("interp", 1, "Interpolation for resizing (0=nearest, 1=linear, 2=cubic)")
		verbose  = flag.Bool("v", false, "Debug logging")
	)
	flag.Parse()
	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(1)
	}
	var (
		imsFile  = flag.Arg(0)
		featFile = flag.Arg(1)
		descFile = flag.Arg(2)
	)
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	mode, err := geomblur.ParseBoundary(*boundary)
	if err != nil {
		log.Fatalln("parse boundary:", err)
	}
	opts := geomblur.Options{
		Pyramid: scalespace.Options{
			MinSigma:  *minSigma,
			MaxSigma:  *maxSigma,
			NumLevels: *levels,
			Strict:    *strict,
			Workers:   *workers,
		},
		Boundary: mode,
	}

	phi := new(featset.ImageMarshaler)
	if err := fileutil.LoadJSON(featFile, phi); err != nil {
		log.Fatalln("load feature:", err)
	}
	lines, err := fileutil.LoadLines(imsFile)
	if err != nil {
		log.Fatalln("load image list:", err)
	}
	ims, err := parseImageList(lines, *dir)
	if err != nil {
		log.Fatalln("parse image list:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ext := &extractor{
		Phi:    phi,
		Opts:   opts,
		Width:  *width,
		Interp: resize.InterpolationFunction(*interp),
	}
	descs, err := ext.All(ctx, ims)
	if err != nil {
		log.Fatalln("compute descriptors:", err)
	}
	log.Printf("save %d descriptors", len(descs))
	if err := saveExt(descFile, descs); err != nil {
		log.Fatalln("save descriptors:", err)
	}
}

// Descriptor is the output for one keypoint.
type Descriptor struct {
	Image    string
	Keypoint geomblur.Keypoint
	Values   []float64
}

func saveExt(fname string, descs []Descriptor) error {
	switch path.Ext(fname) {
	case ".csv":
		return saveCSV(fname, descs)
	default:
		return fileutil.SaveExt(fname, descs)
	}
}

func saveCSV(fname string, descs []Descriptor) error {
	file, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer file.Close()
	set := make(vecset.Slice, len(descs))
	labels := make([]string, len(descs))
	for i, d := range descs {
		set[i] = d.Values
		labels[i] = d.Image
	}
	header := append(geomblur.Header(), "image")
	return vecset.EncodeCSV(file, header, set, labels)
}
