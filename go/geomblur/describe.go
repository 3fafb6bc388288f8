package geomblur

import (
	"context"

	"github.com/jvlmdr/bof/go/scalespace"
	"github.com/jvlmdr/go-cv/rimg64"
	"github.com/pkg/errors"
)

// Options configures Describe.
type Options struct {
	Pyramid  scalespace.Options
	Boundary Boundary
}

// DefaultOptions uses sigmas 2, 3.6, 5.2, 6.8 and 8.4 and rejects samples outside the image.
func DefaultOptions() Options {
	return Options{Pyramid: scalespace.DefaultOptions(), Boundary: BoundaryStrict}
}

// Describe builds the scale-space of f and samples a descriptor for every keypoint.
// The number of channels and levels is checked before any blurring is done.
func Describe(ctx context.Context, f *rimg64.Multi, keypoints []Keypoint, opts Options) ([][]float64, error) {
	if f == nil {
		return nil, errors.Wrap(ErrPrecondition, "nil image")
	}
	if f.Channels < NumChannels {
		return nil, errors.Wrapf(ErrPrecondition, "need %d channels: found %d", NumChannels, f.Channels)
	}
	if opts.Pyramid.NumLevels < MinLevels {
		return nil, errors.Wrapf(ErrPrecondition, "need %d levels: found %d", MinLevels, opts.Pyramid.NumLevels)
	}
	for i, k := range keypoints {
		if err := checkKeypoint(f.Width, f.Height, k, opts.Boundary); err != nil {
			return nil, errors.Wrapf(err, "keypoint %d", i)
		}
	}
	pyr, err := scalespace.Build(ctx, f, opts.Pyramid)
	if err != nil {
		return nil, err
	}
	return Sample(pyr, keypoints, opts.Boundary)
}
