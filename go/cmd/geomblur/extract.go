package main

import (
	"context"
	"time"

	"github.com/jvlmdr/bof/go/geomblur"
	"github.com/jvlmdr/bof/go/vecset"
	"github.com/jvlmdr/go-cv/feat"
	"github.com/nfnt/resize"
	log "github.com/sirupsen/logrus"
)

type extractor struct {
	Phi  feat.Image
	Opts geomblur.Options
	// Resize to this width if positive.
	Width  int
	Interp resize.InterpolationFunction
}

// All computes the descriptors of every image in order.
func (e *extractor) All(ctx context.Context, ims []imageEntry) ([]Descriptor, error) {
	union := new(vecset.Union)
	var out []Descriptor
	for i, im := range ims {
		log.Printf("image %d of %d: %s", i+1, len(ims), im.Image)
		keypoints, err := loadKeypoints(im.Keypoints)
		if err != nil {
			return nil, err
		}
		descs, err := e.Image(ctx, im.Image, keypoints)
		if err != nil {
			return nil, err
		}
		union.Append(vecset.Slice(descs))
		for _, k := range keypoints {
			out = append(out, Descriptor{Image: im.Image, Keypoint: k})
		}
	}
	for i := range out {
		out[i].Values = union.At(i)
	}
	return out, nil
}

// Image computes the descriptors of one image.
func (e *extractor) Image(ctx context.Context, file string, keypoints []geomblur.Keypoint) ([][]float64, error) {
	t := time.Now()
	im, err := loadImage(file)
	if err != nil {
		return nil, err
	}
	durLoad := time.Since(t)
	if e.Width > 0 {
		im = resize.Resize(uint(e.Width), 0, im, e.Interp)
	}
	t = time.Now()
	f, err := e.Phi.Apply(im)
	if err != nil {
		return nil, err
	}
	durFeat := time.Since(t)
	log.Debugf("feature image: %d x %d x %d", f.Width, f.Height, f.Channels)
	t = time.Now()
	descs, err := geomblur.Describe(ctx, f, keypoints, e.Opts)
	if err != nil {
		return nil, err
	}
	durDesc := time.Since(t)
	log.WithFields(log.Fields{
		"keypoints": len(keypoints),
	}).Printf("load %.3gms, feat %.3gms, desc %.3gms",
		durLoad.Seconds()*1000, durFeat.Seconds()*1000, durDesc.Seconds()*1000,
	)
	return descs, nil
}
