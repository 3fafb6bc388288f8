/*
Package geomblur computes geometric blur descriptors of keypoints in an edge-channel image.

A descriptor concatenates, for each of the first four channels,
the center pixel at the finest level of a Gaussian scale-space
followed by 12 samples on each of four rings of radius 5, 10, 15 and 20.
Ring r is read from level r, so samples further from the keypoint are more blurred.

To compute descriptors directly from an image:
	descs, err := geomblur.Describe(ctx, f, keypoints, geomblur.DefaultOptions())

or, to re-use a scale-space:
	pyr, err := scalespace.Build(ctx, f, scalespace.DefaultOptions())
	if err != nil {
		return err
	}
	descs, err := geomblur.Sample(pyr, keypoints, geomblur.BoundaryStrict)
*/
package geomblur
