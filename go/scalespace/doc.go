/*
Package scalespace builds a linear Gaussian scale-space from a multi-channel image.

Every level is obtained by blurring the original image, not the previous level:
	pyr, err := scalespace.Build(ctx, f, scalespace.Options{
		MinSigma:  2,
		MaxSigma:  10,
		NumLevels: 5,
	})
	if err != nil {
		return err
	}
	x := pyr.At(u, v, p, l)

The sigma of level l is MinSigma + l*(MaxSigma-MinSigma)/NumLevels,
therefore the last level does not reach MaxSigma.
Image borders are extended by mirroring without repeating the edge pixel.
*/
package scalespace
