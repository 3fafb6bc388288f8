package scalespace

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/jvlmdr/go-cv/rimg64"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Options configures Build.
type Options struct {
	MinSigma  float64
	MaxSigma  float64
	NumLevels int
	// Strict makes a failed slice abort the build.
	// Otherwise the slice is logged, left zero and recorded in Pyramid.Failures.
	Strict bool
	// Workers is the number of slices blurred concurrently.
	// Zero or one means sequential.
	Workers int
	// Logger defaults to the logrus standard logger.
	Logger logrus.FieldLogger
}

// DefaultOptions returns the parameters of the geometric blur descriptor.
func DefaultOptions() Options {
	return Options{MinSigma: 2, MaxSigma: 10, NumLevels: 5}
}

// Step returns the sigma increment between consecutive levels.
func (opts Options) Step() float64 {
	return (opts.MaxSigma - opts.MinSigma) / float64(opts.NumLevels)
}

// Sigmas returns the blur of every level.
func (opts Options) Sigmas() []float64 {
	step := opts.Step()
	s := make([]float64, opts.NumLevels)
	for l := range s {
		s[l] = opts.MinSigma + float64(l)*step
	}
	return s
}

// Validate checks that the options describe at least one level
// with finite, non-negative sigmas.
func (opts Options) Validate() error {
	if opts.NumLevels < 1 {
		return errors.Wrapf(ErrPrecondition, "number of levels must be positive: %d", opts.NumLevels)
	}
	if math.IsNaN(opts.MinSigma) || math.IsInf(opts.MinSigma, 0) {
		return errors.Wrapf(ErrPrecondition, "min sigma not finite: %g", opts.MinSigma)
	}
	if math.IsNaN(opts.MaxSigma) || math.IsInf(opts.MaxSigma, 0) {
		return errors.Wrapf(ErrPrecondition, "max sigma not finite: %g", opts.MaxSigma)
	}
	for l, s := range opts.Sigmas() {
		if s < 0 {
			return errors.Wrapf(ErrPrecondition, "negative sigma at level %d: %g", l, s)
		}
	}
	return nil
}

func (opts Options) logger() logrus.FieldLogger {
	if opts.Logger == nil {
		return logrus.StandardLogger()
	}
	return opts.Logger
}

// Build blurs every channel of f at every level.
//
// Returns an error wrapping ErrPrecondition if f is empty or the options are invalid,
// and the context's error if it is cancelled between two slices.
// In strict mode, a slice with a non-finite result returns an error wrapping ErrSliceFailure.
func Build(ctx context.Context, f *rimg64.Multi, opts Options) (*Pyramid, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if f == nil || f.Width < 1 || f.Height < 1 || f.Channels < 1 {
		return nil, errors.Wrapf(ErrPrecondition, "empty image: %s", sizeStr(f))
	}

	sigmas := opts.Sigmas()
	pyr := newPyramid(f.Width, f.Height, f.Channels, sigmas)
	kernels := make([][]float64, len(sigmas))
	for l, s := range sigmas {
		kernels[l] = HalfKernel(s)
	}
	// Every level reads the same source slices.
	src := make([][]float64, f.Channels)
	for p := range src {
		src[p] = channel(f, p)
	}

	b := &builder{pyr: pyr, src: src, kernels: kernels, opts: opts, log: opts.logger()}
	var err error
	if opts.Workers > 1 {
		err = b.runParallel(ctx, opts.Workers)
	} else {
		err = b.run(ctx)
	}
	// Report cancellation as such even if a worker failed meanwhile.
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		return nil, err
	}
	sort.Slice(pyr.Failures, func(i, j int) bool {
		x, y := pyr.Failures[i], pyr.Failures[j]
		if x.Level != y.Level {
			return x.Level < y.Level
		}
		return x.Channel < y.Channel
	})
	return pyr, nil
}

type builder struct {
	pyr     *Pyramid
	src     [][]float64
	kernels [][]float64
	opts    Options
	log     logrus.FieldLogger

	mu sync.Mutex
}

// Buffers owned by one worker.
type buffers struct {
	dst, tmp []float64
}

func (b *builder) newBuffers() *buffers {
	n := b.pyr.Width * b.pyr.Height
	return &buffers{make([]float64, n), make([]float64, n)}
}

func (b *builder) run(ctx context.Context) error {
	buf := b.newBuffers()
	for l := range b.kernels {
		for p := range b.src {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := b.slice(l, p, buf); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *builder) runParallel(ctx context.Context, workers int) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	pool := sync.Pool{New: func() interface{} { return b.newBuffers() }}
	for l := range b.kernels {
		for p := range b.src {
			l, p := l, p
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				buf := pool.Get().(*buffers)
				defer pool.Put(buf)
				return b.slice(l, p, buf)
			})
		}
	}
	return g.Wait()
}

// slice blurs channel p for level l and stores the result.
func (b *builder) slice(l, p int, buf *buffers) error {
	w, h := b.pyr.Width, b.pyr.Height
	blur2(buf.dst, b.src[p], buf.tmp, w, h, b.kernels[l])
	if i := firstNonFinite(buf.dst); i >= 0 {
		serr := &SliceError{
			Level:   l,
			Channel: p,
			Sigma:   b.pyr.Sigmas[l],
			Err:     errors.Errorf("non-finite value at (%d, %d)", i/h, i%h),
		}
		if b.opts.Strict {
			return errors.Wrap(ErrSliceFailure, serr.Error())
		}
		b.log.WithFields(logrus.Fields{
			"level":   l,
			"channel": p,
			"sigma":   serr.Sigma,
		}).Warnln("blur slice:", serr.Err)
		b.mu.Lock()
		b.pyr.Failures = append(b.pyr.Failures, serr)
		b.mu.Unlock()
		return nil
	}
	dst := b.pyr.Levels[l]
	for u := 0; u < w; u++ {
		for v := 0; v < h; v++ {
			dst.Set(u, v, p, buf.dst[u*h+v])
		}
	}
	return nil
}

// channel copies channel p of f into a slice indexed u*height+v.
func channel(f *rimg64.Multi, p int) []float64 {
	x := make([]float64, f.Width*f.Height)
	for u := 0; u < f.Width; u++ {
		for v := 0; v < f.Height; v++ {
			x[u*f.Height+v] = f.At(u, v, p)
		}
	}
	return x
}

func firstNonFinite(x []float64) int {
	for i, xi := range x {
		if math.IsNaN(xi) || math.IsInf(xi, 0) {
			return i
		}
	}
	return -1
}
