package renderer

import (
	"math"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lumen-render/lumen/log"
	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/geometry"
	"github.com/lumen-render/lumen/pkg/lights"
)

const (
	// rayEpsilon keeps secondary rays from re-hitting their origin surface
	// (shadow acne)
	rayEpsilon = 1e-3

	// fireflyCap bounds a single indirect bounce's per-channel contribution,
	// suppressing rare high-variance samples from near-zero pdfs
	fireflyCap = 100.0
)

var logger = log.New("renderer")

// Scene is the read-only view of a scene the renderer needs
type Scene interface {
	Intersect(ray core.Ray, rayT core.Interval) (*geometry.HitRecord, bool)
	Lights() []lights.Light
	Background() core.Vec3
}

// Options configures a render
type Options struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxBounces      int
	Workers         int   // defaults to the number of CPUs
	Seed            int64 // base seed; per-row generators derive from it
}

// DefaultOptions returns sensible render settings
func DefaultOptions() Options {
	return Options{
		Width:           800,
		Height:          600,
		SamplesPerPixel: 100,
		MaxBounces:      50,
	}
}

// Renderer estimates the radiance arriving at the camera by stochastic path
// tracing and assembles the result into a film, one image row per unit of
// parallel work
type Renderer struct {
	scene    Scene
	camera   Camera
	opts     Options
	rowsDone atomic.Int64

	// OnRowComplete, when set, is called after each finished row with the
	// number of completed rows and the total. Calls may come from any worker.
	OnRowComplete func(done, total int)
}

// New creates a renderer. It panics on non-positive dimensions or sample
// counts, which are construction-time programming errors.
func New(scene Scene, camera Camera, opts Options) *Renderer {
	if opts.Width <= 0 || opts.Height <= 0 {
		panic("renderer: image dimensions must be positive")
	}
	if opts.SamplesPerPixel <= 0 || opts.MaxBounces <= 0 {
		panic("renderer: samples and bounces must be positive")
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	return &Renderer{scene: scene, camera: camera, opts: opts}
}

// TraceRay estimates the radiance arriving along the ray, recursing up to the
// given number of bounces. Emissive surfaces contribute their emitted term on
// every hit, so an emitter that is also registered as an object light is
// counted both by next-event estimation and again when an indirect bounce
// lands on it.
func (r *Renderer) TraceRay(ray core.Ray, bounces int, rng *rand.Rand) core.Vec3 {
	if bounces <= 0 {
		return core.Vec3{}
	}

	rec, ok := r.scene.Intersect(ray, core.NewInterval(rayEpsilon, math.Inf(1)))
	if !ok {
		return r.scene.Background()
	}

	mat := rec.Material
	radiance := mat.Emitted()
	view := ray.Direction.Negate().Normalize()

	// Direct lighting via next-event estimation
	radiance = radiance.Add(r.sampleLights(rec, ray.Time, view, rng))

	// Indirect lighting via importance-sampled bounce
	scatterDir, pdf, sampled := mat.Scatter(rng, rec.Normal, view, rec.FrontFace)
	if sampled {
		f := mat.BSDF(scatterDir, view, rec.Normal, rec.FrontFace)
		bounceRay := core.NewRayAt(rec.Point, scatterDir, ray.Time)
		incoming := r.TraceRay(bounceRay, bounces-1, rng)

		indirect := f.MultiplyVec(incoming).
			Multiply(math.Abs(rec.Normal.Dot(scatterDir)) / pdf)
		if indirect.IsFinite() {
			radiance = radiance.Add(indirect.Clamp(0, fireflyCap))
		}
	}

	return radiance
}

// sampleLights accumulates the direct contribution of every scene light at
// the hit point. Ambient lights are applied flat and never shadow-tested; all
// others are occlusion-tested up to their distance.
func (r *Renderer) sampleLights(rec *geometry.HitRecord, time float64, view core.Vec3, rng *rand.Rand) core.Vec3 {
	total := core.Vec3{}
	mat := rec.Material

	for _, light := range r.scene.Lights() {
		if light.Type() == lights.LightTypeAmbient {
			ambient, _, _ := light.Illuminate(rec.Point, rng, time)
			total = total.Add(ambient.MultiplyVec(mat.Color))
			continue
		}

		radiance, lightDir, distance := light.Illuminate(rec.Point, rng, time)
		if distance <= 0 {
			continue
		}

		shadowRay := core.NewRayAt(rec.Point, lightDir, time)
		if _, blocked := r.scene.Intersect(shadowRay, core.NewInterval(rayEpsilon, distance-rayEpsilon)); blocked {
			continue
		}

		f := mat.BSDF(lightDir, view, rec.Normal, rec.FrontFace)
		cosine := math.Abs(rec.Normal.Dot(lightDir))
		total = total.Add(f.MultiplyVec(radiance).Multiply(cosine))
	}
	return total
}

// PixelColor estimates a pixel's radiance with stratified jittered sampling:
// the sample budget forms a sqrt(n) x sqrt(n) grid with one jittered sample
// per cell. Non-finite samples are discarded rather than propagated.
func (r *Renderer) PixelColor(col, row int, rng *rand.Rand) core.Vec3 {
	gridSize := int(math.Sqrt(float64(r.opts.SamplesPerPixel)))
	if gridSize < 1 {
		gridSize = 1
	}

	sum := core.Vec3{}
	accepted := 0
	for y := 0; y < gridSize; y++ {
		for x := 0; x < gridSize; x++ {
			u := (float64(col) + (float64(x)+rng.Float64())/float64(gridSize)) / float64(r.opts.Width)
			v := (float64(row) + (float64(y)+rng.Float64())/float64(gridSize)) / float64(r.opts.Height)

			sample := r.TraceRay(r.camera.GetRay(u, v, rng), r.opts.MaxBounces, rng)
			if sample.IsFinite() {
				sum = sum.Add(sample)
				accepted++
			}
		}
	}

	if accepted == 0 {
		return core.Vec3{}
	}
	return sum.Multiply(1.0 / float64(accepted))
}

// Render traces the full image and returns the film. Rows are distributed
// over a worker pool; each row owns a private RNG stream derived from the
// base seed, so a fixed seed reproduces the same image regardless of
// scheduling.
func (r *Renderer) Render() *Film {
	film := NewFilm(r.opts.Width, r.opts.Height)
	r.rowsDone.Store(0)

	start := time.Now()
	logger.Infof("rendering %dx%d, %d spp, %d bounces, %d workers",
		r.opts.Width, r.opts.Height, r.opts.SamplesPerPixel, r.opts.MaxBounces, r.opts.Workers)

	rows := make(chan int, r.opts.Height)
	var wg sync.WaitGroup

	for worker := 0; worker < r.opts.Workers; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for row := range rows {
				r.renderRow(film, row)
			}
		}()
	}

	for row := 0; row < r.opts.Height; row++ {
		rows <- row
	}
	close(rows)
	wg.Wait()

	logger.Infof("render finished in %s", time.Since(start).Round(time.Millisecond))
	return film
}

// renderRow renders one image row into the film. The row's pixels are the
// only memory this call writes, so rows may run concurrently.
func (r *Renderer) renderRow(film *Film, row int) {
	rng := rand.New(rand.NewSource(r.rowSeed(row)))
	for col := 0; col < r.opts.Width; col++ {
		film.Set(col, row, r.PixelColor(col, row, rng))
	}

	done := int(r.rowsDone.Add(1))
	if r.OnRowComplete != nil {
		r.OnRowComplete(done, r.opts.Height)
	}
}

// rowSeed derives a per-row seed from the base seed, decorrelating the row
// streams
func (r *Renderer) rowSeed(row int) int64 {
	return r.opts.Seed + int64(row)*0x9E3779B9
}
