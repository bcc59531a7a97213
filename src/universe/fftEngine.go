package universe

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/dsp/fourier"
)

/*
	Engine implementation counting neighbours with the 2D convolution
	the convolution is computed in the frequency domain: real FFT on rows, complex FFT on columns
	the circular convolution wraps at the borders exactly like the torus does
*/

//areas smaller than this are stepped by direct counting
const fftMinSize = 4

type FFTEngine struct {
	mu    sync.Mutex
	plans map[int]*fftPlan
}

//fftPlan keeps the transforms and scratch buffers for one area size
type fftPlan struct {
	n        int
	halfC    int //n/2 + 1 reduced column count
	realFFT  *fourier.FFT
	cmplxFFT *fourier.CmplxFFT
	kernel   []complex128 //pre-transformed kernel: n rows x halfC cols
	freq     []complex128
	col      []complex128
	row      []float64
	normInv  float64
}

func NewFFTEngine(_ *Options) Engine {
	return &FFTEngine{plans: map[int]*fftPlan{}}
}

func (fe *FFTEngine) Name() string {
	return "fft"
}

func (fe *FFTEngine) Step(current *Area) *Area {
	if current.size < fftMinSize {
		return SimpleEngine{}.Step(current)
	}
	fe.mu.Lock()
	defer fe.mu.Unlock()
	p, ok := fe.plans[current.size]
	if !ok {
		p = newFFTPlan(current.size)
		fe.plans[current.size] = p
	}
	return p.step(current)
}

func newFFTPlan(n int) *fftPlan {
	p := &fftPlan{
		n:        n,
		halfC:    n/2 + 1,
		realFFT:  fourier.NewFFT(n),
		cmplxFFT: fourier.NewCmplxFFT(n),
		col:      make([]complex128, n),
		row:      make([]float64, n),
		normInv:  1.0 / float64(n*n),
	}
	p.freq = make([]complex128, n*p.halfC)
	p.kernel = make([]complex128, n*p.halfC)

	//every neighbour offset has weight 1, the cell itself 0
	kernel := make([]float64, n*n)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			kernel[((dy+n)%n)*n+(dx+n)%n] += 1
		}
	}
	p.forward(p.kernel, kernel)
	return p
}

//forward computes the 2D FFT of the n x n real matrix src into dst
func (p *fftPlan) forward(dst []complex128, src []float64) {
	for y := 0; y < p.n; y++ {
		p.realFFT.Coefficients(dst[y*p.halfC:(y+1)*p.halfC], src[y*p.n:(y+1)*p.n])
	}
	p.columns(dst, p.cmplxFFT.Coefficients)
}

//columns applies the complex transform to every column of buf
func (p *fftPlan) columns(buf []complex128, transform func(dst, src []complex128) []complex128) {
	for x := 0; x < p.halfC; x++ {
		for y := 0; y < p.n; y++ {
			p.col[y] = buf[y*p.halfC+x]
		}
		transform(p.col, p.col)
		for y := 0; y < p.n; y++ {
			buf[y*p.halfC+x] = p.col[y]
		}
	}
}

func (p *fftPlan) step(current *Area) *Area {
	for y := 0; y < p.n; y++ {
		for x := 0; x < p.n; x++ {
			p.row[x] = float64(current.entities[y][x])
		}
		p.realFFT.Coefficients(p.freq[y*p.halfC:(y+1)*p.halfC], p.row)
	}
	p.columns(p.freq, p.cmplxFFT.Coefficients)

	for i := range p.freq {
		p.freq[i] *= p.kernel[i]
	}

	p.columns(p.freq, p.cmplxFFT.Sequence)
	next := createArea(p.n)
	for y := 0; y < p.n; y++ {
		p.realFFT.Sequence(p.row, p.freq[y*p.halfC:(y+1)*p.halfC])
		for x := 0; x < p.n; x++ {
			liveNeighbours := int(math.Round(p.row[x] * p.normInv))
			next.entities[y][x] = cellNextState(current.entities[y][x], liveNeighbours)
		}
	}
	return next
}
