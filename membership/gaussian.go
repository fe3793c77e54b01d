// SPDX-License-Identifier: MIT

package membership

import (
	"fmt"
	"math"
)

// gaussianSupportSigmas is the half-width, in sigmas, reported by Support.
// exp(-8) ≈ 3.4e-4, small enough for breakpoints and display.
const gaussianSupportSigmas = 4.0

// Gaussian is the bell curve exp(-(x-Mean)^2 / (2*Sigma^2)).
type Gaussian struct {
	Mean, Sigma float64
}

// NewGaussian validates sigma > 0 and returns the bell.
func NewGaussian(mean, sigma float64) (*Gaussian, error) {
	if !finite(mean, sigma) {
		return nil, shapeErrorf(ShapeGaussian, "parameters must be finite")
	}
	if sigma <= 0 {
		return nil, shapeErrorf(ShapeGaussian, "sigma must be > 0, got %g", sigma)
	}

	return &Gaussian{Mean: mean, Sigma: sigma}, nil
}

// Evaluate returns the degree of x. It is strictly positive for finite x
// near the mean and underflows to 0 only far in the tails.
func (g *Gaussian) Evaluate(x float64) float64 {
	d := x - g.Mean

	return clamp01(math.Exp(-(d * d) / (2 * g.Sigma * g.Sigma)))
}

// Shape returns ShapeGaussian.
func (g *Gaussian) Shape() Shape { return ShapeGaussian }

// Support returns the Mean ± 4σ band.
func (g *Gaussian) Support() (float64, float64) {
	w := gaussianSupportSigmas * g.Sigma

	return g.Mean - w, g.Mean + w
}

func (g *Gaussian) String() string {
	return fmt.Sprintf("gaussian(%g,%g)", g.Mean, g.Sigma)
}
