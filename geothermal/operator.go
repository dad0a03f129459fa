package geothermal

import (
	"fmt"

	"github.com/geomodels/goreinject/utils"
)

// Stability carries the dimensionless coefficients the explicit scheme is
// gated on. It is a pure function of the velocity and the fixed constants.
type Stability struct {
	Diffusion  float64 // s  = dt*D / (dz^2 * rho * cT)
	VonNeumann float64 // vn = dt*D / dz^2
	Courant    float64 // c  = dt*u / dz
}

func NewStability(velocity float64, p Parameters) Stability {
	return Stability{
		Diffusion:  (p.Dt * p.Conductivity) / (p.Dz * p.Dz * p.Density * p.SpecificHeat),
		VonNeumann: (p.Dt * p.Conductivity) / (p.Dz * p.Dz),
		Courant:    p.Dt * (velocity / p.Dz),
	}
}

// Check applies the two discretization limits. Both must hold:
//
//	(1) c^2 <= 2*vn
//	(2) vn + c/4 <= 0.5
//
// A violation is an expected outcome for an aggressive reinjection rate, not
// a fault; the returned *InstabilityError names the violated condition and
// the compared values so the rejection can be diagnosed.
func (st Stability) Check() error {
	var (
		c  = st.Courant
		vn = st.VonNeumann
	)
	if c*c > 2*vn {
		return &InstabilityError{Condition: 1, Lhs: c * c, Rhs: 2 * vn}
	}
	if vn+c/4 > 0.5 {
		return &InstabilityError{Condition: 2, Lhs: vn + c/4, Rhs: 0.5}
	}
	return nil
}

// InstabilityError reports a stability gate rejection. Callers treat it as
// "no physically meaningful result for this input", never as a fault.
type InstabilityError struct {
	Condition int // 1 or 2
	Lhs, Rhs  float64
}

func (e *InstabilityError) Error() string {
	if e.Condition == 1 {
		return fmt.Sprintf("unstable #1: c^2 = %g > 2*vn = %g", e.Lhs, e.Rhs)
	}
	return fmt.Sprintf("unstable #2: vn + c/4 = %g > %g", e.Lhs, e.Rhs)
}

// Operator is the N x N transport matrix, assembled once per run and never
// mutated afterward. It advances the interior of the column by one dt.
type Operator struct {
	A    utils.CSR
	Stab Stability
}

// NewOperator derives the stability coefficients for velocity, runs the
// gate, and on acceptance assembles the upwind-biased diffusion+advection
// stencil. Interior rows follow
//
//	T[i] <- (s - 3c/8)*T[i+1] + (1 - 2s - 3c/8)*T[i] + (s + 7c/8)*T[i-1] - (c/8)*T[i-2]
//
// The asymmetric advective weights favor the upstream side, which calls for
// two upstream neighbors; rows 0, 1 and N-1 are therefore identity rows,
// with the inlet pair pinned externally each step.
func NewOperator(velocity float64, n int, p Parameters) (op Operator, err error) {
	op.Stab = NewStability(velocity, p)
	if err = op.Stab.Check(); err != nil {
		return
	}
	var (
		s   = op.Stab.Diffusion
		c   = op.Stab.Courant
		dok = utils.NewDOK(n, n)
	)
	for i := 2; i <= n-2; i++ {
		dok.Set(i, i+1, s-(3./8.)*c)
		dok.Set(i, i, 1-2*s-(3./8.)*c)
		dok.Set(i, i-1, s+(7./8.)*c)
		dok.Set(i, i-2, -c/8)
	}
	dok.Set(0, 0, 1)
	dok.Set(1, 1, 1)
	dok.Set(n-1, n-1, 1)
	op.A = dok.ToCSR()
	return
}

// Apply is one explicit step, a matrix-vector product.
func (op Operator) Apply(T utils.Vector) utils.Vector {
	return op.A.MulVec(T)
}

// Dense expands the operator for inspection and printing.
func (op Operator) Dense() utils.Matrix {
	return op.A.ToDense()
}
