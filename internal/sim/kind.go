package sim

// Kind identifies a particle's interaction class. It is fixed at creation
// and selects both the coefficient-matrix row/column and the render color.
type Kind int

// The three shipped kinds. The matrix itself works for any kind count.
const (
	KindAlpha Kind = iota
	KindBeta
	KindGamma

	NumKinds = 3
)

// CoeffMagnitude is the magnitude of every entry in the reference matrix.
const CoeffMagnitude = 1e4

// Matrix is the kind-pair interaction table. Entry (from, to) is the signed
// coefficient applied to the force that the particle of kind `to` exerts on
// the particle of kind `from`. Negative means attraction, positive repulsion.
// The table is not symmetric: At(a, b) and At(b, a) may differ in sign, so
// reciprocal forces need not be equal-and-opposite.
type Matrix struct {
	kinds int
	c     []float64
}

// NewMatrix creates a zero matrix for the given number of kinds.
func NewMatrix(kinds int) *Matrix {
	return &Matrix{
		kinds: kinds,
		c:     make([]float64, kinds*kinds),
	}
}

// Kinds returns the number of kinds the matrix covers.
func (m *Matrix) Kinds() int {
	return m.kinds
}

// At returns the coefficient for a (from, to) ordered kind pair.
func (m *Matrix) At(from, to Kind) float64 {
	return m.c[int(from)*m.kinds+int(to)]
}

// Set assigns the coefficient for a (from, to) ordered kind pair.
func (m *Matrix) Set(from, to Kind, v float64) {
	m.c[int(from)*m.kinds+int(to)] = v
}

// ReferenceMatrix returns the shipped 3x3 table. Alpha scatters from its own
// kind and chases Beta, Beta chases Gamma, Gamma chases Alpha; the chased
// kind is repelled in return, so no pair ever settles.
func ReferenceMatrix() *Matrix {
	const k = CoeffMagnitude
	m := NewMatrix(NumKinds)
	m.Set(KindAlpha, KindAlpha, +k)
	m.Set(KindAlpha, KindBeta, -k)
	m.Set(KindAlpha, KindGamma, +k)
	m.Set(KindBeta, KindAlpha, +k)
	m.Set(KindBeta, KindBeta, -k)
	m.Set(KindBeta, KindGamma, -k)
	m.Set(KindGamma, KindAlpha, -k)
	m.Set(KindGamma, KindBeta, +k)
	m.Set(KindGamma, KindGamma, -k)
	return m
}
