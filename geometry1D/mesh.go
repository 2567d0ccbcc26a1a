package geometry1D

import (
	"fmt"

	"github.com/james-bowman/sparse"

	"github.com/notargets/fluxlab/utils"
)

// Mesh1D is a uniform periodic mesh of K cells on [XMin, XMax]. It is not
// modified once built.
type Mesh1D struct {
	XMin, XMax float64
	K          int
	Dx         float64
	X          []float64 // Cell centers
	EToV       [][2]int  // Element to vertex, vertex K is identified with vertex 0
	EToE, EToF [][2]int  // Neighbor element and neighbor face across faces 0 (left) and 1 (right)
}

func NewPeriodicMesh1D(xMin, xMax float64, K int) (m *Mesh1D) {
	if K < 1 {
		panic(fmt.Errorf("mesh needs at least one cell, have %d", K))
	}
	if !(xMax > xMin) {
		panic(fmt.Errorf("empty domain [%v, %v]", xMin, xMax))
	}
	m = &Mesh1D{
		XMin: xMin,
		XMax: xMax,
		K:    K,
		EToV: make([][2]int, K),
	}
	m.X, m.Dx = utils.LinspaceMid(xMin, xMax, K)
	for k := 0; k < K; k++ {
		m.EToV[k] = [2]int{k, (k + 1) % K}
	}
	m.EToE, m.EToF = Connect1D(m.EToV, K)
	return
}

// CellBounds returns the left and right vertex coordinates of cell k
func (m *Mesh1D) CellBounds(k int) (xl, xr float64) {
	xl = m.X[k] - 0.5*m.Dx
	xr = xl + m.Dx
	return
}

// Connect1D finds the face neighbors of every element from the element to
// vertex map by forming the face to face incidence FToV·FToVᵀ.
func Connect1D(EToV [][2]int, Nv int) (EToE, EToF [][2]int) {
	var (
		NFaces     = 2
		K          = len(EToV)
		TotalFaces = NFaces * K
	)
	SpFToV_Tmp := sparse.NewDOK(TotalFaces, Nv)
	var sk int
	for k := 0; k < K; k++ {
		for face := 0; face < NFaces; face++ {
			SpFToV_Tmp.Set(sk, EToV[k][face], 1)
			sk++
		}
	}
	SpFToF := sparse.NewCSR(TotalFaces, TotalFaces, nil, nil, nil)
	SpFToV := SpFToV_Tmp.ToCSR()
	SpFToF.Mul(SpFToV, SpFToV.T())

	// Every face touches itself, the remaining unit entries are the neighbors
	EToE = make([][2]int, K)
	EToF = make([][2]int, K)
	for k := 0; k < K; k++ {
		EToE[k] = [2]int{k, k}
		EToF[k] = [2]int{0, 1}
	}
	SpFToF.DoNonZero(func(face1, face2 int, v float64) {
		if face1 == face2 || v != 1 {
			return
		}
		element1, f1 := face1/NFaces, face1%NFaces
		element2, f2 := face2/NFaces, face2%NFaces
		EToE[element1][f1] = element2
		EToF[element1][f1] = f2
	})
	return
}
