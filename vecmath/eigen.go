// Jacobi eigendecomposition for small symmetric matrices.
//
// The sweep structure (find the largest off-diagonal pivot, rotate, apply to
// a working copy, accumulate into an eigenvector matrix, converge against a
// Frobenius-norm tolerance) is a dimension-specialized generalization of
// lvlath's matrix/ops/eigen.go, which does the same for arbitrary-size
// matrix.Matrix values; here it is retargeted at a fixed Mat[float64] of
// dimension 1-4.
package vecmath

import "math"

// DefaultEigenMaxIter bounds the number of Jacobi rotations before giving up,
// matching spec.md §4.1's "bounded iteration count" contract.
const DefaultEigenMaxIter = 100

// Eigen computes the eigenvalues and eigenvectors of a symmetric Mat[float64]
// using classical Jacobi rotations. It returns the eigenvector matrix V
// (columns are eigenvectors) and the eigenvalue vector d, such that
// m ≈ V * Diag(d) * V^T.
//
// Convergence is declared once the off-diagonal Frobenius norm drops to or
// below tiny²·max(|trace(m)|, 1) (spec.md §4.1). Each iteration applies one
// rotation, to the largest off-diagonal entry. If the rotation budget
// (maxIter, or DefaultEigenMaxIter if maxIter<=0) is exhausted first, Eigen
// returns ErrNotConverged; geometric callers (e.g. bisect.InertialMedianSplit)
// are expected to fall back to a caller-supplied direction in that case.
//
// Complexity: O(dim²) per rotation, O(maxIter·dim²) worst case.
func Eigen(m Mat[float64], maxIter int) (Mat[float64], Vec[float64], error) {
	dim := m.dim
	if maxIter <= 0 {
		maxIter = DefaultEigenMaxIter
	}

	A := m // Jacobi works on a local copy; Mat is a value type.
	V := IdentityMat[float64](dim)

	trace := math.Abs(Trace(A))
	tol := tiny * tiny * math.Max(trace, 1.0)

	converged := false
	for iter := 0; iter < maxIter; iter++ {
		// Frobenius norm of the off-diagonal block.
		offNorm := 0.0
		p, q := 0, 1
		maxOff := 0.0
		for i := 0; i < dim; i++ {
			for j := i + 1; j < dim; j++ {
				v := A.e[i][j]
				offNorm += 2 * v * v
				if math.Abs(v) > maxOff {
					maxOff = math.Abs(v)
					p, q = i, j
				}
			}
		}
		if math.Sqrt(offNorm) <= tol {
			converged = true
			break
		}
		if dim < 2 {
			converged = true
			break
		}

		apq := A.e[p][q]
		app := A.e[p][p]
		aqq := A.e[q][q]
		theta := (aqq - app) / (2 * apq)
		t := math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c := 1.0 / math.Sqrt(t*t+1)
		s := t * c

		for i := 0; i < dim; i++ {
			if i != p && i != q {
				aip := A.e[i][p]
				aiq := A.e[i][q]
				A.e[i][p] = c*aip - s*aiq
				A.e[p][i] = A.e[i][p]
				A.e[i][q] = s*aip + c*aiq
				A.e[q][i] = A.e[i][q]
			}
		}
		A.e[p][p] = c*c*app - 2*c*s*apq + s*s*aqq
		A.e[q][q] = s*s*app + 2*c*s*apq + c*c*aqq
		A.e[p][q] = 0
		A.e[q][p] = 0

		for i := 0; i < dim; i++ {
			vip := V.e[i][p]
			viq := V.e[i][q]
			V.e[i][p] = c*vip - s*viq
			V.e[i][q] = s*vip + c*viq
		}
	}
	if !converged {
		return Mat[float64]{}, Vec[float64]{}, ErrNotConverged
	}

	return V, A.Diag(), nil
}
