package bezier

// CurveEpsilon is the epsilon used for approximate equality and
// split-point rejection throughout the curve package.
const CurveEpsilon = 1e-4

// FindUTolerance is find_u's absolute convergence tolerance: 2 times the
// double-precision machine epsilon.
const FindUTolerance = 2 * 2.220446049250313e-16

// FindUMaxIterations bounds find_u's Illinois-method iteration.
const FindUMaxIterations = 45

// ActualOrderLinearEps is the magnitude threshold below which a cubic's
// quadratic coefficient is treated as zero (order collapses to linear).
const ActualOrderLinearEps = 1e-4

// ActualOrderCubicEps is the magnitude threshold below which a cubic's
// leading (cubic) coefficient is treated as zero.
const ActualOrderCubicEps = 1e-6

// LinearizeMaxDepth caps the recursion depth of adaptive linearization
// as a safety belt independent of the tolerance criterion.
const LinearizeMaxDepth = 32
