package test

import "fmt"

type testingConfig struct {
	tolerance float64
}

// TestingOption configures NewAssert.
type TestingOption func(*testingConfig) error

// WithTolerance sets the entrywise tolerance used by the unitary
// comparisons (defaults to 1e-9).
func WithTolerance(tol float64) TestingOption {
	return func(cfg *testingConfig) error {
		if tol <= 0 {
			return fmt.Errorf("tolerance must be positive, got %v", tol)
		}
		cfg.tolerance = tol
		return nil
	}
}
