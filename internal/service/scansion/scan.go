package scansion

import (
	"context"

	"github.com/hathaway2010/poetry-scansion/internal/scansion"
)

// ScanComparative scans a poem with the compare-adjacent algorithm.
func (s *Service) ScanComparative(ctx context.Context, poem string) (string, error) {
	return s.scanWith(ctx, poem, scansion.AlgorithmCompare)
}

// ScanMaxWeight scans a poem with the house-robber algorithm.
func (s *Service) ScanMaxWeight(ctx context.Context, poem string) (string, error) {
	return s.scanWith(ctx, poem, scansion.AlgorithmMaxWeight)
}

// ScanThreshold scans a poem with the prose threshold algorithm.
func (s *Service) ScanThreshold(ctx context.Context, poem string) (string, error) {
	return s.scanWith(ctx, poem, scansion.AlgorithmThreshold)
}

// Scan scans a poem with the named algorithm; an empty name selects the
// configured default.
func (s *Service) Scan(ctx context.Context, poem, algorithm string) (string, error) {
	alg := s.algorithm
	if algorithm != "" {
		parsed, err := scansion.ParseAlgorithm(algorithm)
		if err != nil {
			return "", err
		}
		alg = parsed
	}
	return s.scanWith(ctx, poem, alg)
}

// Algorithms lists the available algorithms, marking the configured default
// as preferred.
func (s *Service) Algorithms() []scansion.Descriptor {
	return scansion.Algorithms(s.algorithm)
}

func (s *Service) scanWith(ctx context.Context, poem string, alg scansion.Algorithm) (string, error) {
	lines, err := s.ScorePoem(ctx, poem)
	if err != nil {
		return "", err
	}
	return scansion.Scan(alg, lines)
}
