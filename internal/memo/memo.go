// Package memo adds an input-keyed memoization layer on top of the payroll
// calculator. The engines are pure, so a result can be replayed for an
// identical request without recomputation. The cache lives outside the
// calculation core and is owned by the embedding caller.
package memo

import (
	"context"
	"sync"

	"github.com/goccy/go-json"

	"go-paie/internal/payroll"
)

// Invalidator is the capability handed to callers that change rule tables
// or correct inputs and need cached results dropped.
type Invalidator interface {
	Invalidate(req payroll.CalculationRequest)
	Reset()
}

type Service struct {
	inner payroll.Service

	mu    sync.RWMutex
	cache map[string]payroll.Result
}

var _ payroll.Service = (*Service)(nil)
var _ Invalidator = (*Service)(nil)

func NewService(inner payroll.Service) *Service {
	return &Service{
		inner: inner,
		cache: make(map[string]payroll.Result),
	}
}

// CalculatePayroll returns the cached result for an identical request, or
// delegates and stores the outcome. Only successful calculations are
// cached; errors are recomputed every time.
func (s *Service) CalculatePayroll(ctx context.Context, req payroll.CalculationRequest) (payroll.Result, error) {
	key, err := cacheKey(req)
	if err != nil {
		return s.inner.CalculatePayroll(ctx, req)
	}

	s.mu.RLock()
	cached, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	res, err := s.inner.CalculatePayroll(ctx, req)
	if err != nil {
		return payroll.Result{}, err
	}

	s.mu.Lock()
	s.cache[key] = res
	s.mu.Unlock()

	return res, nil
}

func (s *Service) Invalidate(req payroll.CalculationRequest) {
	key, err := cacheKey(req)
	if err != nil {
		return
	}
	s.mu.Lock()
	delete(s.cache, key)
	s.mu.Unlock()
}

func (s *Service) Reset() {
	s.mu.Lock()
	s.cache = make(map[string]payroll.Result)
	s.mu.Unlock()
}

// cacheKey is the canonical JSON of the full request. Struct field order is
// fixed, so identical inputs always produce identical keys.
func cacheKey(req payroll.CalculationRequest) (string, error) {
	raw, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
