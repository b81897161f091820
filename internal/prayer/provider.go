package prayer

import "sync/atomic"

// Provider hands out the estimator currently in use. Saving a new base
// table swaps it for every later reader.
type Provider struct {
	current atomic.Pointer[Estimator]
}

func NewProvider(table Table) *Provider {
	p := &Provider{}
	p.SetTable(table)
	return p
}

func (p *Provider) Estimator() *Estimator {
	return p.current.Load()
}

func (p *Provider) SetTable(table Table) {
	p.current.Store(NewEstimator(table))
}
