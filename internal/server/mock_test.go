package server

import (
	"context"
	"sync"

	"github.com/agenthands/talentscout/internal/model"
)

type MockUpstream struct {
	mu          sync.Mutex
	People      []model.Person
	SearchErr   error
	Genome      []byte
	GenomeErr   error
	SearchCalls int
	GenomeCalls int
	LastQuery   string
}

func (m *MockUpstream) SearchPeople(ctx context.Context, query string) ([]model.Person, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SearchCalls++
	m.LastQuery = query
	if m.SearchErr != nil {
		return nil, m.SearchErr
	}
	return m.People, nil
}

func (m *MockUpstream) GenomeBio(ctx context.Context, username string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GenomeCalls++
	if m.GenomeErr != nil {
		return nil, m.GenomeErr
	}
	return m.Genome, nil
}

type fixedProvider struct {
	name string
	data *model.ProfileData
	err  error
}

func (p *fixedProvider) Name() string {
	return p.name
}

func (p *fixedProvider) Attempt(ctx context.Context, username string) (*model.ProfileData, error) {
	return p.data, p.err
}
