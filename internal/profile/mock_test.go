package profile

import (
	"context"

	"github.com/agenthands/talentscout/internal/model"
)

type MockProvider struct {
	ProviderName string
	Data         *model.ProfileData
	Err          error
	Calls        int
	// Block waits for ctx to finish before returning its error.
	Block bool
}

func (m *MockProvider) Name() string {
	return m.ProviderName
}

func (m *MockProvider) Attempt(ctx context.Context, username string) (*model.ProfileData, error) {
	m.Calls++
	if m.Block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Data, nil
}
