package mock

import (
	"context"
	"fmt"

	"github.com/netpost/stringshop/pkg/models"
)

// Test helpers and mocks
type Mocks struct {
	RacketRepo *mockRacketRepo
	UserRepo   *mockUserRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		RacketRepo: &mockRacketRepo{},
		UserRepo:   &mockUserRepo{},
	}
}

type mockRacketRepo struct {
	Stored    []models.Racket
	NextID    int64
	CreateErr error
	ListErr   error
}

func (m *mockRacketRepo) CreateRacket(ctx context.Context, r *models.Racket) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.NextID++
	stored := *r
	stored.ID = m.NextID
	m.Stored = append(m.Stored, stored)
	return stored.ID, nil
}

func (m *mockRacketRepo) GetRacket(ctx context.Context, id int64) (*models.Racket, error) {
	for i := range m.Stored {
		if m.Stored[i].ID == id {
			r := m.Stored[i]
			return &r, nil
		}
	}
	return nil, nil
}

func (m *mockRacketRepo) ListRackets(ctx context.Context) ([]models.Racket, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]models.Racket, len(m.Stored))
	copy(out, m.Stored)
	return out, nil
}

func (m *mockRacketRepo) UpdateWorkflow(ctx context.Context, id int64, status models.Status, stringer string, payment bool) (bool, error) {
	for i := range m.Stored {
		if m.Stored[i].ID == id {
			m.Stored[i].Status = status
			m.Stored[i].Stringer = stringer
			m.Stored[i].Payment = payment
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRacketRepo) DeleteRacket(ctx context.Context, id int64) (bool, error) {
	for i := range m.Stored {
		if m.Stored[i].ID == id {
			m.Stored = append(m.Stored[:i], m.Stored[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRacketRepo) CountCreatedSince(ctx context.Context, since int64) (int64, error) {
	var n int64
	for i := range m.Stored {
		if m.Stored[i].CreatedOn >= since {
			n++
		}
	}
	return n, nil
}

func (m *mockRacketRepo) CountFinishedSince(ctx context.Context, since int64) (int64, error) {
	var n int64
	for i := range m.Stored {
		if m.Stored[i].Status == models.StatusFinished && m.Stored[i].UpdatedOn >= since {
			n++
		}
	}
	return n, nil
}

type mockUserRepo struct {
	Stored    *models.User
	CreateErr error
}

func (m *mockUserRepo) CreateUser(ctx context.Context, u *models.User) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	if m.Stored != nil && m.Stored.Username == u.Username {
		return 0, fmt.Errorf("unique constraint: users.username")
	}
	m.Stored = &models.User{ID: 1, Username: u.Username, PasswordHash: u.PasswordHash}
	return 1, nil
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	if m.Stored != nil && m.Stored.ID == id {
		return m.Stored, nil
	}
	return nil, nil
}

func (m *mockUserRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.Stored != nil && m.Stored.Username == username {
		return m.Stored, nil
	}
	return nil, nil
}
