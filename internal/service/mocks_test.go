package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type mockPlayerService struct {
	mock.Mock
}

func (m *mockPlayerService) CreatePlayer(ctx context.Context) (*entity.Player, error) {
	args := m.Called(ctx)
	player, _ := args.Get(0).(*entity.Player)
	return player, args.Error(1)
}

func (m *mockPlayerService) GetPlayerByID(ctx context.Context, id string) (*entity.Player, error) {
	args := m.Called(ctx, id)
	player, _ := args.Get(0).(*entity.Player)
	return player, args.Error(1)
}

func (m *mockPlayerService) UpdatePlayer(ctx context.Context, player *entity.Player) error {
	return m.Called(ctx, player).Error(0)
}

func (m *mockPlayerService) DeletePlayer(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockGameService struct {
	mock.Mock
}

func (m *mockGameService) CreateGame(ctx context.Context, player *entity.Player, algorithm engine.Algorithm) (*entity.Game, error) {
	args := m.Called(ctx, player, algorithm)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (m *mockGameService) GetGameByID(ctx context.Context, id string) (*entity.Game, error) {
	args := m.Called(ctx, id)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (m *mockGameService) UpdateGame(ctx context.Context, game *entity.Game) error {
	return m.Called(ctx, game).Error(0)
}

func (m *mockGameService) DeleteGame(ctx context.Context, gameID string) error {
	return m.Called(ctx, gameID).Error(0)
}

type mockPlayerRepo struct {
	mock.Mock
}

func (m *mockPlayerRepo) CreateOrUpdate(ctx context.Context, player *entity.Player) error {
	return m.Called(ctx, player).Error(0)
}

func (m *mockPlayerRepo) GetByID(ctx context.Context, id string) (*entity.Player, error) {
	args := m.Called(ctx, id)
	player, _ := args.Get(0).(*entity.Player)
	return player, args.Error(1)
}

type mockGameRepo struct {
	mock.Mock
}

func (m *mockGameRepo) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	return m.Called(ctx, game).Error(0)
}

func (m *mockGameRepo) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	args := m.Called(ctx, id)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (m *mockGameRepo) DeleteByID(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockPlayerRepo) DeleteByID(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
