package entity

import "github.com/rocketscienceinc/tictactoe-engine/internal/engine"

const botIDPrefix = "bot-"

type Player struct {
	ID     string      `json:"id"`
	Mark   engine.Mark `json:"mark,omitempty"`
	GameID string      `json:"game_id,omitempty"`
	Bot    bool        `json:"bot,omitempty"`
}

// NewBotPlayer - the engine-driven opponent of a game.
func NewBotPlayer(gameID string, mark engine.Mark) *Player {
	return &Player{
		ID:     botIDPrefix + gameID,
		Mark:   mark,
		GameID: gameID,
		Bot:    true,
	}
}

func (that *Player) IsBot() bool {
	return that.Bot
}

func (that *Player) InGame() bool {
	return that.GameID != ""
}
