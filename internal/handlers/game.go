package handlers

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
)

type GameHandler struct {
	log               logrus.FieldLogger
	ws                *config.WebSocket
	defaultDifficulty mines.Difficulty
	opts              []mines.Option
}

func NewGameHandler(
	log logrus.FieldLogger,
	ws *config.WebSocket,
	defaultDifficulty mines.Difficulty,
	opts ...mines.Option,
) *GameHandler {
	return &GameHandler{
		log:               log,
		ws:                ws,
		defaultDifficulty: defaultDifficulty,
		opts:              opts,
	}
}

func (h GameHandler) Difficulties(w http.ResponseWriter, r *http.Request) {
	sendJSONOrLog(w, h.log, http.StatusOK, mines.Difficulties)
}

// Play upgrades to a websocket that owns a single game for the lifetime of
// the connection. The current state is sent on connect and after every
// received frame, with an error attached if one of the frame's commands
// failed.
func (h GameHandler) Play(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseCreateNewGameDTO(r.URL.Query())
	if err != nil {
		sendJSONOrLog(w, h.log, http.StatusBadRequest, wrapError(err))
		return
	}

	difficulty, err := dto.ToDifficulty(h.defaultDifficulty)
	if err != nil {
		sendJSONOrLog(w, h.log, http.StatusBadRequest, wrapError(err))
		return
	}

	c, err := h.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.WithError(err).Warn("upgrade")
		return
	}
	defer c.Close()

	log := h.log.WithField("remoteAddr", r.RemoteAddr)
	game := mines.NewGame(difficulty, h.opts...)

	unsubscribe := game.Subscribe(func(e mines.Event) {
		entry := log.WithFields(logrus.Fields{
			"event": e.Type.String(),
			"x":     e.X,
			"y":     e.Y,
			"phase": e.Phase.String(),
		})
		if e.Phase.Over() {
			entry.WithField("mines", game.MineCount()).Info("game finished")
		} else {
			entry.Debug("game event")
		}
	})
	defer unsubscribe()

	log.WithField("difficulty", difficulty.String()).Info("game started")

	if err := c.WriteJSON(NewGameDTO(game)); err != nil {
		log.WithError(err).Error("write")
		return
	}

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Warn("read")
			}
			return
		}
		if mt != websocket.TextMessage {
			return
		}
		log.Debug("\t> ", string(message))

		err = executeCommands(game, string(message))
		reply := NewGameDTO(game)
		if err != nil {
			log.WithError(err).Debug("command")
			reply.Error = err.Error()
		}

		if err := c.WriteJSON(reply); err != nil {
			log.WithError(err).Error("write")
			return
		}
	}
}
