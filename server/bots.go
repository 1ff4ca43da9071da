package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/powellquiring/versebot/bot"
	"github.com/powellquiring/versebot/strategy"
	"github.com/powellquiring/versebot/wordle"
)

type botRunRequest struct {
	Secret     string `json:"secret"`
	MaxGuesses int    `json:"maxGuesses"`
	Seed       uint64 `json:"seed"`
}

type botRunResponse struct {
	Strategy string `json:"strategy"`
	bot.Result
}

func (s *Server) handleBotRun(w http.ResponseWriter, r *http.Request) {
	var req botRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "bad_json", Message: err.Error()})
		return
	}
	secret, err := wordle.ParseWord(req.Secret)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if req.MaxGuesses == 0 {
		req.MaxGuesses = s.cfg.MaxGuesses
	}
	if req.Seed == 0 {
		req.Seed = s.cfg.Seed
	}
	opts := []strategy.Option{strategy.WithSeed(req.Seed)}
	opening, err := s.cfg.OpeningWords()
	if err != nil {
		s.writeError(w, err)
		return
	}
	if len(opening) > 0 && opening[0].Len() == secret.Len() {
		opts = append(opts, strategy.WithOpening(opening...))
	}
	st, err := strategy.New(chi.URLParam(r, "strategy"), secret.Len(), opts...)
	if err != nil {
		s.writeError(w, err)
		return
	}
	index, err := s.index(secret.Len())
	if err != nil {
		s.writeError(w, err)
		return
	}
	runner, err := bot.NewFromIndex(index, req.MaxGuesses, st, bot.WithLogger(s.logger))
	if err != nil {
		s.writeError(w, err)
		return
	}
	result, err := runner.Run(secret)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, botRunResponse{Strategy: st.Name(), Result: result})
}
