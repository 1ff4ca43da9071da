package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/powellquiring/versebot/candidate"
	"github.com/powellquiring/versebot/constraint"
	"github.com/powellquiring/versebot/strategy"
	"github.com/powellquiring/versebot/wordle"
)

// defaultLimit caps the candidates listed in a solve response
const defaultLimit = 100

// Turn is one guess with the rating it received
type Turn struct {
	Guess  wordle.Word
	Rating wordle.Rating
}

type Solution struct {
	Model      *constraint.Model
	Candidates *candidate.Set
	Suggestion wordle.Word
}

// Solve replays history against the full word list of index and asks the
// strategy kind for the next guess.
func Solve(index *candidate.Index, history []Turn, maxGuesses int, kind string, opts ...strategy.Option) (*Solution, error) {
	dict := index.Dictionary()
	s, err := strategy.New(kind, dict.Length(), opts...)
	if err != nil {
		return nil, err
	}
	model := constraint.New(dict.Length())
	state := strategy.NewState(dict, maxGuesses)
	set := index.All()
	for _, turn := range history {
		if turn.Guess.Len() != dict.Length() {
			return nil, fmt.Errorf("%w: guess %q has %d letters, want %d", wordle.ErrInvalidWord, turn.Guess, turn.Guess.Len(), dict.Length())
		}
		if err := model.Update(turn.Guess, turn.Rating); err != nil {
			return nil, err
		}
		state.Record(turn.Guess, turn.Rating)
		set = index.Filter(set, model)
	}
	if set.Empty() {
		return nil, &wordle.EmptyCandidateSetError{Guesses: state.Guesses, Ratings: state.Ratings}
	}
	if pre, ok := s.(strategy.Precalculator); ok {
		pre.Precalculate(set, state)
	}
	suggestion, err := s.SelectGuess(set, state)
	if err != nil {
		return nil, err
	}
	return &Solution{Model: model, Candidates: set, Suggestion: suggestion}, nil
}

type historyEntry struct {
	Guess  string `json:"guess"`
	Rating string `json:"rating"`
}

type solveRequest struct {
	Length   int            `json:"length"`
	History  []historyEntry `json:"history"`
	Strategy string         `json:"strategy"`
	Limit    int            `json:"limit"`
}

type solveResponse struct {
	Count      int           `json:"count"`
	Candidates []wordle.Word `json:"candidates"`
	Suggestion wordle.Word   `json:"suggestion"`
	Model      string        `json:"model"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "bad_json", Message: err.Error()})
		return
	}
	if req.Length == 0 {
		req.Length = s.cfg.Length
	}
	if req.Strategy == "" {
		req.Strategy = s.cfg.Strategy
	}
	if req.Limit <= 0 {
		req.Limit = defaultLimit
	}
	history := make([]Turn, 0, len(req.History))
	for _, entry := range req.History {
		guess, err := wordle.ParseWord(entry.Guess)
		if err != nil {
			s.writeError(w, err)
			return
		}
		rating, err := wordle.ParseRating(entry.Rating)
		if err != nil {
			s.writeError(w, err)
			return
		}
		history = append(history, Turn{Guess: guess, Rating: rating})
	}
	index, err := s.index(req.Length)
	if err != nil {
		s.writeError(w, err)
		return
	}
	solution, err := Solve(index, history, s.cfg.MaxGuesses, req.Strategy, strategy.WithSeed(s.cfg.Seed))
	if err != nil {
		s.writeError(w, err)
		return
	}
	candidates := solution.Candidates.Words()
	if len(candidates) > req.Limit {
		candidates = candidates[:req.Limit]
	}
	writeJSON(w, http.StatusOK, solveResponse{
		Count:      solution.Candidates.Len(),
		Candidates: candidates,
		Suggestion: solution.Suggestion,
		Model:      solution.Model.String(),
	})
}
