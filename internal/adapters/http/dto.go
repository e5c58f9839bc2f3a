package http

import (
	"github.com/komekomeaaa/tarot/internal/domain"
	"github.com/komekomeaaa/tarot/internal/sigil"
)

// ReadingRequest is the body of POST /v1/readings.
type ReadingRequest struct {
	SessionID string             `json:"session_id"`
	Spread    domain.SpreadType  `json:"spread"`
	Context   domain.UserContext `json:"context"`
}

// ReadingResponse is the JSON shape returned for a reading.
type ReadingResponse struct {
	Reading domain.Reading `json:"reading"`
	Cards   []CardResponse `json:"cards,omitempty"`
	Meta    MetaResp       `json:"meta"`
}

// CardResponse is a drawn card joined with its catalog entry.
type CardResponse struct {
	PositionID  string             `json:"position_id"`
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Orientation domain.Orientation `json:"orientation"`
	Keywords    []string           `json:"keywords"`
}

type MetaResp struct {
	RequestID string `json:"request_id"`
	LatencyMS int64  `json:"latency_ms"`
}

// DrawRequest is the body of POST /v1/sessions/:id/draw.
type DrawRequest struct {
	Spread domain.SpreadType `json:"spread"`
}

// ClassifyRequest is the body of POST /v1/sigil/classify. Score is ignored
// in binary mode.
type ClassifyRequest struct {
	Mode    string      `json:"mode"`
	Answers []AnswerReq `json:"answers"`
}

type AnswerReq struct {
	QuestionID int    `json:"question_id"`
	Letter     string `json:"letter"`
	Score      int    `json:"score"`
}

func (r ClassifyRequest) binary() []sigil.BinaryAnswer {
	out := make([]sigil.BinaryAnswer, len(r.Answers))
	for i, a := range r.Answers {
		out[i] = sigil.BinaryAnswer{QuestionID: a.QuestionID, Letter: a.Letter}
	}
	return out
}

func (r ClassifyRequest) likert() []sigil.LikertAnswer {
	out := make([]sigil.LikertAnswer, len(r.Answers))
	for i, a := range r.Answers {
		out[i] = sigil.LikertAnswer{QuestionID: a.QuestionID, Letter: a.Letter, Score: a.Score}
	}
	return out
}

// UsageRequest is the body of POST /v1/usage.
type UsageRequest struct {
	Action    string `json:"action"`
	SigilType string `json:"sigil_type"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
