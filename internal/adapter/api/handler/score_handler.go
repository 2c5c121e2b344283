package handler

import (
	"fmt"
	"math"
	"strconv"

	"github.com/labstack/echo/v4"

	"gamevault/internal/usecase"
	"gamevault/pkg/errors"
	"gamevault/pkg/logger"
	"gamevault/pkg/response"
)

type ScoreHandler struct {
	scoreUseCase *usecase.ScoreUseCase
}

func NewScoreHandler(scoreUseCase *usecase.ScoreUseCase) *ScoreHandler {
	return &ScoreHandler{
		scoreUseCase: scoreUseCase,
	}
}

type submitScoreRequest struct {
	PlayerName string `json:"player_name" validate:"required,min=1,max=50,playername"`
	// Pointer so that a missing score fails "required" while 0 is accepted.
	Score *wholeNumber `json:"score" validate:"required"`
}

// wholeNumber is an int64 that also accepts integral JSON numbers written
// with a fraction or exponent, such as 42.0 or 1e2. Strings are rejected.
type wholeNumber int64

// 2^63, the first float64 past the int64 range.
const int64Bound = float64(1 << 63)

func (n *wholeNumber) UnmarshalJSON(data []byte) error {
	raw := string(data)
	i, err := strconv.ParseInt(raw, 10, 64)
	if err == nil {
		*n = wholeNumber(i)
		return nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return fmt.Errorf("score %s is not a whole number", raw)
	}
	if f < -int64Bound || f >= int64Bound {
		return fmt.Errorf("score %s is out of range", raw)
	}
	*n = wholeNumber(f)
	return nil
}

type scoreSummary struct {
	PlayerName string `json:"player_name"`
	Score      int64  `json:"score"`
}

func (h *ScoreHandler) SubmitScore(c echo.Context) error {
	var req submitScoreRequest
	if err := c.Bind(&req); err != nil {
		if bodyTooLarge(err) {
			logger.Warn("Rejected score submission: request body over limit: %v", err)
			return response.Error(c, errors.BadRequest("Request body exceeds maximum allowed size", err))
		}
		return response.Error(c, errors.Validation("Invalid score payload: player_name must be a string and score a whole number", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	entry, err := h.scoreUseCase.Submit(c.Request().Context(), usecase.SubmitScoreInput{
		PlayerName: req.PlayerName,
		Score:      int64(*req.Score),
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, uploadResponse{
		Message: "Score recorded",
		ID:      entry.ID,
	})
}

func (h *ScoreHandler) ListScores(c echo.Context) error {
	scores, err := h.scoreUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	items := make([]scoreSummary, 0, len(scores))
	for _, score := range scores {
		items = append(items, scoreSummary{
			PlayerName: score.PlayerName,
			Score:      score.Score,
		})
	}

	return response.Success(c, map[string]interface{}{
		"scores": items,
	})
}
