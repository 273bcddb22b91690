package protocol

type ScoreInfo struct {
	Player string `json:"player"`
	Score  int    `json:"score"`
}

type WinTypeInfo struct {
	Label  string `json:"label"`
	Alias  string `json:"alias"`
	Points int    `json:"points"`
	Bonus  bool   `json:"bonus"`
}

type StateResponse struct {
	Boss      string      `json:"boss"`
	BossIndex int         `json:"bossIndex"`
	Scores    []ScoreInfo `json:"scores"`
	History   []string    `json:"history"`
}

type ErrorResponse struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}
