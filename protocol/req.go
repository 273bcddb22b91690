package protocol

// Request one scripted operation, the op field selects which of the other
// fields are read
type Request struct {
	Op string `json:"op"`

	Winner   string `json:"winner,omitempty"`
	WinTypes string `json:"winTypes,omitempty"`

	Giver    string `json:"giver,omitempty"`
	Points   int    `json:"points,omitempty"`
	Receiver string `json:"receiver,omitempty"`

	Boss   string `json:"boss,omitempty"` // name or seat index
	Scores []int  `json:"scores,omitempty"`
}
