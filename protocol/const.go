package protocol

// 操作类型
const (
	OpRound = "round"
	OpRepay = "repay"
	OpReset = "reset"
	OpBoss  = "boss"
	OpUndo  = "undo"
	OpShow  = "show"
)
