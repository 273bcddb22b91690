package constant

// WinKind 胡牌类型
type WinKind int

const (
	WinKindNone WinKind = iota
	//自己起窟窿
	WinKindSelfDealGap
	//自己起边赢
	WinKindSelfDealEdge
	//边赢
	WinKindEdge
	//窟窿
	WinKindGap
	//暗杠
	WinKindConcealedKong
	//明杠
	WinKindExposedKong
)

// AllWinKinds lists the recognized kinds in display order
var AllWinKinds = []WinKind{
	WinKindSelfDealGap,
	WinKindSelfDealEdge,
	WinKindEdge,
	WinKindGap,
	WinKindConcealedKong,
	WinKindExposedKong,
}

var labels = [...]string{
	WinKindNone:          "",
	WinKindSelfDealGap:   "自己起窟窿",
	WinKindSelfDealEdge:  "自己起边赢",
	WinKindEdge:          "边赢",
	WinKindGap:           "窟窿",
	WinKindConcealedKong: "暗杠",
	WinKindExposedKong:   "明杠",
}

var aliases = [...]string{
	WinKindNone:          "",
	WinKindSelfDealGap:   "self-deal-gap",
	WinKindSelfDealEdge:  "self-deal-edge",
	WinKindEdge:          "edge-win",
	WinKindGap:           "gap-win",
	WinKindConcealedKong: "concealed-kong",
	WinKindExposedKong:   "exposed-kong",
}

// 基础分
var points = [...]int{
	WinKindNone:          0,
	WinKindSelfDealGap:   4,
	WinKindSelfDealEdge:  2,
	WinKindEdge:          1,
	WinKindGap:           2,
	WinKindConcealedKong: 2,
	WinKindExposedKong:   1,
}

func (k WinKind) valid() bool {
	return k > WinKindNone && int(k) < len(labels)
}

func (k WinKind) String() string {
	if !k.valid() {
		return ""
	}
	return labels[k]
}

// Alias ascii name of the kind, accepted wherever a label is
func (k WinKind) Alias() string {
	if !k.valid() {
		return ""
	}
	return aliases[k]
}

// Points default base points
func (k WinKind) Points() int {
	if !k.valid() {
		return 0
	}
	return points[k]
}

// IsBonus 杠不翻倍庄家, 也不过庄
func (k WinKind) IsBonus() bool {
	return k == WinKindConcealedKong || k == WinKindExposedKong
}

// ParseWinKind accepts a label or an alias
func ParseWinKind(s string) (WinKind, bool) {
	for _, k := range AllWinKinds {
		if labels[k] == s || aliases[k] == s {
			return k, true
		}
	}
	return WinKindNone, false
}
