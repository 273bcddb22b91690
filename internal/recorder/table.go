package recorder

import (
	"github.com/lonng/mjrecorder/pkg/constant"
	"github.com/lonng/mjrecorder/pkg/errutil"
	"github.com/pkg/errors"
)

// WinType 胡牌类型及其基础分
type WinType struct {
	Kind   constant.WinKind
	Label  string
	Points int
	Bonus  bool // 杠: 不翻倍庄家, 不过庄
}

// Table win-type table, keyed by kind
type Table struct {
	types map[constant.WinKind]WinType
}

// DefaultTable returns the table with the default base points
func DefaultTable() Table {
	t, _ := NewTable(nil)
	return t
}

// NewTable builds a table from the default one, overrides maps a label or an
// alias to new base points
func NewTable(overrides map[string]int) (Table, error) {
	t := Table{types: make(map[constant.WinKind]WinType, len(constant.AllWinKinds))}
	for _, k := range constant.AllWinKinds {
		t.types[k] = WinType{
			Kind:   k,
			Label:  k.String(),
			Points: k.Points(),
			Bonus:  k.IsBonus(),
		}
	}

	for label, p := range overrides {
		k, ok := constant.ParseWinKind(label)
		if !ok {
			return Table{}, errors.Wrapf(errutil.ErrUnknownWinType, "label=%s", label)
		}
		if p <= 0 {
			return Table{}, errors.Wrapf(errutil.ErrIllegalParameter, "points=%d label=%s", p, label)
		}
		wt := t.types[k]
		wt.Points = p
		t.types[k] = wt
	}
	return t, nil
}

// Lookup finds a win type by label or alias
func (t Table) Lookup(label string) (WinType, error) {
	k, ok := constant.ParseWinKind(label)
	if !ok {
		return WinType{}, errors.Wrapf(errutil.ErrUnknownWinType, "label=%s", label)
	}
	wt, ok := t.types[k]
	if !ok {
		return WinType{}, errors.Wrapf(errutil.ErrUnknownWinType, "label=%s", label)
	}
	return wt, nil
}

// Types all win types in display order
func (t Table) Types() []WinType {
	ret := make([]WinType, 0, len(t.types))
	for _, k := range constant.AllWinKinds {
		if wt, ok := t.types[k]; ok {
			ret = append(ret, wt)
		}
	}
	return ret
}
