package setting

import (
	"github.com/lonng/mjrecorder/internal/recorder"
	"github.com/lonng/mjrecorder/pkg/errutil"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

var logger = log.WithField("component", "setting")

// DefaultPlayers 东北西南, seating order of the paper score sheet
var DefaultPlayers = []string{"东", "北", "西", "南"}

// Game 牌局配置
type Game struct {
	Debug    bool
	Players  []string
	Boss     int
	WinTypes map[string]int // point overrides keyed by label or alias
}

// SetDefaults registers the default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("core.debug", false)
	v.SetDefault("game.players", DefaultPlayers)
	v.SetDefault("game.boss", 0)
}

// Load reads the game section and the win-type overrides from v
func Load(v *viper.Viper) (*Game, error) {
	SetDefaults(v)

	g := &Game{
		Debug:    v.GetBool("core.debug"),
		Players:  v.GetStringSlice("game.players"),
		Boss:     v.GetInt("game.boss"),
		WinTypes: map[string]int{},
	}

	for label, raw := range v.GetStringMap("wintypes") {
		p, err := cast.ToIntE(raw)
		if err != nil {
			return nil, errors.Wrapf(errutil.ErrInvalidNumber, "wintypes.%s=%v", label, raw)
		}
		g.WinTypes[label] = p
	}

	logger.Debugf("牌局配置: 玩家=%v 庄家=%d 胡牌分数=%v", g.Players, g.Boss, g.WinTypes)
	return g, nil
}

// Recorder builds a recorder from the configuration
func (g *Game) Recorder(opts ...recorder.Option) (*recorder.Recorder, error) {
	table, err := recorder.NewTable(g.WinTypes)
	if err != nil {
		return nil, err
	}

	opts = append([]recorder.Option{recorder.WithTable(table), recorder.WithBoss(g.Boss)}, opts...)
	return recorder.New(g.Players, opts...)
}
