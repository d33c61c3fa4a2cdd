package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground: true,
		Colors: ConfigColors{
			HiddenColor:    244,
			HiddenColorAlt: 245,
			RevealedColor:  252,
			FlagColor:      196,
			MineColor:      232,
			CursorColorBG:  4,
			// 1 blue, 2 green, 3 red, 4 navy, 5 maroon, 6 teal, 7 black, 8 gray
			Digits: [8]int{21, 28, 160, 18, 88, 30, 16, 240},
		},
		Symbols: ConfigSymbols{
			Hidden: '■',
			Flag:   '⚑',
			Mine:   '✹',
			Blank:  '·',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameSettings{
			Size:  10,
			Mines: 10,
		},
	}
}
