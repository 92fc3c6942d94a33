package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground:     true,
		DrawLastPlayedBackground: true,
		ShowHints:                true,
		Colors: ConfigColors{
			BoardColor:        28,
			BoardColorAlt:     22,
			BlackColor:        232,
			WhiteColor:        255,
			HintColor:         149,
			CursorColorBG:     4,
			LastPlayedColorBG: 94,
		},
		Symbols: ConfigSymbols{
			BlackPiece:  '●',
			WhitePiece:  '●',
			Hint:        '·',
			BoardSquare: ' ',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameDefaults{
			DefaultBoardSize: 8,
			FlipCaptures:     false,
		},
	}
}
