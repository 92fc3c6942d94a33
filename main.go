// reversi-local is a terminal application to play Reversi with two players at one keyboard.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"reversi-local/config"
	"reversi-local/engine"
	"reversi-local/logging"
	"reversi-local/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagBoardSize  = flag.Int("boardsize", 0, "Board size (4-26)")
	flagCaptures   = flag.Bool("captures", false, "Flip outflanked pieces on placement")
	flagQuickStart = flag.Bool("play", false, "Start game immediately with defaults")
	flagFocus      = flag.Bool("focus", false, "Start in focus mode (fullscreen board)")
	flagDebug      = flag.Bool("debug", false, "Write debug-level entries to the log file")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.ReversiBoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var cfg *config.Config
var logger *zap.Logger

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("reversi-local %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger = newLogger(*flagDebug)
	defer logger.Sync()

	quickStart := *flagQuickStart || *flagBoardSize > 0 || *flagCaptures || *flagFocus
	flagGameCfg, err := buildGameConfigFromFlags()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	app = tview.NewApplication()
	app.EnableMouse(true)
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ◐ reversi ")

	gameHint = tview.NewTextView()
	gameHint.SetBorder(false)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameBoard = ui.NewReversiBoard(cfg, gameHint)
	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)

	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if gameBoard.IsTyping() {
			switch event.Key() {
			case tcell.KeyEnter:
				gameBoard.SubmitTyped()
			case tcell.KeyEsc:
				gameBoard.CancelTyping()
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				gameBoard.DeleteTyped()
			case tcell.KeyRune:
				gameBoard.TypeRune(event.Rune())
			}
			return nil
		}
		if event.Key() == tcell.KeyRune && event.Rune() == ':' {
			gameBoard.StartTyping()
			return nil
		}
		if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
			if gameBoard.SelectedTile() != nil {
				gameBoard.ResetSelection()
			} else {
				rootPage.SwitchToPage("setup")
			}
			return nil
		}
		switch event.Key() {
		case tcell.KeyUp:
			gameBoard.MoveSelection(0, -1)
		case tcell.KeyDown:
			gameBoard.MoveSelection(0, 1)
		case tcell.KeyLeft:
			gameBoard.MoveSelection(-1, 0)
		case tcell.KeyRight:
			gameBoard.MoveSelection(1, 0)
		case tcell.KeyEnter:
			selTile := gameBoard.SelectedTile()
			if selTile == nil {
				return nil
			}
			gameBoard.PlayMove(selTile.X, selTile.Y)
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				gameBoard.MoveSelection(-1, 0)
			case 'j':
				gameBoard.MoveSelection(0, 1)
			case 'k':
				gameBoard.MoveSelection(0, -1)
			case 'l':
				gameBoard.MoveSelection(1, 0)
			case 'r':
				gameBoard.Restart()
			case 'f':
				if gameBoard.ToggleFocusMode() {
					ui.BuildFocusLayout(gameFrame, gameBoard)
				} else {
					ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
				}
			}
		}
		return event
	})

	setupUI := ui.NewGameSetup(
		cfg.Game,
		func(gameCfg engine.GameConfig) {
			startGame(gameCfg)
		},
		func() {
			app.Stop()
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
	)

	colorConfig := ui.NewColorConfig(cfg, func() {
		gameBoard.SetConfig(cfg)
		rootPage.SwitchToPage("setup")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			rootPage.SwitchToPage("setup")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	rootPage.AddPage("setup", ui.CreateCenteredForm(setupUI.Form(), 60), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	if quickStart {
		startGame(flagGameCfg)
		if *flagFocus {
			gameBoard.SetFocusMode(true)
			ui.BuildFocusLayout(gameFrame, gameBoard)
		}
	}

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		logger.Error("application exited", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger opens the debug log, falling back to a no-op logger if the file cannot be created.
func newLogger(debug bool) *zap.Logger {
	path, err := logging.DefaultPath()
	if err != nil {
		return zap.NewNop()
	}
	l, err := logging.New(path, debug)
	if err != nil {
		return zap.NewNop()
	}
	return l.With(zap.String("version", Version))
}

// startGame starts a game with the given configuration.
func startGame(gameCfg engine.GameConfig) {
	ctrl, err := engine.NewController(gameCfg, engine.WithLogger(logger))
	if err != nil {
		modal := tview.NewModal().
			SetText(fmt.Sprintf("Failed to start game:\n%s", err.Error())).
			AddButtons([]string{"OK"}).
			SetDoneFunc(func(buttonIndex int, buttonLabel string) {
				rootPage.HidePage("error")
			})
		rootPage.AddPage("error", modal, true, true)
		return
	}
	gameBoard.ConnectEngine(ctrl)
	rootPage.SwitchToPage("gameview")
}

// buildGameConfigFromFlags creates a GameConfig from command-line flags.
func buildGameConfigFromFlags() (engine.GameConfig, error) {
	gameCfg := engine.GameConfig{
		BoardSize:    cfg.Game.DefaultBoardSize,
		FlipCaptures: cfg.Game.FlipCaptures || *flagCaptures,
	}
	if *flagBoardSize > 0 {
		if err := config.ValidateBoardSize(*flagBoardSize); err != nil {
			return gameCfg, fmt.Errorf("-boardsize: %w", err)
		}
		gameCfg.BoardSize = *flagBoardSize
	}
	return gameCfg, nil
}
