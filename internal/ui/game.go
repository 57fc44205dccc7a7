package ui

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ilyakm/chess2d/internal/export"
	"github.com/ilyakm/chess2d/internal/rules"
	"github.com/ilyakm/chess2d/internal/storage"
)

// UI Constants
const (
	BoardSize    = 640
	SquareSize   = BoardSize / 8
	StatusHeight = 40
	ScreenWidth  = BoardSize
	ScreenHeight = BoardSize + StatusHeight
)

// UIScale is the global HiDPI scale factor for all UI drawing.
// Set by Game.Layout() and read by the input handler.
var UIScale float64 = 1.0

// Game implements ebiten.Game: a local two-player chess board driven
// entirely by the rules engine.
type Game struct {
	// Core game state
	state rules.State
	legal rules.MoveMap

	// UI state
	selected  rules.Position
	dragging  bool
	lastFrom  rules.Position
	lastTo    rules.Position
	pending   rules.Position // pawn awaiting promotion, or NoPosition
	gameOver  bool
	result    string
	statusMsg string

	// Storage
	storage *storage.Storage
	prefs   *storage.Preferences

	// Components
	renderer *Renderer
	input    *InputHandler

	// HiDPI scaling
	scale float64
}

// NewGame creates a new chess game at the starting position.
func NewGame() *Game {
	theme := DefaultTheme()
	if path, err := storage.ThemePath(); err == nil {
		if loaded, err := LoadTheme(path); err != nil {
			log.Printf("Warning: Failed to load theme: %v", err)
		} else {
			theme = loaded
		}
	}

	g := &Game{
		state:    rules.NewState(),
		selected: rules.NoPosition,
		lastFrom: rules.NoPosition,
		lastTo:   rules.NoPosition,
		pending:  rules.NoPosition,
		renderer: NewRenderer(BoardSize, SquareSize, theme),
		input:    NewInputHandler(),
	}
	g.legal = g.state.LegalMoves()

	var err error
	g.storage, err = storage.New()
	if err != nil {
		log.Printf("Warning: Failed to initialize storage: %v", err)
	}
	g.loadPreferences()

	return g
}

// loadPreferences loads user preferences from storage.
func (g *Game) loadPreferences() {
	if g.storage == nil {
		g.prefs = storage.DefaultPreferences()
		return
	}

	var err error
	g.prefs, err = g.storage.LoadPreferences()
	if err != nil {
		log.Printf("Warning: Failed to load preferences: %v", err)
		g.prefs = storage.DefaultPreferences()
	}
	g.renderer.SetFlipped(g.prefs.BoardFlipped)
}

// savePreferences saves current preferences to storage.
func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}
	g.prefs.BoardFlipped = g.renderer.Flipped()
	g.prefs.LastPlayed = time.Now()
	if err := g.storage.SavePreferences(g.prefs); err != nil {
		log.Printf("Warning: Failed to save preferences: %v", err)
	}
}

// Update handles game logic updates.
func (g *Game) Update() error {
	g.input.Update()

	g.handleHotkeys()

	// A pending promotion blocks every other board interaction: until
	// it is resolved the piece on the back rank is still a pawn and
	// move generation must not run.
	if g.pending != rules.NoPosition {
		g.handlePromotionInput()
		return nil
	}

	if !g.gameOver {
		g.handleBoardInput()
	}

	return nil
}

// handleHotkeys processes global keyboard shortcuts.
func (g *Game) handleHotkeys() {
	if IsKeyJustPressed(ebiten.KeyN) {
		g.NewGameAction()
	}
	if IsKeyJustPressed(ebiten.KeyF) {
		g.renderer.SetFlipped(!g.renderer.Flipped())
		g.savePreferences()
	}
	if IsKeyJustPressed(ebiten.KeyD) {
		g.prefs.ShowMoveDots = !g.prefs.ShowMoveDots
		g.savePreferences()
	}
	if IsKeyJustPressed(ebiten.KeyE) {
		g.exportSnapshot()
	}
}

// handleBoardInput processes mouse interactions with the board.
func (g *Game) handleBoardInput() {
	mx, my := g.input.MousePosition()

	if g.input.IsLeftJustPressed() {
		pos := g.renderer.ScreenToPosition(mx, my)
		if pos == rules.NoPosition {
			g.clearSelection()
			return
		}

		// Clicking a legal destination commits the move.
		if g.selected != rules.NoPosition && g.legal[g.selected].Contains(pos) {
			g.commitMove(g.selected, pos)
			return
		}

		// Clicking our own piece selects it and starts a drag.
		if piece, ok := g.state.Board[pos]; ok && piece.Color() == g.state.ToMove {
			g.selected = pos
			g.dragging = true
			return
		}

		g.clearSelection()
		return
	}

	if g.dragging && g.input.IsLeftJustReleased() {
		target := g.renderer.ScreenToPosition(mx, my)
		if target != rules.NoPosition && target != g.selected && g.legal[g.selected].Contains(target) {
			g.commitMove(g.selected, target)
			return
		}
		// Invalid drop: keep the selection for a follow-up click.
		g.dragging = false
	}
}

// handlePromotionInput processes clicks on the promotion picker.
func (g *Game) handlePromotionInput() {
	if !g.input.IsLeftJustPressed() {
		return
	}
	mx, my := g.input.MousePosition()
	kind, ok := g.renderer.PromotionKindAt(mx, my)
	if !ok {
		return
	}
	g.state = g.state.ResolvePromotion(g.pending, kind)
	g.pending = rules.NoPosition
	g.refreshMoves()
}

// commitMove applies a legal move and advances the game.
func (g *Game) commitMove(from, to rules.Position) {
	next, promotion := g.state.ApplyMove(from, to)
	g.state = next
	g.lastFrom, g.lastTo = from, to
	g.clearSelection()

	if promotion != rules.NoPosition {
		g.pending = promotion
		g.legal = nil // stale until the promotion is resolved
		return
	}
	g.refreshMoves()
}

// refreshMoves recomputes the legal-move map and detects the end of
// the game: an empty map is checkmate when the side to move is in
// check, stalemate otherwise.
func (g *Game) refreshMoves() {
	g.legal = g.state.LegalMoves()
	if len(g.legal) > 0 {
		return
	}

	g.gameOver = true
	g.savePreferences()
	if g.state.InCheck(g.state.ToMove) {
		winner := g.state.ToMove.Other()
		g.result = fmt.Sprintf("%v wins by checkmate", winner)
		g.recordGame(winner == rules.White)
	} else {
		g.result = "Draw by stalemate"
		g.recordGameDraw()
	}
}

func (g *Game) recordGame(whiteWon bool) {
	if g.storage == nil {
		return
	}
	outcome := storage.OutcomeBlackWins
	if whiteWon {
		outcome = storage.OutcomeWhiteWins
	}
	if err := g.storage.RecordGame(outcome); err != nil {
		log.Printf("Warning: Failed to record game: %v", err)
	}
}

func (g *Game) recordGameDraw() {
	if g.storage == nil {
		return
	}
	if err := g.storage.RecordGame(storage.OutcomeStalemate); err != nil {
		log.Printf("Warning: Failed to record game: %v", err)
	}
}

// exportSnapshot writes the current position as an SVG file into the
// snapshot directory.
func (g *Game) exportSnapshot() {
	dir, err := storage.SnapshotDir()
	if err != nil {
		log.Printf("Warning: Failed to resolve snapshot dir: %v", err)
		return
	}
	path := filepath.Join(dir, time.Now().Format("20060102-150405")+".svg")
	if err := export.WriteSVGFile(path, g.state); err != nil {
		log.Printf("Warning: Failed to export snapshot: %v", err)
		return
	}
	g.statusMsg = "Saved " + path
	log.Printf("Exported snapshot to %s", path)
}

// clearSelection clears the current selection.
func (g *Game) clearSelection() {
	g.selected = rules.NoPosition
	g.dragging = false
}

// NewGameAction resets the game to the starting position.
func (g *Game) NewGameAction() {
	g.state = rules.NewState()
	g.legal = g.state.LegalMoves()
	g.lastFrom = rules.NoPosition
	g.lastTo = rules.NoPosition
	g.pending = rules.NoPosition
	g.gameOver = false
	g.result = ""
	g.statusMsg = ""
	g.clearSelection()
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetScale(g.scale)

	screen.Fill(g.renderer.Theme().Background)
	g.renderer.DrawBoard(screen)

	// Check highlight. Skipped while a promotion is unresolved, since
	// move generation (and with it check state) is not meaningful yet.
	if g.pending == rules.NoPosition && g.state.InCheck(g.state.ToMove) {
		g.renderer.DrawCheck(screen, rules.KingPositions(g.state.Board)[g.state.ToMove])
	}

	var dests rules.PositionSet
	if g.selected != rules.NoPosition && g.prefs.ShowMoveDots {
		dests = g.legal[g.selected]
	}
	g.renderer.DrawHighlights(screen, g.selected, g.lastFrom, g.lastTo, dests)

	skip := rules.NoPosition
	if g.dragging {
		skip = g.selected
	}
	g.renderer.DrawPieces(screen, g.state.Board, skip)

	if g.dragging {
		mx, my := g.input.MousePosition()
		g.renderer.DrawDraggedPiece(screen, g.state.Board[g.selected], mx, my)
	}

	if g.pending != rules.NoPosition {
		// The pawn to be replaced belongs to the side that just moved.
		g.renderer.DrawPromotionPicker(screen, g.state.ToMove.Other())
	}

	g.drawStatus(screen)
}

// drawStatus draws the status strip below the board.
func (g *Game) drawStatus(screen *ebiten.Image) {
	theme := g.renderer.Theme()

	var line string
	switch {
	case g.gameOver:
		line = g.result + ".  N for a new game"
	case g.pending != rules.NoPosition:
		line = "Choose a promotion piece"
	case g.statusMsg != "":
		line = g.statusMsg
	default:
		line = fmt.Sprintf("%v to move", g.state.ToMove)
	}

	scale := g.scale
	if scale < 1.0 {
		scale = 1.0
	}
	y := float64(BoardSize)*scale + 10*scale
	drawText(screen, line, boldFace, 10*scale, y, theme.TextColor)

	hint := "N new  F flip  D dots  E export"
	w, _ := measureText(hint, regularFace)
	drawText(screen, hint, regularFace, float64(ScreenWidth)*scale-w-10*scale, y+2*scale, theme.TextColor)
}

// Layout returns the game's screen dimensions, scaled for HiDPI.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scale = ebiten.Monitor().DeviceScaleFactor()
	if g.scale < 1.0 {
		g.scale = 1.0
	}
	UIScale = g.scale
	return int(float64(ScreenWidth) * g.scale), int(float64(ScreenHeight) * g.scale)
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.storage != nil {
		g.storage.Close()
	}
}
