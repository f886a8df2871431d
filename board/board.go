// Package board arranges interactive pieces in ranks and routes keys to the
// focused one.
package board

import (
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"

	"zupos/style"
)

// Piece is one square of a board.
type Piece interface {
	Update(msg tea.Msg) (Piece, tea.Cmd)
	Render() string
	Value() string
}

// Focusable is implemented by pieces that take input.
// Pieces without it are skipped by navigation.
type Focusable interface {
	Focusable() bool
}

// PieceMsg is emitted by pieces and stamped with their position by the board.
type PieceMsg interface {
	IsPieceMsg()
	SetPosition(rank, file int)
}

// Board is a 2D grid of pieces organized into ranks, which may be ragged.
// Navigation and Update return a new Board; ranks are cloned before any
// piece is replaced so earlier copies are not disturbed.
type Board struct {
	ranks    [][]Piece
	position position
	disabled bool
}

// New creates a board focused on the first focusable piece.
func New(ranks [][]Piece) Board {

	brd := Board{ranks: ranks}
	for r := range ranks {
		if f, ok := brd.focusableIn(r, 0); ok {
			brd.position = position{rank: r, file: f}
			break
		}
	}
	return brd
}

// Position returns rank and file of the focused piece.
func (brd Board) Position() (rank, file int) {
	return brd.position.rank, brd.position.file
}

// Piece returns the focused piece, nil on an empty board.
func (brd Board) Piece() Piece {
	return brd.At(brd.position.rank, brd.position.file)
}

// At returns the piece at rank, file or nil when out of range.
func (brd Board) At(rank, file int) Piece {
	if rank < 0 || rank >= len(brd.ranks) || file < 0 || file >= len(brd.ranks[rank]) {
		return nil
	}
	return brd.ranks[rank][file]
}

// Rank returns a copy of the pieces in rank.
func (brd Board) Rank(rank int) []Piece {
	if rank < 0 || rank >= len(brd.ranks) {
		return nil
	}
	return slices.Clone(brd.ranks[rank])
}

// Height is the number of ranks.
func (brd Board) Height() int {
	return len(brd.ranks)
}

// Set replaces the piece at rank, file.
func (brd Board) Set(rank, file int, pc Piece) Board {

	if brd.At(rank, file) == nil {
		return brd
	}

	ranks := slices.Clone(brd.ranks)
	ranks[rank] = slices.Clone(ranks[rank])
	ranks[rank][file] = pc
	brd.ranks = ranks
	return brd
}

// Focus moves focus to rank, file when that piece is focusable, otherwise to
// the nearest focusable piece in the rank.
func (brd Board) Focus(rank, file int) Board {

	if rank < 0 || rank >= len(brd.ranks) {
		return brd
	}
	if f, ok := brd.focusableIn(rank, file); ok {
		brd.position = position{rank: rank, file: f}
	}
	return brd
}

// SetDisabled stops input from reaching pieces.
func (brd Board) SetDisabled(disabled bool) Board {
	brd.disabled = disabled
	return brd
}

// Disabled reports whether input is blocked.
func (brd Board) Disabled() bool {
	return brd.disabled
}

// Update moves focus on tab/shift+tab and up/down, and hands anything else to
// the focused piece.
func (brd Board) Update(msg tea.Msg) (Board, tea.Cmd) {

	if brd.disabled {
		return brd, nil
	}

	if kp, ok := msg.(tea.KeyPressMsg); ok {
		switch kp.String() {
		case "tab":
			return brd.MoveRight(), nil
		case "shift+tab":
			return brd.MoveLeft(), nil
		case "up":
			return brd.MoveUp(), nil
		case "down":
			return brd.MoveDown(), nil
		}
	}

	pc := brd.Piece()
	if pc == nil {
		return brd, nil
	}

	pc, cmd := pc.Update(msg)
	brd = brd.Set(brd.position.rank, brd.position.file, pc)
	return brd, stamp(cmd, brd.position)
}

// MoveUp focuses the previous rank holding a focusable piece.
func (brd Board) MoveUp() Board {
	for r := brd.position.rank - 1; r >= 0; r-- {
		if f, ok := brd.focusableIn(r, brd.position.file); ok {
			brd.position = position{rank: r, file: f}
			return brd
		}
	}
	return brd
}

// MoveDown focuses the next rank holding a focusable piece.
func (brd Board) MoveDown() Board {
	for r := brd.position.rank + 1; r < len(brd.ranks); r++ {
		if f, ok := brd.focusableIn(r, brd.position.file); ok {
			brd.position = position{rank: r, file: f}
			return brd
		}
	}
	return brd
}

// MoveLeft focuses the previous focusable piece, wrapping to the prior rank.
func (brd Board) MoveLeft() Board {

	rank, file := brd.position.rank, brd.position.file
	for {
		file--
		if file < 0 {
			rank--
			if rank < 0 {
				return brd
			}
			file = len(brd.ranks[rank]) - 1
			if file < 0 {
				continue
			}
		}
		if focusable(brd.ranks[rank][file]) {
			brd.position = position{rank: rank, file: file}
			return brd
		}
	}
}

// MoveRight focuses the next focusable piece, wrapping to the following rank.
func (brd Board) MoveRight() Board {

	rank, file := brd.position.rank, brd.position.file
	for {
		file++
		if rank < len(brd.ranks) && file >= len(brd.ranks[rank]) {
			rank++
			file = 0
		}
		if rank >= len(brd.ranks) {
			return brd
		}
		if file < len(brd.ranks[rank]) && focusable(brd.ranks[rank][file]) {
			brd.position = position{rank: rank, file: file}
			return brd
		}
	}
}

// Render draws the board one rank per line, highlighting the focused piece.
func (brd Board) Render() string {

	lines := make([]string, len(brd.ranks))
	for r, rank := range brd.ranks {
		squares := make([]string, len(rank))
		for f, pc := range rank {
			squares[f] = pc.Render()
			if !brd.disabled && r == brd.position.rank && f == brd.position.file && focusable(pc) {
				squares[f] = style.HlCellStyle.Render(squares[f])
			}
		}
		lines[r] = strings.Join(squares, " ")
	}
	return strings.Join(lines, "\n")
}

// unexported

type position struct {
	rank int
	file int
}

// focusableIn finds the focusable piece in rank nearest to file.
func (brd Board) focusableIn(rank, file int) (int, bool) {

	squares := brd.ranks[rank]
	for f := min(file, len(squares)-1); f >= 0; f-- {
		if focusable(squares[f]) {
			return f, true
		}
	}
	for f := file + 1; f < len(squares); f++ {
		if focusable(squares[f]) {
			return f, true
		}
	}
	return 0, false
}

func focusable(pc Piece) bool {
	fc, ok := pc.(Focusable)
	return ok && fc.Focusable()
}

func stamp(cmd tea.Cmd, pos position) tea.Cmd {

	if cmd == nil {
		return nil
	}
	return func() tea.Msg {
		msg := cmd()
		if pm, ok := msg.(PieceMsg); ok {
			pm.SetPosition(pos.rank, pos.file)
		}
		return msg
	}
}
