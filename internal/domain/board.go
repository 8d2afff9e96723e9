package domain

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type Token byte

const (
	None   = Token(0)
	Cross  = Token('X')
	Nought = Token('O')
)

func (t Token) Valid() bool {
	return t == Cross || t == Nought
}

func (t Token) Opponent() Token {
	switch t {
	case Cross:
		return Nought
	case Nought:
		return Cross
	default:
		return None
	}
}

func (t Token) String() string {
	if !t.Valid() {
		return " "
	}
	return string(rune(t))
}

func (t Token) MarshalText() ([]byte, error) {
	if t == None {
		return []byte{}, nil
	}
	if !t.Valid() {
		return nil, errors.WithMessagef(ErrInvalidToken, "token '%d'", byte(t))
	}
	return []byte{byte(t)}, nil
}

func (t *Token) UnmarshalText(text []byte) error {
	v, err := ParseToken(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ParseToken accepts "X" or "O" (any case); an empty string is None.
func ParseToken(s string) (Token, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return None, nil
	case "X":
		return Cross, nil
	case "O":
		return Nought, nil
	default:
		return None, errors.WithMessagef(ErrInvalidToken, "token '%s'", s)
	}
}

// Location is a cell of the board in row-major order; its value is the
// cell's index.
type Location uint8

const (
	TopLeft = Location(iota)
	TopCentre
	TopRight
	MiddleLeft
	MiddleCentre
	MiddleRight
	BottomLeft
	BottomCentre
	BottomRight
)

const boardSize = 9

var locationNames = [boardSize]string{
	"TopLeft", "TopCentre", "TopRight",
	"MiddleLeft", "MiddleCentre", "MiddleRight",
	"BottomLeft", "BottomCentre", "BottomRight",
}

func Locations() []Location {
	locs := make([]Location, boardSize)
	for i := range locs {
		locs[i] = Location(i)
	}
	return locs
}

// LocationFromSelector maps the player-facing numbers 1..9 onto locations.
func LocationFromSelector(n int) (Location, error) {
	if n < 1 || n > boardSize {
		return 0, errors.WithMessagef(ErrInvalidLocation, "selector %d is out of range 1-9", n)
	}
	return Location(n - 1), nil
}

func (l Location) Valid() bool {
	return l < boardSize
}

func (l Location) Selector() int {
	return int(l) + 1
}

func (l Location) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Location(%d)", uint8(l))
	}
	return locationNames[l]
}

func (l Location) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, errors.WithMessagef(ErrInvalidLocation, "location %d", uint8(l))
	}
	return []byte(locationNames[l]), nil
}

func (l *Location) UnmarshalText(text []byte) error {
	for i, name := range locationNames {
		if name == string(text) {
			*l = Location(i)
			return nil
		}
	}
	return errors.WithMessagef(ErrInvalidLocation, "location '%s'", text)
}

type Line [3]Location

// Lines lists the winning lines grouped as rows, columns, diagonals.
var Lines = [8]Line{
	{TopLeft, TopCentre, TopRight},
	{MiddleLeft, MiddleCentre, MiddleRight},
	{BottomLeft, BottomCentre, BottomRight},
	{TopLeft, MiddleLeft, BottomLeft},
	{TopCentre, MiddleCentre, BottomCentre},
	{TopRight, MiddleRight, BottomRight},
	{TopLeft, MiddleCentre, BottomRight},
	{TopRight, MiddleCentre, BottomLeft},
}

const (
	topRow = iota
	middleRow
	bottomRow
	leftColumn
	centreColumn
	rightColumn
	leftRightDiagonal
	rightLeftDiagonal
)

// Board maps every location to the token occupying it; None is empty.
// A cell, once set, is never overwritten.
type Board [boardSize]Token

func (b *Board) Play(loc Location, token Token) error {
	if !loc.Valid() {
		return errors.WithMessagef(ErrInvalidLocation, "location %d", uint8(loc))
	}
	if !token.Valid() {
		return errors.WithMessagef(ErrInvalidToken, "token '%d'", byte(token))
	}
	if b[loc] != None {
		return &OccupiedError{Location: loc, Token: b[loc]}
	}
	b[loc] = token
	return nil
}

func (b *Board) Get(loc Location) (Token, bool) {
	if !loc.Valid() || b[loc] == None {
		return None, false
	}
	return b[loc], true
}

func (b *Board) IsFull() bool {
	for _, t := range b {
		if t == None {
			return false
		}
	}
	return true
}

func (b *Board) Free() []Location {
	free := make([]Location, 0, boardSize)
	for i, t := range b {
		if t == None {
			free = append(free, Location(i))
		}
	}
	return free
}

func (b *Board) IsLineWin(line Line) bool {
	first := b[line[0]]
	return first != None && first == b[line[1]] && first == b[line[2]]
}

func (b *Board) IsTopRowWin() bool { return b.IsLineWin(Lines[topRow]) }
func (b *Board) IsMiddleRowWin() bool { return b.IsLineWin(Lines[middleRow]) }
func (b *Board) IsBottomRowWin() bool { return b.IsLineWin(Lines[bottomRow]) }
func (b *Board) IsLeftColumnWin() bool { return b.IsLineWin(Lines[leftColumn]) }
func (b *Board) IsCentreColumnWin() bool { return b.IsLineWin(Lines[centreColumn]) }
func (b *Board) IsRightColumnWin() bool { return b.IsLineWin(Lines[rightColumn]) }
func (b *Board) IsLeftRightDiagonalWin() bool { return b.IsLineWin(Lines[leftRightDiagonal]) }
func (b *Board) IsRightLeftDiagonalWin() bool { return b.IsLineWin(Lines[rightLeftDiagonal]) }

// Winner returns the token of the first complete line, checking rows, then
// columns, then diagonals.
func (b *Board) Winner() (Token, bool) {
	for _, line := range Lines {
		if b.IsLineWin(line) {
			return b[line[0]], true
		}
	}
	return None, false
}

const (
	cellWidth = 5
	separator = "+-----+-----+-----+\n"
)

func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString(separator)
	for row := 0; row < 3; row++ {
		sb.WriteByte('|')
		for col := 0; col < 3; col++ {
			sb.WriteString(center(b[row*3+col].String()))
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
		sb.WriteByte('|')
		for col := 0; col < 3; col++ {
			sb.WriteString(center(fmt.Sprint(row*3 + col + 1)))
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
		sb.WriteString(separator)
	}
	return sb.String()
}

func center(s string) string {
	left := (cellWidth - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", cellWidth-len(s)-left)
}
