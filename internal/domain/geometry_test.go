package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbsoluteCellsTranslatesOffsets(t *testing.T) {
	base := Point{X: 2, Y: 3}
	offsets := Offsets{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}

	cells := AbsoluteCells(base, offsets)

	require.Len(t, cells, 3)
	assert.Equal(t, Point{X: 2, Y: 3}, cells[0])
	assert.Equal(t, Point{X: 3, Y: 3}, cells[1])
	assert.Equal(t, Point{X: 2, Y: 4}, cells[2])
}

func TestValidateBounds(t *testing.T) {
	inside := []Point{{X: 0, Y: 0}, {X: 4, Y: 4}}
	assert.NoError(t, ValidateBounds(inside, 5, 5))

	assert.ErrorIs(t, ValidateBounds([]Point{{X: 5, Y: 0}}, 5, 5), ErrOutOfBounds)
	assert.ErrorIs(t, ValidateBounds([]Point{{X: 0, Y: 5}}, 5, 5), ErrOutOfBounds)
	assert.ErrorIs(t, ValidateBounds([]Point{{X: -1, Y: 0}}, 5, 5), ErrOutOfBounds)
	assert.ErrorIs(t, ValidateBounds([]Point{{X: 0, Y: -1}}, 5, 5), ErrOutOfBounds)
}

func TestValidateNoOverlap(t *testing.T) {
	distinct := []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	assert.NoError(t, ValidateNoOverlap(distinct))

	duplicated := []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}
	assert.ErrorIs(t, ValidateNoOverlap(duplicated), ErrCellsOverlap)
}

// Два Г-образных предмета, которые вместе заполняют прямоугольник 2x3
// без единого пересечения
func TestTetrisLikePlacementFits(t *testing.T) {
	lShape := Offsets{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	jShape := Offsets{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 1}}

	first := AbsoluteCells(Point{X: 0, Y: 0}, lShape)
	second := AbsoluteCells(Point{X: 1, Y: 1}, jShape)

	union := append(append([]Point{}, first...), second...)

	assert.NoError(t, ValidateBounds(union, 2, 3))
	assert.NoError(t, ValidateNoOverlap(union))
}

func TestRoleCanBook(t *testing.T) {
	assert.True(t, RoleAdmin.CanBook())
	assert.True(t, RoleStudent.CanBook())
	assert.True(t, RoleVerifiedGuest.CanBook())
	assert.False(t, RoleGuest.CanBook())
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("verified_guest")
	require.NoError(t, err)
	assert.Equal(t, RoleVerifiedGuest, role)

	_, err = ParseRole("superuser")
	assert.Error(t, err)
}
