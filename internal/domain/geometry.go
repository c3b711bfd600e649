package domain

import "errors"

var (
	// ErrOutOfBounds возвращается, когда клетка предмета выходит за границы коворкинга
	ErrOutOfBounds = errors.New("domain: item cell is outside coworking bounds")

	// ErrCellsOverlap возвращается, когда одна клетка занята более чем одним предметом
	ErrCellsOverlap = errors.New("domain: item cells overlap")
)

// AbsoluteCells переводит offsets предмета в абсолютные координаты
// относительно базовой точки. Чистая функция
func AbsoluteCells(base Point, offsets Offsets) []Point {
	cells := make([]Point, 0, len(offsets))
	for _, offset := range offsets {
		cells = append(cells, base.Add(offset))
	}
	return cells
}

// ValidateBounds проверяет, что все клетки лежат внутри сетки width x height
// Сетка нумеруется с нуля: допустимы 0 <= x < width, 0 <= y < height
func ValidateBounds(cells []Point, width, height int64) error {
	for _, cell := range cells {
		if cell.X < 0 || cell.Y < 0 || cell.X >= width || cell.Y >= height {
			return ErrOutOfBounds
		}
	}
	return nil
}

// ValidateNoOverlap проверяет, что ни одна клетка не встречается дважды
// Принимает объединение клеток всех предметов; порядок не важен,
// важна только кратность
func ValidateNoOverlap(cells []Point) error {
	seen := make(map[Point]struct{}, len(cells))
	for _, cell := range cells {
		if _, ok := seen[cell]; ok {
			return ErrCellsOverlap
		}
		seen[cell] = struct{}{}
	}
	return nil
}
