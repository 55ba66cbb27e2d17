package geo

import "fmt"

// Direction is a direction along one of the coordinate axes.
type Direction int

const (
	NONE Direction = iota

	Up
	Down
	Left
	Right
)

// Vector is the unit vector pointing in the direction, e.g. (0, 1) for Up.
func (d Direction) Vector() *Point {
	switch d {
	case Up:
		return NewPoint(0, 1)
	case Down:
		return NewPoint(0, -1)
	case Left:
		return NewPoint(-1, 0)
	case Right:
		return NewPoint(1, 0)
	default:
		return NewPoint(0, 0)
	}
}

// Multiply scales the direction's unit vector, e.g. Up.Multiply(3) is (0, 3).
func (d Direction) Multiply(f float64) *Point {
	return d.Vector().Multiply(f)
}

func (d Direction) IsHorizontal() bool {
	return d == Left || d == Right
}

func (d Direction) IsVertical() bool {
	return d == Up || d == Down
}

func (d Direction) GetOpposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

func (d Direction) ToString() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return ""
	}
}

func (d Direction) String() string {
	return d.ToString()
}

func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return NONE, fmt.Errorf("unknown direction %q", s)
	}
}
