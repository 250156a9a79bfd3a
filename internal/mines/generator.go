package mines

import "fmt"

const (
	DefaultRows      = 20
	DefaultCols      = 15
	DefaultMineCount = 10
)

type GameParams struct {
	Rows, Cols, MineCount int
}

var DefaultParams = GameParams{
	Rows:      DefaultRows,
	Cols:      DefaultCols,
	MineCount: DefaultMineCount,
}

func (p GameParams) Unpack() (rows int, cols int, mc int) {
	return p.Rows, p.Cols, p.MineCount
}

func (p GameParams) Validate() error {
	if p.Rows <= 0 || p.Cols <= 0 || p.MineCount < 0 || p.MineCount > p.Rows*p.Cols {
		return InvalidParamsError(p)
	}
	return nil
}

func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Rows, p.Cols, p.MineCount)
}
