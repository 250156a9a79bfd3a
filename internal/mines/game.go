package mines

import (
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// MineRevealedFunc is called when the player reveals a mine. The board is left
// untouched; what a hit means is up to the caller.
type MineRevealedFunc func(p Position)

// Reveal opens the cell at row, col. A cell with no neighbouring mines also
// opens its unopened neighbours, spreading through zero cells and stopping at
// numbered ones. The opened positions are returned in the order they opened.
//
// Opened cells are left alone. A mine is never opened: onMine is invoked
// instead, if not nil, whether or not the mine is flagged. Other flagged cells
// are left alone.
func (b *Board) Reveal(row, col int, onMine MineRevealedFunc) ([]Position, error) {
	c, err := b.at(row, col)
	if err != nil {
		return nil, err
	}
	if !b.annotated {
		return nil, ErrNotAnnotated
	}
	if c.State == Opened {
		return nil, nil
	}

	start := Position{row, col}
	if c.Mine {
		Log.WithFields(logrus.Fields{"row": row, "col": col}).Debug("mine revealed")
		if onMine != nil {
			onMine(start)
		}
		return nil, nil
	}
	if c.State == Flagged {
		return nil, nil
	}

	c.State = Opened
	opened := []Position{start}

	var todo celltodo
	if c.Adjacent == 0 {
		todo.push(start)
	}
	for p, ok := todo.pop(); ok; p, ok = todo.pop() {
		for n := range b.neighbors(p) {
			nc := &b.cells[n.Row*b.Cols+n.Col]
			if nc.State != Unopened {
				continue
			}
			nc.State = Opened
			opened = append(opened, n)
			if nc.Adjacent == 0 {
				todo.push(n)
			}
		}
	}

	if Log.IsLevelEnabled(logrus.DebugLevel) {
		Log.WithFields(logrus.Fields{
			"row":    row,
			"col":    col,
			"opened": len(opened),
			"board":  b.String(),
		}).Debug("revealed")
	}

	return opened, nil
}
