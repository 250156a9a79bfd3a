package mines

type celltodo []Position

func (std *celltodo) push(p Position) {
	*std = append(*std, p)
}

func (std *celltodo) pop() (Position, bool) {
	n := len(*std)
	if n == 0 {
		return Position{}, false
	}
	p := (*std)[n-1]
	*std = (*std)[:n-1]
	return p, true
}
