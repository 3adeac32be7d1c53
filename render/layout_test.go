package render

import "testing"

func TestNewLayoutCentersBoard(t *testing.T) {
	l := NewLayout(80, 24, 3, 3)

	if l.Board != (Rect{X: 25, Y: 5, W: 29, H: 14}) {
		t.Fatalf("board = %+v", l.Board)
	}
	if l.HUD.Y != 3 {
		t.Errorf("HUD.Y = %d, want 3", l.HUD.Y)
	}
	if l.Footer.Y != 19 {
		t.Errorf("Footer.Y = %d, want 19", l.Footer.Y)
	}
	if len(l.Cells) != 9 {
		t.Fatalf("cells = %d, want 9", len(l.Cells))
	}
	if l.Cells[1] != (Rect{X: 35, Y: 5, W: 9, H: 4}) {
		t.Errorf("cell 1 = %+v", l.Cells[1])
	}
	if l.Cells[3] != (Rect{X: 25, Y: 10, W: 9, H: 4}) {
		t.Errorf("cell 3 = %+v", l.Cells[3])
	}
	if !l.Fits() {
		t.Error("3x3 board should fit 80x24")
	}
}

func TestLayoutCellAt(t *testing.T) {
	l := NewLayout(80, 24, 3, 3)

	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"first cell corner", 25, 5, 0},
		{"gap between cells", 34, 5, -1},
		{"second cell far corner", 43, 8, 1},
		{"last cell", 53, 18, 8},
		{"outside board", 0, 0, -1},
		{"below board", 30, 19, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.CellAt(tt.x, tt.y); got != tt.want {
				t.Errorf("CellAt(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestLayoutTooSmall(t *testing.T) {
	l := NewLayout(20, 10, 3, 3)
	if l.Fits() {
		t.Error("3x3 board should not fit 20x10")
	}
	if l.Board.X != 0 || l.HUD.Y != 0 {
		t.Errorf("offsets must clamp at zero, got board.X=%d hud.Y=%d", l.Board.X, l.HUD.Y)
	}
}
