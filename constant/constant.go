package constant

const (
	TARGET_FPS      = 24
	MIN_GRID_WIDTH  = 40
	MIN_GRID_HEIGHT = 20
	MIN_CUBE_SIZE   = 10
	MAX_CUBE_SIZE   = 35
	SIZE_DIVISOR    = 3
	IDLE_WAIT_MS    = 100
	CELL_PX_WIDTH   = 8
	CELL_PX_HEIGHT  = 16
	WINDOW_WIDTH    = 1200
	WINDOW_HEIGHT   = 800
	WINDOW_TITLE    = "aqcube"
)
