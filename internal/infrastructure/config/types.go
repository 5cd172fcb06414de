package config

// DisplayConfig is the root config for display.json
type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
	WindowTitle  string `json:"windowTitle"`
}

// BoardConfig is the root config for board.json
type BoardConfig struct {
	Rows       int `json:"rows"`
	Cols       int `json:"cols"`
	TileWidth  int `json:"tileWidth"`
	TileHeight int `json:"tileHeight"`

	// RowImages has one sprite per row plus a trailing pedestal sprite.
	RowImages []string `json:"rowImages"`

	Pedestal PedestalConfig `json:"pedestal"`

	WaterRow  int `json:"waterRow"`
	FirstLane int `json:"firstLane"`
	LastLane  int `json:"lastLane"`

	PlayerSpawn   CellConfig   `json:"playerSpawn"`
	SpriteYOffset int          `json:"spriteYOffset"`
	Lanes         LaneConfig   `json:"lanes"`
	Sprites       SpriteConfig `json:"sprites"`

	DefaultLives int `json:"defaultLives"`
}

// PedestalConfig places the princess's pedestal tile.
type PedestalConfig struct {
	X   int `json:"x"`
	Y   int `json:"y"`
	Col int `json:"col"`
}

// CellConfig is a grid cell position.
type CellConfig struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// LaneConfig bounds the enemy speed roll per lane crossing.
type LaneConfig struct {
	MinSpeed float64 `json:"minSpeed"`
	MaxSpeed float64 `json:"maxSpeed"`
	Count    int     `json:"count"`
}

// SpriteConfig names the entity sprite keys.
type SpriteConfig struct {
	Enemy    string `json:"enemy"`
	Player   string `json:"player"`
	Princess string `json:"princess"`
	Gem      string `json:"gem"`
}
