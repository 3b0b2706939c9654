package config

// DisplayConfig holds settings for drawing the board.
type DisplayConfig struct {
	// ASCII draws pieces as FEN letters instead of Unicode chess glyphs
	ASCII bool

	// Flip draws the board with Black's back rank at the bottom
	Flip bool

	// ShowCoordinates labels files and ranks around the board
	ShowCoordinates bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		ShowCoordinates: true,
	}
}
