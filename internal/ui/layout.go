package ui

// Face geometry in terminal cells.
const (
	// FaceWidth is the width of the clock face.
	FaceWidth = 36

	// SpriteScale widens sprite pixels so they look square in a terminal.
	SpriteScale = 2

	// GlyphScale is the horizontal scale of the status glyphs.
	GlyphScale = 1
)

// Terminal size below which the face is replaced by a notice.
const (
	MinWidth  = FaceWidth + 2
	MinHeight = 16
)

// Log overlay limits.
const (
	// LogTailLines is the number of log lines read for the overlay.
	LogTailLines = 500
)
