package layout

// Notice modal padding and size
const (
	SpacingSM     = 2
	ModalWidthSM  = 50
	ModalHeightSM = 9
)

// Form widths
const (
	InputWidth    = 44
	ResultMinWide = 30
)

// CenterHorizontal calculates x position to center content
func CenterHorizontal(windowWidth, contentWidth int) int {
	if windowWidth <= contentWidth {
		return 0
	}
	return (windowWidth - contentWidth) / 2
}

// CenterVertical calculates y position to center content
func CenterVertical(windowHeight, contentHeight int) int {
	if windowHeight <= contentHeight {
		return 0
	}
	return (windowHeight - contentHeight) / 2
}
