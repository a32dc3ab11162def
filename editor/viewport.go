package editor

// Viewport is the window of document lines shown on screen. Lines
// [Top, Top+Height) are visible; Width bounds the addressable columns.
type Viewport struct {
	Top    int
	Height int
	Width  int
}

// VisibleRange returns the half-open range of visible lines, clamped to the
// document.
func (v *Viewport) VisibleRange(lineCount int) (start, end int) {
	start = v.Top
	if start < 0 {
		start = 0
	}
	if start > lineCount {
		start = lineCount
	}
	end = v.Top + v.Height
	if end > lineCount {
		end = lineCount
	}
	if end < start {
		end = start
	}
	return start, end
}

// Row is the screen row of a document line.
func (v *Viewport) Row(line int) int {
	return line - v.Top
}

func (v *Viewport) ScrollUp() bool {
	if v.Top <= 0 {
		return false
	}
	v.Top--
	return true
}

func (v *Viewport) ScrollDown(lineCount int) bool {
	if v.Top+v.Height >= lineCount {
		return false
	}
	v.Top++
	return true
}

// Resize applies a new window size. Top is kept when it is still valid and
// otherwise pulled back so the window stays inside the document and shows
// cursorLine.
func (v *Viewport) Resize(width, height, lineCount, cursorLine int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	v.Width = width
	v.Height = height
	v.Follow(cursorLine, lineCount)
}

// Follow moves Top as little as possible so that line is visible, then
// re-establishes the window invariant for lineCount.
func (v *Viewport) Follow(line, lineCount int) {
	if line < v.Top {
		v.Top = line
	}
	if line >= v.Top+v.Height {
		v.Top = line - v.Height + 1
	}
	v.clamp(lineCount)
}

func (v *Viewport) clamp(lineCount int) {
	if lineCount <= v.Height {
		v.Top = 0
		return
	}
	if v.Top+v.Height > lineCount {
		v.Top = lineCount - v.Height
	}
	if v.Top < 0 {
		v.Top = 0
	}
}

