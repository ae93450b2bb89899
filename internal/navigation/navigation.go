package navigation

// State is the cursor a session keeps over the image catalog.
//
// PageCounter is a logical page label. It only moves forward: Advance bumps it
// together with ImageIndex, Retreat leaves it alone, so after going back the two
// no longer line up.
type State struct {
	ImageIndex  int `json:"image_index"`
	PageCounter int `json:"page_counter"`
}

// New returns the state every session starts from
func New() State {
	return State{
		ImageIndex:  0,
		PageCounter: 1,
	}
}

// Advance moves to the next image and bumps the page counter.
// It is a no-op on the last image. Reports whether the state changed.
func (s *State) Advance(catalogSize int) bool {
	if s.ImageIndex >= catalogSize-1 {
		return false
	}
	s.ImageIndex++
	s.PageCounter++
	return true
}

// Retreat moves to the previous image. It is a no-op on the first image.
func (s *State) Retreat() bool {
	if s.ImageIndex <= 0 {
		return false
	}
	s.ImageIndex--
	return true
}

