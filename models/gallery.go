package models

// Lightbox tracks the single gallery item currently opened in the
// overlay. Opening an item replaces any previously opened one; there is
// no queue and nothing persists across requests.
type Lightbox struct {
	current *GalleryItem
}

// Open shows the given item, replacing whatever was open before.
func (l *Lightbox) Open(item GalleryItem) {
	l.current = &item
}

// Close clears the overlay.
func (l *Lightbox) Close() {
	l.current = nil
}

// Current returns the opened item; ok is false when the overlay is closed.
func (l *Lightbox) Current() (item GalleryItem, ok bool) {
	if l.current == nil {
		return GalleryItem{}, false
	}
	return *l.current, true
}
