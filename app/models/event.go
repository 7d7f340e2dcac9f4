package models

// Event is a community activity shown on the public pages.
type Event struct {
	ID          int
	Title       string
	Date        string
	Time        string
	Location    string
	Description string
	Image       string
}

// GalleryImage is a photo tile on the public gallery.
type GalleryImage struct {
	ID       int
	Src      string
	Alt      string
	Category string
}
