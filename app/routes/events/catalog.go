package events

import "github.com/dimasdaffa/fe-rembugwarga/app/models"

const placeholderImage = "/static/img/placeholder.svg"

var upcomingEvents = []models.Event{
	{
		ID:          1,
		Title:       "Gotong Royong Bulanan",
		Date:        "2025-01-25",
		Time:        "07:00 WIB",
		Location:    "Balai Desa",
		Description: "Kegiatan bersih-bersih lingkungan dan perawatan fasilitas umum",
		Image:       placeholderImage,
	},
	{
		ID:          2,
		Title:       "Rapat RT/RW",
		Date:        "2025-02-01",
		Time:        "19:30 WIB",
		Location:    "Aula Warga",
		Description: "Pembahasan program kerja dan anggaran bulan Februari",
		Image:       placeholderImage,
	},
	{
		ID:          3,
		Title:       "Pelatihan Digital",
		Date:        "2025-02-10",
		Time:        "14:00 WIB",
		Location:    "Ruang Serbaguna",
		Description: "Workshop penggunaan aplikasi digital untuk warga",
		Image:       placeholderImage,
	},
}

var gallery = []models.GalleryImage{
	{ID: 1, Src: placeholderImage, Alt: "Festival Desa", Category: "Perayaan"},
	{ID: 2, Src: placeholderImage, Alt: "Pemandangan Desa", Category: "Alam"},
	{ID: 3, Src: placeholderImage, Alt: "Olahraga Warga", Category: "Olahraga"},
	{ID: 4, Src: placeholderImage, Alt: "Kelas Memasak", Category: "Kuliner"},
	{ID: 5, Src: placeholderImage, Alt: "Bermain Anak", Category: "Anak-anak"},
	{ID: 6, Src: placeholderImage, Alt: "Arisan Lansia", Category: "Sosial"},
}

// UpcomingEvents returns a copy of the static event catalog.
func UpcomingEvents() []models.Event {
	out := make([]models.Event, len(upcomingEvents))
	copy(out, upcomingEvents)
	return out
}

// GalleryPreview returns the first n tiles, or all of them when n <= 0.
func GalleryPreview(n int) []models.GalleryImage {
	if n <= 0 || n > len(gallery) {
		n = len(gallery)
	}
	out := make([]models.GalleryImage, n)
	copy(out, gallery[:n])
	return out
}
