package models

// ============================================================================
// Content Registry
//
// The static descriptive records the page views render: menu, gallery,
// awards, reviews, and the café's contact details. Everything here is
// created once at process start and never mutated. Menu categories are
// kept as an ordered slice — the menu page must render them in registry
// order, not alphabetically.
// ============================================================================

// Café contact details, shared by the home page and the footer.
const (
	CafeName    = "Café Fausse"
	CafeAddress = "1234 Culinary Ave, Suite 100"
	CafeCity    = "Washington, DC 20002"
	CafePhone   = "(202) 555-4567"

	HoursWeekdays = "Monday–Saturday: 5:00PM – 11:00 PM"
	HoursSunday   = "Sunday: 5:00 PM – 9:00 PM"
)

// MenuItem is a single dish or drink on the menu.
type MenuItem struct {
	Name        string
	Description string
	Price       float64
}

// MenuCategory groups menu items under a heading.
type MenuCategory struct {
	Name  string
	Items []MenuItem
}

var menuCategories = []MenuCategory{
	{
		Name: "Starters",
		Items: []MenuItem{
			{Name: "Bruschetta", Description: "Fresh tomatoes, basil, olive oil, and toasted baguette slices", Price: 8.50},
			{Name: "Caesar Salad", Description: "Crisp romaine with homemade Caesar dressing", Price: 9.00},
		},
	},
	{
		Name: "Main Courses",
		Items: []MenuItem{
			{Name: "Grilled Salmon", Description: "Served with lemon butter sauce and seasonal vegetables", Price: 22.00},
			{Name: "Ribeye Steak", Description: "12 oz prime cut with garlic mashed potatoes", Price: 28.00},
			{Name: "Vegetable Risotto", Description: "Creamy Arborio rice with wild mushrooms", Price: 18.00},
		},
	},
	{
		Name: "Desserts",
		Items: []MenuItem{
			{Name: "Tiramisu", Description: "Classic Italian dessert with mascarpone", Price: 7.50},
			{Name: "Cheesecake", Description: "Creamy cheesecake with berry compote", Price: 7.00},
		},
	},
	{
		Name: "Beverages",
		Items: []MenuItem{
			{Name: "Red Wine (Glass)", Description: "A selection of Italian reds", Price: 10.00},
			{Name: "White Wine (Glass)", Description: "Crisp and refreshing", Price: 9.00},
			{Name: "Craft Beer", Description: "Local artisan brews", Price: 6.00},
			{Name: "Espresso", Description: "Strong and aromatic", Price: 3.00},
		},
	},
}

// MenuCategories returns the menu in registry order.
func MenuCategories() []MenuCategory {
	return menuCategories
}

// GalleryCategory classifies a gallery item.
type GalleryCategory string

const (
	GalleryInterior GalleryCategory = "interior"
	GalleryDish     GalleryCategory = "dish"
	GalleryEvent    GalleryCategory = "event"
)

// GalleryItem is one entry in the visual gallery.
type GalleryItem struct {
	ID          int
	Category    GalleryCategory
	Title       string
	Description string
}

var galleryItems = []GalleryItem{
	{ID: 1, Category: GalleryInterior, Title: "Main Dining Room", Description: "Our elegant main dining area"},
	{ID: 2, Category: GalleryInterior, Title: "Private Booth", Description: "Intimate dining experience"},
	{ID: 3, Category: GalleryInterior, Title: "Wine Cellar", Description: "Extensive wine selection"},
	{ID: 4, Category: GalleryDish, Title: "Grilled Salmon", Description: "Our signature grilled salmon dish"},
	{ID: 5, Category: GalleryDish, Title: "Ribeye Steak", Description: "Prime cut with garlic mashed potatoes"},
	{ID: 6, Category: GalleryDish, Title: "Tiramisu", Description: "Classic Italian dessert"},
	{ID: 7, Category: GalleryEvent, Title: "Wine Tasting", Description: "Monthly wine tasting events"},
	{ID: 8, Category: GalleryEvent, Title: "Chef Table", Description: "Exclusive chef table experience"},
}

// GalleryItems returns all gallery entries in display order.
func GalleryItems() []GalleryItem {
	return galleryItems
}

// GalleryItemByID looks up a gallery item; ok is false for unknown IDs.
func GalleryItemByID(id int) (item GalleryItem, ok bool) {
	for _, g := range galleryItems {
		if g.ID == id {
			return g, true
		}
	}
	return GalleryItem{}, false
}

// Award is one piece of recognition shown on the gallery and home pages.
type Award struct {
	Icon  string
	Title string
	Year  string
}

var awards = []Award{
	{Icon: "🏆", Title: "Culinary Excellence Award", Year: "2022"},
	{Icon: "⭐", Title: "Restaurant of the Year", Year: "2023"},
	{Icon: "🍽️", Title: "Best Fine Dining Experience", Year: "Foodie Magazine, 2023"},
}

// Awards returns the café's awards in display order.
func Awards() []Award {
	return awards
}

// Review is a published quote about the café.
type Review struct {
	Quote  string
	Source string
}

var reviews = []Review{
	{Quote: "Exceptional ambiance and unforgettable flavors. Every visit is a culinary journey!", Source: "Gourmet Review"},
	{Quote: "A must-visit restaurant for food enthusiasts. The attention to detail is remarkable.", Source: "The Daily Bite"},
	{Quote: "The perfect blend of traditional Italian and modern innovation. Simply outstanding!", Source: "Food & Wine Magazine"},
}

// Reviews returns the published reviews in display order.
func Reviews() []Review {
	return reviews
}
