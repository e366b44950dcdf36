package pages

import (
	"slices"
	"strings"
	"testing"
	"time"

	"cafefausse/models"
	"cafefausse/views/components"
)

func TestRenderHome(t *testing.T) {
	html := RenderHome(components.NewsletterState{})

	if !strings.Contains(html, "Where Culinary Art Meets Elegance") {
		t.Error("home should contain the hero title")
	}
	if !strings.Contains(html, `href="/reservations"`) {
		t.Error("home hero should link to the reservations page")
	}
	if !strings.Contains(html, "1234 Culinary Ave, Suite 100") {
		t.Error("home should show the café address")
	}
}

func TestRenderMenuKeepsCategoryOrder(t *testing.T) {
	html := RenderMenu(components.NewsletterState{})

	var last int
	for _, cat := range []string{"Starters", "Main Courses", "Desserts", "Beverages"} {
		idx := strings.Index(html, ">"+cat+"<")
		if idx < 0 {
			t.Fatalf("menu should contain category %s", cat)
		}
		if idx < last {
			t.Errorf("category %s rendered out of registry order", cat)
		}
		last = idx
	}

	if !strings.Contains(html, "$22.00") {
		t.Error("menu should show formatted prices")
	}
}

func TestRenderGalleryClosed(t *testing.T) {
	html := RenderGallery(models.Lightbox{}, components.NewsletterState{})

	if strings.Contains(html, "lightbox-content") {
		t.Error("no overlay should render when nothing is open")
	}
	if !strings.Contains(html, `href="/gallery?open=5"`) {
		t.Error("each gallery item should link to its overlay")
	}
	if !strings.Contains(html, "Culinary Excellence Award") {
		t.Error("gallery should render the awards section")
	}
	if !strings.Contains(html, "Gourmet Review") {
		t.Error("gallery should render the reviews section")
	}
}

func TestRenderGalleryOpen(t *testing.T) {
	var lb models.Lightbox
	item, _ := models.GalleryItemByID(5)
	lb.Open(item)

	html := RenderGallery(lb, components.NewsletterState{})

	if !strings.Contains(html, "lightbox-content") {
		t.Fatal("overlay should render for an opened item")
	}
	if !strings.Contains(html, "Prime cut with garlic mashed potatoes") {
		t.Error("overlay should show the opened item's description")
	}
	if !strings.Contains(html, `class="lightbox-backdrop"`) {
		t.Error("overlay backdrop should be a close link")
	}
}

func TestRenderReservationsForm(t *testing.T) {
	clk := models.FixedClock(time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC))
	form := models.NewReservationForm(clk)
	dates := slices.Collect(models.UpcomingDates(clk))
	times := slices.Collect(models.DiningTimes())

	html := RenderReservations(form, "", dates, times, components.NewsletterState{})

	if !strings.Contains(html, `action="/reservations"`) {
		t.Error("form should post to /reservations")
	}
	if !strings.Contains(html, `name="time_slot"`) {
		t.Error("form should carry the hidden combined time slot")
	}
	if !strings.Contains(html, `value="2025-05-21"`) {
		t.Error("date select should offer tomorrow")
	}
	if !strings.Contains(html, `value="22:00"`) {
		t.Error("time select should offer the last seating")
	}
	if strings.Contains(html, `value="22:30"`) {
		t.Error("time select must not offer seatings past 22:00")
	}
	if !strings.Contains(html, "10+ People (Large Party)") {
		t.Error("guest select should offer the large-party option")
	}
	if !strings.Contains(html, "(202) 555-4567") {
		t.Error("sidebar should show the phone number")
	}
}

func TestRenderReservationSectionSelections(t *testing.T) {
	clk := models.FixedClock(time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC))
	form := models.NewReservationForm(clk)
	form.SetField("name", "Jane Doe")
	form.SetField("guests", "6")
	form.SetDate("2025-06-01")
	form.SetTime("19:30")

	html := RenderReservationSection(form, "Error: Time slot full",
		slices.Collect(models.UpcomingDates(clk)),
		slices.Collect(models.DiningTimes()))

	if !strings.Contains(html, `value="Jane Doe"`) {
		t.Error("a failed submit should keep the typed name")
	}
	if !strings.Contains(html, `value="6" selected`) {
		t.Error("the chosen guest count should stay selected")
	}
	if !strings.Contains(html, `value="2025-06-01" selected`) {
		t.Error("the chosen date should stay selected")
	}
	if !strings.Contains(html, `value="19:30" selected`) {
		t.Error("the chosen time should stay selected")
	}
	if !strings.Contains(html, "Error: Time slot full") {
		t.Error("the outcome message should render")
	}
	if !strings.Contains(html, "message error") {
		t.Error("error outcomes should use the error style")
	}
}

func TestDateAndTimeLabels(t *testing.T) {
	if got := dateLabel("2025-06-01"); got != "Sun, Jun 1" {
		t.Errorf("unexpected date label %q", got)
	}
	if got := timeLabel("17:00"); got != "5:00 PM" {
		t.Errorf("unexpected time label %q", got)
	}
	if got := timeLabel("19:30"); got != "7:30 PM" {
		t.Errorf("unexpected time label %q", got)
	}
	// Bad input falls through unchanged
	if got := dateLabel("garbage"); got != "garbage" {
		t.Errorf("unexpected fallback %q", got)
	}
}
