package pages

import (
	"cafefausse/models"
	"cafefausse/views"
	"cafefausse/views/components"

	"github.com/rohanthewiz/element"
)

// RenderMenu renders the menu page from the content registry.
func RenderMenu(newsletter components.NewsletterState) string {
	return views.BaseLayout(views.PageData{
		Title:      "Our Menu",
		ActivePath: "/menu",
		Newsletter: newsletter,
	}, MenuContent{Categories: models.MenuCategories()})
}

// MenuContent renders the menu grouped by category, in registry order.
type MenuContent struct {
	Categories []models.MenuCategory
}

func (m MenuContent) Render(b *element.Builder) (x any) {
	b.DivClass("menu-page").R(
		b.DivClass("page-header").R(
			b.H1Class("page-title").T("Our Menu"),
			b.PClass("page-subtitle").T("Crafted with passion, served with excellence"),
		),
		b.Wrap(func() {
			element.ForEach(m.Categories, func(cat models.MenuCategory) {
				b.DivClass("menu-category").R(
					b.DivClass("category-header").R(
						b.H3().T(cat.Name),
					),
					b.DivClass("menu-items").R(
						b.Wrap(func() {
							element.ForEach(cat.Items, func(item models.MenuItem) {
								b.DivClass("menu-item").R(
									b.DivClass("item-info").R(
										b.H3Class("item-name").T(item.Name),
										b.PClass("item-description").T(item.Description),
									),
									b.DivClass("item-price").T(price(item.Price)),
								)
							})
						}),
					),
				)
			})
		}),
	)
	return
}
