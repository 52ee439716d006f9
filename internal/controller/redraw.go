package controller

import "github.com/marcus/corkboard/internal/surface"

// Redraw projects the full note collection onto the renderer.
// Calling it twice with unchanged state yields the same surface.
func (c *Controller) Redraw() {
	all := c.store.All()
	c.r.SetVisibility(surface.ZonePlaceholder, len(all) == 0)

	cards := make([]surface.Card, len(all))
	for i, n := range all {
		cards[i] = surface.Card{
			ID:    n.ID,
			Title: n.Title,
			Text:  n.Text,
			Color: n.Color,
		}
	}
	c.r.RenderList(cards)
}
