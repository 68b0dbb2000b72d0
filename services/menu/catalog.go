package menu

import (
	"fmt"
	"strings"

	"tablebot/models"
)

// Catalog exposes the menu packs, addons, and recommendation logic the bot
// quotes from during a booking. The data is fixed at startup.
type Catalog struct {
	packs       map[string]models.MenuPack
	addons      map[string]models.Addon
	packOrder   []string
	addonOrder  []string
	eventRecs   map[string]models.EventRecommendation
	defaultRec  string
}

// NewCatalog builds the catalog from the static menu data.
func NewCatalog() *Catalog {
	c := &Catalog{
		packs:      make(map[string]models.MenuPack, len(menuPacks)),
		addons:     make(map[string]models.Addon, len(addons)),
		eventRecs:  eventRecommendations,
		defaultRec: "casual",
	}
	for _, p := range menuPacks {
		c.packs[p.Key] = p
		c.packOrder = append(c.packOrder, p.Key)
	}
	for _, a := range addons {
		c.addons[a.Key] = a
		c.addonOrder = append(c.addonOrder, a.Key)
	}
	return c
}

// Pack returns the menu pack for a key, case-insensitively.
func (c *Catalog) Pack(key string) (models.MenuPack, bool) {
	p, ok := c.packs[strings.ToLower(strings.TrimSpace(key))]
	return p, ok
}

// Addon returns the addon for a key, case-insensitively.
func (c *Catalog) Addon(key string) (models.Addon, bool) {
	a, ok := c.addons[strings.ToLower(strings.TrimSpace(key))]
	return a, ok
}

// Packs returns all menu packs in display order.
func (c *Catalog) Packs() []models.MenuPack {
	out := make([]models.MenuPack, 0, len(c.packOrder))
	for _, k := range c.packOrder {
		out = append(out, c.packs[k])
	}
	return out
}

// Addons returns all addons in display order.
func (c *Catalog) Addons() []models.Addon {
	out := make([]models.Addon, 0, len(c.addonOrder))
	for _, k := range c.addonOrder {
		out = append(out, c.addons[k])
	}
	return out
}

// EventRecommendation returns the suggested menu and addons for an event
// type, falling back to the casual recommendation for unknown events.
func (c *Catalog) EventRecommendation(eventType string) models.EventRecommendation {
	rec, ok := c.eventRecs[strings.ToLower(strings.TrimSpace(eventType))]
	if !ok {
		rec = c.eventRecs[c.defaultRec]
	}
	return rec
}

// FormatMenuList renders the pack catalog as chat text.
func (c *Catalog) FormatMenuList(lang string) string {
	var b strings.Builder
	for _, k := range c.packOrder {
		p := c.packs[k]
		b.WriteString(p.Name(lang))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("   Rs.%d/person - %s\n\n", p.PricePerPerson, p.Description(lang)))
	}
	if lang == models.LangTamil {
		b.WriteString("Pack name சொல்லுங்க (veg/nonveg/premium/deluxe) select பண்ண!")
	} else {
		b.WriteString("Just say the pack name (veg/nonveg/premium/deluxe) to select!")
	}
	return b.String()
}

// FormatAddonList renders the addon catalog as chat text.
func (c *Catalog) FormatAddonList(lang string) string {
	var b strings.Builder
	for _, k := range c.addonOrder {
		a := c.addons[k]
		b.WriteString(fmt.Sprintf("%s - Rs.%d\n", a.Name(lang), a.Price))
	}
	if lang == models.LangTamil {
		b.WriteString("\nவேண்டிய addon names சொல்லுங்க, அல்லது 'none' skip பண்ண!")
	} else {
		b.WriteString("\nSay the addon names you want, or 'none' to skip!")
	}
	return b.String()
}

// CalculateCost returns (base, addon, total) for a party size, pack, and
// addon selection. Unknown packs cost nothing; unknown addons are skipped.
func (c *Catalog) CalculateCost(people int, menuKey string, addonKeys []string) (int, int, int) {
	pack, ok := c.packs[strings.ToLower(menuKey)]
	if !ok {
		return 0, 0, 0
	}
	base := pack.PricePerPerson * people
	addonCost := 0
	for _, k := range addonKeys {
		if a, ok := c.addons[strings.ToLower(k)]; ok {
			addonCost += a.Price
		}
	}
	return base, addonCost, base + addonCost
}
