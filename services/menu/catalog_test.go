package menu

import (
	"strings"
	"testing"

	"tablebot/models"
)

func TestPackLookupIsCaseInsensitive(t *testing.T) {
	c := NewCatalog()

	p, ok := c.Pack(" Veg ")
	if !ok || p.Key != "veg" {
		t.Fatalf("Pack lookup failed: ok=%v key=%q", ok, p.Key)
	}
	if _, ok := c.Pack("unknown"); ok {
		t.Fatal("unknown pack must not resolve")
	}
}

func TestCalculateCost(t *testing.T) {
	c := NewCatalog()

	base, addonCost, total := c.CalculateCost(4, "veg", []string{"decoration", "cake"})
	if base != 4*399 {
		t.Fatalf("base = %d, want %d", base, 4*399)
	}
	if addonCost != 1500+800 {
		t.Fatalf("addonCost = %d, want %d", addonCost, 1500+800)
	}
	if total != base+addonCost {
		t.Fatalf("total = %d, want %d", total, base+addonCost)
	}
}

func TestCalculateCostUnknownPack(t *testing.T) {
	c := NewCatalog()

	base, addonCost, total := c.CalculateCost(4, "nope", []string{"cake"})
	if base != 0 || addonCost != 0 || total != 0 {
		t.Fatalf("unknown pack should cost nothing, got (%d, %d, %d)", base, addonCost, total)
	}
}

func TestCalculateCostSkipsUnknownAddons(t *testing.T) {
	c := NewCatalog()

	_, addonCost, _ := c.CalculateCost(2, "veg", []string{"cake", "spaceship"})
	if addonCost != 800 {
		t.Fatalf("addonCost = %d, want 800", addonCost)
	}
}

func TestEventRecommendationFallsBackToCasual(t *testing.T) {
	c := NewCatalog()

	rec := c.EventRecommendation("birthday")
	if rec.Menu == "" || rec.MessageEN == "" {
		t.Fatal("birthday recommendation should be populated")
	}

	unknown := c.EventRecommendation("moon landing")
	casual := c.EventRecommendation("casual")
	if unknown.Menu != casual.Menu {
		t.Fatalf("unknown event should fall back to casual, got %q", unknown.Menu)
	}
}

func TestSeatingFor(t *testing.T) {
	c := NewCatalog()

	cases := []struct {
		people   int
		typ      models.SeatingType
		tables   int
		capacity int
	}{
		{4, models.SeatingTable, 1, 6},
		{10, models.SeatingTable, 2, 12},
		{20, models.SeatingTable, 4, 24},
		{40, models.SeatingMiniHall, 6, 60},
		{100, models.SeatingBanquetHall, 11, 200},
	}
	for _, tc := range cases {
		got := c.SeatingFor(tc.people)
		if got.Type != tc.typ {
			t.Errorf("SeatingFor(%d).Type = %s, want %s", tc.people, got.Type, tc.typ)
		}
		if got.TablesNeeded != tc.tables {
			t.Errorf("SeatingFor(%d).TablesNeeded = %d, want %d", tc.people, got.TablesNeeded, tc.tables)
		}
		if got.Capacity != tc.capacity {
			t.Errorf("SeatingFor(%d).Capacity = %d, want %d", tc.people, got.Capacity, tc.capacity)
		}
		if got.LayoutVisual == "" {
			t.Errorf("SeatingFor(%d) missing layout visual", tc.people)
		}
	}
}

func TestFormatMenuListLocalized(t *testing.T) {
	c := NewCatalog()

	en := c.FormatMenuList(models.LangEnglish)
	if !strings.Contains(en, "Rs.399") {
		t.Fatal("menu list should show the veg pack price")
	}
	ta := c.FormatMenuList(models.LangTamil)
	if en == ta {
		t.Fatal("tamil menu list should differ from english")
	}
}

func TestFormatAddonListShowsPrices(t *testing.T) {
	c := NewCatalog()

	list := c.FormatAddonList(models.LangEnglish)
	if !strings.Contains(list, "Rs.1500") || !strings.Contains(list, "Rs.5000") {
		t.Fatal("addon list should show decoration and dj prices")
	}
}
