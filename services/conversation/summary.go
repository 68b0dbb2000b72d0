package conversation

import (
	"fmt"
	"strings"

	"tablebot/models"
)

// buildSummary renders the full booking recap shown before confirmation.
func (e *Engine) buildSummary(sess *models.Session) string {
	lang := sess.Language
	pack, ok := e.Catalog.Pack(sess.MenuPack)
	if !ok {
		pack, _ = e.Catalog.Pack("veg")
	}

	base, addonCost, total := e.Catalog.CalculateCost(sess.People, pack.Key, sess.Addons)
	seating := e.Catalog.SeatingFor(sess.People)

	var b strings.Builder
	divider := strings.Repeat("-", 25) + "\n"

	b.WriteString(e.Voice.SummaryIntro(lang, sess.Name))
	b.WriteString("\n\n")
	b.WriteString(divider)
	if lang == models.LangTamil {
		b.WriteString("*உங்க Booking Details*\n")
	} else {
		b.WriteString("*Your Booking Details*\n")
	}
	b.WriteString(divider)

	b.WriteString(fmt.Sprintf("Name: *%s*\n", sess.Name))
	if lang == models.LangTamil {
		b.WriteString(fmt.Sprintf("Guests: *%d பேர்*\n", sess.People))
	} else {
		b.WriteString(fmt.Sprintf("Guests: *%d people*\n", sess.People))
	}
	b.WriteString(fmt.Sprintf("Date: *%s*\n", sess.Date))
	b.WriteString(fmt.Sprintf("Time: *%s*\n", sess.Time))
	b.WriteString(fmt.Sprintf("Event: *%s*\n", strings.Title(sess.Event)))
	b.WriteString(fmt.Sprintf("Menu: *%s*\n", pack.Name(lang)))
	b.WriteString("Addons: " + e.addonNames(sess.Addons, lang) + "\n")
	b.WriteString("Seating: " + seating.Message(lang) + "\n\n")

	b.WriteString(seating.LayoutVisual)
	b.WriteString("\n\n")

	b.WriteString(divider)
	if lang == models.LangTamil {
		b.WriteString("*Cost Estimate*\n")
	} else {
		b.WriteString("*Estimated Cost*\n")
	}
	b.WriteString(divider)
	b.WriteString(fmt.Sprintf("Menu (%d x Rs.%d): Rs.%d\n", sess.People, pack.PricePerPerson, base))
	b.WriteString(fmt.Sprintf("Addons: Rs.%d\n", addonCost))
	b.WriteString(fmt.Sprintf("*Total: Rs.%d*\n", total))

	return b.String()
}

func (e *Engine) addonNames(keys []string, lang string) string {
	if len(keys) == 0 {
		if lang == models.LangTamil {
			return "இல்ல"
		}
		return "None"
	}
	names := make([]string, 0, len(keys))
	for _, key := range keys {
		if addon, ok := e.Catalog.Addon(key); ok {
			names = append(names, addon.Name(lang))
		}
	}
	return strings.Join(names, ", ")
}

// buildUnderstood recaps what a data-rich message already filled in, so the
// user sees their shortcut worked before the next question lands.
func (e *Engine) buildUnderstood(sess *models.Session, ent models.ExtractedEntities) string {
	lang := sess.Language

	var parts []string
	if sess.People > 0 && ent.People > 0 {
		if lang == models.LangTamil {
			parts = append(parts, fmt.Sprintf("%d பேர்", sess.People))
		} else {
			parts = append(parts, fmt.Sprintf("%d guests", sess.People))
		}
	}
	if sess.Date != "" && ent.ParsedDate != "" {
		parts = append(parts, sess.Date)
	}
	if sess.Time != "" && ent.ParsedTime != "" {
		parts = append(parts, sess.Time)
	}
	if sess.Event != "" && ent.EventType != "" {
		parts = append(parts, strings.Title(sess.Event))
	}
	if len(parts) == 0 {
		return ""
	}

	if lang == models.LangTamil {
		return "நான் புரிஞ்சுகிட்டது: " + strings.Join(parts, ", ")
	}
	return "I understood: " + strings.Join(parts, ", ")
}
