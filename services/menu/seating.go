package menu

import (
	"fmt"

	"tablebot/models"
)

// SeatingFor recommends an arrangement for a party size: regular tables up
// to 20 guests, the mini hall up to 60, and the banquet hall beyond that.
func (c *Catalog) SeatingFor(people int) models.SeatingRecommendation {
	switch {
	case people <= 6:
		return models.SeatingRecommendation{
			Type:         models.SeatingTable,
			TablesNeeded: 1,
			Capacity:     6,
			MessageEN:    fmt.Sprintf("For %d guests, I'll arrange a nice cozy table. Perfect for intimate dining!", people),
			MessageTA:    fmt.Sprintf("%d பேருக்கு ஒரு நல்ல table arrange பண்றேன். Intimate dining-க்கு perfect!", people),
			LayoutVisual: tableVisual(people, 1),
		}
	case people <= 12:
		return models.SeatingRecommendation{
			Type:         models.SeatingTable,
			TablesNeeded: 2,
			Capacity:     12,
			MessageEN:    fmt.Sprintf("For %d guests, I'll set up 2 tables side by side. Nice family-style seating!", people),
			MessageTA:    fmt.Sprintf("%d பேருக்கு 2 tables பக்கத்துல arrange பண்றேன். Family-style seating!", people),
			LayoutVisual: tableVisual(people, 2),
		}
	case people <= 20:
		return models.SeatingRecommendation{
			Type:         models.SeatingTable,
			TablesNeeded: 4,
			Capacity:     24,
			MessageEN:    fmt.Sprintf("For %d guests, 4 tables in our main dining area. Comfortable & spacious!", people),
			MessageTA:    fmt.Sprintf("%d பேருக்கு main dining area-ல 4 tables. Comfortable & spacious!", people),
			LayoutVisual: tableVisual(people, 4),
		}
	case people <= 60:
		return models.SeatingRecommendation{
			Type:         models.SeatingMiniHall,
			TablesNeeded: people/8 + 1,
			HallName:     "Mini Banquet Hall",
			Capacity:     60,
			MessageEN:    fmt.Sprintf("For %d guests, I recommend our Mini Banquet Hall! Private space with buffet setup.", people),
			MessageTA:    fmt.Sprintf("%d பேருக்கு எங்க Mini Banquet Hall recommend பண்றேன்! Private space with buffet setup.", people),
			LayoutVisual: miniHallVisual(people),
		}
	default:
		return models.SeatingRecommendation{
			Type:         models.SeatingBanquetHall,
			TablesNeeded: people/10 + 1,
			HallName:     "Grand Banquet Hall",
			Capacity:     200,
			MessageEN:    fmt.Sprintf("Wow, %d guests! Our Grand Banquet Hall is perfect for you! Full celebration mode!", people),
			MessageTA:    fmt.Sprintf("Wow, %d பேர்! எங்க Grand Banquet Hall உங்களுக்கு perfect! Full celebration mode!", people),
			LayoutVisual: grandHallVisual(people),
		}
	}
}

func tableVisual(people, tables int) string {
	switch tables {
	case 1:
		return fmt.Sprintf(`
    +-------------+
    |  o   o   o  |
    | +---------+ |
    | |  TABLE  | |
    | +---------+ |
    |  o   o   o  |
    +-------------+
     %d Guests
`, people)
	case 2:
		return fmt.Sprintf(`
    +---------+ +---------+
    | o T1  o | | o T2  o |
    +---------+ +---------+
         %d Guests
`, people)
	default:
		return fmt.Sprintf(`
    +----+ +----+
    | T1 | | T2 |
    +----+ +----+
    +----+ +----+
    | T3 | | T4 |
    +----+ +----+
     %d Tables | %d Guests
`, tables, people)
	}
}

func miniHallVisual(people int) string {
	return fmt.Sprintf(`
    =========================
    |   MINI BANQUET HALL   |
    |  [ T ]  [ T ]  [ T ]  |
    |  [ T ]  [ T ]  [ T ]  |
    |      BUFFET AREA      |
    =========================
       Capacity: 60 | Guests: %d
`, people)
}

func grandHallVisual(people int) string {
	return fmt.Sprintf(`
    ================================
    |      GRAND BANQUET HALL      |
    |  [ T ]  [ T ]  [ T ]  [ T ]  |
    |  [ T ]  [ T ]  [ T ]  [ T ]  |
    |  [ T ]  [ T ]  [ T ]  [ T ]  |
    |        BUFFET COUNTER        |
    |            STAGE             |
    ================================
       Capacity: 200 | Guests: %d
`, people)
}
