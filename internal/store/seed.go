package store

import "github.com/lunara-store/go-store-backend/internal/domain"

// productSeed is the starter catalogue written into an empty store. The
// storefront front end filters on the category slugs below, so they are part
// of the API surface and must stay stable.
func productSeed() []domain.Product {
	return []domain.Product{
		{ID: "ring-luna-001", Name: "Luna Crescent Ring", Category: "rings", Price: 1499, Description: "92.5 sterling silver crescent-moon ring from the Lunara Moon Collection.", Image: "/static/img/ring-luna-001.jpg"},
		{ID: "ring-star-002", Name: "Starlit Band", Category: "rings", Price: 1299, Description: "Slim gold-plated band set with semi-precious white topaz.", Image: "/static/img/ring-star-002.jpg"},
		{ID: "pend-moon-001", Name: "Full Moon Pendant", Category: "pendants", Price: 1899, Description: "Hand-finished full-moon pendant with hypoallergenic alloy chain.", Image: "/static/img/pend-moon-001.jpg"},
		{ID: "pend-orbit-002", Name: "Orbit Drop Pendant", Category: "pendants", Price: 2199, Description: "Layered orbit pendant in sterling silver with gold-plated accents.", Image: "/static/img/pend-orbit-002.jpg"},
		{ID: "ear-phase-001", Name: "Moon Phase Studs", Category: "earrings", Price: 999, Description: "Nickel-free studs tracing the lunar phases, safe for sensitive skin.", Image: "/static/img/ear-phase-001.jpg"},
		{ID: "ear-eclipse-002", Name: "Eclipse Hoops", Category: "earrings", Price: 1599, Description: "Lightweight eclipse hoops with a brushed silver finish.", Image: "/static/img/ear-eclipse-002.jpg"},
		{ID: "brac-tide-001", Name: "Tide Chain Bracelet", Category: "bracelets", Price: 1799, Description: "Adjustable chain bracelet inspired by moonlit tides.", Image: "/static/img/brac-tide-001.jpg"},
		{ID: "brac-halo-002", Name: "Halo Cuff", Category: "bracelets", Price: 2499, Description: "Open halo cuff in gold plating over sterling silver.", Image: "/static/img/brac-halo-002.jpg"},
	}
}
