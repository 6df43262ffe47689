package usecase

// MarketProfile parameterizes the search pipeline for a target market:
// which store domains count as regional, which context terms enrich the
// query, and which locale bias parameters go to the search provider.
// Earlier iterations of this tool duplicated the whole pipeline per market;
// the profile keeps one pipeline and makes the market a value.
type MarketProfile struct {
	Name string

	// ContextTerms are fashion/clothing vocabulary appended to built queries.
	ContextTerms []string
	// LocaleTerms bias the query toward the market's currency and region.
	LocaleTerms []string
	// QuerySuffix is a fixed commerce suffix added to the provider query.
	QuerySuffix string

	// StoreDomains is the allowlist of known shopping sites. An item whose
	// display domain matches one of these is kept and flagged as a regional
	// store for ranking.
	StoreDomains []string

	// ShoppingKeywords feed the relevance score (+5 per keyword present).
	ShoppingKeywords []string

	// Provider locale bias parameters.
	GeoLocation      string // gl
	CountryRestrict  string // cr
	LanguageRestrict string // lr
}

// EUMarketProfile returns the Dutch/EU market profile.
func EUMarketProfile() MarketProfile {
	return MarketProfile{
		Name:         "eu",
		ContextTerms: []string{"fashion", "clothing", "dames"},
		LocaleTerms:  []string{"EUR", "euro"},
		QuerySuffix:  "shop buy price store fashion EUR",
		StoreDomains: []string{
			"zalando.nl", "zalando.de", "zalando.be", "zalando.fr",
			"bol.com", "wehkamp.nl", "hm.com", "zara.com", "asos.com",
			"aboutyou.nl", "aboutyou.de", "esprit.nl", "mango.com",
			"uniqlo.com", "cos.com", "stories.com", "monki.com",
			"amazon.nl", "amazon.de", "etos.nl", "douglas.nl",
		},
		ShoppingKeywords: []string{
			"buy", "shop", "store", "sale", "price",
			"fashion", "clothing", "dress", "women", "dames",
		},
		GeoLocation:      "nl",
		CountryRestrict:  "countryNL|countryDE|countryBE|countryFR|countryUK",
		LanguageRestrict: "lang_en|lang_nl",
	}
}

// GenericMarketProfile returns the market-agnostic profile used before the
// EU specialization existed.
func GenericMarketProfile() MarketProfile {
	return MarketProfile{
		Name:         "generic",
		ContextTerms: []string{"fashion", "clothing", "style"},
		LocaleTerms:  nil,
		QuerySuffix:  "shop buy price store fashion",
		StoreDomains: []string{
			"amazon", "ebay", "zalando", "asos", "hm", "zara", "uniqlo",
			"nordstrom", "macys", "target", "walmart", "etsy", "shopify",
		},
		ShoppingKeywords: []string{
			"buy", "shop", "store", "sale", "price",
			"fashion", "clothing", "dress", "women",
		},
		GeoLocation:     "us",
		CountryRestrict: "countryUS",
	}
}

// ProfileByName resolves a configured profile name, defaulting to EU.
func ProfileByName(name string) MarketProfile {
	if name == "generic" {
		return GenericMarketProfile()
	}
	return EUMarketProfile()
}
