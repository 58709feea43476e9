package news

import (
	"fmt"
	"math/rand"
	"strings"

	"stock-dashboard/src/models"
)

// -----------------------------------------------------------------------------
// Generator fabricates plausible market headlines from category templates.
// Purely cosmetic data for the dashboard news panel.
// -----------------------------------------------------------------------------

type newsTemplate struct {
	Category       string
	Headlines      []string
	Sources        []string
	Companies      []string
	Banks          []string
	Retailers      []string
	AffectedStocks [][]string
}

var newsTemplates = []newsTemplate{
	{
		Category: "monetary_policy",
		Headlines: []string{
			"Fed Signals Possible Rate {action} in Coming Months",
			"Central Bank Maintains {stance} Stance on Interest Rates",
			"Federal Reserve Chair Hints at {direction} Monetary Policy",
			"Markets Rally as Fed Indicates {tone} Economic Outlook",
		},
		Sources: []string{"Reuters", "Bloomberg", "CNBC"},
		AffectedStocks: [][]string{
			{"AAPL", "MSFT", "GOOGL"}, {"JPM", "BAC", "GS"}, {"TSLA", "AMZN", "NVDA"},
		},
	},
	{
		Category: "tech",
		Headlines: []string{
			"{company} Announces {achievement} Breaking Industry Records",
			"{company} Reports {performance} Quarterly Earnings",
			"{company} Unveils New {product} Strategy",
			"AI Breakthrough: {company} Leads Innovation Race",
		},
		Sources:   []string{"TechCrunch", "The Verge", "Wired"},
		Companies: []string{"Apple", "Microsoft", "NVIDIA", "Meta", "Amazon", "Google"},
		AffectedStocks: [][]string{
			{"AAPL", "MSFT", "NVDA"}, {"META", "GOOGL", "AMZN"}, {"TSLA", "CRM", "ADBE"},
		},
	},
	{
		Category: "energy",
		Headlines: []string{
			"Oil Prices {movement} as {event} Impacts Global Markets",
			"Energy Stocks {trend} Following {catalyst} Report",
			"Crude Oil Hits {milestone} Amid {situation}",
			"Renewable Energy Sector Shows {performance} Growth",
		},
		Sources: []string{"Bloomberg Energy", "Reuters Energy", "Oil & Gas Journal"},
		AffectedStocks: [][]string{
			{"XOM", "CVX", "NEE"}, {"DUK", "SO", "AEP"}, {"NRG", "XEL", "PSA"},
		},
	},
	{
		Category: "finance",
		Headlines: []string{
			"{bank} Reports {result} Q{quarter} Earnings",
			"Banking Sector {trend} on {factor} Performance",
			"{bank} Announces {action} to Boost Market Position",
			"Financial Services Stocks {movement} Following Fed Meeting",
		},
		Sources: []string{"Financial Times", "WSJ", "Bloomberg Markets"},
		Banks:   []string{"JPMorgan", "Bank of America", "Goldman Sachs", "Morgan Stanley"},
		AffectedStocks: [][]string{
			{"JPM", "BAC", "GS"}, {"V", "MA", "PYPL"}, {"SPGI", "JPM", "WMT"},
		},
	},
	{
		Category: "retail",
		Headlines: []string{
			"{retailer} Beats Expectations with {metric} Sales Growth",
			"E-commerce Boom: {company} Captures Market Share",
			"Retail Sector {trend} as Consumer Spending {direction}",
			"{company} Expands Operations with {initiative}",
		},
		Sources:   []string{"Retail Dive", "Business Insider", "CNBC"},
		Retailers: []string{"Walmart", "Amazon", "Target", "Costco"},
		AffectedStocks: [][]string{
			{"WMT", "AMZN", "ROST"}, {"DIS", "DASH", "SHOP"}, {"ETSY", "BJ", "AZO"},
		},
	},
}

var wordVariations = map[string][]string{
	"action":      {"Hold", "Cut", "Adjustment", "Increase"},
	"stance":      {"Cautious", "Hawkish", "Dovish", "Balanced"},
	"direction":   {"Accommodative", "Tightening", "Neutral", "Flexible"},
	"tone":        {"Optimistic", "Cautious", "Positive", "Mixed"},
	"achievement": {"Record Revenue", "Major Breakthrough", "Strategic Partnership", "Product Launch"},
	"performance": {"Strong", "Mixed", "Better-Than-Expected", "Solid"},
	"product":     {"Innovation", "Technology", "Development", "AI"},
	"movement":    {"Surge", "Climb", "Rally", "Rise"},
	"trend":       {"Rally", "Gain Momentum", "Show Strength", "Outperform"},
	"event":       {"OPEC Meeting", "Geopolitical Tensions", "Supply Chain Shifts", "Demand Surge"},
	"catalyst":    {"Production", "Inventory", "Demand", "Supply"},
	"milestone":   {"3-Month High", "6-Month High", "New Peak", "Record Level"},
	"situation":   {"Market Dynamics", "Global Trade Shifts", "Economic Recovery", "Supply Concerns"},
	"result":      {"Strong", "Record", "Better-than-Expected", "Impressive"},
	"quarter":     {"1", "2", "3", "4"},
	"factor":      {"Strong Earnings", "Market Confidence", "Economic Data", "Investor Sentiment"},
	"metric":      {"Record", "15%", "Strong", "Double-Digit"},
	"initiative":  {"New Store Openings", "Technology Investment", "Market Expansion", "Digital Transformation"},
}

var categoryExcerpts = map[string]string{
	"monetary_policy": "Federal Reserve officials indicate policy direction impacting tech and financial sectors, with markets responding to economic outlook statements.",
	"tech":            "Technology sector shows strong performance with innovative product launches and strategic initiatives driving investor confidence.",
	"energy":          "Energy markets respond to global supply dynamics and geopolitical developments affecting crude oil prices and renewable investments.",
	"finance":         "Banking sector demonstrates robust quarterly performance with strong loan growth and investment banking revenue.",
	"retail":          "Consumer spending patterns shift as major retailers adapt to e-commerce trends and changing shopping behaviors.",
}

var sentiments = []string{"positive", "negative", "neutral"}

// -----------------------------------------------------------------------------

type Generator struct {
	rng *rand.Rand
}

// -----------------------------------------------------------------------------

// NewGenerator creates a headline generator. A fixed seed gives reproducible
// output in tests; use a time-based seed in production wiring.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// -----------------------------------------------------------------------------

// Generate produces count news items, drawing each distinct category once
// before refilling with random templates.
func (g *Generator) Generate(count int) []models.MNewsItem {
	if count <= 0 {
		return []models.MNewsItem{}
	}

	items := make([]models.MNewsItem, 0, count)

	// One item per distinct template first, in shuffled order
	order := g.rng.Perm(len(newsTemplates))
	for _, idx := range order {
		if len(items) >= count {
			break
		}
		items = append(items, g.generateItem(newsTemplates[idx]))
	}

	// Fill remaining slots with random templates
	for len(items) < count {
		tpl := newsTemplates[g.rng.Intn(len(newsTemplates))]
		items = append(items, g.generateItem(tpl))
	}

	return items
}

// -----------------------------------------------------------------------------

// generateItem fills one template: placeholder substitution, affected stocks
// with random sentiment, and a relative timestamp 1-12 hours in the past.
func (g *Generator) generateItem(tpl newsTemplate) models.MNewsItem {
	headline := tpl.Headlines[g.rng.Intn(len(tpl.Headlines))]

	for key, values := range wordVariations {
		placeholder := "{" + key + "}"
		if strings.Contains(headline, placeholder) {
			headline = strings.ReplaceAll(headline, placeholder, values[g.rng.Intn(len(values))])
		}
	}

	headline = g.fillEntity(headline, "{company}", tpl.Companies, "Tech Giant")
	headline = g.fillEntity(headline, "{bank}", tpl.Banks, "Major Bank")
	headline = g.fillEntity(headline, "{retailer}", tpl.Retailers, "Major Retailer")

	stockSet := tpl.AffectedStocks[g.rng.Intn(len(tpl.AffectedStocks))]
	affected := make([]models.MAffectedStock, len(stockSet))
	for i, symbol := range stockSet {
		affected[i] = models.MAffectedStock{
			Symbol:    symbol,
			Sentiment: sentiments[g.rng.Intn(len(sentiments))],
		}
	}

	hoursAgo := g.rng.Intn(12) + 1
	plural := ""
	if hoursAgo > 1 {
		plural = "s"
	}

	excerpt, ok := categoryExcerpts[tpl.Category]
	if !ok {
		excerpt = "Market activity reflects evolving economic conditions."
	}

	return models.MNewsItem{
		Source:         tpl.Sources[g.rng.Intn(len(tpl.Sources))],
		Headline:       headline,
		Excerpt:        excerpt,
		AffectedStocks: affected,
		Timestamp:      fmt.Sprintf("%d hour%s ago", hoursAgo, plural),
		Category:       tpl.Category,
	}
}

// -----------------------------------------------------------------------------

func (g *Generator) fillEntity(headline, placeholder string, entities []string, fallback string) string {
	if !strings.Contains(headline, placeholder) {
		return headline
	}

	entity := fallback
	if len(entities) > 0 {
		entity = entities[g.rng.Intn(len(entities))]
	}
	return strings.ReplaceAll(headline, placeholder, entity)
}
