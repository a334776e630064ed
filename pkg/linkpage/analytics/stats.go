package analytics

import (
	"fmt"
	"sort"

	"github.com/linkpage/linkpage/pkg/linkpage/models"
)

const (
	topLinksLimit  = 5
	peakHoursLimit = 3
	topCitiesLimit = 5
)

// LinkStat is one row of the per-link click breakdown.
type LinkStat struct {
	LinkID uint   `json:"linkId"`
	Title  string `json:"title"`
	URL    string `json:"url"`
	Clicks int    `json:"clicks"`
}

// HourStat is one hour-of-day bucket, with the hour formatted as "H:00".
type HourStat struct {
	Hour   string `json:"hour"`
	Clicks int    `json:"clicks"`
}

// CityStat is one row of the city ranking.
type CityStat struct {
	City   string `json:"city"`
	Clicks int    `json:"clicks"`
}

// ReferrerStat is one row of the referrer ranking.
type ReferrerStat struct {
	Referrer string `json:"referrer"`
	Clicks   int    `json:"clicks"`
}

// Stats is the derived analytics payload for one profile. It is computed
// on demand from the raw clicks and never stored.
type Stats struct {
	TotalClicks      int            `json:"totalClicks"`
	ClicksByLink     []LinkStat     `json:"clicksByLink"`
	ClicksByHour     [24]int        `json:"clicksByHour"`
	ClicksByCity     map[string]int `json:"clicksByCity"`
	ClicksByCountry  map[string]int `json:"clicksByCountry"`
	ClicksByReferrer map[string]int `json:"clicksByReferrer"`
	TopLinks         []LinkStat     `json:"topLinks"`
	PeakHours        []HourStat     `json:"peakHours"`
	TopCities        []CityStat     `json:"topCities"`
	TopReferrers     []ReferrerStat `json:"topReferrers"`
}

// BuildStats computes the full analytics summary for a set of links and
// their clicks. It is a pure function of its input: identical input
// yields identical output, and a profile with no links or no clicks gets
// a zero-valued summary rather than an error.
//
// Per-link rows keep the order the links were given in, and that order is
// also the tie-break for equally-clicked links in the top ranking.
func BuildStats(links []models.Link) Stats {
	stats := Stats{
		ClicksByLink:     []LinkStat{},
		ClicksByCity:     map[string]int{},
		ClicksByCountry:  map[string]int{},
		ClicksByReferrer: map[string]int{},
		TopLinks:         []LinkStat{},
		PeakHours:        []HourStat{},
		TopCities:        []CityStat{},
		TopReferrers:     []ReferrerStat{},
	}

	for _, link := range links {
		stats.TotalClicks += len(link.Clicks)
		stats.ClicksByLink = append(stats.ClicksByLink, LinkStat{
			LinkID: link.ID,
			Title:  link.Title,
			URL:    link.URL,
			Clicks: len(link.Clicks),
		})

		for _, click := range link.Clicks {
			stats.ClicksByHour[click.Timestamp.Hour()]++
			if click.City != "" {
				stats.ClicksByCity[click.City]++
			}
			if click.Country != "" {
				stats.ClicksByCountry[click.Country]++
			}
			if click.Referrer != "" {
				stats.ClicksByReferrer[click.Referrer]++
			}
		}
	}

	stats.TopLinks = topLinks(stats.ClicksByLink)
	stats.PeakHours = peakHours(stats.ClicksByHour)
	stats.TopCities = topCities(stats.ClicksByCity)
	stats.TopReferrers = rankReferrers(stats.ClicksByReferrer)

	return stats
}

// topLinks returns the most clicked links, descending. The stable sort
// preserves the original link order on ties.
func topLinks(byLink []LinkStat) []LinkStat {
	ranked := make([]LinkStat, len(byLink))
	copy(ranked, byLink)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Clicks > ranked[j].Clicks
	})
	if len(ranked) > topLinksLimit {
		ranked = ranked[:topLinksLimit]
	}
	return ranked
}

// peakHours ranks the 24 hourly buckets descending by count. The buckets
// are built in ascending hour order, so the stable sort breaks ties by
// the lower hour.
func peakHours(byHour [24]int) []HourStat {
	ranked := make([]HourStat, len(byHour))
	for hour, clicks := range byHour {
		ranked[hour] = HourStat{
			Hour:   fmt.Sprintf("%d:00", hour),
			Clicks: clicks,
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Clicks > ranked[j].Clicks
	})
	return ranked[:peakHoursLimit]
}

type countEntry struct {
	key    string
	clicks int
}

// rankCounts converts a frequency map into ranked pairs, descending by
// count with ties broken by key so the output is deterministic.
func rankCounts(counts map[string]int) []countEntry {
	ranked := make([]countEntry, 0, len(counts))
	for key, clicks := range counts {
		ranked = append(ranked, countEntry{key, clicks})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].clicks != ranked[j].clicks {
			return ranked[i].clicks > ranked[j].clicks
		}
		return ranked[i].key < ranked[j].key
	})
	return ranked
}

func topCities(byCity map[string]int) []CityStat {
	ranked := rankCounts(byCity)
	if len(ranked) > topCitiesLimit {
		ranked = ranked[:topCitiesLimit]
	}
	cities := make([]CityStat, len(ranked))
	for i, entry := range ranked {
		cities[i] = CityStat{City: entry.key, Clicks: entry.clicks}
	}
	return cities
}

// rankReferrers returns the full referrer ranking; unlike cities it is
// not truncated.
func rankReferrers(byReferrer map[string]int) []ReferrerStat {
	ranked := rankCounts(byReferrer)
	referrers := make([]ReferrerStat, len(ranked))
	for i, entry := range ranked {
		referrers[i] = ReferrerStat{Referrer: entry.key, Clicks: entry.clicks}
	}
	return referrers
}
