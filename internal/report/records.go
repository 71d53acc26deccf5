package report

import "github.com/preston-bernstein/cbb-daily-report/internal/domain/teams"

// SelectTeams keeps the season records of configured teams in provider order.
// Configured keys the provider does not know are returned as missing.
func SelectTeams(all []teams.SeasonInfo, configured TeamSet) (selected []teams.SeasonInfo, missing []string) {
	seen := make(map[string]bool, len(configured))
	selected = make([]teams.SeasonInfo, 0, len(configured))
	for _, info := range all {
		if !configured.Has(info.Key) {
			continue
		}
		selected = append(selected, info)
		seen[normalizeKey(info.Key)] = true
	}
	for _, key := range configured.Keys() {
		if !seen[key] {
			missing = append(missing, key)
		}
	}
	return selected, missing
}
