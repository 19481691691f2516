package cache

import "fmt"

// Key builders for each Tier E key tuple. Centralized here so the
// orchestrator, enrichment service, and upstream client all agree on
// cache-key shape.

func ScoreboardKey(leagueCode, date string) string {
	return fmt.Sprintf("scoreboard|%s|%s", leagueCode, date)
}

func ScheduleKey(leagueCode, teamID string) string {
	return fmt.Sprintf("schedule|%s|%s", leagueCode, teamID)
}

func TeamKey(leagueCode, teamID string) string {
	return fmt.Sprintf("team|%s|%s", leagueCode, teamID)
}

func EventKey(leagueCode, eventID string) string {
	return fmt.Sprintf("event|%s|%s", leagueCode, eventID)
}

func GroupKey(leagueCode, groupID string) string {
	return fmt.Sprintf("group|%s|%s", leagueCode, groupID)
}

func RosterKey(leagueCode, teamID string) string {
	return fmt.Sprintf("roster|%s|%s", leagueCode, teamID)
}

func LeadersKey(leagueCode, teamID string, season int) string {
	return fmt.Sprintf("leaders|%s|%s|%d", leagueCode, teamID, season)
}
