package api

import "fmt"

// Coach-side endpoints. Available only to accounts the server flags as
// coaches; everyone else gets the server's own permission error.

// RosterEntry is one athlete on the coach's roster.
type RosterEntry struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Sex        *string  `json:"sex"`
	Bodyweight *float64 `json:"bodyweight"`
	SquatTM    *float64 `json:"squat_tm"`
	BenchTM    *float64 `json:"bench_tm"`
	DeadliftTM *float64 `json:"deadlift_tm"`
	Dots       float64  `json:"dots"`
	IsSelf     bool     `json:"is_self"`
}

// CoachRosterResponse lists the coach's athletes.
type CoachRosterResponse struct {
	Athletes []RosterEntry `json:"athletes"`
}

// CoachRoster fetches the coach's athlete roster.
func (c *Client) CoachRoster() (*CoachRosterResponse, error) {
	var resp CoachRosterResponse
	if err := c.get("/coach/mobile/roster", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// NamedAthlete is a bare athlete reference on the coach dashboard.
type NamedAthlete struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CoachDashboardResponse carries the coach's roster-wide counters.
type CoachDashboardResponse struct {
	Total            int            `json:"total"`
	TodayAssigned    int            `json:"today_assigned"`
	TodayLogged      int            `json:"today_logged"`
	MissedYesterday  int            `json:"missed_yesterday"`
	PendingApprovals int            `json:"pending_approvals"`
	PendingReviews   int            `json:"pending_reviews"`
	NoLog3Plus       []NamedAthlete `json:"no_log_3plus"`
}

// CoachDashboard fetches the coach dashboard counters.
func (c *Client) CoachDashboard() (*CoachDashboardResponse, error) {
	var resp CoachDashboardResponse
	if err := c.get("/coach/mobile/dashboard", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// KPIRow is one workout behind a coach dashboard counter.
type KPIRow struct {
	WorkoutID   int     `json:"workout_id"`
	AthleteID   int     `json:"athlete_id"`
	AthleteName string  `json:"athlete_name"`
	Date        *string `json:"date"`
	Label       *string `json:"label"`
	Status      *string `json:"status"`
}

// KPIResponse expands one dashboard counter into its workouts. Title is
// server-provided display text; Kind echoes the request.
type KPIResponse struct {
	Kind  string   `json:"kind"`
	Title string   `json:"title"`
	Rows  []KPIRow `json:"rows"`
}

// CoachKPI expands one dashboard counter (today_assigned, today_logged,
// missed_yesterday) into its per-workout rows. Unknown kinds are the
// server's to reject.
func (c *Client) CoachKPI(kind string) (*KPIResponse, error) {
	var resp KPIResponse
	if err := c.get(fmt.Sprintf("/coach/mobile/kpi/%s", kind), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LinkCoachResponse reports the athlete's current coach link, nil Coach
// when unlinked.
type LinkCoachResponse struct {
	Athlete *AthleteSummary `json:"athlete"`
	Coach   *Coach          `json:"coach"`
}

// LinkCoachStatus fetches the athlete's coach-link state. Linking itself
// is invite-driven on the coach's side; the client only reports it.
func (c *Client) LinkCoachStatus() (*LinkCoachResponse, error) {
	var resp LinkCoachResponse
	if err := c.get("/auth/link-coach/mobile", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
