package catalog

// WorldEventType selects which formulas an active event touches.
type WorldEventType string

const (
	// EventClickFrenzy multiplies click income.
	EventClickFrenzy WorldEventType = "click_frenzy"
	// EventGemRush doubles the composed gem chance.
	EventGemRush WorldEventType = "gem_rush"
	// EventTimeWarp halves the tick period.
	EventTimeWarp WorldEventType = "time_warp"
	// EventElementSurge multiplies elemental resource production.
	EventElementSurge WorldEventType = "element_surge"
	// EventPointStorm multiplies rebirth point gain.
	EventPointStorm WorldEventType = "point_storm"
	// EventLuckyAir improves rune pack luck.
	EventLuckyAir WorldEventType = "lucky_air"
)

// WorldEvent is a timed global modifier. An event is only eligible for
// selection once its element has been unlocked (that element's rune has
// been held at least once).
type WorldEvent struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Type            WorldEventType `json:"type"`
	Element         Element        `json:"element"`
	Multiplier      float64        `json:"multiplier"`
	DurationSeconds int64          `json:"duration_seconds"`
}

// Default event timing.
const (
	EventDurationSeconds = 600
	EventIntervalSeconds = 1800
)

var defaultWorldEvents = []WorldEvent{
	{ID: "ev_frenzy", Name: "Click Frenzy", Type: EventClickFrenzy, Element: Fire, Multiplier: 3, DurationSeconds: EventDurationSeconds},
	{ID: "ev_gemrush", Name: "Gem Rush", Type: EventGemRush, Element: Light, Multiplier: 2, DurationSeconds: EventDurationSeconds},
	{ID: "ev_timewarp", Name: "Time Warp", Type: EventTimeWarp, Element: Air, Multiplier: 2, DurationSeconds: EventDurationSeconds},
	{ID: "ev_surge", Name: "Elemental Surge", Type: EventElementSurge, Element: Water, Multiplier: 3, DurationSeconds: EventDurationSeconds},
	{ID: "ev_storm", Name: "Point Storm", Type: EventPointStorm, Element: Dark, Multiplier: 2, DurationSeconds: EventDurationSeconds},
	{ID: "ev_luck", Name: "Lucky Winds", Type: EventLuckyAir, Element: Earth, Multiplier: 1.5, DurationSeconds: EventDurationSeconds},
}
