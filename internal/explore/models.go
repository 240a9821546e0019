package explore

// Location is the identity anchor for all cached resources. A row is created
// on the first successful geocode of a query and never updated afterwards.
type Location struct {
	ID             int64   `json:"id"`
	SearchQuery    string  `json:"search_query"`
	FormattedQuery string  `json:"formatted_query"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
}

// WeatherDay is one day of a forecast. Time carries the truncated
// human-readable form ("Mon Jan 02 2006") the legacy API exposed.
type WeatherDay struct {
	Forecast string `json:"forecast"`
	Time     string `json:"time"`
}

// Business is one Yelp search result.
type Business struct {
	Name     string  `json:"name"`
	URL      string  `json:"url"`
	Rating   float64 `json:"rating"`
	Price    string  `json:"price"`
	ImageURL string  `json:"image_url"`
}

// MovieSummary is one TheMovieDB search result.
type MovieSummary struct {
	Title        string  `json:"title"`
	ReleasedOn   string  `json:"released_on"`
	AverageVotes float64 `json:"average_votes"`
	TotalVotes   int64   `json:"total_votes"`
	Popularity   float64 `json:"popularity"`
	ImageURL     string  `json:"image_url"`
	Overview     string  `json:"overview"`
}

// Trail is a Hiking Project result. Trails are never persisted; they live for
// one request/response cycle only.
type Trail struct {
	Name          string  `json:"name"`
	TrailURL      string  `json:"trail_url"`
	Location      string  `json:"location"`
	Length        float64 `json:"length"`
	Stars         float64 `json:"stars"`
	StarVotes     int64   `json:"star_votes"`
	Summary       string  `json:"summary"`
	Conditions    string  `json:"conditions"`
	ConditionDate string  `json:"condition_date"`
	ConditionTime string  `json:"condition_time"`
}

// Event is a Meetup upcoming event. Like Trail it is transient.
type Event struct {
	Link         string `json:"link"`
	Name         string `json:"name"`
	Host         string `json:"host"`
	CreationDate string `json:"creation_date"`
}
