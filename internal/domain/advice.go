package domain

// Search requests. Fields are free text chosen from fixed UI options; the
// normalizer fills the defaults before the pipeline runs.

type FlightSearchRequest struct {
	Route        string `json:"route"`
	Timing       string `json:"timing"`
	TimeOfDay    string `json:"timeOfDay"`
	UserLocation string `json:"userLocation"`
	AgeGroup     string `json:"ageGroup"`
}

type GoodsSearchRequest struct {
	Product      string `json:"product"`
	Priority     string `json:"priority"`
	UserLocation string `json:"userLocation"`
	Transport    string `json:"transport"`
	AgeGroup     string `json:"ageGroup"`
}

// FlightAdvice is the shaped pipeline result for the flight domain.
// Price fields are opaque formatted strings as produced by the model
// (e.g. "8,850円くらい"), never parsed into numbers.
type FlightAdvice struct {
	Summary struct {
		LowestPrice        string `json:"lowestPrice"`
		RecommendedAirline string `json:"recommendedAirline"`
		BestTiming         string `json:"bestTiming"`
	} `json:"summary"`
	Advice struct {
		MainAdvice string   `json:"mainAdvice"`
		Tips       []string `json:"tips"`
		Warnings   []string `json:"warnings"`
		LocalInfo  string   `json:"localInfo"`
	} `json:"advice"`
	GeneratedAt string `json:"generatedAt"`
}

type GoodsAdvice struct {
	Recommendation struct {
		ProductName string `json:"productName"`
		Brand       string `json:"brand"`
		Price       string `json:"price"`
		Quantity    string `json:"quantity"`
	} `json:"recommendation"`
	Stores []GoodsStore `json:"stores"`
	Advice struct {
		MainAdvice string   `json:"mainAdvice"`
		Tips       []string `json:"tips"`
		Warnings   []string `json:"warnings"`
	} `json:"advice"`
	GeneratedAt string `json:"generatedAt"`
}

type GoodsStore struct {
	Name         string `json:"name"`
	Distance     string `json:"distance"`
	Address      string `json:"address"`
	Price        string `json:"price"`
	Availability string `json:"availability"`
}
