package entities

// Cleaner represents a cleaner listed on the marketplace
type Cleaner struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	ImageURL        string   `json:"imageUrl"`
	HourlyRate      float64  `json:"hourlyRate"`
	Rating          float64  `json:"rating"`
	TotalReviews    int      `json:"totalReviews"`
	Bio             string   `json:"bio"`
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experienceYears"`
	Verified        bool     `json:"verified"`
}

// Review represents a customer review left for a cleaner
type Review struct {
	User    string `json:"user"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

// CleanerFilter holds the optional listing filters
type CleanerFilter struct {
	Query         string   `form:"q"`
	MinRating     *float64 `form:"min_rating" binding:"omitempty,gte=0,lte=5"`
	MaxRate       *float64 `form:"max_rate" binding:"omitempty,gt=0"`
	MinExperience *int     `form:"min_experience" binding:"omitempty,gte=0"`
	Skills        []string `form:"skills"`
}
