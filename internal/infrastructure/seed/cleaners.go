package seed

import (
	"math/rand"
	"sort"
	"time"

	"cleanfee.backend/internal/domain/entities"
)

// Cleaners returns the sample marketplace roster.
func Cleaners() []*entities.Cleaner {
	return []*entities.Cleaner{
		{
			ID:              1,
			Name:            "Sarah Johnson",
			ImageURL:        "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=400&h=400&fit=crop&crop=face",
			HourlyRate:      25.00,
			Rating:          4.8,
			TotalReviews:    127,
			Bio:             "Professional cleaner with 5+ years experience. Specializes in deep cleaning and eco-friendly products.",
			Skills:          []string{"Deep Cleaning", "Eco-friendly", "Pet-friendly", "Move-in/out"},
			ExperienceYears: 5,
			Verified:        true,
		},
		{
			ID:              2,
			Name:            "Miguel Rodriguez",
			ImageURL:        "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=400&h=400&fit=crop&crop=face",
			HourlyRate:      22.00,
			Rating:          4.6,
			TotalReviews:    89,
			Bio:             "Detail-oriented cleaner who takes pride in making your home spotless. Available evenings and weekends.",
			Skills:          []string{"Detail Cleaning", "Kitchen Deep Clean", "Bathroom Sanitization"},
			ExperienceYears: 3,
			Verified:        true,
		},
		{
			ID:              3,
			Name:            "Emma Chen",
			ImageURL:        "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=400&h=400&fit=crop&crop=face",
			HourlyRate:      28.00,
			Rating:          4.9,
			TotalReviews:    203,
			Bio:             "Experienced professional with attention to detail. Brings own supplies and equipment. Flexible scheduling.",
			Skills:          []string{"Premium Service", "Own Equipment", "Flexible Hours", "Post-construction"},
			ExperienceYears: 7,
			Verified:        true,
		},
		{
			ID:              4,
			Name:            "David Thompson",
			ImageURL:        "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop&crop=face",
			HourlyRate:      20.00,
			Rating:          4.4,
			TotalReviews:    56,
			Bio:             "Reliable and efficient cleaner. Great for regular maintenance cleaning. Competitive rates.",
			Skills:          []string{"Regular Maintenance", "Quick Clean", "Budget-friendly"},
			ExperienceYears: 2,
			Verified:        true,
		},
		{
			ID:              5,
			Name:            "Lisa Park",
			ImageURL:        "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=400&h=400&fit=crop&crop=face",
			HourlyRate:      26.00,
			Rating:          4.7,
			TotalReviews:    142,
			Bio:             "Specialized in luxury home cleaning with premium products. Insured and bonded professional.",
			Skills:          []string{"Luxury Cleaning", "Premium Products", "Insured", "Same-day Service"},
			ExperienceYears: 6,
			Verified:        true,
		},
	}
}

// Reviews returns the sample reviews keyed by cleaner id.
func Reviews() map[int][]*entities.Review {
	return map[int][]*entities.Review{
		1: {
			{User: "Jennifer M.", Rating: 5, Comment: "Sarah did an amazing job! Very thorough and professional.", Date: "2024-01-15"},
			{User: "Mike R.", Rating: 5, Comment: "Exceeded expectations. House looked brand new!", Date: "2024-01-10"},
			{User: "Anna K.", Rating: 4, Comment: "Great service, very reliable. Will book again.", Date: "2024-01-05"},
		},
		2: {
			{User: "Tom L.", Rating: 5, Comment: "Miguel is fantastic! Very detail-oriented.", Date: "2024-01-12"},
			{User: "Sarah W.", Rating: 4, Comment: "Good work, arrived on time and was very polite.", Date: "2024-01-08"},
			{User: "Chris P.", Rating: 5, Comment: "Excellent deep cleaning of the kitchen. Highly recommend!", Date: "2024-01-03"},
		},
		3: {
			{User: "Rachel G.", Rating: 5, Comment: "Emma is the best! Incredible attention to detail.", Date: "2024-01-14"},
			{User: "David H.", Rating: 5, Comment: "Professional service, brought all equipment. Perfect!", Date: "2024-01-09"},
			{User: "Maria S.", Rating: 5, Comment: "Outstanding work! House has never been cleaner.", Date: "2024-01-06"},
		},
		4: {
			{User: "John D.", Rating: 4, Comment: "Good value for money. Reliable service.", Date: "2024-01-11"},
			{User: "Lisa T.", Rating: 4, Comment: "David did a good job with regular cleaning.", Date: "2024-01-07"},
			{User: "Kevin M.", Rating: 5, Comment: "Fast and efficient. Great for weekly maintenance.", Date: "2024-01-02"},
		},
		5: {
			{User: "Michelle B.", Rating: 5, Comment: "Lisa provides luxury service! Worth every penny.", Date: "2024-01-13"},
			{User: "Robert A.", Rating: 5, Comment: "Premium products and exceptional service.", Date: "2024-01-08"},
			{User: "Amanda C.", Rating: 4, Comment: "High quality cleaning, very professional approach.", Date: "2024-01-04"},
		},
	}
}

var baseSlots = []string{
	"9:00 AM", "10:00 AM", "11:00 AM", "1:00 PM",
	"2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM",
}

// Availability generates the demo time slots for a cleaner on a date.
// It is a seeded pseudo-random stub, not a real schedule: the seed is
// cleanerID + day-of-month, so the same day of different months yields
// identical slots. Known non-authoritative placeholder.
func Availability(cleanerID int, date time.Time) []string {
	rng := rand.New(rand.NewSource(int64(cleanerID + date.Day())))

	numSlots := 3 + rng.Intn(4)
	perm := rng.Perm(len(baseSlots))

	slots := make([]string, 0, numSlots)
	for _, i := range perm[:numSlots] {
		slots = append(slots, baseSlots[i])
	}
	sort.Strings(slots)
	return slots
}
