// File: /database/database.go
package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"eventfdr-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.Booking{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Composite indexes for the hot listing queries
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_events_category_date ON events(category, date)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for events category/date: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_user_created ON bookings(user_id, created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for bookings user list: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_status_created ON bookings(status, payment_status, created_at)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for stale booking sweeps: %v\n", err)
	}

	return nil
}

// SeedData populates the catalog with the demo events when the
// database is empty.
func SeedData(db *gorm.DB) error {
	var eventCount int64
	db.Model(&models.Event{}).Count(&eventCount)

	if eventCount > 0 {
		fmt.Println("Database already has data, skipping seed")
		return nil
	}

	for _, event := range SeedEvents() {
		if err := db.Create(&event).Error; err != nil {
			fmt.Printf("Warning: Could not create seed event %s: %v\n", event.Title, err)
		}
	}

	fmt.Println("Database seeded with demo events")
	return nil
}

// SeedEvents returns the demo catalog. The memory store seeds from the
// same list so both run modes start identical.
func SeedEvents() []models.Event {
	return []models.Event{
		{
			ID:               "evt-001",
			Title:            "TechConf 2026 - Future of AI",
			ShortDescription: "The largest tech conference featuring AI, ML, and Cloud innovations.",
			Description:      "Join us for the largest technology conference in South Asia. Explore cutting-edge innovations in AI, Machine Learning, Cloud Computing, and more. Network with industry leaders and discover the technologies shaping tomorrow.",
			Category:         "Technology",
			Date:             "2026-02-15",
			Time:             "09:00",
			EndDate:          "2026-02-17",
			EndTime:          "18:00",
			Venue:            "Bangalore International Exhibition Centre",
			Address:          "BIEC, Tumakuru Road",
			City:             "Bangalore",
			Country:          "India",
			Image:            "https://images.unsplash.com/photo-1540575467063-178a50c2df87?w=800&h=400&fit=crop",
			Price:            2499,
			Currency:         "INR",
			Capacity:         5000,
			Registered:       3847,
			OrganizerName:    "TechEvents India",
			OrganizerEmail:   "events@techconf.in",
			OrganizerVerified: true,
			Tags:             models.StringSlice{"AI", "Machine Learning", "Cloud", "Tech Conference"},
			Featured:         true,
			Highlights: models.StringSlice{
				"50+ Expert Speakers",
				"Hands-on Workshops",
				"Networking Sessions",
				"Job Fair",
				"Startup Pitch Competition",
			},
			Schedule: models.ScheduleList{
				{Day: "Day 1", Title: "AI & Machine Learning Track", Time: "9:00 AM - 6:00 PM"},
				{Day: "Day 2", Title: "Cloud & DevOps Track", Time: "9:00 AM - 6:00 PM"},
				{Day: "Day 3", Title: "Future Tech & Networking", Time: "9:00 AM - 4:00 PM"},
			},
		},
		{
			ID:               "evt-002",
			Title:            "Music Festival: Sounds of India",
			ShortDescription: "A celebration of Indian classical and contemporary music.",
			Description:      "Experience the magic of Indian music at this grand festival featuring renowned artists from across the country. From classical ragas to modern fusion, immerse yourself in a musical journey like no other.",
			Category:         "Music",
			Date:             "2026-03-20",
			Time:             "17:00",
			EndDate:          "2026-03-22",
			EndTime:          "23:00",
			Venue:            "Mahalaxmi Race Course",
			Address:          "Mahalaxmi, Mumbai",
			City:             "Mumbai",
			Country:          "India",
			Image:            "https://images.unsplash.com/photo-1459749411175-04bf5292ceea?w=800&h=400&fit=crop",
			Price:            1499,
			Currency:         "INR",
			Capacity:         15000,
			Registered:       8932,
			OrganizerName:    "Musical Nights Entertainment",
			OrganizerEmail:   "contact@musicalnights.com",
			OrganizerVerified: true,
			Tags:             models.StringSlice{"Music", "Festival", "Live Concert", "Classical", "Contemporary"},
			Featured:         true,
			Highlights: models.StringSlice{
				"30+ Artists",
				"Multiple Stages",
				"Food Bazaar",
				"Art Installations",
				"Late Night After Party",
			},
			Schedule: models.ScheduleList{
				{Day: "Day 1", Title: "Classical Evening", Time: "5:00 PM - 11:00 PM"},
				{Day: "Day 2", Title: "Fusion Night", Time: "5:00 PM - 11:00 PM"},
				{Day: "Day 3", Title: "Contemporary Finale", Time: "5:00 PM - 11:00 PM"},
			},
		},
		{
			ID:               "evt-003",
			Title:            "Photography Workshop: Street & Portrait",
			ShortDescription: "Hands-on photography workshop covering street and portrait techniques.",
			Description:      "Master the art of street and portrait photography with our expert instructors. This intensive workshop covers composition, lighting, editing, and storytelling through your lens.",
			Category:         "Arts & Culture",
			Date:             "2026-02-22",
			Time:             "10:00",
			EndDate:          "2026-02-23",
			EndTime:          "17:00",
			Venue:            "India Habitat Centre",
			Address:          "Lodhi Estate",
			City:             "New Delhi",
			Country:          "India",
			Image:            "https://images.unsplash.com/photo-1542038784456-1ea8e935640e?w=800&h=400&fit=crop",
			Price:            3999,
			Currency:         "INR",
			Capacity:         50,
			Registered:       42,
			OrganizerName:    "Lens Masters Academy",
			OrganizerEmail:   "workshops@lensmasters.in",
			OrganizerVerified: true,
			Tags:             models.StringSlice{"Photography", "Workshop", "Portrait", "Street Photography"},
			Highlights: models.StringSlice{
				"Small Batch Size",
				"Equipment Provided",
				"City Photo Walk",
				"Portfolio Review",
				"Certification",
			},
			Schedule: models.ScheduleList{
				{Day: "Day 1", Title: "Theory & Indoor Sessions", Time: "10:00 AM - 5:00 PM"},
				{Day: "Day 2", Title: "Outdoor Photo Walk & Review", Time: "10:00 AM - 5:00 PM"},
			},
		},
		{
			ID:               "evt-004",
			Title:            "Startup Summit 2026",
			ShortDescription: "Connect with investors, mentors, and fellow entrepreneurs.",
			Description:      "The premier startup event bringing together entrepreneurs, investors, and industry experts. Pitch your ideas, learn from success stories, and find potential partners for your venture.",
			Category:         "Business",
			Date:             "2026-03-10",
			Time:             "08:30",
			EndDate:          "2026-03-11",
			EndTime:          "18:30",
			Venue:            "Hitex Exhibition Center",
			Address:          "Madhapur",
			City:             "Hyderabad",
			Country:          "India",
			Image:            "https://images.unsplash.com/photo-1559136555-9303baea8ebd?w=800&h=400&fit=crop",
			Price:            999,
			Currency:         "INR",
			Capacity:         2000,
			Registered:       1567,
			OrganizerName:    "Startup India Foundation",
			OrganizerEmail:   "summit@startupindia.org",
			OrganizerVerified: true,
			Tags:             models.StringSlice{"Startup", "Business", "Networking", "Investment"},
			Featured:         true,
			Highlights: models.StringSlice{
				"Pitch Competition",
				"Investor Meetings",
				"Mentorship Sessions",
				"Funding Opportunities",
				"Exhibition Booths",
			},
			Schedule: models.ScheduleList{
				{Day: "Day 1", Title: "Keynotes & Panels", Time: "8:30 AM - 6:30 PM"},
				{Day: "Day 2", Title: "Pitch Day & Networking", Time: "9:00 AM - 6:00 PM"},
			},
		},
		{
			ID:               "evt-005",
			Title:            "Yoga & Wellness Retreat",
			ShortDescription: "A transformative weekend of yoga, meditation, and holistic healing.",
			Description:      "Escape the city chaos and rejuvenate your mind, body, and soul. This retreat offers daily yoga sessions, guided meditation, Ayurvedic meals, and holistic wellness practices.",
			Category:         "Health & Wellness",
			Date:             "2026-02-28",
			Time:             "06:00",
			EndDate:          "2026-03-01",
			EndTime:          "18:00",
			Venue:            "Ananda Resort",
			Address:          "Rishikesh",
			City:             "Rishikesh",
			Country:          "India",
			Image:            "https://images.unsplash.com/photo-1545389336-cf090694435e?w=800&h=400&fit=crop",
			Price:            8999,
			Currency:         "INR",
			Capacity:         40,
			Registered:       35,
			OrganizerName:    "Wellness Way",
			OrganizerEmail:   "retreats@wellnessway.in",
			OrganizerVerified: true,
			Tags:             models.StringSlice{"Yoga", "Meditation", "Wellness", "Retreat", "Ayurveda"},
			Highlights: models.StringSlice{
				"Riverside Yoga",
				"Guided Meditation",
				"Ayurvedic Meals",
				"Nature Walks",
				"Spiritual Healing Sessions",
			},
			Schedule: models.ScheduleList{
				{Day: "Day 1", Title: "Arrival & Evening Yoga", Time: "4:00 PM - 8:00 PM"},
				{Day: "Day 2", Title: "Full Day Wellness", Time: "5:00 AM - 9:00 PM"},
				{Day: "Day 3", Title: "Morning Session & Departure", Time: "5:00 AM - 12:00 PM"},
			},
		},
		{
			ID:               "evt-006",
			Title:            "Culinary Masterclass: South Indian Cuisine",
			ShortDescription: "Learn authentic South Indian recipes from master chefs.",
			Description:      "Discover the secrets of South Indian cuisine in this hands-on cooking masterclass. From making the perfect dosa to traditional curries, learn techniques passed down through generations.",
			Category:         "Food & Drink",
			Date:             "2026-02-18",
			Time:             "10:00",
			EndDate:          "2026-02-18",
			EndTime:          "16:00",
			Venue:            "Culinary Institute of Chennai",
			Address:          "Nungambakkam",
			City:             "Chennai",
			Country:          "India",
			Image:            "https://images.unsplash.com/photo-1567620905732-2d1ec7ab7445?w=800&h=400&fit=crop",
			Price:            2499,
			Currency:         "INR",
			Capacity:         20,
			Registered:       18,
			OrganizerName:    "Chef Academy",
			OrganizerEmail:   "classes@chefacademy.in",
			OrganizerVerified: true,
			Tags:             models.StringSlice{"Cooking", "South Indian", "Masterclass", "Food"},
			Highlights: models.StringSlice{
				"Hands-on Cooking",
				"Take-home Recipes",
				"Ingredients Included",
				"Lunch Provided",
				"Certificate of Completion",
			},
			Schedule: models.ScheduleList{
				{Day: "Day 1", Title: "South Indian Breakfast & Lunch", Time: "10:00 AM - 4:00 PM"},
			},
		},
		{
			ID:               "evt-007",
			Title:            "Open Source Meetup Pune",
			ShortDescription: "Free community meetup for open source contributors and beginners.",
			Description:      "Monthly community gathering for open source enthusiasts. Lightning talks, contribution sprints and mentoring for first-time contributors. Everyone is welcome, no experience required.",
			Category:         "Education",
			Date:             "2026-02-21",
			Time:             "11:00",
			EndDate:          "2026-02-21",
			EndTime:          "17:00",
			Venue:            "Pune Tech Park",
			Address:          "Hinjewadi Phase 1",
			City:             "Pune",
			Country:          "India",
			Image:            "https://images.unsplash.com/photo-1515187029135-18ee286d815b?w=800&h=400&fit=crop",
			Price:            0,
			Currency:         "INR",
			Capacity:         150,
			Registered:       87,
			OrganizerName:    "Pune FOSS Community",
			OrganizerEmail:   "hello@punefoss.org",
			OrganizerVerified: false,
			Tags:             models.StringSlice{"Open Source", "Community", "Free", "Meetup"},
			Highlights: models.StringSlice{
				"Lightning Talks",
				"Contribution Sprint",
				"Beginner Mentoring",
			},
			Schedule: models.ScheduleList{
				{Day: "Day 1", Title: "Talks & Sprint", Time: "11:00 AM - 5:00 PM"},
			},
		},
	}
}
