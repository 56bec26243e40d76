// Package fallback is the static offline dataset served when the database
// cannot be reached or holds no catalog yet. Every accessor returns fresh
// values, so callers may modify what they get.
package fallback

import (
	"time"

	"club-booking/internal/data/entity"

	"github.com/google/uuid"
)

var (
	ClubFitZone  = uuid.MustParse("6f1c2a8e-0001-4c1e-9a51-5b7d3f1a0001")
	ClubRhythm   = uuid.MustParse("6f1c2a8e-0002-4c1e-9a51-5b7d3f1a0002")
	ClubAquaFit  = uuid.MustParse("6f1c2a8e-0003-4c1e-9a51-5b7d3f1a0003")
	ClubHarmony  = uuid.MustParse("6f1c2a8e-0004-4c1e-9a51-5b7d3f1a0004")
	ClubZen      = uuid.MustParse("6f1c2a8e-0005-4c1e-9a51-5b7d3f1a0005")
	CourseSwim   = uuid.MustParse("8a3e5b2c-0001-4f0d-8c11-2e6a9b4c0001")
	CourseHipHop = uuid.MustParse("8a3e5b2c-0002-4f0d-8c11-2e6a9b4c0002")
	CoursePiano  = uuid.MustParse("8a3e5b2c-0003-4f0d-8c11-2e6a9b4c0003")
	CourseYoga   = uuid.MustParse("8a3e5b2c-0004-4f0d-8c11-2e6a9b4c0004")
	CourseDance  = uuid.MustParse("8a3e5b2c-0005-4f0d-8c11-2e6a9b4c0005")

	ChildSarah = uuid.MustParse("c4d7e9f1-0001-4a2b-b3c4-d5e6f7a80001")
	ChildMax   = uuid.MustParse("c4d7e9f1-0002-4a2b-b3c4-d5e6f7a80002")

	subSarahSwim   = uuid.MustParse("e2b4c6d8-0001-4e5f-a6b7-c8d9e0f10001")
	subSarahHipHop = uuid.MustParse("e2b4c6d8-0002-4e5f-a6b7-c8d9e0f10002")
	subMaxPiano    = uuid.MustParse("e2b4c6d8-0003-4e5f-a6b7-c8d9e0f10003")
)

func hours(weekdays, saturday, sunday entity.OpeningHours) map[string]entity.OpeningHours {
	return map[string]entity.OpeningHours{
		"Monday - Friday": weekdays,
		"Saturday":        saturday,
		"Sunday":          sunday,
	}
}

// Clubs returns the offline clubs in the same order the database lists them:
// rating descending, then name.
func Clubs() []*entity.Club {
	return []*entity.Club{
		{
			ID:          ClubHarmony,
			Name:        "Harmony Music",
			Description: "Music school offering lessons in piano, guitar, violin, and voice for students of all ages and abilities.",
			Location:    "Arts District",
			Distance:    1.8,
			Rating:      4.9,
			ReviewCount: 112,
			Images:      []string{"https://example.com/harmony1.jpg"},
			Amenities:   []string{"Practice Rooms", "Recording Studio", "Instrument Rental"},
			OperatingHours: hours(
				entity.OpeningHours{Open: "10:00 AM", Close: "8:00 PM"},
				entity.OpeningHours{Open: "9:00 AM", Close: "5:00 PM"},
				entity.OpeningHours{Open: "Closed", Close: "Closed"},
			),
			Contact:  entity.ClubContact{Phone: "555-456-7890", Email: "lessons@harmonymusic.com", Address: "321 Melody Street, Arts District"},
			Category: "Music",
		},
		{
			ID:          ClubRhythm,
			Name:        "Rhythm Studio",
			Description: "Dance studio offering a variety of classes for all ages and skill levels. From ballet to hip hop, our experienced instructors will help you find your rhythm.",
			Location:    "Midtown",
			Distance:    3.5,
			Rating:      4.9,
			ReviewCount: 89,
			Images:      []string{"https://example.com/rhythm1.jpg"},
			Amenities:   []string{"Sprung Floors", "Mirrors", "Sound System", "Changing Rooms"},
			OperatingHours: hours(
				entity.OpeningHours{Open: "9:00 AM", Close: "9:00 PM"},
				entity.OpeningHours{Open: "9:00 AM", Close: "6:00 PM"},
				entity.OpeningHours{Open: "10:00 AM", Close: "4:00 PM"},
			),
			Contact:  entity.ClubContact{Phone: "555-987-6543", Email: "info@rhythmstudio.com", Address: "456 Dance Blvd, Midtown"},
			Category: "Dance",
		},
		{
			ID:          ClubFitZone,
			Name:        "FitZone Gym",
			Description: "Premium fitness facility with state-of-the-art equipment, expert trainers, and a welcoming community.",
			Location:    "Downtown",
			Distance:    2.3,
			Rating:      4.8,
			ReviewCount: 124,
			Images:      []string{"https://example.com/fitzone1.jpg"},
			Amenities:   []string{"Parking", "Locker Rooms", "Showers", "Café", "Personal Training"},
			OperatingHours: hours(
				entity.OpeningHours{Open: "5:00 AM", Close: "11:00 PM"},
				entity.OpeningHours{Open: "6:00 AM", Close: "10:00 PM"},
				entity.OpeningHours{Open: "7:00 AM", Close: "9:00 PM"},
			),
			Contact:  entity.ClubContact{Phone: "555-123-4567", Email: "info@fitzonegym.com", Address: "123 Fitness Ave, Downtown"},
			Category: "Gym",
		},
		{
			ID:          ClubZen,
			Name:        "Zen Studio",
			Description: "Peaceful yoga studio offering a variety of classes from beginner to advanced, focusing on mindfulness and wellness.",
			Location:    "Eastside",
			Distance:    2.7,
			Rating:      4.8,
			ReviewCount: 98,
			Images:      []string{"https://example.com/zen1.jpg"},
			Amenities:   []string{"Mats Provided", "Meditation Room", "Tea Bar"},
			OperatingHours: map[string]entity.OpeningHours{
				"Monday - Thursday": {Open: "6:00 AM", Close: "9:00 PM"},
				"Friday":            {Open: "6:00 AM", Close: "8:00 PM"},
				"Saturday - Sunday": {Open: "8:00 AM", Close: "6:00 PM"},
			},
			Contact:  entity.ClubContact{Phone: "555-234-5678", Email: "info@zenstudio.com", Address: "567 Calm Avenue, Eastside"},
			Category: "Yoga",
		},
		{
			ID:          ClubAquaFit,
			Name:        "AquaFit Center",
			Description: "State-of-the-art aquatic facility offering swimming lessons, water aerobics, and open swim sessions for all ages.",
			Location:    "Riverside",
			Distance:    4.1,
			Rating:      4.7,
			ReviewCount: 156,
			Images:      []string{"https://example.com/aquafit1.jpg"},
			Amenities:   []string{"Olympic Pool", "Kids Pool", "Hot Tub", "Sauna", "Towel Service"},
			OperatingHours: map[string]entity.OpeningHours{
				"Monday - Friday":   {Open: "6:00 AM", Close: "10:00 PM"},
				"Saturday - Sunday": {Open: "8:00 AM", Close: "8:00 PM"},
			},
			Contact:  entity.ClubContact{Phone: "555-789-0123", Email: "info@aquafitcenter.com", Address: "789 Water Lane, Riverside"},
			Category: "Swimming",
		},
	}
}

func at(days []time.Weekday, hour, minute int) entity.ScheduleEntry {
	return entity.ScheduleEntry{Days: days, Time: entity.TimeOfDay{Hour: hour, Minute: minute}}
}

// Courses returns the offline courses.
func Courses() []*entity.Course {
	return []*entity.Course{
		{
			ID:          CourseSwim,
			ClubID:      ClubAquaFit,
			Name:        "Swimming Lessons",
			Description: "Learn to swim with confidence in our beginner-friendly swimming lessons.",
			Instructor: entity.Instructor{
				Name:       "Coach Emma",
				Bio:        "Emma is a certified swimming instructor with 10 years of experience teaching all ages.",
				Experience: "10+ years",
				Avatar:     "E",
			},
			Schedule: []entity.ScheduleEntry{
				at([]time.Weekday{time.Monday, time.Wednesday}, 16, 0),
				at([]time.Weekday{time.Tuesday, time.Thursday}, 17, 0),
			},
			Pricing:        entity.Pricing{DropIn: 25, Monthly: 120, Quarterly: 300},
			AgeRange:       "5-12 years",
			SkillLevel:     "Beginner",
			SpotsAvailable: 5,
			TotalSpots:     8,
			Category:       "Swimming",
		},
		{
			ID:          CourseHipHop,
			ClubID:      ClubRhythm,
			Name:        "Hip Hop Dance",
			Description: "Learn the latest hip hop moves and choreography in this high-energy dance class.",
			Instructor: entity.Instructor{
				Name:       "Ms. Jessica",
				Bio:        "Jessica is a professional dancer with experience in music videos and live performances.",
				Experience: "8+ years",
				Avatar:     "J",
			},
			Schedule: []entity.ScheduleEntry{
				at([]time.Weekday{time.Monday, time.Wednesday, time.Friday}, 17, 30),
			},
			Pricing:        entity.Pricing{DropIn: 20, Monthly: 100, Quarterly: 250},
			AgeRange:       "10-16 years",
			SkillLevel:     "Beginner to Intermediate",
			SpotsAvailable: 6,
			TotalSpots:     12,
			Category:       "Dance",
		},
		{
			ID:          CoursePiano,
			ClubID:      ClubHarmony,
			Name:        "Piano Basics",
			Description: "Introduction to piano playing, covering fundamentals of music theory, note reading, and basic techniques.",
			Instructor: entity.Instructor{
				Name:       "Professor James",
				Bio:        "James holds a Masters in Music Education and has taught piano for over 15 years.",
				Experience: "15+ years",
				Avatar:     "J",
			},
			Schedule: []entity.ScheduleEntry{
				at([]time.Weekday{time.Tuesday, time.Thursday}, 16, 30),
				at([]time.Weekday{time.Saturday}, 10, 0),
			},
			Pricing:        entity.Pricing{DropIn: 30, Monthly: 150, Quarterly: 400},
			AgeRange:       "7+ years",
			SkillLevel:     "Beginner",
			SpotsAvailable: 3,
			TotalSpots:     5,
			Category:       "Music",
		},
		{
			ID:          CourseYoga,
			ClubID:      ClubZen,
			Name:        "Morning Yoga",
			Description: "Start your day with energizing yoga poses and breathing exercises.",
			Instructor: entity.Instructor{
				Name:       "Lisa Chen",
				Bio:        "Lisa is a certified yoga instructor with training in multiple yoga disciplines.",
				Experience: "12+ years",
				Avatar:     "L",
			},
			Schedule: []entity.ScheduleEntry{
				at([]time.Weekday{time.Monday, time.Wednesday, time.Friday}, 7, 0),
			},
			Pricing:        entity.Pricing{DropIn: 18, Monthly: 90, Quarterly: 240},
			AgeRange:       "16+ years",
			SkillLevel:     "All Levels",
			SpotsAvailable: 8,
			TotalSpots:     15,
			Category:       "Yoga",
		},
		{
			ID:          CourseDance,
			ClubID:      ClubRhythm,
			Name:        "Contemporary Dance",
			Description: "Explore the beauty of contemporary dance through modern movement techniques.",
			Instructor: entity.Instructor{
				Name:       "Sarah Martinez",
				Bio:        "Sarah is a certified contemporary dance instructor with extensive training from Juilliard.",
				Experience: "15+ years",
				Avatar:     "S",
			},
			Schedule: []entity.ScheduleEntry{
				at([]time.Weekday{time.Monday, time.Wednesday}, 19, 0),
				at([]time.Weekday{time.Friday}, 18, 30),
			},
			Pricing:        entity.Pricing{DropIn: 25, Monthly: 120, Quarterly: 300},
			AgeRange:       "16+ years",
			SkillLevel:     "Intermediate",
			SpotsAvailable: 8,
			TotalSpots:     12,
			Category:       "Dance",
		},
	}
}

func date(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time {
	return &t
}

// Subscriptions returns the offline subscriptions.
func Subscriptions() []*entity.Subscription {
	return []*entity.Subscription{
		{
			Base:          entity.Base{ID: subSarahSwim},
			ChildID:       ChildSarah,
			CourseID:      CourseSwim,
			Type:          entity.SubscriptionMonthly,
			Status:        entity.SubscriptionStatusActive,
			StartDate:     date(2023, time.May, 15, 0, 0),
			EndDate:       date(2023, time.July, 15, 0, 0),
			NextSession:   ptr(date(2023, time.June, 16, 16, 0)),
			RenewalDate:   date(2023, time.July, 15, 0, 0),
			PaymentMethod: "Visa ending in 4532",
		},
		{
			Base:          entity.Base{ID: subSarahHipHop},
			ChildID:       ChildSarah,
			CourseID:      CourseHipHop,
			Type:          entity.SubscriptionMonthly,
			Status:        entity.SubscriptionStatusExpiring,
			StartDate:     date(2023, time.May, 1, 0, 0),
			EndDate:       date(2023, time.June, 19, 0, 0),
			NextSession:   ptr(date(2023, time.June, 16, 17, 30)),
			RenewalDate:   date(2023, time.June, 19, 0, 0),
			PaymentMethod: "Visa ending in 4532",
		},
		{
			Base:          entity.Base{ID: subMaxPiano},
			ChildID:       ChildMax,
			CourseID:      CoursePiano,
			Type:          entity.SubscriptionMonthly,
			Status:        entity.SubscriptionStatusActive,
			StartDate:     date(2023, time.June, 1, 0, 0),
			EndDate:       date(2023, time.August, 1, 0, 0),
			NextSession:   ptr(date(2023, time.June, 17, 10, 0)),
			RenewalDate:   date(2023, time.August, 1, 0, 0),
			PaymentMethod: "Mastercard ending in 8901",
		},
	}
}

func booked(id string, sub uuid.UUID, session time.Time) *entity.Booking {
	return &entity.Booking{
		BaseSimple:     entity.BaseSimple{ID: uuid.MustParse(id)},
		SubscriptionID: sub,
		SessionDate:    session,
		Status:         entity.BookingStatusBooked,
		CanReschedule:  true,
	}
}

// Bookings returns the offline bookings ordered by session date.
func Bookings() []*entity.Booking {
	return []*entity.Booking{
		booked("f3a5b7c9-0001-4d6e-8f9a-0b1c2d3e0001", subSarahSwim, date(2023, time.June, 15, 10, 0)),
		booked("f3a5b7c9-0002-4d6e-8f9a-0b1c2d3e0002", subSarahSwim, date(2023, time.June, 16, 16, 0)),
		booked("f3a5b7c9-0004-4d6e-8f9a-0b1c2d3e0004", subSarahHipHop, date(2023, time.June, 16, 17, 30)),
		booked("f3a5b7c9-0003-4d6e-8f9a-0b1c2d3e0003", subSarahSwim, date(2023, time.June, 17, 10, 0)),
	}
}

// SubscriptionsForChild filters Subscriptions by child.
func SubscriptionsForChild(childID uuid.UUID) []*entity.Subscription {
	out := make([]*entity.Subscription, 0)
	for _, s := range Subscriptions() {
		if s.ChildID == childID {
			out = append(out, s)
		}
	}
	return out
}

// BookingsForSubscription filters Bookings by subscription.
func BookingsForSubscription(subscriptionID uuid.UUID) []*entity.Booking {
	out := make([]*entity.Booking, 0)
	for _, b := range Bookings() {
		if b.SubscriptionID == subscriptionID {
			out = append(out, b)
		}
	}
	return out
}

// Club finds an offline club by ID.
func Club(id uuid.UUID) *entity.Club {
	for _, c := range Clubs() {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Course finds an offline course by ID.
func Course(id uuid.UUID) *entity.Course {
	for _, c := range Courses() {
		if c.ID == id {
			return c
		}
	}
	return nil
}
