package response

import (
	"club-booking/internal/data/entity"
)

type ClubResponse struct {
	ID             string                         `json:"id"`
	Name           string                         `json:"name"`
	Description    string                         `json:"description"`
	Location       string                         `json:"location"`
	Distance       float64                        `json:"distance"`
	Rating         float64                        `json:"rating"`
	ReviewCount    int                            `json:"review_count"`
	Images         []string                       `json:"images"`
	Amenities      []string                       `json:"amenities"`
	OperatingHours map[string]entity.OpeningHours `json:"operating_hours"`
	Contact        entity.ClubContact             `json:"contact"`
	Category       string                         `json:"category"`
}

type ClubListResponse struct {
	Clubs   []ClubResponse `json:"clubs"`
	Source  Source         `json:"source"`
	Warning string         `json:"warning,omitempty"`
}

type ClubDetailResponse struct {
	Club    ClubResponse     `json:"club"`
	Courses []CourseResponse `json:"courses"`
	Source  Source           `json:"source"`
	Warning string           `json:"warning,omitempty"`
}

type CourseResponse struct {
	ID             string                 `json:"id"`
	ClubID         string                 `json:"club_id"`
	Name           string                 `json:"name"`
	Description    string                 `json:"description"`
	Instructor     entity.Instructor      `json:"instructor"`
	Schedule       []entity.ScheduleEntry `json:"schedule"`
	Pricing        entity.Pricing         `json:"pricing"`
	AgeRange       string                 `json:"age_range"`
	SkillLevel     string                 `json:"skill_level"`
	SpotsAvailable int                    `json:"spots_available"`
	TotalSpots     int                    `json:"total_spots"`
	Category       string                 `json:"category"`
}

type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
	Source  Source           `json:"source"`
	Warning string           `json:"warning,omitempty"`
}

type CourseDetailResponse struct {
	Course  CourseResponse `json:"course"`
	Source  Source         `json:"source"`
	Warning string         `json:"warning,omitempty"`
}

func ClubToResponse(c *entity.Club) ClubResponse {
	return ClubResponse{
		ID:             c.ID.String(),
		Name:           c.Name,
		Description:    c.Description,
		Location:       c.Location,
		Distance:       c.Distance,
		Rating:         c.Rating,
		ReviewCount:    c.ReviewCount,
		Images:         nonNil(c.Images),
		Amenities:      nonNil(c.Amenities),
		OperatingHours: c.OperatingHours,
		Contact:        c.Contact,
		Category:       c.Category,
	}
}

func ClubsToResponse(clubs []*entity.Club) []ClubResponse {
	out := make([]ClubResponse, len(clubs))
	for i, c := range clubs {
		out[i] = ClubToResponse(c)
	}
	return out
}

func CourseToResponse(c *entity.Course) CourseResponse {
	schedule := c.Schedule
	if schedule == nil {
		schedule = []entity.ScheduleEntry{}
	}
	return CourseResponse{
		ID:             c.ID.String(),
		ClubID:         c.ClubID.String(),
		Name:           c.Name,
		Description:    c.Description,
		Instructor:     c.Instructor,
		Schedule:       schedule,
		Pricing:        c.Pricing,
		AgeRange:       c.AgeRange,
		SkillLevel:     c.SkillLevel,
		SpotsAvailable: c.SpotsAvailable,
		TotalSpots:     c.TotalSpots,
		Category:       c.Category,
	}
}

func CoursesToResponse(courses []*entity.Course) []CourseResponse {
	out := make([]CourseResponse, len(courses))
	for i, c := range courses {
		out[i] = CourseToResponse(c)
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
