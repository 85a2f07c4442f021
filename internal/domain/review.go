package domain

import "time"

// Review is a parent testimonial. Only approved reviews are public.
type Review struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Rating   int       `json:"rating"`
	Comment  string    `json:"comment"`
	Date     Timestamp `json:"date"`
	Approved bool      `json:"approved"`
}

func (r Review) RecordID() string      { return r.ID }
func (r Review) RecordDate() time.Time { return r.Date.Time }

// SeedReviews are written when the reviews collection is first created.
func SeedReviews() []Review {
	return []Review{
		{
			ID:       "review_1",
			Name:     "Priya Sharma",
			Rating:   5,
			Comment:  "Sankalp has been a blessing for our family. The dedicated staff and personalized approach have helped our child grow tremendously. The 18 years of experience really shows in their care.",
			Date:     NewTimestamp(time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)),
			Approved: true,
		},
		{
			ID:       "review_2",
			Name:     "Rajesh Kumar",
			Rating:   5,
			Comment:  "Exceptional care and attention our child receives here. The minimal fees make quality special education accessible to families like ours. Highly recommended!",
			Date:     NewTimestamp(time.Date(2024, time.February, 20, 14, 30, 0, 0, time.UTC)),
			Approved: true,
		},
		{
			ID:       "review_3",
			Name:     "Anita Singh",
			Rating:   5,
			Comment:  "The team at Sankalp truly understands the needs of special children. Their individualized programs have made such a difference in our child's development. Thank you!",
			Date:     NewTimestamp(time.Date(2024, time.March, 10, 9, 15, 0, 0, time.UTC)),
			Approved: true,
		},
	}
}
