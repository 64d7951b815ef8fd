// Package seed holds the launch catalogue of coaches. It initializes the
// directory when no store is configured and feeds the seed command.
package seed

import (
	"time"

	"github.com/twentymincoach/api/internal/domain"
)

func usd(dollars int64) domain.Money {
	return domain.Money{Amount: dollars * 100, Currency: "USD"}
}

// Coaches returns a fresh copy of the catalogue on every call.
func Coaches() []domain.Coach {
	return []domain.Coach{
		{
			ID:          "1",
			Name:        "Dr. Maria Silva",
			Specialty:   "Health & Fitness",
			Rating:      4.9,
			ReviewCount: 127,
			Location:    "São Paulo, Brasil",
			Available:   true,
			Rate:        usd(15),
			AvatarURL:   "https://api.dicebear.com/7.x/avataaars/svg?seed=Maria",
			Bio: "Certified nutritionist with over 10 years of experience helping clients achieve their wellness goals. " +
				"Specializing in personalized meal planning, weight management, and lifestyle coaching.",
			Languages: domain.TagList{"Portuguese", "English", "Spanish"},
			Expertise: domain.TagList{
				"Nutrition Planning",
				"Weight Management",
				"Sports Nutrition",
				"Lifestyle Coaching",
				"Wellness Programs",
			},
			Certifications: domain.TagList{
				"Certified Nutritionist",
				"Sports Nutrition Specialist",
				"Wellness Coach Certification",
			},
			Stats: domain.CoachStats{
				TotalSessions:   340,
				AvgResponseTime: 2 * time.Minute,
				CompletionRate:  98,
			},
			Reviews: []domain.Review{
				{
					ID:       "1-1",
					Reviewer: "João P.",
					Rating:   5,
					Posted:   "2 days ago",
					Comment:  "Maria was incredibly helpful! She gave me practical advice that I could implement right away.",
				},
				{
					ID:       "1-2",
					Reviewer: "Ana M.",
					Rating:   5,
					Posted:   "1 week ago",
					Comment:  "Very knowledgeable and patient. Answered all my questions about meal planning.",
				},
				{
					ID:       "1-3",
					Reviewer: "Pedro S.",
					Rating:   4,
					Posted:   "2 weeks ago",
					Comment:  "Great session, learned a lot about sports nutrition. Would recommend!",
				},
			},
		},
		{
			ID:             "2",
			Name:           "Carlos Mendez",
			Specialty:      "Auto Mechanics",
			Rating:         4.8,
			ReviewCount:    89,
			Location:       "Bogotá, Colombia",
			Available:      true,
			Rate:           usd(12),
			AvatarURL:      "https://api.dicebear.com/7.x/avataaars/svg?seed=Carlos",
			Bio:            "20+ years experience in automotive diagnostics",
			Languages:      domain.TagList{"Spanish", "English"},
			Expertise:      domain.TagList{"Engine Diagnostics", "Electrical Systems", "Brakes", "Hybrid Vehicles"},
			Certifications: domain.TagList{"ASE Master Technician"},
			Stats: domain.CoachStats{
				TotalSessions:   212,
				AvgResponseTime: 3 * time.Minute,
				CompletionRate:  96,
			},
			Reviews: []domain.Review{
				{
					ID:       "2-1",
					Reviewer: "Luis R.",
					Rating:   5,
					Posted:   "3 days ago",
					Comment:  "Found the misfire in ten minutes over video. Saved me a trip to the shop.",
				},
			},
		},
		{
			ID:             "3",
			Name:           "Ana Rodriguez",
			Specialty:      "Psychology",
			Rating:         5.0,
			ReviewCount:    203,
			Location:       "Medellín, Colombia",
			Available:      false,
			Rate:           usd(18),
			AvatarURL:      "https://api.dicebear.com/7.x/avataaars/svg?seed=Ana",
			Bio:            "Licensed therapist focusing on stress management",
			Languages:      domain.TagList{"Spanish", "English"},
			Expertise:      domain.TagList{"Stress Management", "Anxiety", "Burnout", "Mindfulness"},
			Certifications: domain.TagList{"Licensed Clinical Psychologist", "Mindfulness-Based Stress Reduction"},
			Stats: domain.CoachStats{
				TotalSessions:   515,
				AvgResponseTime: 5 * time.Minute,
				CompletionRate:  99,
			},
			Reviews: []domain.Review{
				{
					ID:       "3-1",
					Reviewer: "Camila V.",
					Rating:   5,
					Posted:   "1 day ago",
					Comment:  "Calm, clear and practical. I left with breathing exercises I use every day.",
				},
				{
					ID:       "3-2",
					Reviewer: "Diego T.",
					Rating:   5,
					Posted:   "5 days ago",
					Comment:  "Twenty minutes was enough to reframe the week I was dreading.",
				},
			},
		},
		{
			ID:             "4",
			Name:           "João Santos",
			Specialty:      "Programming",
			Rating:         4.7,
			ReviewCount:    156,
			Location:       "Rio de Janeiro, Brasil",
			Available:      true,
			Rate:           usd(20),
			AvatarURL:      "https://api.dicebear.com/7.x/avataaars/svg?seed=Joao",
			Bio:            "Full-stack developer with 10 years experience",
			Languages:      domain.TagList{"Portuguese", "English"},
			Expertise:      domain.TagList{"Go", "React", "PostgreSQL", "Code Review", "Debugging"},
			Certifications: domain.TagList{"AWS Certified Developer"},
			Stats: domain.CoachStats{
				TotalSessions:   298,
				AvgResponseTime: 90 * time.Second,
				CompletionRate:  97,
			},
			Reviews: []domain.Review{
				{
					ID:       "4-1",
					Reviewer: "Rafael L.",
					Rating:   5,
					Posted:   "4 days ago",
					Comment:  "Walked me through a nasty race condition. Clear explanations.",
				},
				{
					ID:       "4-2",
					Reviewer: "Beatriz F.",
					Rating:   4,
					Posted:   "2 weeks ago",
					Comment:  "Good review of my React components, would book again.",
				},
			},
		},
	}
}
