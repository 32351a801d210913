package usecase

import (
	"career-recommender/internal/dto"
	"career-recommender/internal/model"
)

// FallbackRecommendations returns the fixed rule-based triplet for a job
// category. Used whenever the AI path is skipped or its output is unusable.
func FallbackRecommendations(jobType string) []dto.CareerRecommendationDTO {
	if jobType == model.JobTypeInternship {
		return []dto.CareerRecommendationDTO{
			{
				Title:       "Software Development Intern",
				MatchScore:  75,
				Description: "Learn software development fundamentals while working on real projects with experienced developers.",
				Skills:      []string{"Programming Basics", "Version Control", "Problem Solving", "Team Collaboration"},
				Reasoning:   "Great entry point for learning technical skills and gaining industry experience.",
			},
			{
				Title:       "Business Analysis Intern",
				MatchScore:  70,
				Description: "Support business analysts in gathering requirements and improving business processes.",
				Skills:      []string{"Data Analysis", "Documentation", "Communication", "Process Mapping"},
				Reasoning:   "Excellent opportunity to develop analytical and communication skills.",
			},
			{
				Title:       "Marketing Intern",
				MatchScore:  68,
				Description: "Assist with marketing campaigns, content creation, and social media management.",
				Skills:      []string{"Content Creation", "Social Media", "Market Research", "Analytics"},
				Reasoning:   "Perfect for developing creative and digital marketing skills.",
			},
		}
	}

	return []dto.CareerRecommendationDTO{
		{
			Title:       "Business Analyst",
			MatchScore:  75,
			Description: "Analyze business processes and requirements to drive organizational improvements.",
			Skills:      []string{"Data Analysis", "Requirements Gathering", "Process Improvement", "Documentation"},
			Reasoning:   "A versatile role that combines analytical thinking with communication skills.",
		},
		{
			Title:       "Project Coordinator",
			MatchScore:  70,
			Description: "Support project managers in planning, executing, and monitoring project activities.",
			Skills:      []string{"Project Management", "Communication", "Organization", "Time Management"},
			Reasoning:   "An excellent entry point for developing leadership and organizational skills.",
		},
		{
			Title:       "Customer Success Manager",
			MatchScore:  68,
			Description: "Ensure customer satisfaction and drive product adoption and retention.",
			Skills:      []string{"Customer Relations", "Communication", "Problem Solving", "Product Knowledge"},
			Reasoning:   "Combines interpersonal skills with business acumen for customer-focused roles.",
		},
	}
}
