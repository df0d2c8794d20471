package models

type ExperienceLevel string

const (
	ExperienceFresher ExperienceLevel = "Fresher/Entry"
	ExperienceJunior  ExperienceLevel = "Junior (0-2 yrs)"
	ExperienceMid     ExperienceLevel = "Mid (2-5 yrs)"
	ExperienceSenior  ExperienceLevel = "Senior (5+ yrs)"
	ExperienceUnknown ExperienceLevel = "Unknown"
)
