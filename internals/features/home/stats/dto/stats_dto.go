package dto

// ============================
// Response DTO
// ============================

type TopTeacherDTO struct {
	Name            string `json:"name"`
	Image           string `json:"image,omitempty"`
	Email           string `json:"email"`
	TotalEnrollment int64  `json:"totalEnrollment"`
}

type SiteStatsDTO struct {
	TotalUsers      int64 `json:"totalUsers"`
	TotalClasses    int64 `json:"totalClasses"`
	TotalEnrollment int64 `json:"totalEnrollment"`
}
