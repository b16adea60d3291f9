package services

import (
	"math"
	"time"

	"gorm.io/gorm"

	"internship-management-api/models"
)

// AnalyticsService runs the read-only aggregation queries behind the role
// dashboards. It holds no state beyond the storage handle.
type AnalyticsService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db, now: time.Now}
}

type InternProgress struct {
	Summary struct {
		TotalSubmissions     int64 `json:"total_submissions"`
		ApprovedSubmissions  int64 `json:"approved_submissions"`
		CompletionPercentage int   `json:"completion_percentage"`
	} `json:"summary"`
	SubmissionConsistency []WeeklyCount          `json:"submission_consistency"`
	TimelineTracker       []TimelineEntry        `json:"timeline_tracker"`
	ProgressHistory       []ProgressHistoryEntry `json:"progress_history"`
}

type WeeklyCount struct {
	Week        string `gorm:"column:week" json:"week"`
	Submissions int64  `gorm:"column:submissions" json:"submissions"`
}

type TimelineEntry struct {
	ID          uint      `gorm:"column:id" json:"id"`
	Title       string    `gorm:"column:title" json:"title"`
	Status      string    `gorm:"column:status" json:"status"`
	SubmittedAt time.Time `gorm:"column:submitted_at" json:"submitted_at"`
	Deadline    time.Time `gorm:"column:deadline" json:"deadline"`
	IsLate      bool      `gorm:"column:is_late" json:"is_late"`
}

type ProgressHistoryEntry struct {
	SerialNo    int       `gorm:"column:serial_no" json:"serial_no"`
	Status      string    `gorm:"column:status" json:"status"`
	IsLate      bool      `gorm:"column:is_late" json:"is_late"`
	SubmittedAt time.Time `gorm:"column:submitted_at" json:"submitted_at"`
}

// InternProgress aggregates the intern's own submission history.
func (s *AnalyticsService) InternProgress(internID uint) (*InternProgress, error) {
	progress := &InternProgress{}

	if err := s.db.Model(&models.Submission{}).
		Where("intern_id = ?", internID).
		Count(&progress.Summary.TotalSubmissions).Error; err != nil {
		return nil, storageFailure(err)
	}
	if err := s.db.Model(&models.Submission{}).
		Where("intern_id = ? AND status = ?", internID, models.SubmissionApproved).
		Count(&progress.Summary.ApprovedSubmissions).Error; err != nil {
		return nil, storageFailure(err)
	}
	progress.Summary.CompletionPercentage = roundedPercent(
		progress.Summary.ApprovedSubmissions, progress.Summary.TotalSubmissions)

	// ISO year-week buckets, e.g. 2026-35
	if err := s.db.Model(&models.Submission{}).
		Select("DATE_FORMAT(submitted_at, '%x-%v') AS week, COUNT(*) AS submissions").
		Where("intern_id = ?", internID).
		Group("week").
		Order("week").
		Scan(&progress.SubmissionConsistency).Error; err != nil {
		return nil, storageFailure(err)
	}

	if err := s.db.Table("submissions s").
		Select("s.id, s.title, s.status, s.submitted_at, p.deadline, s.is_late").
		Joins("JOIN projects p ON s.project_id = p.id").
		Where("s.intern_id = ?", internID).
		Order("s.submitted_at ASC").
		Scan(&progress.TimelineTracker).Error; err != nil {
		return nil, storageFailure(err)
	}

	if err := s.db.Model(&models.Submission{}).
		Select("serial_no, status, is_late, submitted_at").
		Where("intern_id = ?", internID).
		Order("serial_no ASC").
		Scan(&progress.ProgressHistory).Error; err != nil {
		return nil, storageFailure(err)
	}

	return progress, nil
}

type TeamLeadDashboard struct {
	PendingReviews  int64                `json:"pending_reviews"`
	LateSubmissions int64                `json:"late_submissions"`
	Projects        []ProjectReviewStats `json:"projects"`
}

type ProjectReviewStats struct {
	ProjectID   uint   `gorm:"column:project_id" json:"project_id"`
	Title       string `gorm:"column:title" json:"title"`
	Status      string `gorm:"column:status" json:"status"`
	Submissions int64  `gorm:"column:submissions" json:"submissions"`
	Approved    int64  `gorm:"column:approved" json:"approved"`
	Pending     int64  `gorm:"column:pending" json:"pending"`
}

// TeamLeadDashboard summarizes review workload across the lead's projects.
func (s *AnalyticsService) TeamLeadDashboard(teamLeadID uint) (*TeamLeadDashboard, error) {
	dashboard := &TeamLeadDashboard{}

	if err := s.db.Table("submissions s").
		Joins("JOIN projects p ON s.project_id = p.id").
		Where("p.team_lead_id = ? AND s.status = ?", teamLeadID, models.SubmissionPending).
		Count(&dashboard.PendingReviews).Error; err != nil {
		return nil, storageFailure(err)
	}

	if err := s.db.Table("submissions s").
		Joins("JOIN projects p ON s.project_id = p.id").
		Where("p.team_lead_id = ? AND s.is_late = ?", teamLeadID, true).
		Count(&dashboard.LateSubmissions).Error; err != nil {
		return nil, storageFailure(err)
	}

	if err := s.db.Table("projects p").
		Select(`p.id AS project_id, p.title, p.status,
			COUNT(s.id) AS submissions,
			SUM(CASE WHEN s.status = 'Approved' THEN 1 ELSE 0 END) AS approved,
			SUM(CASE WHEN s.status = 'Pending' THEN 1 ELSE 0 END) AS pending`).
		Joins("LEFT JOIN submissions s ON s.project_id = p.id").
		Where("p.team_lead_id = ?", teamLeadID).
		Group("p.id, p.title, p.status").
		Order("p.id").
		Scan(&dashboard.Projects).Error; err != nil {
		return nil, storageFailure(err)
	}

	return dashboard, nil
}

type HRAnalytics struct {
	Totals struct {
		Interns           int64 `json:"interns"`
		ActiveProjects    int64 `json:"active_projects"`
		CompletedProjects int64 `json:"completed_projects"`
		DelayedProjects   int64 `json:"delayed_projects"`
	} `json:"totals"`
	InternsPerTeamLead []TeamLeadInternCount `json:"interns_per_team_lead"`
}

type TeamLeadInternCount struct {
	TeamLead    string `gorm:"column:team_lead" json:"team_lead"`
	InternCount int64  `gorm:"column:intern_count" json:"intern_count"`
}

// HRAnalytics aggregates staffing and project health for HR.
func (s *AnalyticsService) HRAnalytics() (*HRAnalytics, error) {
	analytics := &HRAnalytics{}

	if err := s.db.Model(&models.User{}).
		Where("role = ?", models.RoleIntern).
		Count(&analytics.Totals.Interns).Error; err != nil {
		return nil, storageFailure(err)
	}
	if err := s.db.Model(&models.Project{}).
		Where("status = ?", models.ProjectOngoing).
		Count(&analytics.Totals.ActiveProjects).Error; err != nil {
		return nil, storageFailure(err)
	}
	if err := s.db.Model(&models.Project{}).
		Where("status = ?", models.ProjectCompleted).
		Count(&analytics.Totals.CompletedProjects).Error; err != nil {
		return nil, storageFailure(err)
	}
	if err := s.db.Model(&models.Project{}).
		Where("status = ? AND deadline < ?", models.ProjectOngoing, s.now()).
		Count(&analytics.Totals.DelayedProjects).Error; err != nil {
		return nil, storageFailure(err)
	}

	if err := s.db.Table("users t").
		Select("t.name AS team_lead, COUNT(i.id) AS intern_count").
		Joins("LEFT JOIN users i ON i.team_lead_id = t.id AND i.role = 'INTERN'").
		Where("t.role = ?", models.RoleTeamLead).
		Group("t.id, t.name").
		Scan(&analytics.InternsPerTeamLead).Error; err != nil {
		return nil, storageFailure(err)
	}

	return analytics, nil
}

type CompanyAnalytics struct {
	Totals struct {
		Interns        int64 `json:"interns"`
		Projects       int64 `json:"projects"`
		Submissions    int64 `json:"submissions"`
		CompletionRate int   `json:"completion_rate"`
	} `json:"totals"`
	TeamPerformance []TeamPerformance `json:"team_performance"`
}

type TeamPerformance struct {
	TeamLead         string `gorm:"column:team_lead" json:"team_lead"`
	TotalSubmissions int64  `gorm:"column:total_submissions" json:"total_submissions"`
	Approved         int64  `gorm:"column:approved" json:"approved"`
}

// CompanyAnalytics aggregates the company-wide view for the CEO.
func (s *AnalyticsService) CompanyAnalytics() (*CompanyAnalytics, error) {
	analytics := &CompanyAnalytics{}

	if err := s.db.Model(&models.User{}).
		Where("role = ?", models.RoleIntern).
		Count(&analytics.Totals.Interns).Error; err != nil {
		return nil, storageFailure(err)
	}
	if err := s.db.Model(&models.Project{}).
		Count(&analytics.Totals.Projects).Error; err != nil {
		return nil, storageFailure(err)
	}
	if err := s.db.Model(&models.Submission{}).
		Count(&analytics.Totals.Submissions).Error; err != nil {
		return nil, storageFailure(err)
	}

	var approved int64
	if err := s.db.Model(&models.Submission{}).
		Where("status = ?", models.SubmissionApproved).
		Count(&approved).Error; err != nil {
		return nil, storageFailure(err)
	}
	analytics.Totals.CompletionRate = roundedPercent(approved, analytics.Totals.Submissions)

	if err := s.db.Table("users t").
		Select(`t.name AS team_lead,
			COUNT(s.id) AS total_submissions,
			SUM(CASE WHEN s.status = 'Approved' THEN 1 ELSE 0 END) AS approved`).
		Joins("LEFT JOIN projects p ON p.team_lead_id = t.id").
		Joins("LEFT JOIN submissions s ON s.project_id = p.id").
		Where("t.role = ?", models.RoleTeamLead).
		Group("t.id, t.name").
		Scan(&analytics.TeamPerformance).Error; err != nil {
		return nil, storageFailure(err)
	}

	return analytics, nil
}

type ProjectProgressEntry struct {
	ID       uint      `gorm:"column:id" json:"id"`
	Title    string    `gorm:"column:title" json:"title"`
	Status   string    `gorm:"column:status" json:"status"`
	Intern   string    `gorm:"column:intern" json:"intern"`
	TeamLead string    `gorm:"column:team_lead" json:"team_lead"`
	Deadline time.Time `gorm:"column:deadline" json:"deadline"`
}

// ProjectProgress lists every project with its intern and lead.
func (s *AnalyticsService) ProjectProgress() ([]ProjectProgressEntry, error) {
	var entries []ProjectProgressEntry
	if err := s.db.Table("projects p").
		Select("p.id, p.title, p.status, u.name AS intern, t.name AS team_lead, p.deadline").
		Joins("JOIN users u ON p.intern_id = u.id").
		Joins("JOIN users t ON p.team_lead_id = t.id").
		Order("p.created_at DESC").
		Scan(&entries).Error; err != nil {
		return nil, storageFailure(err)
	}
	return entries, nil
}

type ProductivityReport struct {
	InternID          uint    `json:"intern_id"`
	ApprovalRate      float64 `json:"approval_rate"`
	OnTimeRate        float64 `json:"on_time_rate"`
	CompletionRate    float64 `json:"completion_rate"`
	ProductivityScore int     `json:"productivity_score"`
}

// Productivity computes the weighted productivity score for one intern:
// 50% approval rate + 30% on-time rate + 20% project-completion rate,
// rounded to the nearest integer.
func (s *AnalyticsService) Productivity(internID uint) (*ProductivityReport, error) {
	var exists int64
	if err := s.db.Model(&models.User{}).
		Where("id = ? AND role = ?", internID, models.RoleIntern).
		Count(&exists).Error; err != nil {
		return nil, storageFailure(err)
	}
	if exists == 0 {
		return nil, notFound("Intern not found")
	}

	var totalSubs, approvedSubs, onTimeSubs, totalProjects, completedProjects int64
	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&totalSubs, s.db.Model(&models.Submission{}).Where("intern_id = ?", internID)},
		{&approvedSubs, s.db.Model(&models.Submission{}).Where("intern_id = ? AND status = ?", internID, models.SubmissionApproved)},
		{&onTimeSubs, s.db.Model(&models.Submission{}).Where("intern_id = ? AND is_late = ?", internID, false)},
		{&totalProjects, s.db.Model(&models.Project{}).Where("intern_id = ?", internID)},
		{&completedProjects, s.db.Model(&models.Project{}).Where("intern_id = ? AND status = ?", internID, models.ProjectCompleted)},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, storageFailure(err)
		}
	}

	report := &ProductivityReport{
		InternID:       internID,
		ApprovalRate:   rate(approvedSubs, totalSubs),
		OnTimeRate:     rate(onTimeSubs, totalSubs),
		CompletionRate: rate(completedProjects, totalProjects),
	}
	report.ProductivityScore = ProductivityScore(
		report.ApprovalRate, report.OnTimeRate, report.CompletionRate)
	return report, nil
}

// ProductivityScore is the weighted composite over rates in [0,1]. The
// weights sum to 100, so the result lands in [0,100] by construction.
func ProductivityScore(approvalRate, onTimeRate, completionRate float64) int {
	return int(math.Round(50*approvalRate + 30*onTimeRate + 20*completionRate))
}

func rate(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole)
}

func roundedPercent(part, whole int64) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}
