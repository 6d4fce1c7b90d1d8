// Package domain defines the persistence models of the career platform:
// users and their profiles, social links, resume documents, and the
// opportunities side (organizations and the jobs they post). These types are
// mapped with GORM and shared by the repository and service layers.
package domain

import (
	"time"
)

// User is a platform member identified by a unique GitHub username.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - GitHubUsername: unique GitHub handle; the public lookup key.
//   - FirstName / MiddleName / LastName: optional display names.
//   - Rank: skill tier, "UNRANKED" until assessed.
//   - PrimarySpecialization: main domain of expertise.
//   - TimeLeft: remaining onboarding time budget in days.
//   - OnboardingComplete: set once the onboarding flow has finished.
//   - Bio / DreamCompany / DreamPosition: free-form profile texts.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
type User struct {
	ID                    string    `json:"id"                     gorm:"type:char(36);primaryKey"`
	GitHubUsername        string    `json:"github_user_name"       gorm:"column:github_user_name;type:varchar(255);not null;uniqueIndex:ux_users_github"`
	FirstName             *string   `json:"first_name,omitempty"   gorm:"type:varchar(255)"`
	MiddleName            *string   `json:"middle_name,omitempty"  gorm:"type:varchar(255)"`
	LastName              *string   `json:"last_name,omitempty"    gorm:"type:varchar(255)"`
	Rank                  string    `json:"rank"                   gorm:"type:varchar(32);not null;default:'UNRANKED'"`
	PrimarySpecialization string    `json:"primary_specialization" gorm:"type:varchar(64);not null"`
	TimeLeft              int       `json:"time_left"              gorm:"not null;default:0"`
	OnboardingComplete    bool      `json:"onboarding_complete"    gorm:"not null;default:false"`
	Bio                   *string   `json:"bio,omitempty"          gorm:"type:text"`
	DreamCompany          *string   `json:"dream_company,omitempty"  gorm:"type:varchar(255)"`
	DreamPosition         *string   `json:"dream_position,omitempty" gorm:"type:varchar(255)"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Profile is the resume root of a user; at most one exists per user.
// Documents hang off the profile.
type Profile struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	UserID    string    `json:"user_id"    gorm:"type:char(36);not null;uniqueIndex:ux_profiles_user"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// User owns the profile. Profiles are removed with their user.
	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Profile.
func (Profile) TableName() string { return "profiles" }

// Links holds a user's public handles on other platforms. Every handle is
// unique across the platform.
type Links struct {
	ID               string    `json:"id"                         gorm:"type:char(36);primaryKey"`
	UserID           string    `json:"user_id"                    gorm:"type:char(36);not null;uniqueIndex:ux_links_user"`
	PortfolioLink    *string   `json:"portfolio_link,omitempty"   gorm:"type:varchar(512)"`
	GitHubUsername   string    `json:"github_user_name"           gorm:"column:github_user_name;type:varchar(255);not null;uniqueIndex:ux_links_github"`
	GitHubLink       *string   `json:"github_link,omitempty"      gorm:"column:github_link;type:varchar(512)"`
	LinkedInUsername string    `json:"linkedin_user_name"         gorm:"column:linkedin_user_name;type:varchar(255);not null;uniqueIndex:ux_links_linkedin"`
	LinkedInLink     *string   `json:"linkedin_link,omitempty"    gorm:"column:linkedin_link;type:varchar(512)"`
	LeetcodeUsername string    `json:"leetcode_user_name"         gorm:"column:leetcode_user_name;type:varchar(255);not null;uniqueIndex:ux_links_leetcode"`
	LeetcodeLink     *string   `json:"leetcode_link,omitempty"    gorm:"type:varchar(512)"`
	OrcidID          *string   `json:"orcid_id,omitempty"         gorm:"type:varchar(64);uniqueIndex:ux_links_orcid"`
	PrimaryEmail     string    `json:"primary_email"              gorm:"type:varchar(255);not null;default:''"`
	WorkEmail        *string   `json:"work_email,omitempty"       gorm:"type:varchar(255)"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Links.
func (Links) TableName() string { return "links" }

// Document is one saved resume or CV of a profile: the rendered LaTeX and
// the structured data it was generated from.
//
// Fields:
//   - DocumentType: template family ("row" or "deedy").
//   - DocumentKind: "resume" or "cv".
//   - Latex: LaTeX source of the preview.
//   - BaseStructure: JSON object the LaTeX is rendered from.
type Document struct {
	ID            string     `json:"id"                      gorm:"type:char(36);primaryKey"`
	ProfileID     string     `json:"profile_id"              gorm:"type:char(36);not null;index:idx_profile_documents,priority:1"`
	DocumentName  *string    `json:"document_name"           gorm:"type:varchar(255)"`
	DocumentType  *string    `json:"document_type"           gorm:"type:varchar(32)"`
	DocumentKind  *string    `json:"document_kind"           gorm:"type:varchar(32)"`
	Latex         *string    `json:"latex"                   gorm:"type:text"`
	BaseStructure JSONObject `json:"base_structure"`
	CreatedAt     time.Time  `json:"created_at"              gorm:"index:idx_profile_documents,priority:2"`
	UpdatedAt     time.Time  `json:"updated_at"`

	Profile Profile `json:"-" gorm:"foreignKey:ProfileID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Document.
func (Document) TableName() string { return "documents" }

// Organization publishes opportunities (jobs, projects, fellowships).
type Organization struct {
	ID        string    `json:"id"                  gorm:"type:char(36);primaryKey"`
	Name      *string   `json:"name"                gorm:"type:varchar(255)"`
	Image     *string   `json:"image,omitempty"     gorm:"type:varchar(512)"`
	RepoLink  *string   `json:"repo_link,omitempty" gorm:"type:varchar(512)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for Organization.
func (Organization) TableName() string { return "organizations" }

// Job is a position posted by an organization. Technologies must come from
// the tools catalogue (see KnownTool).
type Job struct {
	ID              string     `json:"id"                         gorm:"type:char(36);primaryKey"`
	OrganizationID  string     `json:"organization"               gorm:"column:organization_id;type:char(36);not null;index:idx_org_jobs,priority:1"`
	Title           *string    `json:"title"                      gorm:"type:varchar(255)"`
	Department      *string    `json:"department,omitempty"       gorm:"type:varchar(255)"`
	CompanyName     *string    `json:"company_name,omitempty"     gorm:"type:varchar(255)"`
	CompanyLogo     *string    `json:"company_logo,omitempty"     gorm:"type:varchar(512)"`
	Location        *string    `json:"location,omitempty"         gorm:"type:varchar(255)"`
	LocationType    *string    `json:"location_type,omitempty"    gorm:"type:varchar(16)"`
	EmploymentType  *string    `json:"employment_type,omitempty"  gorm:"type:varchar(16)"`
	ExperienceLevel *string    `json:"experience_level,omitempty" gorm:"type:varchar(64)"`
	ExperienceYOE   *float64   `json:"experience_yoe,omitempty"   gorm:"column:experience_yoe"`
	SalaryMin       *int64     `json:"salary_annual_min,omitempty" gorm:"column:salary_annual_min"`
	SalaryMax       *int64     `json:"salary_annual_max,omitempty" gorm:"column:salary_annual_max;check:ck_jobs_salary,salary_annual_min IS NULL OR salary_annual_max IS NULL OR salary_annual_min <= salary_annual_max"`
	SalaryCurrency  *string    `json:"salary_currency,omitempty"  gorm:"type:varchar(8)"`
	Description     *string    `json:"description,omitempty"      gorm:"type:text"`
	Featured        *bool      `json:"featured,omitempty"`
	Category        *string    `json:"category,omitempty"         gorm:"type:varchar(64)"`
	Perks           StringList `json:"perks"`
	Technologies    StringList `json:"technologies"`
	CreatedAt       time.Time  `json:"created_at"                 gorm:"index:idx_org_jobs,priority:2"`
	UpdatedAt       time.Time  `json:"updated_at"`

	Organization Organization `json:"-" gorm:"foreignKey:OrganizationID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Job.
func (Job) TableName() string { return "jobs" }

// Models lists every table owned by the service, in dependency order. Used by
// AutoMigrate on SQLite; PostgreSQL is migrated from SQL files.
func Models() []any {
	return []any{&User{}, &Profile{}, &Links{}, &Document{}, &Organization{}, &Job{}, &Idempotency{}}
}
