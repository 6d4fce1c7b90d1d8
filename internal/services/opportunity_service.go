package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/tbourn/go-career-backend/internal/apperr"
	"github.com/tbourn/go-career-backend/internal/domain"
	"github.com/tbourn/go-career-backend/internal/utils"
)

// OpportunityRepo defines the repository contract required by
// OrganizationService and JobService.
type OpportunityRepo interface {
	CreateOrganization(ctx context.Context, db *gorm.DB, o *domain.Organization) (*domain.Organization, error)
	GetOrganization(ctx context.Context, db *gorm.DB, id string) (*domain.Organization, error)

	CreateJob(ctx context.Context, db *gorm.DB, j *domain.Job) (*domain.Job, error)
	GetJob(ctx context.Context, db *gorm.DB, id string) (*domain.Job, error)
	CountJobs(ctx context.Context, db *gorm.DB, orgID string) (int64, error)
	ListJobsPage(ctx context.Context, db *gorm.DB, orgID string, offset, limit int) ([]domain.Job, error)
	DeleteJob(ctx context.Context, db *gorm.DB, id string) error
	JobsStats(ctx context.Context, db *gorm.DB, orgID string) (int64, *time.Time, error)
}

// OrganizationService manages the organizations that publish opportunities.
type OrganizationService struct {
	DB   *gorm.DB
	Repo OpportunityRepo

	// NameLocale drives title-casing of all-lowercase organization names.
	// language.Und falls back to English.
	NameLocale language.Tag
}

// NewOrganizationService constructs an OrganizationService.
func NewOrganizationService(db *gorm.DB, r OpportunityRepo) *OrganizationService {
	return &OrganizationService{DB: db, Repo: r, NameLocale: language.Und}
}

// Create stores o with its name normalized.
func (s *OrganizationService) Create(ctx context.Context, o *domain.Organization) (*domain.Organization, error) {
	if o.Name != nil {
		name := s.normalizeName(*o.Name)
		o.Name = &name
	}
	return s.Repo.CreateOrganization(ctx, s.DB, o)
}

// Get returns an organization by ID or apperr.OrganizationNotFound.
func (s *OrganizationService) Get(ctx context.Context, id string) (*domain.Organization, error) {
	o, err := s.Repo.GetOrganization(ctx, s.DB, id)
	if err != nil {
		return nil, orNotFound(err, func() error { return apperr.OrganizationNotFound(id) })
	}
	return o, nil
}

// normalizeName trims and collapses whitespace. A name typed entirely in
// lowercase is title-cased; any other casing is kept as the owner wrote it.
func (s *OrganizationService) normalizeName(name string) string {
	name = whitespaceRE.ReplaceAllString(strings.TrimSpace(name), " ")
	if name == "" || name != strings.ToLower(name) {
		return name
	}
	tag := s.NameLocale
	if tag == language.Und {
		tag = language.English
	}
	return cases.Title(tag).String(name)
}

// whitespaceRE collapses consecutive whitespace to a single space.
var whitespaceRE = regexp.MustCompile(`\s+`)

// JobService manages the jobs posted by organizations.
type JobService struct {
	DB   *gorm.DB
	Repo OpportunityRepo
}

// NewJobService constructs a JobService.
func NewJobService(db *gorm.DB, r OpportunityRepo) *JobService {
	return &JobService{DB: db, Repo: r}
}

// Create posts j for its organization. Technologies are normalized to their
// catalogue spelling; any value outside the catalogue rejects the whole job
// with apperr.InvalidTools naming every offending value.
func (s *JobService) Create(ctx context.Context, j *domain.Job) (*domain.Job, error) {
	if _, err := s.Repo.GetOrganization(ctx, s.DB, j.OrganizationID); err != nil {
		return nil, orNotFound(err, func() error { return apperr.OrganizationNotFound(j.OrganizationID) })
	}

	var invalid []string
	techs := make(domain.StringList, 0, len(j.Technologies))
	for _, t := range j.Technologies {
		if !domain.KnownTool(t) {
			invalid = append(invalid, t)
			continue
		}
		techs = append(techs, domain.NormalizeTool(t))
	}
	if len(invalid) > 0 {
		return nil, apperr.InvalidTools("technologies", invalid)
	}
	j.Technologies = techs

	return s.Repo.CreateJob(ctx, s.DB, j)
}

// Get returns a job by ID or apperr.JobNotFound.
func (s *JobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	j, err := s.Repo.GetJob(ctx, s.DB, id)
	if err != nil {
		return nil, orNotFound(err, func() error { return apperr.JobNotFound(id) })
	}
	return j, nil
}

// ListByOrganization returns a page of an organization's jobs and the total
// count. It applies defaults for invalid page/pageSize. The organization must
// exist.
func (s *JobService) ListByOrganization(ctx context.Context, orgID string, page, pageSize int) ([]domain.Job, int64, error) {
	p := utils.Page{Number: page, Size: pageSize}.Normalize(20)
	if _, err := s.Repo.GetOrganization(ctx, s.DB, orgID); err != nil {
		return nil, 0, orNotFound(err, func() error { return apperr.OrganizationNotFound(orgID) })
	}

	total, err := s.Repo.CountJobs(ctx, s.DB, orgID)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Job{}, 0, nil
	}
	items, err := s.Repo.ListJobsPage(ctx, s.DB, orgID, p.Offset(), p.Size)
	return items, total, err
}

// ETag builds the weak validator of one page of an organization's jobs.
func (s *JobService) ETag(ctx context.Context, orgID string, page, pageSize int) (string, error) {
	count, maxTS, err := s.Repo.JobsStats(ctx, s.DB, orgID)
	if err != nil {
		return "", err
	}
	var ts int64
	if maxTS != nil {
		ts = maxTS.UnixNano()
	}
	return fmt.Sprintf(`W/"jobs:%s:%d:%d:%d:%d"`, orgID, page, pageSize, count, ts), nil
}

// Delete removes a job.
func (s *JobService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.DeleteJob(ctx, s.DB, id); err != nil {
		return orNotFound(err, func() error { return apperr.JobNotFound(id) })
	}
	return nil
}
