package aggregate

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"portfolio-cms/domain/content"
	"portfolio-cms/domain/site"
	"portfolio-cms/domain/theme"
	"portfolio-cms/pkg/logger"
)

// ThemeSource yields the single active theme, bootstrapping a default
// when the table is empty.
type ThemeSource interface {
	Active(ctx context.Context) (theme.Theme, error)
}

// SettingsSource yields the singleton site settings row.
type SettingsSource interface {
	Get(ctx context.Context) (site.Settings, error)
}

// ContentSource yields the active, ordered content collections.
type ContentSource interface {
	ActiveSkills(ctx context.Context) ([]content.Skill, error)
	ActiveProjects(ctx context.Context) ([]content.Project, error)
	ActiveExperiences(ctx context.Context) ([]content.Experience, error)
	ActiveEducation(ctx context.Context) ([]content.Education, error)
}

// Service assembles the public theme payload from its three sources.
// Assembly is all-or-nothing: the first source error aborts the build.
type Service struct {
	themes   ThemeSource
	settings SettingsSource
	content  ContentSource
	mediaURL string
	log      logger.Logger
}

func NewService(themes ThemeSource, settings SettingsSource, contents ContentSource, mediaURL string, log logger.Logger) *Service {
	return &Service{
		themes:   themes,
		settings: settings,
		content:  contents,
		mediaURL: strings.TrimSuffix(mediaURL, "/"),
		log:      log.WithComponent("aggregate"),
	}
}

// Build reads every source and composes the view. Reads run sequentially
// against the shared pool; any failure is returned to the caller intact.
func (s *Service) Build(ctx context.Context) (View, error) {
	th, err := s.themes.Active(ctx)
	if err != nil {
		return View{}, fmt.Errorf("load active theme: %w", err)
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return View{}, fmt.Errorf("load site settings: %w", err)
	}
	skills, err := s.content.ActiveSkills(ctx)
	if err != nil {
		return View{}, fmt.Errorf("load skills: %w", err)
	}
	projects, err := s.content.ActiveProjects(ctx)
	if err != nil {
		return View{}, fmt.Errorf("load projects: %w", err)
	}
	experiences, err := s.content.ActiveExperiences(ctx)
	if err != nil {
		return View{}, fmt.Errorf("load experiences: %w", err)
	}
	education, err := s.content.ActiveEducation(ctx)
	if err != nil {
		return View{}, fmt.Errorf("load education: %w", err)
	}

	v := View{
		Colors: Colors{
			Primary:    th.PrimaryColor,
			Secondary:  th.SecondaryColor,
			Accent:     th.AccentColor,
			Background: th.BackgroundColor,
			Text:       th.TextColor,
			Card:       th.CardColor,
		},
		Typography: Typography{
			FontFamily:   th.FontFamily,
			HeadingFont:  th.HeadingFont,
			FontSizeBase: th.FontSizeBase,
		},
		Layout: Layout{
			SidebarWidth: th.SidebarWidth,
			BorderRadius: th.BorderRadius,
			SpacingUnit:  th.SpacingUnit,
		},
		Animations: Animations{
			Enabled: th.EnableAnimations,
			Speed:   th.AnimationSpeed,
			Stars:   th.EnableStars,
		},
		CustomCSS: th.CustomCSS,
		Site: SiteInfo{
			Title:       settings.SiteTitle,
			Description: settings.SiteDescription,
			Email:       settings.Email,
			Phone:       settings.Phone,
			Location:    settings.Location,
			Social: SocialLinks{
				Facebook:  settings.FacebookURL,
				Instagram: settings.InstagramURL,
				Twitter:   settings.TwitterURL,
				Linkedin:  settings.LinkedinURL,
				Github:    settings.GithubURL,
			},
		},
		Personal: Personal{
			FullName:         settings.FullName,
			JobTitle:         settings.JobTitle,
			Bio:              settings.Bio,
			ProfileImage:     s.imageURL(settings.ProfileImage),
			AboutTitle:       settings.AboutTitle,
			AboutDescription: settings.AboutDescription,
		},
		Skills:     make([]SkillView, 0, len(skills)),
		Projects:   make([]ProjectView, 0, len(projects)),
		Experience: make([]ExperienceView, 0, len(experiences)),
		Education:  make([]EducationView, 0, len(education)),
	}

	for _, sk := range skills {
		v.Skills = append(v.Skills, SkillView{
			Name:        sk.Name,
			Category:    sk.Category,
			Proficiency: sk.Proficiency,
		})
	}
	for _, p := range projects {
		v.Projects = append(v.Projects, ProjectView{
			Title:        p.Title,
			Description:  p.Description,
			Image:        s.imageURL(p.Image),
			Technologies: p.Technologies,
			DemoURL:      p.DemoURL,
			GithubURL:    p.GithubURL,
		})
	}
	for _, e := range experiences {
		v.Experience = append(v.Experience, ExperienceView{
			Title:       e.Title,
			Company:     e.Company,
			Description: e.Description,
			StartDate:   e.StartDate.Format("2006-01-02"),
			EndDate:     formatOptional(e.EndDate),
			IsCurrent:   e.IsCurrent,
		})
	}
	for _, e := range education {
		v.Education = append(v.Education, EducationView{
			Degree:      e.Degree,
			Institution: e.Institution,
			Description: e.Description,
			StartDate:   e.StartDate.Format("2006-01-02"),
			EndDate:     formatOptional(e.EndDate),
			IsCurrent:   e.IsCurrent,
		})
	}

	s.log.Debug("Theme payload built",
		logger.Count(len(v.Skills)+len(v.Projects)+len(v.Experience)+len(v.Education)),
		logger.String("theme", th.Name),
	)
	return v, nil
}

// SkillBuckets groups the already-ordered skills of a built view by
// category for the server-rendered page.
func SkillBuckets(skills []SkillView) map[string][]SkillView {
	buckets := make(map[string][]SkillView)
	for _, sk := range skills {
		cat := sk.Category
		if cat == "" {
			cat = content.CategoryOther
		}
		buckets[cat] = append(buckets[cat], sk)
	}
	return buckets
}

// imageURL maps a stored relative media path to its public URL. Records
// with no attachment serialize as JSON null. Absolute URLs pass through.
func (s *Service) imageURL(stored string) *string {
	if stored == "" {
		return nil
	}
	if strings.HasPrefix(stored, "http://") || strings.HasPrefix(stored, "https://") {
		return &stored
	}
	u := path.Join(s.mediaURL, stored)
	if !strings.HasPrefix(u, "/") {
		u = "/" + u
	}
	return &u
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
