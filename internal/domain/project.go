package domain

import "context"

// Project is a portfolio entry as exposed by GET /api/projects.
// Stored records are checked for shape only (see ProjectShape); values are not constrained.
type Project struct {
	Title      string   `json:"title"`
	Slug       string   `json:"slug"`
	Summary    string   `json:"summary"`
	Role       string   `json:"role"`
	Stack      []string `json:"stack"`
	Challenges string   `json:"challenges"`
	GitHub     *string  `json:"github"`
	Demo       *string  `json:"demo"`
	Images     []string `json:"images"`
	Featured   bool     `json:"featured"`
}

// ProjectShape holds the keys a stored project record must carry.
// A key that is present with an empty string passes; a missing or null key does not.
type ProjectShape struct {
	Title   *string `json:"title" validate:"required"`
	Slug    *string `json:"slug" validate:"required"`
	Summary *string `json:"summary" validate:"required"`
	Role    *string `json:"role" validate:"required"`
}

// Normalize replaces nil sequences with empty ones so they render as [].
func (p *Project) Normalize() {
	if p.Stack == nil {
		p.Stack = []string{}
	}
	if p.Images == nil {
		p.Images = []string{}
	}
}

// ProjectFilter restricts a project listing. A nil Featured matches every project.
type ProjectFilter struct {
	Featured *bool
}

// ListingOutcome tells which branch produced a project listing.
type ListingOutcome string

const (
	ListingOK          ListingOutcome = "ok"
	ListingUnavailable ListingOutcome = "unavailable"
	ListingQueryFailed ListingOutcome = "query_failed"
)

// ProjectListing is the result of listing projects.
// Reason is empty when Outcome is ListingOK.
type ProjectListing struct {
	Outcome  ListingOutcome
	Reason   string
	Projects []Project
}

// FromStore reports whether Projects came from the document store rather than fallback data.
func (l ProjectListing) FromStore() bool {
	return l.Outcome == ListingOK
}

type ProjectUsecase interface {
	// EnsureSeeded inserts the sample projects into an empty collection once per process.
	EnsureSeeded(ctx context.Context) error
	// ListProjects never fails; store problems yield the fallback listing.
	ListProjects(ctx context.Context, filter ProjectFilter) ProjectListing
}

func strPtr(s string) *string { return &s }

// SampleProjects returns the projects seeded into an empty store.
func SampleProjects() []Project {
	return []Project{
		auroraProject(),
		{
			Title:      "Nebula Analytics",
			Slug:       "nebula-analytics",
			Summary:    "Realtime dashboards with WebGL charts and streaming APIs.",
			Role:       "Full‑stack Developer",
			Stack:      []string{"Next.js", "WebGL", "Node", "Postgres"},
			Challenges: "Realtime rendering, data pipelining",
			GitHub:     strPtr("https://github.com/example/nebula"),
			Demo:       strPtr("https://example.com/nebula"),
			Images:     []string{"/projects/nebula-1.webp"},
			Featured:   true,
		},
		{
			Title:      "Pulse Commerce",
			Slug:       "pulse-commerce",
			Summary:    "Headless e‑commerce with edge personalization.",
			Role:       "Frontend Lead",
			Stack:      []string{"Next.js", "Edge", "Stripe", "Sanity"},
			Challenges: "Edge caching, a/b testing, complex UI",
			GitHub:     strPtr("https://github.com/example/pulse"),
			Demo:       strPtr("https://example.com/pulse"),
			Images:     []string{"/projects/pulse-1.webp"},
			Featured:   false,
		},
	}
}

// FallbackProjects is served whenever the store cannot produce a listing.
// It is the same for every filter.
func FallbackProjects() []Project {
	return []Project{auroraProject()}
}

func auroraProject() Project {
	return Project{
		Title:      "Aurora UI System",
		Slug:       "aurora-ui-system",
		Summary:    "Design system and React component library with motion primitives.",
		Role:       "Frontend Engineer",
		Stack:      []string{"React", "TypeScript", "Tailwind", "Framer Motion"},
		Challenges: "Accessibility, performance, theming",
		GitHub:     strPtr("https://github.com/example/aurora"),
		Demo:       strPtr("https://example.com/aurora"),
		Images:     []string{"/projects/aurora-1.webp", "/projects/aurora-2.webp"},
		Featured:   true,
	}
}
