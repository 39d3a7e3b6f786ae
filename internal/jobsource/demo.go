package jobsource

import (
	"context"

	"go.uber.org/zap"
)

// Demo serves a fixed set of listings so the service works end to end
// with no provider credentials configured.
type Demo struct {
	logger *zap.Logger
}

func NewDemo(logger *zap.Logger) *Demo {
	return &Demo{logger: logger}
}

func (d *Demo) Name() string { return "demo" }

var demoListings = []Job{
	{
		Title:    "Backend Engineer",
		Company:  "Nimbus Labs",
		Location: "Bengaluru",
		URL:      "https://example.com/jobs/backend-engineer",
		Salary:   "₹1,800,000 – ₹2,600,000",
		Remote:   false,
		Skills:   []string{"Python", "PostgreSQL", "Docker"},
	},
	{
		Title:    "Frontend Developer",
		Company:  "Brightstack",
		Location: "Remote",
		URL:      "https://example.com/jobs/frontend-developer",
		Salary:   "₹1,200,000+",
		Remote:   true,
		Skills:   []string{"React", "TypeScript", "CSS"},
	},
	{
		Title:    "Full Stack Developer",
		Company:  "Orbital Systems",
		Location: "Pune",
		URL:      "https://example.com/jobs/full-stack-developer",
		Salary:   "₹1,500,000 – ₹2,200,000",
		Remote:   false,
		Skills:   []string{"Node.js", "React", "MongoDB"},
	},
	{
		Title:    "DevOps Engineer",
		Company:  "Cloudline",
		Location: "Remote",
		URL:      "https://example.com/jobs/devops-engineer",
		Salary:   "₹2,000,000 – ₹3,000,000",
		Remote:   true,
		Skills:   []string{"Kubernetes", "AWS", "Terraform"},
	},
	{
		Title:    "Data Scientist",
		Company:  "Signalpeak",
		Location: "Hyderabad",
		URL:      "https://example.com/jobs/data-scientist",
		Salary:   "₹2,200,000+",
		Remote:   false,
		Skills:   []string{"Python", "PyTorch", "SQL"},
	},
	{
		Title:    "Mobile Developer",
		Company:  "Fernwheel",
		Location: "Chennai",
		URL:      "https://example.com/jobs/mobile-developer",
		Salary:   "",
		Remote:   false,
		Skills:   []string{"Flutter", "Kotlin", "Firebase"},
	},
}

// Fetch returns the canned listings, honoring the remote-only filter.
func (d *Demo) Fetch(_ context.Context, q Query) ([]Job, error) {
	d.logger.Debug("serving demo listings", zap.Bool("remote_only", q.Remote))

	jobs := make([]Job, 0, len(demoListings))
	for _, job := range demoListings {
		if q.Remote && !job.Remote {
			continue
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}
