package jobsource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const (
	jsearchAPIURL = "https://jsearch.p.rapidapi.com"
	jsearchHost   = "jsearch.p.rapidapi.com"
)

// JSearch queries the JSearch API via RapidAPI.
type JSearch struct {
	apiKey           string
	country          string
	fallbackLocation string
	logger           *zap.Logger

	// APIURL is overridable in tests.
	APIURL     string
	HTTPClient *http.Client
}

func NewJSearch(apiKey, country string, logger *zap.Logger) *JSearch {
	return &JSearch{
		apiKey:           apiKey,
		country:          country,
		fallbackLocation: countryDisplayName(country),
		logger:           logger,
		APIURL:           jsearchAPIURL,
		HTTPClient:       &http.Client{Timeout: providerTimeout},
	}
}

func (j *JSearch) Name() string { return "jsearch" }

type jsearchResponse struct {
	Data []jsearchItem `json:"data"`
}

type jsearchItem struct {
	JobTitle   string            `json:"job_title"`
	Employer   string            `json:"employer_name"`
	City       string            `json:"job_city"`
	Country    string            `json:"job_country"`
	ApplyLink  string            `json:"job_apply_link"`
	SalaryMin  *float64          `json:"job_min_salary"`
	SalaryMax  *float64          `json:"job_max_salary"`
	IsRemote   bool              `json:"job_is_remote"`
	Experience jsearchExperience `json:"job_required_experience"`
	SkillsList []string          `json:"job_required_skills"`
}

type jsearchExperience struct {
	Months *int `json:"required_experience_in_months"`
}

// Fetch issues a single search against the first JSearch result page.
func (j *JSearch) Fetch(ctx context.Context, q Query) ([]Job, error) {
	query := strings.Join(topSkills(q.Skills, 3), " ")
	if q.Remote {
		query += " remote"
	}
	if q.Location != "" {
		query += " " + q.Location
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("page", "1")
	params.Set("num_pages", "1")
	params.Set("country", j.country)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, j.APIURL+"/search", nil)
	if err != nil {
		return nil, &FetchError{Provider: j.Name(), Message: "build request", Cause: err}
	}
	req.URL.RawQuery = params.Encode()
	req.Header.Set("X-RapidAPI-Key", j.apiKey)
	req.Header.Set("X-RapidAPI-Host", jsearchHost)

	j.logger.Debug("querying jsearch", zap.String("query", query))

	resp, err := j.HTTPClient.Do(req)
	if err != nil {
		return nil, &FetchError{Provider: j.Name(), Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Provider: j.Name(), Message: fmt.Sprintf("bad status: %s", resp.Status)}
	}

	var payload jsearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &FetchError{Provider: j.Name(), Message: "decode response", Cause: err}
	}

	jobs := make([]Job, 0, len(payload.Data))
	for _, item := range payload.Data {
		title := item.JobTitle
		if title == "" {
			title = "Developer"
		}
		company := item.Employer
		if company == "" {
			company = defaultCompany
		}
		location := item.City
		if location == "" {
			location = item.Country
		}
		if location == "" {
			location = j.fallbackLocation
		}
		applyLink := item.ApplyLink
		if applyLink == "" {
			applyLink = "#"
		}

		experience := ""
		if item.Experience.Months != nil {
			experience = strconv.Itoa(*item.Experience.Months)
		}

		jobSkills := item.SkillsList
		if len(jobSkills) == 0 {
			jobSkills = topSkills(q.Skills, 3)
		}

		jobs = append(jobs, Job{
			Title:      title,
			Company:    company,
			Location:   location,
			URL:        applyLink,
			Salary:     formatSalary(item.SalaryMin, item.SalaryMax),
			Remote:     item.IsRemote,
			Experience: experience,
			Skills:     jobSkills,
		})
	}
	return jobs, nil
}
