package jobsource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

const adzunaAPIURL = "https://api.adzuna.com"

// Neutral defaults substituted when Adzuna omits a field.
const (
	defaultTitle   = "Software Developer"
	defaultCompany = "Company"
)

// adzunaCountryNames maps Adzuna country codes to the display name used
// when a listing omits its location.
var adzunaCountryNames = map[string]string{
	"at": "Austria",
	"au": "Australia",
	"br": "Brazil",
	"ca": "Canada",
	"de": "Germany",
	"es": "Spain",
	"fr": "France",
	"gb": "UK",
	"in": "India",
	"it": "Italy",
	"mx": "Mexico",
	"nl": "Netherlands",
	"nz": "New Zealand",
	"pl": "Poland",
	"sg": "Singapore",
	"us": "US",
	"za": "South Africa",
}

// countryDisplayName falls back to the uppercased code for countries
// not in the table.
func countryDisplayName(code string) string {
	if name, ok := adzunaCountryNames[code]; ok {
		return name
	}
	return strings.ToUpper(code)
}

// Adzuna queries the Adzuna Jobs API.
type Adzuna struct {
	appID            string
	appKey           string
	country          string
	fallbackLocation string
	logger           *zap.Logger

	// APIURL is overridable in tests.
	APIURL     string
	HTTPClient *http.Client
}

func NewAdzuna(appID, appKey, country string, logger *zap.Logger) *Adzuna {
	return &Adzuna{
		appID:            appID,
		appKey:           appKey,
		country:          country,
		fallbackLocation: countryDisplayName(country),
		logger:           logger,
		APIURL:           adzunaAPIURL,
		HTTPClient:       &http.Client{Timeout: providerTimeout},
	}
}

func (a *Adzuna) Name() string { return "adzuna" }

type adzunaResponse struct {
	Results []adzunaItem `json:"results"`
}

type adzunaItem struct {
	Title       string      `json:"title"`
	Company     adzunaNamed `json:"company"`
	Location    adzunaNamed `json:"location"`
	RedirectURL string      `json:"redirect_url"`
	SalaryMin   *float64    `json:"salary_min"`
	SalaryMax   *float64    `json:"salary_max"`
	Description string      `json:"description"`
}

type adzunaNamed struct {
	DisplayName string `json:"display_name"`
}

// Fetch issues a single search against page 1 of Adzuna results.
func (a *Adzuna) Fetch(ctx context.Context, q Query) ([]Job, error) {
	what := strings.Join(topSkills(q.Skills, 4), " ")
	if q.Remote {
		what += " remote"
	}

	params := url.Values{}
	params.Set("app_id", a.appID)
	params.Set("app_key", a.appKey)
	params.Set("results_per_page", "20")
	params.Set("what", what)
	params.Set("content-type", "application/json")
	if q.Location != "" {
		params.Set("where", q.Location)
	}

	endpoint := fmt.Sprintf("%s/v1/api/jobs/%s/search/1", a.APIURL, a.country)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &FetchError{Provider: a.Name(), Message: "build request", Cause: err}
	}
	req.URL.RawQuery = params.Encode()

	a.logger.Debug("querying adzuna", zap.String("what", what), zap.String("country", a.country))

	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		return nil, &FetchError{Provider: a.Name(), Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Provider: a.Name(), Message: fmt.Sprintf("bad status: %s", resp.Status)}
	}

	var payload adzunaResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &FetchError{Provider: a.Name(), Message: "decode response", Cause: err}
	}

	jobs := make([]Job, 0, len(payload.Results))
	for _, item := range payload.Results {
		title := item.Title
		if title == "" {
			title = defaultTitle
		}
		company := item.Company.DisplayName
		if company == "" {
			company = defaultCompany
		}
		location := item.Location.DisplayName
		if location == "" {
			location = a.fallbackLocation
		}
		jobURL := item.RedirectURL
		if jobURL == "" {
			jobURL = "#"
		}

		// Adzuna has no remote flag; infer from the listing text.
		desc := strings.ToLower(stripHTML(item.Description))
		remote := strings.Contains(strings.ToLower(title), "remote") || strings.Contains(desc, "remote")

		jobs = append(jobs, Job{
			Title:      title,
			Company:    company,
			Location:   location,
			URL:        jobURL,
			Salary:     formatSalary(item.SalaryMin, item.SalaryMax),
			Remote:     remote,
			Experience: "",
			Skills:     topSkills(q.Skills, 3),
		})
	}
	return jobs, nil
}
