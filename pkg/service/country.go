package service

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/videomack/videomack/config"
	"github.com/videomack/videomack/pkg/model"
)

// CountryService supplies the registration form's country list. It tries the
// public restcountries endpoint and degrades to a built-in list when the
// fetch fails, so the form never blocks on connectivity.
type CountryService struct {
	ctx    context.Context
	client *http.Client
}

func NewCountryService(ctx context.Context) *CountryService {
	return &CountryService{
		ctx: ctx,
		client: &http.Client{
			Timeout: time.Duration(config.ConfigInfo.Countries.TimeoutMs) * time.Millisecond,
		},
	}
}

type restCountry struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	Cca2 string `json:"cca2"`
	Idd  struct {
		Root     string   `json:"root"`
		Suffixes []string `json:"suffixes"`
	} `json:"idd"`
	Flag string `json:"flag"`
}

var fallbackCountries = []model.Country{
	{Name: "Brazil", Code: "BR", DialCode: "+55", Flag: "🇧🇷"},
	{Name: "France", Code: "FR", DialCode: "+33", Flag: "🇫🇷"},
	{Name: "Germany", Code: "DE", DialCode: "+49", Flag: "🇩🇪"},
	{Name: "India", Code: "IN", DialCode: "+91", Flag: "🇮🇳"},
	{Name: "Japan", Code: "JP", DialCode: "+81", Flag: "🇯🇵"},
	{Name: "Nigeria", Code: "NG", DialCode: "+234", Flag: "🇳🇬"},
	{Name: "United Kingdom", Code: "GB", DialCode: "+44", Flag: "🇬🇧"},
	{Name: "United States", Code: "US", DialCode: "+1", Flag: "🇺🇸"},
}

// FetchCountries returns the country list sorted by name.
func (s *CountryService) FetchCountries() []model.Country {
	req, err := http.NewRequestWithContext(s.ctx, http.MethodGet, config.ConfigInfo.Countries.Endpoint, nil)
	if err != nil {
		logrus.Warnf("countries request build failed, using fallback: %v", err)
		return fallbackCountries
	}

	resp, err := s.client.Do(req)
	if err != nil {
		logrus.Warnf("countries fetch failed, using fallback: %v", err)
		return fallbackCountries
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logrus.Warnf("countries fetch returned %d, using fallback", resp.StatusCode)
		return fallbackCountries
	}

	var raw []restCountry
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		logrus.Warnf("countries decode failed, using fallback: %v", err)
		return fallbackCountries
	}

	countries := make([]model.Country, 0, len(raw))
	for _, c := range raw {
		dial := c.Idd.Root
		if len(c.Idd.Suffixes) > 0 {
			dial += c.Idd.Suffixes[0]
		}
		countries = append(countries, model.Country{
			Name:     c.Name.Common,
			Code:     c.Cca2,
			DialCode: dial,
			Flag:     c.Flag,
		})
	}
	sort.Slice(countries, func(i, j int) bool { return countries[i].Name < countries[j].Name })
	return countries
}

// DefaultCountry is the form's preselected entry: US when present, otherwise
// the first in the list.
func (s *CountryService) DefaultCountry(countries []model.Country) *model.Country {
	if len(countries) == 0 {
		return nil
	}
	for i := range countries {
		if countries[i].Code == "US" {
			return &countries[i]
		}
	}
	return &countries[0]
}
