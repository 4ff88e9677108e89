package model

// Country is what the registration form needs from the countries provider.
type Country struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	DialCode string `json:"dial_code"`
	Flag     string `json:"flag"`
}
