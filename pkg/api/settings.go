package api

import "context"

// Theme holds the platform branding served by /settings.
type Theme struct {
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	CompanyName    string `json:"company_name"`
	LogoURL        string `json:"logo_url"`
}

func (c *Client) Settings(ctx context.Context) (Theme, error) {
	var out Theme
	err := c.getJSON(ctx, "/settings", nil, &out)
	return out, err
}
