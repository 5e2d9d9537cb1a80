package model

// SocialLinks holds optional profile URLs for a team member.
type SocialLinks struct {
	Twitter  string `json:"twitter,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// TeamMember is a bio shown on the team page.
type TeamMember struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Role    string      `json:"role"`
	Bio     string      `json:"bio"`
	Image   string      `json:"image"`
	Socials SocialLinks `json:"socials"`
}
